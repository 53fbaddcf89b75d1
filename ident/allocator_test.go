package ident

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JPsnipe/OPEN-RADIOSS/model"
)

func TestReserve(t *testing.T) {
	a := NewAllocator()
	assert.NoError(t, a.Reserve(ClassMat, 5))
	assert.True(t, a.Used(ClassMat, 5))

	err := a.Reserve(ClassMat, 5)
	var ic *model.IdentifierCollisionError
	assert.True(t, errors.As(err, &ic))
	assert.Equal(t, 5, ic.ID)

	// same id in another class is not a collision
	assert.NoError(t, a.Reserve(ClassGrnod, 5))
}

func TestAllocatePreferred(t *testing.T) {
	a := NewAllocator()
	assert.Equal(t, 12, a.Allocate(ClassSubset, 12))
	// preferred taken: next above the shared maximum
	assert.Equal(t, 13, a.Allocate(ClassSubset, 12))
	// no preference
	assert.Equal(t, 14, a.Allocate(ClassSubset, 0))
}

func TestSharedStarterSpace(t *testing.T) {
	a := NewAllocator()
	assert.NoError(t, a.Reserve(ClassMat, 1))
	assert.NoError(t, a.Reserve(ClassPart, 7))

	// fresh ids clear every starter class, not just their own
	assert.Equal(t, 8, a.Allocate(ClassProp, 0))
	assert.Equal(t, 9, a.Allocate(ClassSubset, 0))
	assert.Equal(t, 9, a.Max(ClassMat))

	// node groups number independently of the starter space
	assert.Equal(t, 1, a.Allocate(ClassGrnod, 0))
	assert.Equal(t, 2, a.Allocate(ClassFunct, 2))
}

func TestAllocateDeterminism(t *testing.T) {
	run := func() []int {
		a := NewAllocator()
		ids := make([]int, 0, 6)
		a.Reserve(ClassMat, 3)
		for _, pref := range []int{12, 0, 12, 2} {
			ids = append(ids, a.Allocate(ClassSubset, pref))
		}
		ids = append(ids, a.Allocate(ClassGrnod, 0), a.Allocate(ClassGrnod, 0))
		return ids
	}
	assert.Equal(t, run(), run())
}
