package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	{ // tabled codes win regardless of node count
		assert.Equal(t, KwShell, Resolve(181, 4))
		assert.Equal(t, KwShell, Resolve(181, 2))
		assert.Equal(t, KwBrick, Resolve(185, 8))
		assert.Equal(t, KwBrick, Resolve(186, 20))
		assert.Equal(t, KwTetra, Resolve(187, 10))
		assert.Equal(t, KwShell, Resolve(63, 3))
	}
	{ // unknown codes fall back to node count
		assert.Equal(t, KwShell, Resolve(999, 3))
		assert.Equal(t, KwShell, Resolve(999, 4))
		assert.Equal(t, KwBrick, Resolve(999, 8))
		assert.Equal(t, KwBrick, Resolve(999, 20))
		assert.Equal(t, KwTetra, Resolve(999, 10))
		assert.Equal(t, KwTetra, Resolve(999, 2))
	}
	{ // same inputs, same keyword
		for i := 0; i < 3; i++ {
			assert.Equal(t, Resolve(285, 4), Resolve(285, 4))
		}
	}
}
