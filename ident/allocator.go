// Package ident assigns numeric identifiers for entities the writers must
// synthesize: subsets, node groups, auto-generated properties, parts and
// materials. Each entity class owns one used-id set; classes that share a
// target numbering space share one running maximum, so a fresh id always
// clears every class in the space. The allocator is passed explicitly to
// whichever component needs an id — no hidden global counters.
package ident

import "github.com/JPsnipe/OPEN-RADIOSS/model"

// Entity classes known to the writers.
const (
	ClassMat    = "mat"
	ClassProp   = "prop"
	ClassPart   = "part"
	ClassSubset = "subset"
	ClassGrnod  = "grnod"
	ClassFunct  = "funct"
)

// Materials, properties, parts and subsets draw fresh ids from one shared
// starter space; node groups and functions number independently.
var classSpaces = map[string]string{
	ClassMat:    "starter",
	ClassProp:   "starter",
	ClassPart:   "starter",
	ClassSubset: "starter",
}

func spaceOf(class string) string {
	if sp, ok := classSpaces[class]; ok {
		return sp
	}
	return class
}

// Allocator hands out identifiers for one translation run. Allocation
// order is the order components request ids, which makes repeated runs on
// the same input reproducible.
type Allocator struct {
	used map[string]map[int]bool // per class
	max  map[string]int          // per space
}

func NewAllocator() *Allocator {
	return &Allocator{
		used: make(map[string]map[int]bool),
		max:  make(map[string]int),
	}
}

func (a *Allocator) class(name string) map[int]bool {
	c, ok := a.used[name]
	if !ok {
		c = make(map[int]bool)
		a.used[name] = c
	}
	return c
}

// Reserve claims an identifier already fixed by the source data. A
// duplicate claim within one class is an IdentifierCollisionError, never
// a silent renumber.
func (a *Allocator) Reserve(class string, id int) error {
	if a.class(class)[id] {
		return &model.IdentifierCollisionError{Space: class, ID: id}
	}
	a.mark(class, id)
	return nil
}

// Allocate returns preferred when it is positive and unused within the
// class, otherwise the smallest id strictly greater than the current
// maximum across every class sharing the numbering space. Pass 0 for no
// preference.
func (a *Allocator) Allocate(class string, preferred int) int {
	if preferred > 0 && !a.class(class)[preferred] {
		a.mark(class, preferred)
		return preferred
	}
	id := a.max[spaceOf(class)] + 1
	a.mark(class, id)
	return id
}

// Used reports whether id is taken within the class.
func (a *Allocator) Used(class string, id int) bool {
	return a.class(class)[id]
}

// Max returns the highest id in use across the class's numbering space.
func (a *Allocator) Max(class string) int {
	return a.max[spaceOf(class)]
}

func (a *Allocator) mark(class string, id int) {
	a.class(class)[id] = true
	if sp := spaceOf(class); id > a.max[sp] {
		a.max[sp] = id
	}
}
