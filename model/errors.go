package model

import "fmt"

// MalformedRecordError reports a data line that cannot be parsed into the
// expected numeric shape. It aborts parsing of the file.
type MalformedRecordError struct {
	Block string
	Line  int
	Msg   string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s block, line %d: %s", e.Block, e.Line, e.Msg)
}

// DanglingReferenceError reports an entity referencing an identifier that
// is absent from the relevant entity set.
type DanglingReferenceError struct {
	Kind    string
	ID      int
	RefKind string
	Ref     int
}

func (e *DanglingReferenceError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d references undefined %s %d", e.Kind, e.ID, e.RefKind, e.Ref)
	}
	return fmt.Sprintf("%s references undefined %s %d", e.Kind, e.RefKind, e.Ref)
}

// UnresolvedReferenceError reports a requested card naming a selection
// that does not exist. Assembly aborts rather than emit a dangling deck.
type UnresolvedReferenceError struct {
	Card      string
	Selection string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s references undefined selection %q", e.Card, e.Selection)
}

// IdentifierCollisionError reports a duplicate reservation inside one
// numbering space. The allocator invariant makes this unreachable from
// valid input, so it signals a logic fault and must abort loudly.
type IdentifierCollisionError struct {
	Space string
	ID    int
}

func (e *IdentifierCollisionError) Error() string {
	return fmt.Sprintf("identifier %d already used in %s numbering space", e.ID, e.Space)
}
