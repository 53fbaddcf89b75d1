package model

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Node is a mesh point from an NBLOCK record. Immutable after parsing.
type Node struct {
	ID      int
	X, Y, Z float64
}

// Element is one EBLOCK record with its connectivity in source order and
// the Radioss keyword resolved once at parse time.
type Element struct {
	ID      int
	Etype   int
	Nodes   []int
	Keyword Keyword
}

type SelectionKind uint8

const (
	NodeSelection SelectionKind = iota
	ElementSelection
)

func (k SelectionKind) String() string {
	if k == NodeSelection {
		return "NODE"
	}
	return "ELEM"
}

// Selection is a named CMBLOCK component. Same-named blocks of the same
// kind accumulate into one Selection.
type Selection struct {
	Name    string
	Kind    SelectionKind
	Members []int
}

// MaterialRecord accumulates MP/MPDATA parameters for one material id.
// Repeated records merge, last value per parameter wins.
type MaterialRecord struct {
	ID     int
	Law    string // LAW1, LAW2, LAW27, LAW36, LAW44
	Name   string
	Params map[string]float64
	Fail   *FailureModel
	Curve  [][2]float64 // LAW36 hardening curve, strain/stress pairs
}

// FailureModel is an optional damage law attached to a material. A model
// declared by type alone is completed with reference coefficients at
// assembly time.
type FailureModel struct {
	Type   string // FAIL/JOHNSON, FAIL/BIQUAD, FAIL/TAB1
	Params map[string]float64
}

// Model is the in-memory form of one .cdb file. It is built once by the
// parser and owned by a single translation run.
type Model struct {
	Nodes      map[int]Node
	Elements   []Element
	Selections []Selection
	Materials  map[int]*MaterialRecord
}

func NewModel() *Model {
	return &Model{
		Nodes:     make(map[int]Node),
		Materials: make(map[int]*MaterialRecord),
	}
}

// Selection returns the named selection of the given kind, or nil.
func (m *Model) Selection(name string, kind SelectionKind) *Selection {
	for i := range m.Selections {
		if m.Selections[i].Name == name && m.Selections[i].Kind == kind {
			return &m.Selections[i]
		}
	}
	return nil
}

// AddSelectionMembers appends ids to the named selection, creating it on
// first use. Accumulation across repeated CMBLOCKs is deliberate: the
// source format may split one component over several blocks.
func (m *Model) AddSelectionMembers(name string, kind SelectionKind, ids []int) {
	if sel := m.Selection(name, kind); sel != nil {
		sel.Members = append(sel.Members, ids...)
		return
	}
	m.Selections = append(m.Selections, Selection{Name: name, Kind: kind, Members: ids})
}

// Material returns the record for id, creating an empty one on first use.
func (m *Model) Material(id int) *MaterialRecord {
	mat, ok := m.Materials[id]
	if !ok {
		mat = &MaterialRecord{ID: id, Params: make(map[string]float64)}
		m.Materials[id] = mat
	}
	return mat
}

// SortedNodeIDs returns node ids in ascending order, the order the /NODE
// block is written in.
func (m *Model) SortedNodeIDs() []int {
	ids := make([]int, 0, len(m.Nodes))
	for id := range m.Nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SortedMaterialIDs returns material ids in ascending order.
func (m *Model) SortedMaterialIDs() []int {
	ids := make([]int, 0, len(m.Materials))
	for id := range m.Materials {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Validate checks referential integrity: every element connectivity entry
// and every selection member must name an existing entity.
func (m *Model) Validate() error {
	elems := make(map[int]bool, len(m.Elements))
	for _, el := range m.Elements {
		elems[el.ID] = true
		for _, nid := range el.Nodes {
			if _, ok := m.Nodes[nid]; !ok {
				return &DanglingReferenceError{
					Kind: "element", ID: el.ID, RefKind: "node", Ref: nid,
				}
			}
		}
	}
	for _, sel := range m.Selections {
		for _, id := range sel.Members {
			switch sel.Kind {
			case NodeSelection:
				if _, ok := m.Nodes[id]; !ok {
					return &DanglingReferenceError{
						Kind: "selection " + sel.Name, RefKind: "node", Ref: id,
					}
				}
			case ElementSelection:
				if !elems[id] {
					return &DanglingReferenceError{
						Kind: "selection " + sel.Name, RefKind: "element", Ref: id,
					}
				}
			}
		}
	}
	return nil
}

// KeywordCounts returns element counts per resolved keyword.
func (m *Model) KeywordCounts() map[Keyword]int {
	counts := make(map[Keyword]int)
	for _, el := range m.Elements {
		counts[el.Keyword]++
	}
	return counts
}

// EtypeCounts returns element counts per source type code.
func (m *Model) EtypeCounts() map[int]int {
	counts := make(map[int]int)
	for _, el := range m.Elements {
		counts[el.Etype]++
	}
	return counts
}

// BoundingBox returns the coordinate extents of the mesh as
// (xmin, xmax, ymin, ymax, zmin, zmax). ok is false for an empty mesh.
func (m *Model) BoundingBox() (bb [6]float64, ok bool) {
	if len(m.Nodes) == 0 {
		return
	}
	xs := make([]float64, 0, len(m.Nodes))
	ys := make([]float64, 0, len(m.Nodes))
	zs := make([]float64, 0, len(m.Nodes))
	for _, nd := range m.Nodes {
		xs = append(xs, nd.X)
		ys = append(ys, nd.Y)
		zs = append(zs, nd.Z)
	}
	bb = [6]float64{
		floats.Min(xs), floats.Max(xs),
		floats.Min(ys), floats.Max(ys),
		floats.Min(zs), floats.Max(zs),
	}
	ok = true
	return
}
