package model

// Keyword is the Radioss element block an element is written under.
type Keyword string

const (
	KwShell Keyword = "SHELL"
	KwBrick Keyword = "BRICK"
	KwTetra Keyword = "TETRA"
)

// etypeKeywords maps ANSYS element type codes to their Radioss block.
// Codes absent from the table fall back to the node-count heuristic.
var etypeKeywords = map[int]Keyword{
	// shells and 2D solids
	41:  KwShell,
	43:  KwShell,
	63:  KwShell,
	143: KwShell,
	181: KwShell,
	182: KwShell,
	281: KwShell,
	// hexahedral solids
	45:  KwBrick,
	95:  KwBrick,
	185: KwBrick,
	186: KwBrick,
	// tetrahedral solids
	92:  KwTetra,
	187: KwTetra,
	285: KwTetra,
}

// Resolve maps a source element type code and node count to an output
// keyword. Table lookup wins; otherwise the node count decides: 3 or 4
// nodes read as a shell, 8 or 20 as a brick, anything else defaults to
// the tetra family. Always returns a keyword: assembly must proceed even
// for unanticipated types.
func Resolve(etype, nodeCount int) Keyword {
	if kw, ok := etypeKeywords[etype]; ok {
		return kw
	}
	switch nodeCount {
	case 3, 4:
		return KwShell
	case 8, 20:
		return KwBrick
	default:
		return KwTetra
	}
}
