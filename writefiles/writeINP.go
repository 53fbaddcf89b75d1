package writefiles

import (
	"io"
	"strconv"
	"strings"

	"github.com/JPsnipe/OPEN-RADIOSS/model"
)

// abaqusTypes maps a keyword and node count to the Abaqus element type.
var abaqusTypes = map[model.Keyword]map[int]string{
	model.KwShell: {4: "S4", 3: "S3"},
	model.KwBrick: {8: "C3D8", 20: "C3D20"},
	model.KwTetra: {4: "C3D4", 10: "C3D10"},
}

// WriteINP exports the mesh and named selections as a minimal Abaqus
// input deck. Geometry and sets only; materials are deliberately left
// out of this export.
func WriteINP(w io.Writer, m *model.Model) error {
	lw := &lineWriter{w: w}
	lw.line("*NODE")
	for _, nid := range m.SortedNodeIDs() {
		nd := m.Nodes[nid]
		lw.line("%d, %.6f, %.6f, %.6f", nd.ID, nd.X, nd.Y, nd.Z)
	}

	var order []model.Keyword
	grouped := make(map[model.Keyword][]model.Element)
	for _, el := range m.Elements {
		if _, seen := grouped[el.Keyword]; !seen {
			order = append(order, el.Keyword)
		}
		grouped[el.Keyword] = append(grouped[el.Keyword], el)
	}
	for _, kw := range order {
		els := grouped[kw]
		atype := abaqusTypes[kw][len(els[0].Nodes)]
		if atype == "" {
			atype = "C3D8"
		}
		lw.line("")
		lw.line("*ELEMENT, TYPE=%s", atype)
		for _, el := range els {
			fields := make([]string, 0, len(el.Nodes)+1)
			fields = append(fields, strconv.Itoa(el.ID))
			for _, nid := range el.Nodes {
				fields = append(fields, strconv.Itoa(nid))
			}
			lw.line("%s", strings.Join(fields, ", "))
		}
	}

	for _, sel := range m.Selections {
		lw.line("")
		if sel.Kind == model.NodeSelection {
			lw.line("*NSET, NSET=%s", sel.Name)
		} else {
			lw.line("*ELSET, ELSET=%s", sel.Name)
		}
		writeIDList(lw, sel.Members)
	}
	return lw.err
}

// writeIDList wraps comma separated ids at 16 per line, the Abaqus data
// line limit.
func writeIDList(lw *lineWriter, ids []int) {
	for i := 0; i < len(ids); i += 16 {
		end := i + 16
		if end > len(ids) {
			end = len(ids)
		}
		fields := make([]string, 0, 16)
		for _, id := range ids[i:end] {
			fields = append(fields, strconv.Itoa(id))
		}
		lw.line("%s", strings.Join(fields, ", "))
	}
}
