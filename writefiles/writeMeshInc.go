package writefiles

import (
	"io"

	"github.com/JPsnipe/OPEN-RADIOSS/model"
)

// WriteMeshInc emits the node/element include file: one /NODE block with
// a fixed-format line per node in id order, then one block per resolved
// keyword in order of first encounter over the elements in input order.
// Every parsed element lands in exactly one block.
func WriteMeshInc(w io.Writer, m *model.Model) error {
	lw := &lineWriter{w: w}
	lw.line("/NODE")
	for _, nid := range m.SortedNodeIDs() {
		nd := m.Nodes[nid]
		lw.line("%10d%15.6f%15.6f%15.6f", nd.ID, nd.X, nd.Y, nd.Z)
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
		lw.line("")
		lw.line("/%s", kw)
		for _, el := range grouped[kw] {
			line := iw(el.ID)
			for _, nid := range el.Nodes {
				line += iw(nid)
			}
			lw.line("%s", line)
		}
	}
	return lw.err
}

// WriteMesh writes the include file for this deck. Node groups and
// subsets are starter cards: they live next to the cards that reference
// them, never in the include file.
func (d *Deck) WriteMesh(w io.Writer) error {
	return WriteMeshInc(w, d.Model)
}
