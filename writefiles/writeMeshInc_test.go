package writefiles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JPsnipe/OPEN-RADIOSS/model"
)

func TestWriteMeshInc(t *testing.T) {
	m := model.NewModel()
	m.Nodes[2] = model.Node{ID: 2, X: 1, Y: 0.5, Z: 0}
	m.Nodes[1] = model.Node{ID: 1, X: 0, Y: 0, Z: 0}
	el := model.Element{ID: 1, Etype: 999, Nodes: []int{1, 2}}
	el.Keyword = model.Resolve(el.Etype, len(el.Nodes))
	m.Elements = append(m.Elements, el)

	var buf bytes.Buffer
	assert.NoError(t, WriteMeshInc(&buf, m))

	// nodes in id order, the unclassifiable element still written out
	expected := `/NODE
         1       0.000000       0.000000       0.000000
         2       1.000000       0.500000       0.000000

/TETRA
         1         1         2
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteMeshIncBlockOrder(t *testing.T) {
	m := model.NewModel()
	for i := 1; i <= 8; i++ {
		m.Nodes[i] = model.Node{ID: i}
	}
	m.Elements = append(m.Elements,
		model.Element{ID: 1, Etype: 181, Nodes: []int{1, 2, 3, 4}, Keyword: model.KwShell},
		model.Element{ID: 2, Etype: 185, Nodes: []int{1, 2, 3, 4, 5, 6, 7, 8}, Keyword: model.KwBrick},
		model.Element{ID: 3, Etype: 181, Nodes: []int{5, 6, 7, 8}, Keyword: model.KwShell},
	)

	var buf bytes.Buffer
	assert.NoError(t, WriteMeshInc(&buf, m))
	out := buf.String()

	// one block per keyword in first-encounter order, elements grouped
	shell := bytes.Index(buf.Bytes(), []byte("/SHELL"))
	brick := bytes.Index(buf.Bytes(), []byte("/BRICK"))
	assert.True(t, shell >= 0 && brick > shell)
	assert.Contains(t, out, "/SHELL\n"+iw(1)+iw(1)+iw(2)+iw(3)+iw(4)+"\n"+iw(3)+iw(5)+iw(6)+iw(7)+iw(8)+"\n")
}
