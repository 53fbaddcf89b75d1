package validator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JPsnipe/OPEN-RADIOSS/InputParameters"
	"github.com/JPsnipe/OPEN-RADIOSS/model"
	"github.com/JPsnipe/OPEN-RADIOSS/writefiles"
)

// Generated decks must pass their own validation.
func TestValidateGeneratedDeck(t *testing.T) {
	m := model.NewModel()
	coords := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	for i, c := range coords {
		m.Nodes[i+1] = model.Node{ID: i + 1, X: c[0], Y: c[1], Z: c[2]}
	}
	m.Elements = append(m.Elements,
		model.Element{ID: 1, Etype: 185, Nodes: []int{1, 2, 3, 4, 5, 6, 7, 8}, Keyword: model.KwBrick},
	)
	m.AddSelectionMembers("rim", model.ElementSelection, []int{1})
	m.AddSelectionMembers("FIXED", model.NodeSelection, []int{1, 2})

	params := InputParameters.NewConversionParameters()
	params.Title = "drop test"
	params.Materials = []InputParameters.Material{
		{ID: 2, Law: "LAW2", Name: "dp600", Fail: "FAIL/JOHNSON"},
	}
	params.BoundaryConditions = []InputParameters.BoundaryCondition{
		{Name: "fix", Tra: "111", Rot: "111", Selection: "FIXED"},
		{Name: "push", Type: "PRESCRIBED_MOTION", Dir: 3, Value: 1.5, Nodes: []int{5}},
	}
	params.Interfaces = []InputParameters.Interface{
		{Name: "contact", Type: "TYPE7", Slave: []int{1}, Master: []int{2}, Fric: 0.1},
	}
	params.Gravity = &InputParameters.Gravity{G: 9.81, NZ: -1}
	params.RigidBodies = []InputParameters.RigidBody{
		{Name: "hub", MasterNode: 1, Nodes: []int{1, 2}, Mass: 1},
	}
	params.RBE2 = []InputParameters.RBE2{{Name: "link", MasterNode: 1, Nodes: []int{2}}}
	params.RBE3 = []InputParameters.RBE3{
		{Name: "spider", Dependent: 3, Independent: [][2]float64{{4, 1}}},
	}

	d, err := writefiles.NewDeck(m, params)
	assert.NoError(t, err)

	var starter, engine, mesh bytes.Buffer
	assert.NoError(t, d.WriteStarter(&starter))
	assert.NoError(t, d.WriteEngine(&engine))
	assert.NoError(t, d.WriteMesh(&mesh))

	assert.NoError(t, Validate(bytes.NewReader(starter.Bytes())))
	assert.NoError(t, Validate(bytes.NewReader(engine.Bytes())))
	assert.NoError(t, Validate(bytes.NewReader(mesh.Bytes())))
}

func TestValidateRejects(t *testing.T) {
	{ // unknown keyword
		err := Validate(strings.NewReader("/BEGIN\n/WOBBLE/1\n/END\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown keyword")
	}
	{ // truncated BCS block
		err := Validate(strings.NewReader("/BCS/1\nfix\n"))
		assert.Error(t, err)
	}
	{ // TYPE7 without its friction card
		deck := "/INTER/TYPE7/1\ncontact\n         1         2\n0.1\n0.2\n"
		err := Validate(strings.NewReader(deck))
		assert.Error(t, err)
	}
	{ // no keywords at all
		err := Validate(strings.NewReader("just text\n"))
		assert.Error(t, err)
	}
	{ // non-numeric subset member
		deck := "/SUBSET/1\nrim\n1 x\n/END\n"
		err := Validate(strings.NewReader(deck))
		assert.Error(t, err)
	}
}
