package writefiles

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JPsnipe/OPEN-RADIOSS/InputParameters"
	"github.com/JPsnipe/OPEN-RADIOSS/model"
)

func TestWriteStarterLayout(t *testing.T) {
	params := InputParameters.NewConversionParameters()
	params.Title = "drop test"
	params.RunName = "impact"
	d, err := NewDeck(wheelModel(), params)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, d.WriteStarter(&buf))
	out := buf.String()
	lines := strings.Split(out, "\n")

	assert.Equal(t, "#RADIOSS STARTER", lines[0])
	assert.Equal(t, "/BEGIN", lines[1])
	assert.Equal(t, "impact", lines[2])
	assert.Equal(t, fmt.Sprintf("%10d%10d", 2022, 0), lines[3])
	unitRow := fmt.Sprintf("%20s%20s%20s", "kg", "m", "s")
	assert.Equal(t, unitRow, lines[4])
	assert.Equal(t, unitRow, lines[5])
	assert.Contains(t, out, "/TITLE\ndrop test\n")
	assert.Contains(t, out, "#include mesh.inc\n")
	assert.True(t, strings.HasSuffix(out, "/END\n"))

	// source material with everything declared: values pass through
	assert.Contains(t, out, "/MAT/LAW1/1\nMAT_1\n")
	assert.Contains(t, out, fw(7850)+"\n")
	assert.Contains(t, out, fw(200000)+fw(0.3)+"\n")

	// the include line sits between the materials and the first card
	// referencing mesh entities
	assert.True(t, strings.Index(out, "/MAT/") < strings.Index(out, "#include"))
	assert.True(t, strings.Index(out, "#include") < strings.Index(out, "/GRNOD/"))
}

func TestWriteStarterImperialUnits(t *testing.T) {
	params := InputParameters.NewConversionParameters()
	params.UnitSystem = "Imperial"
	d, err := NewDeck(model.NewModel(), params)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, d.WriteStarter(&buf))
	assert.Contains(t, buf.String(), fmt.Sprintf("%20s%20s%20s", "lb", "in", "s"))
}

func TestWriteStarterBoundaryConditions(t *testing.T) {
	params := InputParameters.NewConversionParameters()
	params.BoundaryConditions = []InputParameters.BoundaryCondition{
		{Name: "fix_rim", Tra: "111", Rot: "111", Selection: "FIXED"},
		{Name: "push", Type: "PRESCRIBED_MOTION", Dir: 3, Value: 12.5, Nodes: []int{5}},
	}
	d, err := NewDeck(wheelModel(), params)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, d.WriteStarter(&buf))
	out := buf.String()

	// fixation reuses the node group planned for the FIXED selection
	assert.Contains(t, out, "/BCS/1\nfix_rim\n")
	assert.Contains(t, out, fmt.Sprintf("%10s%10s%10d%10d", "111", "111", 0, 1)+"\n")

	// explicit node list gets a group of its own
	assert.Contains(t, out, "/BOUNDARY/PRESCRIBED_MOTION/1\npush\n")
	assert.Contains(t, out, fmt.Sprintf("%10d%10d", 3, 2)+"\n12.5\n")
	assert.Contains(t, out, "/GRNOD/NODE/2\npush\n"+iw(5)+"\n")
}

func TestWriteStarterOptionalCards(t *testing.T) {
	params := InputParameters.NewConversionParameters()
	params.Interfaces = []InputParameters.Interface{
		{Name: "tire_road", Type: "TYPE7", SlaveSelection: "FIXED", Master: []int{7, 8}, Fric: 0.2},
		{Name: "spotweld", Type: "TYPE2", Slave: []int{1}, Master: []int{2}},
	}
	params.InitVelocity = &InputParameters.InitialVelocity{Nodes: []int{1, 2}, VZ: -15.6}
	params.Gravity = &InputParameters.Gravity{G: 9.81, NZ: -1}
	params.Sensors = []InputParameters.Sensor{{Name: "t_settle", Tdelay: 0.01}}
	params.RigidBodies = []InputParameters.RigidBody{
		{Name: "hub", MasterNode: 7, Nodes: []int{7, 8}, Mass: 2.5},
	}
	params.RBE2 = []InputParameters.RBE2{{Name: "link", MasterNode: 1, Nodes: []int{2, 3}}}
	params.RBE3 = []InputParameters.RBE3{
		{Name: "spider", Dependent: 4, Independent: [][2]float64{{5, 1}, {6, 0.5}}},
	}
	d, err := NewDeck(wheelModel(), params)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, d.WriteStarter(&buf))
	out := buf.String()

	assert.Contains(t, out, "/INTER/TYPE7/1\ntire_road\n")
	assert.Contains(t, out, "/INTER/TYPE2/2\n")
	assert.Equal(t, 2, strings.Count(out, "/FRICTION\n"))
	assert.Contains(t, out, "/IMPVEL/1\n")
	assert.Contains(t, out, fw(0)+fw(0)+fw(-15.6))
	assert.Contains(t, out, "/GRAVITY\n"+fmt.Sprintf("%10d%10s", 0, "9.81")+"\n0 0 -1\n")
	assert.Contains(t, out, "/SENSOR/TIME/1\nt_settle\n")
	assert.Contains(t, out, "/RBODY/1\nhub\n")
	assert.Contains(t, out, fmt.Sprintf("%10d%10d%10d%10d%10d", 7, 6, 0, 0, 0))
	assert.Contains(t, out, "/RBE2/1\nlink\n")
	assert.Contains(t, out, "/RBE3/1\nspider\n")
	assert.Contains(t, out, iw(5)+fw(1)+iw(6)+fw(0.5))
}
