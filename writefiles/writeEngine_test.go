package writefiles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JPsnipe/OPEN-RADIOSS/InputParameters"
	"github.com/JPsnipe/OPEN-RADIOSS/model"
)

func TestWriteEngineDefaults(t *testing.T) {
	d, err := NewDeck(model.NewModel(), nil)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, d.WriteEngine(&buf))

	expected := `#RADIOSS ENGINE
/RUN/model/1
1
/ANIM/DT
0 0.05
/TFILE
0.001
/DT/NODA/CST/0
0.9 0
/PRINT/-500/100
/STOP
0 0 0 1 1 0
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteEngineCardOmission(t *testing.T) {
	params := InputParameters.NewConversionParameters()
	params.AnimDT = nil
	params.TfileDT = nil
	params.DTRatio = nil
	params.PrintLine = nil
	params.Stop = nil
	n := 2
	params.RfileN = &n
	h3d := 0.02
	params.H3DDT = &h3d
	params.Adyrel = &InputParameters.AdyrelSettings{Start: 0, Stop: 0.4}

	d, err := NewDeck(model.NewModel(), params)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, d.WriteEngine(&buf))
	out := buf.String()

	assert.NotContains(t, out, "/ANIM/DT")
	assert.NotContains(t, out, "/TFILE")
	assert.NotContains(t, out, "/STOP")
	assert.Contains(t, out, "/PRINT/-500\n")
	assert.Contains(t, out, "/RFILE/2\n")
	assert.Contains(t, out, "/H3D/DT\n0 0.02\n")
	assert.Contains(t, out, "/ADYREL\n0 0.4\n")
}

func TestWriteEngineDisabled(t *testing.T) {
	params := InputParameters.NewConversionParameters()
	params.EmitControlCards = false
	d, err := NewDeck(model.NewModel(), params)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, d.WriteEngine(&buf))
	assert.Equal(t, "#RADIOSS ENGINE\n", buf.String())
}

func TestWriteRadCombined(t *testing.T) {
	d, err := NewDeck(wheelModel(), nil)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, d.WriteRad(&buf))
	out := buf.String()

	// one file holding the starter cards, then the control cards, with
	// the end marker closing the whole deck
	assert.Contains(t, out, "/RUN/model/1\n1\n")
	assert.True(t, strings.Index(out, "/SUBSET/") < strings.Index(out, "/RUN/"))
	assert.True(t, strings.HasSuffix(out, "/STOP\n0 0 0 1 1 0\n/END\n"))
	assert.Equal(t, 1, strings.Count(out, "/END\n"))
}
