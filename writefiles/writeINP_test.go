package writefiles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteINP(t *testing.T) {
	m := wheelModel()
	var buf bytes.Buffer
	assert.NoError(t, WriteINP(&buf, m))
	out := buf.String()

	assert.Contains(t, out, "*NODE\n1, 0.000000, 0.000000, 0.000000\n")
	assert.Contains(t, out, "*ELEMENT, TYPE=C3D8\n1, 1, 2, 3, 4, 5, 6, 7, 8\n")
	assert.Contains(t, out, "*ELEMENT, TYPE=S4\n2, 1, 2, 3, 4\n")
	assert.Contains(t, out, "*ELSET, ELSET=wheel\n2\n")
	assert.Contains(t, out, "*NSET, NSET=FIXED\n1, 2\n")
}
