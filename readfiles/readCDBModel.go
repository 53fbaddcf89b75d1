// Package readfiles parses ANSYS Mechanical .cdb mesh exports into the
// internal model consumed by the deck writers.
package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JPsnipe/OPEN-RADIOSS/model"
)

// blockKind classifies a top-level line of the export. Unrecognized
// headers get the ignore arm: the format carries many blocks (ET, TYPE,
// CSYS, solid model data) the translation does not need.
type blockKind uint8

const (
	blockIgnore blockKind = iota
	blockNode
	blockElement
	blockComponent
	blockMaterial
)

func classify(line string) blockKind {
	switch {
	case strings.HasPrefix(line, "NBLOCK"):
		return blockNode
	case strings.HasPrefix(line, "EBLOCK"):
		return blockElement
	case strings.HasPrefix(line, "CMBLOCK"):
		return blockComponent
	case strings.HasPrefix(line, "MPDATA") || strings.HasPrefix(line, "MPTEMP"),
		strings.HasPrefix(line, "MP,"):
		return blockMaterial
	default:
		return blockIgnore
	}
}

// ReadCDB parses the named .cdb file.
func ReadCDB(filename string) (*model.Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	return ParseCDB(file)
}

// ParseCDB parses .cdb text into a Model. Each recognized block runs
// until its -1 terminator or the next recognized header; everything else
// is skipped. A malformed data line aborts with its line number.
func ParseCDB(r io.Reader) (*model.Model, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	m := model.NewModel()
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		switch classify(line) {
		case blockNode:
			if i, err = readNodeBlock(m, lines, i+1); err != nil {
				return nil, err
			}
		case blockElement:
			if i, err = readElementBlock(m, lines, i+1); err != nil {
				return nil, err
			}
		case blockComponent:
			if i, err = readComponentBlock(m, lines, i); err != nil {
				return nil, err
			}
		case blockMaterial:
			if err = readMaterialLine(m, line, i); err != nil {
				return nil, err
			}
			i++
		default:
			i++
		}
	}
	return m, nil
}

// readNodeBlock consumes NBLOCK data lines starting at index i.
// Each line holds a node id and at least three coordinates.
func readNodeBlock(m *model.Model, lines []string, i int) (int, error) {
	for ; i < len(lines); i++ {
		ln := strings.TrimSpace(lines[i])
		if blockEnds(ln) {
			break
		}
		if ln == "" || isFormatDescriptor(ln) {
			continue
		}
		fields := splitFields(ln)
		if len(fields) < 4 {
			return 0, malformed("NBLOCK", i, "expected node id and 3 coordinates, got %q", ln)
		}
		nid, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, malformed("NBLOCK", i, "bad node id %q", fields[0])
		}
		var xyz [3]float64
		for j := 0; j < 3; j++ {
			if xyz[j], err = strconv.ParseFloat(fields[1+j], 64); err != nil {
				return 0, malformed("NBLOCK", i, "bad coordinate %q", fields[1+j])
			}
		}
		m.Nodes[nid] = model.Node{ID: nid, X: xyz[0], Y: xyz[1], Z: xyz[2]}
	}
	return afterBlock(lines, i), nil
}

// readElementBlock consumes EBLOCK data lines: element id, type code,
// then the connectivity. The output keyword is fixed here, once.
func readElementBlock(m *model.Model, lines []string, i int) (int, error) {
	for ; i < len(lines); i++ {
		ln := strings.TrimSpace(lines[i])
		if blockEnds(ln) {
			break
		}
		if ln == "" || isFormatDescriptor(ln) {
			continue
		}
		fields := splitFields(ln)
		if len(fields) < 3 {
			return 0, malformed("EBLOCK", i, "expected element id, type and connectivity, got %q", ln)
		}
		ints := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return 0, malformed("EBLOCK", i, "bad integer field %q", f)
			}
			ints[j] = v
		}
		el := model.Element{
			ID:    ints[0],
			Etype: ints[1],
			Nodes: ints[2:],
		}
		el.Keyword = model.Resolve(el.Etype, len(el.Nodes))
		m.Elements = append(m.Elements, el)
	}
	return afterBlock(lines, i), nil
}

// readComponentBlock consumes one CMBLOCK: header carries name, kind and
// entry count; data lines carry member ids, where a negative id closes a
// range opened by the preceding positive id. Same-named components
// accumulate.
func readComponentBlock(m *model.Model, lines []string, i int) (int, error) {
	header := splitFields(strings.TrimSpace(lines[i]))
	if len(header) < 4 {
		return 0, malformed("CMBLOCK", i, "expected CMBLOCK,name,kind,count header, got %q", lines[i])
	}
	name := strings.TrimSpace(header[1])
	var kind model.SelectionKind
	switch kw := strings.ToUpper(strings.TrimSpace(header[2])); {
	case kw == "NODE":
		kind = model.NodeSelection
	case strings.HasPrefix(kw, "ELEM"):
		kind = model.ElementSelection
	default:
		// component of an unsupported kind, skip its data lines
		return skipBlock(lines, i+1), nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(header[3]))
	if err != nil {
		return 0, malformed("CMBLOCK", i, "bad entry count %q", header[3])
	}

	var members []int
	prev := 0
	i++
	for read := 0; i < len(lines) && read < count; i++ {
		ln := strings.TrimSpace(lines[i])
		if blockEnds(ln) {
			break
		}
		if ln == "" || isFormatDescriptor(ln) {
			continue
		}
		for _, f := range splitFields(ln) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return 0, malformed("CMBLOCK", i, "bad member id %q", f)
			}
			read++
			if v < 0 {
				// compressed range: prev+1 .. -v
				for id := prev + 1; id <= -v; id++ {
					members = append(members, id)
				}
				continue
			}
			members = append(members, v)
			prev = v
		}
	}
	m.AddSelectionMembers(name, kind, members)
	return i, nil
}

// readMaterialLine folds one MP/MPDATA record into the per-id parameter
// map. Later records merge into earlier ones, last value wins per
// parameter: the export emits one line per property and may restate them.
func readMaterialLine(m *model.Model, line string, i int) error {
	if strings.HasPrefix(line, "MPTEMP") {
		return nil // temperature table header, no parameter payload
	}
	fields := splitFields(line)
	var (
		label string
		mid   = -1
		value float64
		found bool
	)
	for _, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if label == "" {
			if isLabel(f) {
				label = strings.ToUpper(f)
			}
			continue
		}
		if mid < 0 {
			if v, err := strconv.Atoi(f); err == nil {
				mid = v
			}
			continue
		}
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			value = v
			found = true
		}
	}
	if label == "" || mid < 0 {
		return malformed("MPDATA", i, "unrecognized material record %q", line)
	}
	if !found {
		return malformed("MPDATA", i, "no numeric value in %q", line)
	}
	m.Material(mid).Params[label] = value
	return nil
}

func malformed(block string, index int, format string, args ...interface{}) error {
	return &model.MalformedRecordError{
		Block: block,
		Line:  index + 1,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// blockEnds reports the -1 terminator or the start of another block.
func blockEnds(ln string) bool {
	return isTerminator(ln) || classify(ln) != blockIgnore
}

// isTerminator matches the lone -1 block terminator. The first field must
// be exactly -1: other negative leading values are compressed-range close
// ids in CMBLOCK data wrapped onto a new line.
func isTerminator(ln string) bool {
	fields := strings.Fields(ln)
	return len(fields) > 0 && fields[0] == "-1"
}

// afterBlock returns the index the outer scan resumes at: past a -1
// terminator, or at the header of the block that cut this one short.
func afterBlock(lines []string, i int) int {
	if i < len(lines) && isTerminator(strings.TrimSpace(lines[i])) {
		return i + 1
	}
	return i
}

// skipBlock advances past data lines of an unneeded block.
func skipBlock(lines []string, i int) int {
	for ; i < len(lines); i++ {
		ln := strings.TrimSpace(lines[i])
		if blockEnds(ln) {
			if isTerminator(ln) {
				i++
			}
			return i
		}
	}
	return i
}

// isFormatDescriptor matches Fortran format lines like (3i9,6e21.13e3)
// that follow NBLOCK/EBLOCK/CMBLOCK headers.
func isFormatDescriptor(ln string) bool {
	return strings.HasPrefix(ln, "(")
}

// isLabel reports a property label such as EX, NUXY or DENS. Revision
// markers like R5.0 carried by MPDATA are not labels.
func isLabel(f string) bool {
	for _, r := range f {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return false
		}
	}
	return f != ""
}

// splitFields splits a data line on semicolons, then commas, then
// whitespace, mirroring the delimiters the export alternates between.
func splitFields(ln string) []string {
	for _, sep := range []string{";", ","} {
		if strings.Contains(ln, sep) {
			raw := strings.Split(ln, sep)
			fields := make([]string, 0, len(raw))
			for _, f := range raw {
				if f = strings.TrimSpace(f); f != "" {
					fields = append(fields, f)
				}
			}
			return fields
		}
	}
	return strings.Fields(ln)
}

func readLines(r io.Reader) ([]string, error) {
	var (
		lines []string
		sc    = bufio.NewScanner(r)
	)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
