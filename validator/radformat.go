// Package validator performs lightweight structural checks on Radioss
// decks. The checks cover the keyword subset the writefiles package
// generates; the goal is not a full parse, but catching formatting
// mistakes that would stop the solver from loading the deck.
package validator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var numRe = regexp.MustCompile(`^[+-]?(?:\d+\.\d*|\d*\.\d+|\d+)(?:[Ee][+-]?\d+)?$`)

var keywords = []string{
	"/BEGIN",
	"/END",
	"/PART",
	"/PROP",
	"/PRINT",
	"/RUN",
	"/STOP",
	"/TFILE",
	"/VERS",
	"/DT/NODA/CST/0",
	"/ANIM/DT",
	"/H3D/DT",
	"/ANIM",
	"/RFILE",
	"/ADYREL",
	"/MAT/",
	"/FAIL/",
	"/TITLE",
	"/BCS/",
	"/BOUNDARY/PRESCRIBED_MOTION",
	"/GRNOD/NODE/",
	"/INTER/TYPE",
	"/FRICTION",
	"/IMPVEL",
	"/GRAVITY",
	"/INCLUDE",
	"/NODE",
	"/SHELL",
	"/BRICK",
	"/TETRA",
	"/RBODY/",
	"/RBE2/",
	"/RBE3/",
	"/TH/",
	"/FUNCT/",
	"/SUBSET/",
	"/SENSOR/",
}

const allowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789._+-/ (),"

// ValidateFile validates the deck at path.
func ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Validate(f)
}

// Validate checks the structure of a deck. It returns an error naming
// the first unexpected keyword or malformed block.
func Validate(r io.Reader) error {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t"))
	}
	if err := sc.Err(); err != nil {
		return err
	}

	anyKeyword := false
	for _, ln := range lines {
		if strings.HasPrefix(ln, "/") {
			anyKeyword = true
			break
		}
	}
	if !anyKeyword {
		return fmt.Errorf("no Radioss keywords found")
	}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		switch {
		case line == "" || strings.HasPrefix(line, "#include"):
			i++
		case strings.HasPrefix(line, "#"):
			i++
		case strings.HasPrefix(line, "/BCS/"):
			if i+3 >= len(lines) {
				return fmt.Errorf("incomplete /BCS block")
			}
			if strings.TrimSpace(lines[i+1]) == "" {
				return fmt.Errorf("BCS name missing")
			}
			if !strings.HasPrefix(lines[i+2], "#") {
				return fmt.Errorf("BCS header missing")
			}
			nums := strings.Fields(lines[i+3])
			if len(nums) < 4 || !isDigits(nums[0]) {
				return fmt.Errorf("invalid /BCS data")
			}
			i += 4
		case strings.HasPrefix(line, "/BOUNDARY/PRESCRIBED_MOTION"):
			if i+4 >= len(lines) {
				return fmt.Errorf("incomplete prescribed motion block")
			}
			if strings.TrimSpace(lines[i+1]) == "" {
				return fmt.Errorf("motion name missing")
			}
			if !strings.HasPrefix(lines[i+2], "#") {
				return fmt.Errorf("prescribed motion header missing")
			}
			if !isNumber(firstField(lines[i+4])) {
				return fmt.Errorf("invalid prescribed motion value")
			}
			i += 5
		case strings.HasPrefix(line, "/INTER/TYPE7"):
			if i+4 >= len(lines) {
				return fmt.Errorf("incomplete TYPE7 block")
			}
			if !strings.HasPrefix(lines[i+3], "/FRICTION") {
				return fmt.Errorf("TYPE7 missing /FRICTION")
			}
			i += 5
		case strings.HasPrefix(line, "/INTER/TYPE2"):
			if i+3 >= len(lines) {
				return fmt.Errorf("incomplete TYPE2 block")
			}
			if !strings.HasPrefix(lines[i+2], "/FRICTION") {
				return fmt.Errorf("TYPE2 missing /FRICTION")
			}
			i += 4
		case strings.HasPrefix(line, "/RBODY/"):
			if i+7 >= len(lines) {
				return fmt.Errorf("incomplete /RBODY block")
			}
			i += 8
		case strings.HasPrefix(line, "/RBE2/"):
			if i+4 >= len(lines) {
				return fmt.Errorf("incomplete /RBE2 block")
			}
			i += 5
		case strings.HasPrefix(line, "/RBE3/"):
			if i+5 >= len(lines) {
				return fmt.Errorf("incomplete /RBE3 block")
			}
			i += 6
		case strings.HasPrefix(line, "/SUBSET/"):
			next, err := validateIDBlock(lines, i, "subset", true)
			if err != nil {
				return err
			}
			i = next
		case strings.HasPrefix(line, "/GRNOD/NODE/"):
			next, err := validateIDBlock(lines, i, "GRNOD", false)
			if err != nil {
				return err
			}
			i = next
		case strings.HasPrefix(line, "/GRAVITY"):
			if i+2 >= len(lines) {
				return fmt.Errorf("incomplete /GRAVITY block")
			}
			if len(strings.Fields(lines[i+1])) != 2 {
				return fmt.Errorf("/GRAVITY header format")
			}
			if !allNumbers(lines[i+2]) {
				return fmt.Errorf("invalid gravity vector")
			}
			i += 3
		case strings.HasPrefix(line, "/"):
			if !startsWithKeyword(firstField(line)) {
				return fmt.Errorf("unknown keyword: %s", line)
			}
			i++
		default:
			if allNumbers(line) {
				i++
				continue
			}
			for _, r := range line {
				if !strings.ContainsRune(allowedChars, r) {
					return fmt.Errorf("invalid characters: %s", line)
				}
			}
			i++
		}
	}
	return nil
}

// validateIDBlock checks a /SUBSET or /GRNOD block: a name line followed
// by identifier lines until the next keyword. multi allows several ids
// per line.
func validateIDBlock(lines []string, idx int, what string, multi bool) (int, error) {
	if idx+1 >= len(lines) {
		return 0, fmt.Errorf("incomplete /%s block", strings.ToUpper(what))
	}
	if strings.TrimSpace(lines[idx+1]) == "" {
		return 0, fmt.Errorf("missing %s name", what)
	}
	i := idx + 2
	for i < len(lines) {
		t := strings.TrimSpace(lines[i])
		if t == "" || strings.HasPrefix(t, "#") {
			i++
			continue
		}
		if strings.HasPrefix(t, "/") {
			break
		}
		if multi {
			for _, tok := range strings.Fields(t) {
				if !isDigits(tok) {
					return 0, fmt.Errorf("invalid %s id: %s", what, tok)
				}
			}
		} else if !isDigits(t) {
			return 0, fmt.Errorf("invalid node id: %s", t)
		}
		i++
	}
	return i, nil
}

func startsWithKeyword(text string) bool {
	for _, kw := range keywords {
		if strings.HasPrefix(text, kw) {
			return true
		}
	}
	return false
}

func isNumber(text string) bool { return numRe.MatchString(text) }

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allNumbers(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !isNumber(f) {
			return false
		}
	}
	return true
}

func firstField(line string) string {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
