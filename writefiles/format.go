package writefiles

import (
	"fmt"
	"io"
	"strconv"
)

// fnum renders a float the shortest way that round-trips, matching the
// free-format numeric fields of the target deck.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// fw renders a float right-aligned in a 20-column field.
func fw(v float64) string {
	return fmt.Sprintf("%20s", fnum(v))
}

// iw renders an integer right-aligned in a 10-column field.
func iw(v int) string {
	return fmt.Sprintf("%10d", v)
}

// lineWriter accumulates the first write error so card emitters can stay
// free of per-line error plumbing.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format+"\n", args...)
}
