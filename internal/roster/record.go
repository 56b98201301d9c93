package roster

import (
	"math"
	"strconv"
	"strings"
)

// Header lists the roster's column names in storage order. The roster file
// and the CSV export both begin with this row.
var Header = []string{"roll", "name", "marks"}

// DisplayHeader is the capitalized form used by the on-screen table and the
// PDF report.
var DisplayHeader = []string{"Roll", "Name", "Marks"}

// Record is a single student entry as it appears in the roster file.
//
// All fields are raw strings. Values loaded from a hand-edited file keep
// whatever the file contains, and saving writes the same values back out, so
// a load/save cycle never rewrites data it did not touch. Marks written by
// Add and Edit always carry the canonical formatting produced by
// [FormatMarks].
type Record struct {
	Roll  string
	Name  string
	Marks string
}

// Row returns the record's fields in Header order.
func (r Record) Row() []string {
	return []string{r.Roll, r.Name, r.Marks}
}

// MarksValue returns the record's marks parsed as a number, substituting 0.0
// when the value does not parse. Statistics use this substitution so a roster
// with stray hand-edited marks still produces a report instead of aborting.
func (r Record) MarksValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.Marks), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseMarks validates a marks input string and returns its numeric value.
// The input is trimmed first and must parse as a real number in [0, 100]
// inclusive; NaN is rejected. Out-of-range values are errors, never clamped.
func ParseMarks(input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) {
		return 0, ValidationError{Field: "marks", Message: "must be a number between 0 and 100"}
	}
	if v < 0 || v > 100 {
		return 0, ValidationError{Field: "marks", Message: "must be between 0 and 100"}
	}
	return v, nil
}

// FormatMarks renders a marks value in its canonical storage form: integral
// values drop the decimal point ("93"), fractional values keep the shortest
// decimal representation that round-trips ("93.5").
func FormatMarks(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
