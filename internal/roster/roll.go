package roster

import (
	"math"
	"strconv"
	"strings"
)

// NextRoll returns the roll number to assign to the next record.
//
// Rolls compare numerically: the next roll is one more than the largest roll
// that parses as an unsigned integer, and records whose rolls do not parse,
// or sit at the uint64 ceiling where incrementing would wrap, are skipped.
// An empty roster starts at start. When no roll is usable at all, the
// fallback is start + len(existing); that value can collide with an existing
// non-numeric roll, which is the accepted policy for hand-edited files
// rather than a condition to guard against.
func NextRoll(existing []Record, start int) string {
	if len(existing) == 0 {
		return strconv.Itoa(start)
	}
	var highest uint64
	found := false
	for _, rec := range existing {
		n, err := strconv.ParseUint(strings.TrimSpace(rec.Roll), 10, 64)
		if err != nil || n == math.MaxUint64 {
			continue
		}
		if !found || n > highest {
			highest = n
			found = true
		}
	}
	if !found {
		return strconv.Itoa(start + len(existing))
	}
	return strconv.FormatUint(highest+1, 10)
}
