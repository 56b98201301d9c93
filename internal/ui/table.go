package ui

import (
	"fmt"
	"strings"

	"github.com/Vanshika-gupta001/Student-management/internal/roster"
)

// Fixed column widths of the on-screen table. Longer values widen their row
// rather than being truncated.
const (
	rollColWidth  = 10
	nameColWidth  = 30
	marksColWidth = 6
)

// renderTable formats records as the fixed-width listing used by the list
// and search operations: Roll | Name | Marks columns under a dash divider.
func renderTable(styles Styles, records []roster.Record) string {
	var b strings.Builder
	header := tableRow(roster.DisplayHeader[0], roster.DisplayHeader[1], roster.DisplayHeader[2])
	b.WriteString(styles.Header.Render(header))
	b.WriteByte('\n')
	b.WriteString(styles.Divider.Render(strings.Repeat("-", len(header))))
	for _, rec := range records {
		b.WriteByte('\n')
		b.WriteString(tableRow(rec.Roll, rec.Name, rec.Marks))
	}
	return b.String()
}

func tableRow(roll, name, marks string) string {
	return fmt.Sprintf("%-*s | %-*s | %-*s",
		rollColWidth, roll, nameColWidth, name, marksColWidth, marks)
}

// renderListing wraps a table with its optional heading and footer lines.
func renderListing(styles Styles, msg tableMsg) string {
	var parts []string
	if msg.heading != "" {
		parts = append(parts, msg.heading)
	}
	parts = append(parts, renderTable(styles, msg.records))
	if msg.footer != "" {
		parts = append(parts, "", msg.footer)
	}
	return strings.Join(parts, "\n")
}

// renderStats formats the statistics block: average, top marks, and one line
// per topper.
func renderStats(st roster.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Average Marks: %s\n", roster.FormatMarks(st.Average))
	fmt.Fprintf(&b, "Top Marks: %s\n", roster.FormatMarks(st.TopMarks))
	b.WriteString("Topper(s):")
	for _, t := range st.Toppers {
		fmt.Fprintf(&b, "\n - %s (Roll %s): %s", t.Name, t.Roll, t.Marks)
	}
	return b.String()
}
