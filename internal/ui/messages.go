package ui

import "github.com/Vanshika-gupta001/Student-management/internal/roster"

// Operation commands report back to the shell through these messages. Each
// carries a finished outcome; the shell prints it and returns to the menu.
type (
	// doneMsg is a successful mutation or export.
	doneMsg string

	// infoMsg is a normal non-success outcome: a cancelled delete, an empty
	// roster, an unavailable export.
	infoMsg string

	// errMsg is a failed operation.
	errMsg struct{ err error }

	// tableMsg is a set of records to print as a table, with optional
	// heading and footer lines.
	tableMsg struct {
		heading string
		records []roster.Record
		footer  string
	}

	// statsMsg is a computed statistics block.
	statsMsg roster.Stats
)
