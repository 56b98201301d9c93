package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vanshika-gupta001/Student-management/internal/roster"
)

// A flow is an in-progress interactive operation: a short sequence of
// prompts ending in a roster call. The shell feeds each submitted line to
// the active flow and returns to the menu once the flow reports done.
//
// Flows run their lookups inline (they decide the next prompt) but wrap the
// final roster call in a tea.Cmd so its outcome arrives as a message.
type flow interface {
	// prompt returns the label for the line being collected.
	prompt() string
	// submit consumes one input line and advances the flow.
	submit(value string) stepResult
}

// stepResult is the outcome of feeding one line to a flow. output, when
// non-empty, is printed at the given level. done reports that the flow is
// finished; a finished step may carry the command that runs the operation.
type stepResult struct {
	output string
	level  outcome
	done   bool
	cmd    tea.Cmd
}

// outcome selects the style an output line is printed with.
type outcome int

const (
	outcomePlain outcome = iota
	outcomeDone
	outcomeInfo
	outcomeError
)

func abort(msg string) stepResult {
	return stepResult{output: msg, level: outcomeError, done: true}
}

// lookup resolves a roll to its record for the flows that start with one.
// A miss or an empty roll ends the flow; ok reports that the flow may
// continue with the returned record.
func lookup(svc *roster.Service, value, op string) (rec roster.Record, roll string, res stepResult, ok bool) {
	roll = strings.TrimSpace(value)
	if roll == "" {
		return roster.Record{}, "", abort(fmt.Sprintf("Empty roll. Aborting %s.", op)), false
	}
	rec, err := svc.Find(roll)
	if errors.Is(err, roster.ErrNotFound) {
		return roster.Record{}, "", stepResult{
			output: fmt.Sprintf("No student found with roll %q.", roll),
			level:  outcomeInfo,
			done:   true,
		}, false
	}
	if err != nil {
		return roster.Record{}, "", abort(err.Error()), false
	}
	return rec, roll, stepResult{}, true
}

// addFlow collects a name and marks for a new record. The assigned roll was
// already previewed when the flow started.
type addFlow struct {
	svc   *roster.Service
	name  string
	stage int
}

func (f *addFlow) prompt() string {
	if f.stage == 0 {
		return "Enter Name: "
	}
	return "Enter Marks (0-100): "
}

func (f *addFlow) submit(value string) stepResult {
	switch f.stage {
	case 0:
		if strings.TrimSpace(value) == "" {
			return abort("Name cannot be empty. Aborting add.")
		}
		f.name = value
		f.stage++
		return stepResult{}
	default:
		svc, name, marks := f.svc, f.name, value
		return stepResult{done: true, cmd: func() tea.Msg {
			rec, err := svc.Add(name, marks)
			if err != nil {
				return errMsg{err}
			}
			return doneMsg(fmt.Sprintf("Student added successfully with Roll %s.", rec.Roll))
		}}
	}
}

// deleteFlow resolves a roll, asks for confirmation, and deletes. Anything
// but an explicit "y" cancels.
type deleteFlow struct {
	svc    *roster.Service
	roll   string
	target roster.Record
	stage  int
}

func (f *deleteFlow) prompt() string {
	if f.stage == 0 {
		return "Enter Roll Number to delete: "
	}
	return fmt.Sprintf("Are you sure you want to delete %s (roll %s)? [y/N]: ", f.target.Name, f.target.Roll)
}

func (f *deleteFlow) submit(value string) stepResult {
	switch f.stage {
	case 0:
		rec, roll, res, ok := lookup(f.svc, value, "delete")
		if !ok {
			return res
		}
		f.target = rec
		f.roll = roll
		f.stage++
		return stepResult{}
	default:
		if !strings.EqualFold(strings.TrimSpace(value), "y") {
			return stepResult{output: "Delete cancelled.", level: outcomeInfo, done: true}
		}
		svc, roll := f.svc, f.roll
		return stepResult{done: true, cmd: func() tea.Msg {
			if _, err := svc.Delete(roll); err != nil {
				return errMsg{err}
			}
			return doneMsg("Student deleted and changes saved.")
		}}
	}
}

// searchFlow collects one query and prints the matches.
type searchFlow struct {
	svc *roster.Service
}

func (f *searchFlow) prompt() string {
	return "Search by Roll or Name (partial allowed): "
}

func (f *searchFlow) submit(value string) stepResult {
	query := strings.TrimSpace(value)
	if query == "" {
		return abort("Empty query. Aborting search.")
	}
	svc := f.svc
	return stepResult{done: true, cmd: func() tea.Msg {
		matches, err := svc.Search(query)
		if err != nil {
			return errMsg{err}
		}
		if len(matches) == 0 {
			return infoMsg("No matching student records found.")
		}
		return tableMsg{
			heading: fmt.Sprintf("Found %d result(s):", len(matches)),
			records: matches,
		}
	}}
}

// editFlow resolves a roll, then offers the current name and marks for
// replacement. Blank answers keep the stored values.
type editFlow struct {
	svc     *roster.Service
	roll    string
	current roster.Record
	newName string
	stage   int
}

func (f *editFlow) prompt() string {
	switch f.stage {
	case 0:
		return "Enter Roll Number to edit: "
	case 1:
		return fmt.Sprintf("Enter new name [%s] (press Enter to keep): ", f.current.Name)
	default:
		return fmt.Sprintf("Enter new marks [%s] (press Enter to keep): ", f.current.Marks)
	}
}

func (f *editFlow) submit(value string) stepResult {
	switch f.stage {
	case 0:
		rec, roll, res, ok := lookup(f.svc, value, "edit")
		if !ok {
			return res
		}
		f.current = rec
		f.roll = roll
		f.stage++
		return stepResult{
			output: fmt.Sprintf("Editing %s (Roll %s)", rec.Name, rec.Roll),
			level:  outcomePlain,
		}
	case 1:
		f.newName = value
		f.stage++
		return stepResult{}
	default:
		svc, roll, name, marks := f.svc, f.roll, f.newName, value
		return stepResult{done: true, cmd: func() tea.Msg {
			if _, err := svc.Edit(roll, name, marks); err != nil {
				return errMsg{err}
			}
			return doneMsg("Student updated and saved.")
		}}
	}
}
