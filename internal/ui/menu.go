package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vanshika-gupta001/Student-management/internal/roster"
)

// menuItem is one numbered entry of the main menu. choose runs when the
// entry is selected: it either installs a flow on the model or kicks off
// the operation directly.
type menuItem struct {
	label  string
	choose func(m Model) (Model, tea.Cmd)
}

func menuItems() []menuItem {
	return []menuItem{
		{"Add Student", startAdd},
		{"Delete Student", startFlow(func(svc *roster.Service) flow { return &deleteFlow{svc: svc} })},
		{"Search Student", startFlow(func(svc *roster.Service) flow { return &searchFlow{svc: svc} })},
		{"Edit Student", startFlow(func(svc *roster.Service) flow { return &editFlow{svc: svc} })},
		{"List All Students", startOp(listCmd)},
		{"Show Topper & Average", startOp(statsCmd)},
		{"Export Data (PDF Report)", startOp(exportReportCmd)},
		{"Export Data (CSV Copy)", startOp(exportCSVCmd)},
		{"Exit", quit},
	}
}

// startAdd previews the roll the new record will get before the flow starts
// prompting, so the user sees the assignment up front.
func startAdd(m Model) (Model, tea.Cmd) {
	roll, err := m.svc.PreviewRoll()
	if err != nil {
		cmd := m.printStyled(err.Error(), outcomeError)
		return m, cmd
	}
	m.flow = &addFlow{svc: m.svc}
	cmd := m.print("Generated Roll Number: " + roll)
	return m, cmd
}

func startFlow(build func(svc *roster.Service) flow) func(Model) (Model, tea.Cmd) {
	return func(m Model) (Model, tea.Cmd) {
		m.flow = build(m.svc)
		return m, nil
	}
}

func startOp(op func(svc *roster.Service) tea.Cmd) func(Model) (Model, tea.Cmd) {
	return func(m Model) (Model, tea.Cmd) {
		m.waiting = true
		return m, op(m.svc)
	}
}

func quit(m Model) (Model, tea.Cmd) {
	m.quitting = true
	cmd := tea.Sequence(m.printStyled("Exiting. Goodbye!", outcomeInfo), tea.Quit)
	return m, cmd
}

func listCmd(svc *roster.Service) tea.Cmd {
	return func() tea.Msg {
		records, err := svc.List()
		if err != nil {
			return errMsg{err}
		}
		if len(records) == 0 {
			return infoMsg("No student records yet.")
		}
		return tableMsg{
			records: records,
			footer:  fmt.Sprintf("Total students: %d", len(records)),
		}
	}
}

func statsCmd(svc *roster.Service) tea.Cmd {
	return func() tea.Msg {
		st, err := svc.Stats()
		if errors.Is(err, roster.ErrNoRecords) {
			return infoMsg("No records to calculate topper/average.")
		}
		if err != nil {
			return errMsg{err}
		}
		return statsMsg(st)
	}
}

func exportReportCmd(svc *roster.Service) tea.Cmd {
	return func() tea.Msg {
		path, err := svc.ExportReport()
		if errors.Is(err, roster.ErrReportUnavailable) {
			return infoMsg("PDF writer is not available; report not generated.")
		}
		if err != nil {
			return errMsg{err}
		}
		return doneMsg("PDF report generated: " + path)
	}
}

func exportCSVCmd(svc *roster.Service) tea.Cmd {
	return func() tea.Msg {
		path, err := svc.ExportCSV()
		if errors.Is(err, roster.ErrNoRecords) {
			return infoMsg("No records to export.")
		}
		if err != nil {
			return errMsg{err}
		}
		return doneMsg("Exported to CSV file: " + path)
	}
}
