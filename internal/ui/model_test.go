package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vanshika-gupta001/Student-management/internal/config"
	"github.com/Vanshika-gupta001/Student-management/internal/roster"
	"github.com/Vanshika-gupta001/Student-management/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.Path = filepath.Join(dir, "students.csv")
	cfg.Export.CSVPath = filepath.Join(dir, "students_export.csv")
	cfg.Roster.StartRoll = 1001
	svc := roster.NewService(store.New(cfg.Storage.Path), cfg, nil)
	return New(svc)
}

// enter types a line into the shell and presses return, returning the model
// and whatever command the submission produced.
func enter(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	if line != "" {
		mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
		m = mm.(Model)
	}
	mm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return mm.(Model), cmd
}

// runOp executes a dispatched operation command and feeds its result message
// back into the model, the way the runtime would.
func runOp(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected an operation command")
	}
	mm, _ := m.Update(cmd())
	return mm.(Model)
}

func seed(t *testing.T, m Model, names ...string) Model {
	t.Helper()
	marks := []string{"50", "90", "90", "30"}
	for i, name := range names {
		if _, err := m.svc.Add(name, marks[i%len(marks)]); err != nil {
			t.Fatalf("seed Add(%q) error = %v", name, err)
		}
	}
	return m
}

// ----------------------------------------------------------------------------
// Menu
// ----------------------------------------------------------------------------

func TestViewShowsMenu(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{
		"Student Management System - CLI",
		"1. Add Student",
		"2. Delete Student",
		"3. Search Student",
		"4. Edit Student",
		"5. List All Students",
		"6. Show Topper & Average",
		"7. Export Data (PDF Report)",
		"8. Export Data (CSV Copy)",
		"9. Exit",
		"Choose an option (1-9):",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestInvalidMenuChoice(t *testing.T) {
	for _, choice := range []string{"0", "10", "x", ""} {
		m := newTestModel(t)
		m, _ = enter(t, m, choice)
		if !strings.Contains(m.lastOutput, "Invalid option. Enter number 1-9.") {
			t.Errorf("choice %q: lastOutput = %q, want invalid-option notice", choice, m.lastOutput)
		}
		if m.flow != nil {
			t.Errorf("choice %q unexpectedly started a flow", choice)
		}
	}
}

func TestExitOption(t *testing.T) {
	m := newTestModel(t)
	m, cmd := enter(t, m, "9")
	if !m.quitting {
		t.Error("option 9 did not set quitting")
	}
	if cmd == nil {
		t.Error("option 9 returned no command")
	}
	if !strings.Contains(m.lastOutput, "Exiting. Goodbye!") {
		t.Errorf("lastOutput = %q, want farewell", m.lastOutput)
	}
	if m.View() != "" {
		t.Error("View() after quit must be empty")
	}
}

func TestInterruptKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := newTestModel(t)
		mm, cmd := m.Update(key)
		m = mm.(Model)
		if !m.quitting {
			t.Errorf("%s did not set quitting", key.String())
		}
		if cmd == nil {
			t.Errorf("%s returned no command", key.String())
		}
		if !strings.Contains(m.lastOutput, "Interrupted. Exiting.") {
			t.Errorf("%s: lastOutput = %q, want interrupt notice", key.String(), m.lastOutput)
		}
	}
}

// ----------------------------------------------------------------------------
// Add flow
// ----------------------------------------------------------------------------

func TestAddFlow(t *testing.T) {
	m := newTestModel(t)

	m, _ = enter(t, m, "1")
	if !strings.Contains(m.lastOutput, "Generated Roll Number: 1001") {
		t.Fatalf("lastOutput = %q, want roll preview", m.lastOutput)
	}
	if !strings.Contains(m.View(), "Enter Name: ") {
		t.Fatalf("View() = %q, want name prompt", m.View())
	}

	m, _ = enter(t, m, "Asha Rao")
	if !strings.Contains(m.View(), "Enter Marks (0-100): ") {
		t.Fatalf("View() = %q, want marks prompt", m.View())
	}

	m, cmd := enter(t, m, "91")
	if !m.waiting {
		t.Error("submitting marks did not mark the shell busy")
	}
	m = runOp(t, m, cmd)
	if !strings.Contains(m.lastOutput, "Student added successfully with Roll 1001.") {
		t.Errorf("lastOutput = %q, want success notice", m.lastOutput)
	}
	if m.waiting {
		t.Error("result message did not clear the busy state")
	}

	records, err := m.svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Name != "Asha Rao" {
		t.Errorf("roster = %+v, want the added record", records)
	}
}

func TestAddFlowEmptyNameAborts(t *testing.T) {
	m := newTestModel(t)
	m, _ = enter(t, m, "1")
	m, _ = enter(t, m, "   ")

	if !strings.Contains(m.lastOutput, "Name cannot be empty. Aborting add.") {
		t.Errorf("lastOutput = %q, want abort notice", m.lastOutput)
	}
	if m.flow != nil {
		t.Error("aborted flow still active")
	}

	records, err := m.svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("roster = %+v, want nothing persisted", records)
	}
}

func TestAddFlowRejectsBadMarks(t *testing.T) {
	m := newTestModel(t)
	m, _ = enter(t, m, "1")
	m, _ = enter(t, m, "Bob")
	m, cmd := enter(t, m, "abc")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "marks") {
		t.Errorf("lastOutput = %q, want marks validation error", m.lastOutput)
	}

	records, err := m.svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("roster = %+v, want nothing persisted", records)
	}
}

// ----------------------------------------------------------------------------
// Delete flow
// ----------------------------------------------------------------------------

func TestDeleteFlowCancelled(t *testing.T) {
	m := seed(t, newTestModel(t), "Keep Me")

	m, _ = enter(t, m, "2")
	if !strings.Contains(m.View(), "Enter Roll Number to delete: ") {
		t.Fatalf("View() = %q, want roll prompt", m.View())
	}

	m, _ = enter(t, m, "1001")
	if !strings.Contains(m.View(), "Are you sure you want to delete Keep Me (roll 1001)? [y/N]: ") {
		t.Fatalf("View() = %q, want confirmation prompt", m.View())
	}

	m, _ = enter(t, m, "n")
	if !strings.Contains(m.lastOutput, "Delete cancelled.") {
		t.Errorf("lastOutput = %q, want cancellation notice", m.lastOutput)
	}

	records, err := m.svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Error("cancelled delete removed the record")
	}
}

func TestDeleteFlowConfirmed(t *testing.T) {
	m := seed(t, newTestModel(t), "Target")

	m, _ = enter(t, m, "2")
	m, _ = enter(t, m, "1001")
	m, cmd := enter(t, m, "Y")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "Student deleted and changes saved.") {
		t.Errorf("lastOutput = %q, want delete notice", m.lastOutput)
	}

	records, err := m.svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("roster = %+v, want empty", records)
	}
}

func TestDeleteFlowUnknownRoll(t *testing.T) {
	m := newTestModel(t)
	m, _ = enter(t, m, "2")
	m, _ = enter(t, m, "9999")

	if !strings.Contains(m.lastOutput, `No student found with roll "9999".`) {
		t.Errorf("lastOutput = %q, want not-found notice", m.lastOutput)
	}
	if m.flow != nil {
		t.Error("flow still active after a miss")
	}
}

// ----------------------------------------------------------------------------
// Search flow
// ----------------------------------------------------------------------------

func TestSearchFlowFindsMatches(t *testing.T) {
	m := seed(t, newTestModel(t), "Anna", "Bo")

	m, _ = enter(t, m, "3")
	if !strings.Contains(m.View(), "Search by Roll or Name (partial allowed): ") {
		t.Fatalf("View() = %q, want search prompt", m.View())
	}

	m, cmd := enter(t, m, "anna")
	m = runOp(t, m, cmd)
	if !strings.Contains(m.lastOutput, "Found 1 result(s):") {
		t.Errorf("lastOutput = %q, want result heading", m.lastOutput)
	}
	if !strings.Contains(m.lastOutput, "Anna") {
		t.Errorf("lastOutput = %q, want matching record", m.lastOutput)
	}
}

func TestSearchFlowNoMatches(t *testing.T) {
	m := seed(t, newTestModel(t), "Someone")

	m, _ = enter(t, m, "3")
	m, cmd := enter(t, m, "zzz")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "No matching student records found.") {
		t.Errorf("lastOutput = %q, want no-match notice", m.lastOutput)
	}
}

// ----------------------------------------------------------------------------
// Edit flow
// ----------------------------------------------------------------------------

func TestEditFlow(t *testing.T) {
	m := seed(t, newTestModel(t), "Bob")

	m, _ = enter(t, m, "4")
	m, _ = enter(t, m, "1001")
	if !strings.Contains(m.lastOutput, "Editing Bob (Roll 1001)") {
		t.Fatalf("lastOutput = %q, want editing banner", m.lastOutput)
	}
	if !strings.Contains(m.View(), "Enter new name [Bob] (press Enter to keep): ") {
		t.Fatalf("View() = %q, want name prompt with current value", m.View())
	}

	m, _ = enter(t, m, "")
	if !strings.Contains(m.View(), "Enter new marks [50] (press Enter to keep): ") {
		t.Fatalf("View() = %q, want marks prompt with current value", m.View())
	}

	m, cmd := enter(t, m, "88")
	m = runOp(t, m, cmd)
	if !strings.Contains(m.lastOutput, "Student updated and saved.") {
		t.Errorf("lastOutput = %q, want update notice", m.lastOutput)
	}

	records, err := m.svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Name != "Bob" || records[0].Marks != "88" {
		t.Errorf("record = %+v, want kept name and new marks", records[0])
	}
}

// ----------------------------------------------------------------------------
// Direct operations
// ----------------------------------------------------------------------------

func TestListEmptyRoster(t *testing.T) {
	m := newTestModel(t)
	m, cmd := enter(t, m, "5")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "No student records yet.") {
		t.Errorf("lastOutput = %q, want empty notice", m.lastOutput)
	}
}

func TestListShowsTable(t *testing.T) {
	m := seed(t, newTestModel(t), "Asha", "Bina")

	m, cmd := enter(t, m, "5")
	m = runOp(t, m, cmd)

	for _, want := range []string{"Roll", "Asha", "Bina", "Total students: 2"} {
		if !strings.Contains(m.lastOutput, want) {
			t.Errorf("lastOutput missing %q:\n%s", want, m.lastOutput)
		}
	}
}

func TestStatsEmptyRoster(t *testing.T) {
	m := newTestModel(t)
	m, cmd := enter(t, m, "6")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "No records to calculate topper/average.") {
		t.Errorf("lastOutput = %q, want empty notice", m.lastOutput)
	}
}

func TestStatsOutput(t *testing.T) {
	m := seed(t, newTestModel(t), "A", "B", "C", "D") // marks 50, 90, 90, 30

	m, cmd := enter(t, m, "6")
	m = runOp(t, m, cmd)

	for _, want := range []string{"Average Marks: 65", "Top Marks: 90", "Topper(s):", "B", "C"} {
		if !strings.Contains(m.lastOutput, want) {
			t.Errorf("lastOutput missing %q:\n%s", want, m.lastOutput)
		}
	}
}

func TestReportWithoutWriter(t *testing.T) {
	m := newTestModel(t)
	m, cmd := enter(t, m, "7")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "report not generated") {
		t.Errorf("lastOutput = %q, want unavailable notice", m.lastOutput)
	}
}

func TestExportCSVEmptyRoster(t *testing.T) {
	m := newTestModel(t)
	m, cmd := enter(t, m, "8")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "No records to export.") {
		t.Errorf("lastOutput = %q, want empty notice", m.lastOutput)
	}
}

func TestExportCSVReportsPath(t *testing.T) {
	m := seed(t, newTestModel(t), "Asha")

	m, cmd := enter(t, m, "8")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "Exported to CSV file: ") {
		t.Errorf("lastOutput = %q, want export notice", m.lastOutput)
	}
	if !strings.Contains(m.lastOutput, "students_export.csv") {
		t.Errorf("lastOutput = %q, want export path", m.lastOutput)
	}
}

func TestStorageErrorKeepsShellAlive(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.Path = filepath.Join(dir, "students.csv")
	cfg.Export.CSVPath = filepath.Join(dir, "students_export.csv")
	cfg.Roster.StartRoll = 1001
	m := New(roster.NewService(store.New(cfg.Storage.Path), cfg, nil))

	// A hand-edited roster the store refuses to trust.
	corrupt := "id,name,score\n1,Asha,91\n"
	if err := os.WriteFile(cfg.Storage.Path, []byte(corrupt), 0o644); err != nil {
		t.Fatal(err)
	}

	m, cmd := enter(t, m, "5")
	m = runOp(t, m, cmd)

	if !strings.Contains(m.lastOutput, "malformed roster file") {
		t.Errorf("lastOutput = %q, want the storage error", m.lastOutput)
	}
	if m.waiting {
		t.Error("storage error did not clear the busy state")
	}
	if m.quitting {
		t.Error("storage error terminated the shell")
	}
	if !strings.Contains(m.View(), "Choose an option (1-9): ") {
		t.Errorf("View() = %q, want the menu again", m.View())
	}

	data, err := os.ReadFile(cfg.Storage.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != corrupt {
		t.Error("failed operation rewrote the roster file")
	}
}

func TestInputIgnoredWhileBusy(t *testing.T) {
	m := seed(t, newTestModel(t), "Asha")

	m, cmd := enter(t, m, "5")
	if !m.waiting {
		t.Fatal("dispatch did not mark the shell busy")
	}

	// Keys pressed before the result lands must not reach the input line.
	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("6")})
	m = mm.(Model)
	if got := m.input.Value(); got != "" {
		t.Errorf("input accepted %q while busy", got)
	}

	m = runOp(t, m, cmd)
	if m.waiting {
		t.Error("result message did not clear the busy state")
	}
}
