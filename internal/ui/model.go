// Package ui implements the interactive menu shell.
//
// The shell runs inline (no alternate screen): everything it prints scrolls
// back like a plain terminal session, and only the current menu or prompt
// plus the input line are live. One operation runs at a time; input is
// ignored while a result is pending, which is never long since every
// operation is a local file pass.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vanshika-gupta001/Student-management/internal/roster"
)

// Model is the bubbletea model for the shell. The zero value is not usable;
// construct with New.
type Model struct {
	svc    *roster.Service
	styles Styles
	items  []menuItem
	input  textinput.Model

	// flow is the operation currently collecting input; nil means the menu
	// is showing.
	flow flow
	// waiting suppresses input between dispatching an operation and its
	// result message.
	waiting  bool
	quitting bool

	// lastOutput is the most recent text given to the terminal.
	lastOutput string
}

// New returns a shell bound to the given roster service.
func New(svc *roster.Service) Model {
	input := textinput.New()
	input.Prompt = ""
	input.Focus()
	return Model{
		svc:    svc,
		styles: DefaultStyles(),
		items:  menuItems(),
		input:  input,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m.interrupt()
		case "enter":
			if m.waiting {
				return m, nil
			}
			value := m.input.Value()
			m.input.Reset()
			return m.submit(value)
		}
		if m.waiting {
			return m, nil
		}

	case doneMsg:
		m.waiting = false
		cmd := m.printStyled(string(msg), outcomeDone)
		return m, cmd

	case infoMsg:
		m.waiting = false
		cmd := m.printStyled(string(msg), outcomeInfo)
		return m, cmd

	case errMsg:
		m.waiting = false
		cmd := m.printStyled(msg.err.Error(), outcomeError)
		return m, cmd

	case tableMsg:
		m.waiting = false
		cmd := m.print(renderListing(m.styles, msg))
		return m, cmd

	case statsMsg:
		m.waiting = false
		cmd := m.print(renderStats(roster.Stats(msg)))
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	if m.flow == nil {
		b.WriteString(m.styles.Title.Render("Student Management System - CLI"))
		b.WriteByte('\n')
		for i, item := range m.items {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.label)
		}
		b.WriteString(m.styles.Prompt.Render(fmt.Sprintf("Choose an option (1-%d): ", len(m.items))))
	} else {
		b.WriteString(m.styles.Prompt.Render(m.flow.prompt()))
	}
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	return b.String()
}

// submit consumes one entered line, routing it to the active flow or to the
// menu selection.
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	if m.flow == nil {
		return m.choose(value)
	}

	res := m.flow.submit(value)
	var cmd tea.Cmd
	if res.output != "" {
		cmd = m.printStyled(res.output, res.level)
	}
	if res.done {
		m.flow = nil
		if res.cmd != nil {
			m.waiting = true
			cmd = res.cmd
		}
	}
	return m, cmd
}

// choose dispatches a menu selection.
func (m Model) choose(value string) (tea.Model, tea.Cmd) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > len(m.items) {
		cmd := m.printStyled(fmt.Sprintf("Invalid option. Enter number 1-%d.", len(m.items)), outcomeError)
		return m, cmd
	}
	return m.items[n-1].choose(m)
}

func (m Model) interrupt() (tea.Model, tea.Cmd) {
	m.quitting = true
	cmd := tea.Sequence(m.printStyled("Interrupted. Exiting.", outcomeInfo), tea.Quit)
	return m, cmd
}

// print queues s for the scrollback region above the live view.
func (m *Model) print(s string) tea.Cmd {
	m.lastOutput = s
	return tea.Println(s)
}

func (m *Model) printStyled(s string, level outcome) tea.Cmd {
	switch level {
	case outcomeDone:
		return m.print(m.styles.Done.Render(s))
	case outcomeInfo:
		return m.print(m.styles.Info.Render(s))
	case outcomeError:
		return m.print(m.styles.Error.Render(s))
	default:
		return m.print(s)
	}
}
