package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tsawler/renumber"
	"github.com/tsawler/renumber/internal/logging"
)

type dialogStage int

const (
	stageEdit dialogStage = iota
	stageResult
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// dialogModel is a two screen editor: paste the list, then review and copy
// the renumbered result.
type dialogModel struct {
	stage    dialogStage
	input    textarea.Model
	output   string
	status   string
	err      error
	logger   *zap.Logger
	width    int
	quitting bool
}

func newDialogModel(logger *zap.Logger) dialogModel {
	ta := textarea.New()
	ta.Placeholder = "Paste the original sequence text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(15)
	ta.Focus()

	return dialogModel{
		stage:  stageEdit,
		input:  ta,
		logger: logger,
	}
}

// Init initializes the model.
func (m dialogModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 4 {
			m.input.SetWidth(msg.Width - 4)
		}
		if msg.Height > 8 {
			m.input.SetHeight(msg.Height - 8)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.stage == stageResult {
			return m.updateResult(msg)
		}
		switch msg.Type {
		case tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	if m.stage == stageEdit {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m dialogModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c", "y":
		if err := clipboardWriteAll(m.output); err != nil {
			m.logger.Warn("failed to copy result to clipboard", zap.Error(err))
			m.status = errorStyle.Render("Failed to copy result")
		} else {
			m.status = statusStyle.Render("Copied result to clipboard")
		}
	case "e", "esc":
		m.stage = stageEdit
		m.status = ""
		m.input.Focus()
	case "q", "enter":
		return m, tea.Quit
	}
	return m, nil
}

// submit renumbers the textarea contents, moving to the result screen on
// success.
func (m dialogModel) submit() dialogModel {
	out, warnings, err := renumber.FromText(m.input.Value()).Text()
	logging.Warnings(m.logger, warnings)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.output = out
	m.status = ""
	m.stage = stageResult
	m.input.Blur()
	return m
}

// View renders the current screen.
func (m dialogModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	switch m.stage {
	case stageEdit:
		b.WriteString(titleStyle.Render("renumber"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("ctrl+s renumber • esc quit"))
	case stageResult:
		b.WriteString(titleStyle.Render("Result"))
		b.WriteString("\n\n")
		b.WriteString(resultStyle.Render(m.output))
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("c copy • e edit • q done"))
	}
	return b.String()
}

// runDialog runs the dialog and prints the accepted result to stdout.
func (a *app) runDialog(ctx context.Context) error {
	p := tea.NewProgram(newDialogModel(a.logger),
		tea.WithContext(ctx),
		tea.WithInput(a.stdin),
		tea.WithOutput(a.stderr),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running dialog: %w", err)
	}

	m, ok := final.(dialogModel)
	if !ok {
		return nil
	}
	a.finishDialog(m)
	return nil
}

// finishDialog prints the result of an accepted dialog and copies it when
// configured to. A dialog closed with esc or ctrl+c produces nothing.
func (a *app) finishDialog(m dialogModel) {
	if m.quitting || m.output == "" {
		return
	}
	fmt.Fprintln(a.stdout, m.output)
	a.copyResult(m.output)
}
