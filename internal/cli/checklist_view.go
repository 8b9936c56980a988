package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/rihla/internal/app"
	"github.com/alexanderramin/rihla/internal/cli/formatter"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/alexanderramin/rihla/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// commitDoneMsg reports a finished checklist commit.
type commitDoneMsg struct {
	outcome *app.CommitOutcome
	err     error
}

// tripLoadedMsg reports a finished trip reload.
type tripLoadedMsg struct {
	err error
}

// checklistModel is the interactive checklist screen. Edits apply to
// the visible list immediately; a failed commit snaps the row back and
// surfaces the reason in the status line.
type checklistModel struct {
	app       *App
	bookingID string

	cursor      int
	status      string
	noteInput   textinput.Model
	editingNote bool
	quitting    bool
}

func newChecklistModel(a *App, bookingID string) checklistModel {
	ti := textinput.New()
	ti.Placeholder = "note"
	ti.CharLimit = 200
	ti.Width = 40

	return checklistModel{
		app:       a,
		bookingID: bookingID,
		noteInput: ti,
	}
}

func (m checklistModel) items() []domain.ChecklistItem {
	snap := m.app.Checklist.Snapshot()
	if snap == nil {
		return nil
	}
	return snap.Checklist
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.editingNote {
			return m.updateNoteInput(msg)
		}
		return m.handleKey(msg)

	case commitDoneMsg:
		if msg.outcome != nil && msg.outcome.Code == app.CommitRolledBack {
			m.status = msg.outcome.Message
		} else if msg.err != nil {
			m.status = app.UserMessage(msg.err)
		} else {
			m.status = ""
		}
		return m, nil

	case tripLoadedMsg:
		if msg.err != nil {
			m.status = app.UserMessage(msg.err)
		} else {
			m.status = "Trip refreshed."
			m.cursor = 0
		}
		return m, nil
	}

	if m.editingNote {
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m checklistModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		return m, nil

	case " ", "enter":
		if m.cursor >= len(items) {
			return m, nil
		}
		item := items[m.cursor]
		return m.beginCommit(item.ID, domain.ToggleStatus(item.Status), item.Note)

	case "n":
		if m.cursor >= len(items) {
			return m, nil
		}
		m.editingNote = true
		m.noteInput.SetValue(items[m.cursor].Note)
		m.noteInput.Focus()
		return m, textinput.Blink

	case "r":
		return m, m.reloadCmd()
	}

	return m, nil
}

func (m checklistModel) updateNoteInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editingNote = false
		m.noteInput.Blur()
		return m, nil

	case tea.KeyEnter:
		items := m.items()
		if m.cursor >= len(items) {
			m.editingNote = false
			return m, nil
		}
		item := items[m.cursor]
		note := m.noteInput.Value()
		m.editingNote = false
		m.noteInput.Blur()
		return m.beginCommit(item.ID, item.Status, note)
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

// beginCommit applies the edit locally and schedules the remote commit.
func (m checklistModel) beginCommit(itemID string, status domain.ItemStatus, note string) (tea.Model, tea.Cmd) {
	edit, err := m.app.Checklist.BeginEdit(itemID, status, note)
	if err != nil {
		if errors.Is(err, service.ErrEditInFlight) {
			m.status = "That item has a change still saving. Try again in a moment."
		} else {
			m.status = app.UserMessage(err)
		}
		return m, nil
	}
	m.status = ""

	return m, func() tea.Msg {
		outcome, err := m.app.Checklist.CommitEdit(context.Background(), edit)
		return commitDoneMsg{outcome: outcome, err: err}
	}
}

func (m checklistModel) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.app.Checklist.Load(context.Background(), m.bookingID)
		return tripLoadedMsg{err: err}
	}
}

func (m checklistModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	snap := m.app.Checklist.Snapshot()
	title := "Checklist"
	if snap != nil {
		title = fmt.Sprintf("Checklist · trip %s", snap.TripID)
	}
	b.WriteString(formatter.Header(title))
	b.WriteString("\n\n")

	items := m.items()
	if len(items) == 0 {
		b.WriteString(formatter.Dim("No checklist items.") + "\n")
	}
	for i, item := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("› ")
		}
		line := fmt.Sprintf("%s%s  %s", cursor, formatter.StatusBadge(item.Status), formatter.Bold(item.DisplayTitle()))
		if item.Note != "" {
			line += "  " + formatter.Dim(formatter.Truncate(item.Note, 40))
		}
		b.WriteString(line + "\n")
	}

	if m.editingNote {
		b.WriteString("\n" + formatter.Dim("Note:") + " " + m.noteInput.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.status) + "\n")
	}

	b.WriteString("\n" + formatter.Dim("space: toggle  n: note  r: refresh  q: quit") + "\n")

	return b.String()
}
