package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/rihla/internal/app"
	"github.com/alexanderramin/rihla/internal/cli/formatter"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// selectDoneMsg reports a finished source pick.
type selectDoneMsg struct {
	err error
}

// submitDoneMsg reports a finished analysis upload.
type submitDoneMsg struct {
	result *domain.AnalysisResult
	err    error
}

// playDoneMsg reports the outcome of starting narration playback.
type playDoneMsg struct {
	err error
}

// captureModel is the interactive photo analysis screen. It renders
// whichever stage the pipeline session is in and translates keys into
// pipeline calls.
type captureModel struct {
	app *App

	pathInput  textinput.Model
	typingPath bool
	uploading  bool
	status     string
	quitting   bool
}

func newCaptureModel(a *App) captureModel {
	ti := textinput.New()
	ti.Placeholder = "/path/to/photo.jpg"
	ti.CharLimit = 300
	ti.Width = 50

	return captureModel{app: a, pathInput: ti}
}

func (m captureModel) Init() tea.Cmd {
	return nil
}

func (m captureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.typingPath {
			return m.updatePathInput(msg)
		}
		return m.handleKey(msg)

	case selectDoneMsg:
		m.status = app.UserMessage(msg.err)
		return m, nil

	case submitDoneMsg:
		m.uploading = false
		// A cancelled upload maps to an empty message; keep the status the
		// cancel key already set instead of blanking it.
		if text := app.UserMessage(msg.err); text != "" {
			m.status = text
		}
		return m, nil

	case playDoneMsg:
		m.status = app.UserMessage(msg.err)
		return m, nil
	}

	if m.typingPath {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m captureModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.app.Capture.Cancel()
		m.quitting = true
		return m, tea.Quit
	}

	session := m.app.Capture.Session()

	// The submit command races the repaint, so the local flag decides
	// when the uploading keys apply.
	if m.uploading {
		return m.handleUploadingKey(msg)
	}

	switch session.Stage {
	case domain.StageIdle, domain.StageSelecting:
		return m.handleSelectingKey(msg)
	case domain.StagePreviewing:
		return m.handlePreviewKey(msg)
	case domain.StageUploading:
		return m.handleUploadingKey(msg)
	case domain.StageResult:
		return m.handleResultKey(msg, session.Result)
	}
	return m, nil
}

func (m captureModel) handleSelectingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.app.Capture.Cancel()
		m.quitting = true
		return m, tea.Quit

	case "g":
		m.typingPath = true
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return m, textinput.Blink

	case "c":
		m.status = ""
		return m, m.selectCmd(domain.SourceCamera)
	}
	return m, nil
}

func (m captureModel) updatePathInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.typingPath = false
		return m, nil

	case tea.KeyEnter:
		path := strings.TrimSpace(m.pathInput.Value())
		m.typingPath = false
		m.pathInput.Blur()
		if path == "" {
			return m, nil
		}
		m.app.Gallery.Set(path)
		m.status = ""
		return m, m.selectCmd(domain.SourceGallery)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m captureModel) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "u":
		m.uploading = true
		m.status = ""
		return m, m.submitCmd()

	case "d":
		if err := m.app.Capture.Discard(); err != nil {
			m.status = app.UserMessage(err)
		}
		return m, nil

	case "q", "esc":
		m.app.Capture.Cancel()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m captureModel) handleUploadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "x", "esc":
		m.app.Capture.Cancel()
		m.uploading = false
		m.status = "Upload cancelled."
		return m, nil
	}
	return m, nil
}

func (m captureModel) handleResultKey(msg tea.KeyMsg, result *domain.AnalysisResult) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p":
		if result == nil || !result.AudioAvailable {
			return m, nil
		}
		url := result.Analysis.AudioURL
		return m, func() tea.Msg {
			return playDoneMsg{err: m.app.Player.Play(context.Background(), url)}
		}

	case "s":
		_ = m.app.Player.Stop()
		return m, nil

	case "enter", "esc":
		_ = m.app.Player.Stop()
		m.app.Capture.Dismiss()
		m.status = ""
		return m, nil

	case "q":
		_ = m.app.Player.Stop()
		m.app.Capture.Cancel()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m captureModel) selectCmd(kind domain.SourceKind) tea.Cmd {
	return func() tea.Msg {
		return selectDoneMsg{err: m.app.Capture.Select(context.Background(), kind)}
	}
}

func (m captureModel) submitCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.Capture.Submit(context.Background())
		return submitDoneMsg{result: result, err: err}
	}
}

func (m captureModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	session := m.app.Capture.Session()

	stage := session.Stage
	if m.uploading {
		stage = domain.StageUploading
	}

	b.WriteString(formatter.Header("Photo analysis"))
	b.WriteString("\n" + formatter.StageLabel(stage) + "\n\n")

	switch stage {
	case domain.StageIdle, domain.StageSelecting:
		b.WriteString("Where is the photo?\n\n")
		b.WriteString("  " + formatter.Bold("g") + formatter.Dim("  gallery (enter a file path)") + "\n")
		b.WriteString("  " + formatter.Bold("c") + formatter.Dim("  camera") + "\n")
		if m.typingPath {
			b.WriteString("\n" + formatter.Dim("Path:") + " " + m.pathInput.View() + "\n")
		}

	case domain.StagePreviewing:
		if session.Asset != nil {
			b.WriteString(formatter.Dim("File: ") + formatter.Bold(session.Asset.FileName) + "\n")
			b.WriteString(formatter.Dim("Type: ") + session.Asset.MIMEType + "\n")
		}
		b.WriteString("\n" + formatter.Dim("enter: analyze  d: pick another  esc: cancel") + "\n")

	case domain.StageUploading:
		b.WriteString(formatter.StylePurple.Render("Uploading for analysis…") + "\n")
		b.WriteString("\n" + formatter.Dim("x: cancel upload") + "\n")

	case domain.StageResult:
		if session.Result != nil {
			b.WriteString(formatter.FormatAnalysis(session.Result) + "\n")
			if session.Result.AudioAvailable {
				b.WriteString("\n" + formatter.Dim("p: play narration  s: stop") + "\n")
			}
		}
		b.WriteString(formatter.Dim("enter: done  q: quit") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.status) + "\n")
	}

	return b.String()
}
