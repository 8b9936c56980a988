package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusBadge returns a colored checklist status marker such as "✓ done".
func StatusBadge(status domain.ItemStatus) string {
	switch status {
	case domain.ItemDone:
		return StyleGreen.Render("✓ done")
	case domain.ItemPending:
		return StyleYellow.Render("○ pending")
	default:
		return StyleDim.Render("? " + string(status))
	}
}

// StageLabel returns a colored upload stage label.
func StageLabel(stage domain.UploadStage) string {
	switch stage {
	case domain.StageUploading:
		return StylePurple.Render("UPLOADING")
	case domain.StageResult:
		return StyleGreen.Render("RESULT")
	case domain.StagePreviewing:
		return StyleBlue.Render("PREVIEW")
	case domain.StageSelecting:
		return StyleYellow.Render("SELECT")
	default:
		return StyleDim.Render(strings.ToUpper(string(stage)))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the dim style.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in the bold foreground style.
func Bold(text string) string {
	return StyleBold.Render(text)
}
