package cli

import (
	"github.com/alexanderramin/rihla/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// rihlaHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func rihlaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	focusTitle := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	dimmed := lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Focused state: orange titles, purple selector
	t.Focused.Title = focusTitle
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorPurple).Padding(0, 1)
	t.Focused.BlurredButton = dimmed.Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = dimmed
	t.Focused.Description = dimmed

	// Blurred state: everything dimmed
	t.Blurred.Title = dimmed
	t.Blurred.SelectSelector = dimmed
	t.Blurred.SelectedOption = dimmed
	t.Blurred.UnselectedOption = dimmed
	t.Blurred.TextInput.Prompt = dimmed
	t.Blurred.TextInput.Text = dimmed

	return t
}
