package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens text to max visible runes, appending an ellipsis
// when it was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if max <= 1 || len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

// Confidence renders a 0..1 detection score as a colored percentage.
func Confidence(score float64) string {
	pct := int(score*100 + 0.5)
	if pct > 100 {
		pct = 100
	}
	text := fmt.Sprintf("%d%%", pct)
	switch {
	case pct >= 80:
		return StyleGreen.Render(text)
	case pct >= 50:
		return StyleYellow.Render(text)
	case pct > 0:
		return StyleRed.Render(text)
	default:
		return StyleDim.Render("--")
	}
}
