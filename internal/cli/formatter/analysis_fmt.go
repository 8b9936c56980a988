package formatter

import (
	"strings"

	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const analysisWrapWidth = 64

// FormatAnalysis renders an image analysis result: detected landmarks,
// the narration text, and whether spoken audio is available.
func FormatAnalysis(res *domain.AnalysisResult) string {
	var b strings.Builder

	if len(res.Analysis.DetectedObjects) > 0 {
		headers := []string{"DETECTED", "CONFIDENCE"}
		rows := make([][]string, 0, len(res.Analysis.DetectedObjects))
		for _, obj := range res.Analysis.DetectedObjects {
			rows = append(rows, []string{
				Bold(obj.Name),
				Confidence(obj.Confidence),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	if res.Analysis.AnalysisText != "" {
		wrapped := lipgloss.NewStyle().Width(analysisWrapWidth).Render(res.Analysis.AnalysisText)
		b.WriteString(StyleFg.Render(wrapped))
		b.WriteString("\n\n")
	}

	if res.AudioAvailable {
		b.WriteString(StyleBlue.Render("♪ Audio narration available") + "\n")
	} else {
		b.WriteString(Dim("No audio narration for this result.") + "\n")
	}

	return RenderBox("Analysis", strings.TrimRight(b.String(), "\n"))
}
