package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rihla/internal/domain"
)

// FormatChecklist renders checklist items as a table in server order.
func FormatChecklist(items []domain.ChecklistItem) string {
	if len(items) == 0 {
		return Dim("No checklist items.") + "\n"
	}

	headers := []string{"#", "ITEM", "STATUS", "NOTE"}
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		note := Dim("--")
		if item.Note != "" {
			note = StyleFg.Render(Truncate(item.Note, 40))
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(item.DisplayTitle()),
			StatusBadge(item.Status),
			note,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))

	done := 0
	for _, item := range items {
		if item.Status == domain.ItemDone {
			done++
		}
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s of %s items done\n",
		StyleGreen.Render(fmt.Sprintf("%d", done)),
		Bold(fmt.Sprintf("%d", len(items)))))

	return b.String()
}
