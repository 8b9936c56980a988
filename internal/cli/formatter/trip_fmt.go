package formatter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/rihla/internal/domain"
)

// FormatTrip formats a full trip snapshot into a styled dashboard with
// the booking, stay, and travel sections followed by the checklist.
func FormatTrip(snap *domain.TripSnapshot) string {
	var b strings.Builder

	sections := []struct {
		title string
		raw   json.RawMessage
	}{
		{"Booking", snap.Booking},
		{"Package", snap.Package},
		{"Hotel", snap.Hotel},
		{"Flight", snap.Flight},
		{"Meals", snap.Meals},
		{"Itinerary", snap.Itinerary},
		{"Notes", snap.Notes},
	}

	for _, s := range sections {
		body := renderSection(s.raw)
		if body == "" {
			continue
		}
		b.WriteString(Header(s.title))
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString(Header("Checklist"))
	b.WriteString("\n")
	b.WriteString(FormatChecklist(snap.Checklist))

	return RenderBox("Trip "+snap.TripID, strings.TrimRight(b.String(), "\n"))
}

// renderSection formats an opaque JSON object as aligned "key  value"
// lines with keys sorted for a stable layout. Nested values render as
// compact JSON. Returns "" when the section is absent or empty.
func renderSection(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return renderScalarSection(raw)
	}
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	width := 0
	for k := range fields {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		val := sectionValue(fields[k])
		if val == "" {
			continue
		}
		pad := strings.Repeat(" ", width-len(k))
		b.WriteString(fmt.Sprintf("  %s%s  %s\n", Dim(k), pad, StyleFg.Render(val)))
	}
	return b.String()
}

// renderScalarSection handles sections that are not objects. Strings
// render as one indented line; arrays render one compact entry per line.
func renderScalarSection(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return ""
		}
		return "  " + StyleFg.Render(s) + "\n"
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err == nil {
		var b strings.Builder
		for _, e := range entries {
			val := sectionValue(e)
			if val == "" {
				continue
			}
			b.WriteString("  " + StyleDim.Render("·") + " " + StyleFg.Render(val) + "\n")
		}
		return b.String()
	}

	return ""
}

func sectionValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%g", n)
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err == nil {
		return fmt.Sprintf("%t", v)
	}
	compact := strings.TrimSpace(string(raw))
	if compact == "null" {
		return ""
	}
	return Truncate(compact, 60)
}
