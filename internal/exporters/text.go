package exporters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
)

const defaultSeparatorWidth = 50

// TextExporter renders clips as plain-text blocks divided by a fixed-width
// dash rule.
type TextExporter struct {
	SeparatorWidth int
}

func NewTextExporter(separatorWidth int) *TextExporter {
	if separatorWidth <= 0 {
		separatorWidth = defaultSeparatorWidth
	}
	return &TextExporter{SeparatorWidth: separatorWidth}
}

func (e *TextExporter) Export(clips []entities.Clip) (string, ExportResult, error) {
	separator := strings.Repeat("-", e.SeparatorWidth)

	var b strings.Builder
	b.WriteString(separator)
	b.WriteString("\n")

	for _, clip := range clips {
		fmt.Fprintf(&b, "Source: %s\n", clip.Source)
		fmt.Fprintf(&b, "Page: %s\n", seqString(clip.Page))
		fmt.Fprintf(&b, "Location: %s\n", seqString(clip.Location))
		fmt.Fprintf(&b, "Added on: %s\n", timestampString(clip.Date, clip.Time))
		fmt.Fprintf(&b, "%s\n", typeLabel(clip.Type))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n", clip.Content)
		b.WriteString(separator)
		b.WriteString("\n")
	}

	return b.String(), ExportResult{ClipsProcessed: len(clips)}, nil
}

// seqString renders a page or location sequence: absent values read
// "no data", a single value is its decimal form, a pair is a dash range.
// Longer sequences should not happen but render as a comma-joined list
// rather than panicking.
func seqString(values []int) string {
	switch len(values) {
	case 0:
		return "no data"
	case 1:
		return strconv.Itoa(values[0])
	case 2:
		return fmt.Sprintf("%d-%d", values[0], values[1])
	default:
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		return strings.Join(parts, ", ")
	}
}

// timestampString combines the independently optional date and time into a
// single line fragment.
func timestampString(date *entities.Date, tod *entities.TimeOfDay) string {
	switch {
	case date != nil && tod != nil:
		return date.String() + " " + tod.String()
	case date != nil:
		return date.String()
	case tod != nil:
		return tod.String()
	default:
		return "no data"
	}
}

// typeLabel capitalizes the clip type for display: "Highlight", "Note",
// "Bookmark".
func typeLabel(t entities.ClipType) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
