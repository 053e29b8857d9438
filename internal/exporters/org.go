package exporters

import (
	"fmt"
	"strings"

	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
)

// OrgExporter renders clips as an org-mode outline: one top-level heading
// per run of clips from the same source, one second-level heading per clip.
type OrgExporter struct{}

func NewOrgExporter() *OrgExporter {
	return &OrgExporter{}
}

func (e *OrgExporter) Export(clips []entities.Clip) (string, ExportResult, error) {
	var b strings.Builder

	currentSource := ""
	for i, clip := range clips {
		if i == 0 || clip.Source != currentSource {
			currentSource = clip.Source
			fmt.Fprintf(&b, "* %s\n", clip.Source)
		}

		fmt.Fprintf(&b, "** %s (%s)\n", typeLabel(clip.Type), orgLocationCookie(clip))
		if ts := timestampString(clip.Date, clip.Time); ts != "no data" {
			fmt.Fprintf(&b, "Added on %s\n", ts)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n", clip.Content)
		b.WriteString("\n")
	}

	return b.String(), ExportResult{ClipsProcessed: len(clips)}, nil
}

func orgLocationCookie(clip entities.Clip) string {
	var parts []string
	if len(clip.Page) > 0 {
		parts = append(parts, "page "+seqString(clip.Page))
	}
	if len(clip.Location) > 0 {
		parts = append(parts, "location "+seqString(clip.Location))
	}
	if len(parts) == 0 {
		return "no position data"
	}
	return strings.Join(parts, ", ")
}
