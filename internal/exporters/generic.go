package exporters

import (
	"fmt"

	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
)

// ClipExporter renders a selection of clips into one textual document.
type ClipExporter interface {
	Export(clips []entities.Clip) (string, ExportResult, error)
}

type ExportResult struct {
	ClipsProcessed int `json:"clips_processed"`
}

// Known output format names, as accepted by the -format flag.
const (
	FormatText = "text"
	FormatOrg  = "org"
	FormatJSON = "json"
)

// ForFormat returns the exporter for a format name. Unknown names are a
// caller error, reported before any parsing starts.
func ForFormat(name string, separatorWidth int) (ClipExporter, error) {
	switch name {
	case FormatText:
		return NewTextExporter(separatorWidth), nil
	case FormatOrg:
		return NewOrgExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected text, org or json)", name)
	}
}
