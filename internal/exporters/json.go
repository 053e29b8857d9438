package exporters

import (
	"encoding/json"
	"fmt"

	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
)

// JSONExporter renders clips as an indented JSON array. Dates come out as
// "YYYY-MM-DD", times as "HH:MM:SS"; absent fields are omitted.
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(clips []entities.Clip) (string, ExportResult, error) {
	if clips == nil {
		clips = []entities.Clip{}
	}

	data, err := json.MarshalIndent(clips, "", "  ")
	if err != nil {
		return "", ExportResult{}, fmt.Errorf("failed to encode clips as JSON: %w", err)
	}

	return string(data) + "\n", ExportResult{ClipsProcessed: len(clips)}, nil
}
