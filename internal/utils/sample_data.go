package utils

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed sampledata/properties.json
var sampleFS embed.FS

// LoadSampleData returns the bundled sample listings as raw canonical records.
// Each call decodes a fresh copy so callers may mutate the result.
func LoadSampleData() ([]map[string]interface{}, error) {
	data, err := sampleFS.ReadFile("sampledata/properties.json")
	if err != nil {
		return nil, fmt.Errorf("read sample data: %w", err)
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode sample data: %w", err)
	}
	return records, nil
}
