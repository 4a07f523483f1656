// Package dataset loads the bundled game dataset and normalizes it
// into the canonical entity shapes. The raw asset carries two
// top-level fields, gods and items, each either a flat array or an
// arbitrarily nested array-of-arrays accumulated from historical
// sources. Normalization happens once here; everything downstream
// works on flat, typed sequences.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// Dataset is the normalized in-memory dataset. It is loaded once at
// process start and read-only afterwards.
type Dataset struct {
	Gods  []models.God
	Items []models.Item
}

// Load reads and parses a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes raw dataset JSON. Malformed entries (non-objects,
// records that fail to decode) are skipped, never fatal; only a
// syntactically broken document returns an error.
func Parse(data []byte) (*Dataset, error) {
	var raw struct {
		Gods  any `json:"gods"`
		Items any `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for _, entry := range Flatten(raw.Gods) {
		var g models.God
		if !decodeEntry(entry, &g) {
			continue
		}
		ds.Gods = append(ds.Gods, g)
	}
	for _, entry := range Flatten(raw.Items) {
		var it models.Item
		if !decodeEntry(entry, &it) {
			continue
		}
		ds.Items = append(ds.Items, it)
	}
	return ds, nil
}

// decodeEntry round-trips one flattened entry through JSON into the
// typed shape. Only object entries qualify.
func decodeEntry(entry any, dst any) bool {
	if _, ok := entry.(map[string]any); !ok {
		return false
	}
	buf, err := json.Marshal(entry)
	if err != nil {
		return false
	}
	return json.Unmarshal(buf, dst) == nil
}
