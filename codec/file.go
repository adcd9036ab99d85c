package codec

import (
	"encoding/json"
	"fmt"
	"os"

	"planar/scene"
)

// Save writes a model to a JSON scene file.
func Save(filename string, m *scene.Model) error {
	data, err := json.MarshalIndent(Encode(m), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadDocument reads and parses a scene file without restoring
// components.
func LoadDocument(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return &doc, nil
}

// Load reads a scene file and restores it through the registry. The
// report lists entries that were skipped; the error is non-nil only when
// the file itself is unreadable or the version is unsupported.
func Load(filename string, reg *scene.Registry) (*scene.Model, *Report, error) {
	doc, err := LoadDocument(filename)
	if err != nil {
		return nil, nil, err
	}
	return Decode(doc, reg)
}
