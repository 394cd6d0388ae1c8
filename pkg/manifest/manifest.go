// Package manifest tracks generated resolver files across runs, so repeated
// generation can be audited and stale outputs located.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Entry records one generated output file.
type Entry struct {
	Package string   `yaml:"package" json:"package"`
	Version string   `yaml:"version,omitempty" json:"version,omitempty"`
	File    string   `yaml:"file" json:"file"`
	Schemas []string `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// Manifest is the on-disk ledger of generated outputs.
type Manifest struct {
	CurrentVersion  string  `yaml:"current_version,omitempty" json:"current_version,omitempty"`
	PreviousVersion string  `yaml:"previous_version,omitempty" json:"previous_version,omitempty"`
	Entries         []Entry `yaml:"entries" json:"entries"`
}

// Load reads a manifest from path. A missing file yields an empty manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// Save writes the manifest to path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Record adds or replaces the entry for a generated file, moving the version
// pointers forward when the version changes.
func (m *Manifest) Record(e Entry) {
	if e.Version != "" && e.Version != m.CurrentVersion {
		m.PreviousVersion = m.CurrentVersion
		m.CurrentVersion = e.Version
	}
	for i := range m.Entries {
		if m.Entries[i].File == e.File {
			m.Entries[i] = e
			return
		}
	}
	m.Entries = append(m.Entries, e)
}

// FileFor returns the output file recorded for a package, or "".
func (m *Manifest) FileFor(pkg string) string {
	for _, e := range m.Entries {
		if e.Package == pkg {
			return e.File
		}
	}
	return ""
}
