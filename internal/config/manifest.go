package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source is one statute entry in the manifest: a document path plus the
// metadata attached to every record extracted from it.
type Source struct {
	Path      string  `yaml:"pdf"`
	UUCode    string  `yaml:"uu_code"`
	UUName    string  `yaml:"uu_name"`
	UUNumber  string  `yaml:"uu_number"`
	Year      int     `yaml:"year"`
	ValidFrom *string `yaml:"valid_from"`
	ValidTo   *string `yaml:"valid_to"`
}

// FileName returns the base name used as source_file in output records.
func (s Source) FileName() string {
	return filepath.Base(s.Path)
}

// Validate reports whether the entry carries the metadata required to
// produce records. An invalid entry is skipped, not fatal to the run.
func (s Source) Validate() error {
	if s.Path == "" {
		return fmt.Errorf("source entry missing pdf path")
	}
	if s.UUCode == "" {
		return fmt.Errorf("source entry %q missing uu_code", s.Path)
	}
	return nil
}

// Manifest is the ordered list of statute documents to process.
type Manifest struct {
	Sources []Source `yaml:"sources"`
}

// LoadManifest reads and decodes the YAML sources manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("manifest %s lists no sources", path)
	}
	return &m, nil
}
