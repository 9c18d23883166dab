// Package profile loads generation profiles from YAML files, so that a
// repeatable generation order can be kept next to the test suite that
// consumes its output.
package profile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/igorbrzezek/genfiles/internal/genfiles"
)

// FlatSpec holds the flat-mode parameters of a profile.
type FlatSpec struct {
	// Files is the number of files to create.
	Files int `yaml:"files"`
	// SizeKB is the fixed per-file size in KB.
	SizeKB int `yaml:"size_kb"`
}

// StructuredSpec holds the structured-mode parameters of a profile.
type StructuredSpec struct {
	// Dirs is the number of subdirectories to create.
	Dirs int `yaml:"dirs"`
	// MaxFiles caps the per-subdirectory file count.
	MaxFiles int `yaml:"max_files"`
	// MaxSizeKB is the maximum file size in KB.
	MaxSizeKB int `yaml:"max_size_kb"`
	// MinSizeBytes is the minimum file size in bytes (0 = library default).
	MinSizeBytes int `yaml:"min_size_bytes"`
	// Types selects the payload policy: bin, txt, or mix.
	Types string `yaml:"types"`
}

// Profile represents one named generation order stored as YAML.
type Profile struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Directory   string         `yaml:"directory"`
	Mode        string         `yaml:"mode"`
	Flat        FlatSpec       `yaml:"flat"`
	Structured  StructuredSpec `yaml:"structured"`
	Seed        int64          `yaml:"seed"`

	Source string `yaml:"-"`
}

// FromYAML parses a raw YAML profile definition.
func FromYAML(data string) (*Profile, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, errors.New("profile YAML is empty")
	}

	var prof Profile
	if err := yaml.Unmarshal([]byte(trimmed), &prof); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}

	if prof.Name == "" {
		return nil, errors.New("profile missing required field 'name'")
	}

	return &prof, nil
}

// LoadFile loads a profile from a YAML file path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file %q: %w", path, err)
	}

	prof, err := FromYAML(string(data))
	if err != nil {
		return nil, err
	}

	prof.Source = path

	return prof, nil
}

// Request converts the profile into a generation request. Fields the
// profile leaves unset keep the request's zero values, so the caller can
// layer command-line flags on top before validating.
func (p *Profile) Request() (genfiles.Request, error) {
	req := genfiles.Request{
		Root:      p.Directory,
		Files:     p.Flat.Files,
		SizeKB:    p.Flat.SizeKB,
		Dirs:      p.Structured.Dirs,
		MaxFiles:  p.Structured.MaxFiles,
		MaxSizeKB: p.Structured.MaxSizeKB,
		MinSize:   p.Structured.MinSizeBytes,
		Seed:      p.Seed,
	}

	switch p.Mode {
	case "flat":
		req.Mode = genfiles.ModeFlat
	case "", "structured":
		req.Mode = genfiles.ModeStructured
	default:
		return req, fmt.Errorf("unknown mode %q: must be flat or structured", p.Mode)
	}

	types, err := genfiles.ParseTypePolicy(p.Structured.Types)
	if err != nil {
		return req, err
	}

	req.Types = types

	if req.MinSize == 0 {
		req.MinSize = genfiles.DefaultMinSize
	}

	return req, nil
}
