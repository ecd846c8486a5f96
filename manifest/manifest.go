// Package manifest loads the package-metadata file (fern.yaml) that a
// driver would use to know which source, header, and data files make up
// a package, and which other packages it requires. Kept intentionally
// minimal: fernc only needs to read the file list out of the manifest,
// not resolve or fetch packages itself.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Package is the decoded form of one fern.yaml file.
type Package struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Sources []string `yaml:"sources"`
	Headers []string `yaml:"headers"`
	Data    []string `yaml:"data"`
	// Requires lists other package names this package imports from.
	Requires []string `yaml:"requires"`
}

// Manifest is the parsed root of a fern.yaml file: the package it
// describes, plus the filesystem path it was loaded from (callers
// resolve Sources/Headers/Data relative to this path's directory).
type Manifest struct {
	Path    string
	Package Package
}

// Load reads and parses the fern.yaml at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: reading %s: %w", path, err)
	}
	var pkg Package
	if err := yaml.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("manifest: parsing %s: %w", path, err)
	}
	if pkg.Name == "" {
		return nil, fmt.Errorf("manifest: %s: missing required \"name\" field", path)
	}
	return &Manifest{Path: path, Package: pkg}, nil
}
