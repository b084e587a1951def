package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML config (trellomd.yaml). Zero values leave the
// corresponding option untouched, so a partial file only overrides what it
// names.
type File struct {
	ListName  string `yaml:"list_name"`
	Label     string `yaml:"label"`
	Title     string `yaml:"title"`
	OutputDir string `yaml:"output_dir"`
	KeepCSV   bool   `yaml:"keep_csv"`
}

// LoadFile reads and decodes a YAML config file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

// Apply overlays the file's non-zero fields onto opts and returns the result.
func (f File) Apply(opts Options) Options {
	if f.ListName != "" {
		opts.ListName = f.ListName
	}
	if f.Label != "" {
		opts.ReportableLabel = f.Label
	}
	if f.Title != "" {
		opts.Title = f.Title
	}
	if f.KeepCSV {
		opts.KeepCSV = true
	}
	return opts
}
