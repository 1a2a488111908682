package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrUnknownFormat = errors.New("unknown plan format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Load reads the plan file at path. A relative catalog path is resolved
// against the directory of the plan.
func Load(path string) (*Plan, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plan: %w", err)
	}
	defer f.Close()

	p, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if p.Catalog != "" && !filepath.IsAbs(p.Catalog) {
		p.Catalog = filepath.Join(filepath.Dir(path), p.Catalog)
	}

	return p, nil
}

// Parse decodes and validates a plan.
func Parse(r io.Reader, format Format) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	var doc interface{}
	var p Plan

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding plan: %w", err)
		}

		if err := validate(doc); err != nil {
			return nil, fmt.Errorf("invalid plan: %w", err)
		}

		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding plan: %w", err)
		}
	case FormatTOML:
		var table map[string]interface{}
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&table); err != nil {
			return nil, fmt.Errorf("decoding plan: %w", err)
		}

		if err := validate(table); err != nil {
			return nil, fmt.Errorf("invalid plan: %w", err)
		}

		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
			return nil, fmt.Errorf("decoding plan: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &p, nil
}
