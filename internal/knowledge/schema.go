package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Supported source formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported knowledge base format")
	ErrMalformed         = errors.New("malformed knowledge base")
)

// Source is the on-disk knowledge base: an ordered array of entries.
type Source []EntrySource

// EntrySource is one entry as written in the knowledge base file.
type EntrySource struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Answer   string   `json:"answer" yaml:"answer"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected .json, .yaml or .yml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format string) (Source, error) {
	var src Source
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &src); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &src); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return src, nil
}

// LoadSource reads and parses a knowledge base file.
func LoadSource(fs afero.Fs, path string) (Source, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base: %w", err)
	}
	src, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return src, nil
}
