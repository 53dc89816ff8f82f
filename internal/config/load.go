package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

// ErrDefinitionValidation wraps validation failures (as opposed to syntax or
// filesystem errors). Callers can use errors.Is to tell them apart.
var ErrDefinitionValidation = errors.New("definitions validation failed")

// Format identifies the encoding of a definitions file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath infers the encoding from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(messages.ConfigUnsupportedExtFmt, filepath.Ext(path), path)
	}
}

// LoadDefinitions reads, parses and validates the definitions file at path.
func LoadDefinitions(path string) (*File, error) {
	data, format, err := readDefinitions(path)
	if err != nil {
		return nil, err
	}
	return ParseDefinitions(data, format, path)
}

// LoadDefinitionsLenient reads the definitions file without validation.
// Returns an error only on filesystem or syntax errors.
func LoadDefinitionsLenient(path string) (*File, error) {
	data, format, err := readDefinitions(path)
	if err != nil {
		return nil, err
	}
	return ParseDefinitionsLenient(data, format, path)
}

func readDefinitions(path string) ([]byte, Format, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return data, format, nil
}

// ParseDefinitions parses and validates definitions data.
// source is used in error messages.
func ParseDefinitions(data []byte, format Format, source string) (*File, error) {
	file, err := ParseDefinitionsLenient(data, format, source)
	if err != nil {
		return nil, err
	}
	if err := decodeStrict(data, format); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrDefinitionValidation, source, err)
	}
	if err := file.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrDefinitionValidation, err)
	}
	return file, nil
}

// ParseDefinitionsLenient parses definitions data without validation.
func ParseDefinitionsLenient(data []byte, format Format, source string) (*File, error) {
	var file File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
		}
	default:
		return nil, fmt.Errorf(messages.ConfigUnsupportedExtFmt, format, source)
	}
	file.normalizeValues()
	return &file, nil
}

// decodeStrict re-decodes data rejecting unknown keys, which the lenient
// decoders silently drop.
func decodeStrict(data []byte, format Format) error {
	var file File
	switch format {
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		return decoder.Decode(&file)
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return nil
	}
}

// normalizeValues converts decoder-specific scalar types so TOML and YAML
// definitions compare equal: every integer becomes int64.
func (f *File) normalizeValues() {
	for i := range f.Classes {
		class := &f.Classes[i]
		for j := range class.Sample {
			class.Sample[j] = NormalizeScalar(class.Sample[j])
		}
		for j := range class.Steps {
			class.Steps[j].Value = NormalizeScalar(class.Steps[j].Value)
		}
	}
}

// NormalizeScalar maps Go integer and float types onto int64 and float64.
// Unsigned values above math.MaxInt64 and other values are returned unchanged.
func NormalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		if uint64(n) > math.MaxInt64 {
			return v
		}
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		if n > math.MaxInt64 {
			return v
		}
		return int64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}

// isOutOfRange reports whether v is an unsigned integer int64 cannot hold.
func isOutOfRange(v any) bool {
	switch n := v.(type) {
	case uint:
		return uint64(n) > math.MaxInt64
	case uint64:
		return n > math.MaxInt64
	default:
		return false
	}
}

// IsScalar reports whether v is a string, int64, float64 or bool.
func IsScalar(v any) bool {
	switch v.(type) {
	case string, int64, float64, bool:
		return true
	default:
		return false
	}
}
