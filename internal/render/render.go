// Package render formats public members for display and compares them.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jacksonrayhamilton/murphy"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

// Output formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTOML, FormatJSON, FormatYAML}

// Format renders members in the named format with keys sorted. TOML has no
// null, so nil values are left out of TOML output.
func Format(members murphy.Members, format string) (string, error) {
	plain := map[string]any(members)
	if plain == nil {
		plain = map[string]any{}
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTOML, "":
		withoutNil := make(map[string]any, len(plain))
		for k, v := range plain {
			if v != nil {
				withoutNil[k] = v
			}
		}
		data, err := toml.Marshal(withoutNil)
		if err != nil {
			return "", fmt.Errorf(messages.RenderEncodeFmt, FormatTOML, err)
		}
		return string(data), nil
	case FormatJSON:
		data, err := json.MarshalIndent(plain, "", "  ")
		if err != nil {
			return "", fmt.Errorf(messages.RenderEncodeFmt, FormatJSON, err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		if len(plain) == 0 {
			return "{}\n", nil
		}
		data, err := yaml.Marshal(plain)
		if err != nil {
			return "", fmt.Errorf(messages.RenderEncodeFmt, FormatYAML, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf(messages.RenderUnknownFormatFmt, format, strings.Join(Formats, ", "))
	}
}

// Diff returns a unified diff between the renderings of a and b, or "" when
// they render identically.
func Diff(nameA string, a murphy.Members, nameB string, b murphy.Members, format string) (string, error) {
	left, err := Format(a, format)
	if err != nil {
		return "", err
	}
	right, err := Format(b, format)
	if err != nil {
		return "", err
	}
	if left == right {
		return "", nil
	}
	return udiff.Unified(nameA, nameB, left, right), nil
}
