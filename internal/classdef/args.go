package classdef

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jacksonrayhamilton/murphy/internal/config"
)

// ParseArgs decodes command-line arguments as TOML scalars so `2` is an
// integer, `true` a boolean and `"2"` a string. Anything that is not a single
// scalar is kept as the raw string.
func ParseArgs(raw []string) []any {
	args := make([]any, len(raw))
	for i, s := range raw {
		args[i] = parseScalar(s)
	}
	return args
}

func parseScalar(s string) any {
	if strings.ContainsAny(s, "\r\n") || strings.TrimSpace(s) == "" {
		return s
	}
	var doc struct {
		V any `toml:"v"`
	}
	if err := toml.Unmarshal([]byte("v = "+s), &doc); err != nil {
		return s
	}
	v := config.NormalizeScalar(doc.V)
	if !config.IsScalar(v) {
		return s
	}
	return v
}
