package render

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"

	"github.com/jacksonrayhamilton/murphy"
)

func TestFormatJSON(t *testing.T) {
	out, err := Format(murphy.Members{"e": int64(5), "c": int64(3)}, FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"c\": 3,\n  \"e\": 5\n}\n", out)
}

func TestFormatYAML(t *testing.T) {
	out, err := Format(murphy.Members{"e": int64(5), "c": int64(3)}, "YAML")
	require.NoError(t, err)
	require.Equal(t, "c: 3\ne: 5\n", out)

	out, err = Format(nil, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)
}

func TestFormatTOMLRoundTrips(t *testing.T) {
	in := murphy.Members{"c": int64(3), "name": "rex", "ok": true, "gone": nil}
	out, err := Format(in, FormatTOML)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &back))
	require.Equal(t, map[string]any{"c": int64(3), "name": "rex", "ok": true}, back)
}

func TestFormatDefaultsToTOML(t *testing.T) {
	a, err := Format(murphy.Members{"c": int64(3)}, "")
	require.NoError(t, err)
	b, err := Format(murphy.Members{"c": int64(3)}, FormatTOML)
	require.NoError(t, err)
	require.Equal(t, b, a)
}

func TestFormatUnknown(t *testing.T) {
	_, err := Format(murphy.Members{}, "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestDiff(t *testing.T) {
	a := murphy.Members{"c": int64(3)}
	b := murphy.Members{"c": int64(3), "e": int64(5)}

	diff, err := Diff("A", a, "B", b, FormatYAML)
	require.NoError(t, err)
	require.Contains(t, diff, "--- A")
	require.Contains(t, diff, "+++ B")
	require.Contains(t, diff, "+e: 5")

	diff, err = Diff("B", b, "C", murphy.Members{"e": int64(5), "c": int64(3)}, FormatYAML)
	require.NoError(t, err)
	require.Empty(t, diff)

	_, err = Diff("A", a, "B", b, "xml")
	require.Error(t, err)
}
