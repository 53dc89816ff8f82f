package warnings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacksonrayhamilton/murphy/internal/config"
)

func mustValidate(t *testing.T, file *config.File) *config.File {
	t.Helper()
	require.NoError(t, file.Validate("lint.toml"))
	return file
}

func codes(list []Warning) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		out = append(out, w.Code)
	}
	return out
}

func TestLintCleanChain(t *testing.T) {
	file := mustValidate(t, &config.File{Classes: []config.Class{
		{Name: "A", Params: []string{"x"}, Sample: []any{int64(1)}, Steps: []config.Step{
			{Op: config.OpSet, Tier: "protected", Field: "b", Arg: "x"},
			{Op: config.OpSet, Tier: "private", Field: "p", Value: true},
			{Op: config.OpExpect, Tier: "private", Field: "p", Value: true},
		}},
		{Name: "B", Parent: "A", Params: []string{"x"}, Sample: []any{int64(1)}, Steps: []config.Step{
			{Op: config.OpExpectAbsent, Tier: "private", Field: "p"},
			{Op: config.OpCopy, Tier: "public", Field: "b", From: "protected"},
			{Op: config.OpExpect, Tier: "public", Field: "b", Value: int64(1)},
		}},
	}})
	require.Empty(t, Lint(file))
}

func TestLintPrivateReadByDescendant(t *testing.T) {
	file := mustValidate(t, &config.File{Classes: []config.Class{
		{Name: "A", Steps: []config.Step{{Op: config.OpSet, Tier: "private", Field: "a", Value: int64(1)}}},
		{Name: "B", Parent: "A", Steps: []config.Step{{Op: config.OpExpect, Tier: "private", Field: "a", Value: int64(1)}}},
	}})
	list := Lint(file)
	require.Equal(t, []string{CodePrivateReadByDescendant}, codes(list))
	require.Equal(t, SeverityCritical, list[0].Severity)
	require.Equal(t, "B.step[0]", list[0].Subject)
	require.Contains(t, list[0].Message, `"A"`)
}

func TestLintFieldNeverSet(t *testing.T) {
	file := mustValidate(t, &config.File{Classes: []config.Class{
		{Name: "A", Steps: []config.Step{
			{Op: config.OpSet, Tier: "public", Field: "x", Value: int64(1)},
			{Op: config.OpDelete, Tier: "public", Field: "x"},
		}},
		{Name: "B", Parent: "A", Steps: []config.Step{
			{Op: config.OpExpect, Tier: "public", Field: "x", Value: int64(1)},
			{Op: config.OpCopy, Tier: "public", Field: "y", From: "protected"},
		}},
	}})
	list := Lint(file)
	require.Equal(t, []string{CodeFieldNeverSet, CodeFieldNeverSet}, codes(list))
	require.Contains(t, list[0].Message, "public.x")
	require.Contains(t, list[1].Message, "protected.y")
}

func TestLintParamsAndSamples(t *testing.T) {
	file := mustValidate(t, &config.File{Classes: []config.Class{
		{Name: "A", Params: []string{"x", "y"}, Sample: []any{int64(1), int64(2)}},
		{Name: "B", Parent: "A", Params: []string{"y", "x"}},
		{Name: "C", Parent: "A", Params: []string{"x"}, Sample: []any{int64(1), int64(2)}},
	}})
	require.Equal(t, []string{
		CodeParamNameMismatch,
		CodeParamNameMismatch,
		CodeSampleMissing,
		CodeSampleArity,
	}, codes(Lint(file)))
}

func TestWarningString(t *testing.T) {
	w := Warning{Code: CodeFieldNeverSet, Subject: "B.step[0]", Message: "msg", Fix: "fix it"}
	s := w.String()
	require.True(t, strings.HasPrefix(s, "WARNING FIELD_NEVER_SET: msg\n"))
	require.Contains(t, s, "severity: warning")
	require.Contains(t, s, "subject: B.step[0]")
	require.True(t, strings.HasSuffix(s, "fix: fix it"))
}
