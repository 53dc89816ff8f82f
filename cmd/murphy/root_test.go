package main

// NOTE: Tests in this file mutate package-level globals (isTerminalWriter,
// color.NoColor). Do not use t.Parallel() at the top level.

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/jacksonrayhamilton/murphy"
	"github.com/jacksonrayhamilton/murphy/internal/classdef"
	"github.com/jacksonrayhamilton/murphy/internal/config"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
	"github.com/jacksonrayhamilton/murphy/internal/testutil"
)

const definitionsPath = "testdata/murphy.toml"

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	origNoColor := color.NoColor
	t.Cleanup(func() { color.NoColor = origNoColor })

	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"murphy"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRootVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.Version = "v1.2.3"
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetArgs([]string{"--version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "v1.2.3" {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}

func TestRootRegistersCommands(t *testing.T) {
	cmd := newRootCmd()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"new", "check", "trace", "diff", "classes"} {
		require.Contains(t, names, want)
	}
}

func TestRootColorDisabledForNonTerminal(t *testing.T) {
	orig := isTerminalWriter
	t.Cleanup(func() { isTerminalWriter = orig })
	isTerminalWriter = func(io.Writer) bool { return true }

	_, _, err := run(t, "--file", definitionsPath, "classes")
	require.NoError(t, err)
	require.False(t, color.NoColor)

	_, _, err = run(t, "--file", definitionsPath, "--no-color", "classes")
	require.NoError(t, err)
	require.True(t, color.NoColor)

	isTerminalWriter = func(io.Writer) bool { return false }
	_, _, err = run(t, "--file", definitionsPath, "classes")
	require.NoError(t, err)
	require.True(t, color.NoColor)
}

func TestNewPrintsPublicMembers(t *testing.T) {
	stdout, stderr, err := run(t, "--file", definitionsPath, "new", "puppy", "rex", "yip", "--format", "json")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Equal(t, "{\n  \"name\": \"rex\",\n  \"sound\": \"yip\"\n}\n", stdout)
}

func TestNewDefaultFormatIsTOML(t *testing.T) {
	stdout, _, err := run(t, "--file", definitionsPath, "new", "animal", "rex", "woof")
	require.NoError(t, err)
	require.Contains(t, stdout, "name = ")
	require.NotContains(t, stdout, "sound")
	require.NotContains(t, stdout, "secret")
}

func TestNewReportsFailedExpectations(t *testing.T) {
	stdout, stderr, err := run(t, "--file", definitionsPath, "new", "puppy", "rex", "woof", "-o", "yaml")
	require.Error(t, err)
	require.Equal(t, "puppy: 1 expectation(s) failed", err.Error())
	require.Equal(t, "name: rex\nsound: woof\n", stdout)
	require.Contains(t, stderr, "puppy step[0]: expected public.sound to be yip, but it was woof")
}

func TestNewUnknownClass(t *testing.T) {
	_, _, err := run(t, "--file", definitionsPath, "new", "cat")
	require.ErrorIs(t, err, classdef.ErrUnknownClass)
}

func TestNewUnknownFormat(t *testing.T) {
	_, _, err := run(t, "--file", definitionsPath, "new", "animal", "rex", "woof", "-o", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "xml")
}

func TestNewRequiresClass(t *testing.T) {
	_, _, err := run(t, "--file", definitionsPath, "new")
	require.Error(t, err)
}

func TestNewUsesEnvFile(t *testing.T) {
	abs, err := filepath.Abs(definitionsPath)
	require.NoError(t, err)
	t.Setenv(config.EnvFile, abs)

	stdout, _, err := run(t, "new", "dog", "rex", "woof", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, "\"sound\": \"woof\"")
}

func TestNewInvalidDefinitions(t *testing.T) {
	path := testutil.WriteDefinitions(t, "murphy.toml", "[[class]]\nname = \"a\"\nparent = \"missing\"\n")
	_, _, err := run(t, "--file", path, "new", "a")
	require.ErrorIs(t, err, config.ErrDefinitionValidation)
}

func TestDebugLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "--file", definitionsPath, "--debug", "new", "dog", "rex", "woof")
	require.NoError(t, err)
	require.Contains(t, stderr, "loading definitions")
	require.Contains(t, stderr, "compiled class")
	require.Contains(t, stderr, "instantiated")
}

func TestCheckPasses(t *testing.T) {
	stdout, _, err := run(t, "--file", definitionsPath, "check")
	require.NoError(t, err)
	require.Contains(t, stdout, "Checking class definitions in testdata/murphy.toml")
	require.Contains(t, stdout, "Loaded testdata/murphy.toml (3 classes)")
	require.Contains(t, stdout, "puppy: public members [name, sound]")
	require.Contains(t, stdout, messages.DoctorLintClean)
	require.Contains(t, stdout, messages.DoctorSuccessSummary)
	require.NotContains(t, stdout, messages.DoctorStatusFailLabel)
}

func TestCheckFailsOnSampleExpectation(t *testing.T) {
	data, err := os.ReadFile(definitionsPath)
	require.NoError(t, err)
	path := testutil.WriteDefinitions(t, "murphy.toml", strings.Replace(string(data), `sample = ["rex", "yip"]`, `sample = ["rex", "bark"]`, 1))

	stdout, _, err := run(t, "--file", path, "check")
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent), "expected SilentExitError, got %v", err)
	require.Equal(t, 1, silent.Code)
	require.Contains(t, stdout, "puppy: 1 expectation(s) failed")
	require.Contains(t, stdout, "expected public.sound to be yip, but it was bark")
	require.Contains(t, stdout, messages.DoctorFailureSummary)
}

func TestCheckWarnsOnLintFindings(t *testing.T) {
	data, err := os.ReadFile(definitionsPath)
	require.NoError(t, err)
	path := testutil.WriteDefinitions(t, "murphy.toml", strings.Replace(string(data), `sample = ["rex", "woof"]`, "", 1))

	stdout, _, err := run(t, "--file", path, "check")
	require.NoError(t, err)
	require.Contains(t, stdout, "SAMPLE_MISSING")
	require.Contains(t, stdout, messages.DoctorWarningSummary)
}

func TestCheckMissingFile(t *testing.T) {
	stdout, _, err := run(t, "--file", filepath.Join(t.TempDir(), "missing.toml"), "check")
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
	require.Contains(t, stdout, messages.DoctorDefinitionsLoadRecommend)
	require.NotContains(t, stdout, messages.DoctorCheckNameSamples)
}

func TestTraceShowsDelegation(t *testing.T) {
	stdout, _, err := run(t, "--file", definitionsPath, "trace", "dog", "rex", "woof")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.True(t, strings.HasPrefix(lines[0], "instance "), "unexpected header %q", lines[0])
	require.True(t, strings.HasSuffix(lines[0], " of dog"), "unexpected header %q", lines[0])
	require.Len(t, lines, 12)
	require.True(t, strings.HasPrefix(lines[1], "detect"), "unexpected line %q", lines[1])
	require.Contains(t, lines[1], "direct")
	require.True(t, strings.HasPrefix(lines[3], "  detect"), "unexpected line %q", lines[3])
	require.Contains(t, lines[3], "delegated")
	require.Contains(t, lines[3], "animal")
	require.True(t, strings.HasPrefix(lines[7], "project"), "unexpected line %q", lines[7])
	require.Equal(t, "result: {\n  \"name\": \"rex\",\n  \"sound\": \"woof\"\n}", strings.Join(lines[8:], "\n"))
}

func TestFormatTraceIndentsAncestors(t *testing.T) {
	events := []murphy.Event{
		{Phase: murphy.PhaseDetect, Mode: murphy.ModeDirect, Depth: 2, Name: "b"},
		{Phase: murphy.PhaseDetect, Mode: murphy.ModeDelegated, Depth: 1, Name: "a"},
	}
	lines := formatTrace(events)
	require.Len(t, lines, 2)
	require.False(t, strings.HasPrefix(lines[0], " "))
	require.True(t, strings.HasPrefix(lines[1], "  detect"))
}

func TestDiffShowsChangedMembers(t *testing.T) {
	stdout, _, err := run(t, "--file", definitionsPath, "diff", "animal", "dog", "rex", "woof")
	require.NoError(t, err)
	require.Contains(t, stdout, "--- animal")
	require.Contains(t, stdout, "+++ dog")
	require.Contains(t, stdout, "+sound")
}

func TestDiffIdentical(t *testing.T) {
	stdout, _, err := run(t, "--file", definitionsPath, "diff", "dog", "puppy", "rex", "yip")
	require.NoError(t, err)
	require.Equal(t, messages.DiffIdentical+"\n", stdout)
}

func TestClassesListsLineage(t *testing.T) {
	stdout, _, err := run(t, "--file", definitionsPath, "classes")
	require.NoError(t, err)
	require.Equal(t, "animal\tanimal\ndog\tanimal -> dog\npuppy\tanimal -> dog -> puppy\n", stdout)
}

func TestClassesEmpty(t *testing.T) {
	path := testutil.WriteDefinitions(t, "murphy.yaml", "class: []\n")
	stdout, _, err := run(t, "--file", path, "classes")
	require.NoError(t, err)
	require.Equal(t, messages.ClassesEmpty+"\n", stdout)
}

func TestDefaultDefinitionsFile(t *testing.T) {
	data, err := os.ReadFile(definitionsPath)
	require.NoError(t, err)
	dir := t.TempDir()
	testutil.WriteFile(t, dir, config.DefaultFileName, string(data))
	t.Setenv(config.EnvFile, "")

	testutil.WithWorkingDir(t, dir, func() {
		stdout, _, err := run(t, "classes")
		require.NoError(t, err)
		require.Contains(t, stdout, "puppy\tanimal -> dog -> puppy")
	})
}
