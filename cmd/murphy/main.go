package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// SilentExitError reports an exit code without emitting error output.
// `murphy check` returns it after printing its own report.
type SilentExitError struct {
	Code int
}

func (e SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// execute runs the CLI with args (program name first) and the given writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	cmd.SetArgs(append([]string{}, args[min(1, len(args)):]...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and maps errors onto exit codes.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	var silent *SilentExitError
	if errors.As(err, &silent) {
		exit(silent.Code)
		return
	}
	_, _ = fmt.Fprintln(stderr, err)
	exit(1)
}

// versionString describes the binary. Linker-provided values win; a plain
// `go install` build falls back to the module version and VCS revision.
func versionString() string {
	version, commit, built := Version, Commit, BuildDate
	if info, ok := readBuildInfo(); ok {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && !known(commit) {
				commit = setting.Value
			}
		}
	}

	var meta []string
	if known(commit) {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, commit))
	}
	if known(built) {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, built))
	}
	if len(meta) == 0 {
		return version
	}
	return fmt.Sprintf(messages.VersionFullFmt, version, strings.Join(meta, ", "))
}

func known(value string) bool {
	return value != "" && value != "unknown"
}
