package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "murphy"
	// RootShort is the short description for the root command.
	RootShort       = "Instantiate and inspect constructor families declared in a definitions file"
	RootFlagFile    = "Path to the class definitions file (default $MURPHY_FILE or ./murphy.toml)"
	RootFlagDebug   = "Enable debug logging on stderr"
	RootFlagNoColor = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// NewUse is the new command usage.
	NewUse             = "new <class> [args...]"
	NewShort           = "Instantiate a class and print its public members"
	NewFlagFormat      = "Output format: toml, json, or yaml"
	NewExpectFailedFmt = "%s: %d expectation(s) failed"

	// TraceUse is the trace command usage.
	TraceUse       = "trace <class> [args...]"
	TraceShort     = "Print every construction step of one instantiation"
	TraceHeaderFmt = "instance %s of %s\n"
	TraceResultFmt = "result: %s\n"

	// DiffUse is the diff command usage.
	DiffUse       = "diff <classA> <classB> [args...]"
	DiffShort     = "Show how the public members of two classes differ for the same arguments"
	DiffIdentical = "No differences."

	// ClassesUse is the classes command name.
	ClassesUse        = "classes"
	ClassesShort      = "List declared classes with their ancestry"
	ClassesEmpty      = "No classes declared."
	ClassesLineFmt    = "%s\t%s\n"
	ClassesLineageSep = " -> "

	ExpectationFailureFmt = "  - %s\n"
)
