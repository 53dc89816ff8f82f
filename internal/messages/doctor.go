package messages

// Doctor messages for the check command.
const (
	// CheckUse is the check command name.
	CheckUse   = "check"
	CheckShort = "Validate definitions, lint them, and run every class with its sample arguments"

	DoctorHealthCheckFmt = "Checking class definitions in %s...\n"

	DoctorCheckNameDefinitions = "Definitions"
	DoctorCheckNameCompile     = "Compile"
	DoctorCheckNameSamples     = "Samples"
	DoctorCheckNameLint        = "Lint"

	DoctorDefinitionsLoadedFmt        = "Loaded %s (%d classes)"
	DoctorDefinitionsLoadFailedFmt    = "Failed to load definitions: %v"
	DoctorDefinitionsLoadRecommend    = "Check that the file exists and is valid TOML or YAML."
	DoctorDefinitionsInvalidRecommend = "The file parses but its classes are inconsistent; fix the reported field."
	DoctorCompileFailedFmt            = "Failed to compile classes: %v"

	DoctorSampleErrorFmt  = "%s: %v"
	DoctorSampleFailedFmt = "%s: %d expectation(s) failed"
	DoctorSamplePassedFmt = "%s: public members [%s]"

	DoctorLintClean      = "No lint findings"
	DoctorLintFindingFmt = "%s %s: %s"

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-12s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "

	DoctorFailureSummary = "Some checks failed."
	DoctorWarningSummary = "Checks passed with warnings."
	DoctorSuccessSummary = "All checks passed."
)
