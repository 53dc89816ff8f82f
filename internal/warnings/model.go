package warnings

import "fmt"

// Warning codes.
const (
	CodePrivateReadByDescendant = "PRIVATE_READ_BY_DESCENDANT"
	CodeFieldNeverSet           = "FIELD_NEVER_SET"
	CodeParamNameMismatch       = "PARAM_NAME_MISMATCH"
	CodeSampleMissing           = "SAMPLE_MISSING"
	CodeSampleArity             = "SAMPLE_ARITY"
)

// Severity labels whether a warning should be considered critical.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Warning represents a warning message.
type Warning struct {
	Code     string
	Subject  string
	Message  string
	Fix      string
	Severity string
}

func (w Warning) String() string {
	s := "WARNING " + w.Code + ": " + w.Message + "\n"
	s += fmt.Sprintf("  severity: %s\n", w.severityOrDefault())
	s += "  subject: " + w.Subject + "\n"
	s += "  fix: " + w.Fix
	return s
}

func (w Warning) severityOrDefault() string {
	if w.Severity == "" {
		return SeverityWarning
	}
	return w.Severity
}
