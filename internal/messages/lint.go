package messages

// Definitions lint messages.
const (
	LintParamMismatchFmt = "parameter %d is %q here but %q in parent %q; arguments are passed to every level by position"
	LintParamMismatchFix = "Use the same parameter names along a chain, or reorder them to match."

	LintSampleMissingFmt = "class %q declares %d parameter(s) but no sample arguments"
	LintSampleMissingFix = "Add `sample = [...]` so `murphy check` instantiates the class with realistic arguments."
	LintSampleArityFmt   = "class %q has %d sample argument(s) for %d parameter(s)"
	LintSampleArityFix   = "Give one sample value per declared parameter."

	LintPrivateReadFmt   = "class %q reads private.%s, which only exists in %q's private members"
	LintPrivateReadFix   = "Private members are never inherited; move the field to protected to share it with descendants."
	LintFieldNeverSetFmt = "class %q reads %s.%s, which no earlier step sets"
	LintFieldNeverSetFix = "Set the field in this class or an ancestor before reading it."
)
