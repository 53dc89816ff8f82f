package messages

// Class compilation and instantiation messages.
const (
	ClassdefUnknownClassFmt = "%w %q"
	ClassdefCycleFmt        = "class %q has cyclic ancestry"

	ExpectValueMismatchFmt = "%s step[%d]: expected %s.%s to be %v, but it was %v"
	ExpectValueAbsentFmt   = "%s step[%d]: expected %s.%s to be %v, but it was absent"
	ExpectAbsentFmt        = "%s step[%d]: expected %s.%s to be absent, but it was %v"
)
