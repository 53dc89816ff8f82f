package messages

// Definitions file loading and validation messages.
const (
	ConfigMissingFileFmt      = "missing definitions file %s: %w"
	ConfigInvalidFmt          = "invalid definitions in %s: %w"
	ConfigUnrecognizedKeysFmt = "%s contains unrecognized keys: %v."
	ConfigUnsupportedExtFmt   = "unsupported definitions format %q for %s (use .toml, .yaml, or .yml)"
	ConfigResolveHomeFmt      = "resolve home dir in %s: %w"
	ConfigValidationGuidance  = "Fix the definitions file and re-run `murphy check`."

	ConfigClassNameRequiredFmt   = "%s: class[%d].name is required"
	ConfigClassNameDuplicateFmt  = "%s: class[%d].name %q duplicates class[%d]"
	ConfigClassParentUnknownFmt  = "%s: class %q has unknown parent %q"
	ConfigClassCycleFmt          = "%s: class %q has cyclic ancestry (%s)"
	ConfigParamDuplicateFmt      = "%s: class %q declares parameter %q more than once"
	ConfigStepOpInvalidFmt       = "%s: class %q step[%d].op %q must be one of set, copy, delete, expect, expect_absent"
	ConfigStepTierInvalidFmt     = "%s: class %q step[%d].tier %q must be one of private, protected, public"
	ConfigStepFromInvalidFmt     = "%s: class %q step[%d].from %q must be one of private, protected, public"
	ConfigStepFieldRequiredFmt   = "%s: class %q step[%d].field is required"
	ConfigStepValueOrArgFmt      = "%s: class %q step[%d] must set exactly one of value or arg"
	ConfigStepArgUnknownFmt      = "%s: class %q step[%d].arg %q is not a declared parameter"
	ConfigStepValueNotScalarFmt  = "%s: class %q step[%d].value must be a string, number, or boolean"
	ConfigStepFromRequiredFmt    = "%s: class %q step[%d].from is required for copy"
	ConfigStepUnexpectedValueFmt = "%s: class %q step[%d] (%s) does not take value or arg"
	ConfigSampleNotScalarFmt     = "%s: class %q sample[%d] must be a string, number, or boolean"
	ConfigStepValueOutOfRangeFmt = "%s: class %q step[%d].value %d does not fit in a signed 64-bit integer"
	ConfigSampleOutOfRangeFmt    = "%s: class %q sample[%d] %d does not fit in a signed 64-bit integer"
)
