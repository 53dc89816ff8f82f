package messages

// Output rendering messages.
const (
	RenderEncodeFmt        = "encode %s: %w"
	RenderUnknownFormatFmt = "unknown output format %q (supported: %s)"
)
