package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// ShowPreview prints the offending source line with a caret underline.
	ShowPreview bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds 1-based line/col pairs next to byte spans.
	IncludePositions bool
	PathMode         PathMode
	// Max truncates the output, not the underlying Bag. Zero means all.
	Max int
}
