// Package diagfmt renders diagnostics, tokens and parse trees for the CLI.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path as it was given.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// HideSuggestion drops the trailing "help:" line.
	HideSuggestion bool
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	Indent bool
	// IncludeFile adds the file path; check output over several files sets it.
	IncludeFile bool
	// IncludeCode adds code and severity next to the four wire fields.
	IncludeCode bool
	PathMode    PathMode
}
