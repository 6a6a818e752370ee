package diagfmt

import (
	"zinc/internal/diag"
	"zinc/internal/source"
)

// pathOf returns the display path of the file d points to, or "".
func pathOf(d *diag.Diagnostic, fs *source.FileSet, mode PathMode) string {
	if fs == nil || d == nil {
		return ""
	}
	f := fs.Get(d.Span.File)
	if f == nil {
		return ""
	}
	return formatPath(f, fs, mode)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.Path
	}
}
