package lsp

import (
	"net/url"
	"path/filepath"
)

// uriToPath maps a file:// URI to a local path; other schemes yield "".
func uriToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return ""
	}
	return filepath.FromSlash(parsed.Path)
}

func pathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// displayName is what diagnostics for uri are attributed to.
func displayName(uri string) string {
	if p := uriToPath(uri); p != "" {
		return p
	}
	return uri
}
