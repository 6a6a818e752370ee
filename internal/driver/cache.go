package driver

import (
	"strconv"

	"zinc/internal/cache"
	"zinc/internal/diag"
	"zinc/internal/source"
	"zinc/internal/version"
)

// cacheSchema меняется вместе с форматом cacheEntry.
const cacheSchema uint16 = 1

// cacheEntry is the msgpack payload stored per source digest. Parse trees are not cached.
type cacheEntry struct {
	Schema   uint16
	Out      string
	Diag     *diag.Diagnostic
	Warnings []*diag.Diagnostic
}

func cacheKey(file *source.File, opts Options) cache.Digest {
	return cache.Key(
		[]byte(version.Version),
		[]byte(strconv.FormatBool(opts.Strict)),
		[]byte(strconv.Itoa(opts.MaxDepth)),
		[]byte(file.Path),
		file.Hash[:],
	)
}

func newCacheEntry(res *Result) cacheEntry {
	return cacheEntry{
		Schema:   cacheSchema,
		Out:      res.Out,
		Diag:     res.Diag,
		Warnings: res.Warnings,
	}
}

// restore copies the entry into res, rebinding spans to res.File.
func (e *cacheEntry) restore(res *Result) {
	res.Cached = true
	res.Out = e.Out
	res.Diag = rebind(e.Diag, res.File.ID)
	res.Warnings = make([]*diag.Diagnostic, 0, len(e.Warnings))
	for _, w := range e.Warnings {
		res.Warnings = append(res.Warnings, rebind(w, res.File.ID))
	}
}

func rebind(d *diag.Diagnostic, id source.FileID) *diag.Diagnostic {
	if d == nil {
		return nil
	}
	d.Span.File = id
	return d
}
