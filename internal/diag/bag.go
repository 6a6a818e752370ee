package diag

import (
	"sort"

	"zinc/internal/source"
)

// Bag collects reports up to a fixed limit.
type Bag struct {
	items []Report
	max   int
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = 1
	}
	return &Bag{
		items: make([]Report, 0, min(max, 16)),
		max:   max,
	}
}

// Add добавляет репорт, учитывая лимит.
// Возвращает false, если лимит уже достигнут.
func (b *Bag) Add(r Report) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, r)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы один репорт с Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice; не модифицируйте его.
func (b *Bag) Items() []Report {
	return b.items
}

// FirstError returns the earliest error in report order.
func (b *Bag) FirstError() (Report, bool) {
	for _, r := range b.items {
		if r.Severity >= SevError {
			return r, true
		}
	}
	return Report{}, false
}

// Sort orders by file, start, end, then severity (desc) and code (asc).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Span.File != dj.Span.File {
			return di.Span.File < dj.Span.File
		}
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}
		if di.Span.End != dj.Span.End {
			return di.Span.End < dj.Span.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Locate converts every report into a located Diagnostic.
func (b *Bag) Locate(fs *source.FileSet) []*Diagnostic {
	out := make([]*Diagnostic, 0, len(b.items))
	for _, r := range b.items {
		d := FromFailure(fs, r.Code, r.Span, r.Msg)
		d.Severity = r.Severity
		out = append(out, d)
	}
	return out
}
