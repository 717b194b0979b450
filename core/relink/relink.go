// Package relink rewrites internal cross-references from legacy book IDs to
// the renamed files.
package relink

import (
	"regexp"

	"github.com/FocuswithJustin/webbible/core/books"
)

// hrefPattern matches a quoted href value that names a local .htm page.
// The ID group must end in a non-digit, so the chapter digits are never
// folded into the ID and a short ID such as PS cannot capture PSA01.htm.
// Groups: 1 attribute and opening quote, 2 ID, 3 digits, .htm, optional fragment, closing quote.
var hrefPattern = regexp.MustCompile(`(href=['"])([0-9A-Za-z_]*[A-Za-z_])(\d*\.htm(?:#[^'"]*)?['"])`)

// Rewriter rewrites href attributes against a registry.
type Rewriter struct {
	// ids holds the exact legacy spelling only, so a renamed link such as
	// Job01.htm is never rewritten a second time.
	ids map[string]books.Entry
}

// New creates a Rewriter for reg.
func New(reg *books.Registry) *Rewriter {
	entries := reg.Entries()
	ids := make(map[string]books.Entry, len(entries))
	for _, e := range entries {
		ids[e.ID] = e
	}
	return &Rewriter{ids: ids}
}

// Rewrite replaces every href="<ID><digits>.htm" whose ID is in the registry
// with href="<Prefix><digits>.htm". Anything else is returned unchanged.
func (r *Rewriter) Rewrite(content string) string {
	return hrefPattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := hrefPattern.FindStringSubmatch(m)
		e, ok := r.lookup(sub[2])
		if !ok {
			return m
		}
		return sub[1] + e.Prefix + sub[3]
	})
}

// Count returns how many references Rewrite would change.
func (r *Rewriter) Count(content string) int {
	n := 0
	for _, sub := range hrefPattern.FindAllStringSubmatch(content, -1) {
		if _, ok := r.lookup(sub[2]); ok {
			n++
		}
	}
	return n
}

func (r *Rewriter) lookup(id string) (books.Entry, bool) {
	e, ok := r.ids[id]
	return e, ok
}
