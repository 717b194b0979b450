// Package books holds the book registry shared by every conversion pass.
//
// A Registry is an immutable, ordered table of Entry values. The order is the
// canonical sidebar order; lookups are by legacy ID (GEN, 1SA, PSA) or by the
// filename prefix the modernize pass produces (Genesis, 1_Samuel, Psalms).
package books

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/webbible/core/errors"
)

// Group classifies a book into one of the sidebar divisions.
type Group string

// Group constants.
const (
	GroupOT         Group = "ot"
	GroupDC         Group = "dc"
	GroupNT         Group = "nt"
	GroupSupplement Group = "supplement"
)

// Title returns the sidebar heading for the group.
func (g Group) Title() string {
	switch g {
	case GroupOT:
		return "Old Testament"
	case GroupDC:
		return "Deuterocanon"
	case GroupNT:
		return "New Testament"
	case GroupSupplement:
		return "Supplementary"
	default:
		return string(g)
	}
}

// sidebarGroups is the fixed order of the navigable divisions.
var sidebarGroups = []Group{GroupOT, GroupDC, GroupNT}

// Entry describes one book.
type Entry struct {
	// ID is the legacy uppercase identifier used in the source filenames (e.g., "GEN").
	ID string

	// Prefix is the filename stem after renaming (e.g., "Song_of_Solomon").
	Prefix string

	// Name is the display name (e.g., "Song of Solomon").
	Name string

	// Chapters is the chapter count; zero for supplementary documents.
	Chapters int

	// Group is the sidebar division.
	Group Group
}

// IsText reports whether the entry is Bible text rather than front matter or a glossary.
func (e Entry) IsText() bool {
	return e.Group != GroupSupplement
}

// Width is the zero-padded chapter number width used in this book's filenames.
// Books with more than 99 chapters use three digits.
func (e Entry) Width() int {
	if e.Chapters > 99 {
		return 3
	}
	return 2
}

// ChapterFile returns the filename of chapter n.
func (e Entry) ChapterFile(n int) string {
	return fmt.Sprintf("%s%0*d.htm", e.Prefix, e.Width(), n)
}

// FirstChapterFile returns the filename of chapter 1.
func (e Entry) FirstChapterFile() string {
	return e.ChapterFile(1)
}

// IndexFile returns the filename of the book's chapter-list page.
func (e Entry) IndexFile() string {
	return e.Prefix + ".htm"
}

// Registry is an immutable ordered book table.
type Registry struct {
	entries  []Entry
	byID     map[string]int
	byPrefix map[string]int
}

// New builds a registry from entries, preserving their order.
// IDs and prefixes must be non-empty and unique (case-insensitive).
func New(entries []Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.NewValidation("", "registry has no entries")
	}

	r := &Registry{
		entries:  make([]Entry, len(entries)),
		byID:     make(map[string]int, len(entries)),
		byPrefix: make(map[string]int, len(entries)),
	}
	copy(r.entries, entries)

	for i, e := range r.entries {
		if e.ID == "" || e.Prefix == "" || e.Name == "" {
			return nil, errors.NewValidation("entry", fmt.Sprintf("entry %d has an empty id, prefix or name", i))
		}
		if e.IsText() && e.Chapters < 1 {
			return nil, errors.NewValidation("chapters", fmt.Sprintf("%s has no chapters", e.ID))
		}
		id := strings.ToUpper(e.ID)
		if _, dup := r.byID[id]; dup {
			return nil, errors.NewValidation("id", fmt.Sprintf("duplicate id %s", e.ID))
		}
		prefix := strings.ToLower(e.Prefix)
		if _, dup := r.byPrefix[prefix]; dup {
			return nil, errors.NewValidation("prefix", fmt.Sprintf("duplicate prefix %s", e.Prefix))
		}
		r.byID[id] = i
		r.byPrefix[prefix] = i
	}

	return r, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew(entries []Entry) *Registry {
	r, err := New(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds an entry by legacy ID, ignoring case.
func (r *Registry) Lookup(id string) (Entry, bool) {
	i, ok := r.byID[strings.ToUpper(id)]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// ByPrefix finds an entry by its filename prefix, ignoring case.
func (r *Registry) ByPrefix(prefix string) (Entry, bool) {
	i, ok := r.byPrefix[strings.ToLower(prefix)]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of all entries in canonical order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Groups returns the navigable divisions in sidebar order.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(sidebarGroups))
	copy(out, sidebarGroups)
	return out
}

// InGroup returns the entries of a group in canonical order.
func (r *Registry) InGroup(g Group) []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.Group == g {
			out = append(out, e)
		}
	}
	return out
}
