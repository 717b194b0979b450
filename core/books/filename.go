package books

import (
	"strings"
)

const htmExt = ".htm"

// Document identifies one chapter document on disk.
type Document struct {
	Entry Entry

	// Chapter holds the chapter digits exactly as they appear in the filename;
	// empty for a chapter-list page.
	Chapter string
}

// IsChapterList reports whether the document is a book's chapter-list page.
func (d Document) IsChapterList() bool {
	return d.Chapter == ""
}

// splitExt returns the filename stem if name ends in .htm (any case).
func splitExt(name string) (string, bool) {
	if len(name) <= len(htmExt) || !strings.EqualFold(name[len(name)-len(htmExt):], htmExt) {
		return "", false
	}
	return name[:len(name)-len(htmExt)], true
}

// trailingDigits returns the index where the run of trailing ASCII digits in s starts.
func trailingDigits(s string) int {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return i
}

// ParseLegacyFilename parses a source filename such as GEN01.htm or 1SA.htm.
// Legacy IDs never end in a digit, so the ID is the stem minus its trailing
// digits. The ID must match exactly: Job01.htm is a modernized name, not JOB01.htm.
func (r *Registry) ParseLegacyFilename(name string) (Document, bool) {
	stem, ok := splitExt(name)
	if !ok {
		return Document{}, false
	}
	cut := trailingDigits(stem)
	if cut == 0 {
		return Document{}, false
	}
	e, ok := r.Lookup(stem[:cut])
	if !ok || e.ID != stem[:cut] {
		return Document{}, false
	}
	return Document{Entry: e, Chapter: stem[cut:]}, true
}

// ParseFilename parses a modernized filename such as Genesis01.htm,
// Psalms119.htm or Psalm_15101.htm. Prefixes may themselves end in digits, so
// the longest registered prefix followed only by digits wins.
func (r *Registry) ParseFilename(name string) (Document, bool) {
	stem, ok := splitExt(name)
	if !ok {
		return Document{}, false
	}
	first := trailingDigits(stem)
	for cut := len(stem); cut >= first && cut > 0; cut-- {
		if e, ok := r.ByPrefix(stem[:cut]); ok {
			return Document{Entry: e, Chapter: stem[cut:]}, true
		}
	}
	return Document{}, false
}

// HasChapterNumber reports whether name ends in <digits>.htm.
func HasChapterNumber(name string) bool {
	stem, ok := splitExt(name)
	if !ok {
		return false
	}
	return trailingDigits(stem) < len(stem)
}
