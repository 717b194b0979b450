package batch

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/FocuswithJustin/webbible/core/errors"
)

// DefaultSkip lists the site pages that are never converted.
var DefaultSkip = []string{"index.htm", "webfaq.htm", "copyright.htm", "links.htm"}

// Discover returns the sorted *.htm basenames directly inside dir, minus any
// name matching a skip pattern.
func Discover(dir string, skip []string) ([]string, error) {
	for _, pattern := range skip {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid skip pattern %q", pattern)
		}
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "*.htm", doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	names := make([]string, 0, len(matches))
	for _, name := range matches {
		if skipped(name, skip) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func skipped(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
