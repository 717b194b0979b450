// Package validation checks names and sizes before the batch drivers touch
// the filesystem.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Limits on what a driver will read or write.
const (
	// MaxPageSize is the largest chapter page a driver will load (16 MB).
	MaxPageSize = 16 << 20
	// MaxFilenameLength is the maximum allowed filename length.
	MaxFilenameLength = 255
)

// Common validation errors.
var (
	ErrInvalidFilename = errors.New("invalid filename")
	ErrFilenameTooLong = errors.New("filename too long")
	ErrPageTooLarge    = errors.New("page too large")
)

// ValidateFilename checks that filename is a plain name inside the corpus
// directory: no separators, no traversal, no control characters.
func ValidateFilename(filename string) error {
	if filename == "" {
		return ErrInvalidFilename
	}

	// Check length
	if len(filename) > MaxFilenameLength {
		return ErrFilenameTooLong
	}

	// Reject dangerous filenames
	if filename == "." || filename == ".." {
		return fmt.Errorf("%w: reserved name", ErrInvalidFilename)
	}

	// Check for path separators
	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: path separator not allowed", ErrInvalidFilename)
	}

	// Check for control characters, including null bytes
	for _, r := range filename {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidFilename)
		}
	}

	// Reject filenames starting with hyphen (can be confused with command flags)
	if strings.HasPrefix(filename, "-") {
		return fmt.Errorf("%w: filename cannot start with hyphen", ErrInvalidFilename)
	}

	return nil
}

// ValidatePageSize rejects pages larger than MaxPageSize.
func ValidatePageSize(size int64) error {
	if size > MaxPageSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrPageTooLarge, size, MaxPageSize)
	}
	return nil
}
