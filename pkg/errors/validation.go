package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateLength checks that a named measurement is finite and not negative.
// The name is reported verbatim so callers can use the field's external
// spelling (e.g. "hide_left_cm").
func ValidateLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be finite, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s must not be negative, got %g", name, v)
	}
	return nil
}

// ValidateRange checks that lo <= hi for a min/max measurement pair.
func ValidateRange(loName string, lo float64, hiName string, hi float64) error {
	if lo > hi {
		return New(ErrCodeInvalidDimension, "%s (%g) exceeds %s (%g)", loName, lo, hiName, hi)
	}
	return nil
}

// presetKeyRegex matches lookup keys such as "ruby" or "dark_angel".
var presetKeyRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidatePresetKey validates a preset lookup key.
//
// Keys are lowercase identifiers because they double as output file stems.
func ValidatePresetKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidPreset, "preset key cannot be empty")
	}
	if len(key) > 64 {
		return New(ErrCodeInvalidPreset, "preset key too long (max 64 characters)")
	}
	if !presetKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidPreset, "invalid preset key %q (use lowercase letters, digits, '_' or '-')", key)
	}
	return nil
}

// ValidateOutputPath validates a file path that renderers will write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
