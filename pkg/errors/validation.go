package errors

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"
)

// ValidateOutputPath validates a path the CLI is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
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

// ValidateLabel validates a node label before it is drawn.
// Labels may contain any printable text but no control characters other
// than tab, and are limited to 256 characters.
func ValidateLabel(label string) error {
	if len(label) > 256 {
		return New(ErrCodeInvalidInput, "label too long (max 256 characters)")
	}
	for _, r := range label {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label %q contains control characters", label)
		}
	}
	return nil
}

// colorRegex matches the colour notations accepted in style files:
// #rgb, #rrggbb, rgb(r, g, b), rgba(r, g, b, a) and bare words. Bare words
// must also be SVG colour names, transparent or none.
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|rgba?\([0-9.,\s]+\)|([a-zA-Z]+))$`)

// ValidateColor validates a colour string from a style configuration.
func ValidateColor(c string) error {
	if c == "" {
		return New(ErrCodeInvalidConfig, "colour cannot be empty")
	}
	c = strings.TrimSpace(c)
	m := colorRegex.FindStringSubmatch(c)
	if m == nil {
		return New(ErrCodeInvalidConfig, "invalid colour: %q", c)
	}
	if m[2] != "" {
		name := strings.ToLower(m[2])
		if _, ok := colornames.Map[name]; !ok && name != "transparent" && name != "none" {
			return New(ErrCodeInvalidConfig, "unknown colour name: %q", c)
		}
	}
	return nil
}
