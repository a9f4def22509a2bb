package errors

import (
	"strings"
	"unicode"
)

// ValidateWidgetID validates a widget identifier for safety and correctness.
// Widget IDs travel through layout documents, store keys, and URLs, so the
// rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateWidgetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidWidgetID, "widget ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidWidgetID, "widget ID too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWidgetID, "widget ID contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidWidgetID, "widget ID contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateLayoutName validates a stored layout (perspective) name.
// Layout names become store keys and URL path segments, so they must be
// simple identifiers without path components.
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLayoutName, "layout name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidLayoutName, "layout name too long (max 128 characters)")
	}

	// Must be a simple name, not a path
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidLayoutName, "layout name cannot contain path separators")
	}

	// No hidden names (starting with .)
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidLayoutName, "layout name cannot start with a dot")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLayoutName, "layout name contains invalid control characters")
		}
	}

	return nil
}
