package tools

import (
	"fmt"
	"strings"
)

// ContentFormat constants for the content tools accept
const (
	ContentFormatJSON     = "json"
	ContentFormatMarkdown = "markdown"
	// ContentFormatDefault is the default content format
	ContentFormatDefault = ContentFormatJSON
)

// ContentFormatValues lists the accepted formats.
var ContentFormatValues = []string{ContentFormatJSON, ContentFormatMarkdown}

// ValidateAndNormalizeContentFormat checks if the provided format is valid and returns the normalized version.
// If the input is nil or empty, it returns the default format.
func ValidateAndNormalizeContentFormat(format *string) (string, error) {
	if format == nil {
		return ContentFormatDefault, nil
	}

	normalized := strings.ToLower(strings.TrimSpace(*format))
	if normalized == "" {
		return ContentFormatDefault, nil
	}

	if !IsValidContentFormat(normalized) {
		return "", fmt.Errorf("invalid content_format: %s (valid: %v)", normalized, ContentFormatValues)
	}
	return normalized, nil
}

// IsValidContentFormat returns true if the format is supported.
func IsValidContentFormat(format string) bool {
	switch format {
	case ContentFormatJSON, ContentFormatMarkdown:
		return true
	default:
		return false
	}
}
