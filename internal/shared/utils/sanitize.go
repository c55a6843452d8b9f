package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all HTML. Complaint and message free text is stored
// plain, never rendered as markup.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText removes any HTML from user-supplied free text and trims
// surrounding whitespace.
func SanitizeText(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}
