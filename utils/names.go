package utils

import (
	"regexp"

	"prospect-outreach/models"
)

// =============================================================================
// Name Extraction
// =============================================================================

// candidateNamePattern matches a capitalized word optionally followed by a
// second capitalized word
var candidateNamePattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s[A-Z][a-z]+)?`)

// ExtractName returns the first capitalized word pair found in the text, or
// models.FallbackName when there is none. Best effort only: the match is not
// checked to actually be a person's name.
func ExtractName(background string) string {
	if background == "" {
		return models.FallbackName
	}
	if match := candidateNamePattern.FindString(background); match != "" {
		return match
	}
	return models.FallbackName
}
