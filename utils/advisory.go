package utils

import "strings"

// =============================================================================
// Advisory Checks (logged, never enforced)
// =============================================================================

// CountSummaryPoints counts non-blank lines in a summary. The summary prompt
// ends with a bullet marker, so the first point usually arrives without one.
func CountSummaryPoints(summary string) int {
	count := 0
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• ")
		if line != "" {
			count++
		}
	}
	return count
}

// FindBannedWords returns the banned terms present in the message, matched
// case-insensitively
func FindBannedWords(message string, banned []string) []string {
	lower := strings.ToLower(message)
	var hits []string
	for _, word := range banned {
		if strings.Contains(lower, strings.ToLower(word)) {
			hits = append(hits, word)
		}
	}
	return hits
}
