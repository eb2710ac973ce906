package utils

import (
	"fmt"
	"strings"
)

// =============================================================================
// Message Repair Rules
// =============================================================================

// RepairRule takes a candidate message and returns it, possibly repaired.
// Every rule leaves an already-compliant message unchanged.
type RepairRule func(message string) string

// RepairContext carries the request values the rules check against
type RepairContext struct {
	FirstName  string
	Company    string
	EventName  string
	SenderName string
}

// PreamblePhrases are openings that mark a labelled or explained completion
var PreamblePhrases = []string{
	"Here is a LinkedIn connection message",
	"Here's a LinkedIn message",
	"Here’s a LinkedIn message",
	"LinkedIn connection message:",
	"Message:",
	"Output:",
}

// ConnectionPhrases signal that the message asks to connect
var ConnectionPhrases = []string{
	"look forward",
	"would be great",
	"hope to connect",
	"love to connect",
	"looking forward",
}

// ConnectionSentence is appended when no connection phrase is present
const ConnectionSentence = "I'll be there too & looking forward to catching up with you at the event."

// ApplyRepairs runs the rules in order over the message
func ApplyRepairs(message string, rules ...RepairRule) string {
	for _, rule := range rules {
		message = rule(message)
	}
	return message
}

// DefaultRepairRules returns the fixed rule sequence for one request
func DefaultRepairRules(rc RepairContext) []RepairRule {
	return []RepairRule{
		TrimSpace,
		StripPreamble,
		EnsureConnectionIntent(rc.SenderName),
		EnsureCompanyMention(rc.FirstName, rc.Company, rc.EventName),
		DedupeSignOff(rc.SenderName),
	}
}

// TrimSpace strips surrounding whitespace
func TrimSpace(message string) string {
	return strings.TrimSpace(message)
}

// StripPreamble drops the first line when the message opens with a preamble
// phrase. A single-line message has nothing after the label and is kept.
func StripPreamble(message string) string {
	for _, phrase := range PreamblePhrases {
		if !strings.HasPrefix(strings.ToLower(message), strings.ToLower(phrase)) {
			continue
		}
		if _, rest, found := strings.Cut(message, "\n"); found {
			message = strings.TrimSpace(rest)
		}
	}
	return message
}

// EnsureConnectionIntent adds ConnectionSentence when none of the
// connection phrases occur. The sentence goes before the first sign-off so
// that DedupeSignOff cannot cut it off again; without a sign-off it is
// appended.
func EnsureConnectionIntent(senderName string) RepairRule {
	signOff := "Best, " + senderName
	return func(message string) string {
		lower := strings.ToLower(message)
		for _, phrase := range ConnectionPhrases {
			if strings.Contains(lower, phrase) {
				return message
			}
		}

		before, after, found := strings.Cut(message, signOff)
		if !found {
			return strings.TrimSpace(message + "\n" + ConnectionSentence)
		}
		return strings.TrimSpace(before) + "\n" + ConnectionSentence + "\n\n" + signOff + after
	}
}

// EnsureCompanyMention injects an event-attendance line naming the company
// right after the greeting when the company is not mentioned. If the exact
// greeting is missing the line goes after the first line instead.
func EnsureCompanyMention(firstName, company, eventName string) RepairRule {
	return func(message string) string {
		if company == "" || strings.Contains(strings.ToLower(message), strings.ToLower(company)) {
			return message
		}

		line := CompanyEventLine(company, eventName)
		greeting := fmt.Sprintf("Hi %s,", firstName)
		if strings.Contains(message, greeting) {
			return strings.Replace(message, greeting, greeting+"\n"+line, 1)
		}

		first, rest, found := strings.Cut(message, "\n")
		if !found {
			return message + "\n" + line
		}
		return first + "\n" + line + "\n" + rest
	}
}

// CompanyEventLine is the attendance sentence used by EnsureCompanyMention
func CompanyEventLine(company, eventName string) string {
	if eventName == "" {
		return fmt.Sprintf("I see that you and the %s team will be at the event.", company)
	}
	return fmt.Sprintf("I see that you and the %s team will be attending %s.", company, eventName)
}

// DedupeSignOff keeps only the text before the first "Best, {sender}" when
// the sign-off occurs more than once, then appends a single sign-off
func DedupeSignOff(senderName string) RepairRule {
	signOff := "Best, " + senderName
	return func(message string) string {
		if strings.Count(message, signOff) <= 1 {
			return message
		}
		before, _, _ := strings.Cut(message, signOff)
		return strings.TrimSpace(before) + "\n\n" + signOff
	}
}
