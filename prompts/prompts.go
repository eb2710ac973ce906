package prompts

import (
	"fmt"
	"strings"
)

// SummaryPrompt is the instruction placed before a background when
// summarizing it into highlight bullets
const SummaryPrompt = `Create 3 concise bullet points from this background text. Focus on key professional highlights and achievements:`

// BannedWords are flattery terms the message must not use. They are only
// requested in the prompt and scanned for afterwards, never enforced.
var BannedWords = []string{
	"exploring",
	"interested",
	"learning",
	"No easy feat",
	"Impressive",
	"Noteworthy",
	"Remarkable",
	"Fascinating",
	"Admiring",
	"Inspiring",
	"No small feat",
	"No easy task",
	"Stood out",
}

// BuildSummaryPrompt wraps already-truncated background text
func BuildSummaryPrompt(text string) string {
	return fmt.Sprintf("\n%s\n\n%s\n\nBullet points:\n-", SummaryPrompt, text)
}

// MessagePromptData carries the values substituted into the message prompt
type MessagePromptData struct {
	FirstName    string
	SenderName   string
	ProspectName string
	Designation  string
	Company      string
	Highlight    string
	EventName    string
	EventDetails string
}

// BuildMessagePrompt assembles the connection message prompt: output-only
// instruction, the 6-point template, worked examples and the prospect block.
func BuildMessagePrompt(d MessagePromptData) string {
	banned := strings.Join(BannedWords, ", ")
	event := d.EventName
	if d.EventDetails != "" {
		event = fmt.Sprintf("%s (%s)", d.EventName, d.EventDetails)
	}

	var b strings.Builder
	b.WriteString("IMPORTANT: Output ONLY the message itself.\n")
	b.WriteString("Do NOT include any explanations, labels, or introductions.\n")
	b.WriteString("Create a SHORT LinkedIn connection message (MAX 3 LINES) following this natural pattern:\n\n")

	fmt.Fprintf(&b, "1. \"Hi %s,\"\n", d.FirstName)
	fmt.Fprintf(&b, "2. Mention company participation in event: \"I see that you will be attending %s\"\n", d.EventName)
	fmt.Fprintf(&b, "3. Highlight one specific achievement/role from their background WITHOUT using flattery words (avoid: %s)\n", banned)
	fmt.Fprintf(&b, "4. Avoid these kind of flattery words %s\n", banned)
	b.WriteString("5. Express your attendance and desire to connect\n")
	fmt.Fprintf(&b, "6. Close with \"Best, %s\"\n\n", d.SenderName)

	b.WriteString("Examples:\n\n")
	for _, ex := range workedExamples {
		fmt.Fprintf(&b, "%s\nBest, %s\n\n", ex, d.SenderName)
	}

	b.WriteString("Now create for:\n")
	fmt.Fprintf(&b, "Prospect: %s (%s at %s)\n", d.ProspectName, d.Designation, d.Company)
	fmt.Fprintf(&b, "Key Highlight: %s\n", d.Highlight)
	fmt.Fprintf(&b, "Event: %s\n\n", event)
	b.WriteString("Message (MAX 2-3 LINES within 250 chars - follow the pattern above):\n")
	fmt.Fprintf(&b, "Hi %s,", d.FirstName)

	return b.String()
}

var workedExamples = []string{
	`Hi Tamara,
I see that you'll be attending Ai4 Vegas 2025. Your leadership in driving agentic AI, multi-agent systems, AI governance to transform healthcare and enterprise outcomes really caught my attention. I'll be there too & looking forward to catching up with you at the event!`,
	`Hi Arthy,
I see you'll be attending Ai4 Vegas 2025. Your leadership in driving business transformation, especially in AI adoption and literacy, really caught my attention. I'll be there too and would love to connect at the event!`,
	`Hi Harveer,
I see that you'll be attending Ai4 Vegas 2025. Your leadership in scaling enterprise AI and driving data-led digital transformation in banking and telecom really caught my attention. I'll be there too & looking forward to catching up with you at the event.`,
}
