package services

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"prospect-outreach/config"
	"prospect-outreach/models"
	"prospect-outreach/prompts"
	"prospect-outreach/utils"
)

// summaryPoints is the bullet count the summary prompt asks for
const summaryPoints = 3

// Summarizer condenses a free-text background into highlight bullets
type Summarizer struct {
	llm         Completer
	model       string
	temperature float64
	maxChars    int
}

// NewSummarizer creates a summarizer using the configured model settings
func NewSummarizer(cfg *config.Config, llm Completer) *Summarizer {
	return &Summarizer{
		llm:         llm,
		model:       cfg.Model,
		temperature: cfg.SummaryTemperature,
		maxChars:    cfg.MaxBackgroundChars,
	}
}

// Summarize returns highlight bullets for the text. Blank or non-UTF-8 input
// yields models.NoContentToSummarize without a model call; a failed call
// yields models.SummaryUnavailable. It never returns an error.
func (s *Summarizer) Summarize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" || !utf8.ValidString(text) {
		return models.NoContentToSummarize
	}

	summary, err := s.llm.Complete(ctx, prompts.BuildSummaryPrompt(truncateRunes(text, s.maxChars)), s.model, s.temperature)
	if err != nil {
		log.Printf("Summarization error: %v", err)
		return models.SummaryUnavailable
	}

	summary = strings.TrimSpace(summary)
	if n := utils.CountSummaryPoints(summary); n != summaryPoints {
		log.Printf("Summary has %d points, expected %d", n, summaryPoints)
	}
	return summary
}

// truncateRunes keeps the first max characters of text
func truncateRunes(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max])
}
