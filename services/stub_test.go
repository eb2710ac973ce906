package services

import (
	"context"
	"errors"
	"strings"

	"prospect-outreach/config"
)

// stubCompleter records prompts and answers by prompt kind: summary prompts
// get summary, the message prompt gets message or messageErr
type stubCompleter struct {
	prompts      []string
	temperatures []float64
	summary      string
	message      string
	err          error
	messageErr   error
}

func (s *stubCompleter) Complete(_ context.Context, prompt, _ string, temperature float64) (string, error) {
	s.prompts = append(s.prompts, prompt)
	s.temperatures = append(s.temperatures, temperature)
	if s.err != nil {
		return "", s.err
	}
	if strings.Contains(prompt, "Bullet points:") {
		return s.summary, nil
	}
	if s.messageErr != nil {
		return "", s.messageErr
	}
	return s.message, nil
}

func failingCompletion() error {
	return &CompletionError{Model: "test-model", Err: errors.New("quota exceeded")}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Model = "test-model"
	return cfg
}
