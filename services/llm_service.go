package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"prospect-outreach/config"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrMissingAPIKey is returned when no credential was configured
	ErrMissingAPIKey = errors.New("completion API key is not configured")
	// ErrEmptyPrompt is returned for a blank prompt
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrEmptyCompletion is returned when the provider sends no choices
	ErrEmptyCompletion = errors.New("completion response has no choices")
)

// CompletionError reports a failed completion call
type CompletionError struct {
	Model string
	Err   error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion with model %s failed: %v", e.Model, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// Completer turns a prompt into generated text. Failures are returned as
// *CompletionError.
type Completer interface {
	Complete(ctx context.Context, prompt, model string, temperature float64) (string, error)
}

type LLMService struct {
	client *openai.Client
	cfg    *config.Config
}

// NewLLMService creates a new LLM service instance. Without an API key the
// service is still built, but every call fails before reaching the network.
func NewLLMService(cfg *config.Config) *LLMService {
	apiKey := cfg.APIKey()
	if apiKey == "" {
		log.Printf("No API key configured for LLM provider %s; completions are disabled", cfg.LLMProvider)
		return &LLMService{cfg: cfg}
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.LLMProvider == "groq" {
		clientConfig.BaseURL = cfg.LLMBaseURL
	}

	return &LLMService{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}
}

// Complete sends the prompt as a single user message and returns the
// trimmed completion. No retries happen here.
func (s *LLMService) Complete(ctx context.Context, prompt, model string, temperature float64) (string, error) {
	if s.client == nil {
		return "", &CompletionError{Model: model, Err: ErrMissingAPIKey}
	}
	if strings.TrimSpace(prompt) == "" {
		return "", &CompletionError{Model: model, Err: ErrEmptyPrompt}
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: requestTemperature(temperature),
	})
	if err != nil {
		return "", &CompletionError{Model: model, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &CompletionError{Model: model, Err: ErrEmptyCompletion}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// requestTemperature converts to the wire value. go-openai omits a zero
// temperature, which providers read as their default of about 1, so zero is
// sent as the smallest positive float32 instead.
func requestTemperature(temperature float64) float32 {
	if temperature <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(temperature)
}
