package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"prospect-outreach/config"
	"prospect-outreach/models"
	"prospect-outreach/prompts"
	"prospect-outreach/utils"
)

var errBlankDraft = errors.New("completion returned a blank draft")

// MessageComposer drafts the outreach message and repairs the draft
type MessageComposer struct {
	llm         Completer
	model       string
	temperature float64
	senderName  string
}

// NewMessageComposer creates a composer using the configured model settings
func NewMessageComposer(cfg *config.Config, llm Completer) *MessageComposer {
	return &MessageComposer{
		llm:         llm,
		model:       cfg.Model,
		temperature: cfg.MessageTemperature,
		senderName:  cfg.SenderName,
	}
}

// Compose sets req.FinalMessage from the already-summarized request. Any
// failure, including a blank draft, is logged and turned into
// models.MessageGenerationFailed. The greeting name comes from the prospect
// summary; when that summary is one of the placeholder literals the greeting
// uses models.FallbackName rather than a word of the placeholder.
func (c *MessageComposer) Compose(ctx context.Context, req *models.ProspectRequest) *models.ProspectRequest {
	message, err := c.generate(ctx, req)
	if err != nil {
		log.Printf("Message generation failed: %v", err)
		req.FinalMessage = models.MessageGenerationFailed
		return req
	}

	if hits := utils.FindBannedWords(message, prompts.BannedWords); len(hits) > 0 {
		log.Printf("Generated message contains banned words: %v", hits)
	}

	req.FinalMessage = message
	return req
}

func (c *MessageComposer) generate(ctx context.Context, req *models.ProspectRequest) (message string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("post-processing panic: %v", r)
		}
	}()

	firstName := models.FallbackName
	if models.SummaryStatus(req.ProspectBackground) == models.StatusOK {
		firstName = utils.ExtractName(req.ProspectBackground)
	}

	prompt := prompts.BuildMessagePrompt(prompts.MessagePromptData{
		FirstName:    firstName,
		SenderName:   c.senderName,
		ProspectName: req.ProspectName,
		Designation:  req.Designation,
		Company:      req.Company,
		Highlight:    req.ProspectBackground,
		EventName:    req.EventName,
		EventDetails: req.EventDetails,
	})

	draft, err := c.llm.Complete(ctx, prompt, c.model, c.temperature)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(draft) == "" {
		return "", errBlankDraft
	}

	message = utils.ApplyRepairs(draft, utils.DefaultRepairRules(utils.RepairContext{
		FirstName:  firstName,
		Company:    req.Company,
		EventName:  req.EventName,
		SenderName: c.senderName,
	})...)
	if message == "" {
		return "", fmt.Errorf("repaired message is empty")
	}
	return message, nil
}
