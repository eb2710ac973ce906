package services

import (
	"context"

	"prospect-outreach/models"
)

// Pipeline runs summarization then composition over one request
type Pipeline struct {
	summarizer *Summarizer
	composer   *MessageComposer
}

// NewPipeline creates a new pipeline
func NewPipeline(summarizer *Summarizer, composer *MessageComposer) *Pipeline {
	return &Pipeline{
		summarizer: summarizer,
		composer:   composer,
	}
}

// Run summarizes both backgrounds in place, then composes the final message.
// The returned request always has FinalMessage set.
func (p *Pipeline) Run(ctx context.Context, req *models.ProspectRequest) *models.ProspectRequest {
	if req == nil {
		req = &models.ProspectRequest{}
	}

	req.ProspectBackground = p.summarizer.Summarize(ctx, req.ProspectBackground)
	req.MyBackground = p.summarizer.Summarize(ctx, req.MyBackground)

	return p.composer.Compose(ctx, req)
}
