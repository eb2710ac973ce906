package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HistoryRequest represents a request for recent generation runs
type HistoryRequest struct {
	Limit int `json:"limit" form:"limit" binding:"omitempty,min=1,max=100"`
}

// HistoryResponse lists recent generation runs
type HistoryResponse struct {
	Runs     []GenerationLog   `json:"runs"`
	Metadata *ResponseMetadata `json:"metadata"`
}

// GenerationStats summarizes stored pipeline outcomes
type GenerationStats struct {
	TotalRuns          int64      `json:"total_runs"`
	SuccessfulMessages int64      `json:"successful_messages"`
	FailedMessages     int64      `json:"failed_messages"`
	SummaryFallbacks   int64      `json:"summary_fallbacks"`
	LastRunAt          *time.Time `json:"last_run_at,omitempty"`
}

// ResponseMetadata contains pagination information for API responses
type ResponseMetadata struct {
	Count    int               `json:"count"`             // Number of items returned
	Page     int               `json:"page"`              // Current page number
	PageSize int               `json:"page_size"`         // Items per page
	Filters  map[string]string `json:"filters,omitempty"` // Applied filters
}

// NewResponseMetadata creates a new ResponseMetadata with defaults
func NewResponseMetadata(count, pageSize int, filters map[string]string) *ResponseMetadata {
	return &ResponseMetadata{
		Count:    count,
		Page:     1,
		PageSize: pageSize,
		Filters:  filters,
	}
}
