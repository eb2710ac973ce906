package models

import "time"

// GenerationLog is the server-side outcome record of one pipeline run.
// It is derived from a ProspectRequest after the run; the request itself is
// never stored.
type GenerationLog struct {
	ID                    string    `gorm:"primaryKey" json:"run_id"`
	ProspectName          string    `json:"prospect_name,omitempty"`
	Company               string    `gorm:"index:idx_company" json:"company,omitempty"`
	EventName             string    `gorm:"index:idx_event" json:"event_name,omitempty"`
	ProspectSummaryStatus string    `json:"prospect_summary_status"` // "ok", "empty", "unavailable"
	MySummaryStatus       string    `json:"my_summary_status"`
	MessageStatus         string    `gorm:"index:idx_message_status" json:"message_status"` // "ok", "failed"
	FinalMessage          string    `json:"final_message"`
	CreatedAt             time.Time `gorm:"index:idx_created_at" json:"created_at"`
}

// Outcome statuses
const (
	StatusOK          = "ok"
	StatusEmpty       = "empty"
	StatusUnavailable = "unavailable"
	StatusFailed      = "failed"
)

// SummaryStatus classifies a summarized background by its fallback literal
func SummaryStatus(summary string) string {
	switch summary {
	case NoContentToSummarize:
		return StatusEmpty
	case SummaryUnavailable:
		return StatusUnavailable
	default:
		return StatusOK
	}
}

// MessageStatus classifies a final message by the failure sentinel
func MessageStatus(message string) string {
	if message == "" || message == MessageGenerationFailed {
		return StatusFailed
	}
	return StatusOK
}
