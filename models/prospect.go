package models

// ProspectRequest is the record threaded through one pipeline run.
// Empty optional fields are treated as absent. The backgrounds arrive raw and
// are overwritten with their summaries before the message is composed.
type ProspectRequest struct {
	ProspectName       string `json:"prospect_name,omitempty" binding:"max=200"`
	Designation        string `json:"designation,omitempty" binding:"max=200"`
	Company            string `json:"company,omitempty" binding:"max=200"`
	Industry           string `json:"industry,omitempty" binding:"max=200"`
	ProspectBackground string `json:"prospect_background" binding:"max=50000"`
	MyBackground       string `json:"my_background" binding:"max=50000"`
	EventName          string `json:"event_name,omitempty" binding:"max=200"`
	EventDetails       string `json:"event_details,omitempty" binding:"max=500"`
	FinalMessage       string `json:"final_message,omitempty"`
}

// Fixed literals returned in place of genuine output
const (
	NoContentToSummarize    = "No content to summarize."
	SummaryUnavailable      = "Background summary unavailable"
	MessageGenerationFailed = "Failed to generate message"
	FallbackName            = "there"
)

// GenerateMessageResponse is returned by the generate endpoint
type GenerateMessageResponse struct {
	RunID        string           `json:"run_id,omitempty"`
	FinalMessage string           `json:"final_message"`
	Prospect     *ProspectRequest `json:"prospect"`
}
