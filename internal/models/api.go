package models

// GenerateRequest starts phase 1 for a new topic.
type GenerateRequest struct {
	Topic    string `json:"topic"`
	AutoPost bool   `json:"auto_post"`
}

// ProceedRequest submits the human-edited timeline and triggers phase 2.
type ProceedRequest struct {
	Timeline []TimelineEntry `json:"script_columns"`
}

// StatusResponse is the poll payload for a single job.
type StatusResponse struct {
	ID         string            `json:"generation_id"`
	Topic      string            `json:"topic"`
	Language   string            `json:"language"`
	Status     string            `json:"status"`
	Progress   int               `json:"progress"`
	Phase      string            `json:"phase"`
	Error      *string           `json:"error"`
	Result     *GenerationResult `json:"result"`
	ScriptData *ScriptData       `json:"script_data,omitempty"`
}

// API error envelope.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
