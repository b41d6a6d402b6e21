package models

// UploadResponse is returned by the upload screen after the backend has
// stored the file and produced a summary.
type UploadResponse struct {
	FileID  string        `json:"file_id"`
	Summary string        `json:"summary"`
	Lines   []SummaryLine `json:"lines"`
}

// SummaryLine is one rendered line of a summary. Kind is one of
// "heading", "bullet" or "text".
type SummaryLine struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type AnalysisRequest struct {
	Mode           string `json:"mode" validate:"required,oneof=gaps rank"`
	JobDescription string `json:"job_description" validate:"required"`
}

type AnalysisResponse struct {
	Mode   string `json:"mode"`
	Result string `json:"result"`
}

type CompareResponse struct {
	Comparison string `json:"comparison"`
}

type MatchTextRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

type MatchResponse struct {
	JobDescription string             `json:"job_description,omitempty"`
	Candidates     []MatchedCandidate `json:"candidates"`
}

type FeedbackRequest struct {
	ResumeID     string `json:"resume_id" validate:"required"`
	IsPositive   bool   `json:"is_positive"`
	FeedbackText string `json:"feedback_text,omitempty"`
}

type SearchRequest struct {
	Query    string `json:"query" validate:"required"`
	NResults int    `json:"n_results" validate:"omitempty,min=1,max=50"`
}

// ResumeView is a ResumeRecord annotated with the session's UI flags.
type ResumeView struct {
	ResumeRecord
	Selected bool `json:"selected"`
	Expanded bool `json:"expanded"`
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
	// Notice carries a non-fatal format warning when the backend returned
	// the questions in an unexpected shape.
	Notice string `json:"notice,omitempty"`
}

// DetectionResponse wraps the backend verdict with the display risk tier.
type DetectionResponse struct {
	DetectionResult
	RiskTier string `json:"risk_tier"`
}

type SessionResponse struct {
	View       ViewState `json:"view"`
	SelectedID []string  `json:"selected_ids"`
	ExpandedID string    `json:"expanded_id,omitempty"`
}

type SwitchViewRequest struct {
	View string `json:"view" validate:"required"`
}
