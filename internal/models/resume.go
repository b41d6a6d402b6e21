package models

// ResumeRecord is a stored, previously analyzed resume as the analyzer
// backend reports it. Records live only for the duration of a page session;
// nothing here is persisted by this service.
type ResumeRecord struct {
	ID       string         `json:"id"`
	Summary  string         `json:"summary"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// MatchedCandidate is a resume scored against a job description.
// MatchScore is in [0,1].
type MatchedCandidate struct {
	ID          string         `json:"id"`
	Summary     string         `json:"summary"`
	MatchScore  float64        `json:"match_score"`
	GapAnalysis string         `json:"gap_analysis,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// DetectionResult is the backend's verdict on whether a resume looks
// fake or AI-generated. ConfidenceScore is 0-100.
type DetectionResult struct {
	IsSuspicious    bool     `json:"is_suspicious"`
	ConfidenceScore float64  `json:"confidence_score"`
	Reasons         []string `json:"reasons"`
	RedFlags        []string `json:"red_flags"`
}

// FeedbackStats aggregates thumbs up/down feedback across all stored resumes.
type FeedbackStats struct {
	TotalPositive           int `json:"total_positive"`
	TotalNegative           int `json:"total_negative"`
	ResumeCountWithFeedback int `json:"resume_count_with_feedback"`
	TotalResumeCount        int `json:"total_resume_count"`
}
