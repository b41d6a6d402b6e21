package services

import (
	"context"
	"fmt"
	"strings"

	"resumelens/web/internal/analyzer"
)

const (
	ModeGaps = "gaps"
	ModeRank = "rank"
)

// AnalysisService guards the comparison and ranking operations: an
// invalid mode/cardinality pair is rejected locally and never issues a
// network call.
type AnalysisService interface {
	CompareSelected(ctx context.Context, resumeIDs []string) (string, error)
	Analyze(ctx context.Context, mode string, jobDescription string, resumeIDs []string) (string, error)
}

type analysisService struct {
	client analyzer.Client
}

func NewAnalysisService(client analyzer.Client) AnalysisService {
	return &analysisService{client: client}
}

// ValidateAnalysis checks the mode/cardinality pair: gap analysis is
// valid for exactly one selected resume, ranking for two or more.
func ValidateAnalysis(mode string, resumeIDs []string) error {
	switch mode {
	case ModeGaps:
		if len(resumeIDs) != 1 {
			return fmt.Errorf("%w: gap analysis requires exactly one selected resume", ErrValidation)
		}
	case ModeRank:
		if len(resumeIDs) < 2 {
			return fmt.Errorf("%w: ranking requires at least 2 selected resumes", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown analysis mode %q", ErrValidation, mode)
	}
	return nil
}

// CompareSelected implements AnalysisService.
func (s *analysisService) CompareSelected(ctx context.Context, resumeIDs []string) (string, error) {
	if len(resumeIDs) < 2 {
		return "", fmt.Errorf("%w: select at least 2 resumes to compare", ErrValidation)
	}
	return s.client.CompareResumes(ctx, resumeIDs)
}

// Analyze implements AnalysisService.
func (s *analysisService) Analyze(ctx context.Context, mode string, jobDescription string, resumeIDs []string) (string, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return "", fmt.Errorf("%w: job description is required", ErrValidation)
	}
	if err := ValidateAnalysis(mode, resumeIDs); err != nil {
		return "", err
	}

	if mode == ModeGaps {
		return s.client.IdentifyGaps(ctx, jobDescription, resumeIDs)
	}
	return s.client.RankCandidates(ctx, jobDescription, resumeIDs)
}
