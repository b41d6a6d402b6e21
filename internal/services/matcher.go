package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/models"
)

// MatcherService produces a candidate list sorted by fit for a job
// description, either from an uploaded file (the backend scores it) or
// from pasted text (one gap-analysis call per stored resume, scored
// locally by keyword overlap).
type MatcherService interface {
	MatchUpload(ctx context.Context, filename string, data []byte) (*models.MatchResponse, error)
	MatchText(ctx context.Context, jobDescription string) (*models.MatchResponse, error)
}

type matcherService struct {
	client analyzer.Client
	topN   int
}

func NewMatcherService(client analyzer.Client, topN int) MatcherService {
	return &matcherService{
		client: client,
		topN:   topN,
	}
}

// MatchUpload implements MatcherService.
func (m *matcherService) MatchUpload(ctx context.Context, filename string, data []byte) (*models.MatchResponse, error) {
	match, err := m.client.UploadJobDescription(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	candidates := match.MatchingResumes
	sortByScore(candidates)

	return &models.MatchResponse{
		JobDescription: match.JobDescription,
		Candidates:     candidates,
	}, nil
}

// MatchText implements MatcherService. It fans out one gap-analysis
// request per stored resume and joins all results before sorting; a
// single failed call aborts the whole fan-out with one surfaced error.
func (m *matcherService) MatchText(ctx context.Context, jobDescription string) (*models.MatchResponse, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is required", ErrValidation)
	}

	records, err := m.client.ListResumes(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.MatchedCandidate, len(records))

	g, gctx := errgroup.WithContext(ctx)
	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			gaps, err := m.client.IdentifyGaps(gctx, jobDescription, []string{record.ID})
			if err != nil {
				return fmt.Errorf("gap analysis for resume %s failed: %w", record.ID, err)
			}
			candidates[i] = models.MatchedCandidate{
				ID:          record.ID,
				Summary:     record.Summary,
				MatchScore:  MatchScore(record.Summary, jobDescription),
				GapAnalysis: gaps,
				Metadata:    record.Metadata,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortByScore(candidates)
	if m.topN > 0 && len(candidates) > m.topN {
		candidates = candidates[:m.topN]
	}

	return &models.MatchResponse{Candidates: candidates}, nil
}

func sortByScore(candidates []models.MatchedCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})
}
