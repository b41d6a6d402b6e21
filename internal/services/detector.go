package services

import (
	"context"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/models"
)

const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

type DetectorService interface {
	Detect(ctx context.Context, filename string, data []byte) (*models.DetectionResponse, error)
}

type detectorService struct {
	client analyzer.Client
}

func NewDetectorService(client analyzer.Client) DetectorService {
	return &detectorService{client: client}
}

// Detect implements DetectorService.
func (d *detectorService) Detect(ctx context.Context, filename string, data []byte) (*models.DetectionResponse, error) {
	result, err := d.client.DetectFakeResume(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	return &models.DetectionResponse{
		DetectionResult: *result,
		RiskTier:        RiskTier(result.ConfidenceScore),
	}, nil
}

// RiskTier maps a 0-100 confidence score onto the three display tiers.
// Both thresholds are exclusive: 75 is medium, 50 is low.
func RiskTier(confidenceScore float64) string {
	switch {
	case confidenceScore > 75:
		return RiskHigh
	case confidenceScore > 50:
		return RiskMedium
	default:
		return RiskLow
	}
}
