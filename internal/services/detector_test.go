package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/web/internal/models"
)

func TestRiskTier_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, RiskHigh},
		{80, RiskHigh},
		{75.1, RiskHigh},
		{75, RiskMedium}, // threshold itself is medium
		{60, RiskMedium},
		{50.1, RiskMedium},
		{50, RiskLow}, // threshold itself is low
		{30, RiskLow},
		{0, RiskLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskTier(tt.score), "score %v", tt.score)
	}
}

func TestDetectorService_Detect(t *testing.T) {
	client := &fakeClient{
		detectFakeResume: func(ctx context.Context, filename string, data []byte) (*models.DetectionResult, error) {
			assert.Equal(t, "resume.pdf", filename)
			return &models.DetectionResult{
				IsSuspicious:    true,
				ConfidenceScore: 82,
				Reasons:         []string{"template phrasing"},
				RedFlags:        []string{"identical dates"},
			}, nil
		},
	}

	verdict, err := NewDetectorService(client).Detect(context.Background(), "resume.pdf", []byte("bytes"))
	require.NoError(t, err)
	assert.True(t, verdict.IsSuspicious)
	assert.Equal(t, RiskHigh, verdict.RiskTier)
}
