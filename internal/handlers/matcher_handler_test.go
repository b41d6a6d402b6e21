package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/models"
)

func TestMatcherHandler_MatchUpload(t *testing.T) {
	client := &stubClient{
		uploadJobDescription: func(ctx context.Context, filename string, data []byte) (*analyzer.JobMatch, error) {
			assert.Equal(t, "jd.txt", filename)
			return &analyzer.JobMatch{
				JobDescription: "backend engineer",
				MatchingResumes: []models.MatchedCandidate{
					{ID: "r1", MatchScore: 0.3},
					{ID: "r2", MatchScore: 0.8},
				},
			}, nil
		},
	}
	app, _ := testApp(t, client)

	req := multipartRequest(t, "/api/v1/matcher/upload", "jd.txt", []byte("backend engineer"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.MatchResponse
	decodeBody(t, resp, &out)
	require.Len(t, out.Candidates, 2)
	assert.Equal(t, "r2", out.Candidates[0].ID)
	assert.Equal(t, "r1", out.Candidates[1].ID)
}

func TestMatcherHandler_MatchText(t *testing.T) {
	client := &stubClient{
		listResumes: func(ctx context.Context) ([]models.ResumeRecord, error) {
			return []models.ResumeRecord{{ID: "r1", Summary: "golang engineer"}}, nil
		},
		identifyGaps: func(ctx context.Context, jd string, ids []string) (string, error) {
			return "needs more infra work", nil
		},
	}
	app, _ := testApp(t, client)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matcher/text", strings.NewReader(`{"job_description": "golang engineer"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.MatchResponse
	decodeBody(t, resp, &out)
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "needs more infra work", out.Candidates[0].GapAnalysis)
}

func TestMatcherHandler_MatchTextRequiresJobDescription(t *testing.T) {
	app, _ := testApp(t, &stubClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matcher/text", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
