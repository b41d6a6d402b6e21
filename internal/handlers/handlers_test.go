package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/models"
	"resumelens/web/internal/services"
)

// stubClient implements analyzer.Client with per-method hooks so each
// test wires only the calls it expects.
type stubClient struct {
	listResumes          func(ctx context.Context) ([]models.ResumeRecord, error)
	uploadResume         func(ctx context.Context, filename string, data []byte) (string, error)
	summarize            func(ctx context.Context, fileID, model string) (string, error)
	compareResumes       func(ctx context.Context, resumeIDs []string) (string, error)
	generateQuestions    func(ctx context.Context, resumeID string) ([]string, analyzer.QuestionShape, error)
	identifyGaps         func(ctx context.Context, jobDescription string, resumeIDs []string) (string, error)
	rankCandidates       func(ctx context.Context, jobDescription string, resumeIDs []string) (string, error)
	uploadJobDescription func(ctx context.Context, filename string, data []byte) (*analyzer.JobMatch, error)
	detectFakeResume     func(ctx context.Context, filename string, data []byte) (*models.DetectionResult, error)
	sendFeedback         func(ctx context.Context, resumeID string, isPositive bool, feedbackText string) error
	searchResumes        func(ctx context.Context, query string, nResults int) ([]models.ResumeRecord, error)
	feedbackStats        func(ctx context.Context) (*models.FeedbackStats, error)
}

var errStubCall = errors.New("unexpected analyzer call")

func (s *stubClient) ListResumes(ctx context.Context) ([]models.ResumeRecord, error) {
	if s.listResumes == nil {
		return nil, errStubCall
	}
	return s.listResumes(ctx)
}

func (s *stubClient) UploadResume(ctx context.Context, filename string, data []byte) (string, error) {
	if s.uploadResume == nil {
		return "", errStubCall
	}
	return s.uploadResume(ctx, filename, data)
}

func (s *stubClient) Summarize(ctx context.Context, fileID, model string) (string, error) {
	if s.summarize == nil {
		return "", errStubCall
	}
	return s.summarize(ctx, fileID, model)
}

func (s *stubClient) CompareResumes(ctx context.Context, resumeIDs []string) (string, error) {
	if s.compareResumes == nil {
		return "", errStubCall
	}
	return s.compareResumes(ctx, resumeIDs)
}

func (s *stubClient) GenerateQuestions(ctx context.Context, resumeID string) ([]string, analyzer.QuestionShape, error) {
	if s.generateQuestions == nil {
		return nil, analyzer.ShapeUnknown, errStubCall
	}
	return s.generateQuestions(ctx, resumeID)
}

func (s *stubClient) IdentifyGaps(ctx context.Context, jobDescription string, resumeIDs []string) (string, error) {
	if s.identifyGaps == nil {
		return "", errStubCall
	}
	return s.identifyGaps(ctx, jobDescription, resumeIDs)
}

func (s *stubClient) RankCandidates(ctx context.Context, jobDescription string, resumeIDs []string) (string, error) {
	if s.rankCandidates == nil {
		return "", errStubCall
	}
	return s.rankCandidates(ctx, jobDescription, resumeIDs)
}

func (s *stubClient) UploadJobDescription(ctx context.Context, filename string, data []byte) (*analyzer.JobMatch, error) {
	if s.uploadJobDescription == nil {
		return nil, errStubCall
	}
	return s.uploadJobDescription(ctx, filename, data)
}

func (s *stubClient) DetectFakeResume(ctx context.Context, filename string, data []byte) (*models.DetectionResult, error) {
	if s.detectFakeResume == nil {
		return nil, errStubCall
	}
	return s.detectFakeResume(ctx, filename, data)
}

func (s *stubClient) SendFeedback(ctx context.Context, resumeID string, isPositive bool, feedbackText string) error {
	if s.sendFeedback == nil {
		return errStubCall
	}
	return s.sendFeedback(ctx, resumeID, isPositive, feedbackText)
}

func (s *stubClient) SearchResumes(ctx context.Context, query string, nResults int) ([]models.ResumeRecord, error) {
	if s.searchResumes == nil {
		return nil, errStubCall
	}
	return s.searchResumes(ctx, query, nResults)
}

func (s *stubClient) FeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	if s.feedbackStats == nil {
		return nil, errStubCall
	}
	return s.feedbackStats(ctx)
}

// testApp wires a fiber app with the full route table against a stubbed
// analyzer, mirroring the production wiring in cmd/web.
func testApp(t *testing.T, client analyzer.Client) (*fiber.App, *services.SessionStore) {
	t.Helper()

	store := services.NewSessionStore(time.Minute, time.Minute)
	intake := services.NewIntakeService(1 << 20)
	analysis := services.NewAnalysisService(client)
	matcher := services.NewMatcherService(client, 5)
	detector := services.NewDetectorService(client)

	uploadHandler := NewUploadHandler(client, intake, "llama3")
	libraryHandler := NewLibraryHandler(client, analysis)
	analysisHandler := NewAnalysisHandler(analysis)
	matcherHandler := NewMatcherHandler(matcher, intake)
	detectorHandler := NewDetectorHandler(detector, intake)
	sessionHandler := NewSessionHandler()

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Use(SessionMiddleware(store))

	api.Get("/session", sessionHandler.HandleGet)
	api.Put("/session/view", sessionHandler.HandleSwitchView)
	api.Post("/resumes/upload", uploadHandler.HandleUpload)
	api.Get("/resumes", libraryHandler.HandleList)
	api.Post("/resumes/search", libraryHandler.HandleSearch)
	api.Post("/resumes/compare", libraryHandler.HandleCompare)
	api.Post("/resumes/:id/select", libraryHandler.HandleToggleSelect)
	api.Post("/resumes/:id/expand", libraryHandler.HandleToggleExpand)
	api.Get("/resumes/:id/questions", libraryHandler.HandleQuestions)
	api.Post("/feedback", libraryHandler.HandleFeedback)
	api.Get("/feedback/stats", libraryHandler.HandleFeedbackStats)
	api.Post("/analysis", analysisHandler.HandleAnalyze)
	api.Post("/matcher/upload", matcherHandler.HandleMatchUpload)
	api.Post("/matcher/text", matcherHandler.HandleMatchText)
	api.Post("/detector", detectorHandler.HandleDetect)

	return app, store
}

func withSession(req *http.Request, sess *services.Session) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sess.ID})
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
}
