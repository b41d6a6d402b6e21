package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"resumelens/web/internal/models"
)

// Client wraps the resume analyzer backend. Every call is a single
// request/response exchange: no retries, failures surface immediately to
// the caller. All methods honor context cancellation so an abandoned
// screen can abort its pending call.
type Client interface {
	ListResumes(ctx context.Context) ([]models.ResumeRecord, error)
	UploadResume(ctx context.Context, filename string, data []byte) (string, error)
	Summarize(ctx context.Context, fileID string, model string) (string, error)
	CompareResumes(ctx context.Context, resumeIDs []string) (string, error)
	GenerateQuestions(ctx context.Context, resumeID string) ([]string, QuestionShape, error)
	IdentifyGaps(ctx context.Context, jobDescription string, resumeIDs []string) (string, error)
	RankCandidates(ctx context.Context, jobDescription string, resumeIDs []string) (string, error)
	UploadJobDescription(ctx context.Context, filename string, data []byte) (*JobMatch, error)
	DetectFakeResume(ctx context.Context, filename string, data []byte) (*models.DetectionResult, error)
	SendFeedback(ctx context.Context, resumeID string, isPositive bool, feedbackText string) error
	SearchResumes(ctx context.Context, query string, nResults int) ([]models.ResumeRecord, error)
	FeedbackStats(ctx context.Context) (*models.FeedbackStats, error)
}

// JobMatch is the backend response to an uploaded job description:
// the extracted text plus the resumes it already scored against it.
type JobMatch struct {
	JobDescription  string                    `json:"job_description"`
	MatchingResumes []models.MatchedCandidate `json:"matching_resumes"`
}

// RequestError is a non-2xx answer from the backend, carrying the
// human-readable detail field when the backend provided one.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("analyzer returned %d: %s", e.StatusCode, e.Detail)
}

type httpClient struct {
	baseURL string
	httpDo  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		baseURL: baseURL,
		httpDo: &http.Client{
			Timeout: timeout,
		},
	}
}

type listResumesResponse struct {
	Resumes []models.ResumeRecord `json:"resumes"`
}

type uploadResponse struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
}

type summarizeRequest struct {
	FileID string `json:"file_id"`
	Model  string `json:"model"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	FileID  string `json:"file_id"`
}

type compareRequest struct {
	ResumeIDs []string `json:"resume_ids"`
}

type compareResponse struct {
	Comparison string `json:"comparison"`
}

type questionsResponse struct {
	Questions json.RawMessage `json:"questions"`
}

type jobDescriptionRequest struct {
	JobDescription string   `json:"job_description"`
	ResumeIDs      []string `json:"resume_ids"`
}

type gapsResponse struct {
	GapAnalysis string `json:"gap_analysis"`
}

type rankResponse struct {
	Ranking string `json:"ranking"`
}

type feedbackRequest struct {
	ResumeID     string `json:"resume_id"`
	IsPositive   bool   `json:"is_positive"`
	FeedbackText string `json:"feedback_text,omitempty"`
}

type searchResponse struct {
	Results []models.ResumeRecord `json:"results"`
}

// ListResumes implements Client.
func (c *httpClient) ListResumes(ctx context.Context) ([]models.ResumeRecord, error) {
	var out listResumesResponse
	if err := c.getJSON(ctx, "/resumes", &out); err != nil {
		return nil, err
	}
	return out.Resumes, nil
}

// UploadResume implements Client.
func (c *httpClient) UploadResume(ctx context.Context, filename string, data []byte) (string, error) {
	var out uploadResponse
	if err := c.postFile(ctx, "/upload", filename, data, &out); err != nil {
		return "", err
	}
	return out.FileID, nil
}

// Summarize implements Client.
func (c *httpClient) Summarize(ctx context.Context, fileID string, model string) (string, error) {
	var out summarizeResponse
	if err := c.postJSON(ctx, "/summarize", summarizeRequest{FileID: fileID, Model: model}, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// CompareResumes implements Client.
func (c *httpClient) CompareResumes(ctx context.Context, resumeIDs []string) (string, error) {
	var out compareResponse
	if err := c.postJSON(ctx, "/compare", compareRequest{ResumeIDs: resumeIDs}, &out); err != nil {
		return "", err
	}
	return out.Comparison, nil
}

// GenerateQuestions implements Client. The backend is not consistent about
// the shape of the questions field, so the raw payload goes through
// ParseQuestions and the detected shape is reported to the caller.
func (c *httpClient) GenerateQuestions(ctx context.Context, resumeID string) ([]string, QuestionShape, error) {
	var out questionsResponse
	if err := c.getJSON(ctx, "/generate-questions/"+url.PathEscape(resumeID), &out); err != nil {
		return nil, ShapeUnknown, err
	}
	return ParseQuestions(out.Questions)
}

// IdentifyGaps implements Client.
func (c *httpClient) IdentifyGaps(ctx context.Context, jobDescription string, resumeIDs []string) (string, error) {
	var out gapsResponse
	req := jobDescriptionRequest{JobDescription: jobDescription, ResumeIDs: resumeIDs}
	if err := c.postJSON(ctx, "/identify-gaps", req, &out); err != nil {
		return "", err
	}
	return out.GapAnalysis, nil
}

// RankCandidates implements Client.
func (c *httpClient) RankCandidates(ctx context.Context, jobDescription string, resumeIDs []string) (string, error) {
	var out rankResponse
	req := jobDescriptionRequest{JobDescription: jobDescription, ResumeIDs: resumeIDs}
	if err := c.postJSON(ctx, "/rank-candidates", req, &out); err != nil {
		return "", err
	}
	return out.Ranking, nil
}

// UploadJobDescription implements Client.
func (c *httpClient) UploadJobDescription(ctx context.Context, filename string, data []byte) (*JobMatch, error) {
	var out JobMatch
	if err := c.postFile(ctx, "/upload-job-description", filename, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DetectFakeResume implements Client.
func (c *httpClient) DetectFakeResume(ctx context.Context, filename string, data []byte) (*models.DetectionResult, error) {
	var out models.DetectionResult
	if err := c.postFile(ctx, "/detect-fake-resume", filename, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendFeedback implements Client.
func (c *httpClient) SendFeedback(ctx context.Context, resumeID string, isPositive bool, feedbackText string) error {
	req := feedbackRequest{ResumeID: resumeID, IsPositive: isPositive, FeedbackText: feedbackText}
	return c.postJSON(ctx, "/feedback", req, nil)
}

// SearchResumes implements Client.
func (c *httpClient) SearchResumes(ctx context.Context, query string, nResults int) ([]models.ResumeRecord, error) {
	values := url.Values{}
	values.Set("query", query)
	if nResults > 0 {
		values.Set("n_results", strconv.Itoa(nResults))
	}
	var out searchResponse
	if err := c.postForm(ctx, "/search-resumes", values, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// FeedbackStats implements Client.
func (c *httpClient) FeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	var out models.FeedbackStats
	if err := c.getJSON(ctx, "/feedback-stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out)
}

func (c *httpClient) postJSON(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *httpClient) postForm(ctx context.Context, path string, values url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader([]byte(values.Encode())))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// postFile sends data as a multipart form with exactly one file field
// named "file", matching what every backend upload endpoint expects.
func (c *httpClient) postFile(ctx context.Context, path string, filename string, data []byte, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *httpClient) do(req *http.Request, out any) error {
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return fmt.Errorf("analyzer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode analyzer response: %w", err)
	}
	return nil
}

// decodeError extracts the backend's detail field when present, otherwise
// falls back to a generic message for the given status.
func decodeError(resp *http.Response) error {
	detail := fmt.Sprintf("request failed with status %d", resp.StatusCode)

	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != nil {
		switch d := body.Detail.(type) {
		case string:
			detail = d
		default:
			detail = fmt.Sprintf("%v", d)
		}
	}

	return &RequestError{StatusCode: resp.StatusCode, Detail: detail}
}
