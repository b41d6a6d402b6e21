package services

import (
	"context"
	"errors"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/models"
)

// fakeClient implements analyzer.Client with per-method hooks. Unset
// hooks fail loudly so a test only exercises the calls it expects.
type fakeClient struct {
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

var errUnexpectedCall = errors.New("unexpected analyzer call")

func (f *fakeClient) ListResumes(ctx context.Context) ([]models.ResumeRecord, error) {
	if f.listResumes == nil {
		return nil, errUnexpectedCall
	}
	return f.listResumes(ctx)
}

func (f *fakeClient) UploadResume(ctx context.Context, filename string, data []byte) (string, error) {
	if f.uploadResume == nil {
		return "", errUnexpectedCall
	}
	return f.uploadResume(ctx, filename, data)
}

func (f *fakeClient) Summarize(ctx context.Context, fileID, model string) (string, error) {
	if f.summarize == nil {
		return "", errUnexpectedCall
	}
	return f.summarize(ctx, fileID, model)
}

func (f *fakeClient) CompareResumes(ctx context.Context, resumeIDs []string) (string, error) {
	if f.compareResumes == nil {
		return "", errUnexpectedCall
	}
	return f.compareResumes(ctx, resumeIDs)
}

func (f *fakeClient) GenerateQuestions(ctx context.Context, resumeID string) ([]string, analyzer.QuestionShape, error) {
	if f.generateQuestions == nil {
		return nil, analyzer.ShapeUnknown, errUnexpectedCall
	}
	return f.generateQuestions(ctx, resumeID)
}

func (f *fakeClient) IdentifyGaps(ctx context.Context, jobDescription string, resumeIDs []string) (string, error) {
	if f.identifyGaps == nil {
		return "", errUnexpectedCall
	}
	return f.identifyGaps(ctx, jobDescription, resumeIDs)
}

func (f *fakeClient) RankCandidates(ctx context.Context, jobDescription string, resumeIDs []string) (string, error) {
	if f.rankCandidates == nil {
		return "", errUnexpectedCall
	}
	return f.rankCandidates(ctx, jobDescription, resumeIDs)
}

func (f *fakeClient) UploadJobDescription(ctx context.Context, filename string, data []byte) (*analyzer.JobMatch, error) {
	if f.uploadJobDescription == nil {
		return nil, errUnexpectedCall
	}
	return f.uploadJobDescription(ctx, filename, data)
}

func (f *fakeClient) DetectFakeResume(ctx context.Context, filename string, data []byte) (*models.DetectionResult, error) {
	if f.detectFakeResume == nil {
		return nil, errUnexpectedCall
	}
	return f.detectFakeResume(ctx, filename, data)
}

func (f *fakeClient) SendFeedback(ctx context.Context, resumeID string, isPositive bool, feedbackText string) error {
	if f.sendFeedback == nil {
		return errUnexpectedCall
	}
	return f.sendFeedback(ctx, resumeID, isPositive, feedbackText)
}

func (f *fakeClient) SearchResumes(ctx context.Context, query string, nResults int) ([]models.ResumeRecord, error) {
	if f.searchResumes == nil {
		return nil, errUnexpectedCall
	}
	return f.searchResumes(ctx, query, nResults)
}

func (f *fakeClient) FeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	if f.feedbackStats == nil {
		return nil, errUnexpectedCall
	}
	return f.feedbackStats(ctx)
}
