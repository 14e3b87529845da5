package client

import (
	"context"
	"net/http"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (c *HTTPClient) AnalyzeJob(ctx context.Context, p models.JobAnalysisPayload) (models.JobAnalysisResponse, error) {
	return call[models.JobAnalysisResponse](ctx, c, http.MethodPost, "/jobs/analyze", p)
}

func (c *HTTPClient) TailorResume(ctx context.Context, p models.TailorRequestPayload) (models.TailorResponse, error) {
	return call[models.TailorResponse](ctx, c, http.MethodPost, "/resumes/tailor", p)
}

func (c *HTTPClient) GenerateCoverLetter(ctx context.Context, p models.CoverLetterPayload) (models.CoverLetterResponse, error) {
	return call[models.CoverLetterResponse](ctx, c, http.MethodPost, "/cover-letter/generate", p)
}

func (c *HTTPClient) GenerateStarStories(ctx context.Context, p models.StarStoryPayload) (models.StarStoryResponse, error) {
	return call[models.StarStoryResponse](ctx, c, http.MethodPost, "/star/generate", p)
}
