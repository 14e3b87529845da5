package client

import (
	"context"
	"net/http"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (c *HTTPClient) GetResumes(ctx context.Context) ([]models.Resume, error) {
	resp, err := call[models.GetResumesResponse](ctx, c, http.MethodGet, "/resumes", nil)
	return resp.Resumes, err
}

func (c *HTTPClient) GetResume(ctx context.Context, id string) (models.Resume, error) {
	resp, err := call[models.GetResumeResponse](ctx, c, http.MethodGet, resourcePath("/resumes", id), nil)
	return resp.Resume, err
}

// CreateResume returns the new resume built from the server acknowledgement
// and the submitted payload; the server does not echo the full record.
func (c *HTTPClient) CreateResume(ctx context.Context, p models.CreateResumePayload) (models.Resume, error) {
	resp, err := call[models.CreateResumeResponse](ctx, c, http.MethodPost, "/resumes", p)
	if err != nil {
		return models.Resume{}, err
	}
	return models.Resume{
		ID:        resp.ID,
		Title:     resp.Title,
		FileName:  resp.FileName,
		Content:   p.Content,
		Version:   resp.Version,
		Status:    models.ResumeActive,
		IsDefault: p.IsDefault,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.CreatedAt,
	}, nil
}

// UpdateResume has the same partial-echo contract as CreateResume. Fields
// absent from both the response and the payload are left zero.
func (c *HTTPClient) UpdateResume(ctx context.Context, id string, p models.UpdateResumePayload) (models.Resume, error) {
	resp, err := call[models.UpdateResumeResponse](ctx, c, http.MethodPut, resourcePath("/resumes", id), p)
	if err != nil {
		return models.Resume{}, err
	}
	r := models.Resume{
		ID:        resp.ID,
		Title:     resp.Title,
		Version:   resp.Version,
		Status:    models.ResumeActive,
		UpdatedAt: resp.UpdatedAt,
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.IsDefault != nil {
		r.IsDefault = *p.IsDefault
	}
	return r, nil
}

func (c *HTTPClient) DeleteResume(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath("/resumes", id), nil, nil, &models.AckResponse{})
}

// SetDefaultResume marks the resume as default and reads it back.
func (c *HTTPClient) SetDefaultResume(ctx context.Context, id string) (models.Resume, error) {
	if err := c.do(ctx, http.MethodPost, resourcePath("/resumes", id, "set-default"), nil, nil, &models.AckResponse{}); err != nil {
		return models.Resume{}, err
	}
	return c.GetResume(ctx, id)
}

// DuplicateResume copies the resume under a new title and reads the copy
// back.
func (c *HTTPClient) DuplicateResume(ctx context.Context, id, newTitle string) (models.Resume, error) {
	resp, err := call[models.DuplicateResumeResponse](ctx, c, http.MethodPost,
		resourcePath("/resumes", id, "duplicate"), models.DuplicateResumePayload{NewTitle: newTitle})
	if err != nil {
		return models.Resume{}, err
	}
	return c.GetResume(ctx, resp.ID)
}
