package client

import (
	"context"
	"net/http"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (c *HTTPClient) GetApplications(ctx context.Context) ([]models.JobApplication, error) {
	resp, err := call[models.GetApplicationsResponse](ctx, c, http.MethodGet, "/applications", nil)
	return resp.Applications, err
}

func (c *HTTPClient) GetApplication(ctx context.Context, id string) (models.JobApplication, error) {
	resp, err := call[models.GetApplicationResponse](ctx, c, http.MethodGet, resourcePath("/applications", id), nil)
	return resp.Application, err
}

// CreateApplication builds the returned record from the acknowledgement and
// the payload.
func (c *HTTPClient) CreateApplication(ctx context.Context, p models.CreateApplicationPayload) (models.JobApplication, error) {
	resp, err := call[models.CreateApplicationResponse](ctx, c, http.MethodPost, "/applications", p)
	if err != nil {
		return models.JobApplication{}, err
	}
	return models.JobApplication{
		ID:             resp.ID,
		JobTitle:       resp.JobTitle,
		CompanyName:    resp.CompanyName,
		Status:         resp.Status,
		JobURL:         p.JobURL,
		JobDescription: p.JobDescription,
		Notes:          p.Notes,
		SalaryRange:    p.SalaryRange,
		Location:       p.Location,
		JobType:        p.JobType,
		Tags:           p.Tags,
		AppliedDate:    p.AppliedDate,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.CreatedAt,
	}, nil
}

// UpdateApplication applies the change and reads the application back.
func (c *HTTPClient) UpdateApplication(ctx context.Context, id string, p models.UpdateApplicationPayload) (models.JobApplication, error) {
	if err := c.do(ctx, http.MethodPut, resourcePath("/applications", id), nil, p, &models.AckResponse{}); err != nil {
		return models.JobApplication{}, err
	}
	return c.GetApplication(ctx, id)
}

func (c *HTTPClient) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath("/applications", id), nil, nil, &models.AckResponse{})
}

func (c *HTTPClient) AddFollowUp(ctx context.Context, applicationID string, p models.AddFollowUpPayload) (models.FollowUp, error) {
	resp, err := call[models.AddFollowUpResponse](ctx, c, http.MethodPost,
		resourcePath("/applications", applicationID, "follow-ups"), p)
	if err != nil {
		return models.FollowUp{}, err
	}
	status := p.Status
	if status == "" {
		status = models.FollowUpPending
	}
	return models.FollowUp{
		ID:            resp.ID,
		ApplicationID: resp.ApplicationID,
		FollowUpType:  resp.FollowUpType,
		Note:          p.Note,
		Status:        status,
		CreatedAt:     resp.CreatedAt,
	}, nil
}
