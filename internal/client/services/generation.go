package services

import (
	"context"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/validate"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

// UserSource yields the id of the signed-in user for payloads that carry it.
type UserSource interface {
	UserID() (string, error)
}

// GenerationService runs the AI tools. Results are not cached.
type GenerationService struct {
	client client.Client
	status *Status
	log    logging.Logger
	users  UserSource
}

func NewGenerationService(c client.Client, st *Status, log logging.Logger, users UserSource) *GenerationService {
	return &GenerationService{client: c, status: st, log: log, users: users}
}

// AnalyzeJob extracts requirements from a job description. The user id is
// attached when someone is signed in.
func (s *GenerationService) AnalyzeJob(ctx context.Context, jobDescription string) (models.JobAnalysisResponse, error) {
	p := models.JobAnalysisPayload{JobDescription: jobDescription}
	if id, err := s.users.UserID(); err == nil {
		p.UserID = id
	}
	if err := validate.Struct(p); err != nil {
		return models.JobAnalysisResponse{}, err
	}
	return tracked(s.status, func() (models.JobAnalysisResponse, error) {
		return s.client.AnalyzeJob(ctx, p)
	})
}

func (s *GenerationService) Tailor(ctx context.Context, resumeText, jobDescription string, opts models.TailorOptions) (models.TailorResponse, error) {
	id, err := s.requireUser()
	if err != nil {
		return models.TailorResponse{}, err
	}
	p := models.TailorRequestPayload{UserID: id, ResumeText: resumeText, JobDescription: jobDescription, Options: opts}
	if err := validate.Struct(p); err != nil {
		return models.TailorResponse{}, err
	}
	return tracked(s.status, func() (models.TailorResponse, error) {
		resp, err := s.client.TailorResume(ctx, p)
		if err == nil {
			s.log.Info(ctx, "resume tailored", "usage_id", resp.UsageID)
		}
		return resp, err
	})
}

func (s *GenerationService) CoverLetter(ctx context.Context, resumeText, jobDescription, companyName, roleTitle string) (models.CoverLetterResponse, error) {
	id, err := s.requireUser()
	if err != nil {
		return models.CoverLetterResponse{}, err
	}
	p := models.CoverLetterPayload{
		UserID:         id,
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		CompanyName:    companyName,
		RoleTitle:      roleTitle,
	}
	if err := validate.Struct(p); err != nil {
		return models.CoverLetterResponse{}, err
	}
	return tracked(s.status, func() (models.CoverLetterResponse, error) {
		return s.client.GenerateCoverLetter(ctx, p)
	})
}

func (s *GenerationService) StarStories(ctx context.Context, resumeText, jobDescription string, count int) (models.StarStoryResponse, error) {
	id, err := s.requireUser()
	if err != nil {
		return models.StarStoryResponse{}, err
	}
	p := models.StarStoryPayload{UserID: id, ResumeText: resumeText, JobDescription: jobDescription, Count: count}
	if err := validate.Struct(p); err != nil {
		return models.StarStoryResponse{}, err
	}
	return tracked(s.status, func() (models.StarStoryResponse, error) {
		return s.client.GenerateStarStories(ctx, p)
	})
}

// requireUser reports a missing session on the shared status like a failed
// call.
func (s *GenerationService) requireUser() (string, error) {
	id, err := s.users.UserID()
	if err != nil {
		_ = s.status.track(func() error { return err })
	}
	return id, err
}
