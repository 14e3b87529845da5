package services

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/validate"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/filex"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

func resumeID(r models.Resume) string { return r.ID }

// ResumeService caches the resume library of the signed-in user.
type ResumeService struct {
	client client.Client
	status *Status
	log    logging.Logger

	mu      sync.RWMutex
	resumes []models.Resume
}

func NewResumeService(c client.Client, st *Status, log logging.Logger) *ResumeService {
	return &ResumeService{client: c, status: st, log: log}
}

// Resumes returns a copy of the cached list.
func (s *ResumeService) Resumes() []models.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.resumes)
}

// Load replaces the cache with the server's list.
func (s *ResumeService) Load(ctx context.Context) ([]models.Resume, error) {
	return tracked(s.status, func() ([]models.Resume, error) {
		list, err := s.client.GetResumes(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.resumes = slices.Clone(list)
		s.mu.Unlock()
		return list, nil
	})
}

func (s *ResumeService) Get(ctx context.Context, id string) (models.Resume, error) {
	if err := validate.Required("resume_id", id); err != nil {
		return models.Resume{}, err
	}
	return tracked(s.status, func() (models.Resume, error) {
		return s.client.GetResume(ctx, id)
	})
}

// Create uploads a new resume. Without a file name one is derived from the
// title, e.g. "Senior Backend" becomes "Senior-Backend.txt".
func (s *ResumeService) Create(ctx context.Context, p models.CreateResumePayload) (models.Resume, error) {
	if p.FileName == "" {
		p.FileName = strings.Join(strings.Fields(p.Title), "-") + ".txt"
	}
	if err := validate.Struct(p); err != nil {
		return models.Resume{}, err
	}
	return tracked(s.status, func() (models.Resume, error) {
		r, err := s.client.CreateResume(ctx, p)
		if err != nil {
			return models.Resume{}, err
		}
		s.mu.Lock()
		s.resumes = append(slices.Clone(s.resumes), r)
		s.mu.Unlock()
		s.log.Info(ctx, "resume created", "resume_id", r.ID)
		return r, nil
	})
}

// Import reads a local resume file as text and creates a resume from it.
// The file is checked for type and size before it is read.
func (s *ResumeService) Import(ctx context.Context, path, title string, isDefault bool) (models.Resume, error) {
	name := filepath.Base(path)
	size, err := filex.Size(path)
	if err != nil {
		return models.Resume{}, err
	}
	if err := validate.ResumeFile(name, size); err != nil {
		return models.Resume{}, err
	}
	data, err := filex.ReadCapped(path, validate.MaxResumeFileSize)
	if err != nil {
		return models.Resume{}, err
	}
	if strings.TrimSpace(title) == "" {
		title = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return s.Create(ctx, models.CreateResumePayload{
		Title:     title,
		Content:   strings.ToValidUTF8(string(data), "�"),
		FileName:  name,
		IsDefault: isDefault,
	})
}

func (s *ResumeService) Update(ctx context.Context, id string, p models.UpdateResumePayload) (models.Resume, error) {
	if err := validate.Required("resume_id", id); err != nil {
		return models.Resume{}, err
	}
	if err := validate.Struct(p); err != nil {
		return models.Resume{}, err
	}
	return tracked(s.status, func() (models.Resume, error) {
		r, err := s.client.UpdateResume(ctx, id, p)
		if err != nil {
			return models.Resume{}, err
		}
		s.mu.Lock()
		s.resumes = replaceByID(s.resumes, r, resumeID)
		s.mu.Unlock()
		return r, nil
	})
}

func (s *ResumeService) Delete(ctx context.Context, id string) error {
	if err := validate.Required("resume_id", id); err != nil {
		return err
	}
	return s.status.track(func() error {
		if err := s.client.DeleteResume(ctx, id); err != nil {
			return err
		}
		s.mu.Lock()
		s.resumes = removeByID(s.resumes, id, resumeID)
		s.mu.Unlock()
		s.log.Info(ctx, "resume deleted", "resume_id", id)
		return nil
	})
}

// SetDefault marks one resume as the default and unmarks the others
// locally.
func (s *ResumeService) SetDefault(ctx context.Context, id string) (models.Resume, error) {
	if err := validate.Required("resume_id", id); err != nil {
		return models.Resume{}, err
	}
	return tracked(s.status, func() (models.Resume, error) {
		r, err := s.client.SetDefaultResume(ctx, id)
		if err != nil {
			return models.Resume{}, err
		}
		s.mu.Lock()
		list := replaceByID(s.resumes, r, resumeID)
		for i := range list {
			list[i].IsDefault = list[i].ID == r.ID
		}
		s.resumes = list
		s.mu.Unlock()
		return r, nil
	})
}

func (s *ResumeService) Duplicate(ctx context.Context, id, newTitle string) (models.Resume, error) {
	if err := validate.Required("resume_id", id); err != nil {
		return models.Resume{}, err
	}
	if err := validate.Struct(models.DuplicateResumePayload{NewTitle: newTitle}); err != nil {
		return models.Resume{}, err
	}
	return tracked(s.status, func() (models.Resume, error) {
		r, err := s.client.DuplicateResume(ctx, id, newTitle)
		if err != nil {
			return models.Resume{}, err
		}
		s.mu.Lock()
		s.resumes = append(slices.Clone(s.resumes), r)
		s.mu.Unlock()
		return r, nil
	})
}

// Clear drops the cache, e.g. on logout.
func (s *ResumeService) Clear() {
	s.mu.Lock()
	s.resumes = nil
	s.mu.Unlock()
}
