package services

import (
	"context"
	"slices"
	"sync"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/validate"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

func applicationID(a models.JobApplication) string { return a.ID }

// ApplicationService caches the job application tracker: the list and the
// application currently opened with Get.
type ApplicationService struct {
	client client.Client
	status *Status
	log    logging.Logger

	mu           sync.RWMutex
	applications []models.JobApplication
	current      *models.JobApplication
}

func NewApplicationService(c client.Client, st *Status, log logging.Logger) *ApplicationService {
	return &ApplicationService{client: c, status: st, log: log}
}

func (s *ApplicationService) Applications() []models.JobApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.applications)
}

// Current returns a copy of the opened application, or nil.
func (s *ApplicationService) Current() *models.JobApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	a := *s.current
	a.FollowUps = slices.Clone(a.FollowUps)
	return &a
}

// Filter returns the cached applications in the given status; an empty
// status returns all of them.
func (s *ApplicationService) Filter(status models.ApplicationStatus) []models.JobApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if status == "" {
		return slices.Clone(s.applications)
	}
	var out []models.JobApplication
	for _, a := range s.applications {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// Counts tallies the cached applications per status.
func (s *ApplicationService) Counts() map[models.ApplicationStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[models.ApplicationStatus]int, len(models.ApplicationStatuses))
	for _, a := range s.applications {
		out[a.Status]++
	}
	return out
}

func (s *ApplicationService) Load(ctx context.Context) ([]models.JobApplication, error) {
	return tracked(s.status, func() ([]models.JobApplication, error) {
		list, err := s.client.GetApplications(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.applications = slices.Clone(list)
		s.mu.Unlock()
		return list, nil
	})
}

// Get opens an application. Follow-ups added afterwards are prepended to it.
func (s *ApplicationService) Get(ctx context.Context, id string) (models.JobApplication, error) {
	if err := validate.Required("application_id", id); err != nil {
		return models.JobApplication{}, err
	}
	return tracked(s.status, func() (models.JobApplication, error) {
		a, err := s.client.GetApplication(ctx, id)
		if err != nil {
			return models.JobApplication{}, err
		}
		s.mu.Lock()
		cur := a
		cur.FollowUps = slices.Clone(a.FollowUps)
		s.current = &cur
		s.mu.Unlock()
		return a, nil
	})
}

func (s *ApplicationService) Create(ctx context.Context, p models.CreateApplicationPayload) (models.JobApplication, error) {
	if err := validate.Struct(p); err != nil {
		return models.JobApplication{}, err
	}
	return tracked(s.status, func() (models.JobApplication, error) {
		a, err := s.client.CreateApplication(ctx, p)
		if err != nil {
			return models.JobApplication{}, err
		}
		s.mu.Lock()
		s.applications = append(slices.Clone(s.applications), a)
		s.mu.Unlock()
		s.log.Info(ctx, "application created", "application_id", a.ID)
		return a, nil
	})
}

func (s *ApplicationService) Update(ctx context.Context, id string, p models.UpdateApplicationPayload) (models.JobApplication, error) {
	if err := validate.Required("application_id", id); err != nil {
		return models.JobApplication{}, err
	}
	if err := validate.Struct(p); err != nil {
		return models.JobApplication{}, err
	}
	return tracked(s.status, func() (models.JobApplication, error) {
		a, err := s.client.UpdateApplication(ctx, id, p)
		if err != nil {
			return models.JobApplication{}, err
		}
		s.mu.Lock()
		s.applications = replaceByID(s.applications, a, applicationID)
		if s.current != nil && s.current.ID == a.ID {
			cur := a
			cur.FollowUps = slices.Clone(a.FollowUps)
			s.current = &cur
		}
		s.mu.Unlock()
		return a, nil
	})
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	if err := validate.Required("application_id", id); err != nil {
		return err
	}
	return s.status.track(func() error {
		if err := s.client.DeleteApplication(ctx, id); err != nil {
			return err
		}
		s.mu.Lock()
		s.applications = removeByID(s.applications, id, applicationID)
		if s.current != nil && s.current.ID == id {
			s.current = nil
		}
		s.mu.Unlock()
		s.log.Info(ctx, "application deleted", "application_id", id)
		return nil
	})
}

// AddFollowUp records a follow-up. The parent's follow_up_count is not
// touched; Load or Get refreshes it.
func (s *ApplicationService) AddFollowUp(ctx context.Context, applicationID string, p models.AddFollowUpPayload) (models.FollowUp, error) {
	if err := validate.Required("application_id", applicationID); err != nil {
		return models.FollowUp{}, err
	}
	if err := validate.Struct(p); err != nil {
		return models.FollowUp{}, err
	}
	return tracked(s.status, func() (models.FollowUp, error) {
		f, err := s.client.AddFollowUp(ctx, applicationID, p)
		if err != nil {
			return models.FollowUp{}, err
		}
		s.mu.Lock()
		if s.current != nil && s.current.ID == applicationID {
			s.current.FollowUps = append([]models.FollowUp{f}, s.current.FollowUps...)
		}
		s.mu.Unlock()
		return f, nil
	})
}

func (s *ApplicationService) Clear() {
	s.mu.Lock()
	s.applications = nil
	s.current = nil
	s.mu.Unlock()
}
