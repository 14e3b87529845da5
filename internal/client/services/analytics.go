package services

import (
	"context"
	"sync"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

type AnalyticsService struct {
	client client.Client
	status *Status
	log    logging.Logger

	mu        sync.RWMutex
	analytics *models.UserAnalytics
}

func NewAnalyticsService(c client.Client, st *Status, log logging.Logger) *AnalyticsService {
	return &AnalyticsService{client: c, status: st, log: log}
}

// Analytics returns the last loaded report, or nil.
func (s *AnalyticsService) Analytics() *models.UserAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.analytics == nil {
		return nil
	}
	a := *s.analytics
	return &a
}

func (s *AnalyticsService) Load(ctx context.Context) (models.UserAnalytics, error) {
	return tracked(s.status, func() (models.UserAnalytics, error) {
		a, err := s.client.GetAnalytics(ctx)
		if err != nil {
			return models.UserAnalytics{}, err
		}
		s.mu.Lock()
		s.analytics = &a
		s.mu.Unlock()
		return a, nil
	})
}

func (s *AnalyticsService) Clear() {
	s.mu.Lock()
	s.analytics = nil
	s.mu.Unlock()
}
