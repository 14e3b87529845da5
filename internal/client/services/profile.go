package services

import (
	"context"
	"errors"
	"sync"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/validate"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

// ErrTwoFANotConfirmed is returned when the server rejects the code that
// should confirm a new authenticator without reporting an API error.
var ErrTwoFANotConfirmed = errors.New("2FA code was not accepted")

// SessionHolder is the part of the auth container the account pages touch:
// ending the session after deletion and taking over rotated tokens.
type SessionHolder interface {
	EndSession()
	UpdateTokens(tokens models.TokenPair)
}

// ProfileService covers the account pages: profile, usage, password,
// account deletion and 2FA management.
type ProfileService struct {
	client  client.Client
	status  *Status
	log     logging.Logger
	session SessionHolder

	mu      sync.RWMutex
	profile *models.ProfileData
	usage   *models.UsageResponse
	setup   *models.TwoFASetupResponse
}

func NewProfileService(c client.Client, st *Status, log logging.Logger, session SessionHolder) *ProfileService {
	return &ProfileService{client: c, status: st, log: log, session: session}
}

func (s *ProfileService) Profile() *models.ProfileData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

func (s *ProfileService) Usage() *models.UsageResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.usage == nil {
		return nil
	}
	u := *s.usage
	return &u
}

func (s *ProfileService) setProfile(p models.ProfileData) {
	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()
}

func (s *ProfileService) LoadProfile(ctx context.Context) (models.ProfileData, error) {
	return tracked(s.status, func() (models.ProfileData, error) {
		p, err := s.client.GetProfile(ctx)
		if err != nil {
			return models.ProfileData{}, err
		}
		s.setProfile(p)
		return p, nil
	})
}

func (s *ProfileService) UpdateProfile(ctx context.Context, p models.UpdateProfilePayload) (models.ProfileData, error) {
	if err := validate.Struct(p); err != nil {
		return models.ProfileData{}, err
	}
	return tracked(s.status, func() (models.ProfileData, error) {
		out, err := s.client.UpdateProfile(ctx, p)
		if err != nil {
			return models.ProfileData{}, err
		}
		s.setProfile(out)
		return out, nil
	})
}

func (s *ProfileService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (models.ChangePasswordResponse, error) {
	p := models.ChangePasswordPayload{OldPassword: oldPassword, NewPassword: newPassword}
	if err := validate.Struct(p); err != nil {
		return models.ChangePasswordResponse{}, err
	}
	return tracked(s.status, func() (models.ChangePasswordResponse, error) {
		return s.client.ChangePassword(ctx, p)
	})
}

// DeleteAccount deletes the account and ends the local session.
func (s *ProfileService) DeleteAccount(ctx context.Context, password string) (models.DeleteAccountResponse, error) {
	p := models.DeleteAccountPayload{Password: password}
	if err := validate.Struct(p); err != nil {
		return models.DeleteAccountResponse{}, err
	}
	return tracked(s.status, func() (models.DeleteAccountResponse, error) {
		resp, err := s.client.DeleteAccount(ctx, p)
		if err != nil {
			return models.DeleteAccountResponse{}, err
		}
		s.Clear()
		if s.session != nil {
			s.session.EndSession()
		}
		s.log.Info(ctx, "account deleted")
		return resp, nil
	})
}

// LoadUsage fetches quotas; userID may be empty to mean the caller.
func (s *ProfileService) LoadUsage(ctx context.Context, userID string) (models.UsageResponse, error) {
	return tracked(s.status, func() (models.UsageResponse, error) {
		u, err := s.client.GetUsage(ctx, userID)
		if err != nil {
			return models.UsageResponse{}, err
		}
		s.mu.Lock()
		s.usage = &u
		s.mu.Unlock()
		return u, nil
	})
}

// SetupTwoFA starts enrolling an authenticator. The secret and backup codes
// are kept until ConfirmTwoFASetup succeeds.
func (s *ProfileService) SetupTwoFA(ctx context.Context) (models.TwoFASetupResponse, error) {
	return tracked(s.status, func() (models.TwoFASetupResponse, error) {
		resp, err := s.client.SetupTwoFA(ctx)
		if err != nil {
			return models.TwoFASetupResponse{}, err
		}
		s.mu.Lock()
		s.setup = &resp
		s.mu.Unlock()
		return resp, nil
	})
}

// PendingSetup returns the enrollment started by SetupTwoFA, or nil.
func (s *ProfileService) PendingSetup() *models.TwoFASetupResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.setup == nil {
		return nil
	}
	c := *s.setup
	return &c
}

func (s *ProfileService) ConfirmTwoFASetup(ctx context.Context, code string) (models.TwoFAVerifyResponse, error) {
	if err := validate.OTP(code); err != nil {
		return models.TwoFAVerifyResponse{}, err
	}
	return tracked(s.status, func() (models.TwoFAVerifyResponse, error) {
		resp, err := s.client.VerifyTwoFASetup(ctx, models.TwoFAVerifyPayload{Code: code})
		if err != nil {
			return models.TwoFAVerifyResponse{}, err
		}
		if !resp.Verified {
			return resp, ErrTwoFANotConfirmed
		}
		if resp.AccessToken != "" && s.session != nil {
			s.session.UpdateTokens(models.TokenPair{
				AccessToken:  resp.AccessToken,
				RefreshToken: resp.RefreshToken,
				TokenType:    resp.TokenType,
			})
		}
		s.mu.Lock()
		s.setup = nil
		if s.profile != nil {
			s.profile.TwoFAEnabled = true
		}
		s.mu.Unlock()
		s.log.Info(ctx, "2FA enabled")
		return resp, nil
	})
}

func (s *ProfileService) DisableTwoFA(ctx context.Context) (models.TwoFADisableResponse, error) {
	return tracked(s.status, func() (models.TwoFADisableResponse, error) {
		resp, err := s.client.DisableTwoFA(ctx)
		if err != nil {
			return models.TwoFADisableResponse{}, err
		}
		if resp.Success {
			s.mu.Lock()
			if s.profile != nil {
				s.profile.TwoFAEnabled = false
			}
			s.mu.Unlock()
			s.log.Info(ctx, "2FA disabled")
		}
		return resp, nil
	})
}

func (s *ProfileService) Clear() {
	s.mu.Lock()
	s.profile = nil
	s.usage = nil
	s.setup = nil
	s.mu.Unlock()
}
