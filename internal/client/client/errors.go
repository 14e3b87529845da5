package client

import (
	"errors"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenStore   = errors.New("token store unavailable")

	// ErrContractViolation is models.ErrContractViolation, re-exported so
	// callers of the client need not import models to match it.
	ErrContractViolation = models.ErrContractViolation
)
