// Package services holds the client-side state containers: the session
// state machine and one container per resource family. Containers share a
// single Status, talk to the API only through client.Client and are safe for
// concurrent use.
package services

import (
	"errors"
	"sync"
)

var (
	ErrNoPendingTwoFA        = errors.New("no pending 2FA verification")
	ErrNoPendingVerification = errors.New("no pending email verification")
	ErrEmailNotVerified      = errors.New("email not verified")
	ErrNotAuthenticated      = errors.New("not authenticated")
)

// Status is the loading flag and last error shared by every container.
// Loading is a counter so that overlapping actions keep it raised until the
// last one finishes.
type Status struct {
	mu       sync.RWMutex
	inflight int
	err      error
}

func NewStatus() *Status {
	return &Status{}
}

// track brackets an action: the error is cleared on entry, the loading
// counter held for the duration, and a failure recorded on exit.
func (s *Status) track(fn func() error) error {
	s.mu.Lock()
	s.inflight++
	s.err = nil
	s.mu.Unlock()

	err := fn()

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.err = err
	}
	s.mu.Unlock()
	return err
}

func (s *Status) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// Err returns the failure of the most recent action, or nil.
func (s *Status) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Message returns the text of Err, or "".
func (s *Status) Message() string {
	if err := s.Err(); err != nil {
		return err.Error()
	}
	return ""
}

func (s *Status) ClearError() {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()
}

func tracked[T any](s *Status, fn func() (T, error)) (T, error) {
	var out T
	err := s.track(func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}
