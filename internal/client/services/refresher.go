package services

import (
	"context"
	"time"
)

const refreshCallTimeout = 10 * time.Second

// needsRefresh reports whether the session token expires within window.
// Sessions whose token carries no exp claim are left alone.
func (a *AuthService) needsRefresh(window time.Duration) bool {
	s := a.Snapshot()
	if !s.IsAuthenticated() || s.ExpiresAt.IsZero() {
		return false
	}
	return !a.now().Add(window).Before(s.ExpiresAt)
}

// StartRefresher checks the session every interval and refreshes it when its
// token expires within window. A failed refresh ends the session. It returns
// when ctx is done.
func (a *AuthService) StartRefresher(ctx context.Context, interval, window time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.needsRefresh(window) {
				continue
			}
			rctx, cancel := context.WithTimeout(ctx, refreshCallTimeout)
			if err := a.refresh(rctx); err == nil {
				a.log.Info(ctx, "session refreshed in background")
			}
			cancel()

		case <-ctx.Done():
			return
		}
	}
}
