package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/codaya2005/PolyLab-EECE455/internal/logging"
	"github.com/codaya2005/PolyLab-EECE455/internal/model"
)

// API is the slice of the backend client the session store needs.
type API interface {
	GetProfile(ctx context.Context) (*model.UserProfile, error)
	Logout(ctx context.Context) error
}

// Store holds the authenticated user for the lifetime of the process. The
// user is replaced wholesale on each refresh and cleared on logout.
type Store struct {
	api API

	mu      sync.Mutex
	user    *model.UserProfile
	loading bool

	refreshGroup singleflight.Group
}

func NewStore(api API) *Store {
	return &Store{api: api}
}

// User returns the current profile, or nil when unauthenticated.
func (s *Store) User() *model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Loading reports whether a refresh is outstanding.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) MfaEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.TotpEnabled
}

// SetMfaEnabled is the one write other components are allowed: the MFA
// controller flips it after a confirmed verify or disable.
func (s *Store) SetMfaEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.user.TotpEnabled = enabled
	}
}

// Refresh fetches the profile and replaces the session. Concurrent callers
// share a single in-flight request. A failed refresh clears the user so the
// caller continues unauthenticated.
func (s *Store) Refresh(ctx context.Context) (*model.UserProfile, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	result, err, _ := s.refreshGroup.Do("refresh", func() (any, error) {
		return s.api.GetProfile(ctx)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.user = nil
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "session refresh failed", zap.Error(err))
		}
		return nil, err
	}

	profile := result.(*model.UserProfile)
	s.user = profile
	u := *profile
	return &u, nil
}

// Logout is best-effort: the API call may fail but the session is cleared
// regardless.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "logout request failed", zap.Error(err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
