package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codaya2005/PolyLab-EECE455/internal/model"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) GetProfile(ctx context.Context) (*model.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *mockAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func profile() *model.UserProfile {
	return &model.UserProfile{Id: 42, Email: "student@example.com", Role: model.RoleStudent}
}

func TestRefresh(t *testing.T) {
	t.Run("PopulatesSession", func(t *testing.T) {
		apiMock := new(mockAPI)
		s := NewStore(apiMock)
		apiMock.On("GetProfile", mock.Anything).Return(profile(), nil)

		u, err := s.Refresh(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(42), u.Id)
		assert.Equal(t, "student@example.com", s.User().Email)
		assert.False(t, s.Loading())
	})

	t.Run("FailureClearsUser", func(t *testing.T) {
		apiMock := new(mockAPI)
		s := NewStore(apiMock)
		apiMock.On("GetProfile", mock.Anything).Return(profile(), nil).Once()
		apiMock.On("GetProfile", mock.Anything).Return(nil, assert.AnError).Once()

		_, err := s.Refresh(context.Background())
		require.NoError(t, err)
		require.NotNil(t, s.User())

		_, err = s.Refresh(context.Background())
		require.Error(t, err)
		assert.Nil(t, s.User())
		assert.False(t, s.Loading())
	})

	t.Run("ConcurrentCallsShareOneRequest", func(t *testing.T) {
		apiMock := new(mockAPI)
		s := NewStore(apiMock)

		var calls atomic.Int32
		started := make(chan struct{})
		release := make(chan struct{})
		apiMock.On("GetProfile", mock.Anything).Run(func(mock.Arguments) {
			calls.Add(1)
			close(started)
			<-release
		}).Return(profile(), nil)

		var wg sync.WaitGroup
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				u, err := s.Refresh(context.Background())
				assert.NoError(t, err)
				assert.NotNil(t, u)
			}()
		}

		<-started
		// Give the remaining callers time to join the in-flight refresh.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestLogout(t *testing.T) {
	t.Run("ClearsSession", func(t *testing.T) {
		apiMock := new(mockAPI)
		s := NewStore(apiMock)
		apiMock.On("GetProfile", mock.Anything).Return(profile(), nil)
		apiMock.On("Logout", mock.Anything).Return(nil)

		_, err := s.Refresh(context.Background())
		require.NoError(t, err)

		s.Logout(context.Background())
		assert.Nil(t, s.User())
	})

	t.Run("APIFailureStillClearsSession", func(t *testing.T) {
		apiMock := new(mockAPI)
		s := NewStore(apiMock)
		apiMock.On("GetProfile", mock.Anything).Return(profile(), nil)
		apiMock.On("Logout", mock.Anything).Return(assert.AnError)

		_, err := s.Refresh(context.Background())
		require.NoError(t, err)

		s.Logout(context.Background())
		assert.Nil(t, s.User())
	})
}

func TestMfaFlag(t *testing.T) {
	apiMock := new(mockAPI)
	s := NewStore(apiMock)

	// No user, nothing to flip.
	assert.False(t, s.MfaEnabled())
	s.SetMfaEnabled(true)
	assert.False(t, s.MfaEnabled())

	apiMock.On("GetProfile", mock.Anything).Return(profile(), nil)
	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	assert.False(t, s.MfaEnabled())
	s.SetMfaEnabled(true)
	assert.True(t, s.MfaEnabled())
	s.SetMfaEnabled(false)
	assert.False(t, s.MfaEnabled())
}

func TestUserReturnsCopy(t *testing.T) {
	apiMock := new(mockAPI)
	s := NewStore(apiMock)
	apiMock.On("GetProfile", mock.Anything).Return(profile(), nil)

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	u := s.User()
	u.TotpEnabled = true
	assert.False(t, s.MfaEnabled())
}
