package usecases

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReapIdleSessionsImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		idleTimeout   time.Duration
		elapsed       time.Duration
		expectedCount int
		expectedState domain.SessionState
		expectedErr   string
	}{
		"idle-session-released": {
			idleTimeout:   30 * time.Minute,
			elapsed:       45 * time.Minute,
			expectedCount: 1,
			expectedState: domain.SessionState_Destroyed,
			expectedErr:   "SessionReleased",
		},
		"recently-used-session-kept": {
			idleTimeout:   30 * time.Minute,
			elapsed:       10 * time.Minute,
			expectedCount: 0,
			expectedState: domain.SessionState_Ready,
		},
		"reaping-disabled": {
			idleTimeout:   0,
			elapsed:       24 * time.Hour,
			expectedCount: 0,
			expectedState: domain.SessionState_Ready,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			provider := domain.NewMockCapabilityProvider(t)
			handle := domain.NewMockCapabilityHandle(t)
			provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
			provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
			handle.EXPECT().Release().Maybe()

			now := fixedTime
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().RunAndReturn(func() time.Time { return now }).Maybe()

			registry := capability.NewRegistry(
				domain.ProviderCatalogMap{domain.CapabilityKind_Writer: provider},
				timeProvider, nil, discardLogger(),
			)
			t.Cleanup(registry.Close)

			session, err := registry.GetOrCreateSession(context.Background(), domain.CapabilityKind_Writer, nil)
			require.NoError(t, err)

			now = fixedTime.Add(tt.elapsed)

			ris := NewReapIdleSessionsImpl(registry, tt.idleTimeout)
			count, err := ris.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
			assert.Equal(t, tt.expectedState, session.State())

			_, err = registry.Lookup(session.ID())
			assert.Equal(t, tt.expectedErr, domain.ErrorName(err))
		})
	}
}

func TestInitReapIdleSessions_ReapingDisabledByDefault(t *testing.T) {
	if _, set := os.LookupEnv("SESSION_IDLE_TIMEOUT"); set {
		t.Skip("SESSION_IDLE_TIMEOUT is set in the environment")
	}

	var iris InitReapIdleSessions
	require.NoError(t, config.LoadStruct(context.Background(), &iris))
	assert.Zero(t, iris.IdleTimeout)
}

func TestInitReapIdleSessions_Initialize(t *testing.T) {
	iris := InitReapIdleSessions{Registry: &capability.Registry{}, IdleTimeout: time.Minute}

	ctx, err := iris.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ReapIdleSessions]()
	require.NoError(t, err)
	assert.NotNil(t, registered)
}
