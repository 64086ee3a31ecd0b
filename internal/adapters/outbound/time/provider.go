package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider implements domain.CurrentTimeProvider with the wall clock in UTC.
type CurrentTimeProvider struct{}

// Now returns the current time in UTC.
func (CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider registers the CurrentTimeProvider.
type InitCurrentTimeProvider struct{}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
