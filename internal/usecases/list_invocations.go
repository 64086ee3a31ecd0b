package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListInvocations defines the interface for the ListInvocations use case.
type ListInvocations interface {
	Query(ctx context.Context, page int, pageSize int) ([]domain.InvocationRecord, bool, error)
}

// ListInvocationsImpl is the implementation of the ListInvocations use case.
type ListInvocationsImpl struct {
	invocations domain.InvocationLogRepository
}

// NewListInvocationsImpl creates a new instance of ListInvocationsImpl.
func NewListInvocationsImpl(invocations domain.InvocationLogRepository) ListInvocationsImpl {
	return ListInvocationsImpl{
		invocations: invocations,
	}
}

// Query retrieves a page of the invocation log, newest first.
func (li ListInvocationsImpl) Query(ctx context.Context, page int, pageSize int) ([]domain.InvocationRecord, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateListInvocationsParams(page, pageSize); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	records, hasMore, err := li.invocations.ListInvocations(spanCtx, page, pageSize)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	return records, hasMore, nil
}

func validateListInvocationsParams(page, pageSize int) error {
	if page < 1 {
		return domain.NewValidationErr("page must be at least 1")
	}
	if pageSize < 1 || pageSize > 100 {
		return domain.NewValidationErr("page_size must be between 1 and 100")
	}
	return nil
}

// InitListInvocations initializes the ListInvocations use case.
type InitListInvocations struct {
	Invocations domain.InvocationLogRepository `resolve:""`
}

// Initialize registers the ListInvocations use case in the dependency container.
func (i InitListInvocations) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListInvocations](NewListInvocationsImpl(i.Invocations))
	return ctx, nil
}
