package usecases

import (
	"context"
	"log"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// InvokeCapability defines the interface for the InvokeCapability use case.
type InvokeCapability interface {
	Execute(ctx context.Context, sessionID uuid.UUID, req domain.InvocationRequest) (domain.InvocationResult, error)
}

// InvokeCapabilityImpl is the implementation of the InvokeCapability use case.
type InvokeCapabilityImpl struct {
	registry     *capability.Registry
	dispatcher   *capability.Dispatcher
	invocations  domain.InvocationLogRepository
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	createUUID   func() uuid.UUID
}

// NewInvokeCapabilityImpl creates a new instance of InvokeCapabilityImpl.
func NewInvokeCapabilityImpl(
	registry *capability.Registry,
	dispatcher *capability.Dispatcher,
	invocations domain.InvocationLogRepository,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) InvokeCapabilityImpl {
	return InvokeCapabilityImpl{
		registry:     registry,
		dispatcher:   dispatcher,
		invocations:  invocations,
		timeProvider: timeProvider,
		logger:       logger,
		createUUID:   uuid.New,
	}
}

// Execute runs one invocation on a live session and records it in the invocation log.
func (ic InvokeCapabilityImpl) Execute(ctx context.Context, sessionID uuid.UUID, req domain.InvocationRequest) (domain.InvocationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	session, err := ic.registry.Lookup(sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}

	start := ic.timeProvider.Now()
	result, err := ic.dispatcher.Invoke(spanCtx, session, req)
	duration := ic.timeProvider.Now().Sub(start)

	outcome := invocationOutcome(err)
	RecordInvocation(spanCtx, session.Kind(), outcome, duration)
	ic.record(spanCtx, domain.InvocationRecord{
		ID:          ic.createUUID(),
		SessionID:   session.ID(),
		Kind:        session.Kind(),
		ConfigKey:   session.Config().Key(),
		InputChars:  utf8.RuneCountInString(req.Input),
		OutputChars: utf8.RuneCountInString(result.Text),
		Outcome:     outcome,
		ErrorName:   domain.ErrorName(err),
		Duration:    duration,
		CreatedAt:   start,
	})

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}
	return result, nil
}

// record stores the audit entry. A failed write never fails the invocation.
func (ic InvokeCapabilityImpl) record(ctx context.Context, record domain.InvocationRecord) {
	if ic.invocations == nil {
		return
	}
	// The caller may have gone away; the audit entry is still written.
	if err := ic.invocations.RecordInvocation(context.WithoutCancel(ctx), record); err != nil {
		ic.logger.Printf("InvokeCapability: failed to record invocation %s: %v", record.ID, err)
	}
}

// InitInvokeCapability initializes the InvokeCapability use case.
type InitInvokeCapability struct {
	Registry     *capability.Registry           `resolve:""`
	Dispatcher   *capability.Dispatcher         `resolve:""`
	Invocations  domain.InvocationLogRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider     `resolve:""`
	Logger       *log.Logger                    `resolve:""`
}

// Initialize registers the InvokeCapability use case in the dependency container.
func (i InitInvokeCapability) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[InvokeCapability](NewInvokeCapabilityImpl(
		i.Registry,
		i.Dispatcher,
		i.Invocations,
		i.TimeProvider,
		i.Logger,
	))
	return ctx, nil
}
