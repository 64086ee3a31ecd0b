package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                        = otel.Meter("usecases")
	CapabilityInvocations        metric.Int64Counter
	CapabilityInvocationDuration metric.Float64Histogram
)

func init() {
	var err error
	CapabilityInvocations, err = meter.Int64Counter(
		"capability_invocations_total",
		metric.WithDescription("Total capability invocations by kind and outcome"),
	)
	if err != nil {
		panic(err)
	}

	CapabilityInvocationDuration, err = meter.Float64Histogram(
		"capability_invocation_duration_seconds",
		metric.WithDescription("Duration of capability invocations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordInvocation records the outcome and the duration of one capability invocation.
func RecordInvocation(ctx context.Context, kind domain.CapabilityKind, outcome domain.InvocationOutcome, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind.String()),
		attribute.String("outcome", string(outcome)),
	)
	CapabilityInvocations.Add(ctx, 1, attrs)
	CapabilityInvocationDuration.Record(ctx, duration.Seconds(), attrs)
}

// invocationOutcome classifies the error of an invocation.
func invocationOutcome(err error) domain.InvocationOutcome {
	switch domain.ErrorName(err) {
	case "":
		return domain.InvocationOutcome_Success
	case "ProviderInvocationFailed", "Internal":
		return domain.InvocationOutcome_Failed
	default:
		return domain.InvocationOutcome_Rejected
	}
}
