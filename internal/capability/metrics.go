package capability

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter              = otel.Meter("capability")
	SessionTransitions metric.Int64Counter
	DownloadedBytes    metric.Int64Counter
)

func init() {
	var err error
	SessionTransitions, err = meter.Int64Counter(
		"capability_session_transitions_total",
		metric.WithDescription("Total state transitions of capability sessions"),
	)
	if err != nil {
		panic(err)
	}

	DownloadedBytes, err = meter.Int64Counter(
		"capability_download_bytes",
		metric.WithDescription("Bytes downloaded by capability sessions before becoming ready"),
		metric.WithUnit("By"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordSessionTransition records one session state change and, at the end
// of a download phase, the downloaded bytes.
func RecordSessionTransition(ctx context.Context, t Transition) {
	kind := attribute.String("kind", t.Snapshot.Kind.String())
	SessionTransitions.Add(ctx, 1, metric.WithAttributes(
		kind,
		attribute.String("from", string(t.From)),
		attribute.String("to", string(t.To)),
	))
	if t.From == domain.SessionState_Downloading && t.To == domain.SessionState_Ready && t.Snapshot.Progress.Loaded > 0 {
		DownloadedBytes.Add(ctx, t.Snapshot.Progress.Loaded, metric.WithAttributes(kind))
	}
}
