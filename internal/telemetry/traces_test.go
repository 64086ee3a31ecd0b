package telemetry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	tests := map[string]struct {
		pattern  string
		path     string
		expected string
	}{
		"matched-route": {
			pattern:  "GET /api/v1/sessions/{id}",
			path:     "/api/v1/sessions/4a1d",
			expected: "GET /api/v1/sessions/{id}",
		},
		"unmatched-route": {
			path:     "/api/v1/unknown",
			expected: "GET /api/v1/unknown",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Pattern = tt.pattern
			assert.Equal(t, tt.expected, SpanNameFormatter("", req))
		})
	}
}

func TestRecordErrorAndStatus(t *testing.T) {
	span := &mockSpan{}
	err := errors.New("session is busy with another invocation")
	assert.True(t, RecordErrorAndStatus(span, err))
	assert.Equal(t, err.Error(), span.lastError)
	assert.Equal(t, err.Error(), span.statusMsg)
	assert.Equal(t, codes.Error, span.statusCode)

	span = &mockSpan{}
	assert.False(t, RecordErrorAndStatus(span, nil))
	assert.Equal(t, "OK", span.statusMsg)
	assert.Equal(t, codes.Ok, span.statusCode)
}

func TestStart(t *testing.T) {
	exporter := setupInMemoryTracer(t)

	_, span := Start(t.Context())
	AddProgressEvent(span, 50, 200)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "telemetry::TestStart", spans[0].Name)

	require.Len(t, spans[0].Events, 1)
	event := spans[0].Events[0]
	assert.Equal(t, "download.progress", event.Name)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int64("download.loaded", 50),
		attribute.Int64("download.total", 200),
	}, event.Attributes)
}

func TestHttpHandler(t *testing.T) {
	tests := map[string]struct {
		pattern       string
		path          string
		expectedSpans []string
	}{
		"api-route-traced": {
			pattern:       "POST /api/v1/sessions",
			path:          "/api/v1/sessions",
			expectedSpans: []string{"POST /api/v1/sessions"},
		},
		"health-probe-skipped": {
			pattern:       "POST /healthz",
			path:          "/healthz",
			expectedSpans: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := setupInMemoryTracer(t)

			mux := http.NewServeMux()
			mux.Handle(tt.pattern, HttpHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}), tt.pattern))

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))
			assert.Equal(t, http.StatusNoContent, rec.Code)

			var names []string
			for _, s := range exporter.GetSpans() {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.expectedSpans, names)
		})
	}
}

// setupInMemoryTracer routes spans of the package tracer and of the global
// provider to an in-memory exporter.
func setupInMemoryTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)

	previousTracer := tracer
	tracer = tp.Tracer("test-tracer")
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		tracer = previousTracer
	})
	return exporter
}

// --- Mocks ---

type mockSpan struct {
	trace.Span
	lastError  string
	statusCode codes.Code
	statusMsg  string
}

func (m *mockSpan) RecordError(err error, _ ...trace.EventOption) {
	m.lastError = err.Error()
}
func (m *mockSpan) SetStatus(code codes.Code, msg string) {
	m.statusCode = code
	m.statusMsg = msg
}
