package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/usecases"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/rs/cors"
)

// AssistServer is the REST and SSE API of the capability session manager.
type AssistServer struct {
	Port                    int                       `config:"HTTP_PORT" default:"8080"`
	Logger                  *log.Logger               `resolve:""`
	ProbeCapabilityUseCase  usecases.ProbeCapability  `resolve:""`
	AcquireSessionUseCase   usecases.AcquireSession   `resolve:""`
	GetSessionUseCase       usecases.GetSession       `resolve:""`
	WatchSessionUseCase     usecases.WatchSession     `resolve:""`
	InvokeCapabilityUseCase usecases.InvokeCapability `resolve:""`
	ReleaseSessionUseCase   usecases.ReleaseSession   `resolve:""`
	TranslateTextUseCase    usecases.TranslateText    `resolve:""`
	ListInvocationsUseCase  usecases.ListInvocations  `resolve:""`
}

// Handler returns the routes of the API wrapped with telemetry and CORS.
func (api AssistServer) Handler() http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, telemetry.HttpHandler(h, pattern))
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	handle("GET /api/v1/capabilities/{kind}/availability", api.ProbeCapability)
	handle("POST /api/v1/sessions", api.AcquireSession)
	handle("GET /api/v1/sessions/{id}", withSessionID(api.GetSession))
	handle("GET /api/v1/sessions/{id}/events", withSessionID(api.WatchSession))
	handle("POST /api/v1/sessions/{id}/invoke", withSessionID(api.InvokeSession))
	handle("DELETE /api/v1/sessions/{id}", withSessionID(api.ReleaseSession))
	handle("POST /api/v1/translate", api.TranslateText)
	handle("GET /api/v1/invocations", api.ListInvocations)

	// CORS wraps everything so that preflight requests reach it.
	return cors.AllowAll().Handler(mux)
}

// withSessionID binds the {id} path parameter.
func withSessionID(next func(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id openapi_types.UUID
		err := runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
		if err != nil {
			respondError(w, badRequest(fmt.Sprintf("invalid format for parameter id: %v", err)))
			return
		}
		next(w, r, id)
	}
}

// Run starts the HTTP server and stops it when ctx is done.
func (api AssistServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AssistServer: listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AssistServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AssistServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks the health endpoint of the running server.
func (api AssistServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
