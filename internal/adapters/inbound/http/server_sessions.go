package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (api AssistServer) ProbeCapability(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseCapabilityKind(r.PathValue("kind"))
	if err != nil {
		respondError(w, toError(err))
		return
	}

	query, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid query: %v", err)))
		return
	}

	options := map[string]string{}
	for name, values := range query {
		if len(values) > 0 {
			options[name] = values[0]
		}
	}

	status, err := api.ProbeCapabilityUseCase.Query(r.Context(), kind, options)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, AvailabilityResp{
		Kind:   kind.String(),
		Status: string(status),
	})
}

func (api AssistServer) AcquireSession(w http.ResponseWriter, r *http.Request) {
	var req AcquireSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	kind, err := domain.ParseCapabilityKind(req.Kind)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	snapshot, err := api.AcquireSessionUseCase.Execute(r.Context(), kind, req.Options)
	if err != nil {
		api.Logger.Printf("AcquireSession: failed to acquire %s session: %v", kind, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toSession(snapshot))
}

func (api AssistServer) GetSession(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	snapshot, err := api.GetSessionUseCase.Query(r.Context(), id)
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toSession(snapshot))
}

// WatchSession streams the session as server-sent events: one "progress"
// event per download progress event, then one "state" event.
func (api AssistServer) WatchSession(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, ErrorResp{Error: Error{Code: INTERNALERROR, Message: "streaming not supported"}})
		return
	}

	started := false
	err := api.WatchSessionUseCase.Stream(r.Context(), id, func(update domain.SessionUpdate) error {
		if !started {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.WriteHeader(http.StatusOK)
			started = true
		}

		var data any
		switch update.Type {
		case domain.SessionUpdateType_Progress:
			data = Progress{
				Loaded:  update.Progress.Loaded,
				Total:   update.Progress.Total,
				Percent: update.Progress.Percent(),
			}
		default:
			data = toSession(update.Snapshot)
		}

		dataBytes, err := json.Marshal(data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", update.Type, dataBytes); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err == nil {
		return
	}
	if !started {
		respondError(w, toError(err))
		return
	}
	api.Logger.Printf("WatchSession: stream of session %s stopped: %v", id, err)
}

func (api AssistServer) InvokeSession(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var req InvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	result, err := api.InvokeCapabilityUseCase.Execute(r.Context(), id, domain.InvocationRequest{
		Input:   req.Input,
		Context: req.Context,
	})
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toInvocationResult(result))
}

func (api AssistServer) ReleaseSession(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	if err := api.ReleaseSessionUseCase.Execute(r.Context(), id); err != nil {
		respondError(w, toError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
