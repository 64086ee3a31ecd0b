package modelrunner

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeRunner is an in-process Docker Model Runner.
type fakeRunner struct {
	mu        sync.Mutex
	models    []Model
	listErr   bool
	pullLines []PullProgress
	// pullGate, when set, holds the pull response open until it is closed.
	pullGate  chan struct{}
	chatReply string
	chatErr   bool
	requests  []ChatRequest
	pulled    []string
	unloaded  []string
}

func newFakeRunnerServer(t *testing.T, runner *fakeRunner) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /models", func(w http.ResponseWriter, r *http.Request) {
		runner.mu.Lock()
		defer runner.mu.Unlock()
		if runner.listErr {
			http.Error(w, "model store unavailable", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(runner.models)
	})
	mux.HandleFunc("POST /models/create", func(w http.ResponseWriter, r *http.Request) {
		var req PullRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		runner.mu.Lock()
		runner.pulled = append(runner.pulled, req.From)
		lines := runner.pullLines
		gate := runner.pullGate
		runner.mu.Unlock()

		w.WriteHeader(http.StatusOK)
		flusher := w.(http.Flusher)
		for _, line := range lines {
			data, _ := json.Marshal(line)
			fmt.Fprintf(w, "%s\n", data) //nolint:errcheck
			flusher.Flush()
		}
		if gate != nil {
			select {
			case <-gate:
			case <-r.Context().Done():
			}
		}
	})
	mux.HandleFunc("POST /engines/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		runner.mu.Lock()
		defer runner.mu.Unlock()
		runner.requests = append(runner.requests, req)
		if runner.chatErr {
			http.Error(w, "engine crashed", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(ChatResponse{
			Model: req.Model,
			Choices: []Choice{
				{Message: Message{Role: "assistant", Content: runner.chatReply}},
			},
		})
	})
	mux.HandleFunc("POST /engines/unload", func(w http.ResponseWriter, r *http.Request) {
		var req UnloadRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		runner.mu.Lock()
		defer runner.mu.Unlock()
		runner.unloaded = append(runner.unloaded, req.Models...)
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func (f *fakeRunner) lastRequest() ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return ChatRequest{}
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeRunner) pulledModels() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.pulled...)
}

func (f *fakeRunner) unloadedModels() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.unloaded...)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
