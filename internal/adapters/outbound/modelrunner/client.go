// Package modelrunner implements the capability providers on top of a local
// Docker Model Runner, which serves an OpenAI-compatible chat-completions
// endpoint (llama.cpp) next to its model management API.
//
// Model pulls are the download phase of a session: the JSON-lines progress
// stream of /models/create is forwarded as byte-level download progress.
package modelrunner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DRMAPIClient is a thin client for the Docker Model Runner API.
type DRMAPIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewDRMAPIClient creates a new client
func NewDRMAPIClient(baseURL string, apiKey string, httpClient *http.Client) DRMAPIClient {
	return DRMAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// PullCallback is called for each progress line of a model pull
type PullCallback func(progress PullProgress) error

// Chat sends a non-streaming request
func (c DRMAPIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/engines/v1/chat/completions", req)
	if err != nil {
		return nil, err
	}

	var out ChatResponse
	if err := c.doJSON(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListModels returns the models available locally.
func (c DRMAPIClient) ListModels(ctx context.Context) ([]Model, error) {
	httpReq, err := c.newRequest(ctx, http.MethodGet, "/models", nil)
	if err != nil {
		return nil, err
	}

	var out []Model
	if err := c.doJSON(httpReq, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PullModel downloads a model, calling onProgress for each progress line.
// A line of type "error" ends the pull with an error.
func (c DRMAPIClient) PullModel(ctx context.Context, model string, onProgress PullCallback) error {
	if model == "" {
		return errors.New("model is required")
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/models/create", PullRequest{From: model})
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(b))
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var progress PullProgress
		if err := json.Unmarshal([]byte(line), &progress); err != nil {
			continue // Skip malformed lines
		}

		if progress.Type == PullProgressType_Error {
			return fmt.Errorf("pull %s: %s", model, progress.Message)
		}
		if err := onProgress(progress); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// Unload evicts the given models from the inference engine memory.
func (c DRMAPIClient) Unload(ctx context.Context, models ...string) error {
	httpReq, err := c.newRequest(ctx, http.MethodPost, "/engines/unload", UnloadRequest{Models: models})
	if err != nil {
		return err
	}
	return c.doJSON(httpReq, nil)
}

func (c DRMAPIClient) doJSON(httpReq *http.Request, out any) error {
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c DRMAPIClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
