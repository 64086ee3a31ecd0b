package modelrunner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
)

const unloadTimeout = 5 * time.Second

// modelHandle is one live session of a model. It implements domain.CapabilityHandle.
type modelHandle struct {
	client   DRMAPIClient
	model    string
	cfg      domain.CapabilityConfig
	logger   *log.Logger
	progress chan domain.DownloadProgress
	ready    chan struct{}
	err      error
	lifetime context.Context
	cancel   context.CancelFunc
	release  sync.Once
}

func newModelHandle(client DRMAPIClient, model string, cfg domain.CapabilityConfig, logger *log.Logger) *modelHandle {
	lifetime, cancel := context.WithCancel(context.Background())
	return &modelHandle{
		client:   client,
		model:    model,
		cfg:      cfg,
		logger:   logger,
		progress: make(chan domain.DownloadProgress, 16),
		ready:    make(chan struct{}),
		lifetime: lifetime,
		cancel:   cancel,
	}
}

// DownloadProgress implements domain.CapabilityHandle.
func (h *modelHandle) DownloadProgress() <-chan domain.DownloadProgress {
	return h.progress
}

// Ready implements domain.CapabilityHandle.
func (h *modelHandle) Ready(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.ready:
		return h.err
	}
}

// pull downloads the model. Pull lines are reported against the first total
// announced by the model runner; lines for a different total are skipped.
func (h *modelHandle) pull() {
	var total, loaded int64
	err := h.client.PullModel(h.lifetime, h.model, func(p PullProgress) error {
		if p.Type != PullProgressType_Progress || p.Total <= 0 {
			return nil
		}
		if total == 0 {
			total = p.Total
		}
		if p.Total != total || p.Pulled < loaded {
			return nil
		}
		loaded = min(p.Pulled, total)
		h.send(domain.DownloadProgress{Loaded: loaded, Total: total})
		return nil
	})
	if err == nil && total > 0 && loaded < total {
		h.send(domain.DownloadProgress{Loaded: total, Total: total})
	}

	switch {
	case err == nil:
		h.logger.Printf("ModelRunner: model %s pulled", h.model)
	case h.lifetime.Err() != nil:
		err = h.lifetime.Err()
	default:
		h.logger.Printf("ModelRunner: failed to pull model %s: %v", h.model, err)
		err = domain.NewProviderInvocationFailedErr("NetworkError", err.Error(), err)
	}
	h.finish(err)
}

func (h *modelHandle) send(p domain.DownloadProgress) {
	select {
	case h.progress <- p:
	case <-h.lifetime.Done():
	}
}

// finish closes the progress channel, then signals readiness.
func (h *modelHandle) finish(err error) {
	close(h.progress)
	h.err = err
	close(h.ready)
}

// Invoke implements domain.CapabilityHandle.
func (h *modelHandle) Invoke(ctx context.Context, req domain.InvocationRequest) (domain.InvocationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, err := buildPromptMessages(h.cfg, req)
	if err != nil {
		err = domain.NewProviderInvocationFailedErr("OperationError", err.Error(), err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.InvocationResult{}, err
	}

	resp, err := h.client.Chat(spanCtx, ChatRequest{
		Model:       h.model,
		Messages:    messages,
		Temperature: temperatureFor(h.cfg.Kind()),
	})
	if err != nil {
		if ctx.Err() != nil {
			return domain.InvocationResult{}, ctx.Err()
		}
		err = domain.NewProviderInvocationFailedErr("NetworkError", err.Error(), err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.InvocationResult{}, err
	}
	if len(resp.Choices) == 0 {
		err := domain.NewProviderInvocationFailedErr("OperationError", "no choices in response", nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.InvocationResult{}, err
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if h.cfg.Kind() != domain.CapabilityKind_LanguageDetector {
		return domain.InvocationResult{Kind: h.cfg.Kind(), Text: content}, nil
	}

	detections, err := parseDetections(content)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}
	return domain.InvocationResult{Kind: h.cfg.Kind(), Detections: detections}, nil
}

// Release implements domain.CapabilityHandle. It stops a running pull and
// evicts the model from the inference engine.
func (h *modelHandle) Release() {
	h.release.Do(func() {
		h.cancel()

		ctx, cancel := context.WithTimeout(context.Background(), unloadTimeout)
		defer cancel()
		if err := h.client.Unload(ctx, h.model); err != nil {
			h.logger.Printf("ModelRunner: failed to unload model %s: %v", h.model, err)
		}
	})
}

// temperatureFor keeps deterministic kinds deterministic.
func temperatureFor(kind domain.CapabilityKind) *float64 {
	t := 0.7
	switch kind {
	case domain.CapabilityKind_Translator, domain.CapabilityKind_LanguageDetector:
		t = 0
	case domain.CapabilityKind_Summarizer:
		t = 0.3
	}
	return &t
}

// parseDetections reads the detector answer, a JSON array of candidates that
// may be wrapped in a markdown fence. Candidates with an invalid tag are dropped
// and an answer left with no candidate is a DataError.
func parseDetections(content string) ([]domain.LanguageDetection, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end < start {
		return nil, domain.NewProviderInvocationFailedErr("DataError", fmt.Sprintf("unexpected detector answer %q", content), nil)
	}

	var candidates []domain.LanguageDetection
	if err := json.Unmarshal([]byte(content[start:end+1]), &candidates); err != nil {
		return nil, domain.NewProviderInvocationFailedErr("DataError", err.Error(), err)
	}

	detections := make([]domain.LanguageDetection, 0, len(candidates))
	for _, c := range candidates {
		tag, err := domain.CanonicalLanguageTag(c.LanguageTag)
		if err != nil {
			continue
		}
		detections = append(detections, domain.LanguageDetection{
			LanguageTag: tag,
			Confidence:  min(max(c.Confidence, 0), 1),
		})
	}
	if len(detections) == 0 {
		return nil, domain.NewProviderInvocationFailedErr("DataError", fmt.Sprintf("detector answered no usable language tags: %q", content), nil)
	}
	domain.SortDetections(detections)
	return detections, nil
}
