package modelrunner

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"golang.org/x/text/language"
)

// CapabilityProvider implements domain.CapabilityProvider with one model of
// the model runner.
type CapabilityProvider struct {
	client DRMAPIClient
	kind   domain.CapabilityKind
	model  string
	// languages restricts the translator language pairs; empty allows any pair.
	languages []string
	logger    *log.Logger
}

// NewCapabilityProvider creates a provider serving kind with model.
func NewCapabilityProvider(client DRMAPIClient, kind domain.CapabilityKind, model string, languages []string, logger *log.Logger) CapabilityProvider {
	bases := make([]string, 0, len(languages))
	for _, l := range languages {
		if b := baseLanguage(l); b != "" && !slices.Contains(bases, b) {
			bases = append(bases, b)
		}
	}
	return CapabilityProvider{
		client:    client,
		kind:      kind,
		model:     model,
		languages: bases,
		logger:    logger,
	}
}

// Availability implements domain.CapabilityProvider.
func (p CapabilityProvider) Availability(ctx context.Context, cfg domain.CapabilityConfig) (domain.AvailabilityStatus, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !p.supports(cfg) {
		return domain.AvailabilityStatus_Unavailable, nil
	}

	present, err := p.modelPresent(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AvailabilityStatus_Unavailable, err
	}
	if present {
		return domain.AvailabilityStatus_Ready, nil
	}
	return domain.AvailabilityStatus_Downloadable, nil
}

// CreateHandle implements domain.CapabilityProvider. When the model is not
// stored locally the returned handle pulls it in the background.
func (p CapabilityProvider) CreateHandle(ctx context.Context, cfg domain.CapabilityConfig) (domain.CapabilityHandle, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !p.supports(cfg) {
		err := domain.NewUnavailableErr(cfg.Kind())
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	present, err := p.modelPresent(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	h := newModelHandle(p.client, p.model, cfg, p.logger)
	if present {
		h.finish(nil)
		return h, nil
	}

	p.logger.Printf("ModelRunner: pulling model %s for %s", p.model, cfg.Kind())
	go h.pull()
	return h, nil
}

// supports reports whether the model serves the configuration at all.
func (p CapabilityProvider) supports(cfg domain.CapabilityConfig) bool {
	if cfg.Kind() != p.kind {
		return false
	}
	if cfg.Kind() != domain.CapabilityKind_Translator || len(p.languages) == 0 {
		return true
	}
	source := baseLanguage(cfg.Value(domain.ConfigField_SourceLanguage))
	target := baseLanguage(cfg.Value(domain.ConfigField_TargetLanguage))
	return source != target &&
		slices.Contains(p.languages, source) &&
		slices.Contains(p.languages, target)
}

func (p CapabilityProvider) modelPresent(ctx context.Context) (bool, error) {
	models, err := p.client.ListModels(ctx)
	if err != nil {
		return false, domain.NewProviderInvocationFailedErr("NetworkError", fmt.Sprintf("failed to list models: %v", err), err)
	}
	return slices.ContainsFunc(models, func(m Model) bool {
		return m.Matches(p.model)
	}), nil
}

// baseLanguage returns the primary language subtag of tag.
func baseLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	base, _ := t.Base()
	return base.String()
}
