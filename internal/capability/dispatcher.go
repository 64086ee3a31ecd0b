package capability

import (
	"context"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"golang.org/x/text/language"
)

// DefaultDetectionAllowedLanguages is the source language allow-list used when none is configured.
var DefaultDetectionAllowedLanguages = []string{"en", "es", "ja"}

// Dispatcher routes invocations to sessions. Each session runs at most one
// invocation at a time; invocations on different sessions run concurrently.
type Dispatcher struct {
	registry         *Registry
	allowedLanguages []string
}

// NewDispatcher creates a Dispatcher. allowedLanguages restricts the detected
// source languages a translation accepts; an empty list uses the defaults.
func NewDispatcher(registry *Registry, allowedLanguages []string) *Dispatcher {
	if len(allowedLanguages) == 0 {
		allowedLanguages = DefaultDetectionAllowedLanguages
	}
	bases := make([]string, 0, len(allowedLanguages))
	for _, tag := range allowedLanguages {
		if b := baseLanguage(tag); b != "" && !slices.Contains(bases, b) {
			bases = append(bases, b)
		}
	}
	return &Dispatcher{
		registry:         registry,
		allowedLanguages: bases,
	}
}

// AllowedLanguages returns the base languages a translation accepts as source.
func (d *Dispatcher) AllowedLanguages() []string {
	return slices.Clone(d.allowedLanguages)
}

// Invoke runs req on s. A language detector given blank input returns the
// indeterminate result without calling the provider.
func (d *Dispatcher) Invoke(ctx context.Context, s *Session, req domain.InvocationRequest) (domain.InvocationResult, error) {
	if s.Kind() == domain.CapabilityKind_LanguageDetector && domain.IsBlankInput(req.Input) {
		if s.State() == domain.SessionState_Destroyed {
			return domain.InvocationResult{}, domain.NewSessionReleasedErr()
		}
		return domain.IndeterminateDetection(), nil
	}
	return s.Invoke(ctx, req)
}

// Translate detects the language of text and, when it is allowed, translates
// text into targetLanguage. Sessions are acquired from the registry and stay
// live for later calls.
func (d *Dispatcher) Translate(ctx context.Context, text, targetLanguage string) (domain.Translation, error) {
	if domain.IsBlankInput(text) {
		return domain.Translation{}, domain.NewValidationErr("text cannot be empty")
	}
	target, err := domain.CanonicalLanguageTag(targetLanguage)
	if err != nil {
		return domain.Translation{}, domain.NewInvalidConfigErr(domain.ConfigField_TargetLanguage, err.Error())
	}

	detector, err := d.registry.GetOrCreateSession(ctx, domain.CapabilityKind_LanguageDetector, nil)
	if err != nil {
		return domain.Translation{}, err
	}
	if err := detector.AwaitReady(ctx); err != nil {
		return domain.Translation{}, err
	}
	detected, err := d.Invoke(ctx, detector, domain.InvocationRequest{Input: text})
	if err != nil {
		return domain.Translation{}, err
	}

	best, ok := detected.BestDetection()
	if !ok {
		return domain.Translation{}, domain.NewUnsupportedLanguagePairErr("und", target)
	}
	if !slices.Contains(d.allowedLanguages, baseLanguage(best.LanguageTag)) {
		return domain.Translation{}, domain.NewUnsupportedLanguagePairErr(best.LanguageTag, target)
	}

	translator, err := d.registry.GetOrCreateSession(ctx, domain.CapabilityKind_Translator, map[string]string{
		domain.ConfigField_SourceLanguage: best.LanguageTag,
		domain.ConfigField_TargetLanguage: target,
	})
	if err != nil {
		return domain.Translation{}, err
	}
	if err := translator.AwaitReady(ctx); err != nil {
		return domain.Translation{}, err
	}
	result, err := d.Invoke(ctx, translator, domain.InvocationRequest{Input: text})
	if err != nil {
		return domain.Translation{}, err
	}

	return domain.Translation{
		Source:    best,
		Target:    target,
		SessionID: translator.ID(),
		Result:    result,
	}, nil
}

// baseLanguage returns the primary language subtag of tag, e.g. "es" for "es-419".
func baseLanguage(tag string) string {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(tag))
	}
	base, _ := t.Base()
	return base.String()
}
