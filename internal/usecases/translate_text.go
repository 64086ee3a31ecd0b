package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// TranslateText defines the interface for the TranslateText use case.
type TranslateText interface {
	Execute(ctx context.Context, text, targetLanguage string) (domain.Translation, error)
}

// TranslateTextImpl is the implementation of the TranslateText use case.
type TranslateTextImpl struct {
	dispatcher *capability.Dispatcher
}

// NewTranslateTextImpl creates a new instance of TranslateTextImpl.
func NewTranslateTextImpl(dispatcher *capability.Dispatcher) TranslateTextImpl {
	return TranslateTextImpl{
		dispatcher: dispatcher,
	}
}

// Execute detects the source language of text and translates it into targetLanguage.
func (t TranslateTextImpl) Execute(ctx context.Context, text, targetLanguage string) (domain.Translation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	translation, err := t.dispatcher.Translate(spanCtx, text, targetLanguage)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Translation{}, err
	}
	return translation, nil
}

// InitTranslateText initializes the TranslateText use case.
type InitTranslateText struct {
	Dispatcher *capability.Dispatcher `resolve:""`
}

// Initialize registers the TranslateText use case in the dependency container.
func (i InitTranslateText) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TranslateText](NewTranslateTextImpl(i.Dispatcher))
	return ctx, nil
}
