package modelrunner

import (
	"testing"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptMessages(t *testing.T) {
	tests := map[string]struct {
		kind           domain.CapabilityKind
		options        map[string]string
		req            domain.InvocationRequest
		systemContains []string
		userContains   []string
		systemExcludes []string
	}{
		"writer-defaults": {
			kind:           domain.CapabilityKind_Writer,
			req:            domain.InvocationRequest{Input: "Invite the team to lunch"},
			systemContains: []string{"neutral", "markdown", "short", "none"},
			userContains:   []string{"Invite the team to lunch", "Additional context: none"},
		},
		"rewriter-shared-context": {
			kind: domain.CapabilityKind_Rewriter,
			options: map[string]string{
				domain.ConfigField_Tone:          "more-casual",
				domain.ConfigField_SharedContext: "Posts for the company blog",
			},
			req:            domain.InvocationRequest{Input: "We hereby announce", Context: "keep it friendly"},
			systemContains: []string{"more-casual", "Posts for the company blog"},
			userContains:   []string{"We hereby announce", "keep it friendly"},
			systemExcludes: []string{"sharedContext"},
		},
		"summarizer": {
			kind:           domain.CapabilityKind_Summarizer,
			options:        map[string]string{domain.ConfigField_Type: "tl;dr"},
			req:            domain.InvocationRequest{Input: "A long report"},
			systemContains: []string{"tl;dr", "medium"},
			userContains:   []string{"A long report"},
		},
		"detector-expected-languages": {
			kind:           domain.CapabilityKind_LanguageDetector,
			options:        map[string]string{domain.ConfigField_ExpectedInputLanguages: "en,ja"},
			req:            domain.InvocationRequest{Input: "こんにちは"},
			systemContains: []string{"one of: en, ja"},
			userContains:   []string{"こんにちは"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := domain.NewCapabilityConfig(tt.kind, tt.options)
			require.NoError(t, err)

			messages, err := buildPromptMessages(cfg, tt.req)
			require.NoError(t, err)
			require.Len(t, messages, 2)
			assert.Equal(t, "system", messages[0].Role)
			assert.Equal(t, "user", messages[1].Role)

			for _, s := range tt.systemContains {
				assert.Contains(t, messages[0].Content, s)
			}
			for _, s := range tt.userContains {
				assert.Contains(t, messages[1].Content, s)
			}
			for _, s := range tt.systemExcludes {
				assert.NotContains(t, messages[0].Content, s)
			}
			assert.NotContains(t, messages[0].Content, "{{")
			assert.NotContains(t, messages[1].Content, "{{")
		})
	}
}

func TestParseDetections(t *testing.T) {
	tests := map[string]struct {
		content     string
		expected    []domain.LanguageDetection
		expectedErr string
	}{
		"plain-array": {
			content: `[{"languageTag":"en","confidence":0.9}]`,
			expected: []domain.LanguageDetection{
				{LanguageTag: "en", Confidence: 0.9},
			},
		},
		"fenced-and-unordered": {
			content: "Here you go:\n```json\n[{\"languageTag\":\"fr\",\"confidence\":0.2},{\"languageTag\":\"it\",\"confidence\":0.7}]\n```",
			expected: []domain.LanguageDetection{
				{LanguageTag: "it", Confidence: 0.7},
				{LanguageTag: "fr", Confidence: 0.2},
			},
		},
		"confidence-clamped": {
			content: `[{"languageTag":"ja","confidence":1.4},{"languageTag":"ko","confidence":-0.1}]`,
			expected: []domain.LanguageDetection{
				{LanguageTag: "ja", Confidence: 1},
				{LanguageTag: "ko", Confidence: 0},
			},
		},
		"invalid-tag-dropped": {
			content: `[{"languageTag":"not a tag!","confidence":0.6},{"languageTag":"de","confidence":0.3}]`,
			expected: []domain.LanguageDetection{
				{LanguageTag: "de", Confidence: 0.3},
			},
		},
		"empty-array": {
			content:     `[]`,
			expectedErr: "ProviderInvocationFailed",
		},
		"only-invalid-tags": {
			content:     `[{"languageTag":"not a tag!","confidence":0.9},{"languageTag":"","confidence":0.1}]`,
			expectedErr: "ProviderInvocationFailed",
		},
		"no-array": {
			content:     "English",
			expectedErr: "ProviderInvocationFailed",
		},
		"malformed-json": {
			content:     `[{"languageTag":"en",}]`,
			expectedErr: "ProviderInvocationFailed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			detections, err := parseDetections(tt.content)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, domain.ErrorName(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, detections)
		})
	}
}

func TestTemperatureFor(t *testing.T) {
	tests := map[string]struct {
		kind     domain.CapabilityKind
		expected float64
	}{
		"translator": {kind: domain.CapabilityKind_Translator, expected: 0},
		"detector":   {kind: domain.CapabilityKind_LanguageDetector, expected: 0},
		"summarizer": {kind: domain.CapabilityKind_Summarizer, expected: 0.3},
		"writer":     {kind: domain.CapabilityKind_Writer, expected: 0.7},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, *temperatureFor(tt.kind))
		})
	}
}
