package modelrunner

import (
	"embed"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

// promptOption is one session option rendered into a prompt.
type promptOption struct {
	Name  string `toon:"name"`
	Value string `toon:"value"`
}

type promptOptions struct {
	Options []promptOption `toon:"options"`
}

// buildPromptMessages renders the prompt template of the session kind for one request.
func buildPromptMessages(cfg domain.CapabilityConfig, req domain.InvocationRequest) ([]ChatMessage, error) {
	name := fmt.Sprintf("prompts/%s.yml", cfg.Kind())
	file, err := promptsFS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s prompt: %w", cfg.Kind(), err)
	}
	defer file.Close() //nolint:errcheck

	messages := []ChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode %s prompt: %w", cfg.Kind(), err)
	}

	options, err := renderOptions(cfg)
	if err != nil {
		return nil, err
	}

	replacer := strings.NewReplacer(
		"{{options}}", options,
		"{{shared_context}}", valueOr(cfg.Value(domain.ConfigField_SharedContext), "none"),
		"{{input}}", req.Input,
		"{{context}}", valueOr(req.Context, "none"),
	)
	for i, msg := range messages {
		msg.Content = strings.TrimSpace(replacer.Replace(msg.Content))
		messages[i] = msg
	}
	return messages, nil
}

// renderOptions describes the session options for the model.
func renderOptions(cfg domain.CapabilityConfig) (string, error) {
	switch cfg.Kind() {
	case domain.CapabilityKind_Translator:
		source := cfg.Value(domain.ConfigField_SourceLanguage)
		target := cfg.Value(domain.ConfigField_TargetLanguage)
		return fmt.Sprintf("Source language: %s (%s). Target language: %s (%s).",
			domain.LanguageDisplayName(source, "en"), source,
			domain.LanguageDisplayName(target, "en"), target,
		), nil
	case domain.CapabilityKind_LanguageDetector:
		expected := cfg.ExpectedInputLanguages()
		if len(expected) == 0 {
			return "", nil
		}
		return fmt.Sprintf("The text is most likely written in one of: %s.", strings.Join(expected, ", ")), nil
	}

	schema, _ := domain.SchemaFor(cfg.Kind())
	po := promptOptions{}
	for _, field := range schema.Fields {
		if field.Name == domain.ConfigField_SharedContext {
			continue
		}
		po.Options = append(po.Options, promptOption{Name: field.Name, Value: cfg.Value(field.Name)})
	}

	optionsTOON, err := toon.MarshalString(po, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s options: %w", cfg.Kind(), err)
	}
	return optionsTOON, nil
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
