package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Config field names shared by the capability schemas.
const (
	ConfigField_Tone                   = "tone"
	ConfigField_Format                 = "format"
	ConfigField_Length                 = "length"
	ConfigField_Type                   = "type"
	ConfigField_SharedContext          = "sharedContext"
	ConfigField_SourceLanguage         = "sourceLanguage"
	ConfigField_TargetLanguage         = "targetLanguage"
	ConfigField_ExpectedInputLanguages = "expectedInputLanguages"
)

// ConfigFieldFormat describes how the value of a field is validated.
type ConfigFieldFormat int

const (
	ConfigFieldFormat_Text ConfigFieldFormat = iota
	ConfigFieldFormat_LanguageTag
	ConfigFieldFormat_LanguageTagList
)

// ConfigField is one named option of a capability schema.
type ConfigField struct {
	Name     string
	Required bool
	Default  string
	// Allowed restricts the value to a closed set when not empty.
	Allowed []string
	Format  ConfigFieldFormat
}

// CapabilitySchema lists the options accepted by a capability kind.
type CapabilitySchema struct {
	Kind   CapabilityKind
	Fields []ConfigField
}

// Field returns the field definition with the given name.
func (s CapabilitySchema) Field(name string) (ConfigField, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return ConfigField{}, false
}

var capabilitySchemas = map[CapabilityKind]CapabilitySchema{
	CapabilityKind_Writer: {
		Kind: CapabilityKind_Writer,
		Fields: []ConfigField{
			{Name: ConfigField_Tone, Default: "neutral", Allowed: []string{"formal", "neutral", "casual"}},
			{Name: ConfigField_Format, Default: "markdown", Allowed: []string{"plain-text", "markdown"}},
			{Name: ConfigField_Length, Default: "short", Allowed: []string{"short", "medium", "long"}},
			{Name: ConfigField_SharedContext},
		},
	},
	CapabilityKind_Rewriter: {
		Kind: CapabilityKind_Rewriter,
		Fields: []ConfigField{
			{Name: ConfigField_Tone, Default: "as-is", Allowed: []string{"as-is", "more-formal", "more-casual"}},
			{Name: ConfigField_Format, Default: "as-is", Allowed: []string{"as-is", "plain-text", "markdown"}},
			{Name: ConfigField_Length, Default: "as-is", Allowed: []string{"as-is", "shorter", "longer"}},
			{Name: ConfigField_SharedContext},
		},
	},
	CapabilityKind_Summarizer: {
		Kind: CapabilityKind_Summarizer,
		Fields: []ConfigField{
			{Name: ConfigField_Type, Default: "key-points", Allowed: []string{"key-points", "tl;dr", "teaser", "headline"}},
			{Name: ConfigField_Format, Default: "markdown", Allowed: []string{"plain-text", "markdown"}},
			{Name: ConfigField_Length, Default: "medium", Allowed: []string{"short", "medium", "long"}},
			{Name: ConfigField_SharedContext},
		},
	},
	CapabilityKind_Translator: {
		Kind: CapabilityKind_Translator,
		Fields: []ConfigField{
			{Name: ConfigField_SourceLanguage, Required: true, Format: ConfigFieldFormat_LanguageTag},
			{Name: ConfigField_TargetLanguage, Required: true, Format: ConfigFieldFormat_LanguageTag},
		},
	},
	CapabilityKind_LanguageDetector: {
		Kind: CapabilityKind_LanguageDetector,
		Fields: []ConfigField{
			{Name: ConfigField_ExpectedInputLanguages, Format: ConfigFieldFormat_LanguageTagList},
		},
	},
}

// SchemaFor returns the configuration schema of a capability kind.
func SchemaFor(kind CapabilityKind) (CapabilitySchema, bool) {
	s, ok := capabilitySchemas[kind]
	return s, ok
}

// CapabilityConfig is the immutable, validated set of options of one session.
// Two configs are equal when their Key is equal.
type CapabilityConfig struct {
	kind    CapabilityKind
	options map[string]string
}

// NewCapabilityConfig validates options against the schema of kind and applies defaults.
// It fails with an InvalidConfigErr naming the offending field.
func NewCapabilityConfig(kind CapabilityKind, options map[string]string) (CapabilityConfig, error) {
	schema, ok := SchemaFor(kind)
	if !ok {
		return CapabilityConfig{}, NewValidationErr(fmt.Sprintf("unknown capability kind %q", kind))
	}

	for _, name := range slices.Sorted(maps.Keys(options)) {
		if _, known := schema.Field(name); !known {
			return CapabilityConfig{}, NewInvalidConfigErr(name, fmt.Sprintf("unknown option for %s", kind))
		}
	}

	normalized := make(map[string]string, len(schema.Fields))
	for _, field := range schema.Fields {
		value := strings.TrimSpace(options[field.Name])
		if value == "" {
			if field.Required {
				return CapabilityConfig{}, NewInvalidConfigErr(field.Name, "value is required")
			}
			if field.Default != "" {
				normalized[field.Name] = field.Default
			}
			continue
		}

		value, err := normalizeFieldValue(field, value)
		if err != nil {
			return CapabilityConfig{}, err
		}
		normalized[field.Name] = value
	}

	return CapabilityConfig{kind: kind, options: normalized}, nil
}

func normalizeFieldValue(field ConfigField, value string) (string, error) {
	switch field.Format {
	case ConfigFieldFormat_LanguageTag:
		tag, err := CanonicalLanguageTag(value)
		if err != nil {
			return "", NewInvalidConfigErr(field.Name, err.Error())
		}
		return tag, nil
	case ConfigFieldFormat_LanguageTagList:
		var tags []string
		for _, raw := range strings.Split(value, ",") {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			tag, err := CanonicalLanguageTag(raw)
			if err != nil {
				return "", NewInvalidConfigErr(field.Name, err.Error())
			}
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
		slices.Sort(tags)
		return strings.Join(tags, ","), nil
	}

	if len(field.Allowed) > 0 && !slices.Contains(field.Allowed, value) {
		return "", NewInvalidConfigErr(field.Name, fmt.Sprintf("%q is not one of %s", value, strings.Join(field.Allowed, ", ")))
	}
	return value, nil
}

// CanonicalLanguageTag validates a BCP 47 tag and returns its canonical form.
// Tags that are well-formed but unknown are accepted so that the provider can
// decide whether it supports them.
func CanonicalLanguageTag(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("language tag is empty")
	}
	tag, err := language.Parse(raw)
	if err != nil {
		var unknown language.ValueError
		if errors.As(err, &unknown) {
			return strings.ToLower(raw), nil
		}
		return "", fmt.Errorf("%q is not a valid language tag", raw)
	}
	return tag.String(), nil
}

// Kind returns the capability kind the config belongs to.
func (c CapabilityConfig) Kind() CapabilityKind {
	return c.kind
}

// Get returns the value of an option.
func (c CapabilityConfig) Get(name string) (string, bool) {
	v, ok := c.options[name]
	return v, ok
}

// Value returns the value of an option or an empty string.
func (c CapabilityConfig) Value(name string) string {
	return c.options[name]
}

// Options returns a copy of the normalized options.
func (c CapabilityConfig) Options() map[string]string {
	return maps.Clone(c.options)
}

// Key returns the canonical representation used for value equality.
func (c CapabilityConfig) Key() string {
	var b strings.Builder
	b.WriteString(string(c.kind))
	b.WriteString("|")
	for i, name := range slices.Sorted(maps.Keys(c.options)) {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(c.options[name])
	}
	return b.String()
}

// Equal reports whether two configs are value-equal.
func (c CapabilityConfig) Equal(other CapabilityConfig) bool {
	return c.Key() == other.Key()
}

// ExpectedInputLanguages returns the language hint list of a detector config.
func (c CapabilityConfig) ExpectedInputLanguages() []string {
	v := c.options[ConfigField_ExpectedInputLanguages]
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}
