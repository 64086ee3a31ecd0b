package modelrunner

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// noModel marks a capability kind without a configured model.
const noModel = "-"

// NewProviderCatalog builds the catalog of the kinds that have a model.
// Kinds mapped to an empty or "-" model have no provider.
func NewProviderCatalog(client DRMAPIClient, models map[domain.CapabilityKind]string, translatorLanguages []string, logger *log.Logger) domain.ProviderCatalogMap {
	catalog := domain.ProviderCatalogMap{}
	for kind, model := range models {
		model = strings.TrimSpace(model)
		if model == "" || model == noModel {
			continue
		}
		var languages []string
		if kind == domain.CapabilityKind_Translator {
			languages = translatorLanguages
		}
		catalog[kind] = NewCapabilityProvider(client, kind, model, languages, logger)
	}
	return catalog
}

// InitProviderCatalog registers the model runner providers as the domain.ProviderCatalog.
type InitProviderCatalog struct {
	HttpClient          *http.Client `resolve:""`
	Logger              *log.Logger  `resolve:""`
	LLMHost             string       `config:"LLM_MODEL_HOST"`
	WriterModel         string       `config:"LLM_WRITER_MODEL" default:"-"`
	RewriterModel       string       `config:"LLM_REWRITER_MODEL" default:"-"`
	SummarizerModel     string       `config:"LLM_SUMMARIZER_MODEL" default:"-"`
	TranslatorModel     string       `config:"LLM_TRANSLATOR_MODEL" default:"-"`
	DetectorModel       string       `config:"LLM_DETECTOR_MODEL" default:"-"`
	TranslatorLanguages string       `config:"TRANSLATOR_LANGUAGES" default:"en,es,ja,fr,pt,ru,tr"`
}

// Initialize registers the provider catalog.
func (i InitProviderCatalog) Initialize(ctx context.Context) (context.Context, error) {
	catalog := NewProviderCatalog(
		NewDRMAPIClient(i.LLMHost, "", i.HttpClient),
		map[domain.CapabilityKind]string{
			domain.CapabilityKind_Writer:           i.WriterModel,
			domain.CapabilityKind_Rewriter:         i.RewriterModel,
			domain.CapabilityKind_Summarizer:       i.SummarizerModel,
			domain.CapabilityKind_Translator:       i.TranslatorModel,
			domain.CapabilityKind_LanguageDetector: i.DetectorModel,
		},
		strings.Split(i.TranslatorLanguages, ","),
		i.Logger,
	)

	for _, kind := range domain.CapabilityKinds {
		if _, ok := catalog.Provider(kind); !ok {
			i.Logger.Printf("InitProviderCatalog: no model configured for %s", kind)
		}
	}

	depend.Register[domain.ProviderCatalog](catalog)
	return ctx, nil
}
