package capability

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitCapabilityRegistry registers the Registry and the Dispatcher of the
// application scope. Closing it releases every live session.
type InitCapabilityRegistry struct {
	Catalog          domain.ProviderCatalog       `resolve:""`
	TimeProvider     domain.CurrentTimeProvider   `resolve:""`
	Publisher        domain.SessionEventPublisher `resolve:""`
	Logger           *log.Logger                  `resolve:""`
	AllowedLanguages string                       `config:"DETECTION_ALLOWED_LANGUAGES" default:"en,es,ja"`

	registry *Registry
}

// Initialize creates the registry and the dispatcher.
func (i *InitCapabilityRegistry) Initialize(ctx context.Context) (context.Context, error) {
	i.registry = NewRegistry(i.Catalog, i.TimeProvider, i.Publisher, i.Logger)
	dispatcher := NewDispatcher(i.registry, splitList(i.AllowedLanguages))

	depend.Register(i.registry)
	depend.Register(dispatcher)
	return ctx, nil
}

// Close releases the sessions still owned by the registry.
func (i *InitCapabilityRegistry) Close() {
	if i.registry == nil {
		return
	}
	sessions := len(i.registry.Sessions())
	i.registry.Close()
	i.Logger.Printf("InitCapabilityRegistry: released %d sessions", sessions)
}

func splitList(s string) []string {
	var list []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
