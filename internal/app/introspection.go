package app

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector renders the introspection report as a Mermaid graph
// and registers it for the introspection page. Without a Logger it uses the
// one registered in the container.
type MermaidGraphIntrospector struct {
	Logger *log.Logger
}

// Introspect registers the graph and logs the config keys that fell back to defaults.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), http.IntrospectionGraphName)

	logger := i.Logger
	if logger == nil {
		l, err := depend.Resolve[*log.Logger]()
		if err != nil {
			return nil
		}
		logger = l
	}
	var defaults []string
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaults = append(defaults, c.Key)
		}
	}
	if len(defaults) > 0 {
		logger.Printf("MermaidGraphIntrospector: %d config keys use their default: %s", len(defaults), strings.Join(defaults, ", "))
	}
	return nil
}
