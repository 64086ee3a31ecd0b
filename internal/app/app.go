package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/inbound/mcptools"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/usecases"
)

// NewAssistApp creates and returns a new instance of the AI Assist application.
func NewAssistApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitInvocationLogRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitSessionEventPublisher{},
			&modelrunner.InitProviderCatalog{},
			&capability.InitCapabilityRegistry{},

			&usecases.InitProbeCapability{},
			&usecases.InitAcquireSession{},
			&usecases.InitGetSession{},
			&usecases.InitWatchSession{},
			&usecases.InitInvokeCapability{},
			&usecases.InitReleaseSession{},
			&usecases.InitTranslateText{},
			&usecases.InitListInvocations{},
			&usecases.InitReapIdleSessions{},
		).
		Host(
			&http.AssistServer{},
			&mcptools.AssistMCPServer{},
			&workers.SessionReaper{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
