package mcptools

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// AssistMCPServer exposes the capabilities as MCP tools over streamable HTTP.
type AssistMCPServer struct {
	Port                    int                       `config:"MCP_PORT" default:"8090"`
	Logger                  *log.Logger               `resolve:""`
	AcquireSessionUseCase   usecases.AcquireSession   `resolve:""`
	WatchSessionUseCase     usecases.WatchSession     `resolve:""`
	InvokeCapabilityUseCase usecases.InvokeCapability `resolve:""`
	TranslateTextUseCase    usecases.TranslateText    `resolve:""`
}

// NewServer creates the MCP server with every tool registered.
func (s AssistMCPServer) NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "symbiont-ai-assist",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "write",
		Description: "Write new text from a prompt with the on-device writer model. Options select tone, format and length.",
	}, s.Write)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rewrite",
		Description: "Rewrite a text with the on-device rewriter model, optionally changing its tone, format or length.",
	}, s.Rewrite)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize",
		Description: "Summarize a text with the on-device summarizer model as key points, a tl;dr, a teaser or a headline.",
	}, s.Summarize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "translate",
		Description: "Detect the language of a text and translate it into the target language. Only allowed source languages are translated.",
	}, s.Translate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_language",
		Description: "Detect the language of a text. Returns candidate languages ordered by confidence.",
	}, s.DetectLanguage)

	return server
}

// Handler returns the streamable HTTP handler of the MCP server.
func (s AssistMCPServer) Handler() http.Handler {
	server := s.NewServer()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/mcp", telemetry.HttpHandler(mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	), "/mcp"))
	return mux
}

// Run starts the MCP server and stops it when ctx is done.
func (s AssistMCPServer) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("AssistMCPServer: listening on port %d", s.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("AssistMCPServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("AssistMCPServer: stopped")
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady checks the health endpoint of the running server.
func (s AssistMCPServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", s.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
