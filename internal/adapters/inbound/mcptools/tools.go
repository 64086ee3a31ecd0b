package mcptools

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WriteInput is the input of the write tool.
type WriteInput struct {
	Prompt        string `json:"prompt" jsonschema:"what to write"`
	Context       string `json:"context,omitempty" jsonschema:"extra context for this request only"`
	Tone          string `json:"tone,omitempty" jsonschema:"formal, neutral or casual (default: neutral)"`
	Format        string `json:"format,omitempty" jsonschema:"plain-text or markdown (default: markdown)"`
	Length        string `json:"length,omitempty" jsonschema:"short, medium or long (default: short)"`
	SharedContext string `json:"sharedContext,omitempty" jsonschema:"context shared by every request of the session"`
}

// RewriteInput is the input of the rewrite tool.
type RewriteInput struct {
	Text          string `json:"text" jsonschema:"the text to rewrite"`
	Context       string `json:"context,omitempty" jsonschema:"extra context for this request only"`
	Tone          string `json:"tone,omitempty" jsonschema:"as-is, more-formal or more-casual (default: as-is)"`
	Format        string `json:"format,omitempty" jsonschema:"as-is, plain-text or markdown (default: as-is)"`
	Length        string `json:"length,omitempty" jsonschema:"as-is, shorter or longer (default: as-is)"`
	SharedContext string `json:"sharedContext,omitempty" jsonschema:"context shared by every request of the session"`
}

// SummarizeInput is the input of the summarize tool.
type SummarizeInput struct {
	Text          string `json:"text" jsonschema:"the text to summarize"`
	Context       string `json:"context,omitempty" jsonschema:"extra context for this request only"`
	Type          string `json:"type,omitempty" jsonschema:"key-points, tl;dr, teaser or headline (default: key-points)"`
	Format        string `json:"format,omitempty" jsonschema:"plain-text or markdown (default: markdown)"`
	Length        string `json:"length,omitempty" jsonschema:"short, medium or long (default: medium)"`
	SharedContext string `json:"sharedContext,omitempty" jsonschema:"context shared by every request of the session"`
}

// TextOutput is the result of the text producing tools.
type TextOutput struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

// TranslateInput is the input of the translate tool.
type TranslateInput struct {
	Text           string `json:"text" jsonschema:"the text to translate, its language is detected"`
	TargetLanguage string `json:"targetLanguage" jsonschema:"BCP 47 tag of the target language, e.g. es"`
}

// TranslateOutput is the result of the translate tool.
type TranslateOutput struct {
	SessionID      string  `json:"sessionId"`
	SourceLanguage string  `json:"sourceLanguage"`
	Confidence     float64 `json:"confidence"`
	TargetLanguage string  `json:"targetLanguage"`
	Text           string  `json:"text"`
}

// DetectLanguageInput is the input of the detect_language tool.
type DetectLanguageInput struct {
	Text                   string `json:"text" jsonschema:"the text whose language is detected"`
	ExpectedInputLanguages string `json:"expectedInputLanguages,omitempty" jsonschema:"comma separated BCP 47 tags the text is expected to be in"`
}

// Detection is one candidate language.
type Detection struct {
	LanguageTag string  `json:"languageTag"`
	Confidence  float64 `json:"confidence"`
}

// DetectLanguageOutput is the result of the detect_language tool.
type DetectLanguageOutput struct {
	SessionID     string      `json:"sessionId"`
	Detections    []Detection `json:"detections"`
	Indeterminate bool        `json:"indeterminate"`
	Description   string      `json:"description"`
}

func (s AssistMCPServer) Write(ctx context.Context, req *mcp.CallToolRequest, in WriteInput) (*mcp.CallToolResult, TextOutput, error) {
	options := optionsOf(map[string]string{
		domain.ConfigField_Tone:          in.Tone,
		domain.ConfigField_Format:        in.Format,
		domain.ConfigField_Length:        in.Length,
		domain.ConfigField_SharedContext: in.SharedContext,
	})
	return s.produceText(ctx, req, domain.CapabilityKind_Writer, options, domain.InvocationRequest{Input: in.Prompt, Context: in.Context})
}

func (s AssistMCPServer) Rewrite(ctx context.Context, req *mcp.CallToolRequest, in RewriteInput) (*mcp.CallToolResult, TextOutput, error) {
	options := optionsOf(map[string]string{
		domain.ConfigField_Tone:          in.Tone,
		domain.ConfigField_Format:        in.Format,
		domain.ConfigField_Length:        in.Length,
		domain.ConfigField_SharedContext: in.SharedContext,
	})
	return s.produceText(ctx, req, domain.CapabilityKind_Rewriter, options, domain.InvocationRequest{Input: in.Text, Context: in.Context})
}

func (s AssistMCPServer) Summarize(ctx context.Context, req *mcp.CallToolRequest, in SummarizeInput) (*mcp.CallToolResult, TextOutput, error) {
	options := optionsOf(map[string]string{
		domain.ConfigField_Type:          in.Type,
		domain.ConfigField_Format:        in.Format,
		domain.ConfigField_Length:        in.Length,
		domain.ConfigField_SharedContext: in.SharedContext,
	})
	return s.produceText(ctx, req, domain.CapabilityKind_Summarizer, options, domain.InvocationRequest{Input: in.Text, Context: in.Context})
}

func (s AssistMCPServer) Translate(ctx context.Context, _ *mcp.CallToolRequest, in TranslateInput) (*mcp.CallToolResult, TranslateOutput, error) {
	translation, err := s.TranslateTextUseCase.Execute(ctx, in.Text, in.TargetLanguage)
	if err != nil {
		return nil, TranslateOutput{}, s.toolError("translate", err)
	}
	return nil, TranslateOutput{
		SessionID:      translation.SessionID.String(),
		SourceLanguage: translation.Source.LanguageTag,
		Confidence:     translation.Source.Confidence,
		TargetLanguage: translation.Target,
		Text:           translation.Result.Text,
	}, nil
}

func (s AssistMCPServer) DetectLanguage(ctx context.Context, req *mcp.CallToolRequest, in DetectLanguageInput) (*mcp.CallToolResult, DetectLanguageOutput, error) {
	options := optionsOf(map[string]string{
		domain.ConfigField_ExpectedInputLanguages: in.ExpectedInputLanguages,
	})
	snapshot, result, err := s.invoke(ctx, req, domain.CapabilityKind_LanguageDetector, options, domain.InvocationRequest{Input: in.Text})
	if err != nil {
		return nil, DetectLanguageOutput{}, s.toolError("detect_language", err)
	}

	out := DetectLanguageOutput{
		SessionID:     snapshot.ID.String(),
		Detections:    []Detection{},
		Indeterminate: result.Indeterminate,
		Description:   result.Describe(),
	}
	for _, d := range result.Detections {
		out.Detections = append(out.Detections, Detection{LanguageTag: d.LanguageTag, Confidence: d.Confidence})
	}
	return nil, out, nil
}

func (s AssistMCPServer) produceText(
	ctx context.Context,
	req *mcp.CallToolRequest,
	kind domain.CapabilityKind,
	options map[string]string,
	invocation domain.InvocationRequest,
) (*mcp.CallToolResult, TextOutput, error) {
	snapshot, result, err := s.invoke(ctx, req, kind, options, invocation)
	if err != nil {
		return nil, TextOutput{}, s.toolError(kind.String(), err)
	}
	return nil, TextOutput{SessionID: snapshot.ID.String(), Text: result.Text}, nil
}

// invoke acquires the session of the configuration, waits for its download
// phase and runs one invocation on it. Sessions stay alive for later calls.
func (s AssistMCPServer) invoke(
	ctx context.Context,
	req *mcp.CallToolRequest,
	kind domain.CapabilityKind,
	options map[string]string,
	invocation domain.InvocationRequest,
) (domain.SessionSnapshot, domain.InvocationResult, error) {
	snapshot, err := s.AcquireSessionUseCase.Execute(ctx, kind, options)
	if err != nil {
		return domain.SessionSnapshot{}, domain.InvocationResult{}, err
	}

	if snapshot.State == domain.SessionState_Probing || snapshot.State == domain.SessionState_Downloading {
		snapshot, err = s.awaitReady(ctx, req, snapshot.ID)
		if err != nil {
			return domain.SessionSnapshot{}, domain.InvocationResult{}, err
		}
	}

	result, err := s.InvokeCapabilityUseCase.Execute(ctx, snapshot.ID, invocation)
	if err != nil {
		return domain.SessionSnapshot{}, domain.InvocationResult{}, err
	}
	return snapshot, result, nil
}

// awaitReady follows the session until it settles. Download progress is
// forwarded to the client when the call carries a progress token.
func (s AssistMCPServer) awaitReady(ctx context.Context, req *mcp.CallToolRequest, id uuid.UUID) (domain.SessionSnapshot, error) {
	var settled domain.SessionSnapshot
	err := s.WatchSessionUseCase.Stream(ctx, id, func(update domain.SessionUpdate) error {
		if update.Type == domain.SessionUpdateType_State {
			settled = update.Snapshot
			return nil
		}
		notifyProgress(ctx, req, update.Progress)
		return nil
	})
	if err != nil {
		return domain.SessionSnapshot{}, err
	}

	switch {
	case settled.State == domain.SessionState_Ready || settled.State == domain.SessionState_Invoking:
		return settled, nil
	case settled.Err != nil:
		return domain.SessionSnapshot{}, settled.Err
	default:
		return domain.SessionSnapshot{}, domain.NewSessionNotReadyErr(settled.State)
	}
}

func notifyProgress(ctx context.Context, req *mcp.CallToolRequest, progress domain.DownloadProgress) {
	if req == nil || req.Session == nil || req.Params == nil {
		return
	}
	token := req.Params.GetProgressToken()
	if token == nil {
		return
	}
	_ = req.Session.NotifyProgress(ctx, &mcp.ProgressNotificationParams{
		ProgressToken: token,
		Message:       "downloading model",
		Progress:      float64(progress.Loaded),
		Total:         float64(progress.Total),
	})
}

// optionsOf drops the options left empty by the caller so that schema
// defaults apply.
func optionsOf(values map[string]string) map[string]string {
	options := map[string]string{}
	for name, value := range values {
		if value != "" {
			options[name] = value
		}
	}
	return options
}

func (s AssistMCPServer) toolError(tool string, err error) error {
	s.Logger.Printf("AssistMCPServer: %s failed: %v", tool, err)
	return fmt.Errorf("%s failed (%s): %w", tool, domain.ErrorName(err), err)
}
