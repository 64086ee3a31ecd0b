package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var errorCodes = map[string]ErrorCode{
	"Validation":               BADREQUEST,
	"InvalidConfig":            BADREQUEST,
	"NotFound":                 NOTFOUND,
	"SessionBusy":              CONFLICT,
	"SessionNotReady":          CONFLICT,
	"SessionReleased":          GONE,
	"Unavailable":              UNPROCESSABLE,
	"ProviderAbsent":           UNPROCESSABLE,
	"UnsupportedLanguagePair":  UNPROCESSABLE,
	"ProviderInvocationFailed": PROVIDERFAILURE,
}

func toError(err error) ErrorResp {
	name := domain.ErrorName(err)
	code, ok := errorCodes[name]
	if !ok {
		return ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}}
	}

	errResp := ErrorResp{Error: Error{Code: code, Name: name, Message: err.Error()}}
	var invalidConfig *domain.InvalidConfigErr
	if errors.As(err, &invalidConfig) {
		errResp.Error.Field = &invalidConfig.Field
	}
	return errResp
}

func toSession(s domain.SessionSnapshot) Session {
	resp := Session{
		Id:      openapi_types.UUID(s.ID),
		Kind:    s.Kind.String(),
		Options: s.Options,
		State:   string(s.State),
		Progress: Progress{
			Loaded:  s.Progress.Loaded,
			Total:   s.Progress.Total,
			Percent: s.Progress.Percent(),
		},
		IsDownloading: s.IsDownloading,
		CreatedAt:     s.CreatedAt,
	}
	if resp.Options == nil {
		resp.Options = map[string]string{}
	}
	if s.Err != nil {
		e := toError(s.Err).Error
		resp.Error = &e
	}
	return resp
}

func toLanguageDetection(d domain.LanguageDetection) LanguageDetection {
	return LanguageDetection{
		LanguageTag: d.LanguageTag,
		Confidence:  d.Confidence,
		Description: d.Describe("en"),
	}
}

func toInvocationResult(r domain.InvocationResult) InvocationResult {
	resp := InvocationResult{
		Kind:          r.Kind.String(),
		Indeterminate: r.Indeterminate,
		Description:   r.Describe(),
	}
	if r.Kind != domain.CapabilityKind_LanguageDetector {
		text := r.Text
		resp.Text = &text
		return resp
	}
	for _, d := range r.Detections {
		resp.Detections = append(resp.Detections, toLanguageDetection(d))
	}
	return resp
}

func toTranslation(t domain.Translation) TranslationResp {
	return TranslationResp{
		SessionId:      openapi_types.UUID(t.SessionID),
		Source:         toLanguageDetection(t.Source),
		TargetLanguage: t.Target,
		Text:           t.Result.Text,
	}
}

func toInvocationRecord(r domain.InvocationRecord) InvocationRecord {
	resp := InvocationRecord{
		Id:          openapi_types.UUID(r.ID),
		SessionId:   openapi_types.UUID(r.SessionID),
		Kind:        r.Kind.String(),
		ConfigKey:   r.ConfigKey,
		InputChars:  r.InputChars,
		OutputChars: r.OutputChars,
		Outcome:     string(r.Outcome),
		DurationMs:  r.Duration.Milliseconds(),
		CreatedAt:   r.CreatedAt,
	}
	if r.ErrorName != "" {
		name := r.ErrorName
		resp.ErrorName = &name
	}
	return resp
}
