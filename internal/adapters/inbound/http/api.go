package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorCode is the machine readable class of an API error.
type ErrorCode string

const (
	BADREQUEST      ErrorCode = "BAD_REQUEST"
	NOTFOUND        ErrorCode = "NOT_FOUND"
	CONFLICT        ErrorCode = "CONFLICT"
	GONE            ErrorCode = "GONE"
	UNPROCESSABLE   ErrorCode = "UNPROCESSABLE"
	PROVIDERFAILURE ErrorCode = "PROVIDER_FAILURE"
	INTERNALERROR   ErrorCode = "INTERNAL_ERROR"
)

// Error describes a failed request. Name is the domain error name, e.g. SessionBusy.
type Error struct {
	Code    ErrorCode `json:"code"`
	Name    string    `json:"name,omitempty"`
	Message string    `json:"message"`
	Field   *string   `json:"field,omitempty"`
}

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Error Error `json:"error"`
}

// AvailabilityResp is the answer of the availability probe.
type AvailabilityResp struct {
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

// AcquireSessionRequest creates or joins a session.
type AcquireSessionRequest struct {
	Kind    string            `json:"kind"`
	Options map[string]string `json:"options,omitempty"`
}

// Progress is the download progress of a session.
type Progress struct {
	Loaded  int64   `json:"loaded"`
	Total   int64   `json:"total"`
	Percent float64 `json:"percent"`
}

// Session is the readout of a capability session.
type Session struct {
	Id            openapi_types.UUID `json:"id"`
	Kind          string             `json:"kind"`
	Options       map[string]string  `json:"options"`
	State         string             `json:"state"`
	Progress      Progress           `json:"progress"`
	IsDownloading bool               `json:"isDownloading"`
	Error         *Error             `json:"error,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// InvokeRequest is one invocation of a session.
type InvokeRequest struct {
	Input   string `json:"input"`
	Context string `json:"context,omitempty"`
}

// LanguageDetection is one candidate of a language detection.
type LanguageDetection struct {
	LanguageTag string  `json:"languageTag"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// InvocationResult is the output of an invocation.
type InvocationResult struct {
	Kind          string              `json:"kind"`
	Text          *string             `json:"text,omitempty"`
	Detections    []LanguageDetection `json:"detections,omitempty"`
	Indeterminate bool                `json:"indeterminate,omitempty"`
	Description   string              `json:"description"`
}

// TranslateRequest translates text whose language is detected first.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// TranslationResp is the result of a translation.
type TranslationResp struct {
	SessionId      openapi_types.UUID `json:"sessionId"`
	Source         LanguageDetection  `json:"source"`
	TargetLanguage string             `json:"targetLanguage"`
	Text           string             `json:"text"`
}

// InvocationRecord is one entry of the invocation audit trail.
type InvocationRecord struct {
	Id          openapi_types.UUID `json:"id"`
	SessionId   openapi_types.UUID `json:"sessionId"`
	Kind        string             `json:"kind"`
	ConfigKey   string             `json:"configKey"`
	InputChars  int                `json:"inputChars"`
	OutputChars int                `json:"outputChars"`
	Outcome     string             `json:"outcome"`
	ErrorName   *string            `json:"errorName,omitempty"`
	DurationMs  int64              `json:"durationMs"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ListInvocationsResp is one page of the invocation audit trail.
type ListInvocationsResp struct {
	Items        []InvocationRecord `json:"items"`
	Page         int                `json:"page"`
	NextPage     *int               `json:"nextPage,omitempty"`
	PreviousPage *int               `json:"previousPage,omitempty"`
}
