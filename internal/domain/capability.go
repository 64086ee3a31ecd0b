package domain

import (
	"fmt"
	"strings"
)

// CapabilityKind selects the provider entry point and the configuration schema of a session.
type CapabilityKind string

const (
	CapabilityKind_Writer           CapabilityKind = "writer"
	CapabilityKind_Rewriter         CapabilityKind = "rewriter"
	CapabilityKind_Summarizer       CapabilityKind = "summarizer"
	CapabilityKind_Translator       CapabilityKind = "translator"
	CapabilityKind_LanguageDetector CapabilityKind = "language-detector"
)

// CapabilityKinds lists every supported kind in a stable order.
var CapabilityKinds = []CapabilityKind{
	CapabilityKind_Writer,
	CapabilityKind_Rewriter,
	CapabilityKind_Summarizer,
	CapabilityKind_Translator,
	CapabilityKind_LanguageDetector,
}

// ParseCapabilityKind converts a raw value into a CapabilityKind.
func ParseCapabilityKind(s string) (CapabilityKind, error) {
	kind := CapabilityKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range CapabilityKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", NewValidationErr(fmt.Sprintf("unknown capability kind %q", s))
}

// String returns the kind as a string.
func (k CapabilityKind) String() string {
	return string(k)
}

// AvailabilityStatus is the answer of a provider about a kind and configuration.
type AvailabilityStatus string

const (
	// AvailabilityStatus_Unavailable means the configuration is not supported.
	AvailabilityStatus_Unavailable AvailabilityStatus = "unavailable"
	// AvailabilityStatus_Downloadable means a session can be created after a download phase.
	AvailabilityStatus_Downloadable AvailabilityStatus = "downloadable"
	// AvailabilityStatus_Ready means a session can be created without downloading anything.
	AvailabilityStatus_Ready AvailabilityStatus = "ready"
)

// DownloadProgress is one byte-level progress event of a download phase.
type DownloadProgress struct {
	Loaded int64 `json:"loaded"`
	Total  int64 `json:"total"`
}

// Complete reports whether the download phase has fetched every byte.
func (p DownloadProgress) Complete() bool {
	return p.Total > 0 && p.Loaded == p.Total
}

// Percent returns the completed share of the download, between 0 and 100.
func (p DownloadProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Loaded) * 100 / float64(p.Total)
}
