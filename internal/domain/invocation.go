package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// IndeterminateDetectionMessage is shown when no language can be detected.
const IndeterminateDetectionMessage = "not sure what language this is"

// InvocationRequest is the input of one capability call.
type InvocationRequest struct {
	Input string
	// Context is optional extra context forwarded to the provider.
	Context string
}

// LanguageDetection is one candidate of a language detection.
type LanguageDetection struct {
	LanguageTag string  `json:"languageTag"`
	Confidence  float64 `json:"confidence"`
}

// Describe renders the detection for humans, naming the language in displayLang.
func (d LanguageDetection) Describe(displayLang string) string {
	return fmt.Sprintf("%.1f%% sure that this is %s", d.Confidence*100, LanguageDisplayName(d.LanguageTag, displayLang))
}

// LanguageDisplayName returns the name of a language tag in the display language.
// Unknown tags are returned unchanged.
func LanguageDisplayName(tag, displayLang string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	dl, err := language.Parse(displayLang)
	if err != nil {
		dl = language.English
	}
	name := display.Tags(dl).Name(t)
	if name == "" {
		return tag
	}
	return name
}

// InvocationResult is either a produced text or a language detection.
type InvocationResult struct {
	Kind CapabilityKind
	Text string
	// Detections are ordered by descending confidence.
	Detections []LanguageDetection
	// Indeterminate marks the detector sentinel returned for blank input.
	Indeterminate bool
}

// IndeterminateDetection returns the sentinel result of the language detector.
func IndeterminateDetection() InvocationResult {
	return InvocationResult{
		Kind:          CapabilityKind_LanguageDetector,
		Indeterminate: true,
	}
}

// SortDetections orders detections by descending confidence, keeping the
// order of equal confidences.
func SortDetections(detections []LanguageDetection) {
	slices.SortStableFunc(detections, func(a, b LanguageDetection) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
}

// BestDetection returns the most confident detection candidate.
func (r InvocationResult) BestDetection() (LanguageDetection, bool) {
	if r.Indeterminate || len(r.Detections) == 0 {
		return LanguageDetection{}, false
	}
	return r.Detections[0], true
}

// Describe renders the result for humans.
func (r InvocationResult) Describe() string {
	if r.Kind != CapabilityKind_LanguageDetector {
		return r.Text
	}
	best, ok := r.BestDetection()
	if !ok {
		return IndeterminateDetectionMessage
	}
	return best.Describe("en")
}

// IsBlankInput reports whether an input carries no text at all.
func IsBlankInput(input string) bool {
	return strings.TrimSpace(input) == ""
}

// InvocationOutcome classifies how an invocation ended.
type InvocationOutcome string

const (
	InvocationOutcome_Success  InvocationOutcome = "success"
	InvocationOutcome_Rejected InvocationOutcome = "rejected"
	InvocationOutcome_Failed   InvocationOutcome = "failed"
)

// InvocationRecord is the audit entry written for each dispatched invocation.
type InvocationRecord struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	Kind        CapabilityKind
	ConfigKey   string
	InputChars  int
	OutputChars int
	Outcome     InvocationOutcome
	ErrorName   string
	Duration    time.Duration
	CreatedAt   time.Time
}

// Translation is the outcome of a translation that detected its source language.
type Translation struct {
	Source    LanguageDetection
	Target    string
	SessionID uuid.UUID
	Result    InvocationResult
}
