package modelrunner

import "strings"

// ChatRequest is an OpenAI-compatible chat completions request
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
}

// ChatMessage is an OpenAI-compatible message
type ChatMessage struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content,omitempty" yaml:"content"`
}

// ChatResponse is an OpenAI-compatible response
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage"`
}

// Choice represents a completion choice
type Choice struct {
	Index        int     `json:"index"`
	FinishReason string  `json:"finish_reason"`
	Message      Message `json:"message"`
}

// Message represents the assistant message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Model is a model stored by the model runner.
type Model struct {
	ID      string   `json:"id"`
	Tags    []string `json:"tags"`
	Created int64    `json:"created"`
}

// Matches reports whether the model is known under name, with or without
// the implicit "latest" tag.
func (m Model) Matches(name string) bool {
	want := withDefaultTag(name)
	for _, tag := range m.Tags {
		if withDefaultTag(tag) == want {
			return true
		}
	}
	return m.ID == name
}

func withDefaultTag(name string) string {
	if i := strings.LastIndex(name, ":"); i > strings.LastIndex(name, "/") {
		return name
	}
	return name + ":latest"
}

// PullRequest is the body of a model pull.
type PullRequest struct {
	From string `json:"from"`
}

// PullProgressType is the type of a pull progress line.
type PullProgressType string

const (
	PullProgressType_Progress PullProgressType = "progress"
	PullProgressType_Success  PullProgressType = "success"
	PullProgressType_Error    PullProgressType = "error"
)

// PullProgress is one JSON line of a model pull.
type PullProgress struct {
	Type    PullProgressType `json:"type"`
	Message string           `json:"message"`
	Total   int64            `json:"total"`
	Pulled  int64            `json:"pulled"`
}

// UnloadRequest is the body of an engine unload.
type UnloadRequest struct {
	Models []string `json:"models"`
}
