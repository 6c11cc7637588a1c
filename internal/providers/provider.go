package providers

import (
	"context"
	"fmt"
)

// SummaryRequest contains the data sent to an LLM for one file summary.
type SummaryRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// SummaryResponse contains the raw response from an LLM.
type SummaryResponse struct {
	Content    string
	TokensUsed int
}

// Summarizer is the provider abstraction interface.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
	Name() string
}

// New creates a provider by name.
func New(provider, model string) (Summarizer, error) {
	switch provider {
	case "groq":
		return NewGroq(model)
	case "anthropic":
		return NewAnthropic(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
