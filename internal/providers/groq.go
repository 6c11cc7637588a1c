package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultGroqAPIURL = "https://api.groq.com/openai/v1/chat/completions"

// Groq implements the Summarizer interface for Groq's OpenAI-compatible API.
type Groq struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

// NewGroq creates a new Groq provider. Requires GROQ_API_KEY env var.
func NewGroq(model string) (*Groq, error) {
	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		return nil, &authError{message: "GROQ_API_KEY environment variable is not set"}
	}
	apiURL := os.Getenv("GROQ_API_URL")
	if apiURL == "" {
		apiURL = defaultGroqAPIURL
	}
	return &Groq{
		apiKey: key,
		model:  model,
		apiURL: apiURL,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (g *Groq) Name() string { return "groq" }

func (g *Groq) Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 800
	}

	body := chatRequest{
		Model:       g.model,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("marshaling request: %w", err)
	}

	var resp SummaryResponse
	err = retryWithBackoff(ctx, 3, func() error {
		httpReq, err := http.NewRequestWithContext(ctx, "POST", g.apiURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

		httpResp, err := g.client.Do(httpReq)
		if err != nil {
			return fmt.Errorf("sending request: %w", err)
		}
		defer httpResp.Body.Close()

		respBody, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}

		if httpResp.StatusCode == 429 {
			return &rateLimitError{}
		}
		if httpResp.StatusCode == 401 || httpResp.StatusCode == 403 {
			return &authError{message: string(respBody)}
		}
		if httpResp.StatusCode != 200 {
			return fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
		}

		var result chatResponse
		if err := json.Unmarshal(respBody, &result); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
		if len(result.Choices) == 0 {
			return fmt.Errorf("empty response: no choices")
		}

		resp = SummaryResponse{
			Content:    result.Choices[0].Message.Content,
			TokensUsed: result.Usage.TotalTokens,
		}
		return nil
	})

	return resp, err
}

// chatRequest/chatResponse are the OpenAI-compatible chat completion shapes,
// shared by the Groq and Ollama providers.
type chatRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	TotalTokens int `json:"total_tokens"`
}
