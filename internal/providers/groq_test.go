package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGroq(serverURL string) *Groq {
	return &Groq{
		apiKey: "gsk_test",
		model:  "llama3-8b-8192",
		apiURL: serverURL,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGroqSummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer gsk_test" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Model != "llama3-8b-8192" {
			t.Errorf("model = %q", req.Model)
		}
		if req.MaxTokens != 800 {
			t.Errorf("max_tokens = %d, want default 800", req.MaxTokens)
		}
		if req.Temperature != 0.4 {
			t.Errorf("temperature = %v, want 0.4", req.Temperature)
		}
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []chatChoice{{Message: chatMessage{Role: "assistant", Content: "The patch adds a barrier."}}},
			Usage:   chatUsage{TotalTokens: 123},
		})
	}))
	defer server.Close()

	resp, err := newTestGroq(server.URL).Summarize(context.Background(), SummaryRequest{
		Prompt:      "summarize this",
		Temperature: 0.4,
	})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if resp.Content != "The patch adds a barrier." {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TokensUsed != 123 {
		t.Errorf("TokensUsed = %d", resp.TokensUsed)
	}
}

func TestGroqSummarize_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"invalid key"}`))
	}))
	defer server.Close()

	_, err := newTestGroq(server.URL).Summarize(context.Background(), SummaryRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsAuthError(err) {
		t.Errorf("IsAuthError(%v) = false, want true", err)
	}
}

func TestGroqSummarize_RetriesRateLimit(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(429)
			return
		}
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []chatChoice{{Message: chatMessage{Content: "ok"}}},
		})
	}))
	defer server.Close()

	resp, err := newTestGroq(server.URL).Summarize(context.Background(), SummaryRequest{Prompt: "x"})
	if err != nil {
		t.Fatalf("Summarize error after retry: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("Content = %q", resp.Content)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	if _, err := New("bogus", "model"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewGroq_MissingKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	_, err := NewGroq("llama3-8b-8192")
	if err == nil {
		t.Fatal("expected error without GROQ_API_KEY")
	}
	if !IsAuthError(err) {
		t.Errorf("missing key should be an auth error, got %v", err)
	}
}
