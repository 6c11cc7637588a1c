// Package providers implements the Summarizer interface for each supported
// LLM provider.
//
// Supported providers: Groq (OpenAI-compatible chat completions, the
// default), Anthropic (Claude), and Ollama / LM Studio for local models.
//
// All providers share a common retry helper with exponential back-off on
// rate limits. Clients are plain structs over net/http so tests can point
// them at local httptest servers. Use [New] to obtain a Summarizer by
// provider name and model string.
package providers
