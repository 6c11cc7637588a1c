// Package cache provides a file-based cache for per-file LLM summaries.
//
// Entries are keyed by a SHA-256 hash of the provider, model, filename,
// redacted patch, and matched spec section reference, so re-running the same
// PR does not re-bill the LLM while any input change invalidates the entry
// naturally. Each entry stores the raw summary string with a creation
// timestamp and TTL; expired entries are skipped on read.
//
// This is distinct from the spec text cache, which is a flat memoized
// extraction owned by the specdoc package.
package cache
