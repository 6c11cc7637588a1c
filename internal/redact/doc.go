// Package redact strips secret-looking values from patch text before it is
// sent to an LLM provider.
//
// Detection is regex-heuristic: API keys, cloud credentials, bearer tokens,
// JWTs, private key headers, and generic secret assignments are replaced with
// a [REDACTED] placeholder. [ShouldRedactPath] additionally lets the engine
// skip whole files (e.g. **/.env) whose content should never leave the
// machine at all.
package redact
