// Package summarize runs the per-file review summarization loop.
//
// For each changed file with a non-empty patch it extracts keywords from the
// patch, asks the spec index for the best-matching section, builds a prompt
// containing the patch and a short excerpt of that section, and calls the
// configured LLM provider. Results are cached keyed by provider, model,
// file, patch, and section so identical re-runs are free.
//
// Files with empty patches (binary or oversized on GitHub's side) are
// skipped, as are redact-path matches and, with codeOnly set, files without
// a recognized code extension.
package summarize
