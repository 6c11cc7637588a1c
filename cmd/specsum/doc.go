// Specsum is a spec-aware CLI for summarizing pull-request reviews with LLM
// providers.
//
// It fetches a PR's changed files (or a local diff), matches each patch
// against the project's specification document via keyword scoring, and asks
// an LLM for a reviewer-friendly summary that cites the relevant spec
// section.
//
// Usage:
//
//	specsum pr 42                     # summarize a pull request
//	specsum pr 42 --post              # post the summary as a PR comment
//	specsum local                     # summarize working tree changes
//	specsum local --staged            # summarize staged changes
//	specsum spec sections             # list indexed spec sections
//	specsum spec match "omp barrier"  # preview section matching
//
// See https://github.com/mkbv/specsum for full documentation.
package main
