// Package cli wires together the Cobra command tree for the specsum binary.
//
// It defines the root command and all subcommands (pr, local, spec, config,
// models, cache, version), binds flags, reads configuration, loads the spec
// index, invokes the summarization engine, and returns deterministic exit
// codes for CI gating.
package cli
