// Package config loads and merges specsum configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (SPECSUM_PROVIDER, SPECSUM_MODEL, etc.)
//  3. Config file ($XDG_CONFIG_HOME/specsum/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config]. When specCache is unset it is
// derived from specPath by swapping the extension for .txt, mirroring the
// side-by-side PDF/TXT layout the tool expects.
package config
