// Package specdoc loads and indexes the reference specification document.
//
// The specification arrives as a linearized plain-text dump (extracted once
// from the source PDF and memoized in a flat UTF-8 cache file). [Build] parses
// that text into an ordered sequence of numbered, titled sections, and
// [Index.FindBestSection] scores sections against a keyword set — substring
// containment, header hits weighted 3x over body hits — to pick the single
// most relevant section for a code change.
//
// Header detection is intentionally permissive: any trimmed line of the form
// "N[.N]* title" (with an optional "Section" prefix) opens a new section, so
// body text that happens to start with a number-and-space pattern will
// truncate the preceding section and start a spurious one. This is a known
// limitation of the source document's formatting, accepted rather than
// patched with heuristics.
package specdoc
