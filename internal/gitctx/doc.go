// Package gitctx gathers local git changes as per-file unified-diff patches.
//
// It shells out to git for unstaged (working tree vs index) and staged
// (index vs HEAD) diffs and splits the combined output into one patch per
// file, the unit the summarization engine works on. Exclude globs filter
// files before any patch text is handed to an LLM.
package gitctx
