package gitctx

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// FilePatch is one changed file with its unified-diff hunk text.
type FilePatch struct {
	Path  string
	Patch string
}

// RepoMeta contains git repository metadata.
type RepoMeta struct {
	Root   string
	Head   string
	Branch string
}

// GetRepoMeta collects repository metadata from git.
func GetRepoMeta() (RepoMeta, error) {
	root, err := gitOutput("rev-parse", "--show-toplevel")
	if err != nil {
		return RepoMeta{}, fmt.Errorf("not a git repository: %w", err)
	}
	head, err := gitOutput("rev-parse", "HEAD")
	if err != nil {
		head = "" // new repo with no commits
	}
	branch, err := gitOutput("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		branch = ""
	}
	return RepoMeta{
		Root:   strings.TrimSpace(root),
		Head:   strings.TrimSpace(head),
		Branch: strings.TrimSpace(branch),
	}, nil
}

// Unstaged returns per-file patches for working tree vs index.
func Unstaged(exclude []string) ([]FilePatch, error) {
	diff, err := gitOutput("diff")
	if err != nil {
		return nil, fmt.Errorf("git diff: %w", err)
	}
	return filterPatches(SplitByFile(diff), exclude), nil
}

// Staged returns per-file patches for index vs HEAD.
func Staged(exclude []string) ([]FilePatch, error) {
	diff, err := gitOutput("diff", "--cached")
	if err != nil {
		return nil, fmt.Errorf("git diff --cached: %w", err)
	}
	return filterPatches(SplitByFile(diff), exclude), nil
}

// SplitByFile splits a combined unified diff into per-file patches on
// "diff --git" boundaries. The path is taken from the "+++ b/" line, falling
// back to the "--- a/" line for deletions.
func SplitByFile(diff string) []FilePatch {
	if strings.TrimSpace(diff) == "" {
		return nil
	}

	var patches []FilePatch
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		section := current.String()
		if path := pathFromSection(section); path != "" {
			patches = append(patches, FilePatch{Path: path, Patch: section})
		}
		current.Reset()
	}

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "diff --git") {
			flush()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()

	return patches
}

func pathFromSection(section string) string {
	for _, line := range strings.Split(section, "\n") {
		if strings.HasPrefix(line, "+++ b/") {
			return strings.TrimPrefix(line, "+++ b/")
		}
	}
	for _, line := range strings.Split(section, "\n") {
		if strings.HasPrefix(line, "--- a/") {
			return strings.TrimPrefix(line, "--- a/")
		}
	}
	return ""
}

func filterPatches(patches []FilePatch, exclude []string) []FilePatch {
	if len(exclude) == 0 {
		return patches
	}
	var kept []FilePatch
	for _, p := range patches {
		if !MatchesAny(p.Path, exclude) {
			kept = append(kept, p)
		}
	}
	return kept
}

// MatchesAny returns true if the path matches any of the given glob patterns.
func MatchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, path)
		if err == nil && matched {
			return true
		}
		clean := strings.TrimPrefix(pattern, "**/")
		if clean != pattern {
			if matched, err := filepath.Match(clean, filepath.Base(path)); err == nil && matched {
				return true
			}
			if matched, err := filepath.Match(clean, path); err == nil && matched {
				return true
			}
		}
	}
	return false
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
