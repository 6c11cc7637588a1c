// Package github provides a minimal GitHub REST API client for fetching
// pull-request metadata and per-file patches, and for posting the finished
// summary report back as a PR comment.
//
// It detects the current repository from the local git remote and
// authenticates with the GITHUB_TOKEN environment variable. Unauthenticated
// use works for public repositories at GitHub's lower rate limit.
package github
