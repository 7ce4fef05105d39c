package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify every failure that can abort a run. All of them are fatal.
var (
	// ErrTagConfiguration is a missing credential or an invalid ambient setting
	ErrTagConfiguration = goerr.NewTag("configuration")

	// ErrTagBranchResolution is an empty branch, commit list or diff
	ErrTagBranchResolution = goerr.NewTag("branch_resolution")

	// ErrTagGeneration is a completion response without usable text
	ErrTagGeneration = goerr.NewTag("generation")

	// ErrTagRemoteResolution is a remote URL that is not a github.com repository
	ErrTagRemoteResolution = goerr.NewTag("remote_resolution")

	// ErrTagNoMatchingPullRequest means no open pull request has the branch as head
	ErrTagNoMatchingPullRequest = goerr.NewTag("no_matching_pull_request")
)
