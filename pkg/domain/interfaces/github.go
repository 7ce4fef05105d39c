package interfaces

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// ListOpenPullRequests lists open pull requests whose head matches "owner:branch".
	// Only the first page is returned.
	ListOpenPullRequests(ctx context.Context, owner, repo, head string) ([]*github.PullRequest, error)

	// UpdatePullRequestBody replaces the body of a pull request
	UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) (*github.PullRequest, error)
}
