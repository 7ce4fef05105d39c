package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
)

type client struct {
	githubClient *github.Client
}

type config struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for the GitHub client
type Option func(*config)

// WithBaseURL points the client at another API endpoint, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new GitHub client authenticated with a personal access token
func NewClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient).WithAuthToken(token)

	if cfg.baseURL != "" {
		baseURL := cfg.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse GitHub API base URL", goerr.V("base_url", cfg.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// ListOpenPullRequests lists open pull requests filtered by head ("owner:branch")
func (c *client) ListOpenPullRequests(ctx context.Context, owner, repo, head string) ([]*github.PullRequest, error) {
	prs, _, err := c.githubClient.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		State: "open",
		Head:  head,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("head", head),
		)
	}

	return prs, nil
}

// UpdatePullRequestBody replaces the body of a pull request. Other fields are left untouched.
func (c *client) UpdatePullRequestBody(ctx context.Context, owner, repo string, number int, body string) (*github.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Edit(ctx, owner, repo, number, &github.PullRequest{
		Body: github.Ptr(body),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update pull request",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", number),
		)
	}

	return pr, nil
}
