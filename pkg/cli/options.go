package cli

import (
	"io"
	"os"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
)

// options holds the writers and clients Run uses. Nil clients are built from configuration.
type options struct {
	stdout       io.Writer
	stderr       io.Writer
	gitClient    interfaces.GitClient
	llmClient    gollem.LLMClient
	githubClient interfaces.GitHubClient
}

// Option is a functional option for Run
type Option func(*options)

// WithStdout sets where the success line is written
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithStderr sets where logs and the error line are written
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// WithGitClient replaces the git executable backed client
func WithGitClient(client interfaces.GitClient) Option {
	return func(o *options) {
		o.gitClient = client
	}
}

// WithLLMClient replaces the OpenAI client
func WithLLMClient(client gollem.LLMClient) Option {
	return func(o *options) {
		o.llmClient = client
	}
}

// WithGitHubClient replaces the GitHub API client
func WithGitHubClient(client interfaces.GitHubClient) Option {
	return func(o *options) {
		o.githubClient = client
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
