package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
	githubinfra "github.com/m-mizutani/prdesc/pkg/infra/github"
)

// EnvGitHubToken is the only place the GitHub credential is read from
const EnvGitHubToken = "GITHUB_TOKEN"

// GitHub holds GitHub configuration
type GitHub struct {
	Token string `masq:"secret"`
}

// LoadEnv reads the token from the environment. It is never taken from argv.
func (c *GitHub) LoadEnv() {
	c.Token = os.Getenv(EnvGitHubToken)
}

// Validate checks that the credential is present
func (c *GitHub) Validate() error {
	if c.Token == "" {
		return goerr.New("the required "+EnvGitHubToken+" environment variable is not set",
			goerr.T(types.ErrTagConfiguration),
		)
	}
	return nil
}

// NewClient creates a GitHub API client authenticated with the token
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return githubinfra.NewClient(c.Token)
}
