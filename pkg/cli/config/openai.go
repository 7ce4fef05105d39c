package config

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

// EnvOpenAIAPIKey is the only place the OpenAI credential is read from
const EnvOpenAIAPIKey = "OPENAI_API_KEY"

// OpenAI holds OpenAI LLM configuration
type OpenAI struct {
	APIKey string `masq:"secret"`
}

// LoadEnv reads the credential from the environment. It is never taken from argv.
func (c *OpenAI) LoadEnv() {
	c.APIKey = os.Getenv(EnvOpenAIAPIKey)
}

// Validate checks that the credential is present
func (c *OpenAI) Validate() error {
	if c.APIKey == "" {
		return goerr.New("the required "+EnvOpenAIAPIKey+" environment variable is not set",
			goerr.T(types.ErrTagConfiguration),
		)
	}
	return nil
}

// NewClient creates an LLM client with the fixed model and sampling settings for description generation
func (c *OpenAI) NewClient(ctx context.Context) (gollem.LLMClient, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(ctx, c.APIKey,
		openai.WithModel(types.DefaultOpenAIModel),
		openai.WithTemperature(types.GenerationTemperature),
		openai.WithMaxTokens(types.GenerationMaxTokens),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client", goerr.V("model", types.DefaultOpenAIModel))
	}

	return client, nil
}
