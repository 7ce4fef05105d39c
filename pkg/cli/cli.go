package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/cli/config"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
	gitinfra "github.com/m-mizutani/prdesc/pkg/infra/git"
	"github.com/m-mizutani/prdesc/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application and returns the process exit code.
// Any failure is written once to stderr as "Error: <message>".
func Run(ctx context.Context, args []string, opts ...Option) int {
	o := newOptions(opts...)

	if err := run(ctx, args, o); err != nil {
		color.New(color.FgRed).Fprint(o.stderr, "Error:")
		fmt.Fprintln(o.stderr, "", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, args []string, o *options) error {
	// .env only fills variables that are not already set
	_ = godotenv.Load()

	var (
		loggerCfg config.Logger
		openaiCfg config.OpenAI
		githubCfg config.GitHub
	)

	app := &cli.Command{
		Name:      "prdesc",
		Usage:     "Generate a pull request description for the current branch and update the open PR",
		Version:   types.Version,
		Flags:     loggerCfg.Flags(),
		Writer:    o.stdout,
		ErrWriter: o.stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure(o.stderr)
			if err != nil {
				return nil, err
			}
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			openaiCfg.LoadEnv()
			githubCfg.LoadEnv()

			if err := openaiCfg.Validate(); err != nil {
				return nil, err
			}
			if err := githubCfg.Validate(); err != nil {
				return nil, err
			}

			logger.Debug("Configuration loaded",
				slog.Any("openai", openaiCfg),
				slog.Any("github", githubCfg),
				slog.String("model", types.DefaultOpenAIModel),
			)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			gitClient := o.gitClient
			if gitClient == nil {
				gitClient = gitinfra.NewClient("")
			}

			llmClient := o.llmClient
			if llmClient == nil {
				client, err := openaiCfg.NewClient(ctx)
				if err != nil {
					return err
				}
				llmClient = client
			}

			githubClient := o.githubClient
			if githubClient == nil {
				client, err := githubCfg.NewClient()
				if err != nil {
					return err
				}
				githubClient = client
			}

			uc, err := usecase.NewPRDescription(gitClient, llmClient, githubClient)
			if err != nil {
				return goerr.Wrap(err, "failed to create use case")
			}

			result, err := uc.Run(ctx)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(o.stdout,
				"PR description updated successfully for PR #%d.\n", result.Number)
			return nil
		},
	}

	return app.Run(ctx, args)
}
