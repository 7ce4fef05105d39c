package usecase

import (
	"context"
	_ "embed"
	"text/template"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
	"github.com/m-mizutani/prdesc/pkg/domain/model"
)

//go:embed prompts/pr_description_user.md
var userPromptTemplate string

type prDescription struct {
	gitClient    interfaces.GitClient
	llmClient    gollem.LLMClient
	githubClient interfaces.GitHubClient
	userTemplate *template.Template
}

// NewPRDescription creates a new PRDescriptionUseCase instance
func NewPRDescription(
	gitClient interfaces.GitClient,
	llmClient gollem.LLMClient,
	githubClient interfaces.GitHubClient,
) (interfaces.PRDescriptionUseCase, error) {
	tmpl, err := template.New("user").Parse(userPromptTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse user prompt template")
	}

	return &prDescription{
		gitClient:    gitClient,
		llmClient:    llmClient,
		githubClient: githubClient,
		userTemplate: tmpl,
	}, nil
}

// Run inspects the branch, generates a description and writes it to the pull request.
// The first failing step ends the run and its error is returned unchanged.
func (uc *prDescription) Run(ctx context.Context) (*model.UpdateResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Inspecting branch")
	branch, err := uc.GetBranchInformation(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Generating PR description",
		"branch", branch.CurrentBranch,
		"diff_bytes", len(branch.Diff),
	)
	description, err := uc.GeneratePRDescription(ctx, branch.Commits, branch.Diff)
	if err != nil {
		return nil, err
	}

	logger.Info("Updating pull request", "branch", branch.CurrentBranch)
	result, err := uc.UpdatePullRequest(ctx, branch.CurrentBranch, description)
	if err != nil {
		return nil, err
	}

	return result, nil
}
