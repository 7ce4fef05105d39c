package interfaces

import (
	"context"

	"github.com/m-mizutani/prdesc/pkg/domain/model"
)

// PRDescriptionUseCase drafts a pull request description for the current branch and publishes it
type PRDescriptionUseCase interface {
	// GetBranchInformation collects branch name, commits and diff relative to main
	GetBranchInformation(ctx context.Context) (*model.BranchContext, error)

	// GeneratePRDescription asks the LLM for a markdown description
	GeneratePRDescription(ctx context.Context, commits, diff string) (string, error)

	// UpdatePullRequest overwrites the body of the open pull request for branch
	UpdatePullRequest(ctx context.Context, branch, description string) (*model.UpdateResult, error)

	// Run executes inspect, generate and update in order
	Run(ctx context.Context) (*model.UpdateResult, error)
}
