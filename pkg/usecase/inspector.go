package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/model"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

// GetBranchInformation collects the current branch, its commits and its diff relative to main
func (uc *prDescription) GetBranchInformation(ctx context.Context) (*model.BranchContext, error) {
	logger := ctxlog.From(ctx)

	currentBranch, err := uc.gitClient.CurrentBranch(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to determine the current git branch", goerr.T(types.ErrTagBranchResolution))
	}
	if currentBranch == "" {
		return nil, goerr.New("failed to determine the current git branch", goerr.T(types.ErrTagBranchResolution))
	}

	mergeBase, err := uc.gitClient.MergeBase(ctx, currentBranch, types.BaseBranch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find merge base with "+types.BaseBranch,
			goerr.T(types.ErrTagBranchResolution),
			goerr.V("branch", currentBranch),
		)
	}

	logger.Debug("Resolved merge base",
		"branch", currentBranch,
		"base_branch", types.BaseBranch,
		"merge_base", mergeBase,
	)

	commits, err := uc.gitClient.Log(ctx, mergeBase, currentBranch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.T(types.ErrTagBranchResolution), goerr.V("branch", currentBranch))
	}
	if commits == "" {
		return nil, goerr.New("no commit history found for this branch", goerr.T(types.ErrTagBranchResolution), goerr.V("branch", currentBranch))
	}

	diff, err := uc.gitClient.Diff(ctx, mergeBase, currentBranch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute diff", goerr.T(types.ErrTagBranchResolution), goerr.V("branch", currentBranch))
	}
	if diff == "" {
		return nil, goerr.New("no diff found for this branch", goerr.T(types.ErrTagBranchResolution), goerr.V("branch", currentBranch))
	}

	return &model.BranchContext{
		CurrentBranch: currentBranch,
		Commits:       commits,
		Diff:          diff,
	}, nil
}
