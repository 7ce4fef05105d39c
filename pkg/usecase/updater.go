package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/model"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

// UpdatePullRequest overwrites the body of the open pull request whose head is branch.
// Only existing pull requests are updated; none is ever created.
func (uc *prDescription) UpdatePullRequest(ctx context.Context, branch, description string) (*model.UpdateResult, error) {
	logger := ctxlog.From(ctx)

	remoteURL, err := uc.gitClient.RemoteURL(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "could not determine the repository from the remote origin URL", goerr.T(types.ErrTagRemoteResolution))
	}

	repo, err := model.ParseRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	head := repo.Head(branch)
	prs, err := uc.githubClient.ListOpenPullRequests(ctx, repo.Owner, repo.Repo, head)
	if err != nil {
		return nil, err
	}

	if len(prs) == 0 {
		return nil, goerr.New("no open PRs found for branch: "+branch,
			goerr.T(types.ErrTagNoMatchingPullRequest),
			goerr.V("repository", repo.String()),
			goerr.V("head", head),
		)
	}

	// Several open PRs sharing a head is not expected; the first one returned wins
	if len(prs) > 1 {
		logger.Warn("Multiple open pull requests match the branch, updating the first",
			"head", head,
			"count", len(prs),
		)
	}

	number := prs[0].GetNumber()

	updated, err := uc.githubClient.UpdatePullRequestBody(ctx, repo.Owner, repo.Repo, number, description)
	if err != nil {
		return nil, err
	}

	result := &model.UpdateResult{
		Owner:  repo.Owner,
		Repo:   repo.Repo,
		Number: number,
		URL:    prs[0].GetHTMLURL(),
	}
	if updated.GetHTMLURL() != "" {
		result.URL = updated.GetHTMLURL()
	}

	logger.Info("Updated pull request description",
		"repository", repo.String(),
		"number", number,
		"url", result.URL,
	)

	return result, nil
}
