package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/types"
)

// Repository identifies a GitHub repository
type Repository struct {
	Owner string
	Repo  string
}

// String returns "owner/repo"
func (r Repository) String() string {
	return r.Owner + "/" + r.Repo
}

// Head builds the "owner:branch" filter used when listing pull requests
func (r Repository) Head(branch string) string {
	return r.Owner + ":" + branch
}

var remoteURLPattern = regexp.MustCompile(`^(?:https://github\.com/|git@github\.com:)([^/\s]+)/([^/\s]+?)(?:\.git)?$`)

// ParseRemoteURL extracts owner and repo from an https or scp-style github.com remote URL
func ParseRemoteURL(remoteURL string) (*Repository, error) {
	trimmed := strings.TrimSpace(remoteURL)

	match := remoteURLPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return nil, goerr.New("could not determine the repository from the remote origin URL",
			goerr.T(types.ErrTagRemoteResolution),
			goerr.V("remote_url", trimmed),
		)
	}

	return &Repository{
		Owner: match[1],
		Repo:  match[2],
	}, nil
}
