package interfaces

import "context"

// GitClient defines the read-only git queries needed to describe a branch.
// Implementations return the raw text git prints; callers decide what empty means.
type GitClient interface {
	// CurrentBranch returns the name of the checked-out branch
	CurrentBranch(ctx context.Context) (string, error)

	// MergeBase returns the best common ancestor of two refs
	MergeBase(ctx context.Context, a, b string) (string, error)

	// Log returns "<short-hash> <subject>" lines for commits in base..head
	Log(ctx context.Context, base, head string) (string, error)

	// Diff returns the unified diff for base..head
	Diff(ctx context.Context, base, head string) (string, error)

	// RemoteURL returns the URL of the origin remote
	RemoteURL(ctx context.Context) (string, error)
}
