package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/prdesc/pkg/domain/interfaces"
)

type client struct {
	dir string
}

// NewClient creates a git client that runs queries in dir. An empty dir means the current directory.
func NewClient(dir string) interfaces.GitClient {
	return &client{dir: dir}
}

// CurrentBranch returns the checked-out branch. It is empty on a detached HEAD.
func (c *client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// MergeBase returns the best common ancestor commit of a and b
func (c *client) MergeBase(ctx context.Context, a, b string) (string, error) {
	out, err := c.run(ctx, "merge-base", a, b)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Log returns one "<short-hash> <subject>" line per commit in base..head, in git's order
func (c *client) Log(ctx context.Context, base, head string) (string, error) {
	return c.run(ctx, "log", base+".."+head, "--pretty=format:%h %s")
}

// Diff returns the unified diff of base..head without any post-processing
func (c *client) Diff(ctx context.Context, base, head string) (string, error) {
	return c.run(ctx, "diff", base+".."+head)
}

// RemoteURL returns the configured URL of the origin remote
func (c *client) RemoteURL(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// run executes git and returns stdout as-is
func (c *client) run(ctx context.Context, args ...string) (string, error) {
	logger := ctxlog.From(ctx)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Running git command", "args", args, "dir", c.dir)

	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(err, "git command failed",
			goerr.V("args", args),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.String(), nil
}
