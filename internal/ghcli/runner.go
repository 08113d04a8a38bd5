// Package ghcli drives the GitHub CLI (gh) as a subprocess. Draft release
// management goes through gh so the tool rides on the operator's existing
// gh authentication instead of requiring a token.
package ghcli

import (
	"context"
	goerrors "errors"
	"os/exec"
	"strings"

	"releasecraft/internal/errors"
)

// Runner abstracts gh invocation for testing.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

type execRunner struct {
	bin string
}

func (r *execRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.bin, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if goerrors.Is(err, exec.ErrNotFound) {
			return "", errors.ErrGHNotFound.WithError(err)
		}
		return "", errors.ErrGHCommand.WithError(err).
			WithContext("args", strings.Join(args, " ")).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Client wraps the gh operations this tool needs.
type Client struct {
	runner Runner
}

func NewClient() *Client {
	return &Client{runner: &execRunner{bin: "gh"}}
}

// NewClientWithRunner is for tests.
func NewClientWithRunner(runner Runner) *Client {
	return &Client{runner: runner}
}

// CheckAuth verifies gh is installed and authenticated. Called once before
// any release operation.
func (c *Client) CheckAuth(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "auth", "status"); err != nil {
		var appErr *errors.AppError
		if goerrors.As(err, &appErr) && appErr.Type == errors.TypeVCS && goerrors.Is(appErr.Err, exec.ErrNotFound) {
			return err
		}
		return errors.ErrGHNotAuthenticated.WithError(err)
	}
	return nil
}
