// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/chunkview"
)

// Compile-time interface verification.
var _ chunkview.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Diff returns the diff between rev and the working tree. Paths in the
// diff are relative to the repository root.
func (r *Runner) Diff(ctx context.Context, repoPath, rev string) (string, error) {
	return r.run(ctx, "diff", repoPath, "diff", "--no-color", "--no-ext-diff", rev, "--")
}

// Root returns the top-level directory of the repository containing
// repoPath.
func (r *Runner) Root(ctx context.Context, repoPath string) (string, error) {
	out, err := r.run(ctx, "rev-parse", repoPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (r *Runner) run(ctx context.Context, name, repoPath string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoPath}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git %s failed: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s failed: %w", name, err)
	}
	return string(output), nil
}
