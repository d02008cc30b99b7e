// Package git provides a wrapper for the git operations agentmux needs,
// executed via subprocess.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// GitError wraps a git command failure with its captured output.
type GitError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s: %s", e.Command, msg)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// Git runs git commands in a fixed working directory.
type Git struct {
	workDir string
}

// NewGit creates a Git wrapper rooted at workDir.
func NewGit(workDir string) *Git {
	return &Git{workDir: workDir}
}

// run executes a git command and returns trimmed stdout.
func (g *Git) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &GitError{
			Command: args[0],
			Args:    args,
			Stdout:  stdout.String(),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}
	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo reports whether the working directory is inside a git repository.
func (g *Git) IsRepo() bool {
	_, err := g.run("rev-parse", "--git-dir")
	return err == nil
}

// RepoRoot returns the absolute path of the repository's top-level directory.
func (g *Git) RepoRoot() (string, error) {
	return g.run("rev-parse", "--show-toplevel")
}

// CurrentBranch returns the checked-out branch, or "" on a detached HEAD.
func (g *Git) CurrentBranch() (string, error) {
	return g.run("branch", "--show-current")
}

// BranchExists checks whether a local branch exists.
func (g *Git) BranchExists(branch string) (bool, error) {
	_, err := g.run("show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		var gitErr *GitError
		if errors.As(err, &gitErr) && strings.Contains(gitErr.Err.Error(), "exit status 1") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateBranch creates a local branch at the current HEAD without
// switching to it.
func (g *Git) CreateBranch(branch string) error {
	_, err := g.run("branch", branch)
	return err
}

// Checkout switches the main checkout to the given branch.
func (g *Git) Checkout(branch string) error {
	_, err := g.run("checkout", branch)
	return err
}

// WorktreeAdd creates a worktree at path checked out to an existing branch.
func (g *Git) WorktreeAdd(path, branch string) error {
	_, err := g.run("worktree", "add", path, branch)
	return err
}

// WorktreeRemove removes a worktree registration and its directory.
// With force, local modifications in the worktree are discarded.
func (g *Git) WorktreeRemove(path string, force bool) error {
	args := []string{"worktree", "remove", path}
	if force {
		args = append(args, "--force")
	}
	_, err := g.run(args...)
	return err
}

// WorktreePrune drops stale worktree bookkeeping.
func (g *Git) WorktreePrune() error {
	_, err := g.run("worktree", "prune")
	return err
}
