// Package agent implements the per-branch agent lifecycle: a git worktree
// paired with a tmux session, reconstructed on every invocation from git
// and tmux state.
package agent

import (
	"fmt"
	"strings"
)

// sessionNamespace prefixes every tmux session created by this tool.
const sessionNamespace = "agent"

// Sanitize turns a branch name into the identifier used for both the
// worktree directory and the session name. Slashes become hyphens and dots
// become underscores so the result is safe as a path component and as a
// tmux target. The mapping is lossy: distinct branches can collapse to the
// same identifier, in which case they share a worktree and session.
func Sanitize(branch string) string {
	s := strings.ReplaceAll(branch, "/", "-")
	return strings.ReplaceAll(s, ".", "_")
}

// SessionName returns the tmux session name for an agent.
func SessionName(repo, id string) string {
	return fmt.Sprintf("%s-%s-%s", sessionNamespace, repo, id)
}

// SessionPrefix returns the prefix shared by all agent sessions of a repo.
func SessionPrefix(repo string) string {
	return fmt.Sprintf("%s-%s-", sessionNamespace, repo)
}
