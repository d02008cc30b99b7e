package agent

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/agentmux/agentmux/internal/git"
)

// worktreeDirSuffix is appended to the repo name to form the sibling
// directory holding all agent worktrees.
const worktreeDirSuffix = "_agent_worktrees"

// ErrNotARepository means the working directory is not inside a git repo.
var ErrNotARepository = errors.New("not inside a git repository")

// Workspace locates a repository and the agent locations derived from it.
type Workspace struct {
	RepoRoot     string
	RepoName     string
	WorktreeBase string
}

// ResolveWorkspace derives the workspace from the repository containing dir.
func ResolveWorkspace(dir string) (*Workspace, error) {
	root, err := git.NewGit(dir).RepoRoot()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, dir)
	}
	return NewWorkspace(root), nil
}

// NewWorkspace builds a workspace for a known repository root.
func NewWorkspace(repoRoot string) *Workspace {
	name := filepath.Base(repoRoot)
	return &Workspace{
		RepoRoot:     repoRoot,
		RepoName:     name,
		WorktreeBase: filepath.Join(filepath.Dir(repoRoot), name+worktreeDirSuffix),
	}
}

// WorktreePath returns the worktree directory for a sanitized identifier.
func (w *Workspace) WorktreePath(id string) string {
	return filepath.Join(w.WorktreeBase, id)
}

// SessionName returns the session name for a sanitized identifier.
func (w *Workspace) SessionName(id string) string {
	return SessionName(w.RepoName, id)
}

// SessionPrefix returns the session prefix for this repo's agents.
func (w *Workspace) SessionPrefix() string {
	return SessionPrefix(w.RepoName)
}
