package agent

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/agentmux/agentmux/internal/config"
	"github.com/agentmux/agentmux/internal/tmux"
)

// Common errors
var (
	ErrNoBranch           = errors.New("no branch to run on")
	ErrProtectedBranch    = errors.New("branch is protected")
	ErrBranchNameRequired = errors.New("branch name required with --new")
	ErrBranchExists       = errors.New("branch already exists")
	ErrBranchNotFound     = errors.New("branch not found")
)

// GitClient is the slice of git operations the manager needs.
type GitClient interface {
	CurrentBranch() (string, error)
	BranchExists(branch string) (bool, error)
	CreateBranch(branch string) error
	Checkout(branch string) error
	WorktreeAdd(path, branch string) error
	WorktreeRemove(path string, force bool) error
	WorktreePrune() error
}

// TmuxClient is the slice of tmux operations the manager needs.
type TmuxClient interface {
	HasSession(name string) (bool, error)
	NewSession(name, workDir string) error
	SendKeys(session, text string) error
	ListSessions() ([]string, error)
	KillSession(name string) error
	SwitchClient(name string) error
	AttachSession(name string) error
}

// Manager drives the agent lifecycle for one repository. It keeps no state
// of its own; every call derives the current picture from git and tmux.
type Manager struct {
	ws   *Workspace
	git  GitClient
	tmux TmuxClient
	cfg  *config.Config
	out  io.Writer

	// isTTY and insideTmux are swappable in tests.
	isTTY      func() bool
	insideTmux func() bool
}

// NewManager creates a manager for a workspace.
func NewManager(ws *Workspace, g GitClient, t TmuxClient, cfg *config.Config) *Manager {
	return &Manager{
		ws:   ws,
		git:  g,
		tmux: t,
		cfg:  cfg,
		out:  os.Stdout,
		isTTY: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		insideTmux: tmux.InsideTmux,
	}
}

// Workspace returns the manager's workspace.
func (m *Manager) Workspace() *Workspace {
	return m.ws
}

// RunOptions control Run.
type RunOptions struct {
	// Branch to run on. Empty means the currently checked-out branch.
	Branch string
	// New creates the branch before starting the agent. Requires an
	// explicit branch name.
	New bool
}

// Run starts (or resumes) the agent for a branch and attaches to it.
// Running it twice for the same branch is a no-op apart from the attach.
func (m *Manager) Run(opts RunOptions) error {
	branch, err := m.resolveBranch(opts)
	if err != nil {
		return err
	}

	id := Sanitize(branch)
	wtPath := m.ws.WorktreePath(id)
	if err := m.ensureWorktree(branch, wtPath); err != nil {
		return err
	}

	session := m.ws.SessionName(id)
	if err := m.ensureSession(session, wtPath); err != nil {
		return err
	}

	return m.attach(session)
}

// resolveBranch validates the target branch and prepares the main checkout
// so the worktree add cannot collide with it.
func (m *Manager) resolveBranch(opts RunOptions) (string, error) {
	branch := opts.Branch
	if opts.New && branch == "" {
		return "", ErrBranchNameRequired
	}
	if branch == "" {
		current, err := m.git.CurrentBranch()
		if err != nil {
			return "", fmt.Errorf("reading current branch: %w", err)
		}
		if current == "" {
			return "", fmt.Errorf("%w: detached HEAD", ErrNoBranch)
		}
		branch = current
	}

	if m.cfg.IsProtected(branch) {
		return "", fmt.Errorf("%w: %s", ErrProtectedBranch, branch)
	}

	exists, err := m.git.BranchExists(branch)
	if err != nil {
		return "", fmt.Errorf("checking branch %s: %w", branch, err)
	}

	if opts.New {
		if exists {
			return "", fmt.Errorf("%w: %s", ErrBranchExists, branch)
		}
		if err := m.git.CreateBranch(branch); err != nil {
			return "", fmt.Errorf("creating branch %s: %w", branch, err)
		}
		fmt.Fprintf(m.out, "Created branch '%s'\n", branch)
		return branch, nil
	}

	if !exists {
		return "", fmt.Errorf("%w: %s", ErrBranchNotFound, branch)
	}

	// A branch checked out in the main worktree cannot also be checked
	// out in an agent worktree, so move the main checkout off it first.
	current, err := m.git.CurrentBranch()
	if err == nil && current == branch {
		fmt.Fprintf(m.out, "Branch '%s' is checked out here, switching to main\n", branch)
		if err := m.git.Checkout("main"); err != nil {
			return "", fmt.Errorf("checking out main: %w", err)
		}
	}
	return branch, nil
}

// ensureWorktree reuses an existing worktree directory or creates one.
// An existing directory is trusted by name; which branch it has checked
// out is not verified.
func (m *Manager) ensureWorktree(branch, path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(m.out, "Reusing existing worktree at %s\n", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating worktree base: %w", err)
	}
	if err := m.git.WorktreeAdd(path, branch); err != nil {
		return fmt.Errorf("creating worktree for %s: %w", branch, err)
	}
	fmt.Fprintf(m.out, "Created worktree at %s\n", path)
	return nil
}

// ensureSession reuses a running session or creates one and types the
// agent command into it. The command is fire-and-forget: a send failure
// leaves a plain shell in the session and is reported as a warning.
func (m *Manager) ensureSession(name, workDir string) error {
	exists, err := m.tmux.HasSession(name)
	if err != nil {
		return fmt.Errorf("checking session %s: %w", name, err)
	}
	if exists {
		fmt.Fprintf(m.out, "Reusing existing tmux session '%s'\n", name)
		return nil
	}

	if err := m.tmux.NewSession(name, workDir); err != nil {
		return fmt.Errorf("creating session %s: %w", name, err)
	}
	fmt.Fprintf(m.out, "Started tmux session '%s'\n", name)

	if err := m.tmux.SendKeys(name, m.cfg.AgentCommand); err != nil {
		fmt.Fprintf(m.out, "Warning: could not start agent command: %v\n", err)
	}
	return nil
}

// attach hands the terminal over to the session. Without a TTY it only
// reports the session name. Inside tmux it switches the current client
// instead of nesting an attach.
func (m *Manager) attach(session string) error {
	if !m.isTTY() {
		fmt.Fprintf(m.out, "Not a terminal, skipping attach. Session: %s\n", session)
		return nil
	}
	if m.insideTmux() {
		return m.tmux.SwitchClient(session)
	}
	return m.tmux.AttachSession(session)
}
