// Package cmd implements the agentmux command tree.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentmux/agentmux/internal/agent"
	"github.com/agentmux/agentmux/internal/config"
	"github.com/agentmux/agentmux/internal/git"
	"github.com/agentmux/agentmux/internal/tmux"
)

var (
	newFlag   bool
	forceFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "agentmux",
	Short: "Ephemeral per-branch agent sessions on git worktrees and tmux",
	Long: `agentmux pairs each branch with a git worktree and a tmux session
running an agent process. There is no state file: every command
reconstructs the picture from git and tmux.

  agentmux run feature/login     start or resume the agent for a branch
  agentmux run -n feature/new    create the branch first
  agentmux ls                    list agents for this repo
  agentmux kill feature/login    tear the agent down`,
	SilenceUsage: true,
}

func init() {
	// Persistent so they work in any position: 'agentmux -n run x' and
	// 'agentmux run x -n' are the same invocation.
	rootCmd.PersistentFlags().BoolVarP(&newFlag, "new", "n", false, "create the branch before starting the agent")
	rootCmd.PersistentFlags().BoolVarP(&forceFlag, "force", "f", false, "remove the worktree even with local changes")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(killCmd)
}

// newManager builds the manager for the repository containing the current
// working directory.
func newManager() (*agent.Manager, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	ws, err := agent.ResolveWorkspace(cwd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(ws.RepoRoot)
	if err != nil {
		return nil, err
	}
	return agent.NewManager(ws, git.NewGit(ws.RepoRoot), tmux.NewTmux(), cfg), nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
