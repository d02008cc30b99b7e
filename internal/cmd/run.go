package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentmux/agentmux/internal/agent"
)

var runCmd = &cobra.Command{
	Use:   "run [branch]",
	Short: "Start or resume an agent for a branch and attach to it",
	Long: `Run ensures the branch has a worktree and a tmux session with the
agent command running, then attaches. Without a branch argument the
currently checked-out branch is used. With --new the branch is created
first and must not already exist.

Both steps are idempotent: an existing worktree or session is reused
as-is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	var branch string
	if len(args) > 0 {
		branch = args[0]
	}
	return mgr.Run(agent.RunOptions{Branch: branch, New: newFlag})
}
