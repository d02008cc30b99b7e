package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentmux/agentmux/internal/style"
)

var killCmd = &cobra.Command{
	Use:   "kill <branch>",
	Short: "Tear down a branch's agent session and worktree",
	Long: `Kill terminates the branch's tmux session and removes its worktree.
Both steps are attempted even if one fails, and a missing session or
worktree is reported but not an error. Worktrees with local changes
need --force.`,
	Args: cobra.ExactArgs(1),
	RunE: runKill,
}

func runKill(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	res := mgr.Kill(args[0], forceFlag)

	if res.SessionKilled {
		fmt.Printf("%s Killed tmux session '%s'\n", style.Bold.Render("✓"), res.Session)
	} else {
		fmt.Println(style.Dim.Render(fmt.Sprintf("No tmux session '%s'", res.Session)))
	}

	switch {
	case res.WorktreeRemoved:
		fmt.Printf("%s Removed worktree %s\n", style.Bold.Render("✓"), res.WorktreePath)
	case res.WorktreeErr != nil:
		fmt.Printf("%s %v\n", style.Error.Render("Failed to remove worktree:"), res.WorktreeErr)
		fmt.Printf("Try: git worktree remove --force %s\n", res.WorktreePath)
		return fmt.Errorf("worktree removal failed for %s", res.WorktreePath)
	default:
		fmt.Println(style.Dim.Render(fmt.Sprintf("No worktree at %s", res.WorktreePath)))
	}
	return nil
}
