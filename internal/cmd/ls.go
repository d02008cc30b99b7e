package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentmux/agentmux/internal/style"
)

var lsJSON bool

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List agents for this repository",
	Long: `Ls shows the union of agent worktrees and agent tmux sessions.
An agent can have either half missing, shown as NO in the table: a
worktree whose session was killed, or a session whose worktree was
removed by hand.`,
	Args: cobra.NoArgs,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "output as JSON")
}

func runLs(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}
	agents := mgr.List()
	repo := mgr.Workspace().RepoName

	if lsJSON {
		data, err := json.MarshalIndent(agents, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(agents) == 0 {
		fmt.Printf("No agents found for repo '%s'.\n", repo)
		return nil
	}

	title := cases.Title(language.English).String(repo)
	fmt.Println(style.Header.Render(fmt.Sprintf("%s Agents", title)))

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BRANCH/ID\tWORKTREE\tTMUX")
	for _, a := range agents {
		wt := a.WorktreePath
		if wt == "" {
			wt = "NO"
		}
		session := a.Session
		if session == "" {
			session = "NO"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ID, wt, session)
	}
	return tw.Flush()
}
