package agent

import (
	"fmt"
	"os"
)

// KillResult reports what Kill managed to tear down.
type KillResult struct {
	Session         string
	SessionKilled   bool
	WorktreePath    string
	WorktreeRemoved bool
	WorktreeErr     error
}

// Kill tears down a branch's session and worktree. Both steps are
// attempted regardless of the other's outcome. A missing session or
// worktree is not an error; a failed worktree removal is carried in the
// result so the caller can suggest manual cleanup.
func (m *Manager) Kill(branch string, force bool) KillResult {
	id := Sanitize(branch)
	res := KillResult{
		Session:      m.ws.SessionName(id),
		WorktreePath: m.ws.WorktreePath(id),
	}

	exists, err := m.tmux.HasSession(res.Session)
	if err != nil {
		fmt.Fprintf(m.out, "Warning: could not query session '%s': %v\n", res.Session, err)
	} else if exists {
		if err := m.tmux.KillSession(res.Session); err != nil {
			fmt.Fprintf(m.out, "Warning: could not kill session '%s': %v\n", res.Session, err)
		} else {
			res.SessionKilled = true
		}
	}

	if _, err := os.Stat(res.WorktreePath); err == nil {
		if err := m.git.WorktreeRemove(res.WorktreePath, force); err != nil {
			res.WorktreeErr = err
		} else {
			res.WorktreeRemoved = true
			_ = m.git.WorktreePrune()
		}
	}
	return res
}
