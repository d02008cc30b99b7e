package agent

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Agent describes one branch's reconciled state. Either half can be
// missing: a worktree without a session or a session without a worktree.
type Agent struct {
	ID           string `json:"id"`
	WorktreePath string `json:"worktree,omitempty"`
	Session      string `json:"session,omitempty"`
}

// HasWorktree reports whether the worktree directory exists.
func (a Agent) HasWorktree() bool {
	return a.WorktreePath != ""
}

// HasSession reports whether the tmux session is running.
func (a Agent) HasSession() bool {
	return a.Session != ""
}

// List reconciles worktree directories with tmux sessions, keyed by
// sanitized identifier and sorted. A subsystem that cannot be enumerated
// contributes an empty set rather than failing the whole listing, so a
// stopped tmux server still shows worktree-only agents.
func (m *Manager) List() []Agent {
	byID := map[string]*Agent{}

	entries, err := os.ReadDir(m.ws.WorktreeBase)
	if err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				// DirEntry does not follow symlinks; a symlinked
				// worktree directory still counts.
				info, err := os.Stat(filepath.Join(m.ws.WorktreeBase, e.Name()))
				if err != nil || !info.IsDir() {
					continue
				}
			}
			id := e.Name()
			byID[id] = &Agent{ID: id, WorktreePath: m.ws.WorktreePath(id)}
		}
	}

	sessions, err := m.tmux.ListSessions()
	if err == nil {
		prefix := m.ws.SessionPrefix()
		for _, s := range sessions {
			if !strings.HasPrefix(s, prefix) {
				continue
			}
			id := strings.TrimPrefix(s, prefix)
			a, ok := byID[id]
			if !ok {
				a = &Agent{ID: id}
				byID[id] = a
			}
			a.Session = s
		}
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	agents := make([]Agent, 0, len(ids))
	for _, id := range ids {
		agents = append(agents, *byID[id])
	}
	return agents
}
