package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"testing"
)

func requireTmux(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("tmux not supported on Windows")
	}
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("tmux not installed")
	}
}

func TestValidateSessionName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"agent-repo-feature-x", true},
		{"agent-repo-v1_2", true},
		{"ABC_123-xyz", true},
		{"", false},
		{"has.dot", false},
		{"has:colon", false},
		{"has space", false},
		{"has/slash", false},
	}
	for _, tt := range tests {
		err := validateSessionName(tt.name)
		if tt.valid && err != nil {
			t.Errorf("validateSessionName(%q) = %v, want nil", tt.name, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidSessionName) {
			t.Errorf("validateSessionName(%q) = %v, want ErrInvalidSessionName", tt.name, err)
		}
	}
}

func TestWrapError(t *testing.T) {
	tm := NewTmux()
	base := errors.New("exit status 1")

	tests := []struct {
		stderr string
		want   error
	}{
		{"no server running on /tmp/tmux-1000/default", ErrNoServer},
		{"error connecting to /tmp/tmux-1000/default", ErrNoServer},
		{"duplicate session: agent-repo-x", ErrSessionExists},
		{"session not found: agent-repo-x", ErrSessionNotFound},
		{"can't find session: agent-repo-x", ErrSessionNotFound},
	}
	for _, tt := range tests {
		got := tm.wrapError(base, tt.stderr, []string{"has-session"})
		if !errors.Is(got, tt.want) {
			t.Errorf("wrapError(%q) = %v, want %v", tt.stderr, got, tt.want)
		}
	}

	// Unknown stderr keeps the message.
	got := tm.wrapError(base, "some other failure", []string{"send-keys"})
	if got == nil || errors.Is(got, ErrNoServer) {
		t.Errorf("wrapError(unknown) = %v", got)
	}
}

func TestInsideTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	if InsideTmux() {
		t.Error("expected InsideTmux = false with empty TMUX")
	}
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	if !InsideTmux() {
		t.Error("expected InsideTmux = true with TMUX set")
	}
}

func TestHasSessionInvalidName(t *testing.T) {
	_, err := NewTmux().HasSession("bad.name")
	if !errors.Is(err, ErrInvalidSessionName) {
		t.Errorf("HasSession = %v, want ErrInvalidSessionName", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	requireTmux(t)

	tm := NewTmux()
	name := fmt.Sprintf("agentmux-test-%d", os.Getpid())

	if err := tm.NewSession(name, t.TempDir()); err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer tm.KillSession(name)

	exists, err := tm.HasSession(name)
	if err != nil {
		t.Fatalf("HasSession: %v", err)
	}
	if !exists {
		t.Error("expected session to exist after NewSession")
	}

	sessions, err := tm.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	found := false
	for _, s := range sessions {
		if s == name {
			found = true
		}
	}
	if !found {
		t.Errorf("session %q not in ListSessions result %v", name, sessions)
	}

	if err := tm.SendKeys(name, "true"); err != nil {
		t.Errorf("SendKeys: %v", err)
	}

	if err := tm.KillSession(name); err != nil {
		t.Fatalf("KillSession: %v", err)
	}
	exists, err = tm.HasSession(name)
	if err != nil {
		t.Fatalf("HasSession after kill: %v", err)
	}
	if exists {
		t.Error("expected session gone after KillSession")
	}
}

func TestHasSessionMissing(t *testing.T) {
	requireTmux(t)

	exists, err := NewTmux().HasSession("agentmux-test-definitely-missing")
	if err != nil {
		t.Fatalf("HasSession: %v", err)
	}
	if exists {
		t.Error("expected HasSession = false for missing session")
	}
}
