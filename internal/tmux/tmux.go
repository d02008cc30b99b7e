// Package tmux provides a wrapper for tmux session operations via subprocess.
package tmux

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"syscall"
	"time"
)

// validSessionNameRe validates session names to prevent shell injection
var validSessionNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Common errors
var (
	ErrNoServer           = errors.New("no tmux server running")
	ErrSessionExists      = errors.New("session already exists")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSessionName = errors.New("invalid session name")
)

// enterKeyDelay separates the literal keystrokes from the Enter press so a
// shell that is still starting up does not swallow the newline.
const enterKeyDelay = 150 * time.Millisecond

// validateSessionName checks that a session name contains only safe
// characters. Dots and colons make tmux target resolution ambiguous.
func validateSessionName(name string) error {
	if name == "" || !validSessionNameRe.MatchString(name) {
		return fmt.Errorf("%w %q: must match %s", ErrInvalidSessionName, name, validSessionNameRe.String())
	}
	return nil
}

// Tmux wraps tmux operations.
type Tmux struct{}

// NewTmux creates a new Tmux wrapper.
func NewTmux() *Tmux {
	return &Tmux{}
}

// run executes a tmux command and returns stdout.
// All commands include -u for UTF-8 support regardless of locale settings.
func (t *Tmux) run(args ...string) (string, error) {
	allArgs := append([]string{"-u"}, args...)
	cmd := exec.Command("tmux", allArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", t.wrapError(err, stderr.String(), args)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// wrapError maps tmux stderr to sentinel errors.
func (t *Tmux) wrapError(err error, stderr string, args []string) error {
	stderr = strings.TrimSpace(stderr)

	if strings.Contains(stderr, "no server running") ||
		strings.Contains(stderr, "error connecting to") ||
		strings.Contains(stderr, "no current target") ||
		strings.Contains(stderr, "server exited unexpectedly") {
		return ErrNoServer
	}
	if strings.Contains(stderr, "duplicate session") {
		return ErrSessionExists
	}
	if strings.Contains(stderr, "session not found") ||
		strings.Contains(stderr, "can't find session") {
		return ErrSessionNotFound
	}

	if stderr != "" {
		return fmt.Errorf("tmux %s: %s", args[0], stderr)
	}
	return fmt.Errorf("tmux %s: %w", args[0], err)
}

// NewSession creates a new detached tmux session rooted at workDir.
func (t *Tmux) NewSession(name, workDir string) error {
	if err := validateSessionName(name); err != nil {
		return err
	}
	args := []string{"new-session", "-d", "-s", name}
	if workDir != "" {
		args = append(args, "-c", workDir)
	}
	_, err := t.run(args...)
	return err
}

// HasSession checks if a session exists. The = prefix forces an exact
// match; otherwise tmux treats the target as a prefix.
func (t *Tmux) HasSession(name string) (bool, error) {
	if err := validateSessionName(name); err != nil {
		return false, err
	}
	_, err := t.run("has-session", "-t", "="+name)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrNoServer) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListSessions returns all session names. No running server means no
// sessions, not an error.
func (t *Tmux) ListSessions() ([]string, error) {
	out, err := t.run("list-sessions", "-F", "#{session_name}")
	if err != nil {
		if errors.Is(err, ErrNoServer) {
			return nil, nil
		}
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// KillSession terminates a tmux session.
func (t *Tmux) KillSession(name string) error {
	_, err := t.run("kill-session", "-t", name)
	return err
}

// SendKeys types text into a session followed by Enter. The text is sent
// with -l so tmux does not interpret key names inside it.
func (t *Tmux) SendKeys(session, text string) error {
	if _, err := t.run("send-keys", "-t", session, "-l", text); err != nil {
		return err
	}
	time.Sleep(enterKeyDelay)
	_, err := t.run("send-keys", "-t", session, "Enter")
	return err
}

// SwitchClient retargets the current tmux client to another session. Only
// meaningful when the calling process already runs inside tmux.
func (t *Tmux) SwitchClient(name string) error {
	_, err := t.run("switch-client", "-t", name)
	return err
}

// AttachSession replaces the current process with a tmux attach so the
// terminal is handed over completely. It returns only if the exec fails.
func (t *Tmux) AttachSession(name string) error {
	if err := validateSessionName(name); err != nil {
		return err
	}
	path, err := exec.LookPath("tmux")
	if err != nil {
		return fmt.Errorf("finding tmux: %w", err)
	}
	return syscall.Exec(path, []string{"tmux", "-u", "attach-session", "-t", "=" + name}, os.Environ())
}

// InsideTmux reports whether the current process runs inside a tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}
