package agent

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{"main", "main"},
		{"feature/login", "feature-login"},
		{"release/v1.2.3", "release-v1_2_3"},
		{"a/b/c", "a-b-c"},
		{"no-change_here", "no-change_here"},
		{"v2.0", "v2_0"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.branch); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.branch, got, tt.want)
		}
	}
}

func TestSanitizeDeterministic(t *testing.T) {
	branch := "feature/v1.0/login"
	first := Sanitize(branch)
	for i := 0; i < 3; i++ {
		if got := Sanitize(branch); got != first {
			t.Fatalf("Sanitize not deterministic: %q then %q", first, got)
		}
	}
}

// Distinct branches may collapse to one identifier. That collision is
// accepted behavior, not a bug.
func TestSanitizeCollision(t *testing.T) {
	a := Sanitize("feature/x")
	b := Sanitize("feature-x")
	if a != b {
		t.Errorf("expected collision, got %q and %q", a, b)
	}
}

func TestSessionName(t *testing.T) {
	if got := SessionName("myrepo", "feature-login"); got != "agent-myrepo-feature-login" {
		t.Errorf("SessionName = %q", got)
	}
}

func TestSessionPrefix(t *testing.T) {
	prefix := SessionPrefix("myrepo")
	if prefix != "agent-myrepo-" {
		t.Errorf("SessionPrefix = %q", prefix)
	}
	name := SessionName("myrepo", "x")
	if name[:len(prefix)] != prefix {
		t.Errorf("SessionName %q does not start with prefix %q", name, prefix)
	}
}
