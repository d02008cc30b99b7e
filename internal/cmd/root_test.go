package cmd

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"run": false, "ls": false, "kill": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"new", "n"},
		{"force", "f"},
	}
	for _, tt := range tests {
		f := rootCmd.PersistentFlags().Lookup(tt.name)
		if f == nil {
			t.Errorf("persistent flag --%s missing", tt.name)
			continue
		}
		if f.Shorthand != tt.shorthand {
			t.Errorf("--%s shorthand = %q, want %q", tt.name, f.Shorthand, tt.shorthand)
		}
	}
}

func TestLsJSONFlag(t *testing.T) {
	if lsCmd.Flags().Lookup("json") == nil {
		t.Error("ls --json flag missing")
	}
}

func TestRunArgs(t *testing.T) {
	// run takes at most one positional arg.
	if err := runCmd.Args(runCmd, []string{"a", "b"}); err == nil {
		t.Error("expected error for two args to run")
	}
	if err := runCmd.Args(runCmd, nil); err != nil {
		t.Errorf("run with no args rejected: %v", err)
	}
}

func TestKillArgs(t *testing.T) {
	if err := killCmd.Args(killCmd, nil); err == nil {
		t.Error("expected error for kill without a branch")
	}
	if err := killCmd.Args(killCmd, []string{"feature/x"}); err != nil {
		t.Errorf("kill with one arg rejected: %v", err)
	}
}
