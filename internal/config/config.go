// Package config loads per-repository settings for agentmux.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the repository root.
const FileName = ".agentmux.yml"

// DefaultAgentCommand is typed into new sessions when no override is set.
const DefaultAgentCommand = "gemini --yolo"

// Common errors
var (
	ErrNotFound = errors.New("config file not found")
)

// Config holds the per-repo settings.
type Config struct {
	// AgentCommand is sent to a freshly created session's shell.
	AgentCommand string `yaml:"agent_command"`

	// ProtectedBranches are refused by run. main is always included.
	ProtectedBranches []string `yaml:"protected_branches"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AgentCommand:      DefaultAgentCommand,
		ProtectedBranches: []string{"main"},
	}
}

// Load reads the config file from the repository root. A missing file is
// not an error; the defaults are returned.
func Load(repoRoot string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(repoRoot, FileName))
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads and validates a config file at an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.AgentCommand == "" {
		cfg.AgentCommand = DefaultAgentCommand
	}
	if !slices.Contains(cfg.ProtectedBranches, "main") {
		cfg.ProtectedBranches = append(cfg.ProtectedBranches, "main")
	}
	return cfg, nil
}

// IsProtected reports whether run must refuse the branch.
func (c *Config) IsProtected(branch string) bool {
	return slices.Contains(c.ProtectedBranches, branch)
}
