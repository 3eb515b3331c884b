package domain

import (
	"fmt"
	"strings"
)

// ProjectConfig holds overrides loaded from .gotofix.yaml.
type ProjectConfig struct {
	Dir  string `yaml:"dir"  json:"dir,omitempty"`
	Glob string `yaml:"glob" json:"glob,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// Validate checks the config for values the scanner cannot honor.
func (c ProjectConfig) Validate() error {
	if c.Dir != "" && strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("dir must not be blank")
	}
	if strings.ContainsAny(c.Glob, `/\`) {
		return fmt.Errorf("glob %q must not contain a path separator", c.Glob)
	}
	return nil
}

// Resolve picks the directory and glob for a run. An explicit argument wins
// over the config, which wins over the built-in defaults.
func (c ProjectConfig) Resolve(dirArg, globArg string) (dir, glob string) {
	dir, glob = DefaultDir, DefaultGlob
	if c.Dir != "" {
		dir = c.Dir
	}
	if c.Glob != "" {
		glob = c.Glob
	}
	if dirArg != "" {
		dir = dirArg
	}
	if globArg != "" {
		glob = globArg
	}
	return dir, glob
}
