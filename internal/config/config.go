// Package config resolves the runtime configuration from the environment.
// There is no configuration file; everything the browser needs beyond its
// starting path comes from environment variables with documented fallbacks.
package config

import (
	"os"
	"strconv"
	"strings"

	"burrow/internal/log"

	"github.com/gobwas/glob"
)

// Environment variables consumed at startup.
const (
	EnvEditor = "EDITOR"
	EnvShell  = "SHELL"
	EnvHome   = "HOME"
	EnvOpener = "BURROW_OPENER"
	EnvIgnore = "BURROW_IGNORE"
	EnvDepth  = "BURROW_DEPTH"
)

// Config holds everything the browser core consumes as plain values.
type Config struct {
	Editor     string // command spawned on 'e'
	Shell      string // command spawned on 's'
	Home       string // target of the go-home jump
	Opener     string // command for non-directory entries; empty means none
	ShowHidden bool   // initial hidden-file toggle state
	Depth      int    // shell nesting depth, after increment

	ignore []glob.Glob
}

// New returns the default configuration, independent of the environment.
func New() *Config {
	return &Config{
		Editor: "vi",
		Shell:  "/bin/sh",
		Home:   "/",
		Depth:  1,
	}
}

// Load resolves configuration from the environment. It also increments and
// re-exports the nesting depth so shells spawned from the browser can expose
// it in their prompt.
func Load() *Config {
	cfg := New()
	cfg.Editor = getenvOr(EnvEditor, cfg.Editor)
	cfg.Shell = getenvOr(EnvShell, cfg.Shell)
	cfg.Home = getenvOr(EnvHome, cfg.Home)
	cfg.Opener = os.Getenv(EnvOpener)
	cfg.ignore = parseIgnore(os.Getenv(EnvIgnore))

	if depth, err := strconv.Atoi(os.Getenv(EnvDepth)); err == nil {
		cfg.Depth = depth + 1
	}
	if err := os.Setenv(EnvDepth, strconv.Itoa(cfg.Depth)); err != nil {
		log.Warn("cannot export %s: %v", EnvDepth, err)
	}

	return cfg
}

// Ignored reports whether an entry name matches one of the ignore globs.
// Ignore patterns behave like dot-files: they only apply while hidden
// entries are filtered out.
func (c *Config) Ignored(name string) bool {
	for _, g := range c.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// IgnoreCount returns the number of compiled ignore patterns.
func (c *Config) IgnoreCount() int {
	return len(c.ignore)
}

// SetIgnore replaces the ignore patterns from a colon-separated spec.
func (c *Config) SetIgnore(spec string) {
	c.ignore = parseIgnore(spec)
}

func getenvOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// parseIgnore compiles a colon-separated glob list. Patterns that fail to
// compile are logged and skipped so one bad pattern cannot take down
// startup.
func parseIgnore(spec string) []glob.Glob {
	if spec == "" {
		return nil
	}

	var globs []glob.Glob
	for _, pat := range strings.Split(spec, ":") {
		if pat == "" {
			continue
		}
		g, err := glob.Compile(pat)
		if err != nil {
			log.WithFields(log.F("pattern", pat)).Warn("invalid ignore pattern, skipping")
			continue
		}
		globs = append(globs, g)
	}
	return globs
}
