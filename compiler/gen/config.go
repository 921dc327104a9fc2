package gen

import (
	"maps"
	"runtime"
	"strings"

	"github.com/syssam/modelgen/compiler/plugin"
)

// UnclaimedPolicy decides what happens when no plugin claims a field.
type UnclaimedPolicy int

const (
	// UnclaimedWarn reports the field and skips it. This is the default.
	UnclaimedWarn UnclaimedPolicy = iota
	// UnclaimedIgnore skips the field silently.
	UnclaimedIgnore
	// UnclaimedError fails the run on the first unclaimed field.
	UnclaimedError
)

var unclaimedNames = [...]string{
	UnclaimedWarn:   "warn",
	UnclaimedIgnore: "ignore",
	UnclaimedError:  "error",
}

// String returns the canonical name of the policy.
func (p UnclaimedPolicy) String() string {
	if p < 0 || int(p) >= len(unclaimedNames) {
		return "warn"
	}
	return unclaimedNames[p]
}

// ParseUnclaimedPolicy matches s case-insensitively against the policy
// names.
func ParseUnclaimedPolicy(s string) (UnclaimedPolicy, bool) {
	for p, name := range unclaimedNames {
		if strings.EqualFold(s, name) {
			return UnclaimedPolicy(p), true
		}
	}
	return UnclaimedWarn, false
}

// Config holds the generation settings for one run.
type Config struct {
	// Target is the output directory. Required.
	Target string
	// Package is the output package name. Defaults to the spec's package,
	// then to the base name of Target.
	Package string
	// Header overrides the generated-code header comment.
	Header string
	// Plugins lists dynamic plugin references ("name" or "name:PRIORITY").
	Plugins []string
	// Options lists option tokens consumed by plugins.
	Options []string
	// EnvOptions carries additional environment options for plugins that
	// read their own keys.
	EnvOptions map[string]string
	// Unclaimed is the policy applied to fields no plugin claims.
	Unclaimed UnclaimedPolicy
	// Workers bounds the number of specs generated in parallel.
	Workers int
}

// DefaultConfig returns the default generation settings.
func DefaultConfig() *Config {
	return &Config{
		Unclaimed: UnclaimedWarn,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// envOptions flattens the config into the raw environment option map the
// plugin registry is built from.
func (c *Config) envOptions() map[string]string {
	opts := maps.Clone(c.EnvOptions)
	if opts == nil {
		opts = make(map[string]string)
	}
	if len(c.Plugins) > 0 {
		opts[plugin.PluginsKey] = strings.Join(c.Plugins, ",")
	}
	if len(c.Options) > 0 {
		opts[plugin.OptionsKey] = strings.Join(c.Options, ",")
	}
	return opts
}
