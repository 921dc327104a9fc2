package gen

import (
	"errors"
)

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the output package name.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPlugins adds dynamic plugin references.
// Each reference is a registered plugin name, optionally suffixed with a
// priority tier: "acme.Audit" or "acme.Audit:HIGH".
func WithPlugins(refs ...string) Option {
	return func(c *Config) error {
		c.Plugins = append(c.Plugins, refs...)
		return nil
	}
}

// WithOptions adds option tokens consumed by plugins.
func WithOptions(tokens ...string) Option {
	return func(c *Config) error {
		c.Options = append(c.Options, tokens...)
		return nil
	}
}

// WithEnvOption sets one raw environment option for plugins that read
// their own keys.
func WithEnvOption(key, value string) Option {
	return func(c *Config) error {
		if key == "" {
			return NewConfigError("EnvOptions", nil, "option key cannot be empty")
		}
		if c.EnvOptions == nil {
			c.EnvOptions = make(map[string]string)
		}
		c.EnvOptions[key] = value
		return nil
	}
}

// WithUnclaimedPolicy sets the policy applied to unclaimed fields.
func WithUnclaimedPolicy(p UnclaimedPolicy) Option {
	return func(c *Config) error {
		if p < UnclaimedWarn || p > UnclaimedError {
			return NewConfigError("Unclaimed", p, "unsupported policy; use warn, ignore, or error")
		}
		c.Unclaimed = p
		return nil
	}
}

// WithWorkers bounds the number of specs generated in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "worker count must be positive")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options applied on top of
// the defaults.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
