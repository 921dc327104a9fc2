package plugin

import (
	"fmt"
	"sync"

	"github.com/syssam/modelgen/compiler/load"
)

// A Factory instantiates a plugin against one specification. Returning an
// error means the plugin cannot accept this kind of specification; the
// environment warns and omits it from that bundle only.
type Factory func(spec *load.Spec, env *Environment) (Plugin, error)

type registration struct {
	factory          Factory
	supportedOptions []string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registration)
)

// A RegisterOption configures a plugin registration.
type RegisterOption func(*registration)

// WithSupportedOptions declares environment option keys the plugin reads.
// Keys appearing here are excluded from the unsupported-options diagnostic.
func WithSupportedOptions(keys ...string) RegisterOption {
	return func(r *registration) {
		r.supportedOptions = append(r.supportedOptions, keys...)
	}
}

// Register makes a plugin capability available under the given name.
// Built-in capabilities register themselves at package initialization;
// custom capabilities do the same from their own packages. Register panics
// if the name is empty, the factory is nil, or the name is taken.
func Register(name string, f Factory, opts ...RegisterOption) {
	if name == "" {
		panic("plugin: Register with empty name")
	}
	if f == nil {
		panic(fmt.Sprintf("plugin: Register %q with nil factory", name))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("plugin: Register called twice for %q", name))
	}
	r := registration{factory: f}
	for _, opt := range opts {
		opt(&r)
	}
	registry[name] = r
}

// Lookup resolves a registered plugin factory by name.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[name]
	return r.factory, ok
}

func supportedOptionsOf(name string) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name].supportedOptions
}
