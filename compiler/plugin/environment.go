package plugin

import (
	"maps"
	"sort"
	"strings"

	"github.com/syssam/modelgen/compiler/load"
)

// Environment option keys reserved by modelgen.
const (
	// PluginsKey holds the comma-delimited dynamic plugin reference list.
	PluginsKey = "modelgenPlugins"
	// OptionsKey holds the comma-delimited option token list.
	OptionsKey = "modelgenOptions"
)

// Option tokens recognized by the built-in capabilities.
const (
	// OptionDisableDefaultConstructors disables the generated constructor
	// function for each model.
	OptionDisableDefaultConstructors = "disableDefaultConstructors"
	// OptionDisableInterfaces disables the interface compliance
	// declarations derived from the spec's implements list.
	OptionDisableInterfaces = "disableInterfaces"
	// OptionDisableCommentCopying disables copying field comments to the
	// generated property declarations.
	OptionDisableCommentCopying = "disableCommentCopying"
	// OptionDisableEnumFields disables the default handling of enum fields.
	OptionDisableEnumFields = "disableEnumFields"
	// OptionDisableJSONFields disables the default handling of JSON fields.
	OptionDisableJSONFields = "disableJSONFields"
	// OptionDisableConstantCopying disables copying constant fields to the
	// generated model.
	OptionDisableConstantCopying = "disableConstantCopying"
	// OptionDisableAccessors disables the convenience getters and setters
	// generated with each property.
	OptionDisableAccessors = "disableAccessors"
)

var builtinOptions = map[string]struct{}{
	OptionDisableDefaultConstructors: {},
	OptionDisableInterfaces:          {},
	OptionDisableCommentCopying:      {},
	OptionDisableEnumFields:          {},
	OptionDisableJSONFields:          {},
	OptionDisableConstantCopying:     {},
	OptionDisableAccessors:           {},
}

// Built-in capability names.
const (
	Constructors = "constructors"
	Interfaces   = "interfaces"
	Comments     = "comments"
	BasicFields  = "basic-fields"
	EnumFields   = "enum-fields"
	JSONFields   = "json-fields"
	Constants    = "constants"
)

type builtinCapability struct {
	name       string
	priority   Priority
	disabledBy string // option token disabling the capability; empty means always on
}

// The default capability set in registration order. The field plugins
// cannot be disabled, but user plugins registered with HIGH priority get
// first refusal. Constant copying sits in the LOW tier so user plugins can
// have first pass at such fields.
var builtinCapabilities = []builtinCapability{
	{Constructors, PriorityNormal, OptionDisableDefaultConstructors},
	{Interfaces, PriorityNormal, OptionDisableInterfaces},
	{Comments, PriorityNormal, OptionDisableCommentCopying},
	{BasicFields, PriorityNormal, ""},
	{EnumFields, PriorityNormal, OptionDisableEnumFields},
	{JSONFields, PriorityNormal, OptionDisableJSONFields},
	{Constants, PriorityLow, OptionDisableConstantCopying},
}

// An Environment is the plugin registry for one generation run: the
// built-in capability set merged with dynamically-configured capabilities,
// bucketed into three priority tiers. It is built once, is immutable
// afterward, and is safe for concurrent read-only use.
type Environment struct {
	diag             *Diagnostics
	envOptions       map[string]string
	options          OptionSet
	supportedOptions map[string]struct{}
	tiers            [numPriorities][]string
}

// NewEnvironment builds the plugin registry from the raw environment
// options. Malformed plugin references, unresolvable names and unknown
// option tokens are reported through d and never abort construction.
func NewEnvironment(envOptions map[string]string, d *Diagnostics) *Environment {
	if d == nil {
		d = &Diagnostics{}
	}
	env := &Environment{
		diag:             d,
		envOptions:       maps.Clone(envOptions),
		supportedOptions: make(map[string]struct{}),
	}
	if env.envOptions == nil {
		env.envOptions = make(map[string]string)
	}
	env.options = ParseOptions(env.envOptions[OptionsKey])
	env.installDefaults()
	env.installDynamic()
	env.reportUnsupportedOptions()
	return env
}

func (e *Environment) installDefaults() {
	for _, c := range builtinCapabilities {
		if c.disabledBy != "" && e.options.Contains(c.disabledBy) {
			continue
		}
		e.tiers[c.priority] = append(e.tiers[c.priority], c.name)
	}
}

func (e *Environment) installDynamic() {
	raw := e.envOptions[PluginsKey]
	if raw == "" {
		return
	}
	for _, entry := range strings.Split(raw, listSeparator) {
		if entry == "" {
			continue
		}
		ref, ok := parseReference(entry, e.diag)
		if !ok {
			continue
		}
		if _, found := Lookup(ref.Name); !found {
			e.diag.Warnf("plugin: unable to resolve plugin %q, plugin will be ignored", ref.Name)
			continue
		}
		e.tiers[ref.Priority] = append(e.tiers[ref.Priority], ref.Name)
		for _, key := range supportedOptionsOf(ref.Name) {
			e.supportedOptions[key] = struct{}{}
		}
	}
}

func (e *Environment) reportUnsupportedOptions() {
	var unsupported []string
	for token := range e.options {
		if _, ok := builtinOptions[token]; ok {
			continue
		}
		if _, ok := e.supportedOptions[token]; ok {
			continue
		}
		unsupported = append(unsupported, token)
	}
	if len(unsupported) == 0 {
		return
	}
	sort.Strings(unsupported)
	e.diag.Warnf("plugin: the following options are not supported by modelgen: [%s]; "+
		"custom plugins reading their own environment options should declare them with "+
		"plugin.WithSupportedOptions", strings.Join(unsupported, listSeparator))
}

// HasOption reports whether the option-token list contains the given token.
func (e *Environment) HasOption(token string) bool {
	return e.options.Contains(token)
}

// EnvOption returns the value of the given environment option key, or the
// empty string if absent. Plugins use this to read their own options.
func (e *Environment) EnvOption(key string) string {
	return e.envOptions[key]
}

// HasEnvOption reports whether the given environment option key is present.
func (e *Environment) HasEnvOption(key string) bool {
	_, ok := e.envOptions[key]
	return ok
}

// SupportedOptionKeys returns the environment option keys advertised by
// dynamically-registered plugins, sorted. Used for diagnostics only.
func (e *Environment) SupportedOptionKeys() []string {
	keys := make([]string, 0, len(e.supportedOptions))
	for k := range e.supportedOptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TierPlugins returns the plugin names registered in the given tier, in
// registration order.
func (e *Environment) TierPlugins(p Priority) []string {
	if p < 0 || p >= numPriorities {
		return nil
	}
	out := make([]string, len(e.tiers[p]))
	copy(out, e.tiers[p])
	return out
}

// Diagnostics returns the warning collector of this environment.
func (e *Environment) Diagnostics() *Diagnostics { return e.diag }

// BundleFor instantiates the registered capability set against the given
// specification, preserving tier order and within-tier registration order.
// A capability whose factory fails is omitted from this bundle only.
func (e *Environment) BundleFor(spec *load.Spec) *Bundle {
	b := &Bundle{spec: spec, env: e}
	for p := PriorityHigh; p < numPriorities; p++ {
		for _, name := range e.tiers[p] {
			factory, ok := Lookup(name)
			if !ok {
				// Built-in capabilities resolve through the same table;
				// a missing registration means the defaults package was
				// not linked in.
				e.diag.Warnf("plugin: capability %q is not registered, skipping", name)
				continue
			}
			pl, err := factory(spec, e)
			if err != nil {
				e.diag.Warnf("plugin: unable to instantiate plugin %q for spec %q: %v", name, spec.Name, err)
				continue
			}
			if pl == nil {
				// An empty factory result is an instantiation failure like
				// any other: the plugin sits out this bundle.
				e.diag.Warnf("plugin: plugin %q returned no instance for spec %q, skipping", name, spec.Name)
				continue
			}
			b.plugins = append(b.plugins, pl)
		}
	}
	return b
}
