// Package plugin implements the plugin resolution engine of modelgen: a
// priority-ordered registry of code-generation capabilities, assembled once
// per run, and per-specification bundles that let plugins claim fields on a
// first-match basis.
//
// Capabilities are trusted code selected by configuration. They are made
// known through Register (built-in capabilities register themselves in the
// defaults package), activated by an Environment, and instantiated per
// specification into a Bundle. A misconfigured or broken capability never
// aborts a run: every failure path warns and continues.
package plugin

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin/properties"
)

// A Plugin is a unit of code-generation logic instantiated against one
// specification. It may claim individual fields, contribute spec-level
// declarations, and react to every property declaration through the
// will/did hooks.
type Plugin interface {
	// Name returns the capability name the plugin was registered under.
	Name() string

	// ClaimField reports whether this plugin takes responsibility for the
	// field. The first claiming plugin in bundle order wins; later plugins
	// are not consulted for that field.
	ClaimField(f *load.Field) bool

	// PropertyGenerator returns the generator for a field this plugin has
	// claimed. A nil generator is a valid claim with no property
	// declaration (e.g. constants handled at spec level).
	PropertyGenerator(f *load.Field) properties.PropertyGenerator

	// WillDeclareProperty is invoked for every claimed property, in bundle
	// order, before its declaration is emitted.
	WillDeclareProperty(d *Declaration)

	// DidDeclareProperty is invoked for every claimed property, in bundle
	// order, after its declaration is emitted.
	DidDeclareProperty(d *Declaration)

	// Declarations contributes spec-level code to the generated file,
	// after all properties have been declared.
	Declarations(f *jen.File)
}

// A Declaration is the context passed to the property declaration hooks.
// Hooks may append code emitted around the property declaration; they have
// no claim semantics.
type Declaration struct {
	Spec      *load.Spec
	Field     *load.Field
	Generator properties.PropertyGenerator

	before []jen.Code
	after  []jen.Code
}

// AddBefore appends code emitted before the property declaration.
func (d *Declaration) AddBefore(code ...jen.Code) { d.before = append(d.before, code...) }

// AddAfter appends code emitted after the property declaration.
func (d *Declaration) AddAfter(code ...jen.Code) { d.after = append(d.after, code...) }

// Before returns the code scheduled ahead of the property declaration.
func (d *Declaration) Before() []jen.Code { return d.before }

// After returns the code scheduled after the property declaration.
func (d *Declaration) After() []jen.Code { return d.after }

// Base provides no-op defaults for the optional Plugin methods. Concrete
// plugins embed it and override what they need.
type Base struct{}

// ClaimField claims nothing by default.
func (Base) ClaimField(*load.Field) bool { return false }

// PropertyGenerator returns no generator by default.
func (Base) PropertyGenerator(*load.Field) properties.PropertyGenerator { return nil }

// WillDeclareProperty does nothing by default.
func (Base) WillDeclareProperty(*Declaration) {}

// DidDeclareProperty does nothing by default.
func (Base) DidDeclareProperty(*Declaration) {}

// Declarations contributes nothing by default.
func (Base) Declarations(*jen.File) {}
