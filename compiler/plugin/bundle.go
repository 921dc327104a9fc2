package plugin

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin/properties"
)

// A Bundle is the ordered set of live plugin instances assembled for one
// specification. It lives for a single processing pass and must not be
// shared across specifications.
type Bundle struct {
	spec    *load.Spec
	env     *Environment
	plugins []Plugin
}

// Spec returns the specification this bundle was assembled for.
func (b *Bundle) Spec() *load.Spec { return b.spec }

// Plugins returns the live plugin instances in consultation order.
func (b *Bundle) Plugins() []Plugin {
	out := make([]Plugin, len(b.plugins))
	copy(out, b.plugins)
	return out
}

// ResolveField runs the first-claim-wins resolution for one field: the
// first plugin whose ClaimField predicate returns true is alone asked to
// produce a generator. The second return value reports whether any plugin
// claimed the field; an unclaimed field is not an error here — the policy
// belongs to the caller.
func (b *Bundle) ResolveField(f *load.Field) (properties.PropertyGenerator, bool) {
	for _, p := range b.plugins {
		if p.ClaimField(f) {
			return p.PropertyGenerator(f), true
		}
	}
	return nil, false
}

// WillDeclareProperty invokes the before-declaration hook of every plugin
// in bundle order.
func (b *Bundle) WillDeclareProperty(d *Declaration) {
	for _, p := range b.plugins {
		p.WillDeclareProperty(d)
	}
}

// DidDeclareProperty invokes the after-declaration hook of every plugin in
// bundle order.
func (b *Bundle) DidDeclareProperty(d *Declaration) {
	for _, p := range b.plugins {
		p.DidDeclareProperty(d)
	}
}

// Declarations lets every plugin contribute spec-level code to the
// generated file, in bundle order.
func (b *Bundle) Declarations(f *jen.File) {
	for _, p := range b.plugins {
		p.Declarations(f)
	}
}
