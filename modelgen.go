// Package modelgen generates data-model source code from declarative field
// specifications, using a priority-ordered, configurable set of plugins that
// claim fields and contribute generated declarations.
//
// Specifications are built from fluent field builders or loaded from YAML or
// JSON documents (package compiler/load). The plugin resolution engine lives
// in compiler/plugin, the built-in capabilities in compiler/plugin/defaults,
// and the emitter in compiler/gen. Generated models are backed by the
// runtime package model.
package modelgen

import "github.com/syssam/modelgen/schema/field"

// Field is the declaration of a single data-model field. The builders in
// schema/field implement this interface.
type Field interface {
	Descriptor() *field.Descriptor
}
