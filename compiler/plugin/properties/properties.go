// Package properties implements the per-field code-generation strategies.
//
// A PropertyGenerator describes one claimed field: the type its value is
// stored as, the type exposed to callers, and the synthesis of its getter
// and setter bodies. Basic kinds are dispatched through an ordered Catalog;
// enum and JSON backed kinds wrap the shared string generator and override
// the accessor-facing contract through a delegate.
package properties

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/schema/field"
)

// ModelPkg is the import path of the runtime package the generated
// accessors call into.
const ModelPkg = "github.com/syssam/modelgen/model"

// A PropertyGenerator is the strategy object for one claimed field.
//
// GetterBody and SetterBody synthesize the accessor bodies; the emitter
// owns the surrounding method declarations. Within a body, the receiver is
// named "m", the setter argument "v", and the field's property descriptor
// variable is named PropertyName() + "Property".
type PropertyGenerator interface {
	// FieldName returns the declared field name.
	FieldName() string
	// PropertyName returns the exported name accessors are derived from.
	PropertyName() string
	// StorageType reports how the value round-trips through the
	// underlying representation.
	StorageType() field.Type
	// AccessorType returns the type exposed to callers.
	AccessorType() jen.Code
	// PropertyType returns the runtime property descriptor type.
	PropertyType() jen.Code
	// GetterBody synthesizes the getter body.
	GetterBody(g *jen.Group)
	// SetterBody synthesizes the setter body.
	SetterBody(g *jen.Group)
	// RequiredImports returns import paths the declaration depends on.
	RequiredImports() []string
}

// An AccessorDelegate supplies the accessor-facing slice of a specialized
// generator: the exposed type, the parameterized property type, and the
// getter/setter body synthesis. Storage mechanics stay with the owning
// generator's embedded base.
type AccessorDelegate interface {
	AccessorType() jen.Code
	PropertyType() jen.Code
	GetterBody(propertyVar string, g *jen.Group)
	SetterBody(propertyVar string, g *jen.Group)
	RequiredImports() []string
}
