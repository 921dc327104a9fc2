package properties

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/internal/naming"
	"github.com/syssam/modelgen/schema/field"
)

// base carries the pieces shared by every basic generator.
type base struct {
	field *load.Field
	spec  *load.Spec
}

// FieldName returns the declared field name.
func (b *base) FieldName() string { return b.field.Name }

// PropertyName returns the exported accessor name for the field.
func (b *base) PropertyName() string { return naming.Pascal(b.field.Name) }

func (b *base) propertyVar() string { return b.PropertyName() + "Property" }

// basicGenerator handles the primitive-like kinds: storage type and
// accessor type coincide, and the bodies call the typed Model accessors.
type basicGenerator struct {
	base
	storage  field.Type // canonical storage kind
	property string     // runtime property descriptor type name
	accessor func() jen.Code
	imports  []string
}

// StorageType reports the canonical storage kind of the field.
func (g *basicGenerator) StorageType() field.Type { return g.storage }

// AccessorType returns the exposed accessor type; for basic kinds it
// matches the storage type.
func (g *basicGenerator) AccessorType() jen.Code { return g.accessor() }

// PropertyType returns the runtime property descriptor type.
func (g *basicGenerator) PropertyType() jen.Code { return jen.Qual(ModelPkg, g.property) }

// GetterBody returns the stored value through the typed Model accessor.
func (g *basicGenerator) GetterBody(grp *jen.Group) {
	grp.Return(jen.Id("m").Dot("Get" + g.property[:len(g.property)-len("Property")]).Call(jen.Id(g.propertyVar())))
}

// SetterBody stores the value and returns the model for chaining.
func (g *basicGenerator) SetterBody(grp *jen.Group) {
	grp.Id("m").Dot("Set" + g.property[:len(g.property)-len("Property")]).Call(jen.Id(g.propertyVar()), jen.Id("v"))
	grp.Return(jen.Id("m"))
}

// RequiredImports returns the import paths the declaration depends on.
func (g *basicGenerator) RequiredImports() []string { return g.imports }

// StringGenerator is the generic string-backed generator. Enum and JSON
// generators embed it for storage mechanics and override the accessor
// contract through a delegate.
type StringGenerator struct {
	basicGenerator
}

// NewString returns the generator for string fields.
func NewString(f *load.Field, s *load.Spec) *StringGenerator {
	return &StringGenerator{basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeString,
		property: "StringProperty",
		accessor: func() jen.Code { return jen.String() },
	}}
}

// NewInt returns the generator for the small-width integer kinds. The
// accessor type is the canonical int.
func NewInt(f *load.Field, s *load.Spec) PropertyGenerator {
	return &basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeInt,
		property: "IntProperty",
		accessor: func() jen.Code { return jen.Int() },
	}
}

// NewInt64 returns the generator for the signed 64-bit integer kind.
func NewInt64(f *load.Field, s *load.Spec) PropertyGenerator {
	return &basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeInt64,
		property: "Int64Property",
		accessor: func() jen.Code { return jen.Int64() },
	}
}

// NewUint64 returns the generator for the unsigned 64-bit integer kind.
// It keeps its own storage so values above MaxInt64 survive the round-trip.
func NewUint64(f *load.Field, s *load.Spec) PropertyGenerator {
	return &basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeUint64,
		property: "Uint64Property",
		accessor: func() jen.Code { return jen.Uint64() },
	}
}

// NewFloat returns the generator for floating point kinds.
func NewFloat(f *load.Field, s *load.Spec) PropertyGenerator {
	return &basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeFloat64,
		property: "FloatProperty",
		accessor: func() jen.Code { return jen.Float64() },
	}
}

// NewBool returns the generator for boolean fields.
func NewBool(f *load.Field, s *load.Spec) PropertyGenerator {
	return &basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeBool,
		property: "BoolProperty",
		accessor: func() jen.Code { return jen.Bool() },
	}
}

// NewBytes returns the generator for binary fields.
func NewBytes(f *load.Field, s *load.Spec) PropertyGenerator {
	return &basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeBytes,
		property: "BytesProperty",
		accessor: func() jen.Code { return jen.Index().Byte() },
	}
}

// NewTime returns the generator for date/time fields.
func NewTime(f *load.Field, s *load.Spec) PropertyGenerator {
	return &basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeTime,
		property: "TimeProperty",
		accessor: func() jen.Code { return jen.Qual("time", "Time") },
		imports:  []string{"time"},
	}
}

// NewUUID returns the generator for UUID fields.
func NewUUID(f *load.Field, s *load.Spec) PropertyGenerator {
	return &basicGenerator{
		base:     base{field: f, spec: s},
		storage:  field.TypeUUID,
		property: "UUIDProperty",
		accessor: func() jen.Code { return jen.Qual("github.com/google/uuid", "UUID") },
		imports:  []string{"github.com/google/uuid"},
	}
}
