// Package field provides fluent builders for declaring data-model fields.
//
// Field names follow storage conventions (snake_case); generated accessor
// names are derived from them:
//
//	field.Int("age")
//	field.String("email").Comment("primary contact address")
//	field.Enum("status").GoType(Status("")).
//	field.JSON("payload", Blob{})
//
// Each builder exposes a Descriptor method returning the declarative field
// description consumed by the specification loader.
package field

import (
	"fmt"
	"reflect"
)

// A Descriptor for field configuration.
type Descriptor struct {
	Name       string    // field name
	Info       *TypeInfo // type information
	Optional   bool      // value may be absent
	Nillable   bool      // accessor returns a pointer
	Immutable  bool      // value cannot change after creation
	Constant   bool      // copied to the generated model as a constant
	Default    any       // default (or constant) value
	Comment    string    // declaration comment
	StorageKey string    // storage name override
	Err        error     // builder error, checked at load time
}

func (d *Descriptor) storageName() string {
	if d.StorageKey != "" {
		return d.StorageKey
	}
	return d.Name
}

func (d *Descriptor) goType(typ any, expect reflect.Kind) {
	t := reflect.TypeOf(typ)
	if t == nil {
		d.Err = fmt.Errorf("field: nil GoType for field %q", d.Name)
		return
	}
	if expect != reflect.Invalid && t.Kind() != expect {
		d.Err = fmt.Errorf("field: invalid GoType %s for field %q: expect kind %s", t, d.Name, expect)
		return
	}
	d.Info.Ident = t.String()
	d.Info.PkgPath = t.PkgPath()
}

// stringBuilder is the builder for string fields.
type stringBuilder struct {
	desc *Descriptor
}

// String returns a new string field builder.
func String(name string) *stringBuilder {
	return &stringBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: TypeString}}}
}

// Text returns a new string field builder intended for long text values.
func Text(name string) *stringBuilder {
	return String(name)
}

// Optional marks the field as optional.
func (b *stringBuilder) Optional() *stringBuilder { b.desc.Optional = true; return b }

// Nillable exposes the field through a pointer accessor.
func (b *stringBuilder) Nillable() *stringBuilder { b.desc.Nillable = true; return b }

// Immutable forbids updating the field after creation.
func (b *stringBuilder) Immutable() *stringBuilder { b.desc.Immutable = true; return b }

// Const declares the field as a constant copied to the generated model.
func (b *stringBuilder) Const(v string) *stringBuilder {
	b.desc.Constant = true
	b.desc.Default = v
	return b
}

// Default sets the default value of the field.
func (b *stringBuilder) Default(v string) *stringBuilder { b.desc.Default = v; return b }

// Comment sets the declaration comment of the field.
func (b *stringBuilder) Comment(c string) *stringBuilder { b.desc.Comment = c; return b }

// StorageKey overrides the storage name of the field.
func (b *stringBuilder) StorageKey(key string) *stringBuilder { b.desc.StorageKey = key; return b }

// Descriptor implements the modelgen.Field interface.
func (b *stringBuilder) Descriptor() *Descriptor { return b.desc }

// numericBuilder is the builder shared by the numeric field kinds.
type numericBuilder struct {
	desc *Descriptor
}

func numeric(name string, t Type) *numericBuilder {
	return &numericBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: t}}}
}

// Int returns a new integer field builder.
func Int(name string) *numericBuilder { return numeric(name, TypeInt) }

// Int8 returns a new int8 field builder.
func Int8(name string) *numericBuilder { return numeric(name, TypeInt8) }

// Int16 returns a new int16 field builder.
func Int16(name string) *numericBuilder { return numeric(name, TypeInt16) }

// Int32 returns a new int32 field builder.
func Int32(name string) *numericBuilder { return numeric(name, TypeInt32) }

// Int64 returns a new int64 field builder.
func Int64(name string) *numericBuilder { return numeric(name, TypeInt64) }

// Uint returns a new uint field builder.
func Uint(name string) *numericBuilder { return numeric(name, TypeUint) }

// Uint8 returns a new uint8 field builder.
func Uint8(name string) *numericBuilder { return numeric(name, TypeUint8) }

// Uint16 returns a new uint16 field builder.
func Uint16(name string) *numericBuilder { return numeric(name, TypeUint16) }

// Uint32 returns a new uint32 field builder.
func Uint32(name string) *numericBuilder { return numeric(name, TypeUint32) }

// Uint64 returns a new uint64 field builder.
func Uint64(name string) *numericBuilder { return numeric(name, TypeUint64) }

// Float returns a new float64 field builder.
func Float(name string) *numericBuilder { return numeric(name, TypeFloat64) }

// Float32 returns a new float32 field builder.
func Float32(name string) *numericBuilder { return numeric(name, TypeFloat32) }

// Optional marks the field as optional.
func (b *numericBuilder) Optional() *numericBuilder { b.desc.Optional = true; return b }

// Nillable exposes the field through a pointer accessor.
func (b *numericBuilder) Nillable() *numericBuilder { b.desc.Nillable = true; return b }

// Immutable forbids updating the field after creation.
func (b *numericBuilder) Immutable() *numericBuilder { b.desc.Immutable = true; return b }

// Const declares the field as a constant copied to the generated model.
func (b *numericBuilder) Const(v any) *numericBuilder {
	b.desc.Constant = true
	b.desc.Default = v
	return b
}

// Default sets the default value of the field.
func (b *numericBuilder) Default(v any) *numericBuilder { b.desc.Default = v; return b }

// Comment sets the declaration comment of the field.
func (b *numericBuilder) Comment(c string) *numericBuilder { b.desc.Comment = c; return b }

// StorageKey overrides the storage name of the field.
func (b *numericBuilder) StorageKey(key string) *numericBuilder { b.desc.StorageKey = key; return b }

// Descriptor implements the modelgen.Field interface.
func (b *numericBuilder) Descriptor() *Descriptor { return b.desc }

// boolBuilder is the builder for boolean fields.
type boolBuilder struct {
	desc *Descriptor
}

// Bool returns a new boolean field builder.
func Bool(name string) *boolBuilder {
	return &boolBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: TypeBool}}}
}

// Optional marks the field as optional.
func (b *boolBuilder) Optional() *boolBuilder { b.desc.Optional = true; return b }

// Default sets the default value of the field.
func (b *boolBuilder) Default(v bool) *boolBuilder { b.desc.Default = v; return b }

// Comment sets the declaration comment of the field.
func (b *boolBuilder) Comment(c string) *boolBuilder { b.desc.Comment = c; return b }

// Descriptor implements the modelgen.Field interface.
func (b *boolBuilder) Descriptor() *Descriptor { return b.desc }

// timeBuilder is the builder for time fields.
type timeBuilder struct {
	desc *Descriptor
}

// Time returns a new time field builder.
func Time(name string) *timeBuilder {
	return &timeBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: TypeTime}}}
}

// Optional marks the field as optional.
func (b *timeBuilder) Optional() *timeBuilder { b.desc.Optional = true; return b }

// Immutable forbids updating the field after creation.
func (b *timeBuilder) Immutable() *timeBuilder { b.desc.Immutable = true; return b }

// Comment sets the declaration comment of the field.
func (b *timeBuilder) Comment(c string) *timeBuilder { b.desc.Comment = c; return b }

// Descriptor implements the modelgen.Field interface.
func (b *timeBuilder) Descriptor() *Descriptor { return b.desc }

// bytesBuilder is the builder for binary fields.
type bytesBuilder struct {
	desc *Descriptor
}

// Bytes returns a new binary field builder.
func Bytes(name string) *bytesBuilder {
	return &bytesBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: TypeBytes}}}
}

// Optional marks the field as optional.
func (b *bytesBuilder) Optional() *bytesBuilder { b.desc.Optional = true; return b }

// Comment sets the declaration comment of the field.
func (b *bytesBuilder) Comment(c string) *bytesBuilder { b.desc.Comment = c; return b }

// Descriptor implements the modelgen.Field interface.
func (b *bytesBuilder) Descriptor() *Descriptor { return b.desc }

// uuidBuilder is the builder for UUID fields.
type uuidBuilder struct {
	desc *Descriptor
}

// UUID returns a new UUID field builder. The given value defines the
// concrete Go type, e.g. field.UUID("id", uuid.UUID{}).
func UUID(name string, typ any) *uuidBuilder {
	b := &uuidBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: TypeUUID}}}
	b.desc.goType(typ, reflect.Array)
	return b
}

// Optional marks the field as optional.
func (b *uuidBuilder) Optional() *uuidBuilder { b.desc.Optional = true; return b }

// Immutable forbids updating the field after creation.
func (b *uuidBuilder) Immutable() *uuidBuilder { b.desc.Immutable = true; return b }

// Comment sets the declaration comment of the field.
func (b *uuidBuilder) Comment(c string) *uuidBuilder { b.desc.Comment = c; return b }

// Descriptor implements the modelgen.Field interface.
func (b *uuidBuilder) Descriptor() *Descriptor { return b.desc }

// enumBuilder is the builder for enum fields.
type enumBuilder struct {
	desc *Descriptor
}

// Enum returns a new enum field builder. Enum values are stored in their
// string form; the accessor type is set with GoType or ValueType.
func Enum(name string) *enumBuilder {
	return &enumBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: TypeEnum}}}
}

// GoType sets the accessor-facing enum type from a value of that type.
// The type must have a string kind.
func (b *enumBuilder) GoType(typ any) *enumBuilder {
	b.desc.goType(typ, reflect.String)
	return b
}

// ValueType sets the accessor-facing enum type by identifier and import
// path. An empty path declares a type local to the generated package.
func (b *enumBuilder) ValueType(ident, pkgPath string) *enumBuilder {
	b.desc.Info.Ident = ident
	b.desc.Info.PkgPath = pkgPath
	return b
}

// Optional marks the field as optional.
func (b *enumBuilder) Optional() *enumBuilder { b.desc.Optional = true; return b }

// Default sets the default value of the field.
func (b *enumBuilder) Default(v string) *enumBuilder { b.desc.Default = v; return b }

// Comment sets the declaration comment of the field.
func (b *enumBuilder) Comment(c string) *enumBuilder { b.desc.Comment = c; return b }

// Descriptor implements the modelgen.Field interface.
func (b *enumBuilder) Descriptor() *Descriptor { return b.desc }

// jsonBuilder is the builder for JSON fields.
type jsonBuilder struct {
	desc *Descriptor
}

// JSON returns a new JSON field builder. The given value defines the
// accessor-facing payload type, e.g. field.JSON("payload", Blob{}).
func JSON(name string, typ any) *jsonBuilder {
	b := &jsonBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: TypeJSON}}}
	b.desc.goType(typ, reflect.Invalid)
	return b
}

// ValueType sets the accessor-facing payload type by identifier and import
// path, overriding the reflected one.
func (b *jsonBuilder) ValueType(ident, pkgPath string) *jsonBuilder {
	b.desc.Info.Ident = ident
	b.desc.Info.PkgPath = pkgPath
	return b
}

// Optional marks the field as optional.
func (b *jsonBuilder) Optional() *jsonBuilder { b.desc.Optional = true; return b }

// Comment sets the declaration comment of the field.
func (b *jsonBuilder) Comment(c string) *jsonBuilder { b.desc.Comment = c; return b }

// Descriptor implements the modelgen.Field interface.
func (b *jsonBuilder) Descriptor() *Descriptor { return b.desc }

// otherBuilder is the builder for fields backed by types the basic catalog
// does not know. Such fields are only claimable by custom plugins.
type otherBuilder struct {
	desc *Descriptor
}

// Other returns a builder for a field of an unsupported basic kind.
func Other(name string) *otherBuilder {
	return &otherBuilder{&Descriptor{Name: name, Info: &TypeInfo{Type: TypeOther}}}
}

// Comment sets the declaration comment of the field.
func (b *otherBuilder) Comment(c string) *otherBuilder { b.desc.Comment = c; return b }

// Descriptor implements the modelgen.Field interface.
func (b *otherBuilder) Descriptor() *Descriptor { return b.desc }
