package properties

import (
	"slices"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/schema/field"
)

// Constructor builds a property generator for a field of a matched kind.
type Constructor func(f *load.Field, s *load.Spec) PropertyGenerator

// A CatalogEntry maps a set of declared types to a generator constructor.
type CatalogEntry struct {
	Types []field.Type
	New   Constructor
}

// Catalog is the ordered list of generator constructors for the basic
// field kinds. Dispatch picks the first entry whose type set contains the
// field's declared type.
var Catalog = []CatalogEntry{
	{Types: []field.Type{field.TypeInt8, field.TypeInt16, field.TypeInt32, field.TypeInt,
		field.TypeUint8, field.TypeUint16, field.TypeUint32, field.TypeUint}, New: NewInt},
	{Types: []field.Type{field.TypeInt64}, New: NewInt64},
	{Types: []field.Type{field.TypeUint64}, New: NewUint64},
	{Types: []field.Type{field.TypeFloat32, field.TypeFloat64}, New: NewFloat},
	{Types: []field.Type{field.TypeBool}, New: NewBool},
	{Types: []field.Type{field.TypeString}, New: func(f *load.Field, s *load.Spec) PropertyGenerator {
		return NewString(f, s)
	}},
	{Types: []field.Type{field.TypeBytes}, New: NewBytes},
	{Types: []field.Type{field.TypeTime}, New: NewTime},
	{Types: []field.Type{field.TypeUUID}, New: NewUUID},
}

// ForField returns a generator for the field's declared type, or false if
// no catalog entry matches. A non-match is not an error: the caller reports
// the field as unhandled and resolution moves on.
func ForField(f *load.Field, s *load.Spec) (PropertyGenerator, bool) {
	if f.Info == nil {
		return nil, false
	}
	for _, e := range Catalog {
		if slices.Contains(e.Types, f.Info.Type) {
			return e.New(f, s), true
		}
	}
	return nil, false
}
