package field

import "strings"

// A Type represents a field declared type.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeJSON
	TypeUUID
	TypeBytes
	TypeEnum
	TypeString
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeOther
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeTime:    "time.Time",
	TypeJSON:    "json",
	TypeUUID:    "uuid.UUID",
	TypeBytes:   "[]byte",
	TypeEnum:    "enum",
	TypeString:  "string",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint:    "uint",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
	TypeOther:   "other",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// ConstName returns the constant name of a type, e.g. "TypeInt64".
func (t Type) ConstName() string {
	switch t {
	case TypeTime:
		return "TypeTime"
	case TypeUUID:
		return "TypeUUID"
	case TypeBytes:
		return "TypeBytes"
	case TypeJSON:
		return "TypeJSON"
	case TypeOther:
		return "TypeOther"
	default:
		return "Type" + strings.ToUpper(t.String()[:1]) + t.String()[1:]
	}
}

// Valid reports if the given type is a valid type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt8 && t <= TypeFloat64
}

// Integer reports if the given type is an integral type.
func (t Type) Integer() bool {
	return t >= TypeInt8 && t <= TypeUint64
}

// Float reports if the given type is a float type.
func (t Type) Float() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// aliases accepted by ParseType in addition to Type.String() forms.
var typeAliases = map[string]Type{
	"time":  TypeTime,
	"uuid":  TypeUUID,
	"bytes": TypeBytes,
	"text":  TypeString,
}

// ParseType returns the type named by s, matching either the String form
// ("int", "string", "enum", ...) or a short alias ("time", "uuid", "bytes").
// Matching is case-insensitive.
func ParseType(s string) (Type, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if t, ok := typeAliases[name]; ok {
		return t, true
	}
	for t := TypeBool; t < endTypes; t++ {
		if typeNames[t] == name {
			return t, true
		}
	}
	return TypeInvalid, false
}

// TypeInfo holds the information regarding field type.
// Used by the property-generator catalog for structural matching, and by
// enum/JSON kinds to carry the accessor-facing type.
type TypeInfo struct {
	Type    Type   `json:"type,omitempty" yaml:"type,omitempty"`
	Ident   string `json:"ident,omitempty" yaml:"ident,omitempty"`
	PkgPath string `json:"pkg_path,omitempty" yaml:"pkg_path,omitempty"`
}

// String returns the string representation of the type info.
func (t TypeInfo) String() string {
	if t.Ident != "" {
		return t.Ident
	}
	return t.Type.String()
}

// Valid reports if the given type info is valid.
func (t TypeInfo) Valid() bool {
	return t.Type.Valid()
}
