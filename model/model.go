// Package model is the runtime support library for generated data models.
//
// Generated model structs embed Model, which stores field values keyed by
// their storage name. Typed property descriptors (StringProperty,
// IntProperty, EnumProperty[T], ...) are declared by the generated code and
// passed to the accessor helpers below.
//
// Enum and JSON backed properties round-trip through a plain string value:
// only the accessor-facing type differs from a StringProperty.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Model holds the raw field values of a generated data model.
// The zero value is ready to use.
type Model struct {
	values map[string]any
}

// Property descriptors for the basic field kinds. The generated code
// declares one descriptor per claimed field.
type (
	// StringProperty describes a string-backed field.
	StringProperty struct{ Name string }
	// IntProperty describes an integer field of canonical width.
	IntProperty struct{ Name string }
	// Int64Property describes a 64-bit integer field.
	Int64Property struct{ Name string }
	// Uint64Property describes an unsigned 64-bit integer field.
	Uint64Property struct{ Name string }
	// FloatProperty describes a floating point field.
	FloatProperty struct{ Name string }
	// BoolProperty describes a boolean field.
	BoolProperty struct{ Name string }
	// BytesProperty describes a binary field.
	BytesProperty struct{ Name string }
	// TimeProperty describes a date/time field.
	TimeProperty struct{ Name string }
	// UUIDProperty describes a UUID field.
	UUIDProperty struct{ Name string }
)

// EnumProperty describes a field whose value is stored as a string but
// exposed as the enum type T.
type EnumProperty[T ~string] struct{ Name string }

// JSONProperty describes a field whose value is stored as a JSON string
// but exposed as the payload type T.
type JSONProperty[T any] struct{ Name string }

// Set stores a raw value under the given storage name.
func (m *Model) Set(name string, v any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[name] = v
}

// Get returns the raw value stored under the given storage name.
func (m *Model) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether a value is present for the given storage name.
func (m *Model) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Clear removes the value stored under the given storage name.
func (m *Model) Clear(name string) {
	delete(m.values, name)
}

// GetString returns the value of a string-backed property.
func (m *Model) GetString(p StringProperty) string {
	v, _ := m.values[p.Name].(string)
	return v
}

// SetString sets the value of a string-backed property.
func (m *Model) SetString(p StringProperty, v string) { m.Set(p.Name, v) }

// GetInt returns the value of an integer property.
func (m *Model) GetInt(p IntProperty) int {
	v, _ := m.values[p.Name].(int)
	return v
}

// SetInt sets the value of an integer property.
func (m *Model) SetInt(p IntProperty, v int) { m.Set(p.Name, v) }

// GetInt64 returns the value of a 64-bit integer property.
func (m *Model) GetInt64(p Int64Property) int64 {
	v, _ := m.values[p.Name].(int64)
	return v
}

// SetInt64 sets the value of a 64-bit integer property.
func (m *Model) SetInt64(p Int64Property, v int64) { m.Set(p.Name, v) }

// GetUint64 returns the value of an unsigned 64-bit integer property.
func (m *Model) GetUint64(p Uint64Property) uint64 {
	v, _ := m.values[p.Name].(uint64)
	return v
}

// SetUint64 sets the value of an unsigned 64-bit integer property.
func (m *Model) SetUint64(p Uint64Property, v uint64) { m.Set(p.Name, v) }

// GetFloat returns the value of a floating point property.
func (m *Model) GetFloat(p FloatProperty) float64 {
	v, _ := m.values[p.Name].(float64)
	return v
}

// SetFloat sets the value of a floating point property.
func (m *Model) SetFloat(p FloatProperty, v float64) { m.Set(p.Name, v) }

// GetBool returns the value of a boolean property.
func (m *Model) GetBool(p BoolProperty) bool {
	v, _ := m.values[p.Name].(bool)
	return v
}

// SetBool sets the value of a boolean property.
func (m *Model) SetBool(p BoolProperty, v bool) { m.Set(p.Name, v) }

// GetBytes returns the value of a binary property.
func (m *Model) GetBytes(p BytesProperty) []byte {
	v, _ := m.values[p.Name].([]byte)
	return v
}

// SetBytes sets the value of a binary property.
func (m *Model) SetBytes(p BytesProperty, v []byte) { m.Set(p.Name, v) }

// GetTime returns the value of a date/time property.
func (m *Model) GetTime(p TimeProperty) time.Time {
	v, _ := m.values[p.Name].(time.Time)
	return v
}

// SetTime sets the value of a date/time property.
func (m *Model) SetTime(p TimeProperty, v time.Time) { m.Set(p.Name, v) }

// GetUUID returns the value of a UUID property.
func (m *Model) GetUUID(p UUIDProperty) uuid.UUID {
	v, _ := m.values[p.Name].(uuid.UUID)
	return v
}

// SetUUID sets the value of a UUID property.
func (m *Model) SetUUID(p UUIDProperty, v uuid.UUID) { m.Set(p.Name, v) }

// GetEnum returns the value of an enum property. The raw value is stored
// as a string; only the returned type differs.
func GetEnum[T ~string](m *Model, p EnumProperty[T]) T {
	return T(m.GetString(StringProperty{Name: p.Name}))
}

// SetEnum sets the value of an enum property, storing its string form.
func SetEnum[T ~string](m *Model, p EnumProperty[T], v T) {
	m.SetString(StringProperty{Name: p.Name}, string(v))
}

// GetJSON returns the decoded value of a JSON-backed property.
// A missing or malformed value yields the zero value of T.
func GetJSON[T any](m *Model, p JSONProperty[T]) T {
	var out T
	raw := m.GetString(StringProperty{Name: p.Name})
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero T
		return zero
	}
	return out
}

// SetJSON encodes v and stores its JSON string form.
// It returns the encoding error, if any; nothing is stored on failure.
func SetJSON[T any](m *Model, p JSONProperty[T], v T) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.SetString(StringProperty{Name: p.Name}, string(buf))
	return nil
}
