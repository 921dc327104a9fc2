// Package load provides the specification model consumed by the plugin
// resolution engine, and loads specification documents from YAML or JSON.
package load

import (
	"encoding/json"
	"fmt"

	"github.com/syssam/modelgen"
	"github.com/syssam/modelgen/schema/field"
)

// Spec is the declarative description of one data model: an ordered
// sequence of fields plus spec-level metadata.
type Spec struct {
	Name        string         `json:"name,omitempty" yaml:"name"`
	Package     string         `json:"package,omitempty" yaml:"package,omitempty"`
	Implements  []string       `json:"implements,omitempty" yaml:"implements,omitempty"`
	Fields      []*Field       `json:"fields,omitempty" yaml:"fields,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// Field is a loaded field declaration.
type Field struct {
	Name       string          `json:"name,omitempty" yaml:"name"`
	Info       *field.TypeInfo `json:"type,omitempty" yaml:"type"`
	Optional   bool            `json:"optional,omitempty" yaml:"optional,omitempty"`
	Nillable   bool            `json:"nillable,omitempty" yaml:"nillable,omitempty"`
	Immutable  bool            `json:"immutable,omitempty" yaml:"immutable,omitempty"`
	Constant   bool            `json:"constant,omitempty" yaml:"constant,omitempty"`
	Default    any             `json:"default,omitempty" yaml:"default,omitempty"`
	Comment    string          `json:"comment,omitempty" yaml:"comment,omitempty"`
	StorageKey string          `json:"storage_key,omitempty" yaml:"storage_key,omitempty"`
}

// StorageName returns the name the field value is stored under.
func (f *Field) StorageName() string {
	if f.StorageKey != "" {
		return f.StorageKey
	}
	return f.Name
}

// NewField creates a loaded field from a field descriptor.
// It returns an error if the descriptor carries an error or is incomplete.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("load: field %q: %w", fd.Name, fd.Err)
	}
	if fd.Name == "" {
		return nil, fmt.Errorf("load: field name cannot be empty")
	}
	if fd.Info == nil || !fd.Info.Valid() {
		return nil, fmt.Errorf("load: invalid type for field %q", fd.Name)
	}
	return &Field{
		Name:       fd.Name,
		Info:       fd.Info,
		Optional:   fd.Optional,
		Nillable:   fd.Nillable,
		Immutable:  fd.Immutable,
		Constant:   fd.Constant,
		Default:    fd.Default,
		Comment:    fd.Comment,
		StorageKey: fd.StorageKey,
	}, nil
}

// NewSpec creates a specification from field builders, preserving their
// declaration order.
func NewSpec(name string, fields ...modelgen.Field) (*Spec, error) {
	if name == "" {
		return nil, fmt.Errorf("load: spec name cannot be empty")
	}
	s := &Spec{Name: name}
	for _, f := range fields {
		lf, err := NewField(f.Descriptor())
		if err != nil {
			return nil, fmt.Errorf("load: spec %q: %w", name, err)
		}
		s.Fields = append(s.Fields, lf)
	}
	return s, nil
}

// MustSpec is like NewSpec but panics on error. Intended for tests and
// static spec declarations.
func MustSpec(name string, fields ...modelgen.Field) *Spec {
	s, err := NewSpec(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// MarshalSpec encodes the spec in its canonical JSON form.
func MarshalSpec(s *Spec) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
