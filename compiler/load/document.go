package load

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/syssam/modelgen/schema/field"
)

// specDocument is the on-disk form of a specification. YAML is the primary
// format; JSON documents decode through the same path.
type specDocument struct {
	Name        string          `yaml:"name"`
	Package     string          `yaml:"package"`
	Implements  []string        `yaml:"implements"`
	Annotations map[string]any  `yaml:"annotations"`
	Fields      []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Ident      string `yaml:"ident"`
	PkgPath    string `yaml:"pkg"`
	Optional   bool   `yaml:"optional"`
	Nillable   bool   `yaml:"nillable"`
	Immutable  bool   `yaml:"immutable"`
	Constant   bool   `yaml:"constant"`
	Default    any    `yaml:"default"`
	Comment    string `yaml:"comment"`
	StorageKey string `yaml:"storage_key"`
}

// UnmarshalSpec decodes one specification document.
func UnmarshalSpec(data []byte) (*Spec, error) {
	var doc specDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load: decoding spec document: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("load: spec document is missing a name")
	}
	s := &Spec{
		Name:        doc.Name,
		Package:     doc.Package,
		Implements:  doc.Implements,
		Annotations: doc.Annotations,
	}
	for i, fd := range doc.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("load: spec %q: field #%d is missing a name", doc.Name, i)
		}
		typ, ok := field.ParseType(fd.Type)
		if !ok {
			return nil, fmt.Errorf("load: spec %q: field %q has unknown type %q", doc.Name, fd.Name, fd.Type)
		}
		s.Fields = append(s.Fields, &Field{
			Name:       fd.Name,
			Info:       &field.TypeInfo{Type: typ, Ident: fd.Ident, PkgPath: fd.PkgPath},
			Optional:   fd.Optional,
			Nillable:   fd.Nillable,
			Immutable:  fd.Immutable,
			Constant:   fd.Constant,
			Default:    fd.Default,
			Comment:    fd.Comment,
			StorageKey: fd.StorageKey,
		})
	}
	return s, nil
}

// LoadFile loads one specification document from the given path.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: reading %s: %w", path, err)
	}
	s, err := UnmarshalSpec(data)
	if err != nil {
		return nil, fmt.Errorf("load: %s: %w", path, err)
	}
	return s, nil
}

var specExtensions = []string{".yaml", ".yml", ".json"}

// LoadDir loads all specification documents found directly under dir,
// sorted by file name for a stable generation order.
func LoadDir(dir string) ([]*Spec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load: reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(specExtensions, filepath.Ext(e.Name())) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	specs := make([]*Spec, 0, len(paths))
	for _, p := range paths {
		s, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}
