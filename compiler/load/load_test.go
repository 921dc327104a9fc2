package load_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/schema/field"
)

func TestNewSpec(t *testing.T) {
	s, err := load.NewSpec("Person",
		field.Int("id"),
		field.String("name").Comment("display name"),
		field.Enum("status").ValueType("Status", ""),
	)
	require.NoError(t, err)
	assert.Equal(t, "Person", s.Name)
	require.Len(t, s.Fields, 3)
	assert.Equal(t, "id", s.Fields[0].Name)
	assert.Equal(t, field.TypeInt, s.Fields[0].Info.Type)
	assert.Equal(t, "display name", s.Fields[1].Comment)
	assert.Equal(t, "Status", s.Fields[2].Info.Ident)
}

func TestNewSpecErrors(t *testing.T) {
	_, err := load.NewSpec("")
	assert.Error(t, err)

	// Builder errors surface at load time.
	_, err = load.NewSpec("Person", field.Enum("status").GoType(1))
	assert.Error(t, err)
}

func TestNewFieldValidation(t *testing.T) {
	_, err := load.NewField(&field.Descriptor{Name: ""})
	assert.Error(t, err)

	_, err = load.NewField(&field.Descriptor{Name: "x", Info: &field.TypeInfo{}})
	assert.Error(t, err)
}

func TestStorageName(t *testing.T) {
	f := &load.Field{Name: "name"}
	assert.Equal(t, "name", f.StorageName())
	f.StorageKey = "full_name"
	assert.Equal(t, "full_name", f.StorageName())
}

func TestUnmarshalSpec(t *testing.T) {
	doc := []byte(`
name: Person
package: person
implements:
  - fmt.Stringer
fields:
  - name: id
    type: int
  - name: status
    type: enum
    ident: Status
  - name: payload
    type: json
    ident: Blob
  - name: table
    type: string
    constant: true
    default: people
`)
	s, err := load.UnmarshalSpec(doc)
	require.NoError(t, err)
	assert.Equal(t, "Person", s.Name)
	assert.Equal(t, "person", s.Package)
	assert.Equal(t, []string{"fmt.Stringer"}, s.Implements)
	require.Len(t, s.Fields, 4)
	assert.Equal(t, field.TypeEnum, s.Fields[1].Info.Type)
	assert.Equal(t, "Status", s.Fields[1].Info.Ident)
	assert.True(t, s.Fields[3].Constant)
	assert.Equal(t, "people", s.Fields[3].Default)
}

func TestUnmarshalSpecErrors(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		_, err := load.UnmarshalSpec([]byte(`fields: []`))
		assert.Error(t, err)
	})
	t.Run("unknown type", func(t *testing.T) {
		_, err := load.UnmarshalSpec([]byte("name: X\nfields:\n  - name: a\n    type: wat\n"))
		assert.Error(t, err)
	})
	t.Run("missing field name", func(t *testing.T) {
		_, err := load.UnmarshalSpec([]byte("name: X\nfields:\n  - type: int\n"))
		assert.Error(t, err)
	})
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"),
		[]byte("name: B\nfields:\n  - name: id\n    type: int\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"),
		[]byte(`{"name": "A", "fields": [{"name": "id", "type": "int64"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	specs, err := load.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	// Sorted by file name.
	assert.Equal(t, "A", specs[0].Name)
	assert.Equal(t, "B", specs[1].Name)
	assert.Equal(t, field.TypeInt64, specs[0].Fields[0].Info.Type)
}

func TestMarshalSpec(t *testing.T) {
	s := load.MustSpec("Person", field.Int("id"))
	data, err := load.MarshalSpec(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Person"`)
}
