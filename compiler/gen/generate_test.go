package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/schema/field"
)

func taskSpec() *load.Spec {
	return &load.Spec{
		Name:       "task",
		Implements: []string{"fmt.Stringer"},
		Fields: []*load.Field{
			{Name: "id", Info: &field.TypeInfo{Type: field.TypeInt}, Immutable: true},
			{Name: "status", Info: &field.TypeInfo{Type: field.TypeEnum, Ident: "Status"}},
			{Name: "payload", Info: &field.TypeInfo{Type: field.TypeJSON, Ident: "Blob"}},
			{Name: "note", Info: &field.TypeInfo{Type: field.TypeString}, Comment: "free-form operator note"},
			{Name: "created_at", Info: &field.TypeInfo{Type: field.TypeTime}},
			{Name: "max_retries", Info: &field.TypeInfo{Type: field.TypeInt}, Constant: true, Default: 3},
		},
	}
}

func generated(t *testing.T, dir, name string) string {
	t.Helper()
	src, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(src)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGenerator(WithTarget(dir), WithPackage("models"))
	require.NoError(t, err)

	require.NoError(t, g.Generate(context.Background(), taskSpec()))
	assert.Empty(t, g.Warnings())

	src := generated(t, dir, "task.go")
	assert.Contains(t, src, "// Code generated by modelgen. DO NOT EDIT.")
	assert.Contains(t, src, "package models")
	assert.Contains(t, src, "type Task struct {")
	assert.Contains(t, src, "model.Model")

	// Property declarations carry the storage name and the parameterized
	// descriptor types for the specialized fields.
	assert.Contains(t, src, "var IDProperty = model.IntProperty{Name: \"id\"}")
	assert.Contains(t, src, "var StatusProperty = model.EnumProperty[Status]{Name: \"status\"}")
	assert.Contains(t, src, "var PayloadProperty = model.JSONProperty[Blob]{Name: \"payload\"}")
	assert.Contains(t, src, "var CreatedAtProperty = model.TimeProperty{Name: \"created_at\"}")

	// Accessors expose the contract types; storage stays string-backed for
	// the specialized fields.
	assert.Contains(t, src, "func (m *Task) Status() Status {")
	assert.Contains(t, src, "return model.GetEnum(&m.Model, StatusProperty)")
	assert.Contains(t, src, "func (m *Task) SetStatus(v Status) *Task {")
	assert.Contains(t, src, "func (m *Task) Payload() Blob {")
	assert.Contains(t, src, "func (m *Task) Note() string {")

	// Immutable fields get no setter.
	assert.Contains(t, src, "func (m *Task) ID() int {")
	assert.NotContains(t, src, "func (m *Task) SetID(")

	// Comment copying, constructor, interfaces and constants.
	assert.Contains(t, src, "// free-form operator note")
	assert.Contains(t, src, "func NewTask() *Task {")
	assert.Contains(t, src, "var _ fmt.Stringer = (*Task)(nil)")
	assert.Contains(t, src, "MaxRetries = 3")
}

func TestGenerateHeaderOverride(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGenerator(
		WithTarget(dir),
		WithHeader("Code generated by acme-gen. DO NOT EDIT."),
	)
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background(), taskSpec()))

	src := generated(t, dir, "task.go")
	assert.Contains(t, src, "// Code generated by acme-gen. DO NOT EDIT.")
	assert.Contains(t, src, "package "+filepath.Base(dir), "package defaults to the target base name")
}

func TestGenerateDisableOptions(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGenerator(
		WithTarget(dir),
		WithPackage("models"),
		WithOptions("disableAccessors", "disableDefaultConstructors", "disableCommentCopying"),
	)
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background(), taskSpec()))
	assert.Empty(t, g.Warnings())

	src := generated(t, dir, "task.go")
	assert.Contains(t, src, "var StatusProperty = model.EnumProperty[Status]{Name: \"status\"}")
	assert.NotContains(t, src, "func (m *Task)")
	assert.NotContains(t, src, "func NewTask")
	assert.NotContains(t, src, "free-form operator note")
}

func TestGenerateUnclaimedPolicies(t *testing.T) {
	spec := &load.Spec{
		Name: "blob",
		Fields: []*load.Field{
			{Name: "raw", Info: &field.TypeInfo{Type: field.TypeOther, Ident: "Raw"}},
		},
	}

	t.Run("Warn", func(t *testing.T) {
		g, err := NewGenerator(WithTarget(t.TempDir()), WithPackage("models"))
		require.NoError(t, err)
		require.NoError(t, g.Generate(context.Background(), spec))
		warnings := g.Warnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "raw")
	})
	t.Run("Ignore", func(t *testing.T) {
		g, err := NewGenerator(WithTarget(t.TempDir()), WithPackage("models"),
			WithUnclaimedPolicy(UnclaimedIgnore))
		require.NoError(t, err)
		require.NoError(t, g.Generate(context.Background(), spec))
		assert.Empty(t, g.Warnings())
	})
	t.Run("Error", func(t *testing.T) {
		g, err := NewGenerator(WithTarget(t.TempDir()), WithPackage("models"),
			WithUnclaimedPolicy(UnclaimedError))
		require.NoError(t, err)
		err = g.Generate(context.Background(), spec)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnclaimedField)
		assert.True(t, IsGenerationError(err))
	})
}

func TestGenerateMultipleSpecs(t *testing.T) {
	dir := t.TempDir()
	specs := []*load.Spec{
		taskSpec(),
		{Name: "user_profile", Fields: []*load.Field{
			{Name: "user_id", Info: &field.TypeInfo{Type: field.TypeInt64}},
			{Name: "email", Info: &field.TypeInfo{Type: field.TypeString}},
		}},
	}
	warnings, err := Generate(context.Background(), specs, WithTarget(dir), WithPackage("models"), WithWorkers(2))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.FileExists(t, filepath.Join(dir, "task.go"))
	src := generated(t, dir, "user_profile.go")
	assert.Contains(t, src, "type UserProfile struct {")
	assert.Contains(t, src, "func (m *UserProfile) UserID() int64 {")
}

func TestGenerateErrors(t *testing.T) {
	t.Run("MissingTarget", func(t *testing.T) {
		_, err := NewGenerator()
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
	t.Run("NoSpecs", func(t *testing.T) {
		g, err := NewGenerator(WithTarget(t.TempDir()))
		require.NoError(t, err)
		err = g.Generate(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSpec)
	})
	t.Run("UnnamedSpec", func(t *testing.T) {
		g, err := NewGenerator(WithTarget(t.TempDir()))
		require.NoError(t, err)
		err = g.Generate(context.Background(), &load.Spec{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSpec)
	})
}
