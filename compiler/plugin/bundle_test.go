package plugin_test

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
	"github.com/syssam/modelgen/compiler/plugin/properties"
	"github.com/syssam/modelgen/schema/field"
)

func taskSpec() *load.Spec {
	return &load.Spec{
		Name: "task",
		Fields: []*load.Field{
			{Name: "id", Info: &field.TypeInfo{Type: field.TypeInt64}},
			{Name: "status", Info: &field.TypeInfo{Type: field.TypeEnum, Ident: "Status"}},
			{Name: "note", Info: &field.TypeInfo{Type: field.TypeString}, Comment: "free-form operator note"},
			{Name: "payload", Info: &field.TypeInfo{Type: field.TypeOther, Ident: "Payload"}},
			{Name: "max_retries", Info: &field.TypeInfo{Type: field.TypeInt}, Constant: true, Default: 3},
		},
	}
}

func fieldByName(t *testing.T, s *load.Spec, name string) *load.Field {
	t.Helper()
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not in spec", name)
	return nil
}

func TestBundleResolveField(t *testing.T) {
	spec := taskSpec()

	t.Run("HighTierWins", func(t *testing.T) {
		d := &plugin.Diagnostics{}
		env := plugin.NewEnvironment(map[string]string{plugin.PluginsKey: "acme.Claims:HIGH"}, d)
		b := env.BundleFor(spec)
		g, claimed := b.ResolveField(fieldByName(t, spec, "status"))
		require.True(t, claimed)
		assert.IsType(t, &markerGenerator{}, g, "the HIGH plugin outranks the built-in enum handling")
		assert.Zero(t, d.Len())
	})
	t.Run("NormalTierFallback", func(t *testing.T) {
		env := plugin.NewEnvironment(map[string]string{plugin.PluginsKey: "acme.Claims:HIGH"}, nil)
		b := env.BundleFor(spec)
		g, claimed := b.ResolveField(fieldByName(t, spec, "note"))
		require.True(t, claimed)
		assert.IsType(t, &properties.StringGenerator{}, g, "unclaimed by the HIGH plugin, falls to basic-fields")
	})
	t.Run("EnumDispatch", func(t *testing.T) {
		env := plugin.NewEnvironment(nil, nil)
		b := env.BundleFor(spec)
		g, claimed := b.ResolveField(fieldByName(t, spec, "status"))
		require.True(t, claimed)
		assert.IsType(t, &properties.EnumGenerator{}, g)
	})
	t.Run("ConstantClaimedWithoutGenerator", func(t *testing.T) {
		env := plugin.NewEnvironment(nil, nil)
		b := env.BundleFor(spec)
		g, claimed := b.ResolveField(fieldByName(t, spec, "max_retries"))
		assert.True(t, claimed)
		assert.Nil(t, g)
	})
	t.Run("Unclaimed", func(t *testing.T) {
		env := plugin.NewEnvironment(nil, nil)
		b := env.BundleFor(spec)
		g, claimed := b.ResolveField(fieldByName(t, spec, "payload"))
		assert.False(t, claimed)
		assert.Nil(t, g)
	})
	t.Run("DisabledEnumLeftUnclaimed", func(t *testing.T) {
		env := plugin.NewEnvironment(map[string]string{
			plugin.OptionsKey: "disableEnumFields,disableConstantCopying",
		}, nil)
		b := env.BundleFor(spec)
		_, claimed := b.ResolveField(fieldByName(t, spec, "status"))
		assert.False(t, claimed)
		_, claimed = b.ResolveField(fieldByName(t, spec, "max_retries"))
		assert.False(t, claimed)
	})
}

func TestBundleFactoryFailure(t *testing.T) {
	d := &plugin.Diagnostics{}
	env := plugin.NewEnvironment(map[string]string{plugin.PluginsKey: "acme.Flaky:HIGH"}, d)
	require.Zero(t, d.Len(), "registration succeeds; failure surfaces per bundle")

	b := env.BundleFor(taskSpec())
	require.Equal(t, 1, d.Len())
	assert.Contains(t, d.Warnings()[0], "acme.Flaky")
	for _, p := range b.Plugins() {
		assert.NotEqual(t, "acme.Flaky", p.Name())
	}
	// The failure is scoped to the spec: remaining capabilities still run.
	g, claimed := b.ResolveField(fieldByName(t, taskSpec(), "note"))
	assert.True(t, claimed)
	assert.NotNil(t, g)
}

func TestBundleNilInstanceSkipped(t *testing.T) {
	spec := taskSpec()
	d := &plugin.Diagnostics{}
	env := plugin.NewEnvironment(map[string]string{plugin.PluginsKey: "acme.Empty:HIGH"}, d)
	require.Zero(t, d.Len())

	b := env.BundleFor(spec)
	require.Equal(t, 1, d.Len())
	assert.Contains(t, d.Warnings()[0], "acme.Empty")
	for _, p := range b.Plugins() {
		require.NotNil(t, p)
		assert.NotEqual(t, "acme.Empty", p.Name())
	}
	// Resolution still runs over the remaining capabilities.
	g, claimed := b.ResolveField(fieldByName(t, spec, "note"))
	require.True(t, claimed)
	assert.IsType(t, &properties.StringGenerator{}, g)
}

func TestBundleHooks(t *testing.T) {
	spec := taskSpec()
	env := plugin.NewEnvironment(map[string]string{plugin.PluginsKey: "acme.Recorder:HIGH"}, nil)
	b := env.BundleFor(spec)

	note := fieldByName(t, spec, "note")
	g, claimed := b.ResolveField(note)
	require.True(t, claimed)

	decl := &plugin.Declaration{Spec: spec, Field: note, Generator: g}
	b.WillDeclareProperty(decl)
	b.DidDeclareProperty(decl)

	plugins := b.Plugins()
	require.NotEmpty(t, plugins)
	rec, ok := plugins[0].(*recorderPlugin)
	require.True(t, ok, "HIGH tier plugins come first in bundle order")
	assert.Equal(t, []string{"will:note", "did:note"}, rec.calls)

	// The comments capability scheduled the field comment ahead of the
	// declaration.
	require.Len(t, decl.Before(), 1)
	assert.Equal(t, "// free-form operator note", jen.Add(decl.Before()[0]).GoString())
	assert.Empty(t, decl.After())
}

func TestBundleDeclarations(t *testing.T) {
	spec := taskSpec()
	spec.Implements = []string{"fmt.Stringer", "Validator"}
	env := plugin.NewEnvironment(nil, nil)
	b := env.BundleFor(spec)
	for _, fd := range spec.Fields {
		b.ResolveField(fd)
	}

	f := jen.NewFile("models")
	b.Declarations(f)
	src := f.GoString()

	assert.Contains(t, src, "func NewTask() *Task")
	assert.Contains(t, src, "var _ fmt.Stringer = (*Task)(nil)")
	assert.Contains(t, src, "var _ Validator = (*Task)(nil)")
	assert.Contains(t, src, "MaxRetries = 3")
}

func TestConstantClaimedByHigherTierNotReemitted(t *testing.T) {
	spec := taskSpec()
	env := plugin.NewEnvironment(map[string]string{plugin.PluginsKey: "acme.ConstGrabber:HIGH"}, nil)
	b := env.BundleFor(spec)

	g, claimed := b.ResolveField(fieldByName(t, spec, "max_retries"))
	require.True(t, claimed)
	require.IsType(t, &markerGenerator{}, g, "the HIGH plugin owns the constant field")
	for _, fd := range spec.Fields {
		if fd.Name != "max_retries" {
			b.ResolveField(fd)
		}
	}

	f := jen.NewFile("models")
	b.Declarations(f)
	src := f.GoString()
	assert.NotContains(t, src, "MaxRetries = 3", "a claimed constant belongs to its claimant alone")
}
