package gen

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
	_ "github.com/syssam/modelgen/compiler/plugin/defaults"
	"github.com/syssam/modelgen/compiler/plugin/properties"
	"github.com/syssam/modelgen/internal/naming"
)

// A Generator emits one Go source file per specification. The plugin
// registry is built once at construction and shared by every spec; file
// generation runs in parallel with streaming writes.
type Generator struct {
	config *Config
	diag   *plugin.Diagnostics
	env    *plugin.Environment
}

// NewGenerator builds a generator from the default config plus the given
// options. The plugin registry is assembled here; registry-level warnings
// (malformed references, unknown options) are available through Warnings
// before anything is generated.
func NewGenerator(opts ...Option) (*Generator, error) {
	c, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	if c.Target == "" {
		return nil, NewConfigError("Target", nil, "target directory cannot be empty")
	}
	d := &plugin.Diagnostics{}
	return &Generator{
		config: c,
		diag:   d,
		env:    plugin.NewEnvironment(c.envOptions(), d),
	}, nil
}

// Environment returns the plugin registry built for this generator.
func (g *Generator) Environment() *plugin.Environment { return g.env }

// Warnings returns the warnings collected so far, in emission order.
func (g *Generator) Warnings() []string { return g.diag.Warnings() }

// Generate emits one file per spec under the target directory. Specs are
// processed in parallel, bounded by the configured worker count; the first
// error cancels the remaining work.
func (g *Generator) Generate(ctx context.Context, specs ...*load.Spec) error {
	if len(specs) == 0 {
		return NewSpecError("", "", "no specifications to generate", nil)
	}
	if err := os.MkdirAll(g.config.Target, 0o755); err != nil {
		return err
	}
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.config.Workers)
	for _, s := range specs {
		s := s
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			f, err := g.buildFile(s)
			if err != nil {
				return err
			}
			return g.writeFile(f, naming.Snake(s.Name)+".go")
		})
	}
	return errg.Wait()
}

// buildFile assembles the per-spec bundle and emits the model struct, the
// property declarations with their plugin hooks, the accessors, and the
// spec-level plugin declarations.
func (g *Generator) buildFile(spec *load.Spec) (*jen.File, error) {
	if spec.Name == "" {
		return nil, NewSpecError("", "", "spec name cannot be empty", nil)
	}
	f := g.newFile(g.packageName(spec))
	b := g.env.BundleFor(spec)
	name := naming.Pascal(spec.Name)

	f.Commentf("%s is the generated model for the %q specification.", name, spec.Name)
	f.Type().Id(name).Struct(jen.Qual(properties.ModelPkg, "Model"))

	for _, fd := range spec.Fields {
		gen, claimed := b.ResolveField(fd)
		if !claimed {
			if err := g.unclaimed(spec, fd); err != nil {
				return nil, err
			}
			continue
		}
		if gen == nil {
			// Claimed without a property declaration; the owning plugin
			// handles the field at spec level.
			continue
		}
		for _, p := range gen.RequiredImports() {
			f.ImportName(p, path.Base(p))
		}
		decl := &plugin.Declaration{Spec: spec, Field: fd, Generator: gen}
		b.WillDeclareProperty(decl)
		for _, code := range decl.Before() {
			f.Add(code)
		}
		f.Var().Id(gen.PropertyName() + "Property").Op("=").Add(gen.PropertyType()).Values(
			jen.Id("Name").Op(":").Lit(fd.StorageName()),
		)
		for _, code := range decl.After() {
			f.Add(code)
		}
		b.DidDeclareProperty(decl)
		if !g.env.HasOption(plugin.OptionDisableAccessors) {
			accessors(f, name, fd, gen)
		}
	}

	b.Declarations(f)
	return f, nil
}

// accessors emits the getter, and for mutable fields the chaining setter.
func accessors(f *jen.File, recv string, fd *load.Field, gen properties.PropertyGenerator) {
	getter := gen.PropertyName()
	f.Commentf("%s returns the value of the %q field.", getter, fd.Name)
	f.Func().Params(jen.Id("m").Op("*").Id(recv)).Id(getter).Params().
		Add(gen.AccessorType()).
		BlockFunc(gen.GetterBody)
	if fd.Immutable {
		return
	}
	setter := "Set" + gen.PropertyName()
	f.Commentf("%s sets the %q field and returns the model for chaining.", setter, fd.Name)
	f.Func().Params(jen.Id("m").Op("*").Id(recv)).Id(setter).Params(jen.Id("v").Add(gen.AccessorType())).
		Op("*").Id(recv).
		BlockFunc(gen.SetterBody)
}

func (g *Generator) unclaimed(spec *load.Spec, fd *load.Field) error {
	switch g.config.Unclaimed {
	case UnclaimedIgnore:
		return nil
	case UnclaimedError:
		return NewGenerationError(spec.Name, fd.Name, "no plugin claimed the field", ErrUnclaimedField)
	default:
		g.diag.Warnf("gen: no plugin claimed field %q on spec %q, skipping", fd.Name, spec.Name)
		return nil
	}
}

func (g *Generator) packageName(spec *load.Spec) string {
	switch {
	case g.config.Package != "":
		return g.config.Package
	case spec.Package != "":
		return spec.Package
	default:
		return filepath.Base(g.config.Target)
	}
}

// newFile creates a new Jennifer file with the header comment.
func (g *Generator) newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	if g.config.Header != "" {
		f.HeaderComment(g.config.Header)
	} else {
		f.HeaderComment("Code generated by modelgen. DO NOT EDIT.")
	}
	return f
}

// writeFile renders the jennifer file directly to disk (no buffering).
func (g *Generator) writeFile(f *jen.File, filename string) error {
	out, err := os.Create(filepath.Join(g.config.Target, filename))
	if err != nil {
		return err
	}
	defer out.Close()

	// Jennifer renders with correct imports and formatting.
	if err := f.Render(out); err != nil {
		return NewGenerationError("", "", fmt.Sprintf("render %s", filename), err)
	}
	return nil
}

// Generate is the convenience entry point: it builds a generator, runs it
// over the given specs, and returns the collected warnings alongside any
// error.
func Generate(ctx context.Context, specs []*load.Spec, opts ...Option) ([]string, error) {
	g, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}
	err = g.Generate(ctx, specs...)
	return g.Warnings(), err
}
