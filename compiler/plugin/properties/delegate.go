package properties

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/internal/naming"
)

// accessorRef holds the accessor-facing type of a specialized field: an
// identifier plus an optional import path. The identifier may carry a
// package qualifier (as produced by reflection); only the bare name is
// rendered, qualified through the import path when one is set.
type accessorRef struct {
	ident   string
	pkgPath string
}

func newAccessorRef(f *load.Field) accessorRef {
	ref := accessorRef{ident: f.Info.Ident, pkgPath: f.Info.PkgPath}
	if ref.ident == "" {
		ref.ident = naming.Pascal(f.Name)
	}
	if idx := strings.LastIndex(ref.ident, "."); idx >= 0 {
		ref.ident = ref.ident[idx+1:]
	}
	return ref
}

func (r accessorRef) code() jen.Code {
	if r.pkgPath != "" {
		return jen.Qual(r.pkgPath, r.ident)
	}
	return jen.Id(r.ident)
}

func (r accessorRef) imports() []string {
	if r.pkgPath != "" {
		return []string{r.pkgPath}
	}
	return nil
}

// EnumDelegate supplies the accessor type and body synthesis for
// enum-backed fields. The stored value is the enum's string form.
type EnumDelegate struct {
	ref accessorRef
}

// NewEnumDelegate returns the delegate for an enum field.
func NewEnumDelegate(f *load.Field) *EnumDelegate {
	return &EnumDelegate{ref: newAccessorRef(f)}
}

// AccessorType returns the enum type itself.
func (d *EnumDelegate) AccessorType() jen.Code { return d.ref.code() }

// PropertyType returns the property descriptor type parameterized by the
// enum type.
func (d *EnumDelegate) PropertyType() jen.Code {
	return jen.Qual(ModelPkg, "EnumProperty").Index(d.ref.code())
}

// GetterBody converts the stored string to the enum type.
func (d *EnumDelegate) GetterBody(propertyVar string, g *jen.Group) {
	g.Return(jen.Qual(ModelPkg, "GetEnum").Call(jen.Op("&").Id("m").Dot("Model"), jen.Id(propertyVar)))
}

// SetterBody stores the enum's string form.
func (d *EnumDelegate) SetterBody(propertyVar string, g *jen.Group) {
	g.Qual(ModelPkg, "SetEnum").Call(jen.Op("&").Id("m").Dot("Model"), jen.Id(propertyVar), jen.Id("v"))
	g.Return(jen.Id("m"))
}

// RequiredImports returns the enum type's import path, if any.
func (d *EnumDelegate) RequiredImports() []string { return d.ref.imports() }

// JSONDelegate supplies the accessor type and body synthesis for
// JSON-backed fields. The stored value is the payload's JSON string form.
type JSONDelegate struct {
	ref accessorRef
}

// NewJSONDelegate returns the delegate for a JSON field.
func NewJSONDelegate(f *load.Field) *JSONDelegate {
	return &JSONDelegate{ref: newAccessorRef(f)}
}

// AccessorType returns the payload type.
func (d *JSONDelegate) AccessorType() jen.Code { return d.ref.code() }

// PropertyType returns the property descriptor type parameterized by the
// payload type.
func (d *JSONDelegate) PropertyType() jen.Code {
	return jen.Qual(ModelPkg, "JSONProperty").Index(d.ref.code())
}

// GetterBody decodes the stored JSON string into the payload type.
func (d *JSONDelegate) GetterBody(propertyVar string, g *jen.Group) {
	g.Return(jen.Qual(ModelPkg, "GetJSON").Call(jen.Op("&").Id("m").Dot("Model"), jen.Id(propertyVar)))
}

// SetterBody encodes the payload and stores its JSON string form.
func (d *JSONDelegate) SetterBody(propertyVar string, g *jen.Group) {
	g.Id("_").Op("=").Qual(ModelPkg, "SetJSON").Call(jen.Op("&").Id("m").Dot("Model"), jen.Id(propertyVar), jen.Id("v"))
	g.Return(jen.Id("m"))
}

// RequiredImports returns the payload type's import path, if any.
func (d *JSONDelegate) RequiredImports() []string { return d.ref.imports() }

// EnumGenerator generates enum-backed properties. It embeds the string
// generator for storage mechanics and delegates the accessor contract.
type EnumGenerator struct {
	*StringGenerator
	delegate AccessorDelegate
}

// NewEnum returns the generator for an enum field.
func NewEnum(f *load.Field, s *load.Spec) *EnumGenerator {
	return &EnumGenerator{
		StringGenerator: NewString(f, s),
		delegate:        NewEnumDelegate(f),
	}
}

// AccessorType returns the enum type instead of the base's string type.
func (g *EnumGenerator) AccessorType() jen.Code { return g.delegate.AccessorType() }

// PropertyType returns the parameterized enum property type.
func (g *EnumGenerator) PropertyType() jen.Code { return g.delegate.PropertyType() }

// GetterBody delegates getter synthesis.
func (g *EnumGenerator) GetterBody(grp *jen.Group) { g.delegate.GetterBody(g.propertyVar(), grp) }

// SetterBody delegates setter synthesis.
func (g *EnumGenerator) SetterBody(grp *jen.Group) { g.delegate.SetterBody(g.propertyVar(), grp) }

// RequiredImports combines the base's imports with the delegate's.
func (g *EnumGenerator) RequiredImports() []string {
	return append(g.StringGenerator.RequiredImports(), g.delegate.RequiredImports()...)
}

// JSONGenerator generates JSON-backed properties. It embeds the string
// generator for storage mechanics and delegates the accessor contract.
type JSONGenerator struct {
	*StringGenerator
	delegate AccessorDelegate
}

// NewJSON returns the generator for a JSON field.
func NewJSON(f *load.Field, s *load.Spec) *JSONGenerator {
	return &JSONGenerator{
		StringGenerator: NewString(f, s),
		delegate:        NewJSONDelegate(f),
	}
}

// AccessorType returns the payload type instead of the base's string type.
func (g *JSONGenerator) AccessorType() jen.Code { return g.delegate.AccessorType() }

// PropertyType returns the parameterized JSON property type.
func (g *JSONGenerator) PropertyType() jen.Code { return g.delegate.PropertyType() }

// GetterBody delegates getter synthesis.
func (g *JSONGenerator) GetterBody(grp *jen.Group) { g.delegate.GetterBody(g.propertyVar(), grp) }

// SetterBody delegates setter synthesis.
func (g *JSONGenerator) SetterBody(grp *jen.Group) { g.delegate.SetterBody(g.propertyVar(), grp) }

// RequiredImports combines the base's imports with the delegate's.
func (g *JSONGenerator) RequiredImports() []string {
	return append(g.StringGenerator.RequiredImports(), g.delegate.RequiredImports()...)
}
