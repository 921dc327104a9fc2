package defaults

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
	"github.com/syssam/modelgen/internal/naming"
)

// ConstructorPlugin emits the default constructor function for each model.
type ConstructorPlugin struct {
	plugin.Base
	spec *load.Spec
	env  *plugin.Environment
}

// Name returns the capability name.
func (*ConstructorPlugin) Name() string { return plugin.Constructors }

// Declarations emits the zero-value constructor.
func (p *ConstructorPlugin) Declarations(f *jen.File) {
	name := naming.Pascal(p.spec.Name)
	f.Comment(fmt.Sprintf("New%s returns an empty %s.", name, name))
	f.Func().Id("New" + name).Params().Op("*").Id(name).Block(
		jen.Return(jen.Op("&").Id(name).Values()),
	)
}
