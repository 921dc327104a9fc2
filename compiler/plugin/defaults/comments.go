package defaults

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
)

// CommentPlugin copies field comments onto the generated property
// declarations.
type CommentPlugin struct {
	plugin.Base
	spec *load.Spec
	env  *plugin.Environment
}

// Name returns the capability name.
func (*CommentPlugin) Name() string { return plugin.Comments }

// WillDeclareProperty schedules the field's comment lines ahead of the
// property declaration.
func (p *CommentPlugin) WillDeclareProperty(d *plugin.Declaration) {
	if d.Field == nil || d.Field.Comment == "" {
		return
	}
	for _, line := range strings.Split(d.Field.Comment, "\n") {
		d.AddBefore(jen.Comment(line))
	}
}
