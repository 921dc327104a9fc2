package defaults

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
	"github.com/syssam/modelgen/internal/naming"
)

// ConstantPlugin claims constant fields and copies them to the generated
// file as const declarations. It registers in the LOW tier so any other
// plugin gets first refusal on such fields; a constant claimed by a
// higher-tier plugin belongs to that plugin alone and is not re-emitted
// here.
type ConstantPlugin struct {
	plugin.Base
	spec    *load.Spec
	env     *plugin.Environment
	claimed map[string]struct{}
}

// Name returns the capability name.
func (*ConstantPlugin) Name() string { return plugin.Constants }

// ClaimField claims constant fields. The claim produces no property
// declaration; the value is emitted at spec level instead. The resolution
// loop only reaches this plugin when no higher-tier plugin claimed the
// field, so the record is exactly the set of constants this plugin owns.
func (p *ConstantPlugin) ClaimField(f *load.Field) bool {
	if !f.Constant {
		return false
	}
	if p.claimed == nil {
		p.claimed = make(map[string]struct{})
	}
	p.claimed[f.Name] = struct{}{}
	return true
}

// Declarations emits one const per claimed constant field, in declaration
// order. A constant without a value cannot be emitted and is reported.
func (p *ConstantPlugin) Declarations(f *jen.File) {
	var decls []jen.Code
	for _, fd := range p.spec.Fields {
		if _, ok := p.claimed[fd.Name]; !ok {
			continue
		}
		if fd.Default == nil {
			p.env.Diagnostics().Warnf("plugin: constant field %q on spec %q has no value, skipping", fd.Name, p.spec.Name)
			continue
		}
		if fd.Comment != "" {
			decls = append(decls, jen.Comment(fd.Comment))
		}
		decls = append(decls, jen.Id(naming.Pascal(fd.Name)).Op("=").Lit(fd.Default))
	}
	if len(decls) == 0 {
		return
	}
	f.Const().Defs(decls...)
}
