package defaults

import (
	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
	"github.com/syssam/modelgen/compiler/plugin/properties"
	"github.com/syssam/modelgen/schema/field"
)

// BasicFieldPlugin claims fields of the primitive-like kinds and dispatches
// them through the property-generator catalog.
type BasicFieldPlugin struct {
	plugin.Base
	spec *load.Spec
	env  *plugin.Environment
}

// Name returns the capability name.
func (*BasicFieldPlugin) Name() string { return plugin.BasicFields }

// ClaimField claims non-constant fields the catalog has an entry for.
func (p *BasicFieldPlugin) ClaimField(f *load.Field) bool {
	if f.Constant {
		return false
	}
	_, ok := properties.ForField(f, p.spec)
	return ok
}

// PropertyGenerator dispatches through the catalog; first match wins.
func (p *BasicFieldPlugin) PropertyGenerator(f *load.Field) properties.PropertyGenerator {
	g, _ := properties.ForField(f, p.spec)
	return g
}

// EnumFieldPlugin claims enum fields and generates string-backed
// properties with the enum type as accessor contract.
type EnumFieldPlugin struct {
	plugin.Base
	spec *load.Spec
	env  *plugin.Environment
}

// Name returns the capability name.
func (*EnumFieldPlugin) Name() string { return plugin.EnumFields }

// ClaimField claims non-constant enum fields.
func (p *EnumFieldPlugin) ClaimField(f *load.Field) bool {
	return !f.Constant && f.Info != nil && f.Info.Type == field.TypeEnum
}

// PropertyGenerator returns the delegate-composed enum generator.
func (p *EnumFieldPlugin) PropertyGenerator(f *load.Field) properties.PropertyGenerator {
	return properties.NewEnum(f, p.spec)
}

// JSONFieldPlugin claims JSON fields and generates string-backed
// properties with the payload type as accessor contract.
type JSONFieldPlugin struct {
	plugin.Base
	spec *load.Spec
	env  *plugin.Environment
}

// Name returns the capability name.
func (*JSONFieldPlugin) Name() string { return plugin.JSONFields }

// ClaimField claims non-constant JSON fields.
func (p *JSONFieldPlugin) ClaimField(f *load.Field) bool {
	return !f.Constant && f.Info != nil && f.Info.Type == field.TypeJSON
}

// PropertyGenerator returns the delegate-composed JSON generator.
func (p *JSONFieldPlugin) PropertyGenerator(f *load.Field) properties.PropertyGenerator {
	return properties.NewJSON(f, p.spec)
}
