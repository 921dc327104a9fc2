// Package defaults provides the built-in plugin capabilities of modelgen.
//
// Importing the package (usually blank, by the emitter) registers every
// built-in capability in the plugin registration table. The Environment
// decides per run which of them are active and in which tier.
package defaults

import (
	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
)

func init() {
	plugin.Register(plugin.Constructors, func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &ConstructorPlugin{spec: s, env: e}, nil
	})
	plugin.Register(plugin.Interfaces, func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &InterfacePlugin{spec: s, env: e}, nil
	})
	plugin.Register(plugin.Comments, func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &CommentPlugin{spec: s, env: e}, nil
	})
	plugin.Register(plugin.BasicFields, func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &BasicFieldPlugin{spec: s, env: e}, nil
	})
	plugin.Register(plugin.EnumFields, func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &EnumFieldPlugin{spec: s, env: e}, nil
	})
	plugin.Register(plugin.JSONFields, func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &JSONFieldPlugin{spec: s, env: e}, nil
	})
	plugin.Register(plugin.Constants, func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &ConstantPlugin{spec: s, env: e}, nil
	})
}

var (
	_ plugin.Plugin = (*ConstructorPlugin)(nil)
	_ plugin.Plugin = (*InterfacePlugin)(nil)
	_ plugin.Plugin = (*CommentPlugin)(nil)
	_ plugin.Plugin = (*BasicFieldPlugin)(nil)
	_ plugin.Plugin = (*EnumFieldPlugin)(nil)
	_ plugin.Plugin = (*JSONFieldPlugin)(nil)
	_ plugin.Plugin = (*ConstantPlugin)(nil)
)
