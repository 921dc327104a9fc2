package defaults

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
	"github.com/syssam/modelgen/internal/naming"
)

// InterfacePlugin emits compile-time assertions for every interface the
// spec declares in its implements list. An entry is either a local
// identifier ("Validator") or a qualified one ("encoding/json.Marshaler",
// split at the last dot).
type InterfacePlugin struct {
	plugin.Base
	spec *load.Spec
	env  *plugin.Environment
}

// Name returns the capability name.
func (*InterfacePlugin) Name() string { return plugin.Interfaces }

// Declarations emits one var _ assertion per declared interface. Entries
// that are empty or reduce to an empty identifier are skipped with a
// warning.
func (p *InterfacePlugin) Declarations(f *jen.File) {
	name := naming.Pascal(p.spec.Name)
	for _, entry := range p.spec.Implements {
		iface, ok := interfaceRef(entry)
		if !ok {
			p.env.Diagnostics().Warnf("plugin: spec %q declares malformed interface %q, skipping", p.spec.Name, entry)
			continue
		}
		f.Var().Id("_").Add(iface).Op("=").Parens(jen.Op("*").Id(name)).Parens(jen.Nil())
	}
}

func interfaceRef(entry string) (jen.Code, bool) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil, false
	}
	idx := strings.LastIndex(entry, ".")
	if idx < 0 {
		return jen.Id(entry), true
	}
	path, ident := entry[:idx], entry[idx+1:]
	if path == "" || ident == "" {
		return nil, false
	}
	return jen.Qual(path, ident), true
}
