package plugin_test

import (
	"errors"
	"fmt"

	"github.com/syssam/modelgen/compiler/load"
	"github.com/syssam/modelgen/compiler/plugin"
	_ "github.com/syssam/modelgen/compiler/plugin/defaults"
	"github.com/syssam/modelgen/compiler/plugin/properties"
)

func init() {
	plugin.Register("acme.Audit", func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &auditPlugin{}, nil
	}, plugin.WithSupportedOptions("acmeAuditFormat"))
	plugin.Register("acme.Claims", func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &claimingPlugin{spec: s}, nil
	})
	plugin.Register("acme.Flaky", func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return nil, errors.New("spec not supported")
	})
	plugin.Register("acme.Empty", func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return nil, nil
	})
	plugin.Register("acme.ConstGrabber", func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &constGrabberPlugin{spec: s}, nil
	})
	plugin.Register("acme.Recorder", func(s *load.Spec, e *plugin.Environment) (plugin.Plugin, error) {
		return &recorderPlugin{}, nil
	})
}

// auditPlugin claims nothing; it exists to occupy a tier slot.
type auditPlugin struct{ plugin.Base }

func (*auditPlugin) Name() string { return "acme.Audit" }

// claimingPlugin claims fields named "status" and wraps the stock string
// generator in a marker type so tests can tell who won the resolution.
type claimingPlugin struct {
	plugin.Base
	spec *load.Spec
}

func (*claimingPlugin) Name() string { return "acme.Claims" }

func (p *claimingPlugin) ClaimField(f *load.Field) bool { return f.Name == "status" }

func (p *claimingPlugin) PropertyGenerator(f *load.Field) properties.PropertyGenerator {
	return &markerGenerator{properties.NewString(f, p.spec)}
}

type markerGenerator struct{ properties.PropertyGenerator }

// constGrabberPlugin claims constant fields ahead of the built-in
// constant-copying capability.
type constGrabberPlugin struct {
	plugin.Base
	spec *load.Spec
}

func (*constGrabberPlugin) Name() string { return "acme.ConstGrabber" }

func (p *constGrabberPlugin) ClaimField(f *load.Field) bool { return f.Constant }

func (p *constGrabberPlugin) PropertyGenerator(f *load.Field) properties.PropertyGenerator {
	return &markerGenerator{properties.NewString(f, p.spec)}
}

// recorderPlugin logs every hook invocation it receives.
type recorderPlugin struct {
	plugin.Base
	calls []string
}

func (*recorderPlugin) Name() string { return "acme.Recorder" }

func (p *recorderPlugin) WillDeclareProperty(d *plugin.Declaration) {
	p.calls = append(p.calls, fmt.Sprintf("will:%s", d.Field.Name))
}

func (p *recorderPlugin) DidDeclareProperty(d *plugin.Declaration) {
	p.calls = append(p.calls, fmt.Sprintf("did:%s", d.Field.Name))
}
