// modelgen generates model code from specification documents.
//
// Usage:
//
//	modelgen -config modelgen.yaml
//	modelgen -specs ./specs -target ./models -package models
//	modelgen -specs ./specs -target ./models -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/syssam/modelgen/compiler/gen"
	"github.com/syssam/modelgen/compiler/load"
)

// fileConfig is the on-disk configuration document.
type fileConfig struct {
	Specs      string            `yaml:"specs"`
	Target     string            `yaml:"target"`
	Package    string            `yaml:"package,omitempty"`
	Header     string            `yaml:"header,omitempty"`
	Plugins    []string          `yaml:"plugins,omitempty"`
	Options    []string          `yaml:"options,omitempty"`
	EnvOptions map[string]string `yaml:"env_options,omitempty"`
	Unclaimed  string            `yaml:"unclaimed,omitempty"`
	Workers    int               `yaml:"workers,omitempty"`
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML configuration file")
		specsDir   = flag.String("specs", "", "directory holding specification documents")
		targetDir  = flag.String("target", "", "output directory for generated code")
		pkgName    = flag.String("package", "", "output package name")
		watch      = flag.Bool("watch", false, "regenerate whenever a specification changes")
	)
	flag.Parse()

	cfg, err := resolveConfig(*configPath, *specsDir, *targetDir, *pkgName)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fatal(err)
	}
	if *watch {
		if err := watchSpecs(ctx, cfg); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "modelgen: %v\n", err)
	os.Exit(1)
}

// resolveConfig merges the optional config file with the flag overrides.
func resolveConfig(path, specs, target, pkg string) (*fileConfig, error) {
	cfg := &fileConfig{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if specs != "" {
		cfg.Specs = specs
	}
	if target != "" {
		cfg.Target = target
	}
	if pkg != "" {
		cfg.Package = pkg
	}
	if cfg.Specs == "" {
		return nil, fmt.Errorf("no specs directory; set -specs or the specs key in the config file")
	}
	if cfg.Target == "" {
		return nil, fmt.Errorf("no target directory; set -target or the target key in the config file")
	}
	return cfg, nil
}

func (c *fileConfig) options() ([]gen.Option, error) {
	opts := []gen.Option{
		gen.WithTarget(c.Target),
		gen.WithPlugins(c.Plugins...),
		gen.WithOptions(c.Options...),
	}
	if c.Package != "" {
		opts = append(opts, gen.WithPackage(c.Package))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	for k, v := range c.EnvOptions {
		opts = append(opts, gen.WithEnvOption(k, v))
	}
	if c.Unclaimed != "" {
		p, ok := gen.ParseUnclaimedPolicy(c.Unclaimed)
		if !ok {
			return nil, fmt.Errorf("unknown unclaimed policy %q; use warn, ignore, or error", c.Unclaimed)
		}
		opts = append(opts, gen.WithUnclaimedPolicy(p))
	}
	if c.Workers > 0 {
		opts = append(opts, gen.WithWorkers(c.Workers))
	}
	return opts, nil
}

func run(ctx context.Context, cfg *fileConfig) error {
	specs, err := load.LoadDir(cfg.Specs)
	if err != nil {
		return err
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	warnings, err := gen.Generate(ctx, specs, opts...)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "modelgen: warning: %s\n", w)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "modelgen: generated %d model(s) in %s\n", len(specs), cfg.Target)
	return nil
}

// watchSpecs regenerates on every change to a specification document until
// the context is canceled. A failed regeneration is reported and watching
// continues.
func watchSpecs(ctx context.Context, cfg *fileConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(cfg.Specs); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "modelgen: watching %s\n", cfg.Specs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !specDocument(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			fmt.Fprintf(os.Stderr, "modelgen: %s changed, regenerating\n", filepath.Base(event.Name))
			if err := run(ctx, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "modelgen: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "modelgen: watch error: %v\n", err)
		}
	}
}

func specDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
