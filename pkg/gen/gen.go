// Package gen is the public entry point: it loads SDL files, resolves model
// bindings, runs declaration generation and writes the result.
package gen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/graphidae/resolvergen/internal/codegen"
	"github.com/graphidae/resolvergen/internal/modpath"
	"github.com/graphidae/resolvergen/internal/schema"
	"github.com/graphidae/resolvergen/pkg/manifest"
)

// Generate runs one generation pass with the given options applied on top of
// the defaults.
func Generate(opts ...Option) error {
	o := NewOptions()
	for _, opt := range opts {
		opt(o)
	}
	return Run(o)
}

// Run executes the pipeline described by o: parse the schema, bind models,
// generate declarations and write the output file. The manifest, when
// configured, records the written file afterwards.
func Run(o *Options) error {
	if err := o.Normalize(); err != nil {
		return err
	}
	log := slog.Default()

	sources := make([]schema.Source, 0, len(o.SchemaFiles))
	names := make([]string, 0, len(o.SchemaFiles))
	for _, file := range o.SchemaFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		sources = append(sources, schema.Source{Name: file, Input: string(data)})
		names = append(names, filepath.Base(file))
	}
	s, err := schema.BuildFromSources(sources...)
	if err != nil {
		return err
	}
	if o.Subscription != "" {
		s.SubscriptionType = o.Subscription
	}

	models, err := bindModels(o, s)
	if err != nil {
		return err
	}
	var ctx *codegen.ContextBinding
	if o.Context != "" {
		importPath, goType, err := splitBinding(o.Context)
		if err != nil {
			return fmt.Errorf("context binding: %w", err)
		}
		ctx = &codegen.ContextBinding{GoType: goType, ImportPath: importPath}
	}

	var formatter codegen.Formatter
	if o.SkipImports {
		formatter = codegen.Goimports{FormatOnly: true}
	}
	out, err := codegen.Generate(codegen.GenerateArgs{
		Schema:    s,
		Models:    models,
		Context:   ctx,
		Package:   o.Package,
		Source:    strings.Join(names, ", "),
		Formatter: formatter,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	outPath := filepath.Join(o.OutDir, o.OutFile)
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.With("file", outPath, "types", len(s.Types)).Info("generated resolver declarations")

	if o.Manifest != "" {
		m, err := manifest.Load(o.Manifest)
		if err != nil {
			return err
		}
		m.Record(manifest.Entry{
			Package: o.Package,
			Version: o.Version,
			File:    outPath,
			Schemas: names,
		})
		if err := m.Save(o.Manifest); err != nil {
			return err
		}
	}
	return nil
}

// bindModels turns the option strings into typed bindings and auto-binds the
// remaining non-root object types against ModelsDir when set.
func bindModels(o *Options, s *schema.Schema) (codegen.ModelMap, error) {
	models := codegen.ModelMap{}
	for name, binding := range o.Models {
		importPath, goType, err := splitBinding(binding)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", name, err)
		}
		models[name] = codegen.ModelBinding{GoType: goType, ImportPath: importPath}
	}
	if o.ModelsDir == "" {
		return models, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	importPath, err := modpath.Resolve(wd, o.ModelsDir)
	if err != nil {
		return nil, err
	}
	for _, t := range s.Types {
		if !t.IsObject() {
			continue
		}
		if _, bound := models[t.Name]; bound {
			continue
		}
		if t.Name == s.QueryType || t.Name == s.MutationType || t.Name == s.SubscriptionType {
			continue
		}
		models[t.Name] = codegen.ModelBinding{GoType: exportName(t.Name), ImportPath: importPath}
	}
	return models, nil
}

// splitBinding splits "import/path.GoType" at the final dot.
func splitBinding(s string) (importPath, goType string, err error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return "", "", fmt.Errorf("binding %q is not of the form import/path.GoType", s)
	}
	return s[:i], s[i+1:], nil
}

func exportName(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
