package gen

import (
	"fmt"
)

// Options control one generation run. Model and context bindings are given
// as "import/path.GoType" strings; ModelsDir auto-binds object types that
// have no explicit entry to same-named types in that directory's package.
type Options struct {
	SchemaFiles  []string          `json:"schema,omitempty" yaml:"schema,omitempty" mapstructure:"schema,omitempty"`
	OutDir       string            `json:"out_dir,omitempty" yaml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile      string            `json:"out_file,omitempty" yaml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Package      string            `json:"package,omitempty" yaml:"package,omitempty" mapstructure:"package,omitempty"`
	Models       map[string]string `json:"models,omitempty" yaml:"models,omitempty" mapstructure:"models,omitempty"`
	ModelsDir    string            `json:"models_dir,omitempty" yaml:"models_dir,omitempty" mapstructure:"models_dir,omitempty"`
	Context      string            `json:"context,omitempty" yaml:"context,omitempty" mapstructure:"context,omitempty"`
	Subscription string            `json:"subscription,omitempty" yaml:"subscription,omitempty" mapstructure:"subscription,omitempty"`
	SkipImports  bool              `json:"skip_imports,omitempty" yaml:"skip_imports,omitempty" mapstructure:"skip_imports,omitempty"`
	Manifest     string            `json:"manifest,omitempty" yaml:"manifest,omitempty" mapstructure:"manifest,omitempty"`
	Version      string            `json:"version,omitempty" yaml:"version,omitempty" mapstructure:"version,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:  "graph",
		OutFile: "resolvers_gen.go",
		Package: "resolvers",
	}
}

// Normalize fills defaults. OutDir is kept as given; relative paths resolve
// against the working directory at write time.
func (o *Options) Normalize() error {
	if len(o.SchemaFiles) == 0 {
		return fmt.Errorf("no schema files configured")
	}
	if o.OutDir == "" {
		o.OutDir = "graph"
	}
	if o.OutFile == "" {
		o.OutFile = "resolvers_gen.go"
	}
	if o.Package == "" {
		o.Package = "resolvers"
	}
	return nil
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithSchemaFiles(files ...string) Option {
	return func(o *Options) { o.SchemaFiles = append(o.SchemaFiles, files...) }
}
func WithOutDir(d string) Option   { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option  { return func(o *Options) { o.OutFile = f } }
func WithPackage(p string) Option  { return func(o *Options) { o.Package = p } }
func WithContext(c string) Option  { return func(o *Options) { o.Context = c } }
func WithModelsDir(d string) Option { return func(o *Options) { o.ModelsDir = d } }
func WithModel(schemaType, binding string) Option {
	return func(o *Options) {
		if o.Models == nil {
			o.Models = map[string]string{}
		}
		o.Models[schemaType] = binding
	}
}
func WithSubscription(name string) Option { return func(o *Options) { o.Subscription = name } }
func WithSkipImports() Option             { return func(o *Options) { o.SkipImports = true } }
func WithManifest(path, version string) Option {
	return func(o *Options) { o.Manifest, o.Version = path, version }
}
