package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/graphidae/resolvergen/internal/schema"
)

// builtinScalars maps the schema's built-in scalar names to Go types.
var builtinScalars = map[string]string{
	"Int":     "int",
	"Float":   "float64",
	"String":  "string",
	"Boolean": "bool",
	"ID":      "string",
}

// TypePrinter converts field and argument type references into Go type
// expressions, consulting the model map for object types and the current
// namespace for input types. One printer serves one generation run.
type TypePrinter struct {
	types   map[string]*schema.Type
	models  ModelMap
	imports *importTable

	// namespace is the object type whose block is being rendered; input-type
	// references resolve to its nested declarations.
	namespace string
}

func NewTypePrinter(types []*schema.Type, models ModelMap, imports *importTable) *TypePrinter {
	byName := make(map[string]*schema.Type, len(types))
	for _, t := range types {
		byName[t.Name] = t
	}
	return &TypePrinter{types: byName, models: models, imports: imports}
}

// SetNamespace selects the object type whose nested input declarations
// qualify input-type references until the next call.
func (p *TypePrinter) SetNamespace(typeName string) { p.namespace = typeName }

// Print renders the Go type expression for a field's or argument's declared
// type. Nullable named types become pointers; lists become slices and are
// never themselves pointered.
func (p *TypePrinter) Print(ref *schema.TypeRef) (*jen.Statement, error) {
	return p.print(ref, false)
}

func (p *TypePrinter) print(ref *schema.TypeRef, nonNull bool) (*jen.Statement, error) {
	if ref == nil {
		return nil, ErrNilTypeRef
	}
	switch ref.Kind {
	case schema.RefNonNull:
		return p.print(ref.OfType, true)
	case schema.RefList:
		elem, err := p.print(ref.OfType, false)
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil
	case schema.RefNamed:
		base, pointered, err := p.named(ref.Named)
		if err != nil {
			return nil, err
		}
		if !nonNull && pointered {
			return jen.Op("*").Add(base), nil
		}
		return base, nil
	default:
		return nil, fmt.Errorf("type reference kind %q: %w", ref.Kind, ErrNilTypeRef)
	}
}

// named resolves a bare type name. The second result reports whether
// nullability is expressed with a pointer; `any` values are already nilable.
func (p *TypePrinter) named(name string) (*jen.Statement, bool, error) {
	if goType, ok := builtinScalars[name]; ok {
		return jen.Id(goType), true, nil
	}

	if binding, ok := p.models[name]; ok {
		stmt, err := p.bindingType(name, binding)
		return stmt, true, err
	}

	t, ok := p.types[name]
	if !ok {
		return nil, false, fmt.Errorf("type %q: %w", name, ErrUnknownType)
	}
	switch {
	case t.IsInput():
		return jen.Id(nestedInputName(p.namespace, name)), true, nil
	case t.IsEnum():
		return jen.Id(name), true, nil
	default:
		// Object, interface, union or custom scalar without a model binding.
		return jen.Id("any"), false, nil
	}
}

// bindingType renders a model-map binding, qualified through the import
// table when the binding lives in another package.
func (p *TypePrinter) bindingType(name string, binding ModelBinding) (*jen.Statement, error) {
	if binding.GoType == "" {
		return nil, fmt.Errorf("model binding for %q: %w", name, ErrBadModelBinding)
	}
	if binding.ImportPath == "" {
		return jen.Id(binding.GoType), nil
	}
	alias := p.imports.use(binding.ImportPath)
	return jen.Id(alias).Dot(binding.GoType), nil
}

// ModelName resolves the Go type the parent value of a resolver carries: the
// model binding for the owning type, or `any` when none is configured.
func ModelName(t *schema.Type, models ModelMap, imports *importTable) (*jen.Statement, error) {
	binding, ok := models[t.Name]
	if !ok {
		return jen.Id("any"), nil
	}
	if binding.GoType == "" {
		return nil, fmt.Errorf("model binding for %q: %w", t.Name, ErrBadModelBinding)
	}
	if binding.ImportPath == "" {
		return jen.Op("*").Id(binding.GoType), nil
	}
	alias := imports.use(binding.ImportPath)
	return jen.Op("*").Id(alias).Dot(binding.GoType), nil
}

// ContextType resolves the Go type of the resolver context parameter: the
// configured context binding, or `any` when absent.
func ContextType(ctx *ContextBinding, imports *importTable) *jen.Statement {
	if ctx == nil || ctx.GoType == "" {
		return jen.Id("any")
	}
	if ctx.ImportPath == "" {
		return jen.Id(ctx.GoType)
	}
	alias := imports.use(ctx.ImportPath)
	return jen.Id(alias).Dot(ctx.GoType)
}
