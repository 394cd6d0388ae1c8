package codegen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/graphidae/resolvergen/internal/schema"
)

// Renderer emits the per-object-type namespace blocks and the top-level
// aggregate. All state is per-run and owned by that run.
type Renderer struct {
	schema  *schema.Schema
	assoc   map[string][]string
	inputs  InputTypeTable
	printer *TypePrinter
	synth   *Synthesizer
	imports *importTable
}

func NewRenderer(s *schema.Schema, models ModelMap, ctx *ContextBinding, imports *importTable) *Renderer {
	printer := NewTypePrinter(s.Types, models, imports)
	return &Renderer{
		schema:  s,
		assoc:   BuildAssociations(s.Types),
		inputs:  BuildInputTypeTable(s.Types),
		printer: printer,
		synth:   NewSynthesizer(printer, models, ctx, imports, s.SubscriptionType),
		imports: imports,
	}
}

// RenderNamespace emits one object type's block: default resolvers, nested
// input declarations, per-field argument structs, per-field resolver
// signatures and the aggregate. Each step is independently omitted when it
// would be empty.
func (r *Renderer) RenderNamespace(buf *bytes.Buffer, t *schema.Type) error {
	buf.WriteString(sectionBanner(t.Name))
	buf.WriteString("\n")

	r.printer.SetNamespace(t.Name)

	if err := RenderDefaultResolvers(buf, t, defaultResolversName(t.Name), r.imports); err != nil {
		return err
	}
	if err := r.renderNestedInputs(buf, t); err != nil {
		return err
	}
	if err := r.renderArgStructs(buf, t); err != nil {
		return err
	}
	if err := r.renderSignatures(buf, t); err != nil {
		return err
	}
	return r.renderAggregate(buf, t)
}

// renderNestedInputs emits one struct per distinct input type reachable from
// t's arguments. Types absent from the association mapping emit nothing.
func (r *Renderer) renderNestedInputs(buf *bytes.Buffer, t *schema.Type) error {
	distinct, err := DistinctInputTypes(t, r.assoc, r.inputs)
	if err != nil {
		return err
	}
	for _, name := range distinct {
		in := r.inputs[name]
		fields, err := r.memberFields(in.InputFields)
		if err != nil {
			return fmt.Errorf("input type %s under %s: %w", name, t.Name, err)
		}
		decl := jen.Type().Id(nestedInputName(t.Name, name)).Struct(fields...)
		if err := decl.Render(buf); err != nil {
			return err
		}
		buf.WriteString("\n\n")
	}
	return nil
}

// renderArgStructs emits one struct per field that declares arguments.
func (r *Renderer) renderArgStructs(buf *bytes.Buffer, t *schema.Type) error {
	for _, f := range t.Fields {
		if len(f.Arguments) == 0 {
			continue
		}
		fields, err := r.memberFields(f.Arguments)
		if err != nil {
			return fmt.Errorf("arguments of %s.%s: %w", t.Name, f.Name, err)
		}
		decl := jen.Type().Id(argsTypeName(t.Name, f.Name)).Struct(fields...)
		if err := decl.Render(buf); err != nil {
			return err
		}
		buf.WriteString("\n\n")
	}
	return nil
}

// memberFields renders struct members for arguments or input-object fields.
// Member names are upper-first-cased for export; the raw schema name rides in
// the json tag.
func (r *Renderer) memberFields(values []*schema.InputValue) ([]jen.Code, error) {
	var out []jen.Code
	for _, v := range values {
		typ, err := r.printer.Print(v.Type)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", v.Name, err)
		}
		tag := map[string]string{"json": jsonTag(v.Name, !v.Type.IsNonNull())}
		out = append(out, jen.Id(upperFirst(v.Name)).Add(typ).Tag(tag))
	}
	return out, nil
}

// renderSignatures emits the standalone named signature per field: a func
// type for standard fields, a subscribe/resolve struct for subscription
// fields.
func (r *Renderer) renderSignatures(buf *bytes.Buffer, t *schema.Type) error {
	for _, f := range t.Fields {
		sig, err := r.synth.Synthesize(t, f)
		if err != nil {
			return err
		}
		var decl *jen.Statement
		switch sig.Kind {
		case KindSubscription:
			decl = jen.Type().Id(resolverTypeName(t.Name, f.Name)).Struct(
				jen.Id("Subscribe").Add(sig.Subscribe),
				jen.Comment("Resolve post-processes each value Subscribe yields; nil passes values through."),
				jen.Id("Resolve").Add(sig.Resolve),
			)
		default:
			decl = jen.Type().Id(resolverTypeName(t.Name, f.Name)).Add(sig.Call)
		}
		if err := decl.Render(buf); err != nil {
			return err
		}
		buf.WriteString("\n\n")
	}
	return nil
}

// renderAggregate emits the per-type resolver aggregate, one member per
// field with the signature shape repeated inline.
func (r *Renderer) renderAggregate(buf *bytes.Buffer, t *schema.Type) error {
	if len(t.Fields) == 0 {
		return nil
	}
	var members []jen.Code
	for _, f := range t.Fields {
		sig, err := r.synth.Synthesize(t, f)
		if err != nil {
			return err
		}
		switch sig.Kind {
		case KindSubscription:
			members = append(members, jen.Id(upperFirst(f.Name)).Struct(
				jen.Id("Subscribe").Add(sig.Subscribe),
				jen.Id("Resolve").Add(sig.Resolve),
			).Tag(map[string]string{"json": f.Name}))
		default:
			members = append(members, jen.Id(upperFirst(f.Name)).Add(sig.Call).Tag(map[string]string{"json": f.Name}))
		}
	}
	decl := jen.Type().Id(aggregateName(t.Name)).Struct(members...)
	if err := decl.Render(buf); err != nil {
		return err
	}
	buf.WriteString("\n\n")
	return nil
}

// RenderResolversRoot emits the top-level declaration mapping every
// object-flagged type, in input order and under its raw name, to its
// aggregate.
func RenderResolversRoot(buf *bytes.Buffer, types []*schema.Type) error {
	var members []jen.Code
	for _, t := range types {
		if !t.IsObject() {
			continue
		}
		members = append(members, jen.Id(t.Name).Id(aggregateName(t.Name)))
	}
	if len(members) == 0 {
		return nil
	}
	decl := jen.Type().Id("Resolvers").Struct(members...)
	if err := decl.Render(buf); err != nil {
		return err
	}
	buf.WriteString("\n")
	return nil
}
