package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/graphidae/resolvergen/internal/schema"
)

// SignatureKind tags the two resolver shapes.
type SignatureKind int

const (
	// KindStandard is the single-phase call-and-return resolver.
	KindStandard SignatureKind = iota
	// KindSubscription is the two-phase subscribe/resolve pair emitted for
	// fields of the subscription root.
	KindSubscription
)

// Signature is the tagged variant of one field's resolver shape. The choice
// is made once per field from the owning type's identity; the string-building
// code never re-branches on it beyond the tag.
type Signature struct {
	Kind SignatureKind

	// Call is the whole signature of a standard resolver.
	Call *jen.Statement

	// Subscribe establishes the event stream; mandatory for subscriptions.
	Subscribe *jen.Statement
	// Resolve transforms each streamed value; the generated member is a
	// nil-able func, so "absent" stays distinguishable from "identity".
	Resolve *jen.Statement
}

// Synthesizer produces resolver signatures for fields. Parameters are always
// (parent, args, ctx, info) in that order; a field with no arguments still
// carries an args parameter typed struct{}.
type Synthesizer struct {
	printer          *TypePrinter
	models           ModelMap
	context          *ContextBinding
	imports          *importTable
	subscriptionRoot string
}

func NewSynthesizer(printer *TypePrinter, models ModelMap, ctx *ContextBinding, imports *importTable, subscriptionRoot string) *Synthesizer {
	return &Synthesizer{
		printer:          printer,
		models:           models,
		context:          ctx,
		imports:          imports,
		subscriptionRoot: subscriptionRoot,
	}
}

// Synthesize builds the signature variant for field f on owning type t.
func (s *Synthesizer) Synthesize(t *schema.Type, f *schema.Field) (*Signature, error) {
	params, err := s.params(t, f)
	if err != nil {
		return nil, err
	}
	ret, err := s.printer.Print(f.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s.%s: %w", t.Name, f.Name, err)
	}

	if t.Name != s.subscriptionRoot || s.subscriptionRoot == "" {
		return &Signature{
			Kind: KindStandard,
			Call: jen.Func().Params(params...).Params(ret, jen.Error()),
		}, nil
	}

	stream := jen.Op("<-").Chan().Add(ret)
	resolveParams, err := s.params(t, f)
	if err != nil {
		return nil, err
	}
	resolveRet, err := s.printer.Print(f.Type)
	if err != nil {
		return nil, err
	}
	return &Signature{
		Kind:      KindSubscription,
		Subscribe: jen.Func().Params(params...).Params(stream, jen.Error()),
		Resolve:   jen.Func().Params(resolveParams...).Params(resolveRet, jen.Error()),
	}, nil
}

// params builds the fixed four-parameter list. Every position is always
// present and always typed.
func (s *Synthesizer) params(t *schema.Type, f *schema.Field) ([]jen.Code, error) {
	parent, err := ModelName(t, s.models, s.imports)
	if err != nil {
		return nil, fmt.Errorf("field %s.%s: %w", t.Name, f.Name, err)
	}

	args := jen.Struct()
	if len(f.Arguments) > 0 {
		args = jen.Id(argsTypeName(t.Name, f.Name))
	}

	ctx := ContextType(s.context, s.imports)
	info := jen.Id(s.imports.use(RuntimeImportPath)).Dot("Info")

	return []jen.Code{
		jen.Id("parent").Add(parent),
		jen.Id("args").Add(args),
		jen.Id("ctx").Add(ctx),
		jen.Id("info").Add(info),
	}, nil
}
