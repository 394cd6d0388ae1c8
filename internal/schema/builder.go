package schema

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Source is one named SDL document.
type Source struct {
	Name  string
	Input string
}

// BuildFromSDL parses a single SDL document into a Schema.
func BuildFromSDL(name, sdl string) (*Schema, error) {
	return BuildFromSources(Source{Name: name, Input: sdl})
}

// BuildFromSources parses and merges the given SDL documents, preserving
// declaration order across documents. Type extensions are folded into their
// base definitions.
func BuildFromSources(sources ...Source) (*Schema, error) {
	inputs := make([]*ast.Source, 0, len(sources))
	for _, src := range sources {
		inputs = append(inputs, &ast.Source{Name: src.Name, Input: src.Input})
	}
	doc, err := parser.ParseSchemas(inputs...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	s := NewSchema()
	for _, def := range doc.Definitions {
		if def.BuiltIn {
			continue
		}
		s.AddType(buildType(def))
	}
	for _, ext := range doc.Extensions {
		base := s.Type(ext.Name)
		if base == nil {
			s.AddType(buildType(ext))
			continue
		}
		mergeExtension(base, ext)
	}

	applyRootNames(s, doc)
	return s, nil
}

func buildType(def *ast.Definition) *Type {
	t := &Type{
		Name:        def.Name,
		Kind:        kindOf(def.Kind),
		Description: def.Description,
		Interfaces:  append([]string(nil), def.Interfaces...),
	}
	switch t.Kind {
	case KindObject, KindInterface:
		for _, fd := range def.Fields {
			t.Fields = append(t.Fields, buildField(fd))
		}
	case KindInputObject:
		for _, fd := range def.Fields {
			t.InputFields = append(t.InputFields, &InputValue{
				Name:         fd.Name,
				Description:  fd.Description,
				Type:         buildTypeRef(fd.Type),
				DefaultValue: buildValue(fd.DefaultValue),
			})
		}
	case KindEnum:
		for _, ev := range def.EnumValues {
			t.EnumValues = append(t.EnumValues, &EnumValue{Name: ev.Name, Description: ev.Description})
		}
	}
	return t
}

func mergeExtension(base *Type, ext *ast.Definition) {
	extra := buildType(ext)
	base.Fields = append(base.Fields, extra.Fields...)
	base.InputFields = append(base.InputFields, extra.InputFields...)
	base.EnumValues = append(base.EnumValues, extra.EnumValues...)
	base.Interfaces = append(base.Interfaces, extra.Interfaces...)
}

func buildField(fd *ast.FieldDefinition) *Field {
	f := &Field{
		Name:        fd.Name,
		Description: fd.Description,
		Type:        buildTypeRef(fd.Type),
	}
	for _, arg := range fd.Arguments {
		f.Arguments = append(f.Arguments, &InputValue{
			Name:         arg.Name,
			Description:  arg.Description,
			Type:         buildTypeRef(arg.Type),
			DefaultValue: buildValue(arg.DefaultValue),
		})
	}
	return f
}

func buildTypeRef(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}
	var ref *TypeRef
	if t.NamedType != "" {
		ref = NamedType(t.NamedType)
	} else {
		ref = ListType(buildTypeRef(t.Elem))
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

func buildValue(v *ast.Value) any {
	if v == nil {
		return nil
	}
	val, err := v.Value(nil)
	if err != nil {
		return v.Raw
	}
	return val
}

func kindOf(k ast.DefinitionKind) Kind {
	switch k {
	case ast.Object:
		return KindObject
	case ast.Interface:
		return KindInterface
	case ast.Union:
		return KindUnion
	case ast.Enum:
		return KindEnum
	case ast.InputObject:
		return KindInputObject
	default:
		return KindScalar
	}
}

// applyRootNames resolves the operation root type names: an explicit
// schema { ... } block wins, otherwise the conventional names apply when a
// matching object type is declared.
func applyRootNames(s *Schema, doc *ast.SchemaDocument) {
	if s.Type("Query") != nil {
		s.QueryType = "Query"
	}
	if s.Type("Mutation") != nil {
		s.MutationType = "Mutation"
	}
	if s.Type("Subscription") != nil {
		s.SubscriptionType = "Subscription"
	}
	for _, sd := range doc.Schema {
		for _, op := range sd.OperationTypes {
			switch op.Operation {
			case ast.Query:
				s.QueryType = op.Type
			case ast.Mutation:
				s.MutationType = op.Type
			case ast.Subscription:
				s.SubscriptionType = op.Type
			}
		}
	}
}
