package schema

// Schema is the parsed schema model handed to the generator. Types preserves
// the schema's declaration order; the generator iterates it as-is.
type Schema struct {
	QueryType        string
	MutationType     string
	SubscriptionType string
	Types            []*Type

	byName map[string]*Type
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{byName: make(map[string]*Type)}
}

// AddType appends a named type, keeping declaration order. A duplicate name
// replaces the earlier lookup entry but the first declaration keeps its slot.
func (s *Schema) AddType(t *Type) *Schema {
	if _, ok := s.byName[t.Name]; !ok {
		s.Types = append(s.Types, t)
	}
	s.byName[t.Name] = t
	return s
}

// Type returns the named type, or nil when absent.
func (s *Schema) Type(name string) *Type { return s.byName[name] }

// Kind is the kind of a named schema type.
type Kind string

const (
	KindScalar      Kind = "SCALAR"
	KindObject      Kind = "OBJECT"
	KindInterface   Kind = "INTERFACE"
	KindUnion       Kind = "UNION"
	KindEnum        Kind = "ENUM"
	KindInputObject Kind = "INPUT_OBJECT"
)

// Type is a named schema type (object, interface, union, scalar, enum, input).
type Type struct {
	Name        string
	Kind        Kind
	Description string
	Fields      []*Field      // OBJECT and INTERFACE
	InputFields []*InputValue // INPUT_OBJECT
	EnumValues  []*EnumValue  // ENUM
	Interfaces  []string      // OBJECT (implemented interfaces)
}

func (t *Type) IsObject() bool { return t != nil && t.Kind == KindObject }
func (t *Type) IsInput() bool  { return t != nil && t.Kind == KindInputObject }
func (t *Type) IsEnum() bool   { return t != nil && t.Kind == KindEnum }
func (t *Type) IsScalar() bool { return t != nil && t.Kind == KindScalar }

// Field represents a field on an object or interface type.
type Field struct {
	Name        string
	Description string
	Type        *TypeRef
	Arguments   []*InputValue
}

// InputValue is an argument or an input-object field.
type InputValue struct {
	Name         string
	Description  string
	Type         *TypeRef
	DefaultValue any
}

// EnumValue is a single enum member.
type EnumValue struct {
	Name        string
	Description string
}

// RefKind discriminates type-reference wrappers.
type RefKind string

const (
	RefNamed   RefKind = "NAMED"
	RefList    RefKind = "LIST"
	RefNonNull RefKind = "NON_NULL"
)

// TypeRef references a (possibly list- or non-null-wrapped) named type.
type TypeRef struct {
	Kind   RefKind
	OfType *TypeRef // LIST and NON_NULL
	Named  string   // NAMED
}

func NamedType(name string) *TypeRef  { return &TypeRef{Kind: RefNamed, Named: name} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: RefList, OfType: t} }
func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: RefNonNull, OfType: t} }

// IsNonNull reports whether the outermost wrapper is Non-Null.
func (t *TypeRef) IsNonNull() bool { return t != nil && t.Kind == RefNonNull }

// Unwrap removes one layer of List or Non-Null wrapping.
func (t *TypeRef) Unwrap() *TypeRef {
	if t == nil {
		return nil
	}
	if t.Kind == RefNonNull || t.Kind == RefList {
		return t.OfType
	}
	return t
}

// NamedType returns the innermost named type of the reference.
func (t *TypeRef) NamedType() string {
	cur := t
	for cur != nil {
		if cur.Named != "" {
			return cur.Named
		}
		cur = cur.OfType
	}
	return ""
}
