package codegen

import (
	"fmt"

	"github.com/graphidae/resolvergen/internal/schema"
)

// InputTypeTable looks up input-flagged types by name. It is built once per
// run and read-only during rendering.
type InputTypeTable map[string]*schema.Type

// BuildInputTypeTable indexes every input-flagged type by name.
func BuildInputTypeTable(types []*schema.Type) InputTypeTable {
	out := make(InputTypeTable)
	for _, t := range types {
		if t.IsInput() {
			out[t.Name] = t
		}
	}
	return out
}

// BuildAssociations maps each object type name to the input-type names
// referenced by its fields' arguments. Names repeat when referenced more than
// once; deduplication is DistinctInputTypes' job. A type with no input-typed
// arguments is absent from the mapping entirely, never present with an empty
// list. Pure function of its input.
func BuildAssociations(types []*schema.Type) map[string][]string {
	byName := make(map[string]*schema.Type, len(types))
	for _, t := range types {
		byName[t.Name] = t
	}

	out := make(map[string][]string)
	for _, t := range types {
		if !t.IsObject() {
			continue
		}
		var names []string
		for _, f := range t.Fields {
			for _, arg := range f.Arguments {
				name := arg.Type.NamedType()
				if byName[name].IsInput() {
					names = append(names, name)
				}
			}
		}
		if len(names) > 0 {
			out[t.Name] = names
		}
	}
	return out
}

// DistinctInputTypes returns the input-type names needing a nested
// declaration under t, deduplicated in first-seen order and transitively
// closed over input types referenced by input-type fields, so the nested
// declarations are self-contained. An absent association entry yields nil.
func DistinctInputTypes(t *schema.Type, assoc map[string][]string, inputs InputTypeTable) ([]string, error) {
	queue := assoc[t.Name]
	if len(queue) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var order []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		in, ok := inputs[name]
		if !ok {
			return nil, fmt.Errorf("input type %q referenced under %s: %w", name, t.Name, ErrUnknownInputType)
		}
		seen[name] = true
		order = append(order, name)
		for _, f := range in.InputFields {
			nested := f.Type.NamedType()
			if _, ok := inputs[nested]; ok && !seen[nested] {
				queue = append(queue, nested)
			}
		}
	}
	return order, nil
}
