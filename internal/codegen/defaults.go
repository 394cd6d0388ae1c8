package codegen

import (
	"bytes"

	"github.com/dave/jennifer/jen"

	"github.com/graphidae/resolvergen/internal/schema"
)

// RenderDefaultResolvers emits the per-type default-resolver map under the
// given namespaced identifier: one entry per argument-less field, each
// reading the parent model's matching member through the runtime helpers.
// Types whose fields all take arguments emit nothing.
func RenderDefaultResolvers(buf *bytes.Buffer, t *schema.Type, name string, imports *importTable) error {
	var plain []*schema.Field
	for _, f := range t.Fields {
		if len(f.Arguments) == 0 {
			plain = append(plain, f)
		}
	}
	if len(plain) == 0 {
		return nil
	}

	alias := imports.use(RuntimeImportPath)
	decl := jen.Var().Id(name).Op("=").Id(alias).Dot("DefaultMap").Values(jen.DictFunc(func(d jen.Dict) {
		for _, f := range plain {
			d[jen.Lit(f.Name)] = jen.Id(alias).Dot("Default").Call(jen.Lit(f.Name))
		}
	}))

	if err := decl.Render(buf); err != nil {
		return err
	}
	buf.WriteString("\n\n")
	return nil
}
