package codegen

import (
	"bytes"

	"github.com/dave/jennifer/jen"

	"github.com/graphidae/resolvergen/internal/schema"
)

// RenderEnums emits one string-backed Go enum per enum-flagged type, in
// declaration order: the type, its value constants, IsValid and String.
func RenderEnums(buf *bytes.Buffer, types []*schema.Type) error {
	for _, t := range types {
		if !t.IsEnum() {
			continue
		}
		if err := renderEnum(buf, t); err != nil {
			return err
		}
	}
	return nil
}

func renderEnum(buf *bytes.Buffer, t *schema.Type) error {
	decls := []*jen.Statement{
		jen.Type().Id(t.Name).String(),
	}

	if len(t.EnumValues) > 0 {
		consts := jen.Const().DefsFunc(func(g *jen.Group) {
			for _, v := range t.EnumValues {
				g.Id(enumConstName(t.Name, v.Name)).Id(t.Name).Op("=").Lit(v.Name)
			}
		})

		var caseList []jen.Code
		for _, v := range t.EnumValues {
			caseList = append(caseList, jen.Id(enumConstName(t.Name, v.Name)))
		}
		isValid := jen.Func().Params(jen.Id("e").Id(t.Name)).Id("IsValid").Params().Bool().Block(
			jen.Switch(jen.Id("e")).Block(
				jen.Case(caseList...).Block(jen.Return(jen.True())),
			),
			jen.Return(jen.False()),
		)

		decls = append(decls, consts, isValid)
	}

	decls = append(decls,
		jen.Func().Params(jen.Id("e").Id(t.Name)).Id("String").Params().String().Block(
			jen.Return(jen.String().Call(jen.Id("e"))),
		),
	)

	for _, d := range decls {
		if err := d.Render(buf); err != nil {
			return err
		}
		buf.WriteString("\n\n")
	}
	return nil
}
