package codegen

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// Generate runs the whole pipeline for one schema model: associations,
// per-type namespace blocks, the top-level aggregate, header assembly and
// the formatter gate. The run is single-threaded and owns all intermediate
// state; malformed schema or model data fails the run, formatter faults do
// not (see FormatGate).
func Generate(args GenerateArgs) (string, error) {
	if args.Schema == nil {
		return "", ErrNilSchema
	}
	pkg := args.Package
	if pkg == "" {
		pkg = "resolvers"
	}

	imports := newImportTable()
	imports.register(RuntimeImportPath)
	// Register model imports in sorted key order so alias assignment is
	// stable across runs; map iteration order would make base-name
	// collisions (model vs model2) flip between identical invocations.
	modelNames := make([]string, 0, len(args.Models))
	for name := range args.Models {
		modelNames = append(modelNames, name)
	}
	sort.Strings(modelNames)
	for _, name := range modelNames {
		imports.register(args.Models[name].ImportPath)
	}
	if args.Context != nil {
		imports.register(args.Context.ImportPath)
	}

	// The body renders first so the header can declare exactly the imports
	// the declarations referenced.
	var body bytes.Buffer
	if err := RenderEnums(&body, args.Schema.Types); err != nil {
		return "", err
	}
	r := NewRenderer(args.Schema, args.Models, args.Context, imports)
	for _, t := range args.Schema.Types {
		if !t.IsObject() {
			continue
		}
		if err := r.RenderNamespace(&body, t); err != nil {
			return "", err
		}
	}
	if err := RenderResolversRoot(&body, args.Schema.Types); err != nil {
		return "", err
	}

	var out bytes.Buffer
	writeHeader(&out, pkg, args.Source, imports)
	out.Write(body.Bytes())

	gate := FormatGate{Formatter: args.Formatter, Log: args.Logger}
	return string(gate.Format(out.Bytes())), nil
}

// writeHeader emits the generated-code marker, the package clause and the
// import block: the resolution-info runtime, the referenced model packages
// and the context package, in registration order.
func writeHeader(out *bytes.Buffer, pkg, source string, imports *importTable) {
	out.WriteString(Header + "\n")
	if source != "" {
		out.WriteString("//\n// Source: " + source + "\n")
	}
	out.WriteString("\npackage " + pkg + "\n\n")

	used := imports.usedImports()
	if len(used) == 0 {
		return
	}
	out.WriteString("import (\n")
	for _, imp := range used {
		fmt.Fprintf(out, "\t%s %s\n", imp[1], strconv.Quote(imp[0]))
	}
	out.WriteString(")\n\n")
}
