package codegen

import (
	"log/slog"

	"golang.org/x/tools/imports"
)

// Formatter is the single-method capability the formatter gate wraps. It may
// fail; the gate may not.
type Formatter interface {
	Format(src []byte) ([]byte, error)
}

// Goimports formats generated source with golang.org/x/tools/imports: gofmt
// plus import grouping. It is the default formatter.
type Goimports struct {
	// FormatOnly skips the import-fixing pass and only reformats.
	FormatOnly bool
}

func (g Goimports) Format(src []byte) ([]byte, error) {
	return imports.Process("resolvers_gen.go", src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: g.FormatOnly,
	})
}

// FormatGate runs assembled source through the formatter and contains any
// failure: the error is logged and the input returned unchanged, so a
// formatter fault degrades the output instead of failing the run. This is
// the pipeline's sole recovery path.
type FormatGate struct {
	Formatter Formatter
	Log       *slog.Logger
}

func (g FormatGate) Format(src []byte) []byte {
	f := g.Formatter
	if f == nil {
		f = Goimports{}
	}
	out, err := f.Format(src)
	if err != nil {
		log := g.Log
		if log == nil {
			log = slog.Default()
		}
		log.Error("formatting generated source failed, emitting unformatted output",
			"error", err.Error(),
		)
		return src
	}
	return out
}
