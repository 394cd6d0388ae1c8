// Package codegen turns a parsed schema model into Go resolver-layer
// declarations: nested input structs, per-field argument structs, resolver
// function signatures (with the subscription subscribe/resolve pair), per-type
// aggregates and the top-level Resolvers declaration.
package codegen

import (
	"errors"
	"log/slog"

	"github.com/graphidae/resolvergen/internal/schema"
)

// RuntimeImportPath is the package the generated file imports for the
// resolution-info type and the default-resolver helpers.
const RuntimeImportPath = "github.com/graphidae/resolvergen/resolver"

// Header is the fixed marker every generated file starts with.
const Header = "// Code generated by resolvergen. DO NOT EDIT."

var (
	// ErrNilSchema is returned when Generate is invoked without a schema.
	ErrNilSchema = errors.New("nil schema")
	// ErrUnknownType marks a reference to a type the schema never declares.
	ErrUnknownType = errors.New("unknown schema type")
	// ErrUnknownInputType marks an association entry with no input-type
	// definition behind it.
	ErrUnknownInputType = errors.New("unknown input type")
	// ErrBadModelBinding marks a model-mapping entry with no Go type name.
	ErrBadModelBinding = errors.New("malformed model binding")
	// ErrNilTypeRef marks a field or argument without a type reference.
	ErrNilTypeRef = errors.New("nil type reference")
)

// ModelBinding maps one schema type onto a Go type.
type ModelBinding struct {
	// GoType is the bare Go type name inside the package at ImportPath.
	GoType string
	// ImportPath is empty for types in the generated file's own package.
	ImportPath string
}

// ModelMap maps schema type names onto Go model types. Absent entries fall
// back to `any`; entries without a Go type name are rejected.
type ModelMap map[string]ModelBinding

// ContextBinding names the Go type every resolver receives as its context
// value. A nil binding falls back to `any`.
type ContextBinding struct {
	GoType     string
	ImportPath string
}

// GenerateArgs is the entire external contract surface of one generation run.
type GenerateArgs struct {
	Schema  *schema.Schema
	Models  ModelMap
	Context *ContextBinding

	// Package is the generated file's package name; defaults to "resolvers".
	Package string
	// Source names the schema in the generated header, e.g. the SDL file.
	Source string

	// Formatter overrides the default goimports formatter. The formatter
	// gate contains any failure; see FormatGate.
	Formatter Formatter
	// Logger receives the formatter-gate diagnostic; nil uses slog.Default.
	Logger *slog.Logger
}
