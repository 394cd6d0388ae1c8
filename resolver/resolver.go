// Package resolver is the small runtime the generated declarations import:
// the resolution-info type passed to every resolver and the reflection-based
// default resolvers for argument-less fields.
package resolver

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
)

// Info carries the resolution metadata every resolver receives as its fourth
// parameter.
type Info struct {
	// FieldName is the schema name of the field being resolved.
	FieldName string
	// ParentType is the schema name of the owning object type.
	ParentType string
	// ReturnType is the field's declared schema type, rendered as SDL.
	ReturnType string
	// Path locates the value in the response tree; elements are field names
	// and list indexes.
	Path []any
}

// DefaultResolver computes a field's value from the parent value alone.
type DefaultResolver func(parent any) (any, error)

// DefaultMap associates field names with default resolvers for one object
// type.
type DefaultMap map[string]DefaultResolver

// ErrNoSuchField reports that the parent value carries no member matching
// the field.
var ErrNoSuchField = errors.New("no such field")

// Default returns a resolver that reads the parent's member matching the
// schema field name. Struct parents are matched by exported name, then by
// the plural form; map parents are indexed by the raw name. Nil parents
// resolve to nil.
func Default(field string) DefaultResolver {
	return func(parent any) (any, error) {
		if parent == nil {
			return nil, nil
		}
		v := reflect.ValueOf(parent)
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return nil, nil
			}
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.Map:
			if v.Type().Key().Kind() == reflect.String {
				if mv := v.MapIndex(reflect.ValueOf(field)); mv.IsValid() {
					return mv.Interface(), nil
				}
			}
		case reflect.Struct:
			for _, name := range candidateNames(field) {
				if fv := v.FieldByName(name); fv.IsValid() {
					return fv.Interface(), nil
				}
			}
		}
		return nil, fmt.Errorf("field %q on %s: %w", field, v.Type(), ErrNoSuchField)
	}
}

// candidateNames lists the exported member names a schema field may map to,
// in lookup order.
func candidateNames(field string) []string {
	exact := exportName(field)
	plural := exportName(inflection.Plural(field))
	if plural == exact {
		return []string{exact}
	}
	return []string{exact, plural}
}

func exportName(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
