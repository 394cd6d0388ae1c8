package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// upperFirst upper-cases the first rune, leaving the rest untouched.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Generated-identifier naming scheme. Underscore-joined components keep the
// per-object-type namespaces collision-free inside one flat Go package.

// nestedInputName names the per-namespace declaration of an input type,
// e.g. Mutation_CreateUserInput. Both components are upper-first-cased.
func nestedInputName(typeName, inputName string) string {
	return upperFirst(typeName) + "_" + upperFirst(inputName)
}

// argsTypeName names a field's argument struct, e.g. Mutation_Args_createUser.
// The field component keeps its raw casing.
func argsTypeName(typeName, fieldName string) string {
	return upperFirst(typeName) + "_Args_" + fieldName
}

// resolverTypeName names a field's standalone resolver signature,
// e.g. Query_userResolver.
func resolverTypeName(typeName, fieldName string) string {
	return upperFirst(typeName) + "_" + fieldName + "Resolver"
}

// aggregateName names the per-type resolver aggregate, e.g. Query_Resolvers.
func aggregateName(typeName string) string {
	return upperFirst(typeName) + "_Resolvers"
}

// defaultResolversName names the per-type default-resolver map.
func defaultResolversName(typeName string) string {
	return upperFirst(typeName) + "_DefaultResolvers"
}

// enumConstName names one enum member constant, e.g. Role_ADMIN.
func enumConstName(enumName, valueName string) string {
	return enumName + "_" + valueName
}

// jsonTag builds the struct tag value for a member, carrying the raw schema
// name; nullable members marshal away when unset.
func jsonTag(name string, nullable bool) string {
	if nullable {
		return name + ",omitempty"
	}
	return name
}

// sectionBanner renders the namespace divider comment for one object type.
func sectionBanner(name string) string {
	var b strings.Builder
	b.WriteString("// -----------------------------------------------------------------------------\n")
	b.WriteString("// " + name + "\n")
	b.WriteString("// -----------------------------------------------------------------------------\n")
	return b.String()
}
