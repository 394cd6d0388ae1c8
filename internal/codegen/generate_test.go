package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stampFormatter struct{}

func (stampFormatter) Format(src []byte) ([]byte, error) {
	return append([]byte("// stamped\n"), src...), nil
}

func TestGenerate(ttt *testing.T) {
	ttt.Run("nil schema is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Generate(GenerateArgs{})
		require.ErrorIs(t, err, ErrNilSchema)
	})

	ttt.Run("query with arguments", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Query {
  user(id: ID!): User
}
type User {
  id: ID!
  name: String
}
`)
		out, err := Generate(GenerateArgs{Schema: s, Source: "test.graphql"})
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(out, Header))
		require.Contains(t, out, "// Source: test.graphql")
		require.Contains(t, out, "package resolvers")

		require.Contains(t, out, "type Query_Args_user struct {")
		require.Contains(t, out, "Id string `json:\"id\"`")
		require.Contains(t, out, "type Query_userResolver func(parent any, args Query_Args_user, ctx any, info resolver.Info) (any, error)")
		require.Contains(t, out, "type Query_Resolvers struct {")
		require.Contains(t, out, "type User_Resolvers struct {")
		require.Contains(t, out, "type Resolvers struct {")
	})

	ttt.Run("input types nest once per namespace", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Mutation {
  createUser(input: CreateUserInput!): Boolean
  importUsers(first: CreateUserInput!, second: CreateUserInput!): Boolean
}
input CreateUserInput {
  name: String!
  address: AddressInput
}
input AddressInput {
  city: String!
}
`)
		out, err := Generate(GenerateArgs{Schema: s})
		require.NoError(t, err)

		require.Equal(t, 1, strings.Count(out, "type Mutation_CreateUserInput struct {"))
		require.Equal(t, 1, strings.Count(out, "type Mutation_AddressInput struct {"))
		require.Contains(t, out, "Address *Mutation_AddressInput `json:\"address,omitempty\"`")
		require.Contains(t, out, "`json:\"name\"`")
	})

	ttt.Run("subscription root emits the subscribe and resolve pair", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Query { ping: String }
type Subscription {
  countdown(from: Int!): Int!
}
`)
		out, err := Generate(GenerateArgs{Schema: s})
		require.NoError(t, err)

		require.Contains(t, out, "type Subscription_countdownResolver struct {")
		require.Contains(t, out, "Subscribe func(parent any, args Subscription_Args_countdown, ctx any, info resolver.Info) (<-chan int, error)")
		require.Contains(t, out, "args Subscription_Args_countdown, ctx any, info resolver.Info) (int, error)")
		require.Contains(t, out, "nil passes values through")

		// Non-subscription fields keep the single-phase shape.
		require.Contains(t, out, "type Query_pingResolver func(")
		require.NotContains(t, out, "type Query_pingResolver struct")
	})

	ttt.Run("top-level aggregate follows input order under raw names", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Query { ping: String }
type Zebra { name: String }
type Apple { name: String }
`)
		out, err := Generate(GenerateArgs{Schema: s})
		require.NoError(t, err)

		root := out[strings.Index(out, "type Resolvers struct {"):]
		qi := strings.Index(root, "Query Query_Resolvers")
		zi := strings.Index(root, "Zebra Zebra_Resolvers")
		ai := strings.Index(root, "Apple Apple_Resolvers")
		require.True(t, qi >= 0 && zi >= 0 && ai >= 0)
		require.True(t, qi < zi && zi < ai)
	})

	ttt.Run("enums render with constants and validity", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Query { role: Role }
enum Role { ADMIN MEMBER }
`)
		out, err := Generate(GenerateArgs{Schema: s})
		require.NoError(t, err)

		require.Contains(t, out, "type Role string")
		require.Contains(t, out, `Role_ADMIN`)
		require.Contains(t, out, `Role_MEMBER Role = "MEMBER"`)
		require.Contains(t, out, "func (e Role) IsValid() bool")
		require.Contains(t, out, "func (e Role) String() string")
		require.Contains(t, out, "(*Role, error)")
	})

	ttt.Run("default resolvers cover argument-less fields only", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Query {
  version: String!
  user(id: ID!): String
}
type Busy {
  lookup(id: ID!): String
}
`)
		out, err := Generate(GenerateArgs{Schema: s})
		require.NoError(t, err)

		require.Contains(t, out, "var Query_DefaultResolvers = resolver.DefaultMap{")
		require.Contains(t, out, `"version": resolver.Default("version")`)
		require.NotContains(t, out, `"user": resolver.Default`)
		require.NotContains(t, out, "Busy_DefaultResolvers")
	})

	ttt.Run("model and context bindings import their packages once", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Query { user: User }
type User { id: ID! }
`)
		out, err := Generate(GenerateArgs{
			Schema:  s,
			Models:  ModelMap{"User": {GoType: "User", ImportPath: "example.com/app/model"}},
			Context: &ContextBinding{GoType: "Context", ImportPath: "example.com/app/graph"},
		})
		require.NoError(t, err)

		require.Contains(t, out, `model "example.com/app/model"`)
		require.Contains(t, out, `graph "example.com/app/graph"`)
		require.Equal(t, 1, strings.Count(out, `"example.com/app/model"`))
		require.Contains(t, out, "parent *model.User")
		require.Contains(t, out, "ctx graph.Context")
	})

	ttt.Run("colliding model package names alias deterministically", func(t *testing.T) {
		t.Parallel()
		sdl := `
type Query {
  a: Apple
  b: Banana
}
type Apple { id: ID! }
type Banana { id: ID! }
`
		models := ModelMap{
			"Apple":  {GoType: "Apple", ImportPath: "example.com/x/model"},
			"Banana": {GoType: "Banana", ImportPath: "example.com/y/model"},
		}

		first, err := Generate(GenerateArgs{Schema: mustSchema(t, sdl), Models: models})
		require.NoError(t, err)

		// Aliases follow sorted binding keys, not map iteration order.
		require.Contains(t, first, `model "example.com/x/model"`)
		require.Contains(t, first, `model2 "example.com/y/model"`)
		require.Contains(t, first, "parent *model.Apple")
		require.Contains(t, first, "parent *model2.Banana")

		for range 20 {
			again, err := Generate(GenerateArgs{Schema: mustSchema(t, sdl), Models: models})
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
	})

	ttt.Run("custom formatter output wins", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `type Query { ping: String }`)
		out, err := Generate(GenerateArgs{Schema: s, Formatter: stampFormatter{}})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "// stamped\n"))
	})

	ttt.Run("formatter failure degrades, never fails", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `type Query { ping: String }`)
		out, err := Generate(GenerateArgs{
			Schema:    s,
			Formatter: failingFormatter{err: errors.New("gofmt exploded")},
		})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, Header))
		require.Contains(t, out, "type Query_pingResolver")
	})

	ttt.Run("custom package name", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `type Query { ping: String }`)
		out, err := Generate(GenerateArgs{Schema: s, Package: "graphql"})
		require.NoError(t, err)
		require.Contains(t, out, "package graphql")
	})
}
