package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/graphidae/resolvergen/internal/schema"
)

func mustSchema(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	s, err := schema.BuildFromSDL("test.graphql", sdl)
	require.NoError(t, err)
	return s
}

func TestBuildAssociations(ttt *testing.T) {
	tests := []struct {
		name string
		sdl  string
		want map[string][]string
	}{
		{
			name: "repeated references are retained",
			sdl: `
type Mutation {
  createUser(input: CreateUserInput!): Boolean
  importUsers(first: CreateUserInput!, second: CreateUserInput!): Boolean
}
input CreateUserInput { name: String! }
`,
			want: map[string][]string{
				"Mutation": {"CreateUserInput", "CreateUserInput", "CreateUserInput"},
			},
		},
		{
			name: "scalar and enum arguments do not associate",
			sdl: `
type Query {
  user(id: ID!, role: Role): String
}
enum Role { ADMIN }
`,
			want: map[string][]string{},
		},
		{
			name: "type without input arguments is absent, not empty",
			sdl: `
type Query { ping: String }
type Mutation {
  rename(input: RenameInput!): Boolean
}
input RenameInput { name: String! }
`,
			want: map[string][]string{
				"Mutation": {"RenameInput"},
			},
		},
		{
			name: "only object types associate",
			sdl: `
interface Node { lookup(input: Filter): ID }
type Query { node(input: Filter): String }
input Filter { id: ID }
`,
			want: map[string][]string{
				"Query": {"Filter"},
			},
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := mustSchema(t, tt.sdl)
			got := BuildAssociations(s.Types)
			require.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestDistinctInputTypes(ttt *testing.T) {
	ttt.Run("deduplicates in first-seen order", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Mutation {
  a(x: BInput, y: AInput): Boolean
  b(z: BInput): Boolean
}
input AInput { v: String }
input BInput { v: String }
`)
		assoc := BuildAssociations(s.Types)
		inputs := BuildInputTypeTable(s.Types)
		got, err := DistinctInputTypes(s.Type("Mutation"), assoc, inputs)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff([]string{"BInput", "AInput"}, got))
	})

	ttt.Run("closes over nested input fields", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Mutation {
  createUser(input: CreateUserInput!): Boolean
}
input CreateUserInput {
  name: String!
  address: AddressInput
}
input AddressInput {
  city: String!
  geo: GeoInput
}
input GeoInput { lat: Float, lng: Float }
`)
		assoc := BuildAssociations(s.Types)
		inputs := BuildInputTypeTable(s.Types)
		got, err := DistinctInputTypes(s.Type("Mutation"), assoc, inputs)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff([]string{"CreateUserInput", "AddressInput", "GeoInput"}, got))
	})

	ttt.Run("absent association yields nil", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `type Query { ping: String }`)
		got, err := DistinctInputTypes(s.Type("Query"), BuildAssociations(s.Types), BuildInputTypeTable(s.Types))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	ttt.Run("missing table entry is an error", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Mutation { act(input: Filter): Boolean }
input Filter { id: ID }
`)
		assoc := BuildAssociations(s.Types)
		got, err := DistinctInputTypes(s.Type("Mutation"), assoc, InputTypeTable{})
		require.ErrorIs(t, err, ErrUnknownInputType)
		require.Nil(t, got)
	})

	ttt.Run("cyclic input references terminate", func(t *testing.T) {
		t.Parallel()
		s := mustSchema(t, `
type Mutation { act(input: TreeInput): Boolean }
input TreeInput {
  value: Int
  children: [TreeInput!]
}
`)
		assoc := BuildAssociations(s.Types)
		inputs := BuildInputTypeTable(s.Types)
		got, err := DistinctInputTypes(s.Type("Mutation"), assoc, inputs)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff([]string{"TreeInput"}, got))
	})
}
