package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/graphidae/resolvergen/pkg/gen"
)

func TestGenerate(ttt *testing.T) {
	schemaFile := "test/testdata/fixtures/canonical/schema.graphql"
	type args struct {
		opts []Option
	}
	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr bool
	}{
		{
			name: "generate with defaults",
			args: args{
				opts: []Option{
					WithSchemaFiles(schemaFile),
				},
			},
			want: []string{
				"// Code generated by resolvergen. DO NOT EDIT.",
				"package resolvers",
				"type Role string",
				"type Query_Args_user struct {",
				"type Query_userResolver func(",
				"type Mutation_CreateUserInput struct {",
				"type Mutation_AddressInput struct {",
				"type Mutation_UpdateUserInput struct {",
				"type Subscription_countdownResolver struct {",
				"var User_DefaultResolvers = resolver.DefaultMap{",
				"type Resolvers struct {",
			},
		},
		{
			name: "generate with package",
			args: args{
				opts: []Option{
					WithSchemaFiles(schemaFile),
					WithPackage("graphql"),
				},
			},
			want: []string{"package graphql"},
		},
		{
			name: "generate with model and context bindings",
			args: args{
				opts: []Option{
					WithSchemaFiles(schemaFile),
					WithModel("User", "example.com/app/model.User"),
					WithContext("example.com/app/graph.Context"),
				},
			},
			want: []string{
				`model "example.com/app/model"`,
				`graph "example.com/app/graph"`,
				"parent *model.User",
				"ctx graph.Context",
			},
		},
		{
			name: "generate with missing schema",
			args: args{
				opts: []Option{
					WithSchemaFiles("test/testdata/fixtures/canonical/absent.graphql"),
				},
			},
			wantErr: true,
		},
		{
			name: "generate with malformed model binding",
			args: args{
				opts: []Option{
					WithSchemaFiles(schemaFile),
					WithModel("User", "NoImportPath"),
				},
			},
			wantErr: true,
		},
	}
	for i, tt := range tests {
		outDir := filepath.Join(ttt.TempDir(), fmt.Sprintf("out%d", i))
		ttt.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithOutDir(outDir)}, tt.args.opts...)
			err := Generate(opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Generate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			data, err := os.ReadFile(filepath.Join(outDir, "resolvers_gen.go"))
			require.NoError(t, err)
			for _, want := range tt.want {
				require.Containsf(t, string(data), want, "generated output missing %q", want)
			}
		})
	}
}
