package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/graphidae/resolvergen/pkg/gen"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	options := gen.NewOptions()

	// generateCmd represents the resolvergen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate resolver declarations",
		Long:  "Generate resolver declaration types from one or more GraphQL SDL schema files",
		RunE: func(c *cobra.Command, args []string) error {
			if len(options.Models) == 0 {
				options.Models = viper.GetStringMapString("models")
			}
			if options.Version == "" {
				options.Version = viper.GetString("version")
			}
			return gen.Run(options)
		},
	}
	generateCmd.PersistentFlags().StringSliceVarP(&options.SchemaFiles, "schema", "s", []string{}, "SDL schema file(s), merged in order")
	generateCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "graph", "directory to write generated declarations")
	generateCmd.PersistentFlags().StringVarP(&options.OutFile, "output-file", "f", "resolvers_gen.go", "output file where declarations will be written")
	generateCmd.PersistentFlags().StringVarP(&options.Package, "package", "p", "resolvers", "package name of the generated file")
	generateCmd.PersistentFlags().StringToStringVarP(&options.Models, "model", "m", nil, "model binding, ex: User=example.com/app/model.User")
	generateCmd.PersistentFlags().StringVarP(&options.ModelsDir, "models-dir", "M", "", "directory whose package auto-binds unbound object types")
	generateCmd.PersistentFlags().StringVarP(&options.Context, "context", "c", "", "resolver context binding, ex: example.com/app/graph.Context")
	generateCmd.PersistentFlags().StringVar(&options.Subscription, "subscription", "", "override the subscription root type name")
	generateCmd.PersistentFlags().BoolVar(&options.SkipImports, "skip-imports", false, "reformat only, without fixing the import block")
	generateCmd.PersistentFlags().StringVar(&options.Manifest, "manifest", "", "manifest file tracking generated outputs")

	return generateCmd
}
