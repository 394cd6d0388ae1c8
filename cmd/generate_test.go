package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestNewGenerateCommand(ttt *testing.T) {
	ttt.Run("flag defaults match the option defaults", func(t *testing.T) {
		t.Parallel()
		c := NewGenerateCommand()
		for flag, want := range map[string]string{
			"output-directory": "graph",
			"output-file":      "resolvers_gen.go",
			"package":          "resolvers",
		} {
			f := c.PersistentFlags().Lookup(flag)
			require.NotNilf(t, f, "flag %s", flag)
			require.Equalf(t, want, f.DefValue, "flag %s", flag)
		}
	})

	ttt.Run("generation fails without schema files", func(t *testing.T) {
		t.Parallel()
		c := NewGenerateCommand()
		c.SetArgs([]string{})
		require.Error(t, c.Execute())
	})

	ttt.Run("version flag reaches viper", func(t *testing.T) {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup("version"))

		version = "v9"
		defer func() { version = "" }()
		initConfig()
		require.Equal(t, "v9", viper.GetString("version"))
	})
}
