package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/minilang/pkg/core/version"
)

var configFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		return err
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the settings after defaults, the config file, MINILANG_*
environment variables and command line flags have been applied. The output
is a valid config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Encode(cmd.OutOrStdout(), configFormat)
	},
}

func init() {
	configCmd.Flags().StringVar(&configFormat, "format", "toml", "output format (toml, yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
