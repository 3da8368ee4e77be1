package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/minilang/internal/driver"
)

var astJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <source-file>",
	Short: "Print the token list",
	Long: `Tokenizes the source file and prints one token per line, ending with
the EOF token. Lexical warnings are written to stderr.`,
	Args: requireFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDriver(cmd, args[0], driver.ModeTokens, false)
	},
}

var astCmd = &cobra.Command{
	Use:   "ast <source-file>",
	Short: "Print the syntax tree",
	Long: `Parses the source file and prints the syntax tree, indented by two
spaces per level. With --json the tree is printed as JSON instead.

Exits with status 2 when no tree could be built.`,
	Args: requireFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDriver(cmd, args[0], driver.ModeAST, astJSON)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <source-file>",
	Short: "Report diagnostics only",
	Long: `Runs all phases and prints the diagnostics followed by a summary line.
Exits with status 2 when any error was reported, regardless of --strict.`,
	Args: requireFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDriver(cmd, args[0], driver.ModeCheck, false)
	},
}

func init() {
	astCmd.Flags().BoolVar(&astJSON, "json", false, "print the tree as JSON")

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(checkCmd)
}
