package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/internal/driver"
	"github.com/msto63/minilang/pkg/core/config"
	"github.com/msto63/minilang/pkg/core/logging"
)

var (
	cfgFile    string
	strict     bool
	noColor    bool
	width      int
	warnUnused bool
	logLevel   string
	logFormat  string

	// set by PersistentPreRunE
	settings *config.Settings
	logger   *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mlc <source-file>",
	Short: "minilang compiler front end",
	Long: `mlc tokenizes, parses and checks minilang programs.

Without a subcommand mlc prints the token list, the syntax tree and the
semantic analysis of the given file. Diagnostics are written to stderr.

Configuration is read from --config, $MINILANG_CONFIG or minilang.toml /
minilang.yaml in the working directory or ./config. Every key can be
overridden with a MINILANG_* environment variable, e.g.
MINILANG_COMPILE_STRICT=true.

Exit status:
  0  compilation ran (diagnostics do not count unless --strict is set)
  1  usage error or unreadable source file
  2  error diagnostics with --strict, and for check / ast failures`,
	Args:              requireFile,
	PersistentPreRunE: setup,
	RunE:              runCompile,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./minilang.toml)")
	flags.BoolVar(&strict, "strict", false, "exit with status 2 when errors were reported")
	flags.BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	flags.IntVar(&width, "width", 0, "significant identifier characters (default 5)")
	flags.BoolVar(&warnUnused, "warn-unused", false, "warn about declared but unused variables")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, text, json, logfmt)")
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return execute(ctx, os.Args[1:])
}

func execute(ctx context.Context, args []string) int {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return driver.ExitOK
	}

	var status *exitStatus
	if errors.As(err, &status) {
		return status.code
	}

	printError(err)
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return code.ExitStatus()
	}
	return driver.ExitFatal
}

// setup loads the settings and applies command line overrides
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		s.Compile.Strict = strict
	}
	if flags.Changed("no-color") {
		s.Output.Color = !noColor
	}
	if flags.Changed("width") {
		s.Lexer.IdentifierWidth = width
	}
	if flags.Changed("warn-unused") {
		s.Compile.WarnUnused = warnUnused
	}
	if flags.Changed("log-level") {
		s.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		s.Log.Format = logFormat
	}
	if err := s.Validate(); err != nil {
		return err
	}

	settings = s
	logger = logging.FromSettings("mlc", s).WithOutput(cmd.ErrOrStderr())
	logger.Debug("Settings loaded", mdwlog.Fields{"file": s.File})
	return nil
}

func runCompile(cmd *cobra.Command, args []string) error {
	return runDriver(cmd, args[0], driver.ModeCompile, false)
}

// runDriver runs one driver pass and turns a non-zero status into an
// exitStatus error
func runDriver(cmd *cobra.Command, path string, mode driver.Mode, json bool) error {
	d := newDriver(cmd, mode, json)
	status, err := d.Run(cmd.Context(), path)
	if err != nil {
		return err
	}
	if status != driver.ExitOK {
		return &exitStatus{code: status}
	}
	return nil
}

func newDriver(cmd *cobra.Command, mode driver.Mode, json bool) *driver.Driver {
	return driver.New(driverOptions(cmd, mode, json))
}

func driverOptions(cmd *cobra.Command, mode driver.Mode, json bool) driver.Options {
	return driver.Options{
		Settings: settings,
		Logger:   logger,
		Mode:     mode,
		JSON:     json,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	}
}

// requireFile accepts exactly one source file argument
func requireFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return mdwerror.New("Usage: " + cmd.UseLine()).
			WithCode(mdwerror.CodeUsage).
			WithOperation("cmd." + cmd.Name())
	}
	return nil
}

// exitStatus carries a non-zero exit status that needs no message
type exitStatus struct {
	code int
}

func (e *exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func printError(err error) {
	msg := err.Error()
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		msg = mdwErr.Message()
	}
	if mdwerror.HasCode(err, mdwerror.CodeUsage) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), msg)
		return
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", msg)
}
