package cmd

import (
	"context"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang"
	"github.com/msto63/minilang/internal/driver"
	"github.com/msto63/minilang/internal/tui/inspector"
	"github.com/msto63/minilang/internal/watch"
	"github.com/msto63/minilang/pkg/core/cache"
)

var inspectWatch bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <source-file>",
	Short: "Browse tokens, tree, diagnostics and symbols",
	Long: `Starts an interactive terminal view of one compilation.

Keyboard shortcuts:
  1-4         Switch tab (tokens, AST, diagnostics, symbols)
  Tab         Next tab
  Shift+Tab   Previous tab
  w           Show/hide warnings
  r           Recompile
  g/G         Jump to top/bottom
  q/Esc       Quit

With --watch the view recompiles whenever the file is saved.`,
	Args: requireFile,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVarP(&inspectWatch, "watch", "w", false, "recompile when the file changes")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	opts := driverOptions(cmd, driver.ModeCompile, false)
	opts.Cache = cache.New[*minilang.Result](cache.DefaultConfig())
	d := driver.New(opts)

	p := inspector.NewProgram(inspector.Config{
		Path: path,
		Compile: func(ctx context.Context) (*minilang.Result, error) {
			return d.CompileFile(ctx, path)
		},
	})

	if inspectWatch {
		w, err := watch.New(path, watch.Options{
			Debounce: settings.Watch.Debounce.Duration,
			Logger:   logger,
		})
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			if err := w.Run(ctx, func(context.Context) { p.Send(inspector.Reload()) }); err != nil {
				logger.ErrorWithErr("Watching stopped", err, mdwlog.String("path", path))
			}
		}()
	}

	_, err := p.Run()
	return err
}
