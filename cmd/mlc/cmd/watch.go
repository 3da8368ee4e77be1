package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang"
	"github.com/msto63/minilang/internal/driver"
	"github.com/msto63/minilang/internal/watch"
	"github.com/msto63/minilang/pkg/core/cache"
)

var watchCmd = &cobra.Command{
	Use:   "watch <source-file>",
	Short: "Recompile on every change",
	Long: `Compiles the source file and compiles it again every time it is saved.
Output is the same as for the plain mlc command. Errors such as a file that
is briefly missing while an editor saves are printed and watching continues.

Stop with Ctrl+C. The quiet period after a change is set by watch.debounce.`,
	Args: requireFile,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	w, err := watch.New(path, watch.Options{
		Debounce: settings.Watch.Debounce.Duration,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	opts := driverOptions(cmd, driver.ModeCompile, false)
	opts.Cache = cache.New[*minilang.Result](cache.DefaultConfig())
	d := driver.New(opts)
	out := cmd.OutOrStdout()

	logger.Info("Watching source file", mdwlog.String("path", w.Path()))
	return w.Run(cmd.Context(), func(ctx context.Context) {
		fmt.Fprintf(out, "[%s] %s\n", time.Now().Format("15:04:05"), path)
		if _, err := d.Run(ctx, path); err != nil && ctx.Err() == nil {
			printError(err)
		}
		fmt.Fprintln(out)
	})
}
