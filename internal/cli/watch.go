package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lucasnoah/lintsweep/internal/lint"
	"github.com/lucasnoah/lintsweep/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Lint all files, then again whenever one of them changes",
	Long: `Run a full lint pass, then repeat the full pass each time a listed file is
written. Stops on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debounce, _ := cmd.Flags().GetDuration("debounce")

		l, timeout, err := resolveLint(cmd, args)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := lint.NewRunner(newInvoker(l, timeout), cmd.OutOrStdout())
		runner.SetLogger(logger)

		pass := func(ctx context.Context) error {
			sum, err := runner.Run(ctx, l.Files, l.Checks)
			if err != nil {
				return err
			}
			logSummary(sum)
			return nil
		}

		if err := pass(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		return watch.Watch(ctx, watchPaths(l.Dir, l.Files), debounce, logger, pass)
	},
}

// watchPaths resolves files the way the tool sees them: relative to dir.
func watchPaths(dir string, files []string) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		if dir != "" && !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		paths[i] = f
	}
	return paths
}

func init() {
	addLintFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before re-running after a change")
}
