package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/lucasnoah/lintsweep/internal/config"
	"github.com/lucasnoah/lintsweep/internal/lint"
	"github.com/spf13/cobra"
)

// newInvoker builds the tool invoker for a resolved config. Tests replace it.
var newInvoker = func(l config.Lint, timeout time.Duration) lint.Invoker {
	return &lint.ExecInvoker{
		Tool:      l.Tool,
		Std:       l.Std,
		ExtraArgs: l.ExtraArgs,
		Timeout:   timeout,
		Dir:       l.Dir,
	}
}

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Lint each file once and print its warnings",
	Long: `Lint each file in order and print, per file, an upper-cased header, every
line of tool output containing ": warning: " followed by two blank lines, and a
separator. Files given as arguments replace the configured file list.

Tool failures do not stop the run and do not change the exit status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		failOnWarnings, _ := cmd.Flags().GetBool("fail-on-warnings")

		l, timeout, err := resolveLint(cmd, args)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		runner := lint.NewRunner(newInvoker(l, timeout), cmd.OutOrStdout())
		runner.SetLogger(logger)

		sum, err := runner.Run(cmd.Context(), l.Files, l.Checks)
		if err != nil {
			return err
		}
		logSummary(sum)

		if failOnWarnings && sum.Warnings > 0 {
			return fmt.Errorf("%d warning(s) found", sum.Warnings)
		}
		return nil
	},
}

// resolveLint loads the config and applies argument and flag overrides,
// then validates the result.
func resolveLint(cmd *cobra.Command, args []string) (config.Lint, time.Duration, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Lint{}, 0, err
	}
	l := cfg.Lint

	if len(args) > 0 {
		l.Files = args
	}
	if cmd.Flags().Changed("checks") {
		l.Checks, _ = cmd.Flags().GetStringSlice("checks")
	}
	if cmd.Flags().Changed("tool") {
		l.Tool, _ = cmd.Flags().GetString("tool")
	}
	if cmd.Flags().Changed("std") {
		l.Std, _ = cmd.Flags().GetString("std")
	}
	if cmd.Flags().Changed("timeout") {
		l.Timeout, _ = cmd.Flags().GetString("timeout")
	}

	if errs := config.Validate(&config.LintConfig{Lint: l}); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return config.Lint{}, 0, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	timeout, err := l.TimeoutDuration()
	if err != nil {
		return config.Lint{}, 0, err
	}
	return l, timeout, nil
}

func logSummary(sum lint.Summary) {
	logger.Info("lint run complete", "files", sum.Files, "warnings", sum.Warnings, "failed_invocations", len(sum.Failures))
	for _, f := range sum.Failures {
		if f.Err != "" {
			logger.Warn("tool could not be run", "file", f.File, "error", f.Err)
		}
	}
}

func addLintFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("checks", nil, "check selectors, replacing the configured set (comma-separated)")
	cmd.Flags().String("tool", "", "analysis tool to invoke")
	cmd.Flags().String("std", "", "language standard passed as -std=")
	cmd.Flags().String("timeout", "", "per-file timeout, e.g. 2m (empty for none)")
}

func init() {
	addLintFlags(runCmd)
	runCmd.Flags().Bool("fail-on-warnings", false, "exit non-zero when any warning is printed")
}
