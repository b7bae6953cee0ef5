package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

// logger is configured from the persistent flags before any subcommand runs.
var logger = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "lintsweep",
	Short: "Run clang-tidy over a file list and print only its warnings",
	Long: `lintsweep invokes a static-analysis tool (clang-tidy by default) once per
source file and prints the warning lines of its output under an upper-cased
header for each file.

The file list and check selectors come from ./lintsweep.yaml,
~/.lintsweep/config.yaml, or the built-in defaults, in that order.
Redirect stdout to keep a report: lintsweep run > linter-output.txt`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		l, err := newLogger(cmd.ErrOrStderr(), level, format)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to lintsweep config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "auto", "log format on stderr: auto, text, json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}
