package cmd

import (
	"context"
	"os"

	"github.com/birmacher/content-gen/config"
	"github.com/birmacher/content-gen/logger"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel  string
	logFormat string

	// Loaded once per invocation by the root command
	cfg      *config.Config
	defaults config.Defaults
)

var rootCmd = &cobra.Command{
	Use:   "content-gen",
	Short: "Generate social posts, threads and bios with AI",
	Long: `content-gen writes short-form social content with a large language model.
It can generate single posts, multi-part threads and profile bios, save the
results per user and serve the same operations over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		format := cfg.LogFormat
		if cmd.Flags().Changed("log-format") {
			format = logFormat
		}
		logger.Init(level, format)
		logger.Debugf("Log level set to: %s", level)

		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		defaults = config.LoadDefaults(wd)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command; ctx is cancelled on interrupt
func Execute(ctx context.Context) error {
	// Subcommands are added in their respective init() functions
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logger.FormatConsole,
		"Set the log output format (json, console)")
}
