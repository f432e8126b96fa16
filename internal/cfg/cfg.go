// Package cfg provides configuration and command-line interface setup
// for fetcharr.
package cfg

import (
	"context"
	"fmt"

	"fetcharr/internal/app"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:           "fetcharr [config file]",
	Short:         "Fetcharr is a configuration-driven batch media downloader.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("usage: fetcharr path/to/config.json: %w", models.ErrInvalidSpec)
		}

		c, err := LoadBatchConfig(args[0])
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd.Flags(), c)

		logging.Level, _ = cmd.Flags().GetInt("debug")

		return app.Run(cmd.Context(), c)
	},
}

// Execute parses the command line and runs the batch.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.Flags().Int("debug", 0, "Debug level (0-5)")
	rootCmd.Flags().String("output-dir", "", "Override the configured output directory")
	rootCmd.Flags().Bool("stop-on-error", false, "Abort the batch on the first failed item")
	rootCmd.Flags().Bool("check-links", false, "Probe item URLs before the batch starts")
}

// applyFlagOverrides lets command-line flags win over config file values.
func applyFlagOverrides(fs *pflag.FlagSet, c *models.BatchConfig) {
	if fs.Changed("output-dir") {
		c.OutputDir, _ = fs.GetString("output-dir")
	}
	if fs.Changed("stop-on-error") {
		c.StopOnError, _ = fs.GetBool("stop-on-error")
	}
	if fs.Changed("check-links") {
		c.CheckLinks, _ = fs.GetBool("check-links")
	}
}
