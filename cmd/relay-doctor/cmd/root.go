package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	relay "github.com/clevertree/relay-clients"
	"github.com/clevertree/relay-clients/internal/logger"
	"github.com/clevertree/relay-clients/internal/version"
)

var (
	// expected, when set, is the core version the linked library must report.
	expected string
	// logLevel adjusts CLI verbosity.
	logLevel string

	// rootCmd probes the relay core library linked into this binary.
	rootCmd = &cobra.Command{
		Use:   "relay-doctor",
		Short: "Check the relay core library linked into this binary.",
		Long: `Prints the version reported by the linked relay core library alongside the
bindings' own build metadata. With --expected, exits non-zero when the linked
core does not report that version, which makes it usable as a packaging
smoke check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			core, err := relay.LibrelaycoreVersion()
			if err != nil {
				return fmt.Errorf("probe relay core: %w", err)
			}

			logger.Infof(ctx, "relay core version: %s", core)
			logger.Debugf(ctx, "bindings build: %s", version.Full())

			if expected != "" && core != expected {
				return fmt.Errorf("linked relay core reports version %q, expected %q", core, expected)
			}

			return nil
		},
	}
)

// Execute runs the relay-doctor CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&expected, "expected", "e", "", "fail unless the linked core reports this version")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
}
