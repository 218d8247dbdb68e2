// Numfield is a locale-aware currency and number entry field for the
// terminal.
//
// It hosts an interactive field that formats while you type, formats and
// parses values from the command line, manages named field profiles, and
// discovers numfield servers on the local network.
//
// Usage:
//
//	numfield [command] [flags]
//
// Running without arguments opens the interactive field.
// See 'numfield --help' for available commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/numfield/internal/logging"
	"github.com/muurk/numfield/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "numfield",
	Short: "Locale-aware currency and number entry",
	Long: `A terminal field for entering currency amounts and numbers.

The field formats its text for the configured locale and currency as you
type, hides the formatting while focused, and clamps committed values to
an optional range. Field settings can be saved as named profiles.

If no command is specified, the interactive field opens.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel != "" {
			return logging.Initialize(logLevel)
		}
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, &rootFlags)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level written to stderr (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)

	// The root command opens the field, so it accepts the same flags as edit.
	rootFlags.register(rootCmd)

	rootCmd.AddCommand(versionCmd)
}

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			data, err := json.MarshalIndent(version.Get(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "numfield %s\n", version.Full())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version information as JSON")
}
