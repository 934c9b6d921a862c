package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shamikhz/UUID-Generator/pkg/cliconfig"
	"github.com/shamikhz/UUID-Generator/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	configPath string
	jsonOutput bool
	logLevel   string
	logFormat  string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"

	// cfg is the effective configuration, loaded before any command runs.
	cfg = cliconfig.NewDefault()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uuidgen",
	Short: "uuidgen shows example identifiers for UUID versions v1 to v4",
	Long: `uuidgen shows batches of five example identifiers for a selected UUID
version, together with a short description of that version.

Run "uuidgen serve" for the web panel, or use generate, describe and panel
from the terminal.

Configuration can be provided via flags, environment variables (UUIDGEN_*),
a local .uuidgenrc.yaml or the global ~/.config/uuidgen/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Main()
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
}

// Main runs the CLI against os.Args and returns the process exit code.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// Execute runs the CLI and exits. This is called by main.main().
func Execute() {
	os.Exit(Main())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .uuidgenrc.yaml, then "+cliconfig.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}

// loadConfig resolves the configuration for this invocation. Flags that were
// set explicitly win over every other source.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := cliconfig.LoadAll(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("json") {
		loaded.JSON = jsonOutput
		loaded.Sources["json"] = cliconfig.SourceFlag
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
		loaded.Sources["logLevel"] = cliconfig.SourceFlag
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = logFormat
		loaded.Sources["logFormat"] = cliconfig.SourceFlag
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded
	return nil
}

// newLogger builds the process logger from the effective configuration.
func newLogger() *slog.Logger {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.LogLevel)
	lc.Format = logging.ParseFormat(cfg.LogFormat)
	return logging.New(lc)
}
