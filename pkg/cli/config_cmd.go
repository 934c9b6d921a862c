package cli

import (
	"fmt"
	"strconv"

	"github.com/shamikhz/UUID-Generator/pkg/cli/internal/output"
	"github.com/shamikhz/UUID-Generator/pkg/cliconfig"
	"github.com/spf13/cobra"
)

// configEntry is one effective configuration value and where it came from.
type configEntry struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// configReport is the JSON form of "uuidgen config".
type configReport struct {
	ConfigFile string        `json:"configFile,omitempty"`
	Values     []configEntry `json:"values"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long: `Show the effective configuration and the source of each value
(default, global, local, env or flag).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		report := configReport{ConfigFile: cfg.ConfigFile}
		for _, key := range cliconfig.Keys {
			report.Values = append(report.Values, configEntry{
				Key:    key,
				Value:  configValue(cfg, key),
				Source: cfg.Sources[key],
			})
		}

		out := cmd.OutOrStdout()
		if cfg.JSON {
			return output.JSON(out, report)
		}

		if report.ConfigFile != "" {
			fmt.Fprintf(out, "Config file: %s\n\n", report.ConfigFile)
		}
		tw := output.Table(out)
		fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
		for _, e := range report.Values {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Value, e.Source)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configValue renders the value of a config key for display.
func configValue(c *cliconfig.Config, key string) string {
	switch key {
	case "host":
		return c.Host
	case "port":
		return strconv.Itoa(c.Port)
	case "readTimeout":
		return c.ReadTimeoutDuration().String()
	case "writeTimeout":
		return c.WriteTimeoutDuration().String()
	case "sessionTTL":
		return c.SessionTTLDuration().String()
	case "maxSessions":
		return strconv.Itoa(c.MaxSessions)
	case "logLevel":
		return c.LogLevel
	case "logFormat":
		return c.LogFormat
	case "json":
		return strconv.FormatBool(c.JSON)
	}
	return ""
}
