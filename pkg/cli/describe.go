package cli

import (
	"fmt"

	"github.com/shamikhz/UUID-Generator/pkg/cli/internal/output"
	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/web"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [version]",
	Short: "Print the description of a UUID version",
	Long: `Print the fixed description of a UUID version. Without a version (or with
"unset") the selection prompt is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := generator.Unset
		if len(args) == 1 && args[0] != "unset" {
			parsed, err := generator.ParseVersion(args[0])
			if err != nil {
				return err
			}
			v = parsed
		}

		desc := generator.Describe(v)
		if cfg.JSON {
			return output.JSON(cmd.OutOrStdout(), web.DescriptionResponse{Version: v, Description: desc})
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), desc)
		return err
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
