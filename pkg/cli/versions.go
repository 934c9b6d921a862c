package cli

import (
	"fmt"

	"github.com/shamikhz/UUID-Generator/pkg/cli/internal/output"
	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/web"
	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the selectable UUID versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if cfg.JSON {
			infos := make([]web.VersionInfo, 0, 4)
			for _, v := range generator.Versions() {
				infos = append(infos, web.VersionInfo{Version: v, Label: v.Label(), Description: generator.Describe(v)})
			}
			return output.JSON(out, infos)
		}

		tw := output.Table(out)
		fmt.Fprintln(tw, "VERSION\tLABEL\tDESCRIPTION")
		for _, v := range generator.Versions() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", v, v.Label(), generator.Describe(v))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}
