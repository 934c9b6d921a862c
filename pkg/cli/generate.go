package cli

import (
	"fmt"

	"github.com/shamikhz/UUID-Generator/pkg/cli/internal/output"
	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/web"
	"github.com/spf13/cobra"
)

var generateBatches int

var generateCmd = &cobra.Command{
	Use:   "generate [version]",
	Short: "Print a batch of example identifiers",
	Long: `Print a batch of five example identifiers for a UUID version, one per line.

Without a version argument an interactive picker is shown.`,
	Example: `  # Five v2 identifiers
  uuidgen generate v2

  # Three batches of v4 identifiers as JSON
  uuidgen generate v4 --batches 3 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&generateBatches, "batches", "n", 1, "Number of batches to print")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateBatches < 1 {
		return fmt.Errorf("--batches must be at least 1, got %d", generateBatches)
	}
	v, err := versionArg(args, "Which UUID version?")
	if err != nil {
		return err
	}

	gen := generator.New()
	out := cmd.OutOrStdout()

	if cfg.JSON {
		batches := make([]web.BatchResponse, 0, generateBatches)
		for range generateBatches {
			batches = append(batches, web.BatchResponse{Version: v, Identifiers: gen.Generate(v)})
		}
		if len(batches) == 1 {
			return output.JSON(out, batches[0])
		}
		return output.JSON(out, batches)
	}

	for range generateBatches {
		if err := output.Lines(out, gen.Generate(v)); err != nil {
			return err
		}
	}
	return nil
}
