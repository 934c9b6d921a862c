package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/panel"
	"github.com/spf13/cobra"
)

// Panel menu actions besides the version tags.
const (
	actionGenerate = "generate"
	actionQuit     = "quit"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Interactive terminal panel",
	Long: `Interactive terminal panel: pick a UUID version to see five example
identifiers and its description, regenerate, switch versions, or quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !isTerminal() {
			return errors.New("panel needs an interactive terminal; use generate instead")
		}
		p := panel.New(generator.New())
		return runPanel(cmd.OutOrStdout(), p, askPanelAction)
	},
}

func init() {
	rootCmd.AddCommand(panelCmd)
}

// runPanel drives p with actions from ask until the user quits.
func runPanel(w io.Writer, p *panel.Panel, ask func(panel.State) (string, error)) error {
	writePanel(w, p.State())
	for {
		action, err := ask(p.State())
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionGenerate:
			err = p.Generate()
		default:
			var v generator.Version
			if v, err = generator.ParseVersion(action); err == nil {
				err = p.Select(v)
			}
		}
		if err != nil {
			return err
		}
		writePanel(w, p.State())
	}
}

// askPanelAction shows the panel menu. Regenerating is offered only once a
// version is selected.
func askPanelAction(st panel.State) (string, error) {
	var opts []huh.Option[string]
	if st.Selected() {
		opts = append(opts, huh.NewOption(st.GenerateLabel, actionGenerate))
	}
	for _, v := range generator.Versions() {
		opts = append(opts, huh.NewOption(v.Label(), string(v)))
	}
	opts = append(opts, huh.NewOption("Quit", actionQuit))

	var action string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("UUID Generator").
				Options(opts...).
				Value(&action),
		),
	).Run()
	return action, err
}

func writePanel(w io.Writer, st panel.State) {
	fmt.Fprintln(w)
	if st.Selected() {
		fmt.Fprintf(w, "== %s ==\n", st.Label)
		for _, s := range st.Identifiers {
			fmt.Fprintf(w, "  %s\n", s)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, st.Description)
}
