package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/shamikhz/UUID-Generator/pkg/generator"
)

// errVersionRequired is returned when no version was given and there is no
// terminal to ask on.
var errVersionRequired = errors.New("version is required (one of v1, v2, v3, v4)")

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// versionArg parses the optional version argument, asking interactively when
// it is missing.
func versionArg(args []string, title string) (generator.Version, error) {
	if len(args) > 0 {
		return generator.ParseVersion(args[0])
	}
	if !isTerminal() {
		return generator.Unset, errVersionRequired
	}
	return pickVersion(title)
}

func versionOptions() []huh.Option[generator.Version] {
	var opts []huh.Option[generator.Version]
	for _, v := range generator.Versions() {
		opts = append(opts, huh.NewOption(v.Label(), v))
	}
	return opts
}

func pickVersion(title string) (generator.Version, error) {
	v := generator.V4
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[generator.Version]().
				Title(title).
				Options(versionOptions()...).
				Value(&v),
		),
	)
	if err := form.Run(); err != nil {
		return generator.Unset, err
	}
	return v, nil
}
