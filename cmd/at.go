package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

// AtResult is the output of `aq at`.
type AtResult struct {
	Point   [2]int        `yaml:"point,flow"     json:"point"`
	PID     int           `yaml:"pid,omitempty"  json:"pid,omitempty"`
	Element model.Element `yaml:"element"        json:"element"`
}

var atCmd = &cobra.Command{
	Use:   "at X,Y",
	Short: "Show the element under a screen point",
	Long: `Hit-test a screen point (in points, origin at the top-left of the main
display) and print the deepest element under it. Without target flags the
whole desktop is searched.`,
	Example: `  aq at 640,480
  aq at 100,200 --app Safari`,
	Args: cobra.ExactArgs(1),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(atCmd)
	addTargetFlags(atCmd)
}

func runAt(cmd *cobra.Command, args []string) error {
	x, y, err := platform.ParsePoint(args[0])
	if err != nil {
		return err
	}
	target := getTarget(cmd)
	if target == (platform.Target{}) {
		target.SystemWide = true
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	result, err := elementAt(provider, target, x, y)
	if err != nil {
		return err
	}
	return output.Print(result)
}

func elementAt(provider *platform.Provider, target platform.Target, x, y int) (AtResult, error) {
	root, err := provider.Resolve(target)
	if err != nil {
		return AtResult{}, err
	}
	defer root.Close()

	hit, err := root.ElementAtPosition(ax.Point{X: float64(x), Y: float64(y)})
	if err != nil {
		return AtResult{}, errors.Wrapf(err, "nothing at %d,%d", x, y)
	}
	defer hit.Close()

	pid, _ := hit.Pid()
	return AtResult{Point: [2]int{x, y}, PID: pid, Element: model.Describe(hit, true)}, nil
}
