package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

var actionCmd = &cobra.Command{
	Use:   "action [ACTION]",
	Short: "Perform an accessibility action on an element",
	Long: `Find an element and perform one of its accessibility actions. The action is
given by short name or raw name and defaults to press:

  press      - Press/activate the element (buttons, links, menu items)
  increment  - Increase value (sliders, steppers)
  decrement  - Decrease value (sliders, steppers)
  confirm    - Confirm a dialog or selection
  cancel     - Cancel the current operation
  raise      - Bring a window to front
  showmenu   - Show the element's context menu
  pick       - Pick/select (dropdowns, menus)

The action is performed through the accessibility API, not by synthesizing
mouse events, so it works for off-screen and occluded elements.`,
	Example: `  aq action --app Calculator --role btn --title 7
  aq action increment --app "System Settings" --role slider
  aq action AXShowMenu --app Finder --text Documents`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAction,
}

func init() {
	rootCmd.AddCommand(actionCmd)
	addTargetFlags(actionCmd)
	addQueryFlags(actionCmd)
}

func runAction(cmd *cobra.Command, args []string) error {
	name := "press"
	if len(args) == 1 {
		name = args[0]
	}
	q, err := getQuery(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider()
	if err != nil {
		return err
	}
	result, err := performAction(cmd.Context(), provider, getTarget(cmd), q, name)
	if err != nil {
		return err
	}
	return output.Print(result)
}

// performAction finds the element selected by q and performs the named action
// on it. name may be a short or raw action name.
func performAction(ctx context.Context, provider *platform.Provider, target platform.Target, q model.Query, name string) (output.ActionResult, error) {
	if err := requireQuery(q); err != nil {
		return output.ActionResult{}, err
	}
	action := model.ActionName(name)
	f, el, err := provider.Find(ctx, target, q.Predicate(), cfg.FinderOptions()...)
	if err != nil {
		return output.ActionResult{}, err
	}
	defer f.Close()

	described := model.Describe(el, true)
	if err := el.PerformAction(action); err != nil {
		return output.ActionResult{}, errors.Wrapf(err, "perform %s on %s", action, el)
	}
	return output.ActionResult{OK: true, Action: action, Element: described}, nil
}
