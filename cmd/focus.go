package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

// frontmost is not in the attribute catalog; it is settable on applications.
var frontmost = ax.NewSettableAttribute("AXFrontmost")

// FocusResult is the output of a successful focus.
type FocusResult struct {
	OK      bool          `yaml:"ok"      json:"ok"`
	Action  string        `yaml:"action"  json:"action"`
	Element model.Element `yaml:"element" json:"element"`
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Bring an application, window or element into focus",
	Long: `Without a query, make the target application frontmost. With a query, focus
the matching element: windows are raised and made main, other elements get
keyboard focus.`,
	Example: `  aq focus --app Safari
  aq focus --app Notes --role window --title-contains Shopping
  aq focus --app TextEdit --role input`,
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addTargetFlags(focusCmd)
	addQueryFlags(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	q, err := getQuery(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider()
	if err != nil {
		return err
	}
	result, err := focusElement(cmd.Context(), provider, getTarget(cmd), q)
	if err != nil {
		return err
	}
	return output.Print(result)
}

func focusElement(ctx context.Context, provider *platform.Provider, target platform.Target, q model.Query) (FocusResult, error) {
	f, el, err := provider.Find(ctx, target, q.Predicate(), cfg.FinderOptions()...)
	if err != nil {
		return FocusResult{}, err
	}
	defer f.Close()

	role, err := el.Role()
	if err != nil {
		return FocusResult{}, err
	}
	switch role {
	case ax.RoleApplication:
		err = el.SetAttribute(frontmost, true)
	case ax.RoleWindow:
		if err = el.Raise(); err == nil {
			err = el.SetMain(true)
		}
	default:
		err = el.SetFocused(true)
	}
	if err != nil {
		return FocusResult{}, errors.Wrapf(err, "focus %s", el)
	}
	return FocusResult{OK: true, Action: "focus", Element: model.Describe(el, false)}, nil
}
