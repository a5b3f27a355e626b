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

var setCmd = &cobra.Command{
	Use:   "set VALUE",
	Short: "Set an attribute of an element",
	Long: `Find an element and set one of its attributes through the accessibility API.

VALUE is parsed according to the attribute's kind: text, true/false, a
number, "x,y" for a point, "w,h" for a size, "x,y,w,h" for a rectangle or
"location,length" for a range. Attributes of no fixed kind, such as AXValue,
take the kind of their current value.`,
	Example: `  aq set "hello world" --app TextEdit --role input
  aq set 0.75 --app "System Settings" --role slider
  aq set 100,100 --attribute AXPosition --app Notes --role window`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	addTargetFlags(setCmd)
	addQueryFlags(setCmd)
	setCmd.Flags().String("attribute", ax.ValueAttr.Name(), "Attribute to set")
}

func runSet(cmd *cobra.Command, args []string) error {
	attribute, _ := cmd.Flags().GetString("attribute")
	q, err := getQuery(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider()
	if err != nil {
		return err
	}
	result, err := setAttribute(cmd.Context(), provider, getTarget(cmd), q, attribute, args[0])
	if err != nil {
		return err
	}
	return output.Print(result)
}

// setAttribute finds the element selected by q and sets attribute from text.
func setAttribute(ctx context.Context, provider *platform.Provider, target platform.Target, q model.Query, attribute, text string) (output.ActionResult, error) {
	if err := requireQuery(q); err != nil {
		return output.ActionResult{}, err
	}
	f, el, err := provider.Find(ctx, target, q.Predicate(), cfg.FinderOptions()...)
	if err != nil {
		return output.ActionResult{}, err
	}
	defer f.Close()

	if settable, err := el.IsSettable(attribute); err == nil && !settable {
		return output.ActionResult{}, errors.Errorf("%s of %s is not settable", attribute, el)
	}
	v, err := model.SetFromText(el, attribute, text)
	if err != nil {
		return output.ActionResult{}, errors.Wrapf(err, "set %s", attribute)
	}
	return output.ActionResult{
		OK:      true,
		Action:  "set " + attribute,
		Element: model.Describe(el, false),
		Value:   model.PlainValue(v),
	}, nil
}
