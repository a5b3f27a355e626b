package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
)

var attrsCmd = &cobra.Command{
	Use:   "attrs",
	Short: "List every attribute and action of an element",
	Long: `Print every attribute an element advertises with its value kind, current
value and whether it can be set, followed by its parameterized attributes and
its actions with their descriptions.

Without a query the application element itself is inspected.`,
	Example: `  aq attrs --app Safari
  aq attrs --app TextEdit --role input`,
	RunE: runAttrs,
}

func init() {
	rootCmd.AddCommand(attrsCmd)
	addTargetFlags(attrsCmd)
	addQueryFlags(attrsCmd)
}

func runAttrs(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	f, el, err := findElement(cmd.Context(), cmd, provider, true)
	if err != nil {
		return err
	}
	defer f.Close()

	insp, err := model.Inspect(el)
	if err != nil {
		return err
	}
	return output.Print(insp)
}
