package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find the first element matching a query",
	Long: `Search an application's tree depth-first for the first element matching every
given criterion. With --wait the search is repeated until an element appears
or the time runs out; the last pass always completes, so a match found just
after the deadline is still returned.`,
	Example: `  aq find --app Safari --role btn --title Reload
  aq find --bundle com.apple.Notes --text "New Note" --wait 5s
  aq find --app Finder --attr AXSubrole=AXCloseButton`,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	addTargetFlags(findCmd)
	addQueryFlags(findCmd)
	findCmd.Flags().Bool("actions", true, "Include the match's actions")
}

func runFind(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}

	start := time.Now()
	f, el, err := findElement(cmd.Context(), cmd, provider, false)
	if err != nil {
		return err
	}
	defer f.Close()

	actions, _ := cmd.Flags().GetBool("actions")
	return output.Print(output.FindResult{
		Match:   model.Describe(el, actions),
		Passes:  f.Passes(),
		Elapsed: time.Since(start).Round(time.Millisecond).String(),
	})
}
