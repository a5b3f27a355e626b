package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List running applications",
	Long:  "List running applications that have a user interface, the active one first, with their name, PID and bundle identifier.",
	RunE:  runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
}

// appsResult is the output of `aq apps`.
type appsResult struct {
	Apps []model.App `yaml:"apps" json:"apps"`
}

func runApps(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Workspace == nil {
		return platform.ErrUnsupported
	}
	apps, err := provider.Workspace.RunningApps()
	if err != nil {
		return err
	}
	if apps == nil {
		apps = []model.App{}
	}
	return output.Print(appsResult{Apps: apps})
}
