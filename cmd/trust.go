package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

// TrustResult is the output of `aq trust`.
type TrustResult struct {
	Trusted  bool `yaml:"trusted"            json:"trusted"`
	Prompted bool `yaml:"prompted,omitempty" json:"prompted,omitempty"`
}

var trustCmd = &cobra.Command{
	Use:   "trust",
	Short: "Check whether aq may use the accessibility API",
	Long: `Report whether this process is trusted to use the accessibility API. With
--prompt the system is asked to show its permission prompt when it is not.

Grant access in System Settings > Privacy & Security > Accessibility for the
terminal running aq.`,
	RunE: runTrust,
}

func init() {
	rootCmd.AddCommand(trustCmd)
}

func runTrust(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Trust == nil {
		return platform.ErrUnsupported
	}

	result := TrustResult{Trusted: provider.Trust.IsTrusted()}
	if !result.Trusted && cfg.Prompt {
		result.Trusted = provider.Trust.RequestTrust()
		result.Prompted = true
	}
	return output.Print(result)
}
