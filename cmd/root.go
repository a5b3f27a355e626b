package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/config"
	"github.com/mj1618/accessibility/internal/logger"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/version"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	hideLogTime bool
	noColor     bool
}

var (
	rootOpt rootOpts

	// settings layers flags, AQ_* variables and the config file.
	settings = viper.New()
	// cfg is resolved before each command runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "aq",
	Short: "Query and drive application UIs through the accessibility API",
	Long: `aq reads the accessibility tree of running applications, finds elements by
role, title or attribute, performs their actions, sets their values and
streams their notifications.

Settings come from flags, AQ_* environment variables and ~/.aq.yaml, in
that order.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command and exits non-zero on failure. An interrupt
// cancels the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger)
	rootCmd.Version = version.String()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootOpt.cfgFile, "config", "", "config file (default is $HOME/"+config.DefaultFile+")")
	pf.BoolVarP(&rootOpt.debugModeOn, "debug", "d", false, "turn on debug logging")
	pf.BoolVar(&rootOpt.hideLogTime, "hide-time", false, "hide the log time")
	pf.BoolVar(&rootOpt.noColor, "no-color", false, "disable colored logs")
	pf.String("format", "yaml", "Output format: yaml, json")
	pf.Bool("pretty", false, "Pretty-print JSON")
	pf.Duration("messaging-timeout", 0, "Timeout for each accessibility call (0 = system default)")
	pf.Bool("prompt", false, "Ask the system to prompt for accessibility access when missing")
	rootCmd.DisableAutoGenTag = true
}

func initLogger() {
	logger.Init(logger.LogOptions{
		Verbose:      rootOpt.debugModeOn,
		DisableColor: rootOpt.noColor,
		HideLogTime:  rootOpt.hideLogTime,
	})
}

// addSearchFlags adds the finder settings to commands that search.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("wait", 0, "How long to keep searching before giving up (e.g. 2s)")
	cmd.Flags().Int("max-depth", ax.DefaultMaxDepth, "Max search depth")
	cmd.Flags().Duration("poll-interval", ax.DefaultPollInterval, "Delay between searches while waiting")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := config.Load(settings, rootOpt.cfgFile); err != nil {
		return err
	}
	if err := config.BindFlags(settings, cmd.Flags()); err != nil {
		return err
	}
	resolved, err := config.Resolve(settings)
	if err != nil {
		return err
	}
	cfg = resolved

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	output.OutputFormat = format
	output.PrettyOutput = cfg.Pretty
	logrus.Debugf("settings: wait=%s max_depth=%d poll=%s format=%s",
		cfg.Wait, cfg.MaxDepth, cfg.PollInterval, cfg.Format)
	return nil
}
