// Package config resolves aq settings from flags, AQ_* environment variables
// and an optional YAML file, in that order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mj1618/accessibility/internal/ax"
)

// Keys. Flags use the same names with dashes.
const (
	KeyWait             = "wait"
	KeyMaxDepth         = "max_depth"
	KeyPollInterval     = "poll_interval"
	KeyFormat           = "format"
	KeyPretty           = "pretty"
	KeyMessagingTimeout = "messaging_timeout"
	KeyPrompt           = "prompt"
)

const EnvPrefix = "AQ"

// DefaultFile is the config file looked up in the home directory.
const DefaultFile = ".aq.yaml"

// Config is the resolved configuration.
type Config struct {
	Wait             time.Duration `yaml:"wait"`
	MaxDepth         int           `yaml:"max_depth"`
	PollInterval     time.Duration `yaml:"poll_interval"`
	Format           string        `yaml:"format"`
	Pretty           bool          `yaml:"pretty"`
	MessagingTimeout time.Duration `yaml:"messaging_timeout"`
	Prompt           bool          `yaml:"prompt"`
}

// SetDefaults registers the default of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWait, time.Duration(0))
	v.SetDefault(KeyMaxDepth, ax.DefaultMaxDepth)
	v.SetDefault(KeyPollInterval, ax.DefaultPollInterval)
	v.SetDefault(KeyFormat, "yaml")
	v.SetDefault(KeyPretty, false)
	v.SetDefault(KeyMessagingTimeout, time.Duration(0))
	v.SetDefault(KeyPrompt, false)
}

// Load prepares v: defaults, environment and the config file. An explicit
// file must exist; the default one in the home directory is optional.
func Load(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		file = filepath.Join(home, DefaultFile)
		if _, err := os.Stat(file); err != nil {
			return nil
		}
	}
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", file)
	}
	return nil
}

// BindFlags binds every known key to the flag of the same name in fs, when
// fs defines it. Commands call it before reading the configuration so that
// only their own flags take part.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyWait, KeyMaxDepth, KeyPollInterval, KeyFormat, KeyPretty, KeyMessagingTimeout, KeyPrompt} {
		f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", f.Name)
		}
	}
	return nil
}

// Resolve reads and validates the configuration from v.
func Resolve(v *viper.Viper) (Config, error) {
	cfg := Config{
		Wait:             v.GetDuration(KeyWait),
		MaxDepth:         v.GetInt(KeyMaxDepth),
		PollInterval:     v.GetDuration(KeyPollInterval),
		Format:           v.GetString(KeyFormat),
		Pretty:           v.GetBool(KeyPretty),
		MessagingTimeout: v.GetDuration(KeyMessagingTimeout),
		Prompt:           v.GetBool(KeyPrompt),
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the finder and output layer cannot use.
func (c Config) Validate() error {
	switch {
	case c.Wait < 0:
		return errors.Errorf("%s must not be negative, got %s", KeyWait, c.Wait)
	case c.MaxDepth <= 0:
		return errors.Errorf("%s must be positive, got %d", KeyMaxDepth, c.MaxDepth)
	case c.PollInterval <= 0:
		return errors.Errorf("%s must be positive, got %s", KeyPollInterval, c.PollInterval)
	case c.MessagingTimeout < 0:
		return errors.Errorf("%s must not be negative, got %s", KeyMessagingTimeout, c.MessagingTimeout)
	}
	switch c.Format {
	case "yaml", "json":
	default:
		return errors.Errorf("%s must be yaml or json, got %q", KeyFormat, c.Format)
	}
	return nil
}

// FinderOptions converts the finder settings.
func (c Config) FinderOptions() []ax.FinderOption {
	return []ax.FinderOption{
		ax.WithWait(c.Wait),
		ax.WithMaxDepth(c.MaxDepth),
		ax.WithPollInterval(c.PollInterval),
	}
}
