package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

// WaitResult is the output of `aq wait`.
type WaitResult struct {
	OK       bool           `yaml:"ok"                  json:"ok"`
	Elapsed  string         `yaml:"elapsed"             json:"elapsed"`
	Match    string         `yaml:"match"               json:"match"`
	Element  *model.Element `yaml:"element,omitempty"   json:"element,omitempty"`
	TimedOut bool           `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for an element to appear or disappear",
	Long: `Search for an element until it appears, or with --gone until it no longer
exists, or until --timeout passes. A timeout prints the result and exits
non-zero.`,
	Example: `  aq wait --app Safari --role sheet --timeout 10s
  aq wait --app Installer --title "Installing…" --gone --timeout 5m`,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	addTargetFlags(waitCmd)
	addQueryFlags(waitCmd)
	waitCmd.Flags().Duration("timeout", 30*time.Second, "Max time to wait")
	waitCmd.Flags().Bool("gone", false, "Wait until no element matches")
}

func runWait(cmd *cobra.Command, args []string) error {
	q, err := getQuery(cmd)
	if err != nil {
		return err
	}
	if err := requireQuery(q); err != nil {
		return err
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	gone, _ := cmd.Flags().GetBool("gone")

	provider, err := newProvider()
	if err != nil {
		return err
	}

	target := getTarget(cmd)
	start := time.Now()
	result := WaitResult{Match: describeQuery(q, gone)}
	if gone {
		err = waitGone(cmd.Context(), provider, target, q, timeout)
	} else {
		var el model.Element
		el, err = waitFound(cmd.Context(), provider, target, q, timeout)
		if err == nil {
			result.Element = &el
		}
	}
	result.Elapsed = time.Since(start).Round(100 * time.Millisecond).String()

	if errors.Is(err, ax.ErrNotFound) || errors.Is(err, errStillPresent) {
		result.TimedOut = true
		_ = output.Print(result)
		return errors.Errorf("timed out after %s waiting for %s", timeout, result.Match)
	}
	if err != nil {
		return err
	}
	result.OK = true
	return output.Print(result)
}

var errStillPresent = errors.New("element still present")

func waitFound(ctx context.Context, provider *platform.Provider, target platform.Target, q model.Query, timeout time.Duration) (model.Element, error) {
	f, el, err := provider.Find(ctx, target, q.Predicate(),
		ax.WithWait(timeout),
		ax.WithMaxDepth(cfg.MaxDepth),
		ax.WithPollInterval(cfg.PollInterval))
	if err != nil {
		return model.Element{}, err
	}
	defer f.Close()
	return model.Describe(el, false), nil
}

// waitGone polls with single-pass searches until one finds nothing.
func waitGone(ctx context.Context, provider *platform.Provider, target platform.Target, q model.Query, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		f, _, err := provider.Find(ctx, target, q.Predicate(), ax.WithMaxDepth(cfg.MaxDepth))
		switch {
		case errors.Is(err, ax.ErrNotFound):
			return nil
		case err != nil:
			return err
		}
		f.Close()

		if time.Now().After(deadline) {
			return errStillPresent
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.PollInterval):
		}
	}
}

// describeQuery returns a human-readable description of what was waited for.
func describeQuery(q model.Query, gone bool) string {
	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", key, value))
		}
	}
	add("role", q.Role)
	add("subrole", q.Subrole)
	add("title", q.Title)
	add("title~", q.TitleContains)
	add("text", q.Text)
	add("identifier", q.Identifier)
	for _, name := range sortedKeys(q.Attributes) {
		add(name, q.Attributes[name])
	}
	desc := strings.Join(parts, " ")
	if gone {
		desc += " (gone)"
	}
	return desc
}
