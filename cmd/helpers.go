package cmd

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/platform"
)

// addTargetFlags adds the flags selecting which application to operate on.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("app", "", "Application name (default: the frontmost app)")
	cmd.Flags().String("bundle", "", "Application bundle identifier (e.g. com.apple.Safari)")
	cmd.Flags().Int("pid", 0, "Application process ID")
	cmd.Flags().Bool("system", false, "Use the system-wide element")
}

func getTarget(cmd *cobra.Command) platform.Target {
	var t platform.Target
	t.App, _ = cmd.Flags().GetString("app")
	t.Bundle, _ = cmd.Flags().GetString("bundle")
	t.PID, _ = cmd.Flags().GetInt("pid")
	t.SystemWide, _ = cmd.Flags().GetBool("system")
	return t
}

// addQueryFlags adds the flags describing the element to search for.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("role", "", "Role code (btn, input, ...) or raw role (AXButton)")
	cmd.Flags().String("subrole", "", "Raw subrole (e.g. AXCloseButton)")
	cmd.Flags().String("title", "", "Exact title")
	cmd.Flags().String("title-contains", "", "Case-insensitive title substring")
	cmd.Flags().String("text", "", "Case-insensitive substring of title, value, description or identifier")
	cmd.Flags().String("identifier", "", "Exact AXIdentifier")
	cmd.Flags().StringArray("attr", nil, "Attribute filter NAME=VALUE (repeatable)")
	addSearchFlags(cmd)
}

func getQuery(cmd *cobra.Command) (model.Query, error) {
	var q model.Query
	q.Role, _ = cmd.Flags().GetString("role")
	q.Subrole, _ = cmd.Flags().GetString("subrole")
	q.Title, _ = cmd.Flags().GetString("title")
	q.TitleContains, _ = cmd.Flags().GetString("title-contains")
	q.Text, _ = cmd.Flags().GetString("text")
	q.Identifier, _ = cmd.Flags().GetString("identifier")

	pairs, _ := cmd.Flags().GetStringArray("attr")
	attrs, err := model.ParseAttributeFilters(pairs)
	if err != nil {
		return model.Query{}, err
	}
	q.Attributes = attrs
	return q, nil
}

// requireQuery rejects an empty query for commands that act on one element,
// since it would select the application itself.
func requireQuery(q model.Query) error {
	if q.Empty() {
		return errors.New("specify the element with --role, --title, --title-contains, --text, --identifier or --attr")
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// newProvider returns the platform provider once the process is trusted and
// the configured messaging timeout is applied.
func newProvider() (*platform.Provider, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	if err := provider.CheckTrust(cfg.Prompt); err != nil {
		return nil, err
	}
	if cfg.MessagingTimeout > 0 {
		seconds := float32(cfg.MessagingTimeout.Seconds())
		if code := provider.Accessibility.SetGlobalMessagingTimeout(seconds); code != ax.Success {
			logrus.Warnf("could not set messaging timeout: %v", code)
		}
	}
	return provider, nil
}

// findElement resolves the command's target and searches it with the
// command's query. Callers Close the finder when done with the element.
func findElement(ctx context.Context, cmd *cobra.Command, provider *platform.Provider, allowEmpty bool) (*ax.Finder, *ax.Element, error) {
	q, err := getQuery(cmd)
	if err != nil {
		return nil, nil, err
	}
	if !allowEmpty {
		if err := requireQuery(q); err != nil {
			return nil, nil, err
		}
	}
	return provider.Find(ctx, getTarget(cmd), q.Predicate(), cfg.FinderOptions()...)
}
