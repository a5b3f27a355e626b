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

// AssertResult is the output of an assert command.
type AssertResult struct {
	Pass    bool           `yaml:"pass"              json:"pass"`
	Error   string         `yaml:"error,omitempty"   json:"error,omitempty"`
	Element *model.Element `yaml:"element,omitempty" json:"element,omitempty"`
}

var assertCmd = &cobra.Command{
	Use:   "assert",
	Short: "Assert an element exists with expected properties",
	Long: `Find an element and check its properties. Prints pass/fail and exits 0 on
pass, 1 on failure. With --timeout the check is repeated until it passes or
the time runs out.`,
	Example: `  aq assert --app Calculator --role txt --identifier display --value 42
  aq assert --app Safari --role btn --title Reload --enabled
  aq assert --app Installer --role sheet --gone --timeout 30s`,
	RunE: runAssert,
}

func init() {
	rootCmd.AddCommand(assertCmd)
	addTargetFlags(assertCmd)
	addQueryFlags(assertCmd)

	assertCmd.Flags().String("value", "", "Assert the formatted value equals this")
	assertCmd.Flags().String("value-contains", "", "Assert the value contains this substring")
	assertCmd.Flags().Bool("checked", false, "Assert the element is checked (value 1 or true)")
	assertCmd.Flags().Bool("unchecked", false, "Assert the element is not checked")
	assertCmd.Flags().Bool("disabled", false, "Assert the element is disabled")
	assertCmd.Flags().Bool("enabled", false, "Assert the element is enabled")
	assertCmd.Flags().Bool("is-focused", false, "Assert the element has keyboard focus")
	assertCmd.Flags().Bool("gone", false, "Assert no element matches")
	assertCmd.Flags().Duration("timeout", 0, "Keep checking for this long (0 = single check)")
}

// expectation is what an element must satisfy.
type expectation struct {
	value         *string
	valueContains string
	checked       bool
	unchecked     bool
	disabled      bool
	enabled       bool
	focused       bool
	gone          bool
}

func getExpectation(cmd *cobra.Command) expectation {
	var e expectation
	if cmd.Flags().Changed("value") {
		v, _ := cmd.Flags().GetString("value")
		e.value = &v
	}
	e.valueContains, _ = cmd.Flags().GetString("value-contains")
	e.checked, _ = cmd.Flags().GetBool("checked")
	e.unchecked, _ = cmd.Flags().GetBool("unchecked")
	e.disabled, _ = cmd.Flags().GetBool("disabled")
	e.enabled, _ = cmd.Flags().GetBool("enabled")
	e.focused, _ = cmd.Flags().GetBool("is-focused")
	e.gone, _ = cmd.Flags().GetBool("gone")
	return e
}

// check validates element properties against the expectation.
func (e expectation) check(el model.Element) error {
	if e.value != nil && el.Value != *e.value {
		return fmt.Errorf("expected value %q but got %q", *e.value, el.Value)
	}
	if e.valueContains != "" && !strings.Contains(strings.ToLower(el.Value), strings.ToLower(e.valueContains)) {
		return fmt.Errorf("expected value to contain %q but got %q", e.valueContains, el.Value)
	}
	isChecked := el.Value == "1" || el.Value == "true"
	if e.checked && !isChecked {
		return fmt.Errorf("expected element to be checked but its value is %q", el.Value)
	}
	if e.unchecked && isChecked {
		return errors.New("expected element to be unchecked but it is checked")
	}
	isEnabled := el.Enabled == nil || *el.Enabled
	if e.disabled && isEnabled {
		return errors.New("expected element to be disabled but it is enabled")
	}
	if e.enabled && !isEnabled {
		return errors.New("expected element to be enabled but it is disabled")
	}
	if e.focused && !el.Focused {
		return errors.New("expected element to be focused but it is not")
	}
	return nil
}

// checkOnce runs one search and evaluates the expectation. Errors other than
// a failed expectation or a missing element are returned.
func checkOnce(ctx context.Context, provider *platform.Provider, target platform.Target, q model.Query, e expectation) (AssertResult, error) {
	f, el, err := provider.Find(ctx, target, q.Predicate(), ax.WithMaxDepth(cfg.MaxDepth))
	if errors.Is(err, ax.ErrNotFound) {
		if e.gone {
			return AssertResult{Pass: true}, nil
		}
		return AssertResult{Error: "no element matches " + describeQuery(q, false)}, nil
	}
	if err != nil {
		return AssertResult{}, err
	}
	defer f.Close()

	described := model.Describe(el, false)
	result := AssertResult{Element: &described}
	if e.gone {
		result.Error = "expected no match but found " + el.String()
		return result, nil
	}
	if err := e.check(described); err != nil {
		result.Error = err.Error()
		return result, nil
	}
	result.Pass = true
	return result, nil
}

// assertUntil repeats checkOnce until it passes or timeout passes.
func assertUntil(ctx context.Context, provider *platform.Provider, target platform.Target, q model.Query, e expectation, timeout time.Duration) (AssertResult, error) {
	if err := requireQuery(q); err != nil {
		return AssertResult{}, err
	}
	deadline := time.Now().Add(timeout)
	for {
		result, err := checkOnce(ctx, provider, target, q, e)
		if err != nil || result.Pass || !time.Now().Before(deadline) {
			return result, err
		}
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(cfg.PollInterval):
		}
	}
}

func runAssert(cmd *cobra.Command, args []string) error {
	q, err := getQuery(cmd)
	if err != nil {
		return err
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	provider, err := newProvider()
	if err != nil {
		return err
	}
	result, err := assertUntil(cmd.Context(), provider, getTarget(cmd), q, getExpectation(cmd), timeout)
	if err != nil {
		return err
	}
	if err := output.Print(result); err != nil {
		return err
	}
	if !result.Pass {
		return fmt.Errorf("assert failed: %s", result.Error)
	}
	return nil
}
