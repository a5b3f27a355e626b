package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

// DoResult is the output of a batch do command.
type DoResult struct {
	OK        bool         `yaml:"ok"              json:"ok"`
	Steps     int          `yaml:"steps"           json:"steps"`
	Completed int          `yaml:"completed"       json:"completed"`
	Error     string       `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []StepResult `yaml:"results"         json:"results"`
}

// StepResult is the output for a single step within a batch.
type StepResult struct {
	Step    int            `yaml:"step"              json:"step"`
	OK      bool           `yaml:"ok"                json:"ok"`
	Action  string         `yaml:"action"            json:"action"`
	Error   string         `yaml:"error,omitempty"   json:"error,omitempty"`
	Element *model.Element `yaml:"element,omitempty" json:"element,omitempty"`
	Value   any            `yaml:"value,omitempty"   json:"value,omitempty"`
	Elapsed string         `yaml:"elapsed,omitempty" json:"elapsed,omitempty"`
}

// stepArgs are the keys a step may carry. Target keys override the batch
// defaults; query keys select the element.
type stepArgs struct {
	App    string `yaml:"app"`
	Bundle string `yaml:"bundle"`
	PID    int    `yaml:"pid"`
	System bool   `yaml:"system"`

	Role          string            `yaml:"role"`
	Subrole       string            `yaml:"subrole"`
	Title         string            `yaml:"title"`
	TitleContains string            `yaml:"title-contains"`
	Text          string            `yaml:"text"`
	Identifier    string            `yaml:"identifier"`
	Attributes    map[string]string `yaml:"attributes"`

	Action    string        `yaml:"action"`
	Attribute string        `yaml:"attribute"`
	Value     *string       `yaml:"value"`
	Contains  string        `yaml:"value-contains"`
	Checked   bool          `yaml:"checked"`
	Unchecked bool          `yaml:"unchecked"`
	Enabled   bool          `yaml:"enabled"`
	Disabled  bool          `yaml:"disabled"`
	Focused   bool          `yaml:"is-focused"`
	Gone      bool          `yaml:"gone"`
	Timeout   time.Duration `yaml:"timeout"`
	Duration  time.Duration `yaml:"duration"`
}

func (a stepArgs) target(defaults platform.Target) platform.Target {
	if a.App == "" && a.Bundle == "" && a.PID == 0 && !a.System {
		return defaults
	}
	return platform.Target{App: a.App, Bundle: a.Bundle, PID: a.PID, SystemWide: a.System}
}

func (a stepArgs) query() model.Query {
	return model.Query{
		Role:          a.Role,
		Subrole:       a.Subrole,
		Title:         a.Title,
		TitleContains: a.TitleContains,
		Text:          a.Text,
		Identifier:    a.Identifier,
		Attributes:    a.Attributes,
	}
}

func (a stepArgs) expectation() expectation {
	return expectation{
		value:         a.Value,
		valueContains: a.Contains,
		checked:       a.Checked,
		unchecked:     a.Unchecked,
		disabled:      a.Disabled,
		enabled:       a.Enabled,
		focused:       a.Focused,
		gone:          a.Gone,
	}
}

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Execute multiple steps in a batch",
	Long: `Execute a sequence of steps from a YAML list on stdin (or --file).

Each step is a step name with its arguments as a map. Steps execute
sequentially, and by default execution stops on the first error.

Supported steps: find, action, set, focus, wait, assert, sleep

Example:
  aq do --app Calculator <<'EOF'
  - action: { role: btn, title: "7" }
  - action: { role: btn, identifier: multiply }
  - action: { role: btn, title: "6" }
  - action: { role: btn, identifier: equals }
  - assert: { role: txt, identifier: display, value: "42", timeout: 2s }
  EOF`,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	addTargetFlags(doCmd)
	addSearchFlags(doCmd)
	doCmd.Flags().String("file", "", "Read steps from this file instead of stdin")
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
}

// parseSteps decodes a YAML list of single-key step maps.
func parseSteps(data []byte) ([]map[string]stepArgs, error) {
	var steps []map[string]stepArgs
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, errors.Wrap(err, "parse steps")
	}
	if len(steps) == 0 {
		return nil, errors.New("no steps provided, expected a YAML list of steps")
	}
	for i, step := range steps {
		if len(step) != 1 {
			return nil, fmt.Errorf("step %d: expected exactly one step name, got %d", i+1, len(step))
		}
	}
	return steps, nil
}

func runDo(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	var data []byte
	var err error
	if file != "" {
		data, err = os.ReadFile(file)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return errors.Wrap(err, "read steps")
	}
	steps, err := parseSteps(data)
	if err != nil {
		return err
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	result := runSteps(cmd.Context(), provider, getTarget(cmd), steps, stopOnError)
	if err := output.Print(result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("batch failed: %s", result.Error)
	}
	return nil
}

func runSteps(ctx context.Context, provider *platform.Provider, defaults platform.Target, steps []map[string]stepArgs, stopOnError bool) DoResult {
	result := DoResult{OK: true, Steps: len(steps), Results: make([]StepResult, 0, len(steps))}
	for i, step := range steps {
		for name, a := range step {
			sr, err := executeStep(ctx, provider, name, a, defaults)
			sr.Step = i + 1
			sr.Action = name
			if err != nil {
				sr.Error = err.Error()
				result.OK = false
				if result.Error == "" {
					result.Error = fmt.Sprintf("step %d: %s", i+1, err)
				}
			} else {
				sr.OK = true
				result.Completed++
			}
			result.Results = append(result.Results, sr)
			if err != nil && stopOnError {
				return result
			}
		}
	}
	return result
}

func executeStep(ctx context.Context, provider *platform.Provider, name string, a stepArgs, defaults platform.Target) (StepResult, error) {
	target := a.target(defaults)
	q := a.query()
	start := time.Now()

	switch name {
	case "find":
		f, el, err := provider.Find(ctx, target, q.Predicate(), cfg.FinderOptions()...)
		if err != nil {
			return StepResult{}, err
		}
		defer f.Close()
		described := model.Describe(el, true)
		return StepResult{Element: &described}, nil
	case "action":
		action := a.Action
		if action == "" {
			action = "press"
		}
		r, err := performAction(ctx, provider, target, q, action)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{Element: &r.Element, Value: r.Action}, nil
	case "set":
		if a.Value == nil {
			return StepResult{}, errors.New("set needs a value")
		}
		attribute := a.Attribute
		if attribute == "" {
			attribute = "AXValue"
		}
		r, err := setAttribute(ctx, provider, target, q, attribute, *a.Value)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{Element: &r.Element, Value: r.Value}, nil
	case "focus":
		r, err := focusElement(ctx, provider, target, q)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{Element: &r.Element}, nil
	case "wait":
		if err := requireQuery(q); err != nil {
			return StepResult{}, err
		}
		timeout := a.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		var sr StepResult
		var err error
		if a.Gone {
			err = waitGone(ctx, provider, target, q, timeout)
		} else {
			var el model.Element
			if el, err = waitFound(ctx, provider, target, q, timeout); err == nil {
				sr.Element = &el
			}
		}
		sr.Elapsed = time.Since(start).Round(100 * time.Millisecond).String()
		return sr, err
	case "assert":
		r, err := assertUntil(ctx, provider, target, q, a.expectation(), a.Timeout)
		if err != nil {
			return StepResult{}, err
		}
		if !r.Pass {
			return StepResult{Element: r.Element}, errors.New(r.Error)
		}
		return StepResult{Element: r.Element}, nil
	case "sleep":
		select {
		case <-ctx.Done():
			return StepResult{}, ctx.Err()
		case <-time.After(a.Duration):
		}
		return StepResult{Elapsed: a.Duration.String()}, nil
	default:
		return StepResult{}, fmt.Errorf("unknown step %q, supported: find, action, set, focus, wait, assert, sleep", name)
	}
}
