package cmd

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/accessibility/internal/platform"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps([]byte(`
- action: { role: btn, title: "7" }
- set: { identifier: display, value: "42" }
- wait: { title: Done, timeout: 2s, gone: true }
- assert: { identifier: display, value: "", attributes: { AXEnabled: "true" } }
- sleep: { duration: 250ms }
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}

	action := steps[0]["action"]
	if action.Role != "btn" || action.Title != "7" {
		t.Errorf("unexpected action args: %+v", action)
	}
	set := steps[1]["set"]
	if set.Value == nil || *set.Value != "42" {
		t.Errorf("expected set value 42, got %v", set.Value)
	}
	wait := steps[2]["wait"]
	if wait.Timeout != 2*time.Second || !wait.Gone {
		t.Errorf("unexpected wait args: %+v", wait)
	}
	assert := steps[3]["assert"]
	if assert.Value == nil || *assert.Value != "" {
		t.Errorf("expected an explicit empty value, got %v", assert.Value)
	}
	if assert.Attributes["AXEnabled"] != "true" {
		t.Errorf("expected attribute filter, got %v", assert.Attributes)
	}
	if d := steps[4]["sleep"].Duration; d != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", d)
	}
}

func TestParseSteps_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"empty list", "[]"},
		{"not a list", "action: { title: OK }"},
		{"two names in one step", "- { action: { title: OK }, sleep: { duration: 1s } }"},
		{"bad duration", "- sleep: { duration: soon }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseSteps([]byte(tt.input)); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestStepArgsTarget(t *testing.T) {
	defaults := platform.Target{App: "Calculator"}
	if got := (stepArgs{}).target(defaults); got != defaults {
		t.Errorf("expected defaults, got %+v", got)
	}
	if got := (stepArgs{PID: 12}).target(defaults); got != (platform.Target{PID: 12}) {
		t.Errorf("expected step target to replace defaults, got %+v", got)
	}
}

func TestRunSteps(t *testing.T) {
	c, p := newCalculator(t)
	steps, err := parseSteps([]byte(`
- action: { role: btn, title: "7" }
- set: { title: Memo, value: "remember" }
- find: { identifier: display }
- assert: { title: Scientific, checked: true }
- focus: { title: Memo }
- sleep: { duration: 1ms }
`))
	if err != nil {
		t.Fatal(err)
	}

	result := runSteps(context.Background(), p, platform.Target{PID: 7}, steps, true)
	if !result.OK {
		t.Fatalf("expected ok, got error %q", result.Error)
	}
	if result.Steps != 6 || result.Completed != 6 || len(result.Results) != 6 {
		t.Errorf("expected 6 completed steps, got %+v", result)
	}
	if len(c.seven.Performed) != 1 {
		t.Errorf("expected one press, got %v", c.seven.Performed)
	}
	if got := c.memo.Get("AXValue"); got != "remember" {
		t.Errorf("expected memo to be set, got %v", got)
	}
	if r := result.Results[2]; r.Element == nil || r.Element.Identifier != "display" {
		t.Errorf("expected find to report the display, got %+v", r)
	}
	for i, r := range result.Results {
		if r.Step != i+1 || !r.OK {
			t.Errorf("step %d: unexpected result %+v", i+1, r)
		}
	}
	if c.tree.Live() != 0 {
		t.Errorf("leaked %d references", c.tree.Live())
	}
}

func TestRunSteps_StopOnError(t *testing.T) {
	_, p := newCalculator(t)
	steps, err := parseSteps([]byte(`
- sleep: { duration: 1ms }
- explode: {}
- action: { title: "7" }
`))
	if err != nil {
		t.Fatal(err)
	}

	result := runSteps(context.Background(), p, platform.Target{PID: 7}, steps, true)
	if result.OK {
		t.Fatal("expected failure")
	}
	if result.Completed != 1 || len(result.Results) != 2 {
		t.Errorf("expected to stop after step 2, got %+v", result)
	}
	if !strings.HasPrefix(result.Error, "step 2:") || !strings.Contains(result.Error, "unknown step") {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestRunSteps_ContinueOnError(t *testing.T) {
	c, p := newCalculator(t)
	steps, err := parseSteps([]byte(`
- action: { title: "Clear", action: increment }
- set: { title: "7" }
- assert: { identifier: display, value: "1" }
- action: { title: "7" }
`))
	if err != nil {
		t.Fatal(err)
	}

	result := runSteps(context.Background(), p, platform.Target{PID: 7}, steps, false)
	if result.OK {
		t.Fatal("expected failure")
	}
	if result.Completed != 1 || len(result.Results) != 4 {
		t.Errorf("expected all steps to run with one success, got %+v", result)
	}
	if !strings.HasPrefix(result.Error, "step 1:") {
		t.Errorf("expected the first failure to be reported, got %q", result.Error)
	}
	if !strings.Contains(result.Results[1].Error, "needs a value") {
		t.Errorf("expected missing value error, got %q", result.Results[1].Error)
	}
	if !strings.Contains(result.Results[2].Error, `expected value "1"`) {
		t.Errorf("expected assertion error, got %q", result.Results[2].Error)
	}
	if len(c.seven.Performed) != 1 {
		t.Errorf("expected the last step to run, got %v", c.seven.Performed)
	}
}

func TestRunSteps_Wait(t *testing.T) {
	c, p := newCalculator(t)
	go func() {
		time.Sleep(20 * time.Millisecond)
		c.window.AddChild(c.tree.NewNode("AXSheet").Set("AXTitle", "Saved"))
	}()
	steps, err := parseSteps([]byte(`
- wait: { title: Saved, timeout: 2s }
- wait: { title: Missing, gone: true, timeout: 1s }
`))
	if err != nil {
		t.Fatal(err)
	}

	result := runSteps(context.Background(), p, platform.Target{PID: 7}, steps, true)
	if !result.OK {
		t.Fatalf("expected ok, got %q", result.Error)
	}
	if r := result.Results[0]; r.Element == nil || r.Element.Title != "Saved" || r.Elapsed == "" {
		t.Errorf("unexpected wait result %+v", r)
	}
}
