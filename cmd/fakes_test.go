package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/ax/axtest"
	"github.com/mj1618/accessibility/internal/config"
	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/platform"
)

type fakeAccessibility struct {
	tree *axtest.Tree
	app  *axtest.Node
	obs  *axtest.Observer
}

func (f *fakeAccessibility) SystemWide() ax.Ref { return f.tree.Ref(f.tree.NewNode(ax.RoleSystemWide)) }
func (f *fakeAccessibility) Application(int) ax.Ref {
	return f.tree.Ref(f.app)
}
func (f *fakeAccessibility) NewObserverWithInfo(pid int) (ax.ObserverRef, ax.Code) {
	return f.NewObserver(pid)
}

func (f *fakeAccessibility) NewObserver(int) (ax.ObserverRef, ax.Code) {
	return f.obs, ax.Success
}

func (f *fakeAccessibility) SetGlobalMessagingTimeout(float32) ax.Code { return ax.Success }

type fakeWorkspace struct{}

func (fakeWorkspace) RunningApps() ([]model.App, error) {
	return []model.App{{Name: "Calculator", PID: 7, BundleID: "com.apple.calculator", Active: true}}, nil
}
func (fakeWorkspace) FrontmostApp() (model.App, error) {
	return model.App{Name: "Calculator", PID: 7}, nil
}
func (fakeWorkspace) PIDForBundle(string) (int, error) { return 7, nil }

// fakeRunLoop runs onThread, then hands control to the test until ctx ends.
type fakeRunLoop struct {
	then func()
}

func (r fakeRunLoop) Run(ctx context.Context, onThread func()) error {
	onThread()
	if r.then != nil && ctx.Err() == nil {
		r.then()
	}
	<-ctx.Done()
	return nil
}

// calculator is a small application tree:
//
//	app
//	└── window "Calculator"
//	    ├── txt display (value "0")
//	    ├── btn "7" (press)
//	    ├── chk "Scientific" (value 1)
//	    ├── btn "Clear" (disabled)
//	    └── input "Memo" (settable, focused)
type calculator struct {
	tree    *axtest.Tree
	app     *axtest.Node
	window  *axtest.Node
	display *axtest.Node
	seven   *axtest.Node
	check   *axtest.Node
	clear   *axtest.Node
	memo    *axtest.Node
	ax      *fakeAccessibility
}

func newCalculator(t *testing.T) (*calculator, *platform.Provider) {
	t.Helper()
	prev := cfg
	cfg = config.Config{MaxDepth: ax.DefaultMaxDepth, PollInterval: 5 * time.Millisecond, Format: "yaml"}
	t.Cleanup(func() { cfg = prev })

	tree := axtest.New()
	c := &calculator{tree: tree}
	c.display = tree.NewNode(ax.RoleStaticText).Set("AXValue", "0").Set("AXIdentifier", "display")
	c.display.Settable["AXValue"] = true
	c.seven = tree.NewNode(ax.RoleButton).Set("AXTitle", "7")
	c.seven.Actions[ax.ActionPress] = "press"
	c.check = tree.NewNode(ax.RoleCheckBox).Set("AXTitle", "Scientific").Set("AXValue", float64(1))
	c.clear = tree.NewNode(ax.RoleButton).Set("AXTitle", "Clear").Set("AXEnabled", false)
	c.memo = tree.NewNode(ax.RoleTextField).Set("AXTitle", "Memo").Set("AXValue", "").Set("AXFocused", true)
	c.memo.Settable["AXValue"] = true
	c.memo.Settable["AXFocused"] = true
	c.window = tree.NewNode(ax.RoleWindow, c.display, c.seven, c.check, c.clear, c.memo).Set("AXTitle", "Calculator")
	c.app = tree.NewNode(ax.RoleApplication, c.window).Set("AXTitle", "Calculator")
	c.app.PID = 7
	c.ax = &fakeAccessibility{tree: tree, app: c.app, obs: tree.NewObserver()}

	return c, &platform.Provider{
		Accessibility: c.ax,
		Workspace:     fakeWorkspace{},
	}
}
