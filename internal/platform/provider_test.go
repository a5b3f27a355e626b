package platform

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/ax/axtest"
	"github.com/mj1618/accessibility/internal/model"
)

type fakeAccessibility struct {
	tree        *axtest.Tree
	system      *axtest.Node
	apps        map[int]*axtest.Node
	observer    *axtest.Observer
	observerErr ax.Code
	withInfo    bool
	timeout     float32
}

func (f *fakeAccessibility) SystemWide() ax.Ref { return f.tree.Ref(f.system) }

func (f *fakeAccessibility) Application(pid int) ax.Ref {
	n, ok := f.apps[pid]
	if !ok {
		n = f.tree.NewNode(ax.RoleApplication)
		n.PID = pid
		f.apps[pid] = n
	}
	return f.tree.Ref(n)
}

func (f *fakeAccessibility) NewObserver(int) (ax.ObserverRef, ax.Code) {
	if f.observerErr != ax.Success {
		return nil, f.observerErr
	}
	f.observer = f.tree.NewObserver()
	return f.observer, ax.Success
}

func (f *fakeAccessibility) NewObserverWithInfo(pid int) (ax.ObserverRef, ax.Code) {
	f.withInfo = true
	return f.NewObserver(pid)
}

func (f *fakeAccessibility) SetGlobalMessagingTimeout(seconds float32) ax.Code {
	f.timeout = seconds
	return ax.Success
}

type fakeWorkspace struct {
	apps  []model.App
	front model.App
}

func (w *fakeWorkspace) RunningApps() ([]model.App, error) { return w.apps, nil }
func (w *fakeWorkspace) FrontmostApp() (model.App, error)  { return w.front, nil }

func (w *fakeWorkspace) PIDForBundle(bundleID string) (int, error) {
	for _, app := range w.apps {
		if app.BundleID == bundleID {
			return app.PID, nil
		}
	}
	return 0, ax.ErrNotFound
}

type fakeTrust struct {
	trusted bool
	grant   bool
	prompts int
}

func (f *fakeTrust) IsTrusted() bool { return f.trusted }
func (f *fakeTrust) RequestTrust() bool {
	f.prompts++
	return f.grant
}

func newFakeProvider() (*Provider, *fakeAccessibility) {
	tree := axtest.New()
	acc := &fakeAccessibility{
		tree:   tree,
		system: tree.NewNode(ax.RoleSystemWide),
		apps:   map[int]*axtest.Node{},
	}
	finder := tree.NewNode(ax.RoleApplication).Set("AXTitle", "Finder")
	finder.PID = 100
	acc.apps[100] = finder
	ws := &fakeWorkspace{
		apps: []model.App{
			{Name: "Finder", PID: 100, BundleID: "com.apple.finder"},
			{Name: "Safari", PID: 200, BundleID: "com.apple.Safari", Active: true},
		},
		front: model.App{Name: "Safari", PID: 200},
	}
	return &Provider{Accessibility: acc, Workspace: ws, Trust: &fakeTrust{trusted: true}}, acc
}

func TestNewProvider_ReturnsProvider(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("skipping on non-darwin")
	}
	// the darwin package registers itself only when linked in
	_, _ = NewProvider()
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestResolve(t *testing.T) {
	p, acc := newFakeProvider()

	tests := []struct {
		name    string
		target  Target
		wantPID int
		role    string
	}{
		{"pid", Target{PID: 100}, 100, ax.RoleApplication},
		{"bundle", Target{Bundle: "com.apple.finder"}, 100, ax.RoleApplication},
		{"app name", Target{App: "safari"}, 200, ax.RoleApplication},
		{"frontmost", Target{}, 200, ax.RoleApplication},
		{"system wide", Target{SystemWide: true, PID: 100}, 0, ax.RoleSystemWide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := p.Resolve(tt.target)
			require.NoError(t, err)
			defer el.Close()

			role, err := el.Role()
			require.NoError(t, err)
			assert.Equal(t, tt.role, role)

			pid, err := el.Pid()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPID, pid)
		})
	}
	assert.Zero(t, acc.tree.Live())
}

func TestResolveNotFound(t *testing.T) {
	p, _ := newFakeProvider()

	_, err := p.Resolve(Target{App: "Nope"})
	assert.ErrorIs(t, err, ax.ErrNotFound)

	_, err = p.Resolve(Target{Bundle: "com.example.none"})
	assert.ErrorIs(t, err, ax.ErrNotFound)
	assert.Contains(t, err.Error(), "com.example.none")
}

func TestResolvePID(t *testing.T) {
	p, acc := newFakeProvider()

	pid, err := p.ResolvePID(Target{App: "Finder"})
	require.NoError(t, err)
	assert.Equal(t, 100, pid)

	_, err = p.ResolvePID(Target{SystemWide: true})
	assert.Error(t, err)
	assert.Zero(t, acc.tree.Live())
}

func TestNewObserverForBundle(t *testing.T) {
	p, acc := newFakeProvider()

	var got []ax.Notification
	obs, err := p.NewObserverForBundle("com.apple.finder", func(n ax.Notification) { got = append(got, n) })
	require.NoError(t, err)
	assert.Equal(t, 100, obs.PID())

	app := p.Application(100)
	require.NoError(t, obs.AddNotification(ax.NotificationFocusedWindowChanged, app, nil))
	obs.Start()
	require.True(t, acc.observer.Fire(acc.apps[100], ax.NotificationFocusedWindowChanged, acc.apps[100]))
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].PID)

	obs.Close()
	app.Close()
	assert.Zero(t, acc.tree.Live())

	_, err = p.NewObserverForBundle("com.example.none", nil)
	assert.ErrorIs(t, err, ax.ErrNotFound)
}

func TestNewObserverForBundleWithInfo(t *testing.T) {
	p, acc := newFakeProvider()

	var got []ax.Notification
	obs, err := p.NewObserverForBundleWithInfo("com.apple.finder", func(n ax.Notification) { got = append(got, n) })
	require.NoError(t, err)
	assert.True(t, acc.withInfo)
	assert.Equal(t, 100, obs.PID())

	app := p.Application(100)
	require.NoError(t, obs.AddNotification(ax.NotificationAnnouncementRequested, app, nil))
	obs.Start()
	require.True(t, acc.observer.FireWithInfo(acc.apps[100], ax.NotificationAnnouncementRequested, acc.apps[100],
		map[string]any{"AXAnnouncementKey": "saved"}))
	require.Len(t, got, 1)
	assert.Equal(t, "saved", got[0].Info["AXAnnouncementKey"])

	obs.Close()
	app.Close()
	assert.Zero(t, acc.tree.Live())

	_, err = p.NewObserverForBundleWithInfo("com.example.none", nil)
	assert.ErrorIs(t, err, ax.ErrNotFound)
}

func TestNewObserverFailure(t *testing.T) {
	p, acc := newFakeProvider()
	acc.observerErr = ax.ErrorAPIDisabled

	_, err := p.NewObserver(1, nil)
	assert.ErrorIs(t, err, ax.ErrorAPIDisabled)
}

func TestCheckTrust(t *testing.T) {
	trust := &fakeTrust{}
	p := &Provider{Trust: trust}

	assert.ErrorIs(t, p.CheckTrust(false), ErrNotTrusted)
	assert.Zero(t, trust.prompts)

	assert.ErrorIs(t, p.CheckTrust(true), ErrNotTrusted)
	assert.Equal(t, 1, trust.prompts)

	trust.grant = true
	assert.NoError(t, p.CheckTrust(true))

	trust.trusted = true
	assert.NoError(t, p.CheckTrust(false))
	assert.Equal(t, 2, trust.prompts)
}

func TestFind(t *testing.T) {
	p, acc := newFakeProvider()
	ok := acc.tree.NewNode(ax.RoleButton).Set("AXTitle", "OK")
	acc.apps[100].AddChild(acc.tree.NewNode(ax.RoleWindow, ok))

	f, el, err := p.Find(context.Background(), Target{PID: 100}, ax.MatchTitle("OK"))
	require.NoError(t, err)
	role, _ := el.Role()
	assert.Equal(t, ax.RoleButton, role)
	f.Close()

	_, _, err = p.Find(context.Background(), Target{PID: 100}, ax.MatchTitle("Cancel"))
	assert.ErrorIs(t, err, ax.ErrNotFound)
	assert.Contains(t, err.Error(), "pid 100")
	assert.Zero(t, acc.tree.Live())
}
