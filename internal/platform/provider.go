package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mj1618/accessibility/internal/ax"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Accessibility Accessibility
	Workspace     Workspace
	Trust         Trust
	RunLoop       RunLoop
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("aq is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// ErrNotTrusted is returned when the process lacks the accessibility permission.
var ErrNotTrusted = errors.New("accessibility permission required\n\n" +
	"Grant permission at: System Settings > Privacy & Security > Accessibility\n" +
	"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n" +
	"Then restart the terminal and try again.")

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// CheckTrust returns ErrNotTrusted unless the process may use the
// accessibility API. With prompt set the OS is asked to show its dialog.
func (p *Provider) CheckTrust(prompt bool) error {
	if p.Trust == nil {
		return nil
	}
	ok := p.Trust.IsTrusted()
	if !ok && prompt {
		ok = p.Trust.RequestTrust()
	}
	if !ok {
		return ErrNotTrusted
	}
	return nil
}

// SystemWide returns the system-wide element.
func (p *Provider) SystemWide() *ax.Element {
	return ax.Wrap(p.Accessibility.SystemWide())
}

// Application returns the root element of a process.
func (p *Provider) Application(pid int) *ax.Element {
	return ax.Wrap(p.Accessibility.Application(pid))
}

// ApplicationWithBundle returns the root element of the running application
// with the given bundle identifier.
func (p *Provider) ApplicationWithBundle(bundleID string) (*ax.Element, error) {
	pid, err := p.pidForBundle(bundleID)
	if err != nil {
		return nil, err
	}
	return p.Application(pid), nil
}

// NewObserver creates an observer for pid that delivers to cb.
func (p *Provider) NewObserver(pid int, cb ax.Callback) (*ax.Observer, error) {
	ref, code := p.Accessibility.NewObserver(pid)
	if code != ax.Success {
		return nil, errors.Wrapf(code, "create observer for pid %d", pid)
	}
	return ax.NewObserver(ref, pid, cb), nil
}

// NewObserverWithInfo is NewObserver with Notification.Info populated from
// the platform's info dictionary.
func (p *Provider) NewObserverWithInfo(pid int, cb ax.Callback) (*ax.Observer, error) {
	ref, code := p.Accessibility.NewObserverWithInfo(pid)
	if code != ax.Success {
		return nil, errors.Wrapf(code, "create info observer for pid %d", pid)
	}
	return ax.NewObserver(ref, pid, cb), nil
}

// NewObserverForBundle creates an observer for the running application with
// the given bundle identifier.
func (p *Provider) NewObserverForBundle(bundleID string, cb ax.Callback) (*ax.Observer, error) {
	pid, err := p.pidForBundle(bundleID)
	if err != nil {
		return nil, err
	}
	return p.NewObserver(pid, cb)
}

func (p *Provider) NewObserverForBundleWithInfo(bundleID string, cb ax.Callback) (*ax.Observer, error) {
	pid, err := p.pidForBundle(bundleID)
	if err != nil {
		return nil, err
	}
	return p.NewObserverWithInfo(pid, cb)
}

func (p *Provider) pidForBundle(bundleID string) (int, error) {
	if p.Workspace == nil {
		return 0, ErrUnsupported
	}
	pid, err := p.Workspace.PIDForBundle(bundleID)
	if err != nil {
		return 0, errors.Wrapf(err, "bundle %s", bundleID)
	}
	logrus.Debugf("bundle %s is pid %d", bundleID, pid)
	return pid, nil
}

// Resolve returns the root element selected by target. Precedence: system-wide,
// pid, bundle identifier, application name, then the frontmost application.
func (p *Provider) Resolve(target Target) (*ax.Element, error) {
	switch {
	case target.SystemWide:
		return p.SystemWide(), nil
	case target.PID != 0:
		return p.Application(target.PID), nil
	case target.Bundle != "":
		return p.ApplicationWithBundle(target.Bundle)
	}

	if p.Workspace == nil {
		return nil, ErrUnsupported
	}
	if target.App == "" {
		app, err := p.Workspace.FrontmostApp()
		if err != nil {
			return nil, errors.Wrap(err, "frontmost application")
		}
		logrus.Debugf("targeting frontmost app %s (pid %d)", app.Name, app.PID)
		return p.Application(app.PID), nil
	}

	apps, err := p.Workspace.RunningApps()
	if err != nil {
		return nil, errors.Wrap(err, "list applications")
	}
	for _, app := range apps {
		if strings.EqualFold(app.Name, target.App) {
			return p.Application(app.PID), nil
		}
	}
	return nil, errors.Wrapf(ax.ErrNotFound, "application %q", target.App)
}

// ResolvePID is Resolve for callers that need a process rather than an
// element, such as observers. System-wide targets have no pid.
func (p *Provider) ResolvePID(target Target) (int, error) {
	if target.SystemWide {
		return 0, errors.New("the system-wide element has no process")
	}
	if target.PID != 0 {
		return target.PID, nil
	}
	el, err := p.Resolve(target)
	if err != nil {
		return 0, err
	}
	defer el.Close()
	pid, err := el.Pid()
	if err != nil {
		return 0, errors.Wrap(err, "resolve pid")
	}
	return pid, nil
}

// Find resolves target and searches it for the first element matching pred.
// The match belongs to the returned finder; callers Close the finder when
// done with it.
func (p *Provider) Find(ctx context.Context, target Target, pred ax.Predicate, opts ...ax.FinderOption) (*ax.Finder, *ax.Element, error) {
	root, err := p.Resolve(target)
	if err != nil {
		return nil, nil, err
	}
	f := ax.NewFinder(root, pred, opts...)
	root.Close()

	el, err := f.Find(ctx)
	if err != nil {
		f.Close()
		return nil, nil, errors.Wrapf(err, "search %s", target)
	}
	return f, el, nil
}
