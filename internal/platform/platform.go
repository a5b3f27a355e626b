package platform

import (
	"context"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
)

// Accessibility opens references onto the OS accessibility tree. Every Ref it
// returns is owned by the caller.
type Accessibility interface {
	// SystemWide returns the element representing the whole desktop.
	SystemWide() ax.Ref

	// Application returns the root element of the process with the given pid.
	// It succeeds even if no such process exists; calls on the element fail later.
	Application(pid int) ax.Ref

	// NewObserver creates a notification observer for a process.
	NewObserver(pid int) (ax.ObserverRef, ax.Code)

	// NewObserverWithInfo creates an observer whose notifications carry the
	// platform's info dictionary, delivered through ax.DispatchWithInfo.
	NewObserverWithInfo(pid int) (ax.ObserverRef, ax.Code)

	// SetGlobalMessagingTimeout bounds every accessibility call that has no
	// per-element timeout. Zero restores the default.
	SetGlobalMessagingTimeout(seconds float32) ax.Code
}

// Workspace answers questions about running applications.
type Workspace interface {
	// RunningApps lists applications that have a user interface.
	RunningApps() ([]model.App, error)

	// FrontmostApp returns the application receiving key events.
	FrontmostApp() (model.App, error)

	// PIDForBundle returns the pid of a running application by bundle
	// identifier. It returns ax.ErrNotFound when none is running.
	PIDForBundle(bundleID string) (int, error)
}

// Trust reports and requests the accessibility permission.
type Trust interface {
	// IsTrusted checks silently.
	IsTrusted() bool

	// RequestTrust checks and, when not trusted, asks the OS to prompt the user.
	RequestTrust() bool
}

// RunLoop drives observer delivery.
type RunLoop interface {
	// Run pumps the current thread's run loop until ctx is done. Observers
	// must be started from the function passed in, which runs on that thread.
	Run(ctx context.Context, onThread func()) error
}
