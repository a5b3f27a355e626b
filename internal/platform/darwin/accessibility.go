//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

extern void aqObserverCallback(AXObserverRef observer, AXUIElementRef element, CFStringRef notification, void *refcon);

extern void aqObserverInfoCallback(AXObserverRef observer, AXUIElementRef element, CFStringRef notification, CFDictionaryRef info, void *refcon);

static AXError aq_observer_create(pid_t pid, AXObserverRef *out) {
    return AXObserverCreate(pid, (AXObserverCallback)aqObserverCallback, out);
}

static AXError aq_observer_create_info(pid_t pid, AXObserverRef *out) {
    return AXObserverCreateWithInfoCallback(pid, (AXObserverCallbackWithInfo)aqObserverInfoCallback, out);
}

static AXError aq_global_timeout(float seconds) {
    AXUIElementRef sys = AXUIElementCreateSystemWide();
    AXError err = AXUIElementSetMessagingTimeout(sys, seconds);
    CFRelease(sys);
    return err;
}
*/
import "C"

import (
	"github.com/sirupsen/logrus"

	"github.com/mj1618/accessibility/internal/ax"
)

// Accessibility implements platform.Accessibility over AXUIElement.
type Accessibility struct{}

// NewAccessibility creates the macOS accessibility backend.
func NewAccessibility() *Accessibility {
	return &Accessibility{}
}

func (a *Accessibility) SystemWide() ax.Ref {
	return adopt(C.AXUIElementCreateSystemWide())
}

func (a *Accessibility) Application(pid int) ax.Ref {
	return adopt(C.AXUIElementCreateApplication(C.pid_t(pid)))
}

func (a *Accessibility) NewObserver(pid int) (ax.ObserverRef, ax.Code) {
	var ref C.AXObserverRef
	if code := ax.Code(C.aq_observer_create(C.pid_t(pid), &ref)); code != ax.Success {
		return nil, code
	}
	logrus.Debugf("created observer for pid %d", pid)
	return &observer{ref: ref}, ax.Success
}

func (a *Accessibility) NewObserverWithInfo(pid int) (ax.ObserverRef, ax.Code) {
	var ref C.AXObserverRef
	if code := ax.Code(C.aq_observer_create_info(C.pid_t(pid), &ref)); code != ax.Success {
		return nil, code
	}
	logrus.Debugf("created info observer for pid %d", pid)
	return &observer{ref: ref}, ax.Success
}

func (a *Accessibility) SetGlobalMessagingTimeout(seconds float32) ax.Code {
	return ax.Code(C.aq_global_timeout(C.float(seconds)))
}
