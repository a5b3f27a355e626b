//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdint.h>

static AXError aq_observer_add(AXObserverRef obs, AXUIElementRef el, CFStringRef name, uintptr_t refcon) {
    return AXObserverAddNotification(obs, el, name, (void *)refcon);
}

static void aq_observer_attach(AXObserverRef obs, CFRunLoopRef loop) {
    CFRunLoopAddSource(loop, AXObserverGetRunLoopSource(obs), kCFRunLoopDefaultMode);
}

static void aq_observer_detach(AXObserverRef obs, CFRunLoopRef loop) {
    CFRunLoopRemoveSource(loop, AXObserverGetRunLoopSource(obs), kCFRunLoopDefaultMode);
}
*/
import "C"

import (
	"github.com/mj1618/accessibility/internal/ax"
)

// observer is one owned AXObserverRef. Its run-loop source is attached to the
// run loop of the thread that called Start.
type observer struct {
	ref  C.AXObserverRef
	loop C.CFRunLoopRef
}

func (o *observer) AddNotification(el ax.Ref, name string, refcon uintptr) ax.Code {
	e, ok := el.(*element)
	if !ok {
		return ax.ErrorIllegalArgument
	}
	n := cfString(name)
	defer release(C.CFTypeRef(n))
	return ax.Code(C.aq_observer_add(o.ref, e.ref, n, C.uintptr_t(refcon)))
}

func (o *observer) RemoveNotification(el ax.Ref, name string) ax.Code {
	e, ok := el.(*element)
	if !ok {
		return ax.ErrorIllegalArgument
	}
	n := cfString(name)
	defer release(C.CFTypeRef(n))
	return ax.Code(C.AXObserverRemoveNotification(o.ref, e.ref, n))
}

func (o *observer) Start() {
	if o.loop != 0 {
		return
	}
	o.loop = C.CFRunLoopGetCurrent()
	C.CFRetain(C.CFTypeRef(o.loop))
	C.aq_observer_attach(o.ref, o.loop)
}

func (o *observer) Stop() {
	if o.loop == 0 {
		return
	}
	C.aq_observer_detach(o.ref, o.loop)
	C.CFRelease(C.CFTypeRef(o.loop))
	o.loop = 0
}

func (o *observer) Release() {
	o.Stop()
	C.CFRelease(C.CFTypeRef(o.ref))
}
