//go:build darwin && cgo

package darwin

// Exporting files may only declare C symbols in their preamble.

/*
#include <ApplicationServices/ApplicationServices.h>
*/
import "C"

import (
	"unsafe"

	"github.com/mj1618/accessibility/internal/ax"
)

// aqObserverCallback runs on the run-loop thread. The element is borrowed
// from the system; ax.Dispatch retains it if the callback needs it.
//
//export aqObserverCallback
func aqObserverCallback(_ C.AXObserverRef, el C.AXUIElementRef, name C.CFStringRef, refcon unsafe.Pointer) {
	var ref ax.Ref
	if el != 0 {
		ref = &element{ref: el}
	}
	ax.Dispatch(uintptr(refcon), ref, goString(name))
}

// aqObserverInfoCallback is aqObserverCallback for observers created with an
// info callback. info is borrowed and may be NULL.
//
//export aqObserverInfoCallback
func aqObserverInfoCallback(_ C.AXObserverRef, el C.AXUIElementRef, name C.CFStringRef, info C.CFDictionaryRef, refcon unsafe.Pointer) {
	var ref ax.Ref
	if el != 0 {
		ref = &element{ref: el}
	}
	var raw map[string]any
	if info != 0 {
		C.CFRetain(C.CFTypeRef(info))
		raw, _ = goValue(C.CFTypeRef(info)).(map[string]any)
	}
	ax.DispatchWithInfo(uintptr(refcon), ref, goString(name), raw)
}
