//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
*/
import "C"

import (
	"github.com/mj1618/accessibility/internal/ax"
)

// element is one owned AXUIElementRef.
type element struct {
	ref C.AXUIElementRef
}

// adopt takes ownership of a reference obtained under the create or copy rule.
func adopt(ref C.AXUIElementRef) *element {
	return &element{ref: ref}
}

func (e *element) AttributeNames() ([]string, ax.Code) {
	var names C.CFArrayRef
	if code := ax.Code(C.AXUIElementCopyAttributeNames(e.ref, &names)); code != ax.Success {
		return nil, code
	}
	return stringsOf(goValue(C.CFTypeRef(names))), ax.Success
}

func (e *element) AttributeValue(name string) (any, ax.Code) {
	attr := cfString(name)
	defer release(C.CFTypeRef(attr))

	var value C.CFTypeRef
	if code := ax.Code(C.AXUIElementCopyAttributeValue(e.ref, attr, &value)); code != ax.Success {
		return nil, code
	}
	return goValue(value), ax.Success
}

func (e *element) SetAttributeValue(name string, value any) ax.Code {
	v, ok := cfValue(value)
	if !ok {
		return ax.ErrorIllegalArgument
	}
	defer release(v)
	attr := cfString(name)
	defer release(C.CFTypeRef(attr))
	return ax.Code(C.AXUIElementSetAttributeValue(e.ref, attr, v))
}

func (e *element) IsAttributeSettable(name string) (bool, ax.Code) {
	attr := cfString(name)
	defer release(C.CFTypeRef(attr))

	var settable C.Boolean
	if code := ax.Code(C.AXUIElementIsAttributeSettable(e.ref, attr, &settable)); code != ax.Success {
		return false, code
	}
	return settable != 0, ax.Success
}

func (e *element) ParameterizedAttributeNames() ([]string, ax.Code) {
	var names C.CFArrayRef
	if code := ax.Code(C.AXUIElementCopyParameterizedAttributeNames(e.ref, &names)); code != ax.Success {
		return nil, code
	}
	return stringsOf(goValue(C.CFTypeRef(names))), ax.Success
}

func (e *element) ParameterizedAttributeValue(name string, param any) (any, ax.Code) {
	p, ok := cfValue(param)
	if !ok {
		return nil, ax.ErrorIllegalArgument
	}
	defer release(p)
	attr := cfString(name)
	defer release(C.CFTypeRef(attr))

	var value C.CFTypeRef
	if code := ax.Code(C.AXUIElementCopyParameterizedAttributeValue(e.ref, attr, p, &value)); code != ax.Success {
		return nil, code
	}
	return goValue(value), ax.Success
}

func (e *element) ActionNames() ([]string, ax.Code) {
	var names C.CFArrayRef
	if code := ax.Code(C.AXUIElementCopyActionNames(e.ref, &names)); code != ax.Success {
		return nil, code
	}
	return stringsOf(goValue(C.CFTypeRef(names))), ax.Success
}

func (e *element) ActionDescription(name string) (string, ax.Code) {
	action := cfString(name)
	defer release(C.CFTypeRef(action))

	var desc C.CFStringRef
	if code := ax.Code(C.AXUIElementCopyActionDescription(e.ref, action, &desc)); code != ax.Success {
		return "", code
	}
	defer release(C.CFTypeRef(desc))
	return goString(desc), ax.Success
}

func (e *element) PerformAction(name string) ax.Code {
	action := cfString(name)
	defer release(C.CFTypeRef(action))
	return ax.Code(C.AXUIElementPerformAction(e.ref, action))
}

func (e *element) Pid() (int, ax.Code) {
	var pid C.pid_t
	if code := ax.Code(C.AXUIElementGetPid(e.ref, &pid)); code != ax.Success {
		return 0, code
	}
	return int(pid), ax.Success
}

func (e *element) SetMessagingTimeout(seconds float32) ax.Code {
	return ax.Code(C.AXUIElementSetMessagingTimeout(e.ref, C.float(seconds)))
}

func (e *element) ElementAtPosition(x, y float32) (ax.Ref, ax.Code) {
	var hit C.AXUIElementRef
	if code := ax.Code(C.AXUIElementCopyElementAtPosition(e.ref, C.float(x), C.float(y), &hit)); code != ax.Success {
		return nil, code
	}
	return adopt(hit), ax.Success
}

func (e *element) Retain() ax.Ref {
	C.CFRetain(C.CFTypeRef(e.ref))
	return &element{ref: e.ref}
}

func (e *element) Release() {
	C.CFRelease(C.CFTypeRef(e.ref))
}

func (e *element) Equal(other ax.Ref) bool {
	o, ok := other.(*element)
	if !ok {
		return false
	}
	return C.CFEqual(C.CFTypeRef(e.ref), C.CFTypeRef(o.ref)) != 0
}

func (e *element) Hash() uintptr {
	return uintptr(C.CFHash(C.CFTypeRef(e.ref)))
}
