//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

static char *aq_cfstring_utf8(CFStringRef s) {
    if (s == NULL) return NULL;
    const char *fast = CFStringGetCStringPtr(s, kCFStringEncodingUTF8);
    if (fast != NULL) return strdup(fast);
    CFIndex max = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
    char *buf = malloc(max);
    if (!CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
        free(buf);
        return NULL;
    }
    return buf;
}

static CFStringRef aq_cfstring(const char *s) {
    return CFStringCreateWithCString(kCFAllocatorDefault, s, kCFStringEncodingUTF8);
}

// Array members follow the get rule; retain so the caller owns each one.
static CFTypeRef aq_array_get(CFArrayRef a, CFIndex i) {
    CFTypeRef v = CFArrayGetValueAtIndex(a, i);
    if (v != NULL) CFRetain(v);
    return v;
}

static CFMutableArrayRef aq_array_new(CFIndex n) {
    return CFArrayCreateMutable(kCFAllocatorDefault, n, &kCFTypeArrayCallBacks);
}

static void aq_array_append(CFMutableArrayRef a, CFTypeRef v) {
    CFArrayAppendValue(a, v);
}

// Dictionary entries follow the get rule; values are retained for the caller.
static void aq_dict_entries(CFDictionaryRef d, uintptr_t *keys, uintptr_t *values) {
    CFDictionaryGetKeysAndValues(d, (const void **)keys, (const void **)values);
    CFIndex n = CFDictionaryGetCount(d);
    for (CFIndex i = 0; i < n; i++) {
        if (values[i] != 0) CFRetain((CFTypeRef)values[i]);
    }
}

static double aq_number(CFNumberRef n) {
    double d = 0;
    CFNumberGetValue(n, kCFNumberDoubleType, &d);
    return d;
}

static CFNumberRef aq_number_new(double d) {
    return CFNumberCreate(kCFAllocatorDefault, kCFNumberDoubleType, &d);
}

static CFTypeRef aq_bool(int b) {
    return CFRetain(b ? kCFBooleanTrue : kCFBooleanFalse);
}

static CFURLRef aq_url_new(const char *s) {
    return CFURLCreateWithBytes(kCFAllocatorDefault, (const UInt8 *)s, strlen(s), kCFStringEncodingUTF8, NULL);
}

static CGPoint aq_point(AXValueRef v) {
    CGPoint p = {0, 0};
    AXValueGetValue(v, kAXValueTypeCGPoint, &p);
    return p;
}

static CGSize aq_size(AXValueRef v) {
    CGSize s = {0, 0};
    AXValueGetValue(v, kAXValueTypeCGSize, &s);
    return s;
}

static CGRect aq_rect(AXValueRef v) {
    CGRect r = {{0, 0}, {0, 0}};
    AXValueGetValue(v, kAXValueTypeCGRect, &r);
    return r;
}

static CFRange aq_range(AXValueRef v) {
    CFRange r = {0, 0};
    AXValueGetValue(v, kAXValueTypeCFRange, &r);
    return r;
}

static AXError aq_axerror(AXValueRef v) {
    AXError e = kAXErrorSuccess;
    AXValueGetValue(v, kAXValueTypeAXError, &e);
    return e;
}

static AXValueRef aq_point_new(double x, double y) {
    CGPoint p = CGPointMake(x, y);
    return AXValueCreate(kAXValueTypeCGPoint, &p);
}

static AXValueRef aq_size_new(double w, double h) {
    CGSize s = CGSizeMake(w, h);
    return AXValueCreate(kAXValueTypeCGSize, &s);
}

static AXValueRef aq_rect_new(double x, double y, double w, double h) {
    CGRect r = CGRectMake(x, y, w, h);
    return AXValueCreate(kAXValueTypeCGRect, &r);
}

static AXValueRef aq_range_new(long loc, long len) {
    CFRange r = CFRangeMake(loc, len);
    return AXValueCreate(kAXValueTypeCFRange, &r);
}
*/
import "C"
import (
	"unsafe"

	"github.com/mj1618/accessibility/internal/ax"
)

func goString(s C.CFStringRef) string {
	cs := C.aq_cfstring_utf8(s)
	if cs == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(cs))
	return C.GoString(cs)
}

// cfString returns an owned CFString.
func cfString(s string) C.CFStringRef {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.aq_cfstring(cs)
}

func release(v C.CFTypeRef) {
	if v != 0 {
		C.CFRelease(v)
	}
}

// goValue converts an owned CF value into the raw form ax expects and
// consumes the reference. AXUIElements are adopted rather than released.
func goValue(v C.CFTypeRef) any {
	if v == 0 {
		return nil
	}
	id := C.CFGetTypeID(v)
	if id == C.AXUIElementGetTypeID() {
		return adopt(C.AXUIElementRef(v))
	}
	defer C.CFRelease(v)

	switch id {
	case C.CFStringGetTypeID():
		return goString(C.CFStringRef(v))
	case C.CFAttributedStringGetTypeID():
		return goString(C.CFAttributedStringGetString(C.CFAttributedStringRef(v)))
	case C.CFBooleanGetTypeID():
		return C.CFBooleanGetValue(C.CFBooleanRef(v)) != 0
	case C.CFNumberGetTypeID():
		return float64(C.aq_number(C.CFNumberRef(v)))
	case C.CFArrayGetTypeID():
		arr := C.CFArrayRef(v)
		out := make([]any, int(C.CFArrayGetCount(arr)))
		for i := range out {
			out[i] = goValue(C.aq_array_get(arr, C.CFIndex(i)))
		}
		return out
	case C.CFDictionaryGetTypeID():
		return goDictionary(C.CFDictionaryRef(v))
	case C.AXValueGetTypeID():
		return axValue(C.AXValueRef(v))
	case C.CFURLGetTypeID():
		return ax.URL(goString(C.CFURLGetString(C.CFURLRef(v))))
	default:
		desc := C.CFCopyDescription(v)
		defer release(C.CFTypeRef(desc))
		typeName := C.CFCopyTypeIDDescription(id)
		defer release(C.CFTypeRef(typeName))
		return ax.Opaque{TypeName: goString(typeName), Description: goString(desc)}
	}
}

// goDictionary converts a borrowed dictionary. Entries with non-string keys
// are dropped.
func goDictionary(d C.CFDictionaryRef) map[string]any {
	n := int(C.CFDictionaryGetCount(d))
	out := make(map[string]any, n)
	if n == 0 {
		return out
	}
	keys := make([]C.uintptr_t, n)
	values := make([]C.uintptr_t, n)
	C.aq_dict_entries(d, &keys[0], &values[0])
	for i := range keys {
		key := C.CFTypeRef(keys[i])
		value := goValue(C.CFTypeRef(values[i]))
		if C.CFGetTypeID(key) != C.CFStringGetTypeID() {
			releaseDecoded(value)
			continue
		}
		out[goString(C.CFStringRef(key))] = value
	}
	return out
}

// releaseDecoded drops the element references held by a goValue result.
func releaseDecoded(v any) {
	switch x := v.(type) {
	case ax.Ref:
		x.Release()
	case []any:
		for _, it := range x {
			releaseDecoded(it)
		}
	case map[string]any:
		for _, it := range x {
			releaseDecoded(it)
		}
	}
}

func axValue(v C.AXValueRef) any {
	switch C.AXValueGetType(v) {
	case C.kAXValueTypeCGPoint:
		p := C.aq_point(v)
		return ax.Point{X: float64(p.x), Y: float64(p.y)}
	case C.kAXValueTypeCGSize:
		s := C.aq_size(v)
		return ax.Size{Width: float64(s.width), Height: float64(s.height)}
	case C.kAXValueTypeCGRect:
		r := C.aq_rect(v)
		return ax.Rect{
			Origin: ax.Point{X: float64(r.origin.x), Y: float64(r.origin.y)},
			Size:   ax.Size{Width: float64(r.size.width), Height: float64(r.size.height)},
		}
	case C.kAXValueTypeCFRange:
		r := C.aq_range(v)
		return ax.Range{Location: int64(r.location), Length: int64(r.length)}
	case C.kAXValueTypeAXError:
		return ax.Code(C.aq_axerror(v))
	default:
		return ax.Opaque{TypeName: "AXValue"}
	}
}

// cfValue converts a raw ax value into an owned CF value. ok is false when the
// value has no CF form.
func cfValue(v any) (ref C.CFTypeRef, ok bool) {
	switch x := v.(type) {
	case bool:
		b := 0
		if x {
			b = 1
		}
		return C.aq_bool(C.int(b)), true
	case string:
		return C.CFTypeRef(cfString(x)), true
	case float64:
		return C.CFTypeRef(C.aq_number_new(C.double(x))), true
	case float32:
		return cfValue(float64(x))
	case int:
		return cfValue(float64(x))
	case int64:
		return cfValue(float64(x))
	case ax.Point:
		return C.CFTypeRef(C.aq_point_new(C.double(x.X), C.double(x.Y))), true
	case ax.Size:
		return C.CFTypeRef(C.aq_size_new(C.double(x.Width), C.double(x.Height))), true
	case ax.Rect:
		return C.CFTypeRef(C.aq_rect_new(C.double(x.Origin.X), C.double(x.Origin.Y),
			C.double(x.Size.Width), C.double(x.Size.Height))), true
	case ax.Range:
		return C.CFTypeRef(C.aq_range_new(C.long(x.Location), C.long(x.Length))), true
	case ax.URL:
		cs := C.CString(string(x))
		defer C.free(unsafe.Pointer(cs))
		return C.CFTypeRef(C.aq_url_new(cs)), true
	case *element:
		return C.CFRetain(C.CFTypeRef(x.ref)), true
	case []any:
		arr := C.aq_array_new(C.CFIndex(len(x)))
		for _, it := range x {
			item, ok := cfValue(it)
			if !ok {
				C.CFRelease(C.CFTypeRef(arr))
				return 0, false
			}
			C.aq_array_append(arr, item)
			C.CFRelease(item)
		}
		return C.CFTypeRef(arr), true
	default:
		return 0, false
	}
}

func stringsOf(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
