//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

static int aq_is_trusted(void) {
    return AXIsProcessTrusted();
}

static int aq_request_trust(void) {
    const void *keys[] = { kAXTrustedCheckOptionPrompt };
    const void *values[] = { kCFBooleanTrue };
    CFDictionaryRef options = CFDictionaryCreate(kCFAllocatorDefault,
        keys,
        values,
        1,
        &kCFTypeDictionaryKeyCallBacks,
        &kCFTypeDictionaryValueCallBacks);
    Boolean trusted = AXIsProcessTrustedWithOptions(options);
    CFRelease(options);
    return trusted;
}
*/
import "C"

// Trust implements platform.Trust.
type Trust struct{}

// NewTrust creates the macOS permission checker.
func NewTrust() *Trust {
	return &Trust{}
}

// IsTrusted returns true if the process has accessibility permission.
func (t *Trust) IsTrusted() bool {
	return C.aq_is_trusted() != 0
}

// RequestTrust checks the permission and, when it is missing, has the system
// show its prompt. The prompt does not block; the result reflects the state
// before the user answers.
func (t *Trust) RequestTrust() bool {
	return C.aq_request_trust() != 0
}
