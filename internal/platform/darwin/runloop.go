//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreFoundation
#include <CoreFoundation/CoreFoundation.h>

// Returns 1 when the run loop has no sources to wait on.
static int aq_run_slice(double seconds) {
    return CFRunLoopRunInMode(kCFRunLoopDefaultMode, seconds, false) == kCFRunLoopRunFinished;
}
*/
import "C"

import (
	"context"
	"runtime"
	"time"
)

// DefaultSlice is how long the run loop runs between cancellation checks.
const DefaultSlice = 100 * time.Millisecond

// RunLoop implements platform.RunLoop with CFRunLoopRunInMode on a locked
// OS thread.
type RunLoop struct {
	Slice time.Duration
}

// NewRunLoop creates a run loop pump with the default slice.
func NewRunLoop() *RunLoop {
	return &RunLoop{Slice: DefaultSlice}
}

// Run locks the calling goroutine to its thread, calls onThread there and then
// pumps that thread's run loop until ctx is done. It returns nil on
// cancellation.
func (r *RunLoop) Run(ctx context.Context, onThread func()) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if onThread != nil {
		onThread()
	}

	slice := r.Slice
	if slice <= 0 {
		slice = DefaultSlice
	}
	for ctx.Err() == nil {
		if C.aq_run_slice(C.double(slice.Seconds())) != 0 {
			// Nothing attached yet, so the run loop returned at once.
			select {
			case <-ctx.Done():
			case <-time.After(slice):
			}
		}
	}
	return nil
}
