//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    char *name;
    char *bundle;
    int pid;
    int active;
} aq_app;

static char *aq_strdup(NSString *s) {
    if (s == nil) return strdup("");
    return strdup([s UTF8String]);
}

static void aq_fill(aq_app *out, NSRunningApplication *app) {
    out->name = aq_strdup(app.localizedName);
    out->bundle = aq_strdup(app.bundleIdentifier);
    out->pid = app.processIdentifier;
    out->active = app.active ? 1 : 0;
}

static int aq_running_apps(aq_app **out, int *count) {
    @autoreleasepool {
        NSArray<NSRunningApplication *> *apps = [[NSWorkspace sharedWorkspace] runningApplications];
        aq_app *list = calloc(apps.count > 0 ? apps.count : 1, sizeof(aq_app));
        if (list == NULL) return -1;
        int n = 0;
        for (NSRunningApplication *app in apps) {
            if (app.activationPolicy != NSApplicationActivationPolicyRegular) continue;
            aq_fill(&list[n++], app);
        }
        *out = list;
        *count = n;
        return 0;
    }
}

static void aq_free_apps(aq_app *apps, int count) {
    for (int i = 0; i < count; i++) {
        free(apps[i].name);
        free(apps[i].bundle);
    }
    free(apps);
}

static int aq_frontmost_app(aq_app *out) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        if (app == nil) return -1;
        aq_fill(out, app);
        return 0;
    }
}

static int aq_pid_for_bundle(const char *bundle) {
    @autoreleasepool {
        NSString *ident = [NSString stringWithUTF8String:bundle];
        NSArray<NSRunningApplication *> *apps = [NSRunningApplication runningApplicationsWithBundleIdentifier:ident];
        for (NSRunningApplication *app in apps) {
            if (!app.terminated) return app.processIdentifier;
        }
        return 0;
    }
}
*/
import "C"

import (
	"fmt"
	"sort"
	"strings"
	"unsafe"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
)

// Workspace implements platform.Workspace with NSWorkspace.
type Workspace struct{}

// NewWorkspace creates the macOS workspace backend.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// RunningApps lists regular (Dock-visible) applications, active first, then by name.
func (w *Workspace) RunningApps() ([]model.App, error) {
	var cApps *C.aq_app
	var cCount C.int
	if C.aq_running_apps(&cApps, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate applications")
	}
	defer C.aq_free_apps(cApps, cCount)

	apps := make([]model.App, 0, int(cCount))
	for _, ca := range unsafe.Slice(cApps, int(cCount)) {
		apps = append(apps, goApp(ca))
	}

	sort.Slice(apps, func(i, j int) bool {
		if apps[i].Active != apps[j].Active {
			return apps[i].Active
		}
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})
	return apps, nil
}

func (w *Workspace) FrontmostApp() (model.App, error) {
	var ca C.aq_app
	if C.aq_frontmost_app(&ca) != 0 {
		return model.App{}, fmt.Errorf("failed to get frontmost app")
	}
	defer C.free(unsafe.Pointer(ca.name))
	defer C.free(unsafe.Pointer(ca.bundle))
	return goApp(ca), nil
}

func (w *Workspace) PIDForBundle(bundleID string) (int, error) {
	cs := C.CString(bundleID)
	defer C.free(unsafe.Pointer(cs))
	pid := int(C.aq_pid_for_bundle(cs))
	if pid == 0 {
		return 0, ax.ErrNotFound
	}
	return pid, nil
}

func goApp(ca C.aq_app) model.App {
	return model.App{
		Name:     C.GoString(ca.name),
		PID:      int(ca.pid),
		BundleID: C.GoString(ca.bundle),
		Active:   ca.active != 0,
	}
}
