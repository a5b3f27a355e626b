// Package darwin binds the macOS Accessibility API (AXUIElement, AXObserver,
// AXValue) and NSWorkspace to the platform interfaces.
// All functionality requires macOS and CGo; elsewhere nothing registers and
// platform.NewProvider reports ErrUnsupported.
package darwin
