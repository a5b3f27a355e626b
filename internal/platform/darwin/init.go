//go:build darwin && cgo

package darwin

import "github.com/mj1618/accessibility/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Accessibility: NewAccessibility(),
			Workspace:     NewWorkspace(),
			Trust:         NewTrust(),
			RunLoop:       NewRunLoop(),
		}, nil
	}
}
