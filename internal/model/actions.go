package model

import (
	"strings"

	"github.com/mj1618/accessibility/internal/ax"
)

// ActionMap maps short action names to AX action names.
var ActionMap = map[string]string{
	"press":           ax.ActionPress,
	"increment":       ax.ActionIncrement,
	"decrement":       ax.ActionDecrement,
	"confirm":         ax.ActionConfirm,
	"cancel":          ax.ActionCancel,
	"raise":           ax.ActionRaise,
	"showmenu":        ax.ActionShowMenu,
	"pick":            ax.ActionPick,
	"showalternateui": ax.ActionShowAlternateUI,
	"showdefaultui":   ax.ActionShowDefaultUI,
}

// ActionName resolves a short name (press, show-menu) to its AX name. Names
// already starting with AX, and unknown names, are returned unchanged.
func ActionName(name string) string {
	if strings.HasPrefix(name, "AX") {
		return name
	}
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	if full, ok := ActionMap[key]; ok {
		return full
	}
	return name
}

// ShortAction is the inverse of ActionName for display.
func ShortAction(axAction string) string {
	for short, full := range ActionMap {
		if full == axAction {
			return short
		}
	}
	return strings.ToLower(strings.TrimPrefix(axAction, "AX"))
}
