package model

import "github.com/mj1618/accessibility/internal/ax"

// RoleMap maps accessibility roles to compact role codes.
var RoleMap = map[string]string{
	ax.RoleApplication:    "app",
	ax.RoleButton:         "btn",
	ax.RoleMenuButton:     "btn",
	ax.RolePopUpButton:    "popup",
	ax.RoleStaticText:     "txt",
	ax.RoleLink:           "lnk",
	ax.RoleImage:          "img",
	ax.RoleTextField:      "input",
	ax.RoleTextArea:       "input",
	ax.RoleComboBox:       "input",
	ax.RoleCheckBox:       "chk",
	ax.RoleRadioButton:    "radio",
	ax.RoleSlider:         "slider",
	ax.RoleMenu:           "menu",
	ax.RoleMenuBar:        "menu",
	ax.RoleMenuItem:       "menuitem",
	ax.RoleMenuBarItem:    "menuitem",
	ax.RoleTabGroup:       "tab",
	ax.RoleList:           "list",
	ax.RoleTable:          "list",
	ax.RoleOutline:        "list",
	ax.RoleRow:            "row",
	ax.RoleCell:           "cell",
	ax.RoleGroup:          "group",
	ax.RoleSplitGroup:     "group",
	ax.RoleRadioGroup:     "group",
	ax.RoleScrollArea:     "scroll",
	ax.RoleToolbar:        "toolbar",
	ax.RoleWebArea:        "web",
	ax.RoleWindow:         "window",
	ax.RoleSheet:          "window",
	ax.RoleDrawer:         "window",
	ax.RoleSystemWide:     "system",
	ax.RoleDockItem:       "dock",
	ax.RoleValueIndicator: "indicator",
}

// subroleMap overrides the role code for subroles that behave like a
// different control.
var subroleMap = map[string]string{
	ax.SubroleSwitch:          "toggle",
	ax.SubroleToggle:          "toggle",
	ax.SubroleSearchField:     "input",
	ax.SubroleSecureTextField: "input",
}

// MetaRoles maps meta-role names to the concrete roles they expand to.
var MetaRoles = map[string][]string{
	"interactive": {"btn", "popup", "input", "chk", "toggle", "radio", "slider", "menuitem", "lnk"},
	"containers":  {"window", "group", "scroll", "list", "tab", "toolbar"},
}

// ExpandRoles expands any meta-roles in the given list to their concrete roles.
// Non-meta roles are passed through unchanged. Duplicates are removed.
func ExpandRoles(roles []string) []string {
	seen := make(map[string]bool, len(roles))
	var expanded []string
	for _, r := range roles {
		if concrete, ok := MetaRoles[r]; ok {
			for _, c := range concrete {
				if !seen[c] {
					seen[c] = true
					expanded = append(expanded, c)
				}
			}
		} else if !seen[r] {
			seen[r] = true
			expanded = append(expanded, r)
		}
	}
	return expanded
}

// MapRole converts a raw accessibility role to a compact code.
func MapRole(axRole string) string {
	if short, ok := RoleMap[axRole]; ok {
		return short
	}
	return "other"
}

// MapRoleWithSubrole is MapRole with subrole overrides applied.
func MapRoleWithSubrole(axRole, axSubrole string) string {
	if short, ok := subroleMap[axSubrole]; ok {
		return short
	}
	return MapRole(axRole)
}
