package model

import "strings"

// FilterElements returns only the elements whose role is in roles and whose
// bounds intersect bbox. Roles may be compact codes, meta-roles or raw
// accessibility roles. Depth limits are applied by the walker, not here.
func FilterElements(elements []Element, roles []string, bbox *[4]int) []Element {
	if len(roles) == 0 && bbox == nil {
		return elements
	}

	roleSet := make(map[string]bool, len(roles))
	for _, r := range ExpandRoles(roles) {
		roleSet[r] = true
	}
	return filterElements(elements, roleSet, bbox)
}

func filterElements(elements []Element, roleSet map[string]bool, bbox *[4]int) []Element {
	var result []Element
	for _, el := range elements {
		// Recursively filter children first
		var filteredChildren []Element
		if len(el.Children) > 0 {
			filteredChildren = filterElements(el.Children, roleSet, bbox)
		}

		roleMatch := len(roleSet) == 0 || roleSet[el.Role] || (el.AXRole != "" && roleSet[el.AXRole])
		bboxMatch := bbox == nil || boundsIntersect(el.Bounds, *bbox)

		if roleMatch && bboxMatch {
			// Element matches filters: include it with filtered children
			filtered := el
			filtered.Children = filteredChildren
			result = append(result, filtered)
		} else if len(filteredChildren) > 0 {
			// Element doesn't match, but has matching descendants: include them directly
			result = append(result, filteredChildren...)
		}
	}
	return result
}

// FilterByText keeps elements whose title, value, description or identifier
// contains text, ignoring case. Ancestors of a match are kept so the result
// is still a tree.
func FilterByText(elements []Element, text string) []Element {
	if text == "" {
		return elements
	}
	textLower := strings.ToLower(text)
	var result []Element
	for _, el := range elements {
		matched := textMatchesElement(el, textLower)
		childMatches := FilterByText(el.Children, text)

		if matched || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

func textMatchesElement(el Element, textLower string) bool {
	return strings.Contains(strings.ToLower(el.Title), textLower) ||
		strings.Contains(strings.ToLower(el.Value), textLower) ||
		strings.Contains(strings.ToLower(el.Description), textLower) ||
		strings.Contains(strings.ToLower(el.Identifier), textLower)
}

// FilterByFocused keeps the focused element and its ancestors.
func FilterByFocused(elements []Element) []Element {
	var result []Element
	for _, el := range elements {
		childMatches := FilterByFocused(el.Children)

		if el.Focused || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

// isEmptyGroup reports whether el is an anonymous structural container.
func isEmptyGroup(el Element) bool {
	return (el.Role == "group" || el.Role == "other") &&
		el.Title == "" && el.Value == "" && el.Description == "" && el.Identifier == ""
}

// PruneEmptyGroups removes anonymous group/other nodes from a tree and
// promotes their children to the parent.
func PruneEmptyGroups(elements []Element) []Element {
	var result []Element
	for _, el := range elements {
		// Recursively prune children first
		prunedChildren := PruneEmptyGroups(el.Children)

		if isEmptyGroup(el) {
			// Skip this element, promote its children
			result = append(result, prunedChildren...)
		} else {
			pruned := el
			pruned.Children = prunedChildren
			result = append(result, pruned)
		}
	}
	return result
}

// boundsIntersect checks if two [x, y, width, height] rectangles overlap.
func boundsIntersect(a, b [4]int) bool {
	// a and b are [x, y, width, height]
	ax1, ay1, ax2, ay2 := a[0], a[1], a[0]+a[2], a[1]+a[3]
	bx1, by1, bx2, by2 := b[0], b[1], b[0]+b[2], b[1]+b[3]
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}
