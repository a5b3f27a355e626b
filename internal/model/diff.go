package model

import (
	"crypto/sha256"
	"fmt"
)

// Change is one element whose mutable properties differ between snapshots.
type Change struct {
	ID      int                  `yaml:"i"           json:"i"`
	Role    string               `yaml:"r,omitempty" json:"r,omitempty"`
	Title   string               `yaml:"t,omitempty" json:"t,omitempty"`
	Changes map[string][2]string `yaml:"changes"     json:"changes"`
}

// TreeDiff is the result of comparing two snapshots.
type TreeDiff struct {
	Added          []FlatElement `yaml:"added,omitempty"   json:"added,omitempty"`
	Removed        []FlatElement `yaml:"removed,omitempty" json:"removed,omitempty"`
	Changed        []Change      `yaml:"changed,omitempty" json:"changed,omitempty"`
	UnchangedCount int           `yaml:"unchanged"         json:"unchanged"`
}

// Empty reports whether nothing was added, removed or changed.
func (d TreeDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// ElementHash identifies an element across snapshots by its stable content
// and position. Pre-order IDs shift when nodes appear, so they are not used.
func ElementHash(el FlatElement) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s", el.Role, el.AXRole, el.Subrole, el.Title, el.Identifier, el.Path)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// Diff compares two flattened snapshots matched by ElementHash.
func Diff(prev, curr []FlatElement) TreeDiff {
	prevByHash := make(map[string]FlatElement, len(prev))
	for _, el := range prev {
		prevByHash[ElementHash(el)] = el
	}
	currByHash := make(map[string]bool, len(curr))

	var diff TreeDiff
	for _, el := range curr {
		h := ElementHash(el)
		currByHash[h] = true
		before, existed := prevByHash[h]
		if !existed {
			diff.Added = append(diff.Added, el)
			continue
		}
		if changes := diffProperties(before, el); len(changes) > 0 {
			diff.Changed = append(diff.Changed, Change{
				ID:      el.ID,
				Role:    el.Role,
				Title:   el.Title,
				Changes: changes,
			})
		} else {
			diff.UnchangedCount++
		}
	}

	for _, el := range prev {
		if !currByHash[ElementHash(el)] {
			diff.Removed = append(diff.Removed, el)
		}
	}
	return diff
}

// diffProperties compares the properties not covered by ElementHash.
func diffProperties(prev, curr FlatElement) map[string][2]string {
	diffs := make(map[string][2]string)
	if prev.Value != curr.Value {
		diffs["v"] = [2]string{prev.Value, curr.Value}
	}
	if prev.Description != curr.Description {
		diffs["d"] = [2]string{prev.Description, curr.Description}
	}
	if prev.Bounds != curr.Bounds {
		diffs["b"] = [2]string{fmt.Sprint(prev.Bounds), fmt.Sprint(curr.Bounds)}
	}
	if prev.Focused != curr.Focused {
		diffs["f"] = [2]string{fmt.Sprint(prev.Focused), fmt.Sprint(curr.Focused)}
	}
	if enabled(prev) != enabled(curr) {
		diffs["e"] = [2]string{fmt.Sprint(enabled(prev)), fmt.Sprint(enabled(curr))}
	}
	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

func enabled(el FlatElement) bool {
	return el.Enabled == nil || *el.Enabled
}
