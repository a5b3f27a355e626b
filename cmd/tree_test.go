package cmd

import (
	"testing"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/platform"
)

func sampleTree() []model.Element {
	return []model.Element{{
		ID: 1, Role: "window", Title: "Editor", Bounds: [4]int{0, 0, 800, 600},
		Children: []model.Element{
			{ID: 2, Role: "group", Children: []model.Element{
				{ID: 3, Role: "btn", Title: "Save", Bounds: [4]int{10, 10, 60, 20}},
				{ID: 4, Role: "input", Value: "draft", Bounds: [4]int{10, 40, 300, 20}, Focused: true},
			}},
			{ID: 5, Role: "group"},
			{ID: 6, Role: "txt", Value: "Status", Bounds: [4]int{10, 560, 200, 20}},
		},
	}}
}

func countElements(elements []model.Element) int {
	n := 0
	for _, el := range elements {
		n += el.Count()
	}
	return n
}

func TestTreeFilters_NoFilters(t *testing.T) {
	got := treeFilters{}.apply(sampleTree())
	if countElements(got) != 6 {
		t.Errorf("expected the tree unchanged, got %d elements", countElements(got))
	}
}

func TestTreeFilters_Roles(t *testing.T) {
	got := treeFilters{roles: []string{"btn"}}.apply(sampleTree())
	flat := model.FlattenElements(got)
	if len(flat) != 1 || flat[0].Title != "Save" {
		t.Errorf("expected only the Save button, got %+v", flat)
	}
}

func TestTreeFilters_Focused(t *testing.T) {
	got := treeFilters{focused: true}.apply(sampleTree())
	flat := model.FlattenElements(got)
	if len(flat) == 0 || flat[len(flat)-1].ID != 4 {
		t.Fatalf("expected the focused input at the end of the path, got %+v", flat)
	}
	for _, el := range flat {
		if el.ID == 3 || el.ID == 6 {
			t.Errorf("element %d is not on the focus path", el.ID)
		}
	}
}

func TestNewTreeResult(t *testing.T) {
	result := newTreeResult(platform.Target{App: "TextEdit"}, 99, sampleTree())
	if result.Count != 6 || result.PID != 99 || result.Target == "" {
		t.Errorf("unexpected result %+v", result)
	}
	empty := newTreeResult(platform.Target{}, 0, nil)
	if empty.Elements == nil || empty.Count != 0 {
		t.Errorf("expected an empty, non-nil element list, got %+v", empty)
	}
}
