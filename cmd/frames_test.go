package cmd

import (
	"image/color"
	"testing"

	"github.com/mj1618/accessibility/internal/model"
)

func TestParseLabelMode(t *testing.T) {
	tests := []struct {
		input string
		want  LabelMode
	}{
		{"", LabelRoles},
		{"roles", LabelRoles},
		{"ids", LabelIDs},
		{"coords", LabelCoords},
		{"none", LabelNone},
	}
	for _, tt := range tests {
		got, err := ParseLabelMode(tt.input)
		if err != nil {
			t.Errorf("ParseLabelMode(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseLabelMode(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
	if _, err := ParseLabelMode("bogus"); err == nil {
		t.Error("expected error for unknown label mode")
	}
}

func TestFrameLabel(t *testing.T) {
	el := model.Element{ID: 3, Role: "btn", Title: "Save", Bounds: [4]int{100, 200, 80, 20}}
	tests := []struct {
		name  string
		mode  LabelMode
		width int
		want  string
	}{
		{"roles", LabelRoles, 200, "btn Save"},
		{"ids", LabelIDs, 200, "[3]"},
		{"coords", LabelCoords, 200, "(140,210)"},
		{"none", LabelNone, 200, ""},
		{"truncated", LabelRoles, 4 + 5*glyphWidth, "btn S"},
		{"too narrow", LabelRoles, 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameLabel(el, tt.mode, tt.width); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFrames(t *testing.T) {
	elements := []model.Element{
		{Role: "window", Bounds: [4]int{100, 100, 200, 100}},
		{Role: "btn", Bounds: [4]int{110, 150, 50, 20}},
		{Role: "txt", Bounds: [4]int{0, 0, 0, 0}},
	}
	img := RenderFrames(elements, [4]int{100, 100, 200, 100}, 2, LabelNone)

	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("expected 400x200 canvas, got %dx%d", b.Dx(), b.Dy())
	}
	if got := img.At(200, 50); got != color.Color(backgroundColor) {
		t.Errorf("expected background inside the window, got %v", got)
	}
	if got := img.At(0, 50); got != color.Color(containerColor) {
		t.Errorf("expected window outline at the left edge, got %v", got)
	}
	// Button at (110,150) in points is (20,100) in pixels.
	if got := img.At(20, 110); got != color.Color(interactiveColor) {
		t.Errorf("expected button outline, got %v", got)
	}
}

func TestRenderFrames_DegenerateArea(t *testing.T) {
	img := RenderFrames(nil, [4]int{}, 0, LabelRoles)
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("expected 1x1 canvas, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestCanvasArea(t *testing.T) {
	withWindow := model.Element{
		Role:   "app",
		Bounds: [4]int{0, 0, 0, 0},
		Children: []model.Element{
			{Role: "menubar", Bounds: [4]int{0, 0, 1440, 24}},
			{Role: "window", Bounds: [4]int{50, 60, 800, 600}},
		},
	}
	if got := canvasArea(withWindow); got != [4]int{50, 60, 800, 600} {
		t.Errorf("expected window frame, got %v", got)
	}

	noWindow := model.Element{
		Role: "app",
		Children: []model.Element{
			{Role: "btn", Bounds: [4]int{10, 10, 20, 20}},
			{Role: "btn", Bounds: [4]int{50, 5, 10, 10}},
		},
	}
	if got := canvasArea(noWindow); got != [4]int{10, 5, 50, 25} {
		t.Errorf("expected union of frames, got %v", got)
	}
}

func TestUnionBounds(t *testing.T) {
	if got := unionBounds([4]int{}, [4]int{1, 2, 3, 4}); got != [4]int{1, 2, 3, 4} {
		t.Errorf("empty union: got %v", got)
	}
	if got := unionBounds([4]int{0, 0, 10, 10}, [4]int{5, 5, 10, 10}); got != [4]int{0, 0, 15, 15} {
		t.Errorf("overlap union: got %v", got)
	}
}

func TestFlattenForDrawing(t *testing.T) {
	tree := []model.Element{{
		ID: 1, Role: "window",
		Children: []model.Element{
			{ID: 2, Role: "group", Children: []model.Element{{ID: 3, Role: "btn"}}},
			{ID: 4, Role: "txt"},
		},
	}}
	flat := flattenForDrawing(tree)
	if len(flat) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(flat))
	}
	for i, id := range []int{1, 2, 3, 4} {
		if flat[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, flat[i].ID)
		}
		if flat[i].Children != nil {
			t.Errorf("id %d: children should be cleared", flat[i].ID)
		}
	}
}
