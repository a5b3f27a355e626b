package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/accessibility/internal/model"
)

// LabelMode controls what text is drawn on each frame.
type LabelMode int

const (
	// LabelRoles draws the compact role code, with the title when it fits.
	LabelRoles LabelMode = iota
	// LabelIDs draws "[id]" snapshot IDs.
	LabelIDs
	// LabelCoords draws "(x,y)" screen-absolute center coordinates.
	LabelCoords
	// LabelNone draws boxes only.
	LabelNone
)

// ParseLabelMode parses a --labels value.
func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "", "roles":
		return LabelRoles, nil
	case "ids":
		return LabelIDs, nil
	case "coords":
		return LabelCoords, nil
	case "none":
		return LabelNone, nil
	default:
		return 0, fmt.Errorf("unsupported labels: %s (use roles, ids, coords or none)", s)
	}
}

const (
	glyphWidth  = 7
	glyphHeight = 13
)

var (
	backgroundColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor    = color.RGBA{R: 0, G: 0, B: 0, A: 200}

	interactiveColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	containerColor   = color.RGBA{R: 60, G: 110, B: 220, A: 255}
	staticColor      = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

var interactiveRoles = setOf(model.ExpandRoles([]string{"interactive"}))
var containerRoles = setOf(model.ExpandRoles([]string{"containers"}))

func setOf(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

func frameColor(role string) color.Color {
	switch {
	case interactiveRoles[role]:
		return interactiveColor
	case containerRoles[role]:
		return containerColor
	default:
		return staticColor
	}
}

// RenderFrames draws the frame of every element onto a blank canvas covering
// area ([x, y, w, h] in screen points). scale converts points to pixels.
// Elements are drawn in order, so children paint over their parents.
func RenderFrames(elements []model.Element, area [4]int, scale float64, mode LabelMode) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := int(float64(area[2]) * scale)
	h := int(float64(area[3]) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	for _, el := range elements {
		drawFrame(img, el, area[0], area[1], scale, mode)
	}
	return img
}

// drawFrame draws a bounding box and label for a single element.
// originX, originY are the canvas origin in screen points.
func drawFrame(img *image.RGBA, el model.Element, originX, originY int, scale float64, mode LabelMode) {
	b := el.Bounds
	if b[2] <= 0 || b[3] <= 0 {
		return
	}
	x := int(float64(b[0]-originX) * scale)
	y := int(float64(b[1]-originY) * scale)
	w := int(float64(b[2]) * scale)
	h := int(float64(b[3]) * scale)

	drawRectangle(img, x, y, x+w, y+h, frameColor(el.Role))

	label := frameLabel(el, mode, w)
	if label == "" {
		return
	}
	drawTextWithOutline(img, label, x+2, y+glyphHeight, textColor, outlineColor)
}

// frameLabel returns the text for el, cut to fit a box width pixels wide.
func frameLabel(el model.Element, mode LabelMode, width int) string {
	var label string
	switch mode {
	case LabelNone:
		return ""
	case LabelIDs:
		label = fmt.Sprintf("[%d]", el.ID)
	case LabelCoords:
		label = fmt.Sprintf("(%d,%d)", el.Bounds[0]+el.Bounds[2]/2, el.Bounds[1]+el.Bounds[3]/2)
	default:
		label = el.Role
		if el.Title != "" {
			label += " " + el.Title
		}
	}
	fit := (width - 4) / glyphWidth
	if fit <= 0 {
		return ""
	}
	if r := []rune(label); len(r) > fit {
		label = string(r[:fit])
	}
	return label
}

// isWithinBounds checks if a point is within the image bounds
func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline on the image
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline draws text with its baseline at (x, y) and a one-pixel
// outline for contrast.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(img, text, x+dx, y+dy, outlineColor)
		}
	}
	drawText(img, text, x, y, textColor)
}

func drawText(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
