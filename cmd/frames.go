package cmd

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/model"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Render element frames to a PNG wireframe",
	Long: `Walk an application's tree and draw the frame of every element onto a blank
canvas covering the application's first window, labelled with its role code,
snapshot ID or center coordinates. Interactive elements are drawn in red,
containers in blue and everything else in grey.

The image is written to --output, or to stdout as base64 when no file is given.`,
	Example: `  aq frames --app Calculator --output calc.png
  aq frames --app Safari --roles interactive --labels ids --scale 0.5`,
	RunE: runFrames,
}

func init() {
	rootCmd.AddCommand(framesCmd)
	addTargetFlags(framesCmd)
	framesCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	framesCmd.Flags().String("labels", "roles", "Frame labels: roles, ids, coords, none")
	framesCmd.Flags().Float64("scale", 1.0, "Pixels per screen point")
	framesCmd.Flags().Int("depth", 0, "Max depth to traverse (0 = 100)")
	framesCmd.Flags().String("roles", "", "Comma-separated roles to draw (e.g. \"btn,input\" or \"interactive\")")
}

func runFrames(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	labels, _ := cmd.Flags().GetString("labels")
	scale, _ := cmd.Flags().GetFloat64("scale")
	depth, _ := cmd.Flags().GetInt("depth")
	roles, _ := cmd.Flags().GetString("roles")

	mode, err := ParseLabelMode(labels)
	if err != nil {
		return err
	}
	if scale <= 0 || scale > 4 {
		return fmt.Errorf("--scale must be in (0, 4], got %g", scale)
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	root, err := provider.Resolve(getTarget(cmd))
	if err != nil {
		return err
	}
	defer root.Close()

	tree := model.Snapshot(root, model.CollectOptions{Depth: depth})
	if tree == nil {
		return errors.New("the target has no elements")
	}
	area := canvasArea(*tree)
	if area[2] <= 0 || area[3] <= 0 {
		return errors.New("no element of the target has a frame")
	}

	elements := flattenForDrawing(model.FilterElements([]model.Element{*tree}, splitList(roles), nil))
	img := RenderFrames(elements, area, scale, mode)

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	if outPath != "" {
		return os.WriteFile(outPath, buf.Bytes(), 0644)
	}

	// Default: write to stdout as base64 for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, os.Stdout)
	if _, err := encoder.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// canvasArea is the frame of the first window in the tree, or the union of
// all frames when there is no window.
func canvasArea(root model.Element) [4]int {
	if win := firstWithRole(root, "window"); win != nil && win.Bounds[2] > 0 {
		return win.Bounds
	}
	var area [4]int
	var visit func(el model.Element)
	visit = func(el model.Element) {
		if el.Bounds[2] > 0 && el.Bounds[3] > 0 {
			area = unionBounds(area, el.Bounds)
		}
		for _, c := range el.Children {
			visit(c)
		}
	}
	visit(root)
	return area
}

func firstWithRole(el model.Element, role string) *model.Element {
	if el.Role == role {
		return &el
	}
	for _, c := range el.Children {
		if found := firstWithRole(c, role); found != nil {
			return found
		}
	}
	return nil
}

func unionBounds(a, b [4]int) [4]int {
	if a[2] <= 0 || a[3] <= 0 {
		return b
	}
	x1, y1 := min(a[0], b[0]), min(a[1], b[1])
	x2, y2 := max(a[0]+a[2], b[0]+b[2]), max(a[1]+a[3], b[1]+b[3])
	return [4]int{x1, y1, x2 - x1, y2 - y1}
}

// flattenForDrawing lists the tree in pre-order so children are drawn last.
func flattenForDrawing(elements []model.Element) []model.Element {
	var result []model.Element
	var visit func(el model.Element)
	visit = func(el model.Element) {
		children := el.Children
		el.Children = nil
		result = append(result, el)
		for _, c := range children {
			visit(c)
		}
	}
	for _, el := range elements {
		visit(el)
	}
	return result
}
