package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the accessibility tree of an application",
	Long: `Walk the accessibility tree of an application (the frontmost one by default)
and print every element with its role, title, value, description and bounds.

Elements whose children cannot be read are printed as leaves with the reason
in their "err" field.`,
	Example: `  aq tree --app Safari --depth 4
  aq tree --bundle com.apple.Notes --roles interactive --flat
  aq tree --focused --format json`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addTargetFlags(treeCmd)
	treeCmd.Flags().Int("depth", 0, "Max depth to traverse (0 = 100)")
	treeCmd.Flags().Int("limit", 0, "Max elements to read (0 = unlimited)")
	treeCmd.Flags().Bool("actions", false, "Include each element's actions")
	treeCmd.Flags().String("roles", "", "Comma-separated roles to keep (e.g. \"btn,input\" or \"interactive\")")
	treeCmd.Flags().String("bbox", "", "Keep elements intersecting this box (x,y,w,h)")
	treeCmd.Flags().String("text", "", "Keep elements whose title, value or description contains this")
	treeCmd.Flags().Bool("focused", false, "Keep only the focused element and its ancestors")
	treeCmd.Flags().Bool("prune", false, "Drop empty anonymous groups")
	treeCmd.Flags().Bool("flat", false, "Print a flat list with paths instead of a tree")
}

// treeFilters holds the post-read filters of `aq tree`.
type treeFilters struct {
	roles   []string
	bbox    *[4]int
	text    string
	focused bool
	prune   bool
}

func getTreeFilters(cmd *cobra.Command) (treeFilters, error) {
	var f treeFilters
	roles, _ := cmd.Flags().GetString("roles")
	f.roles = splitList(roles)
	if s, _ := cmd.Flags().GetString("bbox"); s != "" {
		bbox, err := platform.ParseBBox(s)
		if err != nil {
			return f, err
		}
		f.bbox = bbox
	}
	f.text, _ = cmd.Flags().GetString("text")
	f.focused, _ = cmd.Flags().GetBool("focused")
	f.prune, _ = cmd.Flags().GetBool("prune")
	return f, nil
}

// apply runs the filters in a fixed order: roles and bbox, text, focus, prune.
func (f treeFilters) apply(elements []model.Element) []model.Element {
	elements = model.FilterElements(elements, f.roles, f.bbox)
	elements = model.FilterByText(elements, f.text)
	if f.focused {
		elements = model.FilterByFocused(elements)
	}
	if f.prune {
		elements = model.PruneEmptyGroups(elements)
	}
	return elements
}

func getCollectOptions(cmd *cobra.Command) model.CollectOptions {
	var opts model.CollectOptions
	opts.Depth, _ = cmd.Flags().GetInt("depth")
	opts.Limit, _ = cmd.Flags().GetInt("limit")
	opts.Actions, _ = cmd.Flags().GetBool("actions")
	return opts
}

func runTree(cmd *cobra.Command, args []string) error {
	filters, err := getTreeFilters(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider()
	if err != nil {
		return err
	}

	target := getTarget(cmd)
	root, err := provider.Resolve(target)
	if err != nil {
		return err
	}
	defer root.Close()

	pid, _ := root.Pid()
	tree := model.Snapshot(root, getCollectOptions(cmd))
	var elements []model.Element
	if tree != nil {
		elements = []model.Element{*tree}
	}
	elements = filters.apply(elements)

	flat, _ := cmd.Flags().GetBool("flat")
	if flat {
		return output.Print(output.FlatResult{
			Target:   target.String(),
			PID:      pid,
			TS:       time.Now().Unix(),
			Elements: model.FlattenElements(elements),
		})
	}
	return output.Print(newTreeResult(target, pid, elements))
}

func newTreeResult(target platform.Target, pid int, elements []model.Element) output.TreeResult {
	count := 0
	for _, el := range elements {
		count += el.Count()
	}
	if elements == nil {
		elements = []model.Element{}
	}
	return output.TreeResult{
		Target:   target.String(),
		PID:      pid,
		TS:       time.Now().Unix(),
		Count:    count,
		Elements: elements,
	}
}
