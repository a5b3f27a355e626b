package model

import (
	"github.com/mj1618/accessibility/internal/ax"
)

// CollectOptions controls what a Collector records for each node.
type CollectOptions struct {
	Depth   int  // Max traversal depth (0 = ax.DefaultMaxDepth)
	Actions bool // Also record each node's action names
	Limit   int  // Stop after this many nodes (0 = unlimited)
}

// Collector is an ax.Visitor that copies the nodes it visits into a tree of
// Elements.
type Collector struct {
	opts  CollectOptions
	stack []*Element
	path  []*ax.Element // borrowed ancestors of the current node
	root  *Element
	count int
}

// NewCollector returns a Collector.
func NewCollector(opts CollectOptions) *Collector {
	return &Collector{opts: opts}
}

func (c *Collector) Enter(el *ax.Element) ax.Flow {
	c.count++
	n := Describe(el, c.opts.Actions)
	n.ID = c.count
	cyclic := c.onPath(el)
	if cyclic {
		n.Error = "cycle: node is its own ancestor"
	}
	c.stack = append(c.stack, &n)
	c.path = append(c.path, el)
	if c.opts.Limit > 0 && c.count >= c.opts.Limit {
		return ax.Exit
	}
	if cyclic {
		return ax.SkipSubtree
	}
	return ax.Continue
}

func (c *Collector) onPath(el *ax.Element) bool {
	for _, anc := range c.path {
		if anc.Equal(el) {
			return true
		}
	}
	return false
}

func (c *Collector) Exit(*ax.Element) {
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.path = c.path[:len(c.path)-1]
	if len(c.stack) == 0 {
		c.root = n
		return
	}
	parent := c.stack[len(c.stack)-1]
	parent.Children = append(parent.Children, *n)
}

// ChildrenFailed records the enumeration error on the node.
func (c *Collector) ChildrenFailed(_ *ax.Element, err error) {
	if len(c.stack) > 0 {
		c.stack[len(c.stack)-1].Error = err.Error()
	}
}

// Root returns the collected tree, or nil if nothing was visited.
func (c *Collector) Root() *Element {
	return c.root
}

// Count is the number of nodes visited.
func (c *Collector) Count() int {
	return c.count
}

// Snapshot walks root and returns its tree. A node that repeats one of its
// ancestors is kept as a leaf with Error set.
func Snapshot(root *ax.Element, opts CollectOptions) *Element {
	depth := opts.Depth
	if depth <= 0 {
		depth = ax.DefaultMaxDepth
	}
	c := NewCollector(opts)
	ax.Walker{MaxDepth: depth}.Walk(root, c)
	return c.Root()
}

// Describe reads the attributes of one node. Attributes the node lacks are
// left empty.
func Describe(el *ax.Element, withActions bool) Element {
	var n Element
	role, _ := el.Role()
	n.Subrole, _ = el.Subrole()
	n.Role = MapRoleWithSubrole(role, n.Subrole)
	if n.Role == "other" {
		n.AXRole = role
	}
	n.Title, _ = el.Title()
	n.Description, _ = el.Description()
	n.Identifier, _ = el.Identifier()
	if v, err := el.Value(); err == nil {
		n.Value = FormatValue(v)
		ax.CloseValue(v)
	}
	n.Bounds = Bounds(el)
	if focused, err := el.Focused(); err == nil {
		n.Focused = focused
	}
	if enabled, err := el.Enabled(); err == nil && !enabled {
		n.Enabled = &enabled
	}
	if withActions {
		n.Actions, _ = el.ActionNames()
	}
	return n
}

// Bounds returns a node's screen rectangle as [x, y, width, height], from
// AXFrame when present and AXPosition plus AXSize otherwise.
func Bounds(el *ax.Element) [4]int {
	if f, err := el.Frame(); err == nil {
		return rectBounds(f)
	}
	var r ax.Rect
	if p, err := el.Position(); err == nil {
		r.Origin = p
	}
	if s, err := el.Size(); err == nil {
		r.Size = s
	}
	return rectBounds(r)
}

func rectBounds(r ax.Rect) [4]int {
	return [4]int{int(r.Origin.X), int(r.Origin.Y), int(r.Size.Width), int(r.Size.Height)}
}
