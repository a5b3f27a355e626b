// Package axtest is an in-memory stand-in for the platform accessibility API.
// It implements ax.Ref and ax.ObserverRef over a tree of Nodes and counts every
// reference it hands out, so tests can assert that nothing leaks and nothing
// is released twice.
package axtest

import (
	"sync"

	"github.com/mj1618/accessibility/internal/ax"
)

// Tree owns a set of nodes and the reference accounting for them.
type Tree struct {
	mu             sync.Mutex
	next           uintptr
	live           int
	doubleReleases int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Node is one fake accessibility object. Tests configure it directly before
// handing out refs; the fields are guarded by the tree's lock once in use.
type Node struct {
	tree *Tree
	id   uintptr

	// Attrs holds raw attribute values. A *Node value is served as an owned
	// ref, a []*Node as an array of refs.
	Attrs map[string]any
	// Children are served for AXChildren. An unset slice is an empty array.
	Children []*Node
	// Errors makes reading an attribute fail with the given code.
	Errors map[string]Code
	// Settable lists attributes that accept writes.
	Settable map[string]bool
	// Actions lists supported actions with their descriptions.
	Actions map[string]string
	// Params serves parameterized attributes: the function gets the
	// parameter as passed to the platform.
	Params map[string]func(param any) any
	// Performed records every action performed, in order.
	Performed []string
	// PID is reported by Pid.
	PID int

	childrenReads int
}

// Code is ax.Code, re-exported so test tables read naturally.
type Code = ax.Code

// NewNode creates a node with the given role and children.
func (t *Tree) NewNode(role string, children ...*Node) *Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	return &Node{
		tree:     t,
		id:       t.next,
		Attrs:    map[string]any{"AXRole": role},
		Children: children,
		Errors:   map[string]Code{},
		Settable: map[string]bool{},
		Actions:  map[string]string{},
		Params:   map[string]func(any) any{},
	}
}

// Element returns an owned handle to n.
func (t *Tree) Element(n *Node) *ax.Element {
	return ax.Wrap(t.ref(n))
}

// Ref returns an owned raw reference to n.
func (t *Tree) Ref(n *Node) ax.Ref {
	return t.ref(n)
}

// Live is the number of references handed out and not yet released.
func (t *Tree) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

// DoubleReleases counts Release calls on references already released.
func (t *Tree) DoubleReleases() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.doubleReleases
}

func (t *Tree) ref(n *Node) *ref {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.live++
	return &ref{node: n}
}

// Set stores an attribute value.
func (n *Node) Set(name string, v any) *Node {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	n.Attrs[name] = v
	return n
}

// Fail makes reads of name return code.
func (n *Node) Fail(name string, code Code) *Node {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	n.Errors[name] = code
	return n
}

// Get returns the stored raw value of an attribute.
func (n *Node) Get(name string) any {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return n.Attrs[name]
}

// AddChild appends children.
func (n *Node) AddChild(children ...*Node) *Node {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	n.Children = append(n.Children, children...)
	return n
}

// ChildrenReads reports how many times AXChildren was read from n.
func (n *Node) ChildrenReads() int {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return n.childrenReads
}

// Chain builds a linear tree of depth nodes and returns its root.
func (t *Tree) Chain(depth int) *Node {
	var child *Node
	for i := 0; i < depth; i++ {
		if child == nil {
			child = t.NewNode(ax.RoleGroup)
			continue
		}
		child = t.NewNode(ax.RoleGroup, child)
	}
	return child
}
