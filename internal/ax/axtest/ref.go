package axtest

import (
	"sort"

	"github.com/mj1618/accessibility/internal/ax"
)

// ref is one counted reference to a Node.
type ref struct {
	node     *Node
	released bool
}

var _ ax.Ref = (*ref)(nil)

// NodeOf returns the node behind an ax.Ref created by this package, or nil.
func NodeOf(r ax.Ref) *Node {
	if rr, ok := r.(*ref); ok {
		return rr.node
	}
	return nil
}

func (r *ref) tree() *Tree { return r.node.tree }

func (r *ref) AttributeNames() ([]string, ax.Code) {
	t := r.tree()
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, 0, len(r.node.Attrs)+1)
	for name := range r.node.Attrs {
		names = append(names, name)
	}
	if _, ok := r.node.Attrs[ax.Children.Name()]; !ok {
		names = append(names, ax.Children.Name())
	}
	sort.Strings(names)
	return names, ax.Success
}

func (r *ref) AttributeValue(name string) (any, ax.Code) {
	t := r.tree()
	t.mu.Lock()
	n := r.node
	if code, ok := n.Errors[name]; ok {
		if name == ax.Children.Name() {
			n.childrenReads++
		}
		t.mu.Unlock()
		return nil, code
	}
	var raw any
	if name == ax.Children.Name() {
		n.childrenReads++
		raw = n.Children
		if v, ok := n.Attrs[name]; ok {
			raw = v
		}
	} else {
		v, ok := n.Attrs[name]
		if !ok {
			t.mu.Unlock()
			return nil, ax.ErrorNoValue
		}
		raw = v
	}
	t.mu.Unlock()
	return t.export(raw), ax.Success
}

// export turns stored values into what the platform would return, minting an
// owned ref for every node.
func (t *Tree) export(v any) any {
	switch x := v.(type) {
	case *Node:
		return t.ref(x)
	case []*Node:
		out := make([]any, len(x))
		for i, n := range x {
			out[i] = t.ref(n)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, it := range x {
			out[i] = t.export(it)
		}
		return out
	default:
		return v
	}
}

func (r *ref) SetAttributeValue(name string, value any) ax.Code {
	t := r.tree()
	t.mu.Lock()
	defer t.mu.Unlock()
	if !r.node.Settable[name] {
		return ax.ErrorAttributeUnsupported
	}
	if rr, ok := value.(*ref); ok {
		value = rr.node
	}
	r.node.Attrs[name] = value
	return ax.Success
}

func (r *ref) IsAttributeSettable(name string) (bool, ax.Code) {
	t := r.tree()
	t.mu.Lock()
	defer t.mu.Unlock()
	return r.node.Settable[name], ax.Success
}

func (r *ref) ParameterizedAttributeNames() ([]string, ax.Code) {
	t := r.tree()
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, 0, len(r.node.Params))
	for name := range r.node.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, ax.Success
}

func (r *ref) ParameterizedAttributeValue(name string, param any) (any, ax.Code) {
	t := r.tree()
	t.mu.Lock()
	fn, ok := r.node.Params[name]
	t.mu.Unlock()
	if !ok {
		return nil, ax.ErrorParameterizedAttributeUnsupported
	}
	return t.export(fn(param)), ax.Success
}

func (r *ref) ActionNames() ([]string, ax.Code) {
	t := r.tree()
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, 0, len(r.node.Actions))
	for name := range r.node.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, ax.Success
}

func (r *ref) ActionDescription(name string) (string, ax.Code) {
	t := r.tree()
	t.mu.Lock()
	defer t.mu.Unlock()
	desc, ok := r.node.Actions[name]
	if !ok {
		return "", ax.ErrorActionUnsupported
	}
	return desc, ax.Success
}

func (r *ref) PerformAction(name string) ax.Code {
	t := r.tree()
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := r.node.Actions[name]; !ok {
		return ax.ErrorActionUnsupported
	}
	r.node.Performed = append(r.node.Performed, name)
	return ax.Success
}

func (r *ref) Pid() (int, ax.Code) {
	return r.node.PID, ax.Success
}

func (r *ref) SetMessagingTimeout(seconds float32) ax.Code {
	if seconds < 0 {
		return ax.ErrorIllegalArgument
	}
	return ax.Success
}

// ElementAtPosition returns the deepest node in the subtree whose AXFrame
// contains the point.
func (r *ref) ElementAtPosition(x, y float32) (ax.Ref, ax.Code) {
	t := r.tree()
	t.mu.Lock()
	hit := deepestAt(r.node, float64(x), float64(y), map[*Node]bool{})
	t.mu.Unlock()
	if hit == nil {
		return nil, ax.ErrorNoValue
	}
	return t.ref(hit), ax.Success
}

func deepestAt(n *Node, x, y float64, seen map[*Node]bool) *Node {
	if seen[n] {
		return nil
	}
	seen[n] = true
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := deepestAt(n.Children[i], x, y, seen); hit != nil {
			return hit
		}
	}
	if f, ok := n.Attrs[ax.Frame.Name()].(ax.Rect); ok {
		if x >= f.Origin.X && y >= f.Origin.Y && x < f.Origin.X+f.Size.Width && y < f.Origin.Y+f.Size.Height {
			return n
		}
	}
	return nil
}

func (r *ref) Retain() ax.Ref {
	return r.tree().ref(r.node)
}

func (r *ref) Release() {
	t := r.tree()
	t.mu.Lock()
	defer t.mu.Unlock()
	if r.released {
		t.doubleReleases++
		return
	}
	r.released = true
	t.live--
}

func (r *ref) Equal(other ax.Ref) bool {
	o, ok := other.(*ref)
	return ok && o.node == r.node
}

func (r *ref) Hash() uintptr {
	return r.node.id
}
