package ax

import (
	"github.com/sirupsen/logrus"
)

// Flow tells the walker how to proceed after entering a node.
type Flow int

const (
	// Continue descends into the node's children.
	Continue Flow = iota
	// SkipSubtree leaves the node's children unvisited. Exit still fires.
	SkipSubtree
	// Exit stops the whole walk once the current node has been exited.
	Exit
)

func (f Flow) String() string {
	switch f {
	case Continue:
		return "continue"
	case SkipSubtree:
		return "skip-subtree"
	case Exit:
		return "exit"
	default:
		return "flow(?)"
	}
}

// Visitor receives the nodes of a walk. Elements passed to Enter and Exit are
// borrowed: they stay valid until Exit returns and must be cloned to be kept.
type Visitor interface {
	Enter(el *Element) Flow
	Exit(el *Element)
}

// ChildrenErrorVisitor is implemented by visitors that want to know when a
// node's children could not be enumerated. The walk treats such a node as a
// leaf either way.
type ChildrenErrorVisitor interface {
	ChildrenFailed(el *Element, err error)
}

// VisitorFuncs adapts a pair of functions to Visitor. A nil EnterFunc means
// Continue; a nil ExitFunc does nothing.
type VisitorFuncs struct {
	EnterFunc func(el *Element) Flow
	ExitFunc  func(el *Element)
}

func (v VisitorFuncs) Enter(el *Element) Flow {
	if v.EnterFunc == nil {
		return Continue
	}
	return v.EnterFunc(el)
}

func (v VisitorFuncs) Exit(el *Element) {
	if v.ExitFunc != nil {
		v.ExitFunc(el)
	}
}

// Walker performs pre-order depth-first traversals.
type Walker struct {
	// MaxDepth stops descent below this depth when positive. The root is at
	// depth 1; nodes at MaxDepth are entered but their children are not.
	MaxDepth int
}

// Walk traverses the tree rooted at root with a default Walker.
func Walk(root *Element, v Visitor) Flow {
	return Walker{}.Walk(root, v)
}

// Walk visits root and its descendants in the order the platform reports
// children. It returns Exit if the visitor stopped the walk and Continue
// otherwise. Exit is called exactly once for every node Enter was called on.
func (w Walker) Walk(root *Element, v Visitor) Flow {
	if root == nil {
		return Continue
	}
	return w.walk(root, v, 1)
}

func (w Walker) walk(node *Element, v Visitor, depth int) Flow {
	flow := v.Enter(node)

	if flow == Continue && (w.MaxDepth <= 0 || depth < w.MaxDepth) {
		children := w.children(node, v)
		for i, child := range children {
			childFlow := w.walk(child, v, depth+1)
			child.Close()
			if childFlow == Exit {
				CloseAll(children[i+1:])
				flow = Exit
				break
			}
		}
	}

	v.Exit(node)
	if flow == Exit {
		return Exit
	}
	return Continue
}

func (w Walker) children(node *Element, v Visitor) []*Element {
	children, err := Get(node, Children)
	if err == nil {
		return children
	}
	// a node without the attribute is a leaf, not a failure
	if IsCode(err, ErrorNoValue) || IsCode(err, ErrorAttributeUnsupported) {
		return nil
	}
	logrus.WithError(err).Debugf("walker: children of %s unavailable", node)
	if cv, ok := v.(ChildrenErrorVisitor); ok {
		cv.ChildrenFailed(node, err)
	}
	return nil
}
