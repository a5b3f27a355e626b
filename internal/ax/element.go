package ax

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Element is a handle to one node of an application's accessibility tree.
// Each Element owns exactly one foreign reference, released by Close. Handles
// are cheap to Clone; two handles are Equal when they denote the same node.
//
// The node is owned by another process and may disappear at any moment, in
// which case operations fail with ErrorInvalidUIElement or ErrorCannotComplete.
type Element struct {
	ref    Ref
	once   sync.Once
	closed atomic.Bool
}

// Wrap adopts an owned reference. It returns nil for a nil ref.
func Wrap(ref Ref) *Element {
	if ref == nil {
		return nil
	}
	e := &Element{ref: ref}
	runtime.SetFinalizer(e, (*Element).Close)
	return e
}

// Clone returns a new handle to the same node that must be closed separately.
func (e *Element) Clone() *Element {
	if e == nil || e.closed.Load() {
		return nil
	}
	return Wrap(e.ref.Retain())
}

// Close releases the handle's reference. Calling Close more than once is a no-op.
func (e *Element) Close() {
	if e == nil {
		return
	}
	e.once.Do(func() {
		e.closed.Store(true)
		runtime.SetFinalizer(e, nil)
		e.ref.Release()
	})
}

// Ref exposes the underlying borrowed reference for platform code.
func (e *Element) Ref() Ref {
	return e.ref
}

func (e *Element) live() (Ref, error) {
	if e == nil || e.closed.Load() {
		return nil, ErrorInvalidUIElement
	}
	return e.ref, nil
}

// Equal reports whether both handles denote the same node.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.closed.Load() || other.closed.Load() {
		return e == other
	}
	return e.ref.Equal(other.ref)
}

// Hash is consistent with Equal and usable as a map key.
func (e *Element) Hash() uintptr {
	if e == nil || e.closed.Load() {
		return 0
	}
	return e.ref.Hash()
}

func (e *Element) String() string {
	if e == nil {
		return "Element(nil)"
	}
	return fmt.Sprintf("Element(%#x)", e.Hash())
}

// AttributeNames lists the attributes the node currently exposes, in the order
// the platform reports them.
func (e *Element) AttributeNames() ([]string, error) {
	ref, err := e.live()
	if err != nil {
		return nil, err
	}
	names, code := ref.AttributeNames()
	if err := check(code); err != nil {
		return nil, err
	}
	return names, nil
}

// Attribute fetches an attribute without type checking.
func (e *Element) Attribute(attr Attribute[Value]) (Value, error) {
	return Get(e, attr)
}

// SetAttribute writes an attribute without type checking.
func (e *Element) SetAttribute(attr Attribute[Value], v Value) error {
	return Set(e, attr, v)
}

// IsSettable reports whether a write to the named attribute would be accepted.
func (e *Element) IsSettable(name string) (bool, error) {
	ref, err := e.live()
	if err != nil {
		return false, err
	}
	ok, code := ref.IsAttributeSettable(name)
	if err := check(code); err != nil {
		return false, err
	}
	return ok, nil
}

// ParameterizedAttributeNames lists the parameterized attributes of the node.
func (e *Element) ParameterizedAttributeNames() ([]string, error) {
	ref, err := e.live()
	if err != nil {
		return nil, err
	}
	names, code := ref.ParameterizedAttributeNames()
	if err := check(code); err != nil {
		return nil, err
	}
	return names, nil
}

// ActionNames lists the actions the node supports.
func (e *Element) ActionNames() ([]string, error) {
	ref, err := e.live()
	if err != nil {
		return nil, err
	}
	names, code := ref.ActionNames()
	if err := check(code); err != nil {
		return nil, err
	}
	return names, nil
}

// ActionDescription returns the localized description of an action.
func (e *Element) ActionDescription(name string) (string, error) {
	ref, err := e.live()
	if err != nil {
		return "", err
	}
	desc, code := ref.ActionDescription(name)
	if err := check(code); err != nil {
		return "", err
	}
	return desc, nil
}

// PerformAction asks the node to perform the named action.
func (e *Element) PerformAction(name string) error {
	ref, err := e.live()
	if err != nil {
		return err
	}
	return check(ref.PerformAction(name))
}

// Pid returns the process id of the application owning the node.
func (e *Element) Pid() (int, error) {
	ref, err := e.live()
	if err != nil {
		return 0, err
	}
	pid, code := ref.Pid()
	if err := check(code); err != nil {
		return 0, err
	}
	return pid, nil
}

// SetMessagingTimeout bounds how long calls on this node wait for the target
// application. Zero restores the global default.
func (e *Element) SetMessagingTimeout(seconds float32) error {
	ref, err := e.live()
	if err != nil {
		return err
	}
	return check(ref.SetMessagingTimeout(seconds))
}

// ElementAtPosition returns the deepest node under a screen point. The
// receiver must be an application or the system-wide element.
func (e *Element) ElementAtPosition(p Point) (*Element, error) {
	ref, err := e.live()
	if err != nil {
		return nil, err
	}
	hit, code := ref.ElementAtPosition(float32(p.X), float32(p.Y))
	if err := check(code); err != nil {
		return nil, err
	}
	if hit == nil {
		return nil, ErrorNoValue
	}
	return Wrap(hit), nil
}

// Get fetches an attribute and checks that its value has the declared kind.
func Get[T any](e *Element, attr Attribute[T]) (T, error) {
	var zero T
	ref, err := e.live()
	if err != nil {
		return zero, err
	}
	raw, code := ref.AttributeValue(attr.name)
	if err := check(code); err != nil {
		return zero, err
	}
	return convert[T](attr.name, attr.kind, raw)
}

// GetParameterized fetches a parameterized attribute for the given parameter.
func GetParameterized[T any](e *Element, attr ParameterizedAttribute[T], param Value) (T, error) {
	var zero T
	ref, err := e.live()
	if err != nil {
		return zero, err
	}
	p, err := encode(param)
	if err != nil {
		return zero, err
	}
	raw, code := ref.ParameterizedAttributeValue(attr.name, p)
	if err := check(code); err != nil {
		return zero, err
	}
	return convert[T](attr.name, attr.kind, raw)
}

// Set writes an attribute. Rejections carry the platform's status code.
func Set[T any](e *Element, attr Attribute[T], value T) error {
	ref, err := e.live()
	if err != nil {
		return err
	}
	v, err := encode(value)
	if err != nil {
		return err
	}
	return check(ref.SetAttributeValue(attr.name, v))
}

func convert[T any](name string, kind ValueKind, raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, ErrorNoValue
	}
	if c, ok := raw.(Code); ok {
		// geometry values can carry an embedded error instead of a payload
		if c == Success {
			c = ErrorFailure
		}
		return zero, c
	}
	if !accepts(kind, raw) {
		got := KindOf(raw)
		releaseRaw(raw)
		return zero, &UnexpectedTypeError{Attribute: name, Expected: kind, Received: got}
	}
	v := decode(raw, kind)
	out, ok := v.(T)
	if !ok {
		got := KindOf(v)
		CloseValue(v)
		return zero, &UnexpectedTypeError{Attribute: name, Expected: kind, Received: got}
	}
	return out, nil
}

// CloseAll closes every element in the slice.
func CloseAll(elements []*Element) {
	for _, el := range elements {
		el.Close()
	}
}
