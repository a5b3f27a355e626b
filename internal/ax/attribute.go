package ax

import (
	"sort"
	"sync"
)

// Attribute names a property of a node and fixes the Go type its value
// decodes to. The well-known attributes below are the only place a name is
// bound to a type.
type Attribute[T any] struct {
	name     string
	kind     ValueKind
	settable bool
}

// Name is the wire name, e.g. "AXTitle".
func (a Attribute[T]) Name() string { return a.name }

// Kind is the declared value kind.
func (a Attribute[T]) Kind() ValueKind { return a.kind }

// Settable reports whether the attribute is known to be writable on at least
// some roles. Whether a particular node accepts a write is answered by
// Element.IsSettable.
func (a Attribute[T]) Settable() bool { return a.settable }

// ParameterizedAttribute is an attribute whose value depends on a parameter,
// such as the bounds of a text range.
type ParameterizedAttribute[T any] struct {
	name  string
	kind  ValueKind
	param ValueKind
}

func (a ParameterizedAttribute[T]) Name() string { return a.name }

func (a ParameterizedAttribute[T]) Kind() ValueKind { return a.kind }

// ParamKind is the kind of value the attribute expects as its parameter.
func (a ParameterizedAttribute[T]) ParamKind() ValueKind { return a.param }

// NewAttribute builds an untyped attribute for a name outside the catalog.
// Its value is returned as-is with no type check.
func NewAttribute(name string) Attribute[Value] {
	return Attribute[Value]{name: name, kind: KindAny}
}

// NewSettableAttribute is NewAttribute for values the caller intends to write.
func NewSettableAttribute(name string) Attribute[Value] {
	return Attribute[Value]{name: name, kind: KindAny, settable: true}
}

// Descriptor is the registry entry for a well-known attribute.
type Descriptor struct {
	Name          string    `json:"name"                    yaml:"name"`
	Kind          ValueKind `json:"kind"                    yaml:"kind"`
	Settable      bool      `json:"settable,omitempty"      yaml:"settable,omitempty"`
	Parameterized bool      `json:"parameterized,omitempty" yaml:"parameterized,omitempty"`
	Param         ValueKind `json:"param,omitempty"         yaml:"param,omitempty"`
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Descriptor{}
)

func define[T any](name string, kind ValueKind, settable bool) Attribute[T] {
	register(Descriptor{Name: name, Kind: kind, Settable: settable})
	return Attribute[T]{name: name, kind: kind, settable: settable}
}

func defineParameterized[T any](name string, kind, param ValueKind) ParameterizedAttribute[T] {
	register(Descriptor{Name: name, Kind: kind, Parameterized: true, Param: param})
	return ParameterizedAttribute[T]{name: name, kind: kind, param: param}
}

func register(d Descriptor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[d.Name] = d
}

// Lookup returns the descriptor of a well-known attribute. Ad-hoc attributes
// built with NewAttribute are never registered.
func Lookup(name string) (Descriptor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// Descriptors returns every well-known attribute sorted by name.
func Descriptors() []Descriptor {
	registryMu.RLock()
	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	registryMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AttributeFor returns an attribute that reads name with its registered kind,
// or an untyped attribute when the name is not in the catalog. Values are
// returned as Value either way.
func AttributeFor(name string) Attribute[Value] {
	if d, ok := Lookup(name); ok && !d.Parameterized {
		return Attribute[Value]{name: d.Name, kind: d.Kind, settable: d.Settable}
	}
	return NewAttribute(name)
}
