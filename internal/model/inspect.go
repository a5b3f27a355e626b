package model

import (
	"fmt"

	"github.com/mj1618/accessibility/internal/ax"
)

// AttributeInfo is one attribute of a node with its current value.
type AttributeInfo struct {
	Name     string       `yaml:"name"               json:"name"`
	Kind     ax.ValueKind `yaml:"kind"               json:"kind"`
	Settable bool         `yaml:"settable,omitempty" json:"settable,omitempty"`
	Value    any          `yaml:"value,omitempty"    json:"value,omitempty"`
	Error    string       `yaml:"error,omitempty"    json:"error,omitempty"`
}

// ActionInfo is one action a node supports.
type ActionInfo struct {
	Name        string `yaml:"name"                  json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Inspection is everything a node reports about itself.
type Inspection struct {
	Element       Element         `yaml:"element"                 json:"element"`
	Attributes    []AttributeInfo `yaml:"attributes"              json:"attributes"`
	Parameterized []string        `yaml:"parameterized,omitempty" json:"parameterized,omitempty"`
	Actions       []ActionInfo    `yaml:"actions,omitempty"       json:"actions,omitempty"`
}

// Inspect reads every attribute the node advertises. Per-attribute failures
// are recorded in AttributeInfo.Error; only a failure to list names is returned.
func Inspect(el *ax.Element) (Inspection, error) {
	names, err := el.AttributeNames()
	if err != nil {
		return Inspection{}, err
	}
	insp := Inspection{
		Element:    Describe(el, false),
		Attributes: make([]AttributeInfo, 0, len(names)),
	}
	for _, name := range names {
		insp.Attributes = append(insp.Attributes, inspectAttribute(el, name))
	}
	insp.Parameterized, _ = el.ParameterizedAttributeNames()

	actions, _ := el.ActionNames()
	for _, name := range actions {
		desc, _ := el.ActionDescription(name)
		insp.Actions = append(insp.Actions, ActionInfo{Name: name, Description: desc})
	}
	return insp, nil
}

func inspectAttribute(el *ax.Element, name string) AttributeInfo {
	attr := ax.AttributeFor(name)
	info := AttributeInfo{Name: name, Kind: attr.Kind()}
	info.Settable, _ = el.IsSettable(name)

	v, err := el.Attribute(attr)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	defer ax.CloseValue(v)
	if info.Kind == ax.KindAny {
		info.Kind = ax.KindOf(v)
	}
	info.Value = PlainValue(v)
	return info
}

// SetFromText parses text according to the attribute's kind and writes it.
// Catalog attributes use their declared kind; others, and attributes of any
// kind such as AXValue, take the kind of their current value. It returns the
// value written.
func SetFromText(el *ax.Element, name, text string) (ax.Value, error) {
	attr := ax.AttributeFor(name)
	kind := attr.Kind()
	if kind == ax.KindAny {
		if cur, err := el.Attribute(attr); err == nil {
			kind = ax.KindOf(cur)
			ax.CloseValue(cur)
		}
	}
	v, err := ParseValue(kind, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := el.SetAttribute(attr, v); err != nil {
		return nil, err
	}
	return v, nil
}
