package ax

import (
	"fmt"
	"reflect"
	"strings"
)

// MatchRole matches nodes whose AXRole equals role.
func MatchRole(role string) Predicate {
	return matchString(Role, func(s string) bool { return s == role })
}

// MatchSubrole matches nodes whose AXSubrole equals subrole.
func MatchSubrole(subrole string) Predicate {
	return matchString(Subrole, func(s string) bool { return s == subrole })
}

// MatchTitle matches nodes whose AXTitle equals title.
func MatchTitle(title string) Predicate {
	return matchString(Title, func(s string) bool { return s == title })
}

// MatchTitleContains matches nodes whose AXTitle contains substr, ignoring case.
func MatchTitleContains(substr string) Predicate {
	substr = strings.ToLower(substr)
	return matchString(Title, func(s string) bool {
		return strings.Contains(strings.ToLower(s), substr)
	})
}

// MatchIdentifier matches nodes whose AXIdentifier equals id.
func MatchIdentifier(id string) Predicate {
	return matchString(Identifier, func(s string) bool { return s == id })
}

// MatchElement matches the node equal to target.
func MatchElement(target *Element) Predicate {
	return func(el *Element) bool { return el.Equal(target) }
}

// MatchAttribute matches nodes whose named attribute deep-equals want.
// Numbers are compared as float64.
func MatchAttribute(name string, want Value) Predicate {
	attr := NewAttribute(name)
	return func(el *Element) bool {
		v, err := el.Attribute(attr)
		if err != nil {
			return false
		}
		defer CloseValue(v)
		if w, ok := want.(*Element); ok {
			got, ok := v.(*Element)
			return ok && got.Equal(w)
		}
		return reflect.DeepEqual(v, want)
	}
}

// MatchAttributeText matches nodes whose named attribute, formatted with
// fmt.Sprint, equals text. It suits values typed on a command line.
func MatchAttributeText(name, text string) Predicate {
	attr := NewAttribute(name)
	return func(el *Element) bool {
		v, err := el.Attribute(attr)
		if err != nil {
			return false
		}
		defer CloseValue(v)
		return fmt.Sprint(v) == text
	}
}

// All matches when every predicate matches. All() matches everything.
func All(preds ...Predicate) Predicate {
	return func(el *Element) bool {
		for _, p := range preds {
			if !p(el) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one predicate matches.
func Any(preds ...Predicate) Predicate {
	return func(el *Element) bool {
		for _, p := range preds {
			if p(el) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(el *Element) bool { return !p(el) }
}

func matchString(attr Attribute[string], ok func(string) bool) Predicate {
	return func(el *Element) bool {
		s, err := Get(el, attr)
		return err == nil && ok(s)
	}
}
