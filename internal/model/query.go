package model

import (
	"fmt"
	"strings"

	"github.com/mj1618/accessibility/internal/ax"
)

// Query describes an element to search for. Every non-empty field must match.
type Query struct {
	Role          string            `yaml:"role,omitempty"           json:"role,omitempty"`           // Compact code (btn) or raw role (AXButton)
	Subrole       string            `yaml:"subrole,omitempty"        json:"subrole,omitempty"`        // Raw subrole
	Title         string            `yaml:"title,omitempty"          json:"title,omitempty"`          // Exact title
	TitleContains string            `yaml:"title_contains,omitempty" json:"title_contains,omitempty"` // Case-insensitive title substring
	Text          string            `yaml:"text,omitempty"           json:"text,omitempty"`           // Substring of title, value, description or identifier
	Identifier    string            `yaml:"identifier,omitempty"     json:"identifier,omitempty"`     // Exact identifier
	Attributes    map[string]string `yaml:"attributes,omitempty"     json:"attributes,omitempty"`     // Attribute name -> formatted value
}

// Empty reports whether q constrains nothing.
func (q Query) Empty() bool {
	return q.Role == "" && q.Subrole == "" && q.Title == "" && q.TitleContains == "" &&
		q.Text == "" && q.Identifier == "" && len(q.Attributes) == 0
}

// Predicate builds the finder predicate for q. An empty query matches the
// first node visited, which is the search root.
func (q Query) Predicate() ax.Predicate {
	var preds []ax.Predicate
	if q.Role != "" {
		preds = append(preds, matchRoleCode(q.Role))
	}
	if q.Subrole != "" {
		preds = append(preds, ax.MatchSubrole(q.Subrole))
	}
	if q.Title != "" {
		preds = append(preds, ax.MatchTitle(q.Title))
	}
	if q.TitleContains != "" {
		preds = append(preds, ax.MatchTitleContains(q.TitleContains))
	}
	if q.Identifier != "" {
		preds = append(preds, ax.MatchIdentifier(q.Identifier))
	}
	if q.Text != "" {
		preds = append(preds, matchText(q.Text))
	}
	for name, want := range q.Attributes {
		preds = append(preds, ax.MatchAttributeText(name, want))
	}
	return ax.All(preds...)
}

// matchRoleCode accepts raw roles as-is and compact codes through the role map.
func matchRoleCode(role string) ax.Predicate {
	if strings.HasPrefix(role, "AX") {
		return ax.MatchRole(role)
	}
	return func(el *ax.Element) bool {
		raw, err := el.Role()
		if err != nil {
			return false
		}
		sub, _ := el.Subrole()
		return MapRoleWithSubrole(raw, sub) == role || MapRole(raw) == role
	}
}

func matchText(text string) ax.Predicate {
	textLower := strings.ToLower(text)
	return func(el *ax.Element) bool {
		var n Element
		n.Title, _ = el.Title()
		n.Description, _ = el.Description()
		n.Identifier, _ = el.Identifier()
		if v, err := el.Value(); err == nil {
			n.Value = FormatValue(v)
			ax.CloseValue(v)
		}
		return textMatchesElement(n, textLower)
	}
}

// ParseAttributeFilters parses name=value pairs.
func ParseAttributeFilters(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid attribute filter %q: expected NAME=VALUE", p)
		}
		out[name] = value
	}
	return out, nil
}
