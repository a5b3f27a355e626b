package model

// Element is a serializable snapshot of one accessibility node.
type Element struct {
	ID          int       `yaml:"i"              json:"i"`             // Pre-order index within the snapshot
	Role        string    `yaml:"r"              json:"r"`             // Compact role code
	AXRole      string    `yaml:"ar,omitempty"   json:"ar,omitempty"`  // Raw role, only when Role is "other"
	Subrole     string    `yaml:"sr,omitempty"   json:"sr,omitempty"`  // Raw subrole
	Title       string    `yaml:"t,omitempty"    json:"t,omitempty"`   // Visible label / title
	Value       string    `yaml:"v,omitempty"    json:"v,omitempty"`   // Current value, formatted
	Description string    `yaml:"d,omitempty"    json:"d,omitempty"`   // Accessibility description
	Identifier  string    `yaml:"id,omitempty"   json:"id,omitempty"`  // Developer-assigned identifier
	Bounds      [4]int    `yaml:"b,flow"         json:"b"`             // [x, y, width, height]
	Focused     bool      `yaml:"f,omitempty"    json:"f,omitempty"`   // Has keyboard focus
	Enabled     *bool     `yaml:"e,omitempty"    json:"e,omitempty"`   // nil = enabled; false = disabled
	Actions     []string  `yaml:"a,omitempty"    json:"a,omitempty"`   // Available actions
	Error       string    `yaml:"err,omitempty"  json:"err,omitempty"` // Why children could not be read
	Children    []Element `yaml:"c,omitempty"    json:"c,omitempty"`   // Child elements
}

// App describes a running application.
type App struct {
	Name     string `yaml:"name"             json:"name"`
	PID      int    `yaml:"pid"              json:"pid"`
	BundleID string `yaml:"bundle,omitempty" json:"bundle,omitempty"`
	Active   bool   `yaml:"active,omitempty" json:"active,omitempty"`
}

// Count returns the number of elements in the tree rooted at el.
func (el Element) Count() int {
	n := 1
	for _, c := range el.Children {
		n += c.Count()
	}
	return n
}
