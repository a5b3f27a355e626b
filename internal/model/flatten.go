package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID          int      `yaml:"i"             json:"i"`
	Role        string   `yaml:"r"             json:"r"`
	AXRole      string   `yaml:"ar,omitempty"  json:"ar,omitempty"`
	Subrole     string   `yaml:"sr,omitempty"  json:"sr,omitempty"`
	Title       string   `yaml:"t,omitempty"   json:"t,omitempty"`
	Value       string   `yaml:"v,omitempty"   json:"v,omitempty"`
	Description string   `yaml:"d,omitempty"   json:"d,omitempty"`
	Identifier  string   `yaml:"id,omitempty"  json:"id,omitempty"`
	Bounds      [4]int   `yaml:"b,flow"        json:"b"`
	Focused     bool     `yaml:"f,omitempty"   json:"f,omitempty"`
	Enabled     *bool    `yaml:"e,omitempty"   json:"e,omitempty"`
	Actions     []string `yaml:"a,omitempty"   json:"a,omitempty"`
	Error       string   `yaml:"err,omitempty" json:"err,omitempty"`
	Path        string   `yaml:"p,omitempty"   json:"p,omitempty"`
}

// FlattenElements converts a tree of elements into a flat list.
// Each element gets a path string showing its location in the tree
// using abbreviated role names joined with " > ".
func FlattenElements(elements []Element) []FlatElement {
	var result []FlatElement
	for _, el := range elements {
		flattenRecursive(el, "", &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	currentPath := el.Role
	if parentPath != "" {
		currentPath = parentPath + " > " + el.Role
	}

	*result = append(*result, FlatElement{
		ID:          el.ID,
		Role:        el.Role,
		AXRole:      el.AXRole,
		Subrole:     el.Subrole,
		Title:       el.Title,
		Value:       el.Value,
		Description: el.Description,
		Identifier:  el.Identifier,
		Bounds:      el.Bounds,
		Focused:     el.Focused,
		Enabled:     el.Enabled,
		Actions:     el.Actions,
		Error:       el.Error,
		Path:        currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}
