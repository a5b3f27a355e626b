package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/ax/axtest"
)

// calculatorWindow mirrors what Snapshot returns for a small Calculator window.
// AXRole is only kept for roles without a short name.
func calculatorWindow() []Element {
	enabled := false
	return []Element{{
		ID: 1, Role: "window", Title: "Calculator",
		Bounds: [4]int{400, 200, 230, 320},
		Children: []Element{
			{
				ID: 2, Role: "group", Identifier: "keypad",
				Children: []Element{
					{ID: 3, Role: "btn", Identifier: "seven", Title: "7", Enabled: &enabled, Actions: []string{ax.ActionPress}},
					{ID: 4, Role: "other", AXRole: "AXLevelIndicator", Error: "accessibility error -25204: cannot complete"},
				},
			},
			{ID: 5, Role: "txt", Subrole: "AXDisplay", Identifier: "display", Value: "0"},
		},
	}}
}

func TestFlattenElements(t *testing.T) {
	flat := FlattenElements(calculatorWindow())
	require.Len(t, flat, 5)

	tests := []struct {
		id         int
		axRole     string
		identifier string
		path       string
	}{
		{1, "", "", "window"},
		{2, "", "keypad", "window > group"},
		{3, "", "seven", "window > group > btn"},
		{4, "AXLevelIndicator", "", "window > group > other"},
		{5, "", "display", "window > txt"},
	}
	for i, tt := range tests {
		el := flat[i]
		assert.Equal(t, tt.id, el.ID, "position %d", i)
		assert.Equal(t, tt.axRole, el.AXRole, "id %d", tt.id)
		assert.Equal(t, tt.identifier, el.Identifier, "id %d", tt.id)
		assert.Equal(t, tt.path, el.Path, "id %d", tt.id)
	}
}

func TestFlattenElementsCarriesDetail(t *testing.T) {
	flat := FlattenElements(calculatorWindow())
	require.Len(t, flat, 5)

	seven := flat[2]
	require.NotNil(t, seven.Enabled)
	assert.False(t, *seven.Enabled)
	assert.Equal(t, []string{ax.ActionPress}, seven.Actions)
	assert.Empty(t, seven.Error)

	indicator := flat[3]
	assert.Contains(t, indicator.Error, "-25204")

	display := flat[4]
	assert.Equal(t, "AXDisplay", display.Subrole)
	assert.Equal(t, "0", display.Value)
	assert.Equal(t, [4]int{400, 200, 230, 320}, flat[0].Bounds)
}

func TestFlattenElementsEmpty(t *testing.T) {
	assert.Empty(t, FlattenElements(nil))
	assert.Empty(t, FlattenElements([]Element{}))
}

func TestFlattenSnapshotKeepsCycleError(t *testing.T) {
	tree := axtest.New()
	loop := tree.NewNode(ax.RoleGroup).Set("AXIdentifier", "loop")
	loop.AddChild(loop)
	root := tree.Element(tree.NewNode(ax.RoleWindow, loop))
	defer root.Close()

	snap := Snapshot(root, CollectOptions{})
	require.NotNil(t, snap)
	flat := FlattenElements([]Element{*snap})
	require.Len(t, flat, 3)

	leaf := flat[2]
	assert.Equal(t, flat[1].Role, leaf.Role)
	assert.Equal(t, "loop", leaf.Identifier)
	assert.Contains(t, leaf.Error, "cycle")
	assert.Equal(t, flat[1].Path+" > "+leaf.Role, leaf.Path)
}
