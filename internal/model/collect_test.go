package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/ax/axtest"
)

func sampleTree(tree *axtest.Tree) *axtest.Node {
	ok := tree.NewNode(ax.RoleButton).
		Set("AXTitle", "OK").
		Set("AXFrame", ax.Rect{Origin: ax.Point{X: 10, Y: 20}, Size: ax.Size{Width: 80, Height: 24}}).
		Set("AXEnabled", false)
	ok.Actions[ax.ActionPress] = "press"
	field := tree.NewNode(ax.RoleTextField).
		Set("AXValue", "hello").
		Set("AXFocused", true).
		Set("AXPosition", ax.Point{X: 5, Y: 6}).
		Set("AXSize", ax.Size{Width: 100, Height: 20})
	level := tree.NewNode(ax.RoleLevelIndicator).Set("AXValue", 3)
	return tree.NewNode(ax.RoleWindow, ok, tree.NewNode(ax.RoleGroup, field, level)).Set("AXTitle", "Main")
}

func TestSnapshot(t *testing.T) {
	tree := axtest.New()
	root := tree.Element(sampleTree(tree))
	defer root.Close()

	snap := Snapshot(root, CollectOptions{Actions: true})
	require.NotNil(t, snap)

	assert.Equal(t, 1, snap.ID)
	assert.Equal(t, "window", snap.Role)
	assert.Equal(t, "Main", snap.Title)
	assert.Equal(t, 5, snap.Count())
	require.Len(t, snap.Children, 2)

	btn := snap.Children[0]
	assert.Equal(t, 2, btn.ID)
	assert.Equal(t, "btn", btn.Role)
	assert.Equal(t, [4]int{10, 20, 80, 24}, btn.Bounds)
	require.NotNil(t, btn.Enabled)
	assert.False(t, *btn.Enabled)
	assert.Equal(t, []string{ax.ActionPress}, btn.Actions)

	group := snap.Children[1]
	require.Len(t, group.Children, 2)
	field := group.Children[0]
	assert.Equal(t, "input", field.Role)
	assert.Equal(t, "hello", field.Value)
	assert.True(t, field.Focused)
	assert.Nil(t, field.Enabled)
	assert.Equal(t, [4]int{5, 6, 100, 20}, field.Bounds)

	level := group.Children[1]
	assert.Equal(t, "other", level.Role)
	assert.Equal(t, ax.RoleLevelIndicator, level.AXRole)
	assert.Equal(t, "3", level.Value)
	assert.Equal(t, 5, level.ID)

	assert.Equal(t, 1, tree.Live())
}

func TestSnapshotDepthAndLimit(t *testing.T) {
	tree := axtest.New()
	root := tree.Element(sampleTree(tree))
	defer root.Close()

	snap := Snapshot(root, CollectOptions{Depth: 2})
	assert.Equal(t, 3, snap.Count())

	snap = Snapshot(root, CollectOptions{Limit: 2})
	assert.Equal(t, 2, snap.Count())
	assert.Equal(t, 1, tree.Live())
}

func TestSnapshotRecordsChildrenError(t *testing.T) {
	tree := axtest.New()
	broken := tree.NewNode(ax.RoleGroup).Fail("AXChildren", ax.ErrorCannotComplete)
	root := tree.Element(tree.NewNode(ax.RoleWindow, broken))
	defer root.Close()

	snap := Snapshot(root, CollectOptions{})
	require.Len(t, snap.Children, 1)
	assert.Contains(t, snap.Children[0].Error, "cannot complete")
	assert.Empty(t, snap.Error)
}

func TestSnapshotStopsAtCycles(t *testing.T) {
	tree := axtest.New()
	loop := tree.NewNode(ax.RoleGroup).Set("AXTitle", "loop")
	loop.AddChild(loop)
	window := tree.NewNode(ax.RoleWindow, loop)
	root := tree.Element(window)
	defer root.Close()

	snap := Snapshot(root, CollectOptions{})
	require.NotNil(t, snap)
	assert.Equal(t, 3, snap.Count())

	group := snap.Children[0]
	assert.Empty(t, group.Error)
	require.Len(t, group.Children, 1)
	assert.Equal(t, "loop", group.Children[0].Title)
	assert.Contains(t, group.Children[0].Error, "cycle")
	assert.Empty(t, group.Children[0].Children)
	assert.Equal(t, 1, tree.Live())
}

func TestSnapshotDefaultDepth(t *testing.T) {
	tree := axtest.New()
	root := tree.Element(tree.Chain(ax.DefaultMaxDepth + 20))
	defer root.Close()

	snap := Snapshot(root, CollectOptions{})
	require.NotNil(t, snap)
	assert.Equal(t, ax.DefaultMaxDepth, snap.Count())
}

func TestFormatValue(t *testing.T) {
	tree := axtest.New()
	el := tree.Element(tree.NewNode(ax.RoleButton).Set("AXTitle", "Go"))
	defer el.Close()

	tests := []struct {
		v    ax.Value
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{true, "true"},
		{1.5, "1.5"},
		{float64(3), "3"},
		{ax.Point{X: 1, Y: 2}, "(1, 2)"},
		{ax.Size{Width: 3, Height: 4}, "3x4"},
		{ax.Rect{Origin: ax.Point{X: 1, Y: 2}, Size: ax.Size{Width: 3, Height: 4}}, "(1, 2) 3x4"},
		{ax.Range{Location: 2, Length: 5}, "[2+5]"},
		{ax.URL("https://example.com"), "https://example.com"},
		{ax.Opaque{TypeName: "AXTextMarker"}, "<AXTextMarker>"},
		{el, `AXButton "Go"`},
		{[]ax.Value{"a", 1.0}, "[a, 1]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.v))
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind ax.ValueKind
		text string
		want ax.Value
	}{
		{ax.KindBool, "true", true},
		{ax.KindNumber, "2.5", 2.5},
		{ax.KindString, "hi", "hi"},
		{ax.KindURL, "file:///tmp", ax.URL("file:///tmp")},
		{ax.KindPoint, "10, 20", ax.Point{X: 10, Y: 20}},
		{ax.KindSize, "300,200", ax.Size{Width: 300, Height: 200}},
		{ax.KindRect, "1,2,3,4", ax.Rect{Origin: ax.Point{X: 1, Y: 2}, Size: ax.Size{Width: 3, Height: 4}}},
		{ax.KindRange, "0,5", ax.Range{Location: 0, Length: 5}},
		{ax.KindAny, "false", false},
		{ax.KindAny, "1", 1.0},
		{ax.KindAny, "plain", "plain"},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.kind, tt.text)
		require.NoError(t, err, "%s %q", tt.kind, tt.text)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseValue(ax.KindPoint, "1")
	assert.Error(t, err)
	_, err = ParseValue(ax.KindElement, "x")
	assert.Error(t, err)
}

func TestPlainValue(t *testing.T) {
	assert.Equal(t, "https://x", PlainValue(ax.URL("https://x")))
	assert.Equal(t, []any{"a", true}, PlainValue([]ax.Value{"a", true}))
	assert.Equal(t, ax.Point{X: 1}, PlainValue(ax.Point{X: 1}))
}
