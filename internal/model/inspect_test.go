package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/ax/axtest"
)

func TestInspect(t *testing.T) {
	tree := axtest.New()
	n := tree.NewNode(ax.RoleButton).
		Set("AXTitle", "OK").
		Set("AXPosition", ax.Point{X: 1, Y: 2}).
		Fail("AXHelp", ax.ErrorCannotComplete)
	n.Attrs["AXHelp"] = "unused"
	n.Settable["AXPosition"] = true
	n.Actions[ax.ActionPress] = "press the button"
	el := tree.Element(n)
	defer el.Close()

	insp, err := Inspect(el)
	require.NoError(t, err)
	assert.Equal(t, "btn", insp.Element.Role)
	assert.Equal(t, []ActionInfo{{Name: ax.ActionPress, Description: "press the button"}}, insp.Actions)

	byName := map[string]AttributeInfo{}
	for _, a := range insp.Attributes {
		byName[a.Name] = a
	}
	assert.Equal(t, AttributeInfo{Name: "AXPosition", Kind: ax.KindPoint, Settable: true, Value: ax.Point{X: 1, Y: 2}}, byName["AXPosition"])
	assert.Equal(t, ax.KindString, byName["AXTitle"].Kind)
	assert.Equal(t, "OK", byName["AXTitle"].Value)
	assert.Contains(t, byName["AXHelp"].Error, "cannot complete")
	assert.Equal(t, ax.KindElementArray, byName["AXChildren"].Kind)
	assert.Equal(t, 1, tree.Live())
}

func TestSetFromText(t *testing.T) {
	tree := axtest.New()
	n := tree.NewNode(ax.RoleSlider).Set("AXValue", 0.5).Set("AXPosition", ax.Point{})
	n.Settable["AXValue"] = true
	n.Settable["AXPosition"] = true
	el := tree.Element(n)
	defer el.Close()

	v, err := SetFromText(el, "AXValue", "0.75")
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)
	assert.Equal(t, 0.75, n.Get("AXValue"))

	_, err = SetFromText(el, "AXPosition", "10, 20")
	require.NoError(t, err)
	assert.Equal(t, ax.Point{X: 10, Y: 20}, n.Get("AXPosition"))

	_, err = SetFromText(el, "AXPosition", "10")
	assert.Error(t, err)

	_, err = SetFromText(el, "AXTitle", "nope")
	assert.ErrorIs(t, err, ax.ErrorAttributeUnsupported)
}
