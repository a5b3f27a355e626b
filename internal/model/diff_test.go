package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	prev := FlattenElements([]Element{{
		ID: 1, Role: "window", Title: "Main",
		Children: []Element{
			{ID: 2, Role: "input", Identifier: "name", Value: "a"},
			{ID: 3, Role: "btn", Title: "Old"},
			{ID: 4, Role: "txt", Title: "Static"},
		},
	}})
	off := false
	curr := FlattenElements([]Element{{
		ID: 1, Role: "window", Title: "Main",
		Children: []Element{
			{ID: 2, Role: "btn", Title: "New"},
			{ID: 3, Role: "input", Identifier: "name", Value: "ab", Enabled: &off},
			{ID: 4, Role: "txt", Title: "Static"},
		},
	}})

	d := Diff(prev, curr)
	require.Len(t, d.Added, 1)
	assert.Equal(t, "New", d.Added[0].Title)
	require.Len(t, d.Removed, 1)
	assert.Equal(t, "Old", d.Removed[0].Title)
	require.Len(t, d.Changed, 1)
	assert.Equal(t, [2]string{"a", "ab"}, d.Changed[0].Changes["v"])
	assert.Equal(t, [2]string{"true", "false"}, d.Changed[0].Changes["e"])
	assert.Equal(t, 2, d.UnchangedCount)
	assert.False(t, d.Empty())

	assert.True(t, Diff(curr, curr).Empty())
}

func TestElementHashIgnoresID(t *testing.T) {
	a := FlatElement{ID: 1, Role: "btn", Title: "OK", Path: "window > btn"}
	b := a
	b.ID = 9
	b.Value = "changed"
	assert.Equal(t, ElementHash(a), ElementHash(b))

	b.Path = "window > group > btn"
	assert.NotEqual(t, ElementHash(a), ElementHash(b))
}
