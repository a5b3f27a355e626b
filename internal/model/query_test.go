package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/ax/axtest"
)

func findTitle(t *testing.T, q Query) string {
	t.Helper()
	tree := axtest.New()
	root := tree.Element(sampleTree(tree))
	defer root.Close()

	f := ax.NewFinder(root, q.Predicate())
	defer f.Close()
	el, err := f.Find(context.Background())
	if err != nil {
		return "error: " + err.Error()
	}
	role, _ := el.Role()
	title, _ := el.Title()
	return role + " " + title
}

func TestQueryPredicate(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{"empty matches root", Query{}, "AXWindow Main"},
		{"compact role", Query{Role: "btn"}, "AXButton OK"},
		{"raw role", Query{Role: ax.RoleTextField}, "AXTextField "},
		{"title", Query{Title: "OK"}, "AXButton OK"},
		{"title contains", Query{TitleContains: "mai"}, "AXWindow Main"},
		{"text matches value", Query{Text: "HELL"}, "AXTextField "},
		{"attribute", Query{Attributes: map[string]string{"AXFocused": "true"}}, "AXTextField "},
		{"conjunction", Query{Role: "btn", Title: "Main"}, "error: " + ax.ErrNotFound.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findTitle(t, tt.query))
		})
	}
}

func TestQueryEmpty(t *testing.T) {
	assert.True(t, Query{}.Empty())
	assert.False(t, Query{Text: "x"}.Empty())
	assert.False(t, Query{Attributes: map[string]string{"AXEnabled": "true"}}.Empty())
}

func TestParseAttributeFilters(t *testing.T) {
	got, err := ParseAttributeFilters([]string{"AXEnabled=false", "AXValue=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"AXEnabled": "false", "AXValue": "a=b"}, got)

	got, err = ParseAttributeFilters(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseAttributeFilters([]string{"AXEnabled"})
	assert.Error(t, err)
	_, err = ParseAttributeFilters([]string{"=x"})
	assert.Error(t, err)
}
