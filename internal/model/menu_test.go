package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/oleksiiluchnikov/menucli/internal/model"
)

func TestCheckedString(t *testing.T) {
	assert.Equal(t, "checked", model.CheckedChecked.String())
	assert.Equal(t, "unchecked", model.CheckedUnchecked.String())
	assert.Equal(t, "mixed", model.CheckedMixed.String())
	assert.Equal(t, "unknown", model.CheckedUnknown.String())
}

func TestCheckedMarshalJSON(t *testing.T) {
	b, err := json.Marshal(model.CheckedChecked)

	assert.NoError(t, err)
	assert.Equal(t, `"checked"`, string(b))
}

func TestHasSubmenu(t *testing.T) {
	leaf := &model.MenuNode{Title: "New Window", Role: model.RoleMenuItem}
	withSubmenu := &model.MenuNode{
		Title: "File",
		Role:  model.RoleMenuBarItem,
		Children: []*model.MenuNode{
			{Role: model.RoleMenu, Children: []*model.MenuNode{leaf}},
		},
	}

	assert.False(t, leaf.HasSubmenu())
	assert.True(t, withSubmenu.HasSubmenu())
}

func TestIsSeparator(t *testing.T) {
	sep := &model.MenuNode{Role: model.RoleSeparator}
	item := &model.MenuNode{Role: model.RoleMenuItem}

	assert.True(t, sep.IsSeparator())
	assert.False(t, item.IsSeparator())
}

func TestNewFlatItemRetainsNode(t *testing.T) {
	node := &model.MenuNode{Title: "Save", Role: model.RoleMenuItem, Enabled: true}

	item := model.NewFlatItem("File"+model.PathSeparator+"Save", node)

	assert.Equal(t, "File::Save", item.Path)
	assert.Equal(t, "Save", item.Title)
	assert.True(t, item.Enabled)
	assert.Same(t, node, item.Node())
}
