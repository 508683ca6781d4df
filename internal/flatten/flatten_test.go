package flatten_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/oleksiiluchnikov/menucli/internal/flatten"
	"github.com/oleksiiluchnikov/menucli/internal/model"
)

// buildSample constructs the tree from scenario 1: a menu bar with one
// top-level menu "File" containing "New Window" (⌘N), a separator, and
// "Close" (⌘W).
func buildSample() *model.MenuNode {
	newWindow := &model.MenuNode{Title: "New Window", Role: model.RoleMenuItem, Enabled: true, Shortcut: "⌘N"}
	separator := &model.MenuNode{Role: model.RoleSeparator}
	closeItem := &model.MenuNode{Title: "Close", Role: model.RoleMenuItem, Enabled: true, Shortcut: "⌘W"}

	fileMenu := &model.MenuNode{
		Role:     model.RoleMenu,
		Children: []*model.MenuNode{newWindow, separator, closeItem},
	}

	file := &model.MenuNode{
		Title:    "File",
		Role:     model.RoleMenuBarItem,
		Children: []*model.MenuNode{fileMenu},
	}

	return &model.MenuNode{
		Role:     model.RoleMenuBar,
		Children: []*model.MenuNode{file},
	}
}

func TestFlattenProducesExpectedPaths(t *testing.T) {
	items := flatten.Flatten(buildSample())

	var paths []string
	for _, item := range items {
		paths = append(paths, item.Path)
	}

	assert.Contains(t, paths, "File")
	assert.Contains(t, paths, "File::New Window")
	assert.Contains(t, paths, "File::Close")
	assert.NotContains(t, paths, "File::---")
}

func TestFlattenPreservesShortcutsAndOrder(t *testing.T) {
	items := flatten.Flatten(buildSample())

	var newWindow, closeItem model.FlatItem
	for _, item := range items {
		switch item.Path {
		case "File::New Window":
			newWindow = item
		case "File::Close":
			closeItem = item
		}
	}

	assert.Equal(t, "⌘N", newWindow.Shortcut)
	assert.Equal(t, "⌘W", closeItem.Shortcut)

	var paths []string
	for _, item := range items {
		paths = append(paths, item.Path)
	}

	assert.Equal(t, []string{"File", "File::New Window", "File::Close"}, paths)
}

func TestFlattenSkipsSeparators(t *testing.T) {
	items := flatten.Flatten(buildSample())

	for _, item := range items {
		assert.NotEqual(t, model.RoleSeparator, item.Role)
	}
}
