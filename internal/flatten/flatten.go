// Package flatten performs a pre-order walk, turning a MenuNode tree into
// a path-flattened list of FlatItem records.
package flatten

import (
	"strings"

	"github.com/oleksiiluchnikov/menucli/internal/model"
)

// Flatten walks tree in pre-order, pushing a path segment for every menu
// item with a non-empty title (menus and separators do not push), and
// emitting a FlatItem for every menu item including leaves.
func Flatten(root *model.MenuNode) []model.FlatItem {
	var items []model.FlatItem

	walk(root, nil, &items)

	return items
}

func walk(node *model.MenuNode, path []string, items *[]model.FlatItem) {
	if node == nil {
		return
	}

	isItem := node.Role == model.RoleMenuItem || node.Role == model.RoleMenuBarItem

	var nodePath []string
	if isItem && node.Title != "" {
		nodePath = append(append([]string{}, path...), node.Title)
	} else {
		nodePath = path
	}

	if isItem {
		*items = append(*items, model.NewFlatItem(strings.Join(nodePath, model.PathSeparator), node))
	}

	for _, child := range node.Children {
		if child.IsSeparator() {
			continue
		}

		if child.Role == model.RoleMenu {
			// The wrapper "AXMenu" node itself carries no title/path
			// segment; its children are this item's actual submenu items.
			for _, grandchild := range child.Children {
				walk(grandchild, nodePath, items)
			}

			continue
		}

		walk(child, nodePath, items)
	}
}
