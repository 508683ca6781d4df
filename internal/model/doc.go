// Package model defines the canonical menu-tree data model: MenuNode,
// FlatItem, and the Checked tristate, plus the invariants the Tree Builder
// and Flattener must uphold when constructing them.
package model
