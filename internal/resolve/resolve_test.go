package resolve_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/oleksiiluchnikov/menucli/internal/model"
	"github.com/oleksiiluchnikov/menucli/internal/resolve"
)

func item(path string, enabled bool) model.FlatItem {
	node := &model.MenuNode{Title: leafOf(path), Role: model.RoleMenuItem, Enabled: enabled}

	return model.NewFlatItem(path, node)
}

func leafOf(path string) string {
	idx := strings.LastIndex(path, model.PathSeparator)
	if idx < 0 {
		return path
	}

	return path[idx+len(model.PathSeparator):]
}

func TestResolveExactMode(t *testing.T) {
	items := []model.FlatItem{
		item("File::Save", true),
		item("File::Save As…", true),
	}

	got, err := resolve.Resolve(items, "File::Save", resolve.Options{Exact: true})

	assert.NoError(t, err)
	assert.Equal(t, "File::Save", got.Path)
}

func TestResolveExactModeNotFound(t *testing.T) {
	items := []model.FlatItem{item("File::Save", true)}

	_, err := resolve.Resolve(items, "File::Nope", resolve.Options{Exact: true})

	assert.Error(t, err)
}

func TestResolveExactModeAmbiguousOnDuplicates(t *testing.T) {
	items := []model.FlatItem{item("File::Save", true), item("File::Save", true)}

	_, err := resolve.Resolve(items, "File::Save", resolve.Options{Exact: true})

	assert.Error(t, err)
}

// TestFuzzyRanksShorterPrefixHigher reproduces scenario 5: when both
// "Save" and "Save As…" exist, a "save" query ranks "Save" above "Save As…"
// because it is a prefix match over a shorter path.
func TestFuzzyRanksShorterPrefixHigher(t *testing.T) {
	items := []model.FlatItem{
		item("File::Save As…", true),
		item("File::Save", true),
	}

	candidates := resolve.Search(items, "save", resolve.Options{Limit: 3})

	assert.Len(t, candidates, 2)
	assert.Equal(t, "File::Save", candidates[0].Item.Path)
}

func TestFuzzyEnabledOnlyFilter(t *testing.T) {
	items := []model.FlatItem{
		item("File::Save", false),
		item("File::Save As…", true),
	}

	candidates := resolve.Search(items, "save", resolve.Options{EnabledOnly: true})

	assert.Len(t, candidates, 1)
	assert.Equal(t, "File::Save As…", candidates[0].Item.Path)
}

func TestFuzzyNoMatchIsEmpty(t *testing.T) {
	items := []model.FlatItem{item("File::Save", true)}

	candidates := resolve.Search(items, "zzz", resolve.Options{})

	assert.Empty(t, candidates)
}

func TestResolveExactAndFuzzyAgreeOnUniqueMatch(t *testing.T) {
	items := []model.FlatItem{
		item("File::Save", true),
		item("Edit::Undo", true),
	}

	exact, err := resolve.Resolve(items, "File::Save", resolve.Options{Exact: true})
	assert.NoError(t, err)

	fuzzy, err := resolve.Resolve(items, "File::Save", resolve.Options{})
	assert.NoError(t, err)

	assert.Equal(t, exact.Path, fuzzy.Path)
}
