package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/oleksiiluchnikov/menucli/internal/model"
	"github.com/oleksiiluchnikov/menucli/internal/output"
)

func sampleItems() []model.FlatItem {
	newWindow := model.NewFlatItem("File::New Window", &model.MenuNode{Title: "New Window", Role: model.RoleMenuItem, Enabled: true, Shortcut: "⌘N"})
	closeItem := model.NewFlatItem("File::Close", &model.MenuNode{Title: "Close", Role: model.RoleMenuItem, Enabled: true, Shortcut: "⌘W"})

	return []model.FlatItem{newWindow, closeItem}
}

// TestRenderJSONMatchesScenarioOne reproduces scenario 1's expected JSON
// shape: an array of two items with the given paths and shortcuts.
func TestRenderJSONMatchesScenarioOne(t *testing.T) {
	var buf bytes.Buffer

	err := output.Render(&buf, sampleItems(), output.Options{Format: output.FormatJSON})
	assert.NoError(t, err)

	var decoded []map[string]string
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, "File::New Window", decoded[0]["path"])
	assert.Equal(t, "⌘N", decoded[0]["shortcut"])
	assert.Equal(t, "File::Close", decoded[1]["path"])
	assert.Equal(t, "⌘W", decoded[1]["shortcut"])
}

func TestRenderPathFormat(t *testing.T) {
	var buf bytes.Buffer

	err := output.Render(&buf, sampleItems(), output.Options{Format: output.FormatPath})
	assert.NoError(t, err)
	assert.Equal(t, "File::New Window\nFile::Close\n", buf.String())
}

func TestRenderUnknownFieldsAreDropped(t *testing.T) {
	var buf bytes.Buffer

	err := output.Render(&buf, sampleItems(), output.Options{
		Format: output.FormatCompact,
		Fields: []string{"path", "bogus_field"},
	})
	assert.NoError(t, err)

	var decoded []map[string]string
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	for _, rec := range decoded {
		_, hasBogus := rec["bogus_field"]
		assert.False(t, hasBogus)
		_, hasPath := rec["path"]
		assert.True(t, hasPath)
	}
}

func TestItemIDIsStableAndDeterministic(t *testing.T) {
	items := sampleItems()

	first := output.ItemID(items[0])
	second := output.ItemID(items[0])

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, output.ItemID(items[1]))
}
