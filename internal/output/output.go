// Package output projects FlatItem records into serializable forms: json,
// ndjson, compact, table, path, id, auto.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cespare/xxhash/v2"
	"github.com/oleksiiluchnikov/menucli/internal/model"
)

// Format selects one of the renderers named by the --output flag.
type Format string

const (
	FormatAuto    Format = "auto"
	FormatJSON    Format = "json"
	FormatNDJSON  Format = "ndjson"
	FormatCompact Format = "compact"
	FormatTable   Format = "table"
	FormatPath    Format = "path"
	FormatID      Format = "id"
)

// defaultFields is the projection used when Options.Fields is empty.
var defaultFields = []string{"path", "title", "role", "enabled", "checked", "shortcut"}

// Options configures a single render call.
type Options struct {
	Format   Format
	Fields   []string
	NoHeader bool
}

// record is a field-projected, order-preserving view of one FlatItem.
type record struct {
	keys   []string
	values map[string]string
}

// Render writes items to w per opts. An empty Fields list uses
// defaultFields; unknown field names are silently dropped.
func Render(w io.Writer, items []model.FlatItem, opts Options) error {
	format := opts.Format
	if format == "" || format == FormatAuto {
		format = FormatTable
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultFields
	}

	records := make([]record, 0, len(items))
	for _, item := range items {
		records = append(records, project(item, fields))
	}

	switch format {
	case FormatJSON:
		return renderJSON(w, records, false)
	case FormatNDJSON:
		return renderNDJSON(w, records)
	case FormatCompact:
		return renderJSON(w, records, true)
	case FormatTable:
		return renderTable(w, records, opts.NoHeader)
	case FormatPath:
		return renderScalar(w, items, func(i model.FlatItem) string { return i.Path })
	case FormatID:
		return renderScalar(w, items, ItemID)
	default:
		return renderTable(w, records, opts.NoHeader)
	}
}

// ItemID returns a stable identifier for item derived from its path, for
// the "id" output format — stable across renders within one invocation but
// not meant to survive the process exiting, since the tree it names does
// not either.
func ItemID(item model.FlatItem) string {
	return strconv.FormatUint(xxhash.Sum64String(item.Path), 16)
}

func project(item model.FlatItem, fields []string) record {
	all := map[string]string{
		"path":         item.Path,
		"title":        item.Title,
		"role":         item.Role,
		"enabled":      strconv.FormatBool(item.Enabled),
		"checked":      item.Checked.String(),
		"shortcut":     item.Shortcut,
		"alternate_of": item.AlternateOf,
		"is_alternate": strconv.FormatBool(item.IsAlternate),
		"app_name":     item.AppName,
		"app_pid":      strconv.Itoa(item.AppPID),
		"id":           ItemID(item),
	}

	rec := record{values: make(map[string]string, len(fields))}

	for _, f := range fields {
		f = strings.TrimSpace(f)

		val, ok := all[f]
		if !ok {
			continue
		}

		rec.keys = append(rec.keys, f)
		rec.values[f] = val
	}

	return rec
}

func renderJSON(w io.Writer, records []record, compact bool) error {
	payload := make([]map[string]string, len(records))
	for i, r := range records {
		payload[i] = r.values
	}

	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(payload)
}

func renderNDJSON(w io.Writer, records []record) error {
	enc := json.NewEncoder(w)

	for _, r := range records {
		if err := enc.Encode(r.values); err != nil {
			return err
		}
	}

	return nil
}

func renderTable(w io.Writer, records []record, noHeader bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if len(records) == 0 {
		return tw.Flush()
	}

	header := records[0].keys

	if !noHeader {
		fmt.Fprintln(tw, strings.Join(header, "\t"))
	}

	for _, r := range records {
		cols := make([]string, len(header))
		for i, key := range header {
			cols[i] = r.values[key]
		}

		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}

	return tw.Flush()
}

// WriteError emits the JSON error object contract when the active format is
// a JSON variant; callers writing text formats use a plain stderr line
// instead.
func WriteError(w io.Writer, format Format, kind, message string) error {
	if format != FormatJSON && format != FormatNDJSON && format != FormatCompact {
		_, err := fmt.Fprintf(w, "%s: %s\n", kind, message)

		return err
	}

	enc := json.NewEncoder(w)

	return enc.Encode(map[string]string{"error": kind, "message": message})
}

func renderScalar(w io.Writer, items []model.FlatItem, get func(model.FlatItem) string) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, get(item)); err != nil {
			return err
		}
	}

	return nil
}

// treeEntry is a serializable, cycle-free projection of a MenuNode: no
// Parent back-pointer and no internal Element handle, so it can be
// json.Marshal'd directly.
type treeEntry struct {
	Title       string        `json:"title"`
	Role        string        `json:"role"`
	Enabled     bool          `json:"enabled"`
	Checked     model.Checked `json:"checked"`
	Shortcut    string        `json:"shortcut,omitempty"`
	IsAlternate bool          `json:"is_alternate,omitempty"`
	AlternateOf string        `json:"alternate_of,omitempty"`
	Children    []treeEntry   `json:"children,omitempty"`
}

// RenderTree writes roots to w as a nested tree, honoring Format the same
// way Render does for flat lists: json/ndjson/compact marshal the
// treeEntry projection, and table/path/id/auto fall back to an indented
// text rendering since a flat column layout has no place for nesting.
func RenderTree(w io.Writer, roots []*model.MenuNode, opts Options) error {
	format := opts.Format
	if format == "" || format == FormatAuto {
		format = FormatTable
	}

	entries := make([]treeEntry, 0, len(roots))
	for _, root := range roots {
		entries = append(entries, projectTree(root))
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(entries)
	case FormatNDJSON:
		enc := json.NewEncoder(w)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}

		return nil
	case FormatCompact:
		return json.NewEncoder(w).Encode(entries)
	default:
		for _, e := range entries {
			renderTreeText(w, e, 0)
		}

		return nil
	}
}

// projectTree converts node into a treeEntry, unwrapping the AXMenu
// wrapper nodes the tree builder inserts so the projected tree shows only
// menu bar items, menu items, and separators — the shapes a caller of
// --tree actually wants to see.
func projectTree(node *model.MenuNode) treeEntry {
	if node == nil {
		return treeEntry{}
	}

	entry := treeEntry{
		Title:       node.Title,
		Role:        node.Role,
		Enabled:     node.Enabled,
		Checked:     node.Checked,
		Shortcut:    node.Shortcut,
		IsAlternate: node.IsAlternate,
		AlternateOf: node.AlternateOf,
	}

	for _, child := range node.Children {
		if child.Role == model.RoleMenu {
			for _, grandchild := range child.Children {
				entry.Children = append(entry.Children, projectTree(grandchild))
			}

			continue
		}

		entry.Children = append(entry.Children, projectTree(child))
	}

	return entry
}

func renderTreeText(w io.Writer, e treeEntry, depth int) {
	if e.Role != model.RoleSeparator {
		line := strings.Repeat("  ", depth) + e.Title
		if e.Shortcut != "" {
			line += "\t" + e.Shortcut
		}

		fmt.Fprintln(w, line)
	} else {
		fmt.Fprintln(w, strings.Repeat("  ", depth)+"---")
	}

	for _, child := range e.Children {
		renderTreeText(w, child, depth+1)
	}
}
