// Package shortcut canonicalizes AX menu-item shortcut attributes into
// human-readable glyph strings: modifier glyphs in the fixed order
// control-option-shift-command followed by the key glyph.
package shortcut

import "strings"

// AX-documented AXMenuItemCmdModifiers bit values (Carbon Menu Manager
// kMenu*Modifier constants).
const (
	ModNone      = 0
	ModShift     = 0x01
	ModOption    = 0x02
	ModControl   = 0x04
	ModNoCommand = 0x08
)

// Modifier glyphs, in the fixed display order they are rendered.
const (
	glyphControl = "⌃"
	glyphOption  = "⌥"
	glyphShift   = "⇧"
	glyphCommand = "⌘"
)

// specialKeyNames maps the non-letter shortcut_key glyphs the bridge can
// report to their canonical display names. The
// function/arrow/forward-delete values are AppKit's NSFunctionKey code
// points; the rest are the plain ASCII control characters AX uses for
// Return/Tab/Escape/Backspace.
var specialKeyNames = map[string]string{
	" ":        "Space",
	"\r":       "Return",
	"\t":       "Tab",
	"\x1b":     "Escape",
	"\x08":     "Delete",
	"":   "Delete",
	"":   "Up",
	"":   "Down",
	"":   "Left",
	"":   "Right",
	"":   "F1",
	"":   "F2",
	"":   "F3",
	"":   "F4",
	"":   "F5",
	"":   "F6",
	"":   "F7",
	"":   "F8",
	"":   "F9",
	"":   "F10",
	"":   "F11",
	"":   "F12",
}

// Canonicalize renders (key, mods) as the fixed-order glyph string.
// An empty key yields an empty string, meaning "no shortcut".
func Canonicalize(key string, mods int) string {
	if key == "" {
		return ""
	}

	var b strings.Builder

	if mods&ModControl != 0 {
		b.WriteString(glyphControl)
	}
	if mods&ModOption != 0 {
		b.WriteString(glyphOption)
	}
	if mods&ModShift != 0 {
		b.WriteString(glyphShift)
	}
	// Command is the default menu-shortcut modifier on macOS; AX sets
	// ModNoCommand for the rarer accelerators that omit it (bare function
	// keys, Control-only items), so its glyph is gated on that bit.
	if mods&ModNoCommand == 0 {
		b.WriteString(glyphCommand)
	}
	b.WriteString(keyGlyph(key))

	return b.String()
}

// keyGlyph renders a single shortcut_key value as its display glyph:
// special-key names for control characters and function/arrow keys,
// uppercase for a plain letter, and the literal rune otherwise.
func keyGlyph(key string) string {
	if name, ok := specialKeyNames[key]; ok {
		return name
	}

	return strings.ToUpper(key)
}
