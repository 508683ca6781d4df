// Package actuate presses resolved menu items and verifies toggle state
// changes.
package actuate

import (
	"strings"
	"time"

	"github.com/oleksiiluchnikov/menucli/internal/accessibility"
	"github.com/oleksiiluchnikov/menucli/internal/config"
	derrors "github.com/oleksiiluchnikov/menucli/internal/errors"
	"github.com/oleksiiluchnikov/menucli/internal/model"
)

// Result reports what happened to a pressed item, including the
// post-press checked state the Verifier observed.
type Result struct {
	Item                 model.FlatItem
	Pressed              bool
	CheckedBefore        model.Checked
	CheckedAfter         model.Checked
	VerificationTimedOut bool
}

// Press presses item's resolved element, or — when dryRun is set —
// short-circuits and returns the resolved item untouched.
func Press(item model.FlatItem, dryRun bool) (Result, error) {
	result := Result{Item: item, CheckedBefore: item.Checked, CheckedAfter: item.Checked}

	if dryRun {
		return result, nil
	}

	el, ok := item.Node().Element.(*accessibility.Element)
	if !ok || el == nil {
		return result, derrors.New(derrors.CodeAxFailure, "resolved item has no live element handle")
	}

	if err := el.Press(); err != nil {
		return result, err
	}

	result.Pressed = true

	return result, nil
}

// Toggle presses item and then verifies the checked-state transition by
// re-walking just the resolved item's parent siblings, retrying on the
// fixed backoff schedule in config.ToggleBackoff until the checked value
// differs from the pre-press value or the schedule is exhausted.
// A verification timeout is not a failure: the press already succeeded.
func Toggle(item model.FlatItem, dryRun bool) (Result, error) {
	result, err := Press(item, dryRun)
	if err != nil || dryRun {
		return result, err
	}

	parentNode := item.Node().Parent

	var parentEl *accessibility.Element
	if parentNode != nil {
		parentEl, _ = parentNode.Element.(*accessibility.Element)
	}

	for _, delay := range config.ToggleBackoff {
		time.Sleep(delay)

		checked, ok := rereadChecked(parentEl, item.Title)
		if !ok {
			continue
		}

		result.CheckedAfter = checked

		if checked != result.CheckedBefore {
			return result, nil
		}
	}

	result.VerificationTimedOut = true

	return result, nil
}

// rereadChecked re-walks just the resolved item's parent siblings, locates
// the sibling with the matching title, and reads its checked attribute.
// It does not re-read the originally resolved element directly, since some
// applications recreate the AXUIElementRef when a menu item's state
// changes.
func rereadChecked(parent *accessibility.Element, wantTitle string) (model.Checked, bool) {
	if parent == nil {
		return model.CheckedUnknown, false
	}

	siblings := parent.Children()
	defer func() {
		for _, sib := range siblings {
			sib.Release()
		}
	}()

	for _, sib := range siblings {
		attrs, err := sib.Fetch()
		if err != nil || !strings.EqualFold(attrs.Title, wantTitle) {
			continue
		}

		if !attrs.MarkCharKnown {
			return model.CheckedUnknown, false
		}

		switch attrs.MarkChar {
		case "":
			return model.CheckedUnchecked, true
		case "-", "–", "—":
			return model.CheckedMixed, true
		default:
			return model.CheckedChecked, true
		}
	}

	return model.CheckedUnknown, false
}
