//go:build integration

package actuate_test

import (
	"testing"

	"github.com/oleksiiluchnikov/menucli/internal/accessibility"
	"github.com/oleksiiluchnikov/menucli/internal/actuate"
	"github.com/oleksiiluchnikov/menucli/internal/flatten"
	"github.com/oleksiiluchnikov/menucli/internal/tree"
)

// TestPressDryRunHasNoSideEffect only exercises the dry-run path: pressing a
// real menu item unconditionally would mutate whatever application happens
// to be frontmost on the machine running the test, which this suite must
// not do.
func TestPressDryRunHasNoSideEffect(t *testing.T) {
	app := accessibility.FocusedApplication()
	if app == nil {
		t.Skip("no frontmost application in this environment")
	}

	pid := app.PID()
	app.Release()

	root, err := tree.Build(pid, tree.DefaultOptions(nil))
	if err != nil {
		t.Skipf("could not walk menu bar for pid %d: %v", pid, err)
	}
	defer tree.Release(root)

	items := flatten.Flatten(root)
	if len(items) == 0 {
		t.Skip("no flattened items to press")
	}

	result, err := actuate.Press(items[0], true)
	if err != nil {
		t.Fatalf("dry-run press must not fail: %v", err)
	}

	if result.Pressed {
		t.Fatal("dry-run must not report Pressed")
	}
}
