//go:build integration

package tree_test

import (
	"testing"

	"github.com/oleksiiluchnikov/menucli/internal/accessibility"
	"github.com/oleksiiluchnikov/menucli/internal/tree"
)

// TestBuildFrontmostApp walks the real menu bar of whatever application is
// frontmost in the test environment. It only asserts shape invariants that
// must hold for any application, since the actual menu contents vary by
// machine.
func TestBuildFrontmostApp(t *testing.T) {
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

	for _, child := range root.Children {
		if len(child.Children) > 0 && !child.HasSubmenu() {
			t.Fatalf("expected exactly one submenu wrapper child, got %d", len(child.Children))
		}
	}
}

func TestBuildAllExtrasSkipsUnsupportedSilently(t *testing.T) {
	pids := accessibility.RunningApplicationPIDs()
	if len(pids) == 0 {
		t.Skip("no running applications visible to accessibility in this environment")
	}

	results := tree.BuildAllExtras(pids, tree.DefaultOptions(nil))

	for _, r := range results {
		if r.Tree == nil {
			t.Fatalf("BuildAllExtras must only include apps with a built tree, got nil for pid %d", r.AppPID)
		}

		tree.Release(r.Tree)
	}
}
