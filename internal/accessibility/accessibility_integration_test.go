//go:build integration

package accessibility_test

import (
	"testing"

	"github.com/oleksiiluchnikov/menucli/internal/accessibility"
)

func TestCheckPermissionsDoesNotPanic(t *testing.T) {
	_ = accessibility.CheckPermissions()
}

func TestFocusedApplicationRoundTrip(t *testing.T) {
	app := accessibility.FocusedApplication()
	if app == nil {
		t.Skip("no frontmost application in this environment")
	}
	defer app.Release()

	if app.ApplicationName() == "" {
		t.Fatal("expected a non-empty application name for the frontmost app")
	}
}
