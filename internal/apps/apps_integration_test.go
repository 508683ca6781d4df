//go:build integration

package apps_test

import (
	"strconv"
	"testing"

	"github.com/oleksiiluchnikov/menucli/internal/apps"
)

func TestResolveEmptyIdentifierIsFrontmost(t *testing.T) {
	app, err := apps.Resolve("")
	if err != nil {
		t.Skipf("no frontmost application in this environment: %v", err)
	}

	if app.PID == 0 {
		t.Fatal("expected a non-zero pid for the frontmost application")
	}
}

func TestResolveByPIDRoundTrip(t *testing.T) {
	frontmost, err := apps.Resolve("")
	if err != nil {
		t.Skip("no frontmost application in this environment")
	}

	byPID, err := apps.Resolve(strconv.Itoa(frontmost.PID))
	if err != nil {
		t.Fatalf("resolving by the frontmost app's own pid should not fail: %v", err)
	}

	if byPID.PID != frontmost.PID {
		t.Fatalf("expected pid %d, got %d", frontmost.PID, byPID.PID)
	}
}

func TestListIncludesFrontmost(t *testing.T) {
	frontmost, err := apps.Resolve("")
	if err != nil {
		t.Skip("no frontmost application in this environment")
	}

	for _, app := range apps.List() {
		if app.PID == frontmost.PID {
			return
		}
	}

	t.Fatalf("expected List() to include the frontmost pid %d", frontmost.PID)
}

func TestResolveUnknownNameIsNotFound(t *testing.T) {
	_, err := apps.Resolve("DefinitelyNotARunningApplication12345")
	if err == nil {
		t.Fatal("expected an error for a name that matches no running application")
	}
}
