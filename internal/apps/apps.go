// Package apps is the App Resolver: it turns a --app identifier (name,
// pid, or bundle id) into a running application's pid, falling back to the
// frontmost application, and enumerates running applications for "apps"
// and build_all_extras.
package apps

import (
	"strconv"
	"strings"

	"github.com/oleksiiluchnikov/menucli/internal/accessibility"
	derrors "github.com/oleksiiluchnikov/menucli/internal/errors"
)

// App is one running, Dock-visible application.
type App struct {
	PID      int
	Name     string
	BundleID string
}

// Resolve turns identifier into a running application's pid. identifier may
// be a numeric pid, a bundle identifier (containing a dot), or a
// case-insensitive substring of the application's display name. An empty
// identifier resolves to the frontmost application.
func Resolve(identifier string) (App, error) {
	if identifier == "" {
		return resolveFrontmost()
	}

	if pid, err := strconv.Atoi(identifier); err == nil {
		return resolveByPID(pid)
	}

	if strings.Contains(identifier, ".") {
		if app, ok := resolveByBundleID(identifier); ok {
			return app, nil
		}
	}

	return resolveByName(identifier)
}

func resolveFrontmost() (App, error) {
	el := accessibility.FocusedApplication()
	if el == nil {
		return App{}, derrors.New(derrors.CodeAppNotFound, "no frontmost application")
	}
	defer el.Release()

	return appFromElement(el), nil
}

func resolveByPID(pid int) (App, error) {
	el := accessibility.ApplicationByPID(pid)
	if el == nil {
		return App{}, derrors.Newf(derrors.CodeAppNotFound, "no running application with pid %d", pid)
	}
	defer el.Release()

	app := appFromElement(el)
	if app.Name == "" {
		return App{}, derrors.Newf(derrors.CodeAppNotFound, "no running application with pid %d", pid)
	}

	return app, nil
}

func resolveByBundleID(bundleID string) (App, bool) {
	el := accessibility.ApplicationByBundleID(bundleID)
	if el == nil {
		return App{}, false
	}
	defer el.Release()

	app := appFromElement(el)
	if app.Name == "" {
		return App{}, false
	}

	return app, true
}

func resolveByName(query string) (App, error) {
	var matches []App

	for _, app := range List() {
		if strings.EqualFold(app.Name, query) {
			return app, nil
		}

		if strings.Contains(strings.ToLower(app.Name), strings.ToLower(query)) {
			matches = append(matches, app)
		}
	}

	switch len(matches) {
	case 0:
		return App{}, derrors.Newf(derrors.CodeAppNotFound, "no running application matches %q", query)
	case 1:
		return matches[0], nil
	default:
		return App{}, derrors.Newf(derrors.CodeAmbiguous, "%q matches %d running applications", query, len(matches))
	}
}

// List enumerates every regular (Dock-visible) running application, in the
// OS's own enumeration order.
func List() []App {
	pids := accessibility.RunningApplicationPIDs()

	apps := make([]App, 0, len(pids))

	for _, pid := range pids {
		el := accessibility.ApplicationByPID(pid)
		if el == nil {
			continue
		}

		app := appFromElement(el)
		el.Release()

		if app.Name == "" {
			continue
		}

		apps = append(apps, app)
	}

	return apps
}

func appFromElement(el *accessibility.Element) App {
	return App{
		PID:      el.PID(),
		Name:     el.ApplicationName(),
		BundleID: el.BundleIdentifier(),
	}
}
