package accessibility

import derrors "github.com/oleksiiluchnikov/menucli/internal/errors"

// Sentinel AX failures surfaced by Fetch. Callers
// use derrors.Is to test for these without depending on this package's
// wrapping details.
var (
	// ErrNotAuthorized means the process lost (or never had) Accessibility
	// trust; this is fatal at the top level.
	ErrNotAuthorized = derrors.New(derrors.CodePermissionDenied, "accessibility: not authorized")

	// ErrInvalidElement means the element's owning UI went away mid-walk;
	// the caller drops the node.
	ErrInvalidElement = derrors.New(derrors.CodeAxFailure, "accessibility: invalid element")

	// ErrCannotComplete is the transient failure the toggle verifier retries
	// against config.ToggleBackoff.
	ErrCannotComplete = derrors.New(derrors.CodeAxFailure, "accessibility: cannot complete")
)
