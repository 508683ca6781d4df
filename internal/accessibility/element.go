package accessibility

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Cocoa -framework CoreFoundation
#include "bridge/accessibility.h"
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	derrors "github.com/oleksiiluchnikov/menucli/internal/errors"
)

// Element wraps an opaque AXUIElementRef. It is a thin value type: every
// method is a narrow pass-through to the bridge, and no platform-specific
// coercion leaks past this file.
type Element struct {
	ref unsafe.Pointer
}

// wrap adapts a non-nil C pointer into an *Element, or returns nil.
func wrap(ref unsafe.Pointer) *Element {
	if ref == nil {
		return nil
	}

	return &Element{ref: ref}
}

// Attributes is the fixed-index tuple a single batched fetch returns. A
// zero-value field means that slot was null (AttributeUnsupported for that
// attribute on that element, not an error).
type Attributes struct {
	Role             string
	Title            string
	Enabled          bool
	EnabledKnown     bool
	ShortcutKey      string
	ShortcutMods     int
	ShortcutModsSet  bool
	MarkChar         string
	MarkCharKnown    bool
	PrimaryUIElement *Element
}

// CheckPermissions reports whether the process is trusted for Accessibility
// API use — the global permission check.
func CheckPermissions() bool {
	return C.checkAccessibilityPermissions() == 1
}

// FocusedApplication returns the frontmost application's element, the App
// Resolver's fallback target when no --app identifier is given.
func FocusedApplication() *Element {
	return wrap(C.getFocusedApplication())
}

// ApplicationByPID returns the application element for pid.
func ApplicationByPID(pid int) *Element {
	return wrap(C.getApplicationByPID(C.int(pid)))
}

// ApplicationByBundleID returns the application element whose bundle
// identifier matches bundleID, or nil if no running app matches.
func ApplicationByBundleID(bundleID string) *Element {
	cBundle := C.CString(bundleID)
	defer C.free(unsafe.Pointer(cBundle))

	return wrap(C.getApplicationByBundleId(cBundle))
}

// RunningApplicationPIDs enumerates the PIDs of regular (Dock-visible)
// running applications, in the OS's own enumeration order.
func RunningApplicationPIDs() []int {
	const maxApps = 512

	pids := make([]C.int, maxApps)
	var count C.int

	C.getRunningApplications(&pids[0], &count, C.int(maxApps))

	result := make([]int, int(count))
	for i := range result {
		result[i] = int(pids[i])
	}

	return result
}

// ApplicationName returns the display name of the application owning e.
func (e *Element) ApplicationName() string {
	if e == nil || e.ref == nil {
		return ""
	}

	cName := C.getApplicationName(e.ref)
	if cName == nil {
		return ""
	}
	defer C.freeString(cName)

	return C.GoString(cName)
}

// BundleIdentifier returns the bundle identifier of the application owning e.
func (e *Element) BundleIdentifier() string {
	if e == nil || e.ref == nil {
		return ""
	}

	cBundleID := C.getBundleIdentifier(e.ref)
	if cBundleID == nil {
		return ""
	}
	defer C.freeString(cBundleID)

	return C.GoString(cBundleID)
}

// PID returns the owning process id of e, or -1 if it cannot be determined.
func (e *Element) PID() int {
	if e == nil || e.ref == nil {
		return -1
	}

	return int(C.getElementPID(e.ref))
}

// MenuBar returns the standard menu-bar root for an application element.
func (e *Element) MenuBar() *Element {
	if e == nil || e.ref == nil {
		return nil
	}

	return wrap(C.getMenuBar(e.ref))
}

// ExtrasMenuBar returns the extras (status-bar) root for an application
// element, or nil if the attribute is unsupported.
func (e *Element) ExtrasMenuBar() *Element {
	if e == nil || e.ref == nil {
		return nil
	}

	return wrap(C.getExtrasMenuBar(e.ref))
}

// Fetch issues the batched eight-attribute read. The returned error is one
// of the sentinel AX errors below; a nil error with zero-value fields in
// attrs means every slot was simply unsupported, not a failure.
func (e *Element) Fetch() (Attributes, error) {
	var attrs Attributes

	if e == nil || e.ref == nil {
		return attrs, derrors.New(derrors.CodeAxFailure, "fetch on nil element")
	}

	var slots C.MenucliAttributeSlots

	code := C.fetchAttributes(e.ref, &slots)
	defer C.freeAttributeSlots(&slots)

	switch code {
	case 0:
		// success, fields populated below
	case -2:
		return attrs, ErrNotAuthorized
	case -3:
		return attrs, ErrInvalidElement
	case -4:
		return attrs, ErrCannotComplete
	default:
		return attrs, derrors.Newf(derrors.CodeAxFailure, "fetchAttributes: unknown code %d", int(code))
	}

	if slots.role != nil {
		attrs.Role = C.GoString(slots.role)
	}
	if slots.title != nil {
		attrs.Title = C.GoString(slots.title)
	}
	if slots.enabled >= 0 {
		attrs.EnabledKnown = true
		attrs.Enabled = slots.enabled == 1
	}
	if slots.shortcutKey != nil {
		attrs.ShortcutKey = C.GoString(slots.shortcutKey)
	}
	if slots.shortcutMods >= 0 {
		attrs.ShortcutModsSet = true
		attrs.ShortcutMods = int(slots.shortcutMods)
	}
	if slots.markChar != nil {
		attrs.MarkCharKnown = true
		attrs.MarkChar = C.GoString(slots.markChar)
	}
	if slots.primaryUIElement != nil {
		// Ownership transfers from the C side's CFRetain to this Element;
		// freeAttributeSlots must not also release it, so detach the slot.
		attrs.PrimaryUIElement = wrap(slots.primaryUIElement)
		slots.primaryUIElement = nil
	}

	return attrs, nil
}

// Children returns the ordered AXChildren of e.
func (e *Element) Children() []*Element {
	if e == nil || e.ref == nil {
		return nil
	}

	var count C.int

	raw := C.getChildren(e.ref, &count)

	return elementArray(raw, count)
}

// VisibleChildren returns the ordered AXVisibleChildren of e, the variant
// used for extras traversal.
func (e *Element) VisibleChildren() []*Element {
	if e == nil || e.ref == nil {
		return nil
	}

	var count C.int

	raw := C.getVisibleChildren(e.ref, &count)

	return elementArray(raw, count)
}

// elementArray converts and releases a C-allocated AXUIElementRef array.
func elementArray(raw *unsafe.Pointer, count C.int) []*Element {
	if raw == nil || count == 0 {
		return nil
	}
	defer C.freeElementArray(raw, count)

	n := int(count)
	slice := unsafe.Slice(raw, n)

	children := make([]*Element, n)
	for i := range children {
		children[i] = wrap(slice[i])
	}

	return children
}

// Press performs the AXPress action on e.
func (e *Element) Press() error {
	if e == nil || e.ref == nil {
		return derrors.New(derrors.CodeAxFailure, "press on nil element")
	}

	if C.pressElement(e.ref) == 0 {
		return derrors.New(derrors.CodeAxFailure, "AXPress failed")
	}

	return nil
}

// ShowAlternateUI performs the AXShowAlternateUI action on an application
// element, the AX-native toggle that reveals Option-alternate items.
func (e *Element) ShowAlternateUI() error {
	if e == nil || e.ref == nil {
		return derrors.New(derrors.CodeAxFailure, "show-alternate-ui on nil element")
	}

	if C.showAlternateUI(e.ref) == 0 {
		return derrors.New(derrors.CodeAxFailure, "AXShowAlternateUI failed")
	}

	return nil
}

// ShowDefaultUI is the inverse of ShowAlternateUI.
func (e *Element) ShowDefaultUI() error {
	if e == nil || e.ref == nil {
		return derrors.New(derrors.CodeAxFailure, "show-default-ui on nil element")
	}

	if C.showDefaultUI(e.ref) == 0 {
		return derrors.New(derrors.CodeAxFailure, "AXShowDefaultUI failed")
	}

	return nil
}

// Hash returns a stable identity for e, used by the per-walk alternate
// lookup memo.
func (e *Element) Hash() uint64 {
	if e == nil || e.ref == nil {
		return 0
	}

	return uint64(C.hashElement(e.ref))
}

// Equal reports reference equality between e and other.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}

	return C.equalElements(e.ref, other.ref) == C.bool(true)
}

// Release releases the AXUIElementRef backing e. Safe to call once per
// Element obtained from this package; never call on an Element still
// reachable from a returned MenuNode.
func (e *Element) Release() {
	if e != nil && e.ref != nil {
		C.releaseElement(e.ref)
		e.ref = nil
	}
}

// Retain increments e's reference count and returns a new handle sharing
// the same underlying AXUIElementRef.
func (e *Element) Retain() *Element {
	if e == nil || e.ref == nil {
		return nil
	}

	return wrap(C.retainElement(e.ref))
}
