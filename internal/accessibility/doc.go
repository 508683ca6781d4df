// Package accessibility is the AX Element Facade: a thin value type
// wrapping an opaque cross-process AXUIElementRef, offering a batched
// multi-attribute fetch and a press action, and hiding all platform-specific
// type coercion from the rest of menucli.
package accessibility
