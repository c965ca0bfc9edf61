package vkutil

import "fmt"

// ErrorKind classifies a backend failure for the calling rendering
// context. It replaces a polymorphic exception hierarchy with a flat
// enumeration: callers branch on the kind, not the dynamic type.
type ErrorKind int

const (
	// KindRuntime is a generic backend failure with no more specific
	// classification.
	KindRuntime ErrorKind = iota

	// KindOutOfMemory covers host and device allocation failures.
	KindOutOfMemory

	// KindDeviceLost indicates the logical device became unusable.
	KindDeviceLost

	// KindIncompatible covers missing layers, extensions, features and
	// driver incompatibilities discovered at configuration time.
	KindIncompatible

	// KindSurfaceOutOfDate indicates the presentation surface no longer
	// matches the swapchain and must be rebuilt by the owner.
	KindSurfaceOutOfDate
)

// String returns a short lower-case name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindRuntime:
		return "runtime"
	case KindOutOfMemory:
		return "out of memory"
	case KindDeviceLost:
		return "device lost"
	case KindIncompatible:
		return "incompatible"
	case KindSurfaceOutOfDate:
		return "surface out of date"
	default:
		return "unknown"
	}
}

// Error is a backend failure as a plain value. It keeps the diagnostic
// message (always English, for logs) separate from the user-facing
// message (displayable, possibly translated by the host application),
// and records the status code that produced it when one exists.
//
// Error values flow back through ordinary return paths and compose with
// the errors package: Is matches on Status, As extracts the value.
type Error struct {
	Kind   ErrorKind
	Status Status // StatusSuccess when the failure had no status code
	Diag   string // log-facing detail
	User   string // display-facing message; falls back to Diag when empty
}

// Error returns the diagnostic form of the failure.
func (e *Error) Error() string {
	if e.Status != StatusSuccess {
		return fmt.Sprintf("vkutil: %s (%d: %s)", e.Diag, int32(e.Status), e.Status)
	}
	return "vkutil: " + e.Diag
}

// UserMessage returns the display-facing message, falling back to the
// diagnostic one when no user message was set.
func (e *Error) UserMessage() string {
	if e.User != "" {
		return e.User
	}
	return e.Diag
}

// Is reports whether target is an *Error with the same kind and status,
// so the calling context can match against sentinel values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Status == StatusSuccess || t.Status == e.Status)
}

// FromStatus builds an Error classifying the failure status returned by
// the named backend operation. Non-error statuses (success, not ready,
// suboptimal, ...) yield nil.
func FromStatus(op string, status Status) *Error {
	if !status.IsError() {
		return nil
	}
	e := &Error{
		Kind:   KindRuntime,
		Status: status,
		Diag:   op + " failed",
	}
	switch status {
	case ErrOutOfHostMemory, ErrOutOfDeviceMemory:
		e.Kind = KindOutOfMemory
		e.User = "The graphics driver ran out of memory."
	case ErrDeviceLost:
		e.Kind = KindDeviceLost
		e.User = "The graphics device was lost."
	case ErrLayerNotPresent, ErrExtensionNotPresent, ErrFeatureNotPresent,
		ErrIncompatibleDriver, ErrFormatNotSupported, ErrIncompatibleDisplay:
		e.Kind = KindIncompatible
		e.User = "The graphics driver does not support a required capability."
	case ErrSurfaceLost, ErrOutOfDate:
		e.Kind = KindSurfaceOutOfDate
	}
	return e
}
