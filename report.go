package vkutil

import (
	"fmt"
	"log/slog"
)

// LogFailure reports a failed backend call to the package diagnostic
// sink as a single line: the operation that failed, the caller's
// formatted message, and the numeric status with its display string.
//
//	vkutil.LogFailure("vkCreateFramebuffer", res, "width=%d height=%d", w, h)
//	// (vkCreateFramebuffer) width=1280 height=720 (-2: VK_ERROR_OUT_OF_DEVICE_MEMORY)
//
// LogFailure is pure reporting: it never panics, never alters control
// flow, and is a no-op under the default silent logger. Interception,
// retry or fallback is the calling rendering context's business.
func LogFailure(op string, status Status, format string, args ...any) {
	l := Logger()
	if !l.Enabled(nil, slog.LevelError) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.Error(fmt.Sprintf("(%s) %s (%d: %s)", op, msg, int32(status), status))
}
