package vkutil

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusSuccess, "VK_SUCCESS"},
		{StatusNotReady, "VK_NOT_READY"},
		{StatusTimeout, "VK_TIMEOUT"},
		{StatusEventSet, "VK_EVENT_SET"},
		{StatusEventReset, "VK_EVENT_RESET"},
		{StatusIncomplete, "VK_INCOMPLETE"},
		{ErrOutOfHostMemory, "VK_ERROR_OUT_OF_HOST_MEMORY"},
		{ErrOutOfDeviceMemory, "VK_ERROR_OUT_OF_DEVICE_MEMORY"},
		{ErrInitializationFailed, "VK_ERROR_INITIALIZATION_FAILED"},
		{ErrDeviceLost, "VK_ERROR_DEVICE_LOST"},
		{ErrMemoryMapFailed, "VK_ERROR_MEMORY_MAP_FAILED"},
		{ErrLayerNotPresent, "VK_ERROR_LAYER_NOT_PRESENT"},
		{ErrExtensionNotPresent, "VK_ERROR_EXTENSION_NOT_PRESENT"},
		{ErrFeatureNotPresent, "VK_ERROR_FEATURE_NOT_PRESENT"},
		{ErrIncompatibleDriver, "VK_ERROR_INCOMPATIBLE_DRIVER"},
		{ErrTooManyObjects, "VK_ERROR_TOO_MANY_OBJECTS"},
		{ErrFormatNotSupported, "VK_ERROR_FORMAT_NOT_SUPPORTED"},
		{ErrSurfaceLost, "VK_ERROR_SURFACE_LOST_KHR"},
		{ErrNativeWindowInUse, "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR"},
		{StatusSuboptimal, "VK_SUBOPTIMAL_KHR"},
		{ErrOutOfDate, "VK_ERROR_OUT_OF_DATE_KHR"},
		{ErrIncompatibleDisplay, "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR"},
		{ErrValidationFailed, "VK_ERROR_VALIDATION_FAILED_EXT"},
		{ErrInvalidShader, "VK_ERROR_INVALID_SHADER_NV"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int32(tt.status), got, tt.want)
		}
	}
}

func TestStatusStringUnknown(t *testing.T) {
	for _, s := range []Status{42, -42, -999999999} {
		if got := s.String(); got != "UNKNOWN_VK_RESULT" {
			t.Errorf("Status(%d).String() = %q, want UNKNOWN_VK_RESULT", int32(s), got)
		}
	}
}

func TestStatusIsError(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusSuccess, false},
		{StatusNotReady, false},
		{StatusSuboptimal, false},
		{ErrOutOfHostMemory, true},
		{ErrDeviceLost, true},
		{ErrOutOfDate, true},
	}
	for _, tt := range tests {
		if got := tt.status.IsError(); got != tt.want {
			t.Errorf("%s.IsError() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
