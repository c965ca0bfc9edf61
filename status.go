package vkutil

// Status is a backend result code. The numeric domain matches VkResult:
// zero is success, positive values are non-error statuses, negative
// values are failures.
type Status int32

const (
	StatusSuccess    Status = 0
	StatusNotReady   Status = 1
	StatusTimeout    Status = 2
	StatusEventSet   Status = 3
	StatusEventReset Status = 4
	StatusIncomplete Status = 5

	ErrOutOfHostMemory      Status = -1
	ErrOutOfDeviceMemory    Status = -2
	ErrInitializationFailed Status = -3
	ErrDeviceLost           Status = -4
	ErrMemoryMapFailed      Status = -5
	ErrLayerNotPresent      Status = -6
	ErrExtensionNotPresent  Status = -7
	ErrFeatureNotPresent    Status = -8
	ErrIncompatibleDriver   Status = -9
	ErrTooManyObjects       Status = -10
	ErrFormatNotSupported   Status = -11

	ErrSurfaceLost         Status = -1000000000
	ErrNativeWindowInUse   Status = -1000000001
	StatusSuboptimal       Status = 1000001003
	ErrOutOfDate           Status = -1000001004
	ErrIncompatibleDisplay Status = -1000003001
	ErrValidationFailed    Status = -1000011001
	ErrInvalidShader       Status = -1000012000
)

// IsError reports whether s is a failure code. The positive
// non-success statuses (not ready, timeout, suboptimal, ...) are not
// errors.
func (s Status) IsError() bool { return s < 0 }

// String returns the canonical spelling of the status code, matching
// the names validation layers and other Vulkan tooling log. Values
// outside the declared domain return "UNKNOWN_VK_RESULT"; String is
// total and never fails.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "VK_SUCCESS"
	case StatusNotReady:
		return "VK_NOT_READY"
	case StatusTimeout:
		return "VK_TIMEOUT"
	case StatusEventSet:
		return "VK_EVENT_SET"
	case StatusEventReset:
		return "VK_EVENT_RESET"
	case StatusIncomplete:
		return "VK_INCOMPLETE"
	case ErrOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ErrDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case ErrMemoryMapFailed:
		return "VK_ERROR_MEMORY_MAP_FAILED"
	case ErrLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case ErrExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case ErrFeatureNotPresent:
		return "VK_ERROR_FEATURE_NOT_PRESENT"
	case ErrIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	case ErrTooManyObjects:
		return "VK_ERROR_TOO_MANY_OBJECTS"
	case ErrFormatNotSupported:
		return "VK_ERROR_FORMAT_NOT_SUPPORTED"
	case ErrSurfaceLost:
		return "VK_ERROR_SURFACE_LOST_KHR"
	case ErrNativeWindowInUse:
		return "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR"
	case StatusSuboptimal:
		return "VK_SUBOPTIMAL_KHR"
	case ErrOutOfDate:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	case ErrIncompatibleDisplay:
		return "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR"
	case ErrValidationFailed:
		return "VK_ERROR_VALIDATION_FAILED_EXT"
	case ErrInvalidShader:
		return "VK_ERROR_INVALID_SHADER_NV"
	default:
		return "UNKNOWN_VK_RESULT"
	}
}
