package vkutil

// AccessFlags is a bitmask of memory access types participating in a
// barrier. Values match VkAccessFlagBits.
type AccessFlags uint32

const (
	AccessIndirectCommandRead         AccessFlags = 1 << 0
	AccessIndexRead                   AccessFlags = 1 << 1
	AccessVertexAttributeRead         AccessFlags = 1 << 2
	AccessUniformRead                 AccessFlags = 1 << 3
	AccessInputAttachmentRead         AccessFlags = 1 << 4
	AccessShaderRead                  AccessFlags = 1 << 5
	AccessShaderWrite                 AccessFlags = 1 << 6
	AccessColorAttachmentRead         AccessFlags = 1 << 7
	AccessColorAttachmentWrite        AccessFlags = 1 << 8
	AccessDepthStencilAttachmentRead  AccessFlags = 1 << 9
	AccessDepthStencilAttachmentWrite AccessFlags = 1 << 10
	AccessTransferRead                AccessFlags = 1 << 11
	AccessTransferWrite               AccessFlags = 1 << 12
	AccessHostRead                    AccessFlags = 1 << 13
	AccessHostWrite                   AccessFlags = 1 << 14
	AccessMemoryRead                  AccessFlags = 1 << 15
	AccessMemoryWrite                 AccessFlags = 1 << 16
)

// StageFlags is a bitmask of pipeline stages delimiting a barrier.
// Values match VkPipelineStageFlagBits.
type StageFlags uint32

const (
	StageTopOfPipe             StageFlags = 1 << 0
	StageDrawIndirect          StageFlags = 1 << 1
	StageVertexInput           StageFlags = 1 << 2
	StageVertexShader          StageFlags = 1 << 3
	StageTessControlShader     StageFlags = 1 << 4
	StageTessEvalShader        StageFlags = 1 << 5
	StageGeometryShader        StageFlags = 1 << 6
	StageFragmentShader        StageFlags = 1 << 7
	StageEarlyFragmentTests    StageFlags = 1 << 8
	StageLateFragmentTests     StageFlags = 1 << 9
	StageColorAttachmentOutput StageFlags = 1 << 10
	StageComputeShader         StageFlags = 1 << 11
	StageTransfer              StageFlags = 1 << 12
	StageBottomOfPipe          StageFlags = 1 << 13
	StageHost                  StageFlags = 1 << 14
	StageAllGraphics           StageFlags = 1 << 15
	StageAllCommands           StageFlags = 1 << 16
)

// ImageLayout describes the layout an image's memory is in on either
// side of a transition. Values match VkImageLayout.
type ImageLayout uint32

const (
	LayoutUndefined                     ImageLayout = 0
	LayoutGeneral                       ImageLayout = 1
	LayoutColorAttachmentOptimal        ImageLayout = 2
	LayoutDepthStencilAttachmentOptimal ImageLayout = 3
	LayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	LayoutShaderReadOnlyOptimal         ImageLayout = 5
	LayoutTransferSrcOptimal            ImageLayout = 6
	LayoutTransferDstOptimal            ImageLayout = 7
	LayoutPreinitialized                ImageLayout = 8
	LayoutPresentSrc                    ImageLayout = 1000001002
)

// AspectFlags selects which aspects of an image a barrier covers.
// Values match VkImageAspectFlagBits.
type AspectFlags uint32

const (
	AspectColor   AspectFlags = 1 << 0
	AspectDepth   AspectFlags = 1 << 1
	AspectStencil AspectFlags = 1 << 2
)

// DeviceSize is a byte offset or size in device memory.
type DeviceSize uint64

// WholeSize covers a resource from the given offset to its end.
const WholeSize = ^DeviceSize(0)

// QueueFamilyIgnored requests no queue family ownership transfer.
// vkutil operates on a single-queue-family model, so every barrier it
// builds stamps both queue family fields with this sentinel.
const QueueFamilyIgnored = ^uint32(0)

// RemainingMipLevels covers all mip levels from the base level on.
const RemainingMipLevels = ^uint32(0)

// RemainingArrayLayers covers all array layers from the base layer on.
const RemainingArrayLayers = ^uint32(0)

// BufferBarrier describes an execution and memory dependency on a range
// of a buffer. Build one with [NewBufferBarrier] and record it with
// [Emit]; the descriptor itself is inert data.
type BufferBarrier struct {
	Buffer         Buffer
	SrcAccess      AccessFlags
	DstAccess      AccessFlags
	SrcQueueFamily uint32
	DstQueueFamily uint32
	Offset         DeviceSize
	Size           DeviceSize
	SrcStage       StageFlags
	DstStage       StageFlags
}

// NewBufferBarrier builds a buffer barrier descriptor for the byte range
// [offset, offset+size) of buffer, ordering srcAccess at srcStage before
// dstAccess at dstStage. Pass [WholeSize] to cover the rest of the
// buffer. Both queue family fields are stamped [QueueFamilyIgnored]:
// cross-queue ownership transfer is a higher layer's concern.
//
// The range must lie within the buffer unless size is WholeSize; vkutil
// does not know buffer extents and cannot check this.
func NewBufferBarrier(buffer Buffer, srcAccess, dstAccess AccessFlags,
	offset, size DeviceSize, srcStage, dstStage StageFlags) BufferBarrier {
	return BufferBarrier{
		Buffer:         buffer,
		SrcAccess:      srcAccess,
		DstAccess:      dstAccess,
		SrcQueueFamily: QueueFamilyIgnored,
		DstQueueFamily: QueueFamilyIgnored,
		Offset:         offset,
		Size:           size,
		SrcStage:       srcStage,
		DstStage:       dstStage,
	}
}

// ImageBarrier describes an execution and memory dependency on an image,
// optionally transitioning its layout. The subresource range covers the
// whole image when built with [NewImageBarrier].
type ImageBarrier struct {
	Image          Image
	SrcAccess      AccessFlags
	DstAccess      AccessFlags
	OldLayout      ImageLayout
	NewLayout      ImageLayout
	SrcQueueFamily uint32
	DstQueueFamily uint32
	Aspect         AspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
	SrcStage       StageFlags
	DstStage       StageFlags
}

// NewImageBarrier builds an image barrier descriptor transitioning image
// from oldLayout to newLayout across the full mip and layer range of the
// given aspect. Both queue family fields are stamped
// [QueueFamilyIgnored].
func NewImageBarrier(image Image, srcAccess, dstAccess AccessFlags,
	oldLayout, newLayout ImageLayout, aspect AspectFlags,
	srcStage, dstStage StageFlags) ImageBarrier {
	return ImageBarrier{
		Image:          image,
		SrcAccess:      srcAccess,
		DstAccess:      dstAccess,
		OldLayout:      oldLayout,
		NewLayout:      newLayout,
		SrcQueueFamily: QueueFamilyIgnored,
		DstQueueFamily: QueueFamilyIgnored,
		Aspect:         aspect,
		BaseMipLevel:   0,
		LevelCount:     RemainingMipLevels,
		BaseArrayLayer: 0,
		LayerCount:     RemainingArrayLayers,
		SrcStage:       srcStage,
		DstStage:       dstStage,
	}
}

// CommandRecorder is an actively recording command context into which
// barriers are inserted. Recording is single-writer: a recorder must not
// be shared between goroutines. backend/vulkan adapts a command buffer;
// tests substitute a fake.
type CommandRecorder interface {
	// PipelineBarrier records one buffer memory barrier at the stage
	// transition the descriptor names.
	PipelineBarrier(b BufferBarrier)

	// ImagePipelineBarrier records one image memory barrier at the stage
	// transition the descriptor names.
	ImagePipelineBarrier(b ImageBarrier)
}

// Emit records exactly one buffer barrier into rec. There is no batching
// or deduplication: successive calls produce discrete barriers in call
// order. Calling Emit without an active recording context is a
// programmer error; a nil rec panics.
func Emit(rec CommandRecorder, b BufferBarrier) {
	if rec == nil {
		panic("vkutil: Emit called with no active command recorder")
	}
	rec.PipelineBarrier(b)
}

// EmitImage records exactly one image barrier into rec, under the same
// contract as [Emit].
func EmitImage(rec CommandRecorder, b ImageBarrier) {
	if rec == nil {
		panic("vkutil: EmitImage called with no active command recorder")
	}
	rec.ImagePipelineBarrier(b)
}
