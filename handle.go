package vkutil

// Handle types
//
// Each backend object category gets its own opaque handle type so that a
// framebuffer handle cannot be passed where a sampler is expected. The
// raw value is the device's 64-bit non-dispatchable handle; zero means
// "no object". Handles are created by the owning graphics context and
// handed to this package by pointer for teardown.

// Framebuffer is an opaque handle to a framebuffer object.
type Framebuffer uint64

// ShaderModule is an opaque handle to a compiled shader module.
type ShaderModule uint64

// Pipeline is an opaque handle to a graphics or compute pipeline.
type Pipeline uint64

// PipelineLayout is an opaque handle to a pipeline layout.
type PipelineLayout uint64

// DescriptorSetLayout is an opaque handle to a descriptor set layout.
type DescriptorSetLayout uint64

// BufferView is an opaque handle to a buffer view.
type BufferView uint64

// ImageView is an opaque handle to an image view.
type ImageView uint64

// Sampler is an opaque handle to a sampler.
type Sampler uint64

// Semaphore is an opaque handle to a semaphore.
type Semaphore uint64

// DescriptorSet is an opaque handle to a descriptor set allocated from
// the context's global pool. Unlike the other categories it is returned
// to its pool on release, not destroyed.
type DescriptorSet uint64

// Buffer is an opaque handle to a buffer, referenced by barriers.
// Buffer lifetime is managed by the owning context, not this package.
type Buffer uint64

// Image is an opaque handle to an image, referenced by barriers.
// Image lifetime is managed by the owning context, not this package.
type Image uint64

// IsNil reports whether the handle refers to no object.
func (h Framebuffer) IsNil() bool         { return h == 0 }
func (h ShaderModule) IsNil() bool        { return h == 0 }
func (h Pipeline) IsNil() bool            { return h == 0 }
func (h PipelineLayout) IsNil() bool      { return h == 0 }
func (h DescriptorSetLayout) IsNil() bool { return h == 0 }
func (h BufferView) IsNil() bool          { return h == 0 }
func (h ImageView) IsNil() bool           { return h == 0 }
func (h Sampler) IsNil() bool             { return h == 0 }
func (h Semaphore) IsNil() bool           { return h == 0 }
func (h DescriptorSet) IsNil() bool       { return h == 0 }
func (h Buffer) IsNil() bool              { return h == 0 }
func (h Image) IsNil() bool               { return h == 0 }

// DeviceContext is the narrow surface vkutil needs from the host's
// graphics context: one native destroy entry point per object category,
// bound to the active logical device, plus the pool-return path for
// descriptor sets.
//
// The host application implements DeviceContext (backend/vulkan provides
// the production implementation); tests substitute a fake. vkutil never
// creates or selects a device itself.
//
// Destroy calls in this API family are defined not to fail, so none of
// these methods return an error.
type DeviceContext interface {
	DestroyFramebuffer(h Framebuffer)
	DestroyShaderModule(h ShaderModule)
	DestroyPipeline(h Pipeline)
	DestroyPipelineLayout(h PipelineLayout)
	DestroyDescriptorSetLayout(h DescriptorSetLayout)
	DestroyBufferView(h BufferView)
	DestroyImageView(h ImageView)
	DestroySampler(h Sampler)
	DestroySemaphore(h Semaphore)

	// FreeDescriptorSet returns a pooled descriptor set to the global
	// descriptor pool it was allocated from.
	FreeDescriptorSet(h DescriptorSet)
}

// Release functions
//
// Each Release* destroys the object in *slot through dc and resets the
// slot to zero. A zero slot is a no-op, so releasing twice performs
// exactly one native destroy call. The caller must guarantee that no
// other goroutine touches the slot and that the GPU has finished with
// the object; these functions add no synchronization of their own.

// ReleaseFramebuffer destroys *slot if live and resets it to zero.
func ReleaseFramebuffer(dc DeviceContext, slot *Framebuffer) {
	if slot.IsNil() {
		return
	}
	dc.DestroyFramebuffer(*slot)
	*slot = 0
}

// ReleaseShaderModule destroys *slot if live and resets it to zero.
func ReleaseShaderModule(dc DeviceContext, slot *ShaderModule) {
	if slot.IsNil() {
		return
	}
	dc.DestroyShaderModule(*slot)
	*slot = 0
}

// ReleasePipeline destroys *slot if live and resets it to zero.
func ReleasePipeline(dc DeviceContext, slot *Pipeline) {
	if slot.IsNil() {
		return
	}
	dc.DestroyPipeline(*slot)
	*slot = 0
}

// ReleasePipelineLayout destroys *slot if live and resets it to zero.
func ReleasePipelineLayout(dc DeviceContext, slot *PipelineLayout) {
	if slot.IsNil() {
		return
	}
	dc.DestroyPipelineLayout(*slot)
	*slot = 0
}

// ReleaseDescriptorSetLayout destroys *slot if live and resets it to zero.
func ReleaseDescriptorSetLayout(dc DeviceContext, slot *DescriptorSetLayout) {
	if slot.IsNil() {
		return
	}
	dc.DestroyDescriptorSetLayout(*slot)
	*slot = 0
}

// ReleaseBufferView destroys *slot if live and resets it to zero.
func ReleaseBufferView(dc DeviceContext, slot *BufferView) {
	if slot.IsNil() {
		return
	}
	dc.DestroyBufferView(*slot)
	*slot = 0
}

// ReleaseImageView destroys *slot if live and resets it to zero.
func ReleaseImageView(dc DeviceContext, slot *ImageView) {
	if slot.IsNil() {
		return
	}
	dc.DestroyImageView(*slot)
	*slot = 0
}

// ReleaseSampler destroys *slot if live and resets it to zero.
func ReleaseSampler(dc DeviceContext, slot *Sampler) {
	if slot.IsNil() {
		return
	}
	dc.DestroySampler(*slot)
	*slot = 0
}

// ReleaseSemaphore destroys *slot if live and resets it to zero.
func ReleaseSemaphore(dc DeviceContext, slot *Semaphore) {
	if slot.IsNil() {
		return
	}
	dc.DestroySemaphore(*slot)
	*slot = 0
}

// ReleaseDescriptorSet returns *slot to its owning pool if live and
// resets it to zero. Descriptor sets are pooled, not destroyed.
func ReleaseDescriptorSet(dc DeviceContext, slot *DescriptorSet) {
	if slot.IsNil() {
		return
	}
	dc.FreeDescriptorSet(*slot)
	*slot = 0
}
