// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import (
	vk "github.com/goki/vulkan"

	"github.com/gogpu/vkutil"
)

// Context implements vkutil.DeviceContext over a logical device and the
// global descriptor pool owned by the host's graphics context. The
// device must outlive every handle released through the Context.
//
// Context holds no state beyond the two native handles and adds no
// locking; destroy calls against distinct objects may run concurrently,
// but access to any one handle slot is the caller's to serialize.
type Context struct {
	device vk.Device
	pool   vk.DescriptorPool
}

var _ vkutil.DeviceContext = (*Context)(nil)

// NewContext binds a Context to the host's logical device and global
// descriptor pool. The pool may be nil when pooled descriptor sets are
// never released through this Context.
func NewContext(device vk.Device, pool vk.DescriptorPool) *Context {
	return &Context{device: device, pool: pool}
}

// Device returns the logical device the Context is bound to.
func (c *Context) Device() vk.Device { return c.device }

func (c *Context) DestroyFramebuffer(h vkutil.Framebuffer) {
	vk.DestroyFramebuffer(c.device, FramebufferHandle(h), nil)
}

func (c *Context) DestroyShaderModule(h vkutil.ShaderModule) {
	vk.DestroyShaderModule(c.device, ShaderModuleHandle(h), nil)
}

func (c *Context) DestroyPipeline(h vkutil.Pipeline) {
	vk.DestroyPipeline(c.device, PipelineHandle(h), nil)
}

func (c *Context) DestroyPipelineLayout(h vkutil.PipelineLayout) {
	vk.DestroyPipelineLayout(c.device, PipelineLayoutHandle(h), nil)
}

func (c *Context) DestroyDescriptorSetLayout(h vkutil.DescriptorSetLayout) {
	vk.DestroyDescriptorSetLayout(c.device, DescriptorSetLayoutHandle(h), nil)
}

func (c *Context) DestroyBufferView(h vkutil.BufferView) {
	vk.DestroyBufferView(c.device, BufferViewHandle(h), nil)
}

func (c *Context) DestroyImageView(h vkutil.ImageView) {
	vk.DestroyImageView(c.device, ImageViewHandle(h), nil)
}

func (c *Context) DestroySampler(h vkutil.Sampler) {
	vk.DestroySampler(c.device, SamplerHandle(h), nil)
}

func (c *Context) DestroySemaphore(h vkutil.Semaphore) {
	vk.DestroySemaphore(c.device, SemaphoreHandle(h), nil)
}

// FreeDescriptorSet returns h to the global descriptor pool. Freeing a
// pooled set is specified not to fail, so the result is discarded.
func (c *Context) FreeDescriptorSet(h vkutil.DescriptorSet) {
	set := DescriptorSetHandle(h)
	vk.FreeDescriptorSets(c.device, c.pool, 1, &set)
}
