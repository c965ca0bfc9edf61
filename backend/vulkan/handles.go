// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import (
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/vkutil"
)

// Handle conversion
//
// goki/vulkan represents non-dispatchable handles as opaque pointer
// typedefs (VK_USE_64_BIT_PTR_DEFINES is 1 on every target the binding
// supports), while vkutil carries them as raw uint64 values. The
// converters below move the bit pattern across through uintptr; no
// pointee exists and nothing is dereferenced, so the conversion is a
// pure reinterpretation. A zero vkutil handle maps to the binding's nil
// handle and back.
//
// The *Handle direction feeds binding calls; the Wrap* direction stores
// a freshly created native handle into a vkutil-typed slot.

func FramebufferHandle(h vkutil.Framebuffer) vk.Framebuffer {
	return vk.Framebuffer(unsafe.Pointer(uintptr(h)))
}

func WrapFramebuffer(h vk.Framebuffer) vkutil.Framebuffer {
	return vkutil.Framebuffer(uintptr(unsafe.Pointer(h)))
}

func ShaderModuleHandle(h vkutil.ShaderModule) vk.ShaderModule {
	return vk.ShaderModule(unsafe.Pointer(uintptr(h)))
}

func WrapShaderModule(h vk.ShaderModule) vkutil.ShaderModule {
	return vkutil.ShaderModule(uintptr(unsafe.Pointer(h)))
}

func PipelineHandle(h vkutil.Pipeline) vk.Pipeline {
	return vk.Pipeline(unsafe.Pointer(uintptr(h)))
}

func WrapPipeline(h vk.Pipeline) vkutil.Pipeline {
	return vkutil.Pipeline(uintptr(unsafe.Pointer(h)))
}

func PipelineLayoutHandle(h vkutil.PipelineLayout) vk.PipelineLayout {
	return vk.PipelineLayout(unsafe.Pointer(uintptr(h)))
}

func WrapPipelineLayout(h vk.PipelineLayout) vkutil.PipelineLayout {
	return vkutil.PipelineLayout(uintptr(unsafe.Pointer(h)))
}

func DescriptorSetLayoutHandle(h vkutil.DescriptorSetLayout) vk.DescriptorSetLayout {
	return vk.DescriptorSetLayout(unsafe.Pointer(uintptr(h)))
}

func WrapDescriptorSetLayout(h vk.DescriptorSetLayout) vkutil.DescriptorSetLayout {
	return vkutil.DescriptorSetLayout(uintptr(unsafe.Pointer(h)))
}

func BufferViewHandle(h vkutil.BufferView) vk.BufferView {
	return vk.BufferView(unsafe.Pointer(uintptr(h)))
}

func WrapBufferView(h vk.BufferView) vkutil.BufferView {
	return vkutil.BufferView(uintptr(unsafe.Pointer(h)))
}

func ImageViewHandle(h vkutil.ImageView) vk.ImageView {
	return vk.ImageView(unsafe.Pointer(uintptr(h)))
}

func WrapImageView(h vk.ImageView) vkutil.ImageView {
	return vkutil.ImageView(uintptr(unsafe.Pointer(h)))
}

func SamplerHandle(h vkutil.Sampler) vk.Sampler {
	return vk.Sampler(unsafe.Pointer(uintptr(h)))
}

func WrapSampler(h vk.Sampler) vkutil.Sampler {
	return vkutil.Sampler(uintptr(unsafe.Pointer(h)))
}

func SemaphoreHandle(h vkutil.Semaphore) vk.Semaphore {
	return vk.Semaphore(unsafe.Pointer(uintptr(h)))
}

func WrapSemaphore(h vk.Semaphore) vkutil.Semaphore {
	return vkutil.Semaphore(uintptr(unsafe.Pointer(h)))
}

func DescriptorSetHandle(h vkutil.DescriptorSet) vk.DescriptorSet {
	return vk.DescriptorSet(unsafe.Pointer(uintptr(h)))
}

func WrapDescriptorSet(h vk.DescriptorSet) vkutil.DescriptorSet {
	return vkutil.DescriptorSet(uintptr(unsafe.Pointer(h)))
}

func BufferHandle(h vkutil.Buffer) vk.Buffer {
	return vk.Buffer(unsafe.Pointer(uintptr(h)))
}

func WrapBuffer(h vk.Buffer) vkutil.Buffer {
	return vkutil.Buffer(uintptr(unsafe.Pointer(h)))
}

func ImageHandle(h vkutil.Image) vk.Image {
	return vk.Image(unsafe.Pointer(uintptr(h)))
}

func WrapImage(h vk.Image) vkutil.Image {
	return vkutil.Image(uintptr(unsafe.Pointer(h)))
}
