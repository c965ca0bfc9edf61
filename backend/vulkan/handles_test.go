// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import (
	"testing"

	"github.com/gogpu/vkutil"
)

// The converters only reinterpret the bit pattern; nothing dereferences
// the resulting pointer values, so round-tripping arbitrary patterns is
// safe to exercise at runtime.

func TestHandleRoundTrip(t *testing.T) {
	const raw = 0x7f12_3456_7890

	if got := WrapFramebuffer(FramebufferHandle(vkutil.Framebuffer(raw))); got != raw {
		t.Errorf("Framebuffer round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapShaderModule(ShaderModuleHandle(vkutil.ShaderModule(raw))); got != raw {
		t.Errorf("ShaderModule round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapPipeline(PipelineHandle(vkutil.Pipeline(raw))); got != raw {
		t.Errorf("Pipeline round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapPipelineLayout(PipelineLayoutHandle(vkutil.PipelineLayout(raw))); got != raw {
		t.Errorf("PipelineLayout round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapDescriptorSetLayout(DescriptorSetLayoutHandle(vkutil.DescriptorSetLayout(raw))); got != raw {
		t.Errorf("DescriptorSetLayout round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapBufferView(BufferViewHandle(vkutil.BufferView(raw))); got != raw {
		t.Errorf("BufferView round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapImageView(ImageViewHandle(vkutil.ImageView(raw))); got != raw {
		t.Errorf("ImageView round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapSampler(SamplerHandle(vkutil.Sampler(raw))); got != raw {
		t.Errorf("Sampler round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapSemaphore(SemaphoreHandle(vkutil.Semaphore(raw))); got != raw {
		t.Errorf("Semaphore round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapDescriptorSet(DescriptorSetHandle(vkutil.DescriptorSet(raw))); got != raw {
		t.Errorf("DescriptorSet round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapBuffer(BufferHandle(vkutil.Buffer(raw))); got != raw {
		t.Errorf("Buffer round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
	if got := WrapImage(ImageHandle(vkutil.Image(raw))); got != raw {
		t.Errorf("Image round trip = %#x, want %#x", uint64(got), uint64(raw))
	}
}

func TestHandleNilMapsToZero(t *testing.T) {
	if h := FramebufferHandle(0); h != nil {
		t.Errorf("FramebufferHandle(0) = %v, want nil", h)
	}
	if got := WrapFramebuffer(nil); got != 0 {
		t.Errorf("WrapFramebuffer(nil) = %#x, want 0", uint64(got))
	}
	if h := DescriptorSetHandle(0); h != nil {
		t.Errorf("DescriptorSetHandle(0) = %v, want nil", h)
	}
	if got := WrapDescriptorSet(nil); got != 0 {
		t.Errorf("WrapDescriptorSet(nil) = %#x, want 0", uint64(got))
	}
}
