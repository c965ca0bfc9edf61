// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import (
	vk "github.com/goki/vulkan"

	"github.com/gogpu/vkutil"
)

// Recorder implements vkutil.CommandRecorder over a command buffer that
// is currently recording. Recording is single-writer: one goroutine per
// Recorder. The command buffer must stay in the recording state for the
// Recorder's lifetime; vkutil cannot observe the state and treats
// emission outside recording as a programmer error.
type Recorder struct {
	cb vk.CommandBuffer
}

var _ vkutil.CommandRecorder = (*Recorder)(nil)

// NewRecorder wraps an actively recording command buffer.
func NewRecorder(cb vk.CommandBuffer) *Recorder {
	return &Recorder{cb: cb}
}

// PipelineBarrier records one buffer memory barrier into the command
// buffer. Descriptors are translated field for field; no batching or
// reordering happens here.
func (r *Recorder) PipelineBarrier(b vkutil.BufferBarrier) {
	info := vk.BufferMemoryBarrier{
		SType:               vk.StructureTypeBufferMemoryBarrier,
		SrcAccessMask:       vk.AccessFlags(b.SrcAccess),
		DstAccessMask:       vk.AccessFlags(b.DstAccess),
		SrcQueueFamilyIndex: b.SrcQueueFamily,
		DstQueueFamilyIndex: b.DstQueueFamily,
		Buffer:              BufferHandle(b.Buffer),
		Offset:              vk.DeviceSize(b.Offset),
		Size:                vk.DeviceSize(b.Size),
	}
	vk.CmdPipelineBarrier(r.cb,
		vk.PipelineStageFlags(b.SrcStage), vk.PipelineStageFlags(b.DstStage),
		0,
		0, nil,
		1, []vk.BufferMemoryBarrier{info},
		0, nil,
	)
}

// ImagePipelineBarrier records one image memory barrier into the
// command buffer.
func (r *Recorder) ImagePipelineBarrier(b vkutil.ImageBarrier) {
	info := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       vk.AccessFlags(b.SrcAccess),
		DstAccessMask:       vk.AccessFlags(b.DstAccess),
		OldLayout:           vk.ImageLayout(b.OldLayout),
		NewLayout:           vk.ImageLayout(b.NewLayout),
		SrcQueueFamilyIndex: b.SrcQueueFamily,
		DstQueueFamilyIndex: b.DstQueueFamily,
		Image:               ImageHandle(b.Image),
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     vk.ImageAspectFlags(b.Aspect),
			BaseMipLevel:   b.BaseMipLevel,
			LevelCount:     b.LevelCount,
			BaseArrayLayer: b.BaseArrayLayer,
			LayerCount:     b.LayerCount,
		},
	}
	vk.CmdPipelineBarrier(r.cb,
		vk.PipelineStageFlags(b.SrcStage), vk.PipelineStageFlags(b.DstStage),
		0,
		0, nil,
		0, nil,
		1, []vk.ImageMemoryBarrier{info},
	)
}
