// Package vkutil provides low-level utilities for Vulkan-based rendering
// backends: deterministic teardown of device objects, pipeline barrier
// construction, extension structure chains, and result-code diagnostics.
//
// # Overview
//
// vkutil sits beneath a rendering context. It does not create devices,
// swapchains or pipelines; the host application owns those and hands
// vkutil a narrow [DeviceContext] so that object teardown can reach the
// native destroy entry points. Everything in this package is a stateless
// free function over caller-owned storage.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/vkutil"
//	    vkbackend "github.com/gogpu/vkutil/backend/vulkan"
//	)
//
//	dc := vkbackend.NewContext(device, descriptorPool)
//
//	// Destroy a framebuffer exactly once; the slot is reset so a second
//	// call is a no-op.
//	vkutil.ReleaseFramebuffer(dc, &fb)
//	vkutil.ReleaseFramebuffer(dc, &fb) // safe
//
//	// Record a buffer barrier for a transfer-write -> shader-read hazard.
//	b := vkutil.NewBufferBarrier(buf,
//	    vkutil.AccessTransferWrite, vkutil.AccessShaderRead,
//	    0, vkutil.WholeSize,
//	    vkutil.StageTransfer, vkutil.StageFragmentShader)
//	vkutil.Emit(rec, b)
//
// # Architecture
//
// The root package is backend-agnostic and fully testable without a GPU:
// native calls are reached only through the [DeviceContext] and
// [CommandRecorder] interfaces. The backend/vulkan package adapts both
// onto github.com/goki/vulkan for production use.
//
// # Concurrency
//
// vkutil adds no locking. A handle slot and a recording context each
// have a single writer; callers serialize access and guarantee that the
// GPU is done with an object before releasing it.
package vkutil
