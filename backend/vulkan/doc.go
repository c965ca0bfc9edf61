// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vulkan adapts the vkutil core onto github.com/goki/vulkan.
//
// The package provides the production implementations of
// vkutil.DeviceContext and vkutil.CommandRecorder: a [Context] bound to
// the host's logical device and global descriptor pool, and a [Recorder]
// wrapping an actively recording command buffer. The host application
// creates the device, pool and command buffers (out of vkutil's scope)
// and hands them in:
//
//	dc := vulkan.NewContext(device, pool)
//	rec := vulkan.NewRecorder(cb)
//
//	vkutil.ReleaseFramebuffer(dc, &fb)
//	vkutil.Emit(rec, barrier)
//
// Handle values cross the adapter boundary as raw 64-bit bit patterns.
// The binding types non-dispatchable handles as opaque pointers on its
// supported 64-bit targets, so the conversion round-trips through
// uintptr: [FramebufferHandle] and the other per-category converters
// turn a vkutil handle into the binding's type, and [WrapFramebuffer]
// and friends go the other way when the host stores a freshly created
// native handle into a vkutil slot.
package vulkan
