// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import (
	vk "github.com/goki/vulkan"

	"github.com/gogpu/vkutil"
)

// FromResult converts a native result code to a vkutil.Status. The two
// domains share numeric values, so this is a plain conversion; it exists
// to keep the cast in one place.
func FromResult(res vk.Result) vkutil.Status {
	return vkutil.Status(res)
}

// CheckResult translates a native result into a classified error,
// reporting failures through the package diagnostic sink. Non-error
// results (success, suboptimal, ...) yield nil.
//
//	if err := vulkan.CheckResult("vkCreateSampler", res); err != nil {
//	    return err
//	}
func CheckResult(op string, res vk.Result) error {
	status := FromResult(res)
	if !status.IsError() {
		return nil
	}
	vkutil.LogFailure(op, status, "native call failed")
	return vkutil.FromStatus(op, status)
}
