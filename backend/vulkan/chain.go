// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import "unsafe"

// baseStructure mirrors the sType/pNext header every extensible Vulkan
// structure starts with, letting the chain walk treat nodes uniformly
// without knowing their concrete types.
type baseStructure struct {
	sType uint32
	pNext unsafe.Pointer
}

// AppendChain links node at the tail of the pNext chain starting at
// head, for wiring an extension structure into a create-info request.
// If node is already reachable in the chain, the chain is left
// unchanged; linking the same structure twice would otherwise cycle the
// chain and hang the driver's traversal.
//
// Both pointers must reference structures that begin with the standard
// sType/pNext header, and node's own pNext must be nil. The caller must
// keep node alive until the create call consumes the chain.
func AppendChain(head, node unsafe.Pointer) {
	last := (*baseStructure)(head)
	for last.pNext != nil {
		if last.pNext == node {
			return
		}
		last = (*baseStructure)(last.pNext)
	}
	last.pNext = node
}
