// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vulkan

import (
	"testing"
	"unsafe"
)

// extHeader stands in for an extensible create-info structure: the
// standard sType/pNext header followed by a payload field.
type extHeader struct {
	sType   uint32
	pNext   unsafe.Pointer
	payload uint64
}

func TestAppendChain(t *testing.T) {
	head := &extHeader{sType: 1}
	a := &extHeader{sType: 2}
	b := &extHeader{sType: 3}

	AppendChain(unsafe.Pointer(head), unsafe.Pointer(a))
	AppendChain(unsafe.Pointer(head), unsafe.Pointer(b))

	if head.pNext != unsafe.Pointer(a) {
		t.Fatal("head does not link to first node")
	}
	if a.pNext != unsafe.Pointer(b) {
		t.Fatal("first node does not link to second")
	}
	if b.pNext != nil {
		t.Fatal("tail node has a next reference")
	}
}

func TestAppendChainDuplicate(t *testing.T) {
	head := &extHeader{sType: 1}
	a := &extHeader{sType: 2}

	AppendChain(unsafe.Pointer(head), unsafe.Pointer(a))
	AppendChain(unsafe.Pointer(head), unsafe.Pointer(a))

	if a.pNext != nil {
		t.Fatal("duplicate append linked the node to itself")
	}

	// Traversal terminates: count the nodes.
	n := 0
	for cur := (*baseStructure)(unsafe.Pointer(head)); cur != nil; cur = (*baseStructure)(cur.pNext) {
		n++
		if n > 4 {
			t.Fatal("chain cycles")
		}
	}
	if n != 2 {
		t.Errorf("chain length = %d, want 2", n)
	}
}
