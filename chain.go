package vkutil

// Extension chains
//
// Optional feature descriptors are linked into a creation request as a
// singly linked chain, mirroring the backend's pNext convention. The
// chain must stay acyclic and duplicate-free: a node linked twice would
// either self-reference or produce an endless traversal when the chain
// is consumed, so [LinkNode] suppresses duplicate inserts.

// ChainNode is one extension descriptor in a request chain. Concrete
// descriptors embed [ChainLink] to satisfy it.
type ChainNode interface {
	// NextNode returns the following node, or nil at the tail.
	NextNode() ChainNode

	// SetNextNode links n after this node. Used by [LinkNode]; callers
	// normally do not invoke it directly.
	SetNextNode(n ChainNode)
}

// StructureType identifies the kind of extension descriptor a chain
// node carries, mirroring the backend's structure type tags.
type StructureType uint32

// ChainLink is the embeddable base carrying a descriptor's type tag and
// its position in the chain. The zero value is an unlinked tail.
type ChainLink struct {
	SType StructureType
	next  ChainNode
}

func (l *ChainLink) NextNode() ChainNode     { return l.next }
func (l *ChainLink) SetNextNode(n ChainNode) { l.next = n }

// LinkNode appends node at the tail of the chain starting at head,
// preserving arrival order. If node is already reachable from head the
// chain is left unchanged, so duplicate inserts are safe no-ops.
//
// node must be unlinked (its next reference empty) and head must be the
// head of a valid acyclic chain. Chains are short — bounded by the
// number of optional feature descriptors requested — so the linear walk
// is fine.
func LinkNode(head, node ChainNode) {
	cur := head
	for cur.NextNode() != nil {
		if cur.NextNode() == node {
			return
		}
		cur = cur.NextNode()
	}
	cur.SetNextNode(node)
}

// ChainLen returns the number of nodes in the chain starting at head,
// counting head itself. A nil head has length zero.
func ChainLen(head ChainNode) int {
	n := 0
	for cur := head; cur != nil; cur = cur.NextNode() {
		n++
	}
	return n
}

// ChainContains reports whether node is reachable from head.
func ChainContains(head, node ChainNode) bool {
	for cur := head; cur != nil; cur = cur.NextNode() {
		if cur == node {
			return true
		}
	}
	return false
}
