package vkutil

import "testing"

// testFeature is a minimal extension descriptor for chain tests.
type testFeature struct {
	ChainLink
	name string
}

func chainNames(head ChainNode) []string {
	var names []string
	for cur := head; cur != nil; cur = cur.NextNode() {
		names = append(names, cur.(*testFeature).name)
	}
	return names
}

func TestLinkNodeAppendsInOrder(t *testing.T) {
	head := &testFeature{ChainLink: ChainLink{SType: 1}, name: "head"}
	a := &testFeature{ChainLink: ChainLink{SType: 2}, name: "a"}
	b := &testFeature{ChainLink: ChainLink{SType: 3}, name: "b"}
	c := &testFeature{ChainLink: ChainLink{SType: 4}, name: "c"}

	LinkNode(head, a)
	LinkNode(head, b)
	LinkNode(head, c)

	got := chainNames(head)
	want := []string{"head", "a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("chain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chain[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinkNodeDuplicateIsNoOp(t *testing.T) {
	head := &testFeature{name: "head"}
	x := &testFeature{name: "x"}
	y := &testFeature{name: "y"}

	LinkNode(head, x)
	LinkNode(head, y)
	LinkNode(head, x) // duplicate: must not relink or cycle

	if got := ChainLen(head); got != 3 {
		t.Errorf("ChainLen = %d, want 3", got)
	}
	got := chainNames(head) // traversal terminating proves acyclicity
	want := []string{"head", "x", "y"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chain[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinkNodeTailDuplicate(t *testing.T) {
	head := &testFeature{name: "head"}
	x := &testFeature{name: "x"}

	LinkNode(head, x)
	LinkNode(head, x)

	if got := ChainLen(head); got != 2 {
		t.Errorf("ChainLen = %d, want 2", got)
	}
	if x.NextNode() != nil {
		t.Error("tail node gained a next reference; chain would cycle")
	}
}

func TestChainLen(t *testing.T) {
	if got := ChainLen(nil); got != 0 {
		t.Errorf("ChainLen(nil) = %d, want 0", got)
	}
	head := &testFeature{name: "head"}
	if got := ChainLen(head); got != 1 {
		t.Errorf("ChainLen(head) = %d, want 1", got)
	}
}

func TestChainContains(t *testing.T) {
	head := &testFeature{name: "head"}
	x := &testFeature{name: "x"}
	stranger := &testFeature{name: "stranger"}

	LinkNode(head, x)

	if !ChainContains(head, head) {
		t.Error("ChainContains(head, head) = false, want true")
	}
	if !ChainContains(head, x) {
		t.Error("ChainContains(head, x) = false, want true")
	}
	if ChainContains(head, stranger) {
		t.Error("ChainContains(head, stranger) = true, want false")
	}
}
