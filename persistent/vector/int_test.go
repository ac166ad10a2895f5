package vector

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestCapacity(t *testing.T) {
	if capacity(4, 0) != 0 {
		t.Errorf("expected capacity(4, 0) to be 0, is %d", capacity(4, 0))
	}
	if capacity(4, 1) != 4 {
		t.Errorf("expected capacity(4, 1) to be 4, is %d", capacity(4, 1))
	}
	if capacity(4, 2) != 16 {
		t.Errorf("expected capacity(4, 2) to be 16, is %d", capacity(4, 2))
	}
	if capacity(4, 3) != 4*4*4 {
		t.Errorf("expected capacity(4, 3) to be %d, is %d", 4*4*4, capacity(4, 3))
	}
}

func TestTrieGrowthShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fun.vector")
	defer teardown()
	//
	v := Immutable[int](DegreeExponent(2)) // degree 4
	shifts := []uint32{}
	for i := 0; i < 21; i++ {
		v = v.Push(i)
		shifts = append(shifts, v.shift)
	}
	t.Logf("%s", printVec(v))
	// root leaf appears with the 5th element, levels are added with the
	// 9th and the 21st
	if shifts[4] != 0 || shifts[7] != 0 {
		t.Error("expected a flat trie for 5…8 elements, isn't")
	}
	if shifts[8] != 2 {
		t.Errorf("expected shift 2 after the 9th element, is %d", shifts[8])
	}
	if shifts[19] != 2 {
		t.Errorf("expected shift 2 up to the 20th element, is %d", shifts[19])
	}
	if shifts[20] != 4 {
		t.Errorf("expected shift 4 after the 21st element, is %d", shifts[20])
	}
}

func TestTrieLowersOnPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fun.vector")
	defer teardown()
	//
	v := Immutable[int](DegreeExponent(2))
	for i := 0; i < 21; i++ {
		v = v.Push(i)
	}
	if v.shift != 4 {
		t.Fatalf("expected shift 4 for 21 elements, is %d", v.shift)
	}
	v = v.Pop() // drops back below the three-level boundary
	t.Logf("%s", printVec(v))
	if v.shift != 2 {
		t.Errorf("expected shift 2 for 20 elements, is %d", v.shift)
	}
	for i := 0; i < 20; i++ {
		if v.Get(i) != i {
			t.Fatalf("expected element %d at %d after lowering, is %d", i, i, v.Get(i))
		}
	}
}

func TestSharingAfterPush(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fun.vector")
	defer teardown()
	//
	v := Immutable[int](DegreeExponent(2))
	for i := 0; i < 13; i++ {
		v = v.Push(i)
	}
	w := v.Push(13)
	// v and w share the whole trie: the new element went into w's tail
	if v.root != w.root {
		t.Error("expected trie root to be shared after a tail-only push, isn't")
	}
	w = w.Push(14).Push(15).Push(16) // moves the tail into the trie
	if v.root == w.root {
		t.Error("expected a fresh root after pushing a leaf, isn't")
	}
	// untouched leaves are still the same nodes
	if v.root.children[0] != w.root.children[0] {
		t.Error("expected untouched leaf 0 to be shared, isn't")
	}
}

// --- Print tree ------------------------------------------------------------

func printVec[T any](v Vector[T]) string {
	v.props = v.props.init()
	header := fmt.Sprintf("\nVector(length=%d, shift=%d, degree=%d)\n", v.length, v.shift, v.degree)
	tail := fmt.Sprintf("       tail=%v\n", v.tail)
	printer := tp.New()
	printNode(printer, v.root, v.shift/v.bits+1, 0, v.degree)
	return header + tail + printer.String() + "\n"
}

func printNode[T any](printer tp.Tree, node *vnode[T], h, j, k uint32) {
	if node == nil {
		return
	}
	if node.leafs != nil {
		pp := capacity(k, h)
		printer.AddNode(node.String() + fmt.Sprintf("%d  %d…%d", pp, j, j+pp-1))
		return
	}
	pp := capacity(k, h)
	branch := printer.AddBranch(node.String() + fmt.Sprintf("%d  %d…%d", pp, j, j+pp-1))
	pp = capacity(k, h-1)
	for i, ch := range node.children {
		printNode(branch, ch, h-1, (uint32(i)*pp)+j, k)
	}
}

func capacity(k, height uint32) uint32 {
	if height == 0 {
		return 0
	}
	c := k
	for height > 1 {
		c *= k
		height--
	}
	return c
}
