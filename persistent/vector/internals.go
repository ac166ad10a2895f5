package vector

import (
	"fmt"
	"strings"
)

const defaultBits uint32 = 5 // will produce nodes with degree 2^5 = 32

type props struct {
	bits   uint32 // number of bits to use per level
	degree uint32 // degree is always 2 ^ bits
	mask   uint32 // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
	shift  uint32 // we do not store the trie height h, but rather bits*(h-1)
}

// init makes the zero value of a vector usable by falling back to the
// default degree.
func (p props) init() props {
	if p.bits == 0 {
		p.bits = defaultBits
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
	}
	return p
}

func (p props) withShift(shift uint32) props {
	p.shift = shift
	return p
}

// vnode represents a node in the trie a vector is made of. Inner nodes carry
// child links, leaf nodes carry values. A node is never mutated once it is
// reachable from a published vector; modification paths clone first.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], int(k)),
	}
}

func newLeaf[T any](tail []T) *vnode[T] {
	l := make([]T, len(tail))
	copy(l, tail)
	return &vnode[T]{leafs: l}
}

// clone returns a shallow copy of a node: slot references are copied, the
// subtrees behind them are shared. This is the basis of copy-on-write.
func (node vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail[:min(l, len(tail))])
	return newTail
}

// newPath wraps the tail in a chain of unary inner nodes, resulting in a
// (sub-)trie for level `levels` with the tail as its single leaf.
func newPath[T any](levels, bits, k uint32, tail []T) *vnode[T] {
	node := newLeaf(tail)
	for level := levels; level > 0; level -= bits {
		top := emptyNode[T](k)
		top.children[0] = node
		node = top
	}
	return node
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leafs != nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
