package vector

import (
	"github.com/npillmayer/fun/maybe"
)

// Vector is an immutable sequence of values, backed by a trie of fixed
// fan-out plus a flat tail holding the last few elements. The zero value is
// an empty vector ready to use.
type Vector[T any] struct {
	props
	length uint32
	tail   []T
	root   *vnode[T]
}

// Immutable creates an empty vector.
//
//	vec := vector.Immutable[int]()
//	vec = vec.Push(7)
//
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying tree
// for a vector. The degree of the tree will be 2^exp. Accepted exponents are
// [1…5]; default is 5, i.e. a degree of 32.
//
// Use it like this:
//
//	vec := vector.Immutable[int](DegreeExponent(2))
//
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = int(defaultBits)
		} else if n > 5 {
			n = 5
		}
		p = props{bits: uint32(n)}
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements. O(1).
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Last returns the last element, or Nothing for an empty vector.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if len(v.tail) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Get returns the element at position i. It panics if i is out of range;
// see At for a non-panicking variant. O(log n), side-effect free.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		return v.tail[uint32(i)&v.mask]
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(uint32(i)>>level)&v.mask]
	}
	return node.leafs[uint32(i)&v.mask]
}

// At returns the element at position i, or Nothing if i is out of range.
func (v Vector[T]) At(i int) maybe.Maybe[T] {
	if i < 0 || uint32(i) >= v.length {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.Get(i))
}

// Set returns a new vector with the element at position i replaced by value.
// The receiver is unmodified. It panics if i is out of range.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)&v.mask] = value
		return Vector[T]{length: v.length, props: v.props, root: v.root, tail: newTail}
	}
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (uint32(i) >> level) & v.mask
		child := node.children[subidx].clone()
		node.children[subidx] = child
		node = child
	}
	node.leafs[uint32(i)&v.mask] = value
	return Vector[T]{length: v.length, props: v.props, root: newRoot, tail: v.tail}
}

// Push returns a new vector with value appended at the end. The receiver is
// unmodified and remains independently readable.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if !v.tailFull() { // just append value to tail
		tracer().Debugf("tail not full, appending %v to %v", value, v.tail)
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{length: v.length + 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into the trie
	newTail := []T{value}
	assertThat(v.length >= v.degree, "inconsistency: vector.length expected to be >= degree")
	if v.length == v.degree { // old size = degree ⇒ tail becomes the root leaf
		assertThat(v.root == nil, "inconsistency: vector.root expected to be nil")
		leaf := newLeaf(v.tail)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(0), root: leaf, tail: newTail}
	}
	// The trie holds length-degree elements and has capacity degree<<shift.
	// Deriving growth from this capacity directly means adding exactly one
	// level always suffices: Push moves a single leaf at a time.
	trieSize := v.length - v.degree
	if trieSize == v.degree<<v.shift { // trie is full ⇒ grow one level
		tracer().Debugf("trie is full at %d elements, growing", trieSize)
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.bits, v.degree, v.tail)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(v.shift + v.bits), root: newRoot, tail: newTail}
	}
	// still space in the trie
	newRoot := v.pushLeaf(v.length - 1)
	return Vector[T]{length: v.length + 1, props: v.props, root: newRoot, tail: newTail}
}

// pushLeaf clones the spine from the root towards the new leaf's slot and
// hangs the tail in as a leaf. i is the index of the last element of the
// tail being moved. Untouched siblings are shared, not copied.
func (v Vector[T]) pushLeaf(i uint32) *vnode[T] {
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > v.bits; level -= v.bits {
		subidx := (i >> level) & v.mask
		child := node.children[subidx]
		if child == nil { // subtree does not exist yet
			node.children[subidx] = newPath(level-v.bits, v.bits, v.degree, v.tail)
			return newRoot
		}
		child = child.clone()
		node.children[subidx] = child
		node = child
	}
	node.children[(i>>v.bits)&v.mask] = newLeaf(v.tail)
	return newRoot
}

// Pop returns a new vector with the last element removed. The receiver is
// unmodified. It panics on an empty vector.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.length > 0, "attempt to remove item from empty vector")
	v.props = v.props.init()
	if v.length == 1 {
		return Vector[T]{props: v.props.withShift(0)}
	}
	if ((v.length - 1) & v.mask) > 0 { // tail keeps at least one element
		newTail := cloneTail(v.tail, len(v.tail)-1)
		return Vector[T]{length: v.length - 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail had a single element ⇒ pull the trie's last leaf out as new tail
	newTrieSize := v.length - v.degree - 1
	if newTrieSize == 0 { // root leaf vanishes into the tail
		return Vector[T]{length: v.length - 1, props: v.props.withShift(0), root: nil, tail: v.root.leafs}
	}
	if newTrieSize == 1<<v.shift { // root is left with a single child
		return v.lowerTrie()
	}
	return v.popTrie()
}

func (v Vector[T]) lowerTrie() Vector[T] {
	lowerShift := v.shift - v.bits
	newRoot := v.root.children[0]
	// the trie's last leaf becomes the new tail
	node := v.root.children[1]
	for level := lowerShift; level > 0; level -= v.bits {
		node = node.children[0]
	}
	return Vector[T]{length: v.length - 1, props: v.props.withShift(lowerShift), root: newRoot, tail: node.leafs}
}

func (v Vector[T]) popTrie() Vector[T] {
	newTrieSize := v.length - v.degree - 1
	forkPoint := newTrieSize ^ (newTrieSize - 1) // where does the node-path fork?
	var forked bool
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (newTrieSize >> level) & v.mask
		child := node.children[subidx]
		switch {
		case forked: // below the fork we only walk, the subtree is detached
			node = child
		case (forkPoint >> level) != 0: // detach the leaf's spine here
			forked = true
			node.children[subidx] = nil
			node = child
		default:
			child = child.clone()
			node.children[subidx] = child
			node = child
		}
	}
	return Vector[T]{length: v.length - 1, props: v.props, root: newRoot, tail: node.leafs}
}

// Each calls f for every element in index order, stopping early if f
// returns false.
func (v Vector[T]) Each(f func(i int, value T) bool) {
	i := 0
	var walk func(node *vnode[T]) bool
	walk = func(node *vnode[T]) bool {
		if node == nil {
			return true
		}
		if node.leafs != nil {
			for _, value := range node.leafs {
				if !f(i, value) {
					return false
				}
				i++
			}
			return true
		}
		for _, ch := range node.children {
			if ch == nil { // children are packed left to right
				break
			}
			if !walk(ch) {
				return false
			}
		}
		return true
	}
	if !walk(v.root) {
		return
	}
	for _, value := range v.tail {
		if !f(i, value) {
			return
		}
		i++
	}
}

// Slice returns the vector's elements as a freshly allocated Go slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	v.Each(func(_ int, value T) bool {
		s = append(s, value)
		return true
	})
	return s
}

// Fold reduces a vector left to right, starting with zero.
func Fold[T, A any](v Vector[T], f func(A, T) A, zero A) A {
	acc := zero
	v.Each(func(_ int, value T) bool {
		acc = f(acc, value)
		return true
	})
	return acc
}

// --- Internal bookkeeping --------------------------------------------------

// tailOffset is the index of the first element held in the tail. Elements
// below it live in the trie.
func (v Vector[T]) tailOffset() uint32 {
	return (v.length - 1) &^ v.mask
}

func (v Vector[T]) tailFull() bool {
	return len(v.tail) >= int(v.degree)
}
