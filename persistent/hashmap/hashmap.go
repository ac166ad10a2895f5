package hashmap

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/npillmayer/fun/maybe"
)

// Map is an immutable mapping of keys to values. The zero value is an empty
// map ready to use.
type Map[K comparable, V any] struct {
	root   node[K, V]
	length uint32
	hash   func(K) uint32
}

// Immutable creates an empty map.
//
//	m := hashmap.Immutable[string, int]()
//	m = m.With("degree", 32)
//
func Immutable[K comparable, V any](opts ...Option[K]) Map[K, V] {
	m := Map[K, V]{}
	for _, option := range opts {
		m.hash = option.config(m.hash)
	}
	return m
}

// Option is a type to help initializing maps at creation time.
type Option[K comparable] struct {
	config func(func(K) uint32) func(K) uint32
}

// HashFunc is an option to supply a custom hash function for keys. The
// default hashes a key's fmt representation with FNV-1a, which is correct
// for every comparable key type but not the fastest choice.
//
// Use it like this:
//
//	m := hashmap.Immutable[int, string](HashFunc(func(k int) uint32 {
//	    return uint32(k) * 2654435761
//	}))
//
func HashFunc[K comparable](h func(K) uint32) Option[K] {
	return Option[K]{config: func(func(K) uint32) func(K) uint32 {
		return h
	}}
}

func defaultHash[K comparable](key K) uint32 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%v", key)
	return h.Sum32()
}

// init makes the zero value of a map usable by falling back to the default
// hash function.
func (m Map[K, V]) init() Map[K, V] {
	if m.hash == nil {
		m.hash = defaultHash[K]
	}
	return m
}

// hashFor folds the two high hash bits into the lower 30, as the trie
// consumes six 5-bit digits (see lleo's xor-fold in the FNV documentation).
func (m Map[K, V]) hashFor(key K) uint32 {
	h := m.hash(key)
	return (h >> 30) ^ (h & mask30)
}

// --- API -------------------------------------------------------------------

// Len returns the number of key/value pairs. O(1).
func (m Map[K, V]) Len() int {
	return int(m.length)
}

// Get returns the value associated with key. Absence of a key is a normal
// outcome, reported through ok, never an error.
func (m Map[K, V]) Get(key K) (V, bool) {
	var none V
	if m.root == nil {
		return none, false
	}
	m = m.init()
	h := m.hashFor(key)
	n := m.root
	for depth := uint32(0); ; depth++ {
		switch c := n.(type) {
		case leaf[K, V]:
			if c.hash == h && c.key == key {
				return c.value, true
			}
			return none, false
		case *collision[K, V]:
			if c.hash == h {
				for _, p := range c.pairs {
					if p.key == key {
						return p.value, true
					}
				}
			}
			return none, false
		case *table[K, V]:
			child, ok := c.slot(digit(h, depth))
			if !ok {
				return none, false
			}
			n = child
		}
	}
}

// Lookup is Get with an optional-typed return.
func (m Map[K, V]) Lookup(key K) maybe.Maybe[V] {
	return maybe.FromOk(m.Get(key))
}

// With returns a new map with key associated to value, inserting or
// replacing as necessary. The receiver is unmodified; all branches not on
// the key's path are shared between both maps.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	m = m.init()
	h := m.hashFor(key)
	if m.root == nil {
		return Map[K, V]{root: leaf[K, V]{hash: h, key: key, value: value}, length: 1, hash: m.hash}
	}
	root, added := insert(m.root, h, 0, key, value)
	length := m.length
	if added {
		length++
	}
	return Map[K, V]{root: root, length: length, hash: m.hash}
}

func insert[K comparable, V any](n node[K, V], h, depth uint32, key K, value V) (node[K, V], bool) {
	switch c := n.(type) {
	case leaf[K, V]:
		if c.hash == h {
			if c.key == key { // replace
				return leaf[K, V]{hash: h, key: key, value: value}, false
			}
			tracer().Debugf("full hash collision of %v and %v", c.key, key)
			return &collision[K, V]{hash: h, pairs: []pair[K, V]{{c.key, c.value}, {key, value}}}, true
		}
		return descend[K, V](c, leaf[K, V]{hash: h, key: key, value: value}, depth), true
	case *collision[K, V]:
		if c.hash != h {
			return descend[K, V](c, leaf[K, V]{hash: h, key: key, value: value}, depth), true
		}
		pairs := make([]pair[K, V], len(c.pairs), len(c.pairs)+1)
		copy(pairs, c.pairs)
		for i, p := range pairs {
			if p.key == key {
				pairs[i] = pair[K, V]{key: key, value: value}
				return &collision[K, V]{hash: h, pairs: pairs}, false
			}
		}
		pairs = append(pairs, pair[K, V]{key: key, value: value})
		return &collision[K, V]{hash: h, pairs: pairs}, true
	case *table[K, V]:
		idx := digit(h, depth)
		child, ok := c.slot(idx)
		if !ok {
			return c.withSlot(idx, leaf[K, V]{hash: h, key: key, value: value}), true
		}
		sub, added := insert(child, h, depth+1, key, value)
		return c.setSlot(idx, sub), added
	}
	panic("hashmap: unknown node type")
}

// Without returns a new map with key removed. If key is absent, the receiver
// itself is returned: sharing is safe since maps are immutable.
func (m Map[K, V]) Without(key K) Map[K, V] {
	if m.root == nil {
		return m
	}
	m = m.init()
	h := m.hashFor(key)
	root, removed := remove(m.root, h, 0, key)
	if !removed {
		return m
	}
	return Map[K, V]{root: root, length: m.length - 1, hash: m.hash}
}

func remove[K comparable, V any](n node[K, V], h, depth uint32, key K) (node[K, V], bool) {
	switch c := n.(type) {
	case leaf[K, V]:
		if c.hash == h && c.key == key {
			return nil, true
		}
		return n, false
	case *collision[K, V]:
		if c.hash != h {
			return n, false
		}
		for i, p := range c.pairs {
			if p.key == key {
				if len(c.pairs) == 2 { // bucket degenerates into a leaf
					q := c.pairs[1-i]
					return leaf[K, V]{hash: h, key: q.key, value: q.value}, true
				}
				pairs := make([]pair[K, V], 0, len(c.pairs)-1)
				pairs = append(pairs, c.pairs[:i]...)
				pairs = append(pairs, c.pairs[i+1:]...)
				return &collision[K, V]{hash: h, pairs: pairs}, true
			}
		}
		return n, false
	case *table[K, V]:
		idx := digit(h, depth)
		child, ok := c.slot(idx)
		if !ok {
			return n, false
		}
		sub, removed := remove(child, h, depth+1, key)
		if !removed {
			return n, false
		}
		var nt *table[K, V]
		if sub == nil {
			nt = c.clearSlot(idx)
		} else {
			nt = c.setSlot(idx, sub)
		}
		if len(nt.slots) == 0 {
			return nil, true
		}
		// collapse tables left holding a single leaf or bucket, so removal
		// undoes the chains built by descend
		if len(nt.slots) == 1 {
			if _, isTable := nt.slots[0].(*table[K, V]); !isTable {
				tracer().Debugf("collapsing single-entry table at depth %d", depth)
				return nt.slots[0], true
			}
		}
		return nt, true
	}
	panic("hashmap: unknown node type")
}

// Each calls f for every key/value pair, in no particular order, stopping
// early if f returns false.
func (m Map[K, V]) Each(f func(key K, value V) bool) {
	if m.root != nil {
		each(m.root, f)
	}
}

func each[K comparable, V any](n node[K, V], f func(K, V) bool) bool {
	switch c := n.(type) {
	case leaf[K, V]:
		return f(c.key, c.value)
	case *collision[K, V]:
		for _, p := range c.pairs {
			if !f(p.key, p.value) {
				return false
			}
		}
	case *table[K, V]:
		for _, child := range c.slots {
			if !each(child, f) {
				return false
			}
		}
	}
	return true
}

// Keys returns all keys, in no particular order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.length)
	m.Each(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m Map[K, V]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	m.Each(func(key K, value V) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(fmt.Sprintf("%v: %v", key, value))
		return true
	})
	b.WriteByte('}')
	return b.String()
}
