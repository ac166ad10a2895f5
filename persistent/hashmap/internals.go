package hashmap

import (
	"fmt"
	"math/bits"
)

const (
	nbits     uint32 = 5            // number of hash bits consumed per level
	tableCap  uint32 = 1 << nbits   // 32 slots per table
	digitMask uint32 = tableCap - 1 // a bit pattern with trailing 1s of length 'nbits'
	mask30    uint32 = 1<<30 - 1
	maxDepth  uint32 = 5 // six levels of five bits = 30 bits of hash
)

// digit extracts the hash chunk used to index tables at the given depth.
func digit(h, depth uint32) uint32 {
	return (h >> (depth * nbits)) & digitMask
}

// node is one of *table, leaf or *collision. Nodes are never mutated once
// they are reachable from a published map; modification paths copy first.
type node[K comparable, V any] interface {
	hashcode() uint32
}

// leaf holds a single key/value pair, identified by the key's folded hash.
type leaf[K comparable, V any] struct {
	hash  uint32
	key   K
	value V
}

func (l leaf[K, V]) hashcode() uint32 { return l.hash }

func (l leaf[K, V]) String() string {
	return fmt.Sprintf("leaf{%v: %v}", l.key, l.value)
}

type pair[K comparable, V any] struct {
	key   K
	value V
}

// collision holds all pairs whose keys share a complete 30-bit hash. It can
// only occur at the bottom level of the trie.
type collision[K comparable, V any] struct {
	hash  uint32
	pairs []pair[K, V]
}

func (c *collision[K, V]) hashcode() uint32 { return c.hash }

// table is a bitmap-compressed branch node: slot i is occupied iff bit i of
// the bitmap is set, and occupied slots are packed densely in slots.
type table[K comparable, V any] struct {
	bitmap uint32
	slots  []node[K, V]
}

func (t *table[K, V]) hashcode() uint32 {
	panic("hashmap: branch tables do not carry a hashcode")
}

func (t *table[K, V]) slot(idx uint32) (node[K, V], bool) {
	bit := uint32(1) << idx
	if t.bitmap&bit == 0 {
		return nil, false
	}
	return t.slots[bits.OnesCount32(t.bitmap&(bit-1))], true
}

// withSlot returns a copy of t with n inserted at idx. The slot must be empty.
func (t *table[K, V]) withSlot(idx uint32, n node[K, V]) *table[K, V] {
	bit := uint32(1) << idx
	assertThat(t.bitmap&bit == 0, "attempt to insert into an occupied table slot %d", idx)
	pos := bits.OnesCount32(t.bitmap & (bit - 1))
	slots := make([]node[K, V], len(t.slots)+1)
	copy(slots, t.slots[:pos])
	slots[pos] = n
	copy(slots[pos+1:], t.slots[pos:])
	return &table[K, V]{bitmap: t.bitmap | bit, slots: slots}
}

// setSlot returns a copy of t with the entry at idx replaced. The slot must
// be occupied.
func (t *table[K, V]) setSlot(idx uint32, n node[K, V]) *table[K, V] {
	bit := uint32(1) << idx
	assertThat(t.bitmap&bit != 0, "attempt to replace an empty table slot %d", idx)
	pos := bits.OnesCount32(t.bitmap & (bit - 1))
	slots := make([]node[K, V], len(t.slots))
	copy(slots, t.slots)
	slots[pos] = n
	return &table[K, V]{bitmap: t.bitmap, slots: slots}
}

// clearSlot returns a copy of t with the entry at idx removed.
func (t *table[K, V]) clearSlot(idx uint32) *table[K, V] {
	bit := uint32(1) << idx
	assertThat(t.bitmap&bit != 0, "attempt to clear an empty table slot %d", idx)
	pos := bits.OnesCount32(t.bitmap & (bit - 1))
	slots := make([]node[K, V], len(t.slots)-1)
	copy(slots, t.slots[:pos])
	copy(slots[pos:], t.slots[pos+1:])
	return &table[K, V]{bitmap: t.bitmap &^ bit, slots: slots}
}

func twoSlotTable[K comparable, V any](ia uint32, a node[K, V], ib uint32, b node[K, V]) *table[K, V] {
	assertThat(ia != ib, "attempt to put two nodes into table slot %d", ia)
	t := &table[K, V]{bitmap: 1<<ia | 1<<ib}
	if ia < ib {
		t.slots = []node[K, V]{a, b}
	} else {
		t.slots = []node[K, V]{b, a}
	}
	return t
}

// descend resolves two nodes with different hashcodes which collide at the
// given depth: tables are chained downwards until the hash digits diverge.
// Termination is guaranteed since within 30 bits the digits cannot agree on
// all six levels for distinct hashcodes.
func descend[K comparable, V any](a, b node[K, V], depth uint32) node[K, V] {
	assertThat(depth <= maxDepth, "inconsistency: identical hashcodes must form a collision bucket")
	da, db := digit(a.hashcode(), depth), digit(b.hashcode(), depth)
	if da != db {
		return twoSlotTable(da, a, db, b)
	}
	sub := descend(a, b, depth+1)
	return &table[K, V]{bitmap: 1 << da, slots: []node[K, V]{sub}}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashmap: "+msg, msgargs...)
		panic(msg)
	}
}
