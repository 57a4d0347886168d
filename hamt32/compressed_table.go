package hamt32

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lleo/go-functional-collections/key"
)

const halfIndent = "  "
const fullIndent = "    "

// The compressedTable is the only kind of table in the Trie. It only stores
// the entries that are populated.
//
// It records which table entries are populated using a bit map called nodeMap.
// Bit i of the nodeMap is set when the table has an entry for index i.
//
// It stores the nodes in a go slice starting with the node corresponding to
// the Least Significant Bit(LSB) of the nodeMap. So the number of entries in
// the nodes slice is equal to the number of bits set in the nodeMap, and the
// node for index i is at nodes[popcount(nodeMap & (1<<i - 1))]; that is the
// number of populated entries below i.
//
// A compressedTable is never modified once it is reachable from a Hamt; every
// method that changes one returns a new copy.
type compressedTable[K key.Key, V any] struct {
	nodeMap uint32
	nodes   []nodeI[K, V]
}

// newCompressedTable() creates a table with the single entry n at idx.
func newCompressedTable[K key.Key, V any](idx uint, n nodeI[K, V]) *compressedTable[K, V] {
	var ct = new(compressedTable[K, V])
	ct.nodeMap = 1 << idx
	ct.nodes = []nodeI[K, V]{n}
	return ct
}

func (t *compressedTable[K, V]) check() {
	assert(bits.OnesCount32(t.nodeMap) == len(t.nodes),
		"compressedTable: popcount(nodeMap) != len(nodes)")
}

func (t *compressedTable[K, V]) nentries() uint {
	return uint(len(t.nodes))
}

func (t *compressedTable[K, V]) has(idx uint) bool {
	return t.nodeMap&(1<<idx) != 0
}

// pos() is the position in t.nodes of the entry for idx.
func (t *compressedTable[K, V]) pos(idx uint) uint {
	var m = uint32(1<<idx) - 1
	return uint(bits.OnesCount32(t.nodeMap & m))
}

func (t *compressedTable[K, V]) get(idx uint) nodeI[K, V] {
	if !t.has(idx) {
		return nil
	}
	return t.nodes[t.pos(idx)]
}

func (t *compressedTable[K, V]) copy() *compressedTable[K, V] {
	var nt = new(compressedTable[K, V])
	nt.nodeMap = t.nodeMap
	nt.nodes = make([]nodeI[K, V], len(t.nodes))
	copy(nt.nodes, t.nodes)
	return nt
}

// insert() returns a copy of t with entry at the unpopulated idx.
func (t *compressedTable[K, V]) insert(idx uint, entry nodeI[K, V]) *compressedTable[K, V] {
	assert(!t.has(idx), "compressedTable.insert: idx already populated")

	var i = t.pos(idx)

	var nt = new(compressedTable[K, V])
	nt.nodeMap = t.nodeMap | 1<<idx

	nt.nodes = make([]nodeI[K, V], len(t.nodes)+1)
	copy(nt.nodes, t.nodes[:i])
	nt.nodes[i] = entry
	copy(nt.nodes[i+1:], t.nodes[i:])

	nt.check()
	return nt
}

// replace() returns a copy of t with entry at the populated idx. A table
// whose only entry becomes a flatLeaf collapses into that flatLeaf.
func (t *compressedTable[K, V]) replace(idx uint, entry nodeI[K, V]) nodeI[K, V] {
	assert(t.has(idx), "compressedTable.replace: idx not populated")

	if len(t.nodes) == 1 {
		if _, isFlat := entry.(*flatLeaf[K, V]); isFlat {
			return entry
		}
	}

	var nt = t.copy()
	nt.nodes[t.pos(idx)] = entry

	return nt
}

// remove() returns t without the entry at idx. That is nil when nothing is
// left, and the remaining flatLeaf when only a flatLeaf is left. A lone table
// can not be lifted as its entries are indexed for its own depth, and a
// collisionLeaf stays below the last level.
func (t *compressedTable[K, V]) remove(idx uint) nodeI[K, V] {
	assert(t.has(idx), "compressedTable.remove: idx not populated")

	var i = t.pos(idx)

	switch len(t.nodes) {
	case 1:
		return nil
	case 2:
		if leaf, isFlat := t.nodes[1-i].(*flatLeaf[K, V]); isFlat {
			return leaf
		}
	}

	var nt = new(compressedTable[K, V])
	nt.nodeMap = t.nodeMap &^ (1 << idx)

	nt.nodes = make([]nodeI[K, V], len(t.nodes)-1)
	copy(nt.nodes, t.nodes[:i])
	copy(nt.nodes[i:], t.nodes[i+1:])

	nt.check()
	return nt
}

func nodeMapString(nodeMap uint32) string {
	var strs = make([]string, 4)

	var top2 = nodeMap >> 30
	strs[0] = fmt.Sprintf("%02b", top2)

	const tenBitMask uint32 = 1<<10 - 1
	for i := uint(0); i < 3; i++ {
		tenBitVal := (nodeMap & (tenBitMask << (i * 10))) >> (i * 10)
		strs[3-i] = fmt.Sprintf("%010b", tenBitVal)
	}

	return strings.Join(strs, " ")
}

func (t *compressedTable[K, V]) String() string {
	return fmt.Sprintf("compressedTable{nentries()=%d, nodeMap=%s}", t.nentries(), nodeMapString(t.nodeMap))
}

// LongString() recursively dumps the table and everything below it.
func (t *compressedTable[K, V]) LongString(indent string, depth uint) string {
	var strs = make([]string, 2+len(t.nodes))

	strs[0] = indent + fmt.Sprintf("compressedTable{depth=%d, nentries()=%d, nodeMap=%s,", depth, t.nentries(), nodeMapString(t.nodeMap))

	for i, n := range t.nodes {
		if tt, ok := n.(*compressedTable[K, V]); ok {
			strs[1+i] = indent + fmt.Sprintf(halfIndent+"t.nodes[%d]:\n%s", i, tt.LongString(indent+fullIndent, depth+1))
		} else {
			strs[1+i] = indent + fmt.Sprintf(halfIndent+"t.nodes[%d]: %s", i, n)
		}
	}

	strs[len(strs)-1] = indent + "}"

	return strings.Join(strs, "\n")
}
