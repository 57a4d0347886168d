package hamt32

import (
	"iter"

	"github.com/lleo/go-functional-collections/key"
)

type iterFrame[K key.Key, V any] struct {
	table *compressedTable[K, V]
	next  int // position in table.nodes to visit next
}

// Iter walks a Hamt depth first. The order is fixed by the keys' hashes, not
// by insertion order; every entry is visited exactly once.
//
// An Iter is never invalidated, as the Hamt it walks can not change. It is not
// safe for concurrent use, but any number of Iters may walk the same Hamt.
type Iter[K key.Key, V any] struct {
	stack [MaxDepth]iterFrame[K, V]
	sp    int // top of stack; -1 when there are no tables left

	flat *flatLeaf[K, V] // pending root leaf

	coll *collisionLeaf[K, V]
	ci   int // next position in coll.kvs
}

// Iter returns a fresh cursor positioned before the first entry of h.
func (h *Hamt[K, V]) Iter() *Iter[K, V] {
	var it = &Iter[K, V]{sp: -1}
	switch n := h.root.(type) {
	case *compressedTable[K, V]:
		it.sp = 0
		it.stack[0] = iterFrame[K, V]{table: n}
	case *flatLeaf[K, V]:
		it.flat = n
	case *collisionLeaf[K, V]:
		it.coll = n
	}
	return it
}

// Next returns the next key/val pair; the bool is false once the walk is
// done.
func (it *Iter[K, V]) Next() (K, V, bool) {
	for {
		if it.flat != nil {
			var l = it.flat
			it.flat = nil
			return l.key, l.val, true
		}

		if it.coll != nil {
			if it.ci < len(it.coll.kvs) {
				var kv = it.coll.kvs[it.ci]
				it.ci++
				return kv.Key, kv.Val, true
			}
			it.coll = nil
		}

		if it.sp < 0 {
			var k K
			var v V
			return k, v, false
		}

		var f = &it.stack[it.sp]
		if f.next == len(f.table.nodes) {
			it.sp--
			continue
		}
		var n = f.table.nodes[f.next]
		f.next++

		switch n := n.(type) {
		case *compressedTable[K, V]:
			it.sp++
			assert(it.sp < int(MaxDepth), "Iter.Next: Trie deeper than MaxDepth")
			it.stack[it.sp] = iterFrame[K, V]{table: n}
		case *flatLeaf[K, V]:
			it.flat = n
		case *collisionLeaf[K, V]:
			it.coll, it.ci = n, 0
		}
	}
}

// All returns an iterator over every key/val pair of h.
func (h *Hamt[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var it = h.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of h.
func (h *Hamt[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range h.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of h.
func (h *Hamt[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range h.All() {
			if !yield(v) {
				return
			}
		}
	}
}
