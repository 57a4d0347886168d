package hamt32

import (
	"fmt"
	"strings"

	"github.com/lleo/go-functional-collections/key"
)

// collisionLeaf holds two or more key/val pairs whose keys all have the same
// 32 bit hash. The pairs are kept in insertion order.
type collisionLeaf[K key.Key, V any] struct {
	hash32 uint32 //k.Hash32() of every key
	kvs    keyVals[K, V]
}

func newCollisionLeaf[K key.Key, V any](h32 uint32, kvs keyVals[K, V]) *collisionLeaf[K, V] {
	assert(len(kvs) >= 2, "newCollisionLeaf: fewer than two key/val pairs")

	var leaf = new(collisionLeaf[K, V])
	leaf.hash32 = h32
	leaf.kvs = kvs

	return leaf
}

func (l *collisionLeaf[K, V]) hash() uint32 {
	return l.hash32
}

func (l *collisionLeaf[K, V]) String() string {
	var kvstrs = make([]string, len(l.kvs))
	for i := 0; i < len(l.kvs); i++ {
		kvstrs[i] = l.kvs[i].String()
	}
	var jkvstr = strings.Join(kvstrs, ",")

	return fmt.Sprintf("collisionLeaf{hash32:%s, kvs:[]kv{%s}}", hash32String(l.hash32), jkvstr)
}

func (l *collisionLeaf[K, V]) get(k K) (V, bool) {
	var i = l.kvs.find(k)
	if i < len(l.kvs) {
		return l.kvs[i].Val, true
	}
	var zero V
	return zero, false
}

func (l *collisionLeaf[K, V]) put(k K, v V) (leafI[K, V], bool) {
	var i = l.kvs.find(k)
	var added = i == len(l.kvs)

	var n = len(l.kvs)
	if added {
		n++
	}
	var kvs = make(keyVals[K, V], n)
	copy(kvs, l.kvs)
	kvs[i] = key.KeyVal[K, V]{Key: k, Val: v}

	return newCollisionLeaf(l.hash32, kvs), added
}

func (l *collisionLeaf[K, V]) del(k K) (nodeI[K, V], V, bool) {
	var i = l.kvs.find(k)
	if i == len(l.kvs) {
		var zero V
		return l, zero, false
	}

	var val = l.kvs[i].Val

	if len(l.kvs) == 2 {
		// only one left; not a collision anymore
		var other = l.kvs[1-i]
		return newFlatLeaf(l.hash32, other.Key, other.Val), val, true
	}

	// removing the i'th element of a slice; wiki/SliceTricks "Delete"
	var kvs = make(keyVals[K, V], 0, len(l.kvs)-1)
	kvs = append(kvs, l.kvs[:i]...)
	kvs = append(kvs, l.kvs[i+1:]...)

	return newCollisionLeaf(l.hash32, kvs), val, true
}
