package hamt32

import (
	"fmt"

	"github.com/lleo/go-functional-collections/key"
)

type flatLeaf[K key.Key, V any] struct {
	hash32 uint32 //k.Hash32()
	key    K
	val    V
}

func newFlatLeaf[K key.Key, V any](h32 uint32, k K, v V) *flatLeaf[K, V] {
	var fl = new(flatLeaf[K, V])
	fl.hash32 = h32
	fl.key = k
	fl.val = v
	return fl
}

func (l *flatLeaf[K, V]) hash() uint32 {
	return l.hash32
}

func (l *flatLeaf[K, V]) String() string {
	return fmt.Sprintf("flatLeaf{hash32:%s, key:%s, val:%v}", hash32String(l.hash32), l.key, l.val)
}

func (l *flatLeaf[K, V]) get(k K) (V, bool) {
	if l.key.Equals(k) {
		return l.val, true
	}
	var zero V
	return zero, false
}

// put() is only called once every bit of hash has been used, so a different
// key makes a collisionLeaf.
func (l *flatLeaf[K, V]) put(k K, v V) (leafI[K, V], bool) {
	if l.key.Equals(k) {
		return newFlatLeaf(l.hash32, k, v), false
	}

	var nl = newCollisionLeaf(l.hash32, keyVals[K, V]{{Key: l.key, Val: l.val}, {Key: k, Val: v}})
	return nl, true
}

func (l *flatLeaf[K, V]) del(k K) (nodeI[K, V], V, bool) {
	if l.key.Equals(k) {
		return nil, l.val, true //deleted entry
	}
	var zero V
	return l, zero, false //didn't delete
}
