package hamt32

import "github.com/lleo/go-functional-collections/key"

type keyVals[K key.Key, V any] []key.KeyVal[K, V]

// find() returns the index of the pair whose key Equals k, or len(kvs).
func (kvs keyVals[K, V]) find(k K) int {
	for i, kv := range kvs {
		if kv.Key.Equals(k) {
			return i
		}
	}
	return len(kvs)
}
