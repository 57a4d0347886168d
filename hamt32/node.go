package hamt32

import "github.com/lleo/go-functional-collections/key"

// nodeI is the interface for every entry in a table; so table entries are
// either a leaf or a table. It is also the type of a Hamt's root, which may
// additionally be nil for an empty Hamt.
//
// The nodeI interface is satisfied by *compressedTable, *flatLeaf and
// *collisionLeaf, and nothing else; code switches on those three types.
type nodeI[K key.Key, V any] interface {
	String() string
}

// Every leafI is a nodeI.
//
// hash() is the full 32 bit hash of the leaf's key(s). For collisionLeafs
// this is the definition of what a collision is.
type leafI[K key.Key, V any] interface {
	nodeI[K, V]
	hash() uint32
	get(k K) (V, bool)
	put(k K, v V) (leafI[K, V], bool) //bool == added? key/val pair
	del(k K) (nodeI[K, V], V, bool)   //bool == deleted? key
}
