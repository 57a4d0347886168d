package hamt32

import "github.com/lleo/go-functional-collections/key"

// copyPath is the state of a Put(); it holds the root of the new Trie and the
// most recently copied table, whose entry at pos still points into the old
// Trie and must be patched with whatever replaces it.
//
// The copied tables are not reachable from any Hamt until Put() returns, so
// patching them in place is allowed.
type copyPath[K key.Key, V any] struct {
	root   nodeI[K, V]
	parent *compressedTable[K, V]
	pos    uint
}

// connect() links n into the new Trie below the last copied table, or as the
// root if nothing has been copied, and returns the new root.
func (p *copyPath[K, V]) connect(n nodeI[K, V]) nodeI[K, V] {
	if p.parent == nil {
		p.root = n
		return p.root
	}
	p.parent.nodes[p.pos] = n
	return p.root
}

// descend() connects the copied table t, and makes its entry at pos the next
// one to be patched.
func (p *copyPath[K, V]) descend(t *compressedTable[K, V], pos uint) {
	p.connect(t)
	p.parent = t
	p.pos = pos
}
