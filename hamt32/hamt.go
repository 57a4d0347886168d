/*
Package hamt32 implements a functional Hash Array Mapped Trie (HAMT).
It is called hamt32 because this package uses all 32 bits of a key's hash, and
a 32 nodes branching factor for each level of the Trie. The term functional is
used to imply immutable and persistent.

The key to the hamt32 datastructure is the Key interface from the
"github.com/lleo/go-functional-collections/key" package. The 32 bits of hash
are separated into 5 bit values, least significant first, that constitute the
hash path of any Key in this Trie; the last level only gets the 2 remaining
bits, for MaxDepth(7) levels total. Not all seven levels of the Trie are used;
a table is only created where two keys share a hash path prefix, so a leaf sits
as high in the Trie as its hash path is unique.

If all 32 bits of hash are used up by two or more key/val pairs, then a special
collision leaf is used to store those key/val pairs below the seventh level of
the Trie. Lookups in a collision leaf are a linear scan with Key.Equals.

Every operation that changes a Hamt returns a new *Hamt. The old *Hamt is never
changed; both share every table the change did not touch. So any number of
goroutines may read, and derive new versions from, the same *Hamt without
synchronization.
*/
package hamt32

import (
	"fmt"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/lleo/go-functional-collections/key"
)

// Nbits constant is the number of bits(5) of hash consumed by each level of
// the Trie.
const Nbits uint = 5

// TableCapacity constant is the number of table entries in a each node of
// a HAMT datastructure; its value is 1<<Nbits (ie 2^5 == 32).
const TableCapacity uint = 1 << Nbits

// HashBits is the number of bits in a key.Key's Hash32() value.
const HashBits uint = 32

// MaxDepth constant is the maximum number of table levels in a HAMT;
// ceil(HashBits/Nbits) == 7. Below the seventh level only collision leaves
// exist.
const MaxDepth uint = (HashBits + Nbits - 1) / Nbits

const idxMask = uint32(TableCapacity - 1)

const assertConst bool = true

func assert(test bool, msg string) {
	if assertConst {
		if !test {
			panic(msg)
		}
	}
}

// Lgr is the logger hamt32 reports unusual events to; currently that is two
// distinct keys with identical 32 bit hashes. Use Lgr.SetOutput(io.Discard)
// to silence it.
var Lgr = log.New(os.Stderr, "[hamt32] ", log.Lshortfile)

// index() calculates the Nbits(5-bit) table index of h32 at a given shift.
func index(h32 uint32, shift uint) uint {
	return uint((h32 >> shift) & idxMask)
}

// hashPathString() describes the table indexes of h32 from the root down to
// depth levels, in the form "/%02d/%02d...".
func hashPathString(h32 uint32, depth uint) string {
	if depth == 0 {
		return "/"
	}
	var strs = make([]string, depth)
	for d := uint(0); d < depth; d++ {
		strs[d] = fmt.Sprintf("%02d", index(h32, d*Nbits))
	}
	return "/" + strings.Join(strs, "/")
}

func hash32String(h32 uint32) string {
	return hashPathString(h32, MaxDepth)
}

// Hamt is an immutable, persistent map from K to V. The zero value is not
// usable; start from New() or Singleton().
type Hamt[K key.Key, V any] struct {
	root     nodeI[K, V]
	nentries int
}

// New returns an empty Hamt.
func New[K key.Key, V any]() *Hamt[K, V] {
	return new(Hamt[K, V])
}

// Singleton returns a Hamt holding only k => v.
func Singleton[K key.Key, V any](k K, v V) *Hamt[K, V] {
	return &Hamt[K, V]{root: newFlatLeaf(k.Hash32(), k, v), nentries: 1}
}

// FromKeyVals builds a Hamt by Put()ing each pair in order; later pairs
// replace the values of earlier pairs with an Equals key.
func FromKeyVals[K key.Key, V any](kvs ...key.KeyVal[K, V]) *Hamt[K, V] {
	var h = New[K, V]()
	for _, kv := range kvs {
		h, _ = h.Put(kv.Key, kv.Val)
	}
	return h
}

// Collect builds a Hamt from a sequence of key/val pairs.
func Collect[K key.Key, V any](seq iter.Seq2[K, V]) *Hamt[K, V] {
	var h = New[K, V]()
	for k, v := range seq {
		h, _ = h.Put(k, v)
	}
	return h
}

// Ranger is anything that can enumerate its key/val pairs.
type Ranger[K key.Key, V any] interface {
	All() iter.Seq2[K, V]
}

// From builds a Hamt from src. If src is already a *Hamt[K, V] it is returned
// as is; there is nothing to copy from an immutable map.
func From[K key.Key, V any](src Ranger[K, V]) *Hamt[K, V] {
	if h, ok := src.(*Hamt[K, V]); ok {
		return h
	}
	return Collect(src.All())
}

// IsEmpty reports whether h has no entries.
func (h *Hamt[K, V]) IsEmpty() bool {
	return h.root == nil
}

// Nentries returns the number of key/val pairs in h.
func (h *Hamt[K, V]) Nentries() int {
	return h.nentries
}

// persist() wraps a new root into a new Hamt; the receiver is not changed.
func (h *Hamt[K, V]) persist(root nodeI[K, V], delta int) *Hamt[K, V] {
	var nh = &Hamt[K, V]{root: root, nentries: h.nentries + delta}
	assert(nh.nentries >= 0, "Hamt.persist: negative nentries")
	return nh
}

// Get(k) retrieves the value for a given key from the Hamt. The bool
// represents whether the key was found.
func (h *Hamt[K, V]) Get(k K) (V, bool) {
	var zero V
	var h32 = k.Hash32()
	var cur = h.root

	for shift := uint(0); cur != nil; shift += Nbits {
		switch n := cur.(type) {
		case *compressedTable[K, V]:
			// nil if the hash path stops here
			cur = n.get(index(h32, shift))
		case leafI[K, V]:
			if n.hash() == h32 {
				return n.get(k)
			}
			return zero, false
		default:
			panic(fmt.Sprintf("Hamt.Get: unknown node type %T", cur))
		}
	}

	return zero, false
}

// Put(k, v) returns a new Hamt with k => v, and whether a new entry was
// added (false means an existing value was replaced).
func (h *Hamt[K, V]) Put(k K, v V) (*Hamt[K, V], bool) {
	var h32 = k.Hash32()
	var newLeaf = newFlatLeaf(h32, k, v)

	if h.IsEmpty() {
		return h.persist(newLeaf, 1), true
	}

	var path copyPath[K, V]
	var cur = h.root
	var shift uint

	for {
		switch n := cur.(type) {
		case *compressedTable[K, V]:
			var idx = index(h32, shift)
			if !n.has(idx) {
				return h.persist(path.connect(n.insert(idx, newLeaf)), 1), true
			}

			// Copy the table; the slot we descend into gets patched by the
			// next connect().
			var pos = n.pos(idx)
			path.descend(n.copy(), pos)
			cur = n.nodes[pos]
			shift += Nbits

		case *flatLeaf[K, V]:
			if n.hash32 == h32 && n.key.Equals(k) {
				return h.persist(path.connect(newLeaf), 0), false
			}

			if shift < HashBits {
				// Treat the old leaf as a one entry table and go around
				// again; the tables only get as deep as the two hash paths
				// are equal.
				cur = newCompressedTable[K, V](index(n.hash32, shift), n)
				continue
			}

			assert(n.hash32 == h32, "Hamt.Put: hash paths exhausted but hashes differ")
			Lgr.Printf("Hamt.Put: keys %s and %s collided on hash32=%s", n.key, k, hash32String(h32))

			var nl, _ = n.put(k, v)
			return h.persist(path.connect(nl), 1), true

		case *collisionLeaf[K, V]:
			// collisionLeafs only live below the last level, where the whole
			// hash path is known to match.
			assert(n.hash32 == h32, "Hamt.Put: collisionLeaf hash mismatch")

			var nl, added = n.put(k, v)
			if added {
				return h.persist(path.connect(nl), 1), true
			}
			return h.persist(path.connect(nl), 0), false

		default:
			panic(fmt.Sprintf("Hamt.Put: unknown node type %T", cur))
		}
	}
}

// Del(k) returns a new Hamt without k, the value deleted, and whether k was
// deleted. If k was not in h, h itself is returned, so callers can skip work
// with a pointer comparison.
func (h *Hamt[K, V]) Del(k K) (*Hamt[K, V], V, bool) {
	var zero V

	if h.IsEmpty() {
		return h, zero, false
	}

	var newRoot, val, deleted = del[K, V](h.root, k, k.Hash32(), 0)
	if !deleted {
		return h, zero, false
	}

	return h.persist(newRoot, -1), val, true
}

// del() returns the replacement for cur with k removed; nil when cur is gone
// entirely, and cur itself when k was not found.
func del[K key.Key, V any](cur nodeI[K, V], k K, h32 uint32, shift uint) (nodeI[K, V], V, bool) {
	var zero V

	switch n := cur.(type) {
	case *compressedTable[K, V]:
		var idx = index(h32, shift)
		if !n.has(idx) {
			return n, zero, false
		}

		var child = n.get(idx)
		var newChild, val, deleted = del[K, V](child, k, h32, shift+Nbits)
		if !deleted {
			return n, zero, false
		}

		if newChild == nil {
			return n.remove(idx), val, true
		}
		return n.replace(idx, newChild), val, true

	case leafI[K, V]:
		if n.hash() != h32 {
			return n, zero, false
		}
		return n.del(k)
	}

	panic(fmt.Sprintf("hamt32.del: unknown node type %T", cur))
}

// Equal reports whether h and other hold the same keys, with values that eq
// reports as equal.
func (h *Hamt[K, V]) Equal(other *Hamt[K, V], eq func(a, b V) bool) bool {
	if h == other {
		return true
	}
	if h.nentries != other.nentries {
		return false
	}
	for k, v := range h.All() {
		var ov, found = other.Get(k)
		if !found || !eq(v, ov) {
			return false
		}
	}
	return true
}

func (h *Hamt[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	var sep = ""
	for k, v := range h.All() {
		fmt.Fprintf(&sb, "%s%s: %v", sep, k, v)
		sep = ", "
	}
	sb.WriteString("}")
	return sb.String()
}

// LongString() dumps the shape of the Trie; it is only useful for debugging.
func (h *Hamt[K, V]) LongString(indent string) string {
	if h.root == nil {
		return indent + fmt.Sprintf("Hamt{ nentries: %d, root: nil }", h.nentries)
	}
	var str = indent + fmt.Sprintf("Hamt{ nentries: %d, root:\n", h.nentries)
	if t, ok := h.root.(*compressedTable[K, V]); ok {
		str += t.LongString(indent+fullIndent, 0)
	} else {
		str += indent + fullIndent + h.root.String()
	}
	str += "\n" + indent + "}"
	return str
}
