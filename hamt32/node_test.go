package hamt32

import (
	"fmt"
	"io"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lleo/go-functional-collections/key"
)

func init() {
	Lgr.SetOutput(io.Discard)
}

// hkey is a key with a chosen hash, to build collisions on purpose.
type hkey struct {
	name string
	h32  uint32
}

func (k hkey) Hash32() uint32 { return k.h32 }

func (k hkey) Equals(other key.Key) bool {
	var o, ok = other.(hkey)
	return ok && k.name == o.name
}

func (k hkey) String() string { return fmt.Sprintf("%s#%08x", k.name, k.h32) }

// checkTrie() verifies the shape invariants of the subtree n found at shift
// with hash path prefix; it returns the number of key/val pairs below n.
func checkTrie[K key.Key, V any](t *testing.T, n nodeI[K, V], shift uint, prefix uint32) int {
	var mask = uint32(1)<<min(shift, HashBits) - 1
	if shift >= HashBits {
		mask = ^uint32(0)
	}

	switch n := n.(type) {
	case *compressedTable[K, V]:
		require.Less(t, shift, HashBits, "table below the last level")
		require.Equal(t, bits.OnesCount32(n.nodeMap), len(n.nodes))
		require.NotEmpty(t, n.nodes)
		if len(n.nodes) == 1 {
			var _, isFlat = n.nodes[0].(*flatLeaf[K, V])
			require.False(t, isFlat, "one entry table holding a flatLeaf")
		}
		var total = 0
		for idx := uint(0); idx < TableCapacity; idx++ {
			if n.has(idx) {
				total += checkTrie[K, V](t, n.get(idx), shift+Nbits, prefix|uint32(idx)<<shift)
			}
		}
		return total

	case *flatLeaf[K, V]:
		require.Equal(t, n.key.Hash32(), n.hash32)
		require.Equal(t, prefix&mask, n.hash32&mask, "leaf %s off its hash path", n.key)
		return 1

	case *collisionLeaf[K, V]:
		require.GreaterOrEqual(t, shift, HashBits, "collisionLeaf above the last level")
		require.GreaterOrEqual(t, len(n.kvs), 2)
		require.Equal(t, prefix&mask, n.hash32&mask)
		for _, kv := range n.kvs {
			require.Equal(t, n.hash32, kv.Key.Hash32())
		}
		return len(n.kvs)
	}

	t.Fatalf("unexpected node %T", n)
	return 0
}

func checkHamt[K key.Key, V any](t *testing.T, h *Hamt[K, V]) {
	if h.root == nil {
		require.Equal(t, 0, h.nentries)
		return
	}
	require.Equal(t, h.nentries, checkTrie[K, V](t, h.root, 0, 0))

	var n = 0
	for range h.All() {
		n++
	}
	require.Equal(t, h.nentries, n)
}

// depthOf() counts the tables above the leaf holding k.
func depthOf[K key.Key, V any](h *Hamt[K, V], k K) int {
	var d = 0
	var cur = h.root
	for shift := uint(0); ; shift += Nbits {
		var t, ok = cur.(*compressedTable[K, V])
		if !ok {
			return d
		}
		cur = t.get(index(k.Hash32(), shift))
		d++
	}
}

func TestRootShapes(t *testing.T) {
	var h = New[hkey, int]()
	require.Nil(t, h.root)

	var a = hkey{"a", 0x01}
	h, _ = h.Put(a, 1)
	require.IsType(t, &flatLeaf[hkey, int]{}, h.root)

	var b = hkey{"b", 0x02}
	h, _ = h.Put(b, 2)
	require.IsType(t, &compressedTable[hkey, int]{}, h.root)
	require.Equal(t, uint32(0b110), h.root.(*compressedTable[hkey, int]).nodeMap)
	checkHamt(t, h)

	h, _, _ = h.Del(a)
	require.IsType(t, &flatLeaf[hkey, int]{}, h.root, "two entry root table did not collapse")
	h, _, _ = h.Del(b)
	require.Nil(t, h.root)
}

// Two hashes that are equal in every 5 bit chunk but the last, 2 bit, chunk
// need all seven levels.
func TestAllButLastChunkCollide(t *testing.T) {
	var a = hkey{"a", 0x0abcdef1}
	var b = hkey{"b", 0x4abcdef1}

	var h = FromKeyVals(key.KeyVal[hkey, int]{Key: a, Val: 1}, key.KeyVal[hkey, int]{Key: b, Val: 2})
	checkHamt(t, h)

	require.Equal(t, int(MaxDepth), depthOf(h, a))
	require.Equal(t, int(MaxDepth), depthOf(h, b))

	var v, found = h.Get(a)
	require.True(t, found)
	require.Equal(t, 1, v)
	v, found = h.Get(b)
	require.True(t, found)
	require.Equal(t, 2, v)

	// A full hash collision with a degrades into a collision list at the
	// bottom of the Trie.
	var c = hkey{"c", a.h32}
	var h2, added = h.Put(c, 3)
	require.True(t, added)
	checkHamt(t, h2)
	require.Equal(t, 3, h2.Nentries())

	var bottom = findLeaf(h2, a)
	require.IsType(t, &collisionLeaf[hkey, int]{}, bottom)
	require.Len(t, bottom.(*collisionLeaf[hkey, int]).kvs, 2)

	for k, want := range map[hkey]int{a: 1, b: 2, c: 3} {
		v, found = h2.Get(k)
		require.True(t, found, "lost %s", k)
		require.Equal(t, want, v)
	}

	// removing c demotes the collision list back to a plain leaf
	var h3, _, removed = h2.Del(c)
	require.True(t, removed)
	checkHamt(t, h3)
	require.IsType(t, &flatLeaf[hkey, int]{}, findLeaf(h3, a))
}

func TestCollisionLeafOps(t *testing.T) {
	var h = New[hkey, int]()
	var keys = make([]hkey, 5)
	for i := range keys {
		keys[i] = hkey{fmt.Sprintf("k%d", i), 0xdeadbeef}
		h, _ = h.Put(keys[i], i)
	}
	checkHamt(t, h)
	require.Equal(t, 5, h.Nentries())

	// a chain of one entry tables down to a collision list at the bottom
	require.Equal(t, int(MaxDepth), depthOf(h, keys[0]))
	require.IsType(t, &collisionLeaf[hkey, int]{}, findLeaf(h, keys[0]))

	var h1, added = h.Put(keys[2], 20)
	require.False(t, added)
	require.Equal(t, 5, h1.Nentries())
	var v, _ = h1.Get(keys[2])
	require.Equal(t, 20, v)

	var missing = hkey{"missing", 0xdeadbeef}
	var _, found = h.Get(missing)
	require.False(t, found)
	var h2, _, removed = h.Del(missing)
	require.False(t, removed)
	require.Same(t, h, h2)

	for i, k := range keys {
		h, v, removed = h.Del(k)
		require.True(t, removed)
		require.Equal(t, i, v)
		checkHamt(t, h)
	}
	require.True(t, h.IsEmpty())
}

// Deleting the sibling of a collision list leaves the list at the bottom of
// the Trie; a key with a different hash must still branch off above it.
func TestCollisionLeafStaysAtBottom(t *testing.T) {
	var a = hkey{"a", 0x11111111}
	var c = hkey{"c", 0x11111111}
	var b = hkey{"b", 0x51111111}

	var h = New[hkey, int]()
	h, _ = h.Put(a, 1)
	h, _ = h.Put(b, 2)
	h, _ = h.Put(c, 3)
	checkHamt(t, h)

	h, _, _ = h.Del(b)
	checkHamt(t, h)
	require.Equal(t, int(MaxDepth), depthOf(h, a))
	require.IsType(t, &collisionLeaf[hkey, int]{}, findLeaf(h, a))

	var d = hkey{"d", 0x11111112}
	h, _ = h.Put(d, 4)
	checkHamt(t, h)
	require.Equal(t, 3, h.Nentries())
	require.Equal(t, 1, depthOf(h, d))
	for k, want := range map[hkey]int{a: 1, c: 3, d: 4} {
		var v, found = h.Get(k)
		require.True(t, found)
		require.Equal(t, want, v)
	}

	// dropping the collision to one key collapses the whole chain
	h, _, _ = h.Del(c)
	h, _, _ = h.Del(d)
	checkHamt(t, h)
	require.IsType(t, &flatLeaf[hkey, int]{}, h.root)
}

func TestDelCollapsesChains(t *testing.T) {
	// a and b share four chunks, so they sit under a chain of tables
	var a = hkey{"a", 0x000fffff}
	var b = hkey{"b", 0x001fffff}
	var c = hkey{"c", 0x00000000}

	var h = New[hkey, int]()
	h, _ = h.Put(a, 1)
	h, _ = h.Put(b, 2)
	h, _ = h.Put(c, 3)
	checkHamt(t, h)
	require.Equal(t, 5, depthOf(h, a))

	h, _, _ = h.Del(b)
	checkHamt(t, h)
	require.Equal(t, 1, depthOf(h, a), "chain of one entry tables left behind")

	h, _, _ = h.Del(c)
	checkHamt(t, h)
	require.IsType(t, &flatLeaf[hkey, int]{}, h.root)
}

func TestStructuralSharing(t *testing.T) {
	var h = New[key.Int[int], int]()
	for i := 0; i < 4096; i++ {
		h, _ = h.Put(key.NewInt(i), i)
	}
	checkHamt(t, h)

	var k = key.NewInt(5000)
	var h2, _ = h.Put(k, 5000)
	checkHamt(t, h2)

	var root1 = h.root.(*compressedTable[key.Int[int], int])
	var root2 = h2.root.(*compressedTable[key.Int[int], int])
	require.NotSame(t, root1, root2)

	var changed = root1.pos(index(k.Hash32(), 0))
	require.Equal(t, len(root1.nodes), len(root2.nodes))
	for i := range root1.nodes {
		if uint(i) == changed {
			require.NotSame(t, root1.nodes[i], root2.nodes[i])
			continue
		}
		require.Same(t, root1.nodes[i], root2.nodes[i], "untouched subtree %d was copied", i)
	}

	// and the same holds after a Del
	var h3, _, _ = h2.Del(key.NewInt(7))
	var root3 = h3.root.(*compressedTable[key.Int[int], int])
	var changed3 = root2.pos(index(key.NewInt(7).Hash32(), 0))
	for i := range root2.nodes {
		if uint(i) != changed3 {
			require.Same(t, root2.nodes[i], root3.nodes[i])
		}
	}
}

func TestRandomOpsKeepInvariants(t *testing.T) {
	// a narrow hash space forces deep tables and collisions
	var mk = func(i int) hkey { return hkey{fmt.Sprint(i), uint32(i)*2654435761&0x8000031f} }

	var h = New[hkey, int]()
	var ref = make(map[hkey]int)
	for i := 0; i < 3000; i++ {
		var k = mk(i % 700)
		if i%3 == 2 {
			var nh, _, removed = h.Del(k)
			var _, had = ref[k]
			require.Equal(t, had, removed)
			if !removed {
				require.Same(t, h, nh)
			}
			delete(ref, k)
			h = nh
		} else {
			h, _ = h.Put(k, i)
			ref[k] = i
		}
		if i%100 == 0 {
			checkHamt(t, h)
		}
	}
	checkHamt(t, h)
	require.Equal(t, len(ref), h.Nentries())
	for k, want := range ref {
		var v, found = h.Get(k)
		require.True(t, found)
		require.Equal(t, want, v)
	}
}

func findLeaf[K key.Key, V any](h *Hamt[K, V], k K) nodeI[K, V] {
	var cur = h.root
	for shift := uint(0); ; shift += Nbits {
		var t, ok = cur.(*compressedTable[K, V])
		if !ok {
			return cur
		}
		cur = t.get(index(k.Hash32(), shift))
	}
}

func TestLongString(t *testing.T) {
	var h = FromKeyVals(key.KeyVal[hkey, int]{Key: hkey{"a", 1}, Val: 1}, key.KeyVal[hkey, int]{Key: hkey{"b", 2}, Val: 2})
	var s = h.LongString("")
	require.Contains(t, s, "compressedTable{depth=0, nentries()=2")
	require.Contains(t, s, "a#00000001")
}
