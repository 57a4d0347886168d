package triearray

import (
	"iter"
	"slices"
)

// AppendAll returns a new Array with vals added after the last element of a.
func (a *Array[T]) AppendAll(vals ...T) *Array[T] {
	var i int
	return a.appendN(len(vals), func() T {
		var v = vals[i]
		i++
		return v
	})
}

// AppendSeq returns a new Array with every value of seq added after the last
// element of a.
func (a *Array[T]) AppendSeq(seq iter.Seq[T]) *Array[T] {
	return a.AppendAll(slices.Collect(seq)...)
}

// Concat returns a new Array of the elements of a followed by those of other.
func (a *Array[T]) Concat(other *Array[T]) *Array[T] {
	if a.size == 0 {
		return other
	}
	var it = other.iterAt(0)
	return a.appendN(other.size, func() T {
		var v, _ = it.Next()
		return v
	})
}

// appendN() returns a with count more elements drawn from next.
//
// The old tail and the new elements are treated as one stream filling the
// trie from rootSize(a.size) on. Full nodes of the old trie are reused as
// they are; only the nodes on its right edge are merged with new elements.
func (a *Array[T]) appendN(count int, next func() T) *Array[T] {
	if count == 0 {
		return a
	}

	var oldRootSize = rootSize(a.size)
	var newSize = a.size + count
	var newRootSize = rootSize(newSize)
	var newTailSize = newSize - newRootSize

	if newRootSize == oldRootSize {
		var tail = make([]T, newTailSize)
		copy(tail, a.tail)
		for i := len(a.tail); i < newTailSize; i++ {
			tail[i] = next()
		}
		return &Array[T]{root: a.root, tail: tail, size: newSize}
	}

	var ti int
	var src = func() T {
		if ti < len(a.tail) {
			var v = a.tail[ti]
			ti++
			return v
		}
		return next()
	}

	var c = concat[T]{
		oldRootLevel: height(a.size) - 1,
		oldRootSize:  oldRootSize,
		src:          src,
	}
	var root = c.build(a.root, height(newSize)-1, 0, newRootSize-1)

	var tail = make([]T, newTailSize)
	for i := range tail {
		tail[i] = src()
	}

	return &Array[T]{root: root, tail: tail, size: newSize}
}

// concat is the state of one appendN() that grows the trie.
type concat[T any] struct {
	oldRootLevel int
	oldRootSize  int
	src          func() T
}

// build() returns the node at level covering trie indexes [begin, end].
//
// old is the node of the old trie at the same position, or nil. A full old
// node is returned as is. Otherwise its children are kept, its last child is
// merged recursively, and the remaining slots are filled from src. Above the
// old root level, old is passed down to the first child until it reaches its
// own level.
func (c *concat[T]) build(old *node[T], level int, begin, end int) *node[T] {
	assert(level >= 0, "concat.build: negative level")

	var shift = int(Nbits) * level
	var step = 1 << shift
	var capacity = BlockSize << shift

	var fromOld = old != nil && level <= c.oldRootLevel
	if fromOld && begin+capacity <= c.oldRootSize {
		// Every level 0 block of the old trie is full, so this always
		// shares them.
		return old
	}

	var size = min(end-begin+step, capacity) >> shift
	assert(0 < size && size <= BlockSize, "concat.build: bad node size")
	assert(!fromOld || level > 0, "concat.build: partial old block")

	var n = new(node[T])
	var fill int

	if level == 0 {
		n.elems = make([]T, size)
		for i := range n.elems {
			n.elems[i] = c.src()
		}
		return n
	}

	n.children = make([]*node[T], size)
	if fromOld {
		assert(len(old.children) > 0, "concat.build: empty old branch")
		copy(n.children, old.children)

		var last = len(old.children) - 1
		var lastBegin = begin + last*step
		n.children[last] = c.build(old.children[last], level-1, lastBegin, min(end, lastBegin+step-1))
		fill = last + 1
	}

	var childBegin = begin + fill*step
	for i := fill; i < size; i++ {
		var o *node[T]
		if i == 0 && level > c.oldRootLevel {
			o = old
		}
		n.children[i] = c.build(o, level-1, childBegin, min(end, childBegin+step-1))
		childBegin += step
	}

	return n
}
