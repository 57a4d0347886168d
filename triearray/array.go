/*
Package triearray implements a functional (immutable and persistent) array as
a dense trie of 32 way branches.

All elements but the last 1 to 32 live in the trie; those last few live in a
small tail slice, so Append and Remend do not touch any trie node until a whole
block of 32 elements is filled or emptied. The shape of the trie is derived
from the number of elements alone: the trie holds the first rootSize(n)
elements, where rootSize(n) is the largest multiple of 32 below n, and its
height is the number of 5 bit index chunks needed to address them.

Level 0 of the trie is made of blocks of 32 elements. Every level above it is
made of nodes with up to 32 children. Index i is routed most significant chunk
first, so the trie is always packed from the left.

Every operation that changes an Array returns a new *Array and leaves the old
one valid; unchanged nodes are shared between the two.
*/
package triearray

import (
	"log"
	"math/bits"
	"os"

	"github.com/pkg/errors"
)

// Nbits constant is the number of bits(5) of an index consumed by each level
// of the trie.
const Nbits uint = 5

// BlockSize constant is the number of children of a full trie node, and the
// most elements the tail can hold; 1<<Nbits == 32.
const BlockSize int = 1 << Nbits

const mask = BlockSize - 1

const assertConst bool = true

func assert(test bool, msg string) {
	if assertConst {
		if !test {
			panic(msg)
		}
	}
}

// Lgr is the logger triearray reports trie growth to. Use
// Lgr.SetOutput(io.Discard) to silence it.
var Lgr = log.New(os.Stderr, "[triearray] ", log.Lshortfile)

// ErrIndexOutOfRange is returned, wrapped with the offending index and the
// array size, by every operation given an index outside the array.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmpty is returned by Remend on an empty Array.
var ErrEmpty = errors.New("empty array")

// rootSize() is the number of elements of an n element array that live in
// the trie rather than the tail.
func rootSize(n int) int {
	if n <= 1 {
		return 0
	}
	return n - (1 + (n-1)%BlockSize)
}

// height() is the number of trie levels of an n element array; the root is at
// level height(n)-1.
func height(n int) int {
	var rs = rootSize(n)
	if rs <= 1 {
		return 0
	}
	return 1 + (bits.Len(uint(rs-1))-1)/int(Nbits)
}

// childIndex() is the 5 bit chunk of i that selects a child at level.
func childIndex(i int, level int) int {
	return (i >> (int(Nbits) * level)) & mask
}

// node is either a block of elements, at level 0, or a branch of children at
// every level above that. Which one is known from the level it is found at.
type node[T any] struct {
	children []*node[T]
	elems    []T
}

// block() returns the level 0 node holding index i of the trie rooted at
// root.
func block[T any](root *node[T], rootLevel int, i int) *node[T] {
	var cur = root
	for level := rootLevel; level > 0; level-- {
		cur = cur.children[childIndex(i, level)]
	}
	return cur
}

// Array is an immutable, persistent sequence of T. The zero value is an empty
// Array.
type Array[T any] struct {
	root *node[T]
	tail []T
	size int
}

// New returns an empty Array.
func New[T any]() *Array[T] {
	return new(Array[T])
}

// Singleton returns an Array holding only v.
func Singleton[T any](v T) *Array[T] {
	return &Array[T]{tail: []T{v}, size: 1}
}

// Of returns an Array of vals, in order.
func Of[T any](vals ...T) *Array[T] {
	return New[T]().AppendAll(vals...)
}

// Len returns the number of elements in a.
func (a *Array[T]) Len() int {
	return a.size
}

// IsEmpty reports whether a has no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

func (a *Array[T]) outOfRange(op string, i int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s(%d) on an array of size %d", op, i, a.size)
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, a.outOfRange("Get", i)
	}

	var rs = rootSize(a.size)
	if i < rs {
		return block(a.root, height(a.size)-1, i).elems[i&mask], nil
	}
	return a.tail[i-rs], nil
}

// Update returns a new Array with v at index i.
func (a *Array[T]) Update(i int, v T) (*Array[T], error) {
	if i < 0 || i >= a.size {
		return nil, a.outOfRange("Update", i)
	}

	var rs = rootSize(a.size)
	if i >= rs {
		var tail = make([]T, len(a.tail))
		copy(tail, a.tail)
		tail[i-rs] = v
		return &Array[T]{root: a.root, tail: tail, size: a.size}, nil
	}

	// Copy the spine from the root down to the block holding i; every other
	// node is shared.
	var newRoot = a.root.copy()
	var cur = newRoot
	for level := height(a.size) - 1; level > 0; level-- {
		var ci = childIndex(i, level)
		var child = cur.children[ci].copy()
		cur.children[ci] = child
		cur = child
	}
	cur.elems[i&mask] = v

	return &Array[T]{root: newRoot, tail: a.tail, size: a.size}, nil
}

func (n *node[T]) copy() *node[T] {
	var nn = new(node[T])
	if n.children != nil {
		nn.children = make([]*node[T], len(n.children))
		copy(nn.children, n.children)
	} else {
		nn.elems = make([]T, len(n.elems))
		copy(nn.elems, n.elems)
	}
	return nn
}

// Append returns a new Array with v added after the last element.
func (a *Array[T]) Append(v T) *Array[T] {
	switch {
	case a.size == 0:
		return Singleton(v)

	case len(a.tail) < BlockSize:
		// Tails are never shared with spare capacity, so always copy.
		var tail = make([]T, len(a.tail)+1)
		copy(tail, a.tail)
		tail[len(a.tail)] = v
		return &Array[T]{root: a.root, tail: tail, size: a.size + 1}

	case a.size == BlockSize:
		// The full tail becomes the first block, and the root, of the trie.
		return &Array[T]{root: &node[T]{elems: a.tail}, tail: []T{v}, size: a.size + 1}
	}

	return &Array[T]{root: a.pushTail(), tail: []T{v}, size: a.size + 1}
}

// pushTail() returns a new root with a's full tail stored as the block at
// rootSize(a.size). Only the right spine of the trie is copied.
func (a *Array[T]) pushTail() *node[T] {
	var rs = rootSize(a.size)
	var oldHeight = height(a.size)

	var newRoot, parent *node[T]
	var parentIndex int
	var cur = a.root

	if oldHeight < height(a.size+1) {
		// The trie is full; the old root becomes the first child of a new
		// root one level up.
		Lgr.Printf("Array.Append: trie grows to height %d at size %d", oldHeight+1, a.size+1)
		newRoot = &node[T]{children: []*node[T]{a.root, nil}}
		parent, parentIndex = newRoot, 1
		cur = nil
	}

	for level := oldHeight - 1; level >= 1; level-- {
		var ci = childIndex(rs, level)

		var cp = &node[T]{children: make([]*node[T], ci+1)}
		if cur != nil {
			copy(cp.children, cur.children)
		}
		if newRoot == nil {
			newRoot = cp
		} else {
			parent.children[parentIndex] = cp
		}
		parent, parentIndex = cp, ci

		if cur != nil && ci < len(cur.children) {
			cur = cur.children[ci]
		} else {
			cur = nil
		}
	}

	parent.children[parentIndex] = &node[T]{elems: a.tail}
	return newRoot
}

// Remend returns a new Array without the last element.
func (a *Array[T]) Remend() (*Array[T], error) {
	if a.size == 0 {
		return nil, errors.Wrap(ErrEmpty, "Remend")
	}
	return a.Take(a.size - 1)
}

// Take returns the first m elements of a. Take(a.Len()) is a itself.
func (a *Array[T]) Take(m int) (*Array[T], error) {
	if m < 0 || m > a.size {
		return nil, a.outOfRange("Take", m)
	}
	if m == a.size {
		return a, nil
	}
	if m == 0 {
		return New[T](), nil
	}

	var rs = rootSize(a.size)
	if m > rs {
		// Only the tail shrinks.
		var k = m - rs
		return &Array[T]{root: a.root, tail: a.tail[:k:k], size: m}, nil
	}

	var oldHeight = height(a.size)
	var newRootSize = rootSize(m)
	var newHeight = height(m)

	var newRoot *node[T]
	if newRootSize != 0 {
		var parent *node[T]
		var parentIndex int
		var cur = a.root

		for level := oldHeight - 1; level >= 0; level-- {
			var ci = childIndex(newRootSize-1, level)
			if level < newHeight {
				// Blocks below the new root size are full, so they are
				// shared; branches are cut off after the child holding
				// index newRootSize-1.
				var cp = cur
				if level > 0 {
					cp = &node[T]{children: make([]*node[T], ci+1)}
					copy(cp.children, cur.children)
				}
				if newRoot == nil {
					newRoot = cp
				} else {
					parent.children[parentIndex] = cp
				}
				parent, parentIndex = cp, ci
			}
			if level > 0 {
				cur = cur.children[ci]
			}
		}
	}

	// The block holding index newRootSize becomes the new tail.
	var k = m - newRootSize
	var tail = block(a.root, oldHeight-1, newRootSize).elems[:k:k]

	return &Array[T]{root: newRoot, tail: tail, size: m}, nil
}
