package triearray

import "iter"

// Iter is a cursor between two elements of an Array, like a text cursor.
// Next returns the element after it and Prev the element before it. It keeps
// the last trie block it read from, so a walk in either direction only
// descends the trie once every 32 elements.
//
// An Iter is never invalidated, as the Array it walks can not change.
type Iter[T any] struct {
	a        *Array[T]
	next     int
	rootSize int
	level    int // root level of a's trie

	block      []T
	blockStart int // index of block[0]; -1 when there is no block yet
}

// IterAt returns a cursor positioned before index i; 0 <= i <= a.Len().
func (a *Array[T]) IterAt(i int) (*Iter[T], error) {
	if i < 0 || i > a.size {
		return nil, a.outOfRange("IterAt", i)
	}
	return a.iterAt(i), nil
}

func (a *Array[T]) iterAt(i int) *Iter[T] {
	return &Iter[T]{
		a:          a,
		next:       i,
		rootSize:   rootSize(a.size),
		level:      height(a.size) - 1,
		blockStart: -1,
	}
}

func (it *Iter[T]) get(i int) T {
	if i >= it.rootSize {
		return it.a.tail[i-it.rootSize]
	}
	if it.blockStart < 0 || (it.blockStart^i)&^mask != 0 {
		it.block = block(it.a.root, it.level, i).elems
		it.blockStart = i &^ mask
	}
	return it.block[i&mask]
}

// HasNext reports whether there is an element after the cursor.
func (it *Iter[T]) HasNext() bool {
	return it.next < it.a.size
}

// HasPrev reports whether there is an element before the cursor.
func (it *Iter[T]) HasPrev() bool {
	return it.next > 0
}

// NextIndex is the index of the element Next would return.
func (it *Iter[T]) NextIndex() int {
	return it.next
}

// PrevIndex is the index of the element Prev would return.
func (it *Iter[T]) PrevIndex() int {
	return it.next - 1
}

// Next returns the element after the cursor and moves past it; the bool is
// false, and the cursor stays put, at the end of the Array.
func (it *Iter[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	var v = it.get(it.next)
	it.next++
	return v, true
}

// Prev returns the element before the cursor and moves back over it; the
// bool is false at the start of the Array.
func (it *Iter[T]) Prev() (T, bool) {
	if !it.HasPrev() {
		var zero T
		return zero, false
	}
	it.next--
	return it.get(it.next), true
}

// All returns an iterator over the index/element pairs of a, first to last.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var it = a.iterAt(0)
		for it.HasNext() {
			var i = it.NextIndex()
			var v, _ = it.Next()
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of a, first to last.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		var it = a.iterAt(0)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the index/element pairs of a, last to
// first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var it = a.iterAt(a.size)
		for it.HasPrev() {
			var v, _ = it.Prev()
			if !yield(it.NextIndex(), v) {
				return
			}
		}
	}
}
