/*
Package list implements a functional (immutable and persistent) singly linked
list.

Prepend is O(1) and shares the whole of the old List as the tail of the new
one; Head and Tail are O(1). There is no append; use triearray.Array when
elements are added at the end or indexed.
*/
package list

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmpty is returned by Head and Tail on an empty List.
var ErrEmpty = errors.New("empty list")

// ErrIndexOutOfRange is returned, wrapped with the index and the list size,
// by IterAt given a position outside the List.
var ErrIndexOutOfRange = errors.New("index out of range")

// List is an immutable, persistent singly linked list. The zero value is an
// empty List.
type List[T any] struct {
	head T
	tail *List[T] // nil only for the empty List
	size int
}

// New returns an empty List.
func New[T any]() *List[T] {
	return new(List[T])
}

// Singleton returns a List holding only v.
func Singleton[T any](v T) *List[T] {
	return New[T]().Prepend(v)
}

// Of returns a List of vals, in order.
func Of[T any](vals ...T) *List[T] {
	var l = New[T]()
	for i := len(vals) - 1; i >= 0; i-- {
		l = l.Prepend(vals[i])
	}
	return l
}

// Collect builds a List of the values of seq, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	return Of(slices.Collect(seq)...)
}

// Ranger is anything that can enumerate its values in order.
type Ranger[T any] interface {
	Values() iter.Seq[T]
}

// From builds a List from src. If src is already a *List[T] it is returned as
// is.
func From[T any](src Ranger[T]) *List[T] {
	if l, ok := src.(*List[T]); ok {
		return l
	}
	return Collect(src.Values())
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Prepend returns a new List with v in front of every element of l.
func (l *List[T]) Prepend(v T) *List[T] {
	return &List[T]{head: v, tail: l, size: l.size + 1}
}

// Head returns the first element of l.
func (l *List[T]) Head() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "Head")
	}
	return l.head, nil
}

// Tail returns l without its first element; that is the very List the first
// element was prepended to.
func (l *List[T]) Tail() (*List[T], error) {
	if l.IsEmpty() {
		return nil, errors.Wrap(ErrEmpty, "Tail")
	}
	return l.tail, nil
}

// Iter is a forward cursor over a List. A singly linked list can not be
// walked backwards, so there is no Prev.
type Iter[T any] struct {
	cur  *List[T]
	next int
}

// IterAt returns a cursor positioned before index i; 0 <= i <= l.Len(). It
// walks past the first i elements, so it is O(i).
func (l *List[T]) IterAt(i int) (*Iter[T], error) {
	if i < 0 || i > l.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "IterAt(%d) on a list of size %d", i, l.size)
	}
	var it = &Iter[T]{cur: l}
	for it.next < i {
		it.Next()
	}
	return it, nil
}

// HasNext reports whether there is an element after the cursor.
func (it *Iter[T]) HasNext() bool {
	return !it.cur.IsEmpty()
}

// NextIndex is the index of the element Next would return.
func (it *Iter[T]) NextIndex() int {
	return it.next
}

// Next returns the element after the cursor and moves past it; the bool is
// false at the end of the List.
func (it *Iter[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	var v = it.cur.head
	it.cur = it.cur.tail
	it.next++
	return v, true
}

// All returns an iterator over the index/element pairs of l, first to last.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var i int
		for cur := l; !cur.IsEmpty(); cur = cur.tail {
			if !yield(i, cur.head) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements of l, first to last.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether a and b have the same length and eq holds for every
// pair of elements at the same position. Shared tails are not walked.
func Equal[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for ; a != b; a, b = a.tail, b.tail {
		if a.IsEmpty() {
			return true
		}
		if !eq(a.head, b.head) {
			return false
		}
	}
	return true
}

// Slice copies the elements of l into a new slice.
func (l *List[T]) Slice() []T {
	var s = make([]T, 0, l.size)
	for v := range l.Values() {
		s = append(s, v)
	}
	return s
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString(")")
	return sb.String()
}
