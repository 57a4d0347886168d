package triearray

import (
	"fmt"
	"iter"
	"strings"
)

// Collect builds an Array by appending every value of seq, one at a time.
func Collect[T any](seq iter.Seq[T]) *Array[T] {
	var a = New[T]()
	for v := range seq {
		a = a.Append(v)
	}
	return a
}

// Ranger is anything that can enumerate its values in order.
type Ranger[T any] interface {
	Values() iter.Seq[T]
}

// From builds an Array from src. If src is already an *Array[T] it is
// returned as is.
func From[T any](src Ranger[T]) *Array[T] {
	if a, ok := src.(*Array[T]); ok {
		return a
	}
	return Collect(src.Values())
}

// Insert returns a new Array with v at index i and every later element moved
// up one; 0 <= i <= a.Len(). It rebuilds everything after i, so it is O(N).
func Insert[T any](a *Array[T], i int, v T) (*Array[T], error) {
	if i < 0 || i > a.size {
		return nil, a.outOfRange("Insert", i)
	}
	var prefix, err = a.Take(i)
	if err != nil {
		return nil, err
	}
	var it = a.iterAt(i)
	return prefix.Append(v).appendN(a.size-i, func() T {
		var e, _ = it.Next()
		return e
	}), nil
}

// RemoveAt returns a new Array without the element at index i; every later
// element moves down one. It rebuilds everything after i, so it is O(N).
func RemoveAt[T any](a *Array[T], i int) (*Array[T], error) {
	if i < 0 || i >= a.size {
		return nil, a.outOfRange("RemoveAt", i)
	}
	var prefix, err = a.Take(i)
	if err != nil {
		return nil, err
	}
	var it = a.iterAt(i + 1)
	return prefix.appendN(a.size-i-1, func() T {
		var v, _ = it.Next()
		return v
	}), nil
}

// Equal reports whether a and b have the same length and eq holds for every
// pair of elements at the same index.
func Equal[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	var bi = b.iterAt(0)
	for v := range a.Values() {
		var w, _ = bi.Next()
		if !eq(v, w) {
			return false
		}
	}
	return true
}

// Slice copies the elements of a into a new slice.
func (a *Array[T]) Slice() []T {
	var s = make([]T, 0, a.size)
	for v := range a.Values() {
		s = append(s, v)
	}
	return s
}

func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range a.All() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString("]")
	return sb.String()
}

// LongString() dumps the shape of the trie; it is only useful for debugging.
func (a *Array[T]) LongString(indent string) string {
	var strs = []string{
		indent + fmt.Sprintf("Array{ size: %d, rootSize: %d, height: %d,", a.size, rootSize(a.size), height(a.size)),
	}
	if a.root != nil {
		strs = append(strs, a.root.longString(indent+halfIndent, height(a.size)-1))
	}
	strs = append(strs, indent+halfIndent+fmt.Sprintf("tail: %v", a.tail), indent+"}")
	return strings.Join(strs, "\n")
}

const halfIndent = "  "

func (n *node[T]) longString(indent string, level int) string {
	if level == 0 {
		return indent + fmt.Sprintf("block%v", n.elems)
	}
	var strs = make([]string, 0, 2+len(n.children))
	strs = append(strs, indent+fmt.Sprintf("branch{level=%d, nchildren=%d,", level, len(n.children)))
	for _, c := range n.children {
		strs = append(strs, c.longString(indent+halfIndent, level-1))
	}
	strs = append(strs, indent+"}")
	return strings.Join(strs, "\n")
}
