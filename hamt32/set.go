package hamt32

import (
	"fmt"
	"iter"
	"strings"

	"github.com/lleo/go-functional-collections/key"
)

// Set is an immutable, persistent set of keys. It is a Hamt whose values
// are all the empty struct.
type Set[K key.Key] struct {
	m *Hamt[K, struct{}]
}

// NewSet returns an empty Set.
func NewSet[K key.Key]() *Set[K] {
	return &Set[K]{m: New[K, struct{}]()}
}

// SetOf returns a Set holding keys.
func SetOf[K key.Key](keys ...K) *Set[K] {
	var s = NewSet[K]()
	for _, k := range keys {
		s = s.Add(k)
	}
	return s
}

// KeyRanger is anything that can enumerate a sequence of keys.
type KeyRanger[K key.Key] interface {
	All() iter.Seq[K]
}

// SetFrom builds a Set from src. If src is already a *Set[K] it is returned
// as is.
func SetFrom[K key.Key](src KeyRanger[K]) *Set[K] {
	if s, ok := src.(*Set[K]); ok {
		return s
	}
	var s = NewSet[K]()
	for k := range src.All() {
		s = s.Add(k)
	}
	return s
}

// IsEmpty reports whether s has no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Nentries returns the number of keys in s.
func (s *Set[K]) Nentries() int {
	return s.m.Nentries()
}

// Contains reports whether k is in s.
func (s *Set[K]) Contains(k K) bool {
	var _, found = s.m.Get(k)
	return found
}

// Add returns a Set that contains k. When s already contains k, s itself is
// returned.
func (s *Set[K]) Add(k K) *Set[K] {
	if s.Contains(k) {
		return s
	}
	var nm, _ = s.m.Put(k, struct{}{})
	return &Set[K]{m: nm}
}

// Remove returns a Set without k. When s does not contain k, s itself is
// returned.
func (s *Set[K]) Remove(k K) *Set[K] {
	var nm, _, removed = s.m.Del(k)
	if !removed {
		return s
	}
	return &Set[K]{m: nm}
}

// All returns an iterator over the keys of s.
func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}

// Equal reports whether s and other hold the same keys.
func (s *Set[K]) Equal(other *Set[K]) bool {
	return s.m.Equal(other.m, func(struct{}, struct{}) bool { return true })
}

// String renders s as {k1, k2, ...} in iteration order.
func (s *Set[K]) String() string {
	var strs = make([]string, 0, s.Nentries())
	for k := range s.All() {
		strs = append(strs, k.String())
	}
	return "{" + strings.Join(strs, ", ") + "}"
}

// LongString() dumps the shape of the underlying Trie.
func (s *Set[K]) LongString(indent string) string {
	return indent + fmt.Sprintf("Set{\n%s\n", s.m.LongString(indent+fullIndent)) + indent + "}"
}
