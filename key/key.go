/*
Package key defines the Key interface the hamt32 persistent map is keyed on,
and a few ready made Key implementations.

A Key supplies the full 32 bits of hash the Trie consumes, 5 bits per level,
and an equality test. Equals MUST agree with Hash32; two keys that are Equals
MUST return the same Hash32 value. Two keys that are not Equals may share a
Hash32 value; the Trie falls back to a linear scan for those.

The ready made keys hash with CircleHash64 (github.com/fxamacker/circlehash)
and xor-fold the 64bit digest into 32bits as described in
http://www.isthe.com/chongo/tech/comp/fnv/index.html#xor-fold .
*/
package key

import (
	"fmt"

	"github.com/fxamacker/circlehash"
)

// Key is the interface every key of a hamt32.Hamt must satisfy.
type Key interface {
	Hash32() uint32
	Equals(Key) bool
	String() string
}

// KeyVal is a key/value pair. It is used to bulk load and to serialize maps.
type KeyVal[K Key, V any] struct {
	_   struct{} `cbor:",toarray"`
	Key K
	Val V
}

func (kv KeyVal[K, V]) String() string {
	return fmt.Sprintf("KeyVal{%s, %v}", kv.Key, kv.Val)
}

// seed is fixed so hash values are stable across processes; a Trie encoded
// with cbor is rebuilt by Put on decode, so nothing persists a hash value.
const seed uint64 = 0x6c6c656f2d68616d

// fold64 xor-folds a 64bit hash into 32bits.
func fold64(h64 uint64) uint32 {
	return uint32(h64>>32) ^ uint32(h64)
}

func hashString(s string) uint32 {
	return fold64(circlehash.Hash64String(s, seed))
}

func hashBytes(bs []byte) uint32 {
	return fold64(circlehash.Hash64(bs, seed))
}

func hashUint64(u uint64) uint32 {
	return fold64(circlehash.Hash64Uint64x2(u, 0, seed))
}
