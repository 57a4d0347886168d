package key

import (
	"bytes"
	"fmt"
)

// Bytes is a byte slice Key. The slice MUST NOT be modified after it has been
// used as a key; the Trie keeps a reference to it.
type Bytes []byte

func (b Bytes) Hash32() uint32 {
	return hashBytes(b)
}

func (b Bytes) Equals(other Key) bool {
	var o, ok = other.(Bytes)
	return ok && bytes.Equal(b, o)
}

func (b Bytes) String() string {
	return fmt.Sprintf("%x", []byte(b))
}
