package key

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Int is a Key for any integer type.
type Int[T constraints.Integer] struct {
	_   struct{} `cbor:",toarray"`
	Val T
}

// NewInt wraps v as a Key.
func NewInt[T constraints.Integer](v T) Int[T] {
	return Int[T]{Val: v}
}

// Hash32 hashes the integer's two's complement bits, so Int[int8](-1) and
// Int[int64](-1) hash alike but are never Equals.
func (i Int[T]) Hash32() uint32 {
	return hashUint64(uint64(i.Val))
}

func (i Int[T]) Equals(other Key) bool {
	var o, ok = other.(Int[T])
	return ok && i.Val == o.Val
}

func (i Int[T]) String() string {
	if i.Val < 0 {
		return strconv.FormatInt(int64(i.Val), 10)
	}
	return strconv.FormatUint(uint64(i.Val), 10)
}
