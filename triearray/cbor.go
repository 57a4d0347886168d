package triearray

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// MarshalCBOR encodes a as a plain CBOR array of its elements.
func (a *Array[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.Slice())
}

// UnmarshalCBOR rebuilds a from a CBOR array.
//
// This is the one method that overwrites its receiver, so it must only be
// used on a fresh Array that nothing else holds.
func (a *Array[T]) UnmarshalCBOR(data []byte) error {
	var vals []T
	if err := cbor.Unmarshal(data, &vals); err != nil {
		return errors.Wrap(err, "triearray: failed to decode elements")
	}
	*a = *Of(vals...)
	return nil
}
