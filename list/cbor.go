package list

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// MarshalCBOR encodes l as a plain CBOR array of its elements, head first.
func (l *List[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(l.Slice())
}

// UnmarshalCBOR rebuilds l from a CBOR array.
//
// This is the one method that overwrites its receiver, so it must only be
// used on a fresh List that nothing else holds.
func (l *List[T]) UnmarshalCBOR(data []byte) error {
	var vals []T
	if err := cbor.Unmarshal(data, &vals); err != nil {
		return errors.Wrap(err, "list: failed to decode elements")
	}
	*l = *Of(vals...)
	return nil
}
