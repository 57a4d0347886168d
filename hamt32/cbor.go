package hamt32

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/lleo/go-functional-collections/key"
)

// MarshalCBOR encodes h as a CBOR array of [key, val] arrays, in iteration
// order.
func (h *Hamt[K, V]) MarshalCBOR() ([]byte, error) {
	var kvs = make([]key.KeyVal[K, V], 0, h.nentries)
	for k, v := range h.All() {
		kvs = append(kvs, key.KeyVal[K, V]{Key: k, Val: v})
	}
	return cbor.Marshal(kvs)
}

// UnmarshalCBOR rebuilds h from the output of MarshalCBOR. K must be a
// concrete key type; an interface type like key.Key can not be decoded.
//
// This is the one method that overwrites its receiver, so it must only be
// used on a fresh Hamt that nothing else holds.
func (h *Hamt[K, V]) UnmarshalCBOR(data []byte) error {
	var kvs []key.KeyVal[K, V]
	if err := cbor.Unmarshal(data, &kvs); err != nil {
		return errors.Wrap(err, "hamt32: failed to decode key/val pairs")
	}
	*h = *FromKeyVals(kvs...)
	return nil
}

// MarshalCBOR encodes s as a CBOR array of keys.
func (s *Set[K]) MarshalCBOR() ([]byte, error) {
	var keys = make([]K, 0, s.Nentries())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return cbor.Marshal(keys)
}

// UnmarshalCBOR rebuilds s from the output of MarshalCBOR; the same caveats
// as Hamt.UnmarshalCBOR apply.
func (s *Set[K]) UnmarshalCBOR(data []byte) error {
	var keys []K
	if err := cbor.Unmarshal(data, &keys); err != nil {
		return errors.Wrap(err, "hamt32: failed to decode set keys")
	}
	*s = *SetOf(keys...)
	return nil
}
