package common

import "github.com/nspcc-dev/neo-go/pkg/interop/util"

// BytesEqual compares two slices of bytes by wrapping them into strings,
// which is necessary with new util.Equals interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}

// ToFixedWidth encodes a non-negative integer as an 8-byte big-endian
// sequence. Unlike the VM integer encoding, the result preserves numeric
// order under lexicographic key comparison, so it can be used as a storage
// key postfix iterated in insertion order.
func ToFixedWidth(n int) []byte {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	for i := 7; i >= 0; i-- {
		b[i] = byte(n % 256)
		n /= 256
	}
	return b
}
