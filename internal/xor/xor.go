// Package xor implements the repeating-key XOR transform: each output byte is
// the input byte combined with the key byte at the cyclically wrapped key
// position. The transform is its own inverse, so applying it twice with the
// same key restores the original bytes.
package xor

import "errors"

// ErrEmptyKey is returned when a non-empty buffer is transformed with a
// zero-length key; the cyclic key index is undefined without at least one
// key byte.
var ErrEmptyKey = errors.New("xor: empty key")

// Transform returns a new buffer of len(data) bytes where each byte is
// data[i] XOR key[i mod len(key)]. It never mutates or retains its inputs.
// Empty data succeeds with an empty result regardless of key length.
func Transform(data, key []byte) ([]byte, error) {
	out := make([]byte, len(data))
	if err := transform(out, data, key); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendTransform appends the transform of data to dst and returns the
// extended slice, avoiding an allocation when dst has capacity.
func AppendTransform(dst, data, key []byte) ([]byte, error) {
	n := len(dst)
	dst = append(dst, data...)
	if err := transform(dst[n:], dst[n:], key); err != nil {
		return nil, err
	}
	return dst, nil
}

// TransformInPlace overwrites buf with its transform. Callers that own the
// buffer can use this to avoid the output allocation entirely.
func TransformInPlace(buf, key []byte) error {
	return transform(buf, buf, key)
}

// transform writes the transform of data into out. out and data must have
// equal length and may alias. The key index is a running counter reset on
// wrap, keeping the loop at one compare per byte instead of a division.
func transform(out, data, key []byte) error {
	if len(data) == 0 {
		return nil
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}
	ki := 0
	for i := range data {
		out[i] = data[i] ^ key[ki]
		ki++
		if ki == len(key) {
			ki = 0
		}
	}
	return nil
}
