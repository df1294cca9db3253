package core

import (
	"github.com/xorkit/xorkit/internal/registry"
	"github.com/xorkit/xorkit/internal/xor"
)

// Re-export selected internal API as a stable public surface. These are
// aliases so external consumers can depend on a stable path; the internals
// can move without breaking callers.
var ErrEmptyKey = xor.ErrEmptyKey

type Registry = registry.Registry
type Registration = registry.Registration
type UsageError = registry.UsageError

// Transform is the stable entrypoint for other programs: repeating-key XOR
// of data with key. See internal/xor for the full contract.
func Transform(data, key []byte) ([]byte, error) {
	return xor.Transform(data, key)
}

// NewRegistry returns a command registry with the xor command installed,
// advertising the given package name and version.
func NewRegistry(pkg, version string) (*Registry, error) {
	r := registry.New(pkg, version)
	if _, err := registry.RegisterXOR(r); err != nil {
		return nil, err
	}
	return r, nil
}
