// Package codec converts command operands and results between their terminal
// representation and raw bytes. The transform itself is byte-transparent, so
// every re-encoding at the boundary is explicit: "raw" is the identity and
// the only implicit default, never a character-set conversion.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Encoding names accepted by Decode and Encode.
const (
	Raw    = "raw"
	Hex    = "hex"
	Base64 = "base64"
)

// Names returns the supported encoding names, sorted.
func Names() []string {
	names := []string{Raw, Hex, Base64}
	sort.Strings(names)
	return names
}

// Decode interprets in according to enc and returns the raw bytes. Raw input
// is returned as a copy so callers can't alias the original buffer.
func Decode(enc string, in []byte) ([]byte, error) {
	switch enc {
	case Raw:
		return append([]byte(nil), in...), nil
	case Hex:
		out, err := hex.DecodeString(strings.TrimSpace(string(in)))
		if err != nil {
			return nil, fmt.Errorf("codec: bad hex input: %w", err)
		}
		return out, nil
	case Base64:
		out, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(in)))
		if err != nil {
			return nil, fmt.Errorf("codec: bad base64 input: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("codec: unknown encoding %q (use %s)", enc, strings.Join(Names(), "|"))
	}
}

// Encode renders raw bytes according to enc.
func Encode(enc string, out []byte) ([]byte, error) {
	switch enc {
	case Raw:
		return out, nil
	case Hex:
		return []byte(hex.EncodeToString(out)), nil
	case Base64:
		return []byte(base64.StdEncoding.EncodeToString(out)), nil
	default:
		return nil, fmt.Errorf("codec: unknown encoding %q (use %s)", enc, strings.Join(Names(), "|"))
	}
}
