package frost

import (
	"encoding/hex"
	"encoding/json"
)

// marshalJSON wraps json.Marshal, translating failures into the closed
// SerializationError code.
func marshalJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, newErr(SerializationError, "%v", err)
	}
	return b, nil
}

// unmarshalJSON wraps json.Unmarshal, translating failures into the closed
// SerializationError code.
func unmarshalJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return newErr(SerializationError, "%v", err)
	}
	return nil
}

// encodeHex renders b as lowercase, unpadded hexadecimal.
func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// decodeHex parses a lowercase hex string of exactly wantLen decoded bytes,
// rejecting wrong lengths, invalid characters, and non-canonical (e.g.
// uppercase) hex before the caller ever sees the bytes. Round-trip
// canonicality of the decoded value itself (point/scalar range checks) is
// the caller's responsibility, since that depends on the suite.
func decodeHex(s string, wantLen int) ([]byte, error) {
	if len(s) != wantLen*2 {
		return nil, newErr(InvalidEncoding, "expected %d hex characters, got %d", wantLen*2, len(s))
	}
	for _, c := range s {
		if c >= 'A' && c <= 'F' {
			return nil, newErr(InvalidEncoding, "uppercase hex digit %q is not canonical", c)
		}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, newErr(InvalidEncoding, "malformed hex: %v", err)
	}
	if encodeHex(b) != s {
		return nil, newErr(InvalidEncoding, "hex string does not round-trip")
	}
	return b, nil
}

// decodeIdentifier parses a wire identifier, which is transported as a
// plain decimal integer rather than hex (it is a small count, not raw key
// material) and must be in 1..=255.
func decodeIdentifier(n int) (Identifier, error) {
	if n < 1 || n > 255 {
		return 0, newErr(InvalidIdentifier, "identifier %d out of range 1..=255", n)
	}
	return Identifier(n), nil
}
