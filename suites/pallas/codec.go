package pallas

import (
	"fmt"
	"math/big"
)

const encodedSize = 32

// encodeScalar renders a scalar mod q as 32 little-endian bytes.
func encodeScalar(s *big.Int) []byte {
	return leBytes(s, encodedSize)
}

// decodeScalar parses a canonical 32-byte little-endian scalar encoding,
// rejecting any value >= q or any input of the wrong width.
func decodeScalar(b []byte) (*big.Int, error) {
	if len(b) != encodedSize {
		return nil, fmt.Errorf("scalar must be %d bytes, got %d", encodedSize, len(b))
	}
	v := fromLE(b)
	if v.Cmp(scalarModulus) >= 0 {
		return nil, fmt.Errorf("scalar is not canonically reduced mod q")
	}
	return v, nil
}

// encodePoint renders a point as a 32-byte compressed encoding: the
// little-endian x-coordinate with the top bit of the last byte used as the
// y-coordinate's parity. The identity is encoded as all zero bytes, which
// is never a valid (x, y) pair on this curve since b=5 != 0.
func encodePoint(p affinePoint) []byte {
	if p.inf {
		return make([]byte, encodedSize)
	}
	out := leBytes(p.x, encodedSize)
	if p.y.Bit(0) == 1 {
		out[encodedSize-1] |= 0x80
	}
	return out
}

// decodePoint parses a compressed point encoding, recovering y via a
// modular square root and selecting the root matching the parity bit.
func decodePoint(b []byte) (affinePoint, error) {
	if len(b) != encodedSize {
		return affinePoint{}, fmt.Errorf("point must be %d bytes, got %d", encodedSize, len(b))
	}

	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return infinity(), nil
	}

	sign := b[encodedSize-1] & 0x80
	xBytes := make([]byte, encodedSize)
	copy(xBytes, b)
	xBytes[encodedSize-1] &^= 0x80

	x := fromLE(xBytes)
	if x.Cmp(fieldModulus) >= 0 {
		return affinePoint{}, fmt.Errorf("x-coordinate is not canonically reduced mod p")
	}

	x3 := modP(new(big.Int).Mul(x, x))
	x3 = modP(new(big.Int).Mul(x3, x))
	rhs := modP(new(big.Int).Add(x3, curveB))

	y := new(big.Int).ModSqrt(rhs, fieldModulus)
	if y == nil {
		return affinePoint{}, fmt.Errorf("x-coordinate is not on the curve")
	}
	wantOdd := sign != 0
	if (y.Bit(0) == 1) != wantOdd {
		y = modP(new(big.Int).Neg(y))
	}

	p := newAffinePoint(x, y)
	if !onCurve(p.x, p.y) {
		return affinePoint{}, fmt.Errorf("decoded point is not on the curve")
	}

	// Reject non-canonical encodings: re-encoding must reproduce the input.
	if string(encodePoint(p)) != string(b) {
		return affinePoint{}, fmt.Errorf("point encoding does not round-trip")
	}

	return p, nil
}

// leBytes renders v as exactly n little-endian bytes, panicking if v does
// not fit (a programmer error: every caller bounds v by a modulus smaller
// than 2^(8n) before calling this).
func leBytes(v *big.Int, n int) []byte {
	be := v.Bytes()
	if len(be) > n {
		panic("pallas: value does not fit in requested width")
	}
	out := make([]byte, n)
	for i, b := range be {
		out[n-1-i] = b
	}
	return out
}

// fromLE interprets b as a little-endian unsigned integer.
func fromLE(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}
