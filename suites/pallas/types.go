package pallas

import (
	"math/big"

	"github.com/frostline/frost"
)

type scalar struct{ v *big.Int }

func reduce(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, scalarModulus)
}

func (s scalar) Add(o frost.Scalar) frost.Scalar {
	return scalar{reduce(new(big.Int).Add(s.v, o.(scalar).v))}
}

func (s scalar) Sub(o frost.Scalar) frost.Scalar {
	return scalar{reduce(new(big.Int).Sub(s.v, o.(scalar).v))}
}

func (s scalar) Mul(o frost.Scalar) frost.Scalar {
	return scalar{reduce(new(big.Int).Mul(s.v, o.(scalar).v))}
}

func (s scalar) Invert() frost.Scalar {
	return scalar{new(big.Int).ModInverse(s.v, scalarModulus)}
}

func (s scalar) Negate() frost.Scalar {
	return scalar{reduce(new(big.Int).Neg(s.v))}
}

func (s scalar) Equal(o frost.Scalar) bool {
	return s.v.Cmp(o.(scalar).v) == 0
}

func (s scalar) IsZero() bool {
	return s.v.Sign() == 0
}

func (s scalar) Bytes() []byte {
	return encodeScalar(s.v)
}

func (s scalar) Zeroize() {
	s.v.SetInt64(0)
}

type point struct{ v affinePoint }

func (p point) Add(o frost.Point) frost.Point {
	return point{add(p.v, o.(point).v)}
}

func (p point) Sub(o frost.Point) frost.Point {
	return point{add(p.v, negate(o.(point).v))}
}

func (p point) Mul(s frost.Scalar) frost.Point {
	return point{scalarMul(s.(scalar).v, p.v)}
}

func (p point) Equal(o frost.Point) bool {
	op := o.(point).v
	if p.v.inf != op.inf {
		return false
	}
	if p.v.inf {
		return true
	}
	return p.v.x.Cmp(op.x) == 0 && p.v.y.Cmp(op.y) == 0
}

func (p point) Bytes() []byte {
	return encodePoint(p.v)
}
