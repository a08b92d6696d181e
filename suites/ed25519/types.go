package ed25519

import (
	"filippo.io/edwards25519"

	"github.com/frostline/frost"
)

type scalar struct{ v *edwards25519.Scalar }

var zeroScalarBytes = make([]byte, 32)

func (s scalar) Add(o frost.Scalar) frost.Scalar {
	return scalar{edwards25519.NewScalar().Add(s.v, o.(scalar).v)}
}

func (s scalar) Sub(o frost.Scalar) frost.Scalar {
	return scalar{edwards25519.NewScalar().Subtract(s.v, o.(scalar).v)}
}

func (s scalar) Mul(o frost.Scalar) frost.Scalar {
	return scalar{edwards25519.NewScalar().Multiply(s.v, o.(scalar).v)}
}

func (s scalar) Invert() frost.Scalar {
	return scalar{edwards25519.NewScalar().Invert(s.v)}
}

func (s scalar) Negate() frost.Scalar {
	return scalar{edwards25519.NewScalar().Negate(s.v)}
}

func (s scalar) Equal(o frost.Scalar) bool {
	return s.v.Equal(o.(scalar).v) == 1
}

func (s scalar) IsZero() bool {
	return s.v.Equal(edwards25519.NewScalar()) == 1
}

func (s scalar) Bytes() []byte {
	return s.v.Bytes()
}

func (s scalar) Zeroize() {
	_, _ = s.v.SetCanonicalBytes(zeroScalarBytes)
}

type point struct{ v *edwards25519.Point }

func (p point) Add(o frost.Point) frost.Point {
	return point{edwards25519.NewIdentityPoint().Add(p.v, o.(point).v)}
}

func (p point) Sub(o frost.Point) frost.Point {
	return point{edwards25519.NewIdentityPoint().Subtract(p.v, o.(point).v)}
}

func (p point) Mul(s frost.Scalar) frost.Point {
	return point{edwards25519.NewIdentityPoint().ScalarMult(s.(scalar).v, p.v)}
}

func (p point) Equal(o frost.Point) bool {
	return p.v.Equal(o.(point).v) == 1
}

func (p point) Bytes() []byte {
	return p.v.Bytes()
}
