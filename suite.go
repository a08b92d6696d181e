package frost

import "io"

// Scalar is an element of a ciphersuite's prime-order scalar field.
// Implementations are value-like: every arithmetic method returns a new
// Scalar rather than mutating the receiver, so callers can freely alias
// intermediate results.
type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Invert() Scalar
	Negate() Scalar
	Equal(Scalar) bool
	IsZero() bool
	Bytes() []byte

	// Zeroize overwrites the scalar's internal representation with zeros
	// in place. After Zeroize, the Scalar must not be used for anything
	// but further Zeroize calls.
	Zeroize()
}

// Point is an element of a ciphersuite's prime-order group.
type Point interface {
	Add(Point) Point
	Sub(Point) Point
	Mul(Scalar) Point
	Equal(Point) bool
	Bytes() []byte
}

// Suite is a FROST ciphersuite: the group, its hash functions, and the
// canonical codec for one concrete curve. The FROST core in this package is
// written once against Suite; suites/ed25519 and suites/pallas are the two
// concrete implementations this service ships.
//
// A Suite's hash methods correspond to the H1..H5 family from the FROST
// specification, named here for what they compute rather than their
// position in that enumeration.
type Suite interface {
	// Name identifies the suite on diagnostic output.
	Name() string

	// SupportsRandomizer reports whether this suite implements the
	// rerandomized-key variant of the protocol.
	SupportsRandomizer() bool

	ScalarSize() int
	PointSize() int

	// Base returns the group generator B.
	Base() Point

	// Identity returns the group identity element.
	Identity() Point

	// RandomScalar samples a uniform scalar from rand by wide reduction of
	// 64 random bytes. A zero result is not rejected.
	RandomScalar(rand io.Reader) (Scalar, error)

	// ScalarFromUniformBytes maps a uniformly random byte string of
	// ScalarSize()*2 bytes to a scalar via wide reduction.
	ScalarFromUniformBytes(b []byte) (Scalar, error)

	// ScalarFromCanonicalBytes decodes a fixed-width canonical scalar
	// encoding, rejecting any non-canonical representation.
	ScalarFromCanonicalBytes(b []byte) (Scalar, error)

	// PointFromCanonicalBytes decodes a fixed-width canonical point
	// encoding, rejecting any non-canonical representation. No subgroup
	// check is made beyond what the curve itself implies: suites/pallas has
	// prime order, while suites/ed25519 rejects only the identity and does
	// not reject points with a small-order component.
	PointFromCanonicalBytes(b []byte) (Point, error)

	// IdentifierScalar embeds a wire identifier into the scalar field via
	// canonical little-endian encoding of its integer value.
	IdentifierScalar(id Identifier) (Scalar, error)

	// NonceGenerate derives a single nonce scalar from a signing share's
	// canonical encoding and fresh random bytes, binding the nonce to both
	// the share and the randomness so a weak RNG alone cannot cause reuse.
	NonceGenerate(secret, random []byte) (Scalar, error)

	// BindingFactor computes rho_i for participant id, binding its
	// commitment to the full, identifier-sorted commitment list, the
	// effective group key, and the message.
	BindingFactor(groupKeyEnc, message, commitmentListEnc []byte, id Identifier) (Scalar, error)

	// Challenge computes the Schnorr challenge c from the group
	// commitment R, the effective verifying key, and the message.
	Challenge(rEnc, yEffEnc, message []byte) (Scalar, error)

	// RandomizerScalar derives a randomizer alpha from a context
	// transcript. Only meaningful when SupportsRandomizer is true.
	RandomizerScalar(transcript []byte) (Scalar, error)
}
