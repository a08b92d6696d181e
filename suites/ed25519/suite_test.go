package ed25519

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/frostline/frost"
)

func TestSuiteConformsToInterface(t *testing.T) {
	var _ frost.Suite = New()
}

func TestScalarArithmetic(t *testing.T) {
	s := New()
	one, err := s.IdentifierScalar(1)
	if err != nil {
		t.Fatal(err)
	}
	two, err := s.IdentifierScalar(2)
	if err != nil {
		t.Fatal(err)
	}
	three, err := s.IdentifierScalar(3)
	if err != nil {
		t.Fatal(err)
	}

	if !one.Add(two).Equal(three) {
		t.Error("1 + 2 != 3")
	}
	if !three.Sub(two).Equal(one) {
		t.Error("3 - 2 != 1")
	}
	if !two.Mul(two).Add(one).Equal(three.Add(two)) {
		t.Error("2*2 + 1 != 3 + 2")
	}
	inv := two.Invert()
	if !two.Mul(inv).Equal(one) {
		t.Error("2 * inverse(2) != 1")
	}
	if !two.Negate().Add(two).IsZero() {
		t.Error("2 + (-2) != 0")
	}
}

func TestScalarBytesRoundTrip(t *testing.T) {
	s := New()
	sc, err := s.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := s.ScalarFromCanonicalBytes(sc.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Equal(decoded) {
		t.Error("scalar did not round-trip through canonical bytes")
	}
}

func TestScalarZeroize(t *testing.T) {
	s := New()
	sc, err := s.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	before := append([]byte{}, sc.Bytes()...)
	sc.Zeroize()
	if bytes.Equal(before, sc.Bytes()) {
		t.Error("Zeroize did not change the scalar's encoding")
	}
}

func TestPointArithmetic(t *testing.T) {
	s := New()
	one, _ := s.IdentifierScalar(1)
	two, _ := s.IdentifierScalar(2)

	b := s.Base()
	doubled := b.Add(b)
	scaled := b.Mul(two)
	if !doubled.Equal(scaled) {
		t.Error("B + B != 2*B")
	}
	if !b.Sub(b).Equal(s.Identity()) {
		t.Error("B - B != identity")
	}
	if !b.Mul(one).Equal(b) {
		t.Error("1*B != B")
	}
}

func TestPointFromCanonicalBytesRejectsIdentity(t *testing.T) {
	s := New()
	if _, err := s.PointFromCanonicalBytes(s.Identity().Bytes()); err == nil {
		t.Error("expected an error decoding the identity point")
	}
}

func TestPointBytesRoundTrip(t *testing.T) {
	s := New()
	p := s.Base()
	decoded, err := s.PointFromCanonicalBytes(p.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(decoded) {
		t.Error("point did not round-trip through canonical bytes")
	}
}

func TestIdentifierScalarRejectsZero(t *testing.T) {
	s := New()
	if _, err := s.IdentifierScalar(0); err == nil {
		t.Fatal("expected an error for identifier 0")
	}
}

func TestRandomizerScalarUnsupported(t *testing.T) {
	s := New()
	if s.SupportsRandomizer() {
		t.Fatal("ed25519 suite must report SupportsRandomizer() == false")
	}
	if _, err := s.RandomizerScalar([]byte("context")); err == nil {
		t.Fatal("expected an error deriving a randomizer on a non-randomizing suite")
	}
}

func TestBindingFactorAndChallengeAreDeterministic(t *testing.T) {
	s := New()
	groupKey := s.Base().Bytes()
	message := []byte("hello")
	commitments := []byte("commitment-list")

	r1, err := s.BindingFactor(groupKey, message, commitments, 1)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := s.BindingFactor(groupKey, message, commitments, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !r1.Equal(r2) {
		t.Error("BindingFactor is not deterministic for identical inputs")
	}

	r3, err := s.BindingFactor(groupKey, message, commitments, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Equal(r3) {
		t.Error("BindingFactor produced the same output for two different identifiers")
	}

	c1, err := s.Challenge(groupKey, groupKey, message)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := s.Challenge(groupKey, groupKey, message)
	if err != nil {
		t.Fatal(err)
	}
	if !c1.Equal(c2) {
		t.Error("Challenge is not deterministic for identical inputs")
	}
}

func TestNonceGenerateVariesWithRandomness(t *testing.T) {
	s := New()
	secret := []byte("signing share bytes")

	n1, err := s.NonceGenerate(secret, []byte("random-a"))
	if err != nil {
		t.Fatal(err)
	}
	n2, err := s.NonceGenerate(secret, []byte("random-b"))
	if err != nil {
		t.Fatal(err)
	}
	if n1.Equal(n2) {
		t.Error("NonceGenerate produced the same scalar for different randomness")
	}
}
