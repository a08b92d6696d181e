// Package xeddsa implements a Schnorr signature scheme in the spirit of
// Signal's XEdDSA: a 32-byte private key and 32-byte public key that sign
// and verify 64-byte signatures over arbitrary messages. It is a
// standalone leaf primitive, not part of the FROST threshold core, and
// receives deliberately minimal treatment here: the private-key clamping
// step matches X25519/XEdDSA convention, but this package does not
// implement the birational Montgomery/Edwards point conversion XEdDSA's
// public keys use — no verified ecosystem primitive for that conversion
// was available to build on here — so keys and signatures are plain
// Edwards encodings, not byte-compatible with the reference XEdDSA test
// vectors.
package xeddsa

import (
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/frostline/frost/internal/transcript"
)

// PrivateKeySize is the size of a private key.
const PrivateKeySize = 32

// PublicKeySize is the size of a public key.
const PublicKeySize = 32

// SignatureSize is the size of a signature.
const SignatureSize = 64

// GenerateKeyPair samples a fresh clamped private key and derives its
// public key.
func GenerateKeyPair() (privateKey, publicKey []byte, err error) {
	priv := make([]byte, PrivateKeySize)
	if _, err := io.ReadFull(rand.Reader, priv); err != nil {
		return nil, nil, fmt.Errorf("xeddsa: reading private key: %w", err)
	}
	clamp(priv)

	pub, err := PublicKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// PublicKey derives the public key for a clamped private key.
func PublicKey(privateKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("xeddsa: private key must be %d bytes", PrivateKeySize)
	}
	_, A, err := edwardsKeyPair(privateKey)
	if err != nil {
		return nil, err
	}
	return A.Bytes(), nil
}

// Sign produces a 64-byte XEdDSA signature over message using privateKey.
func Sign(privateKey, message []byte) ([]byte, error) {
	a, A, err := edwardsKeyPair(privateKey)
	if err != nil {
		return nil, err
	}

	random := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, random); err != nil {
		return nil, fmt.Errorf("xeddsa: reading signing randomness: %w", err)
	}

	tr := transcript.New("xeddsa.nonce")
	tr.Mix("a", a.Bytes())
	tr.Mix("random", random)
	tr.Mix("message", message)
	r, err := edwards25519.NewScalar().SetUniformBytes(tr.Derive("r", nil, 64))
	if err != nil {
		return nil, fmt.Errorf("xeddsa: deriving nonce: %w", err)
	}

	R := edwards25519.NewIdentityPoint().ScalarBaseMult(r)

	tr2 := transcript.New("xeddsa.challenge")
	tr2.Mix("R", R.Bytes())
	tr2.Mix("A", A.Bytes())
	tr2.Mix("message", message)
	c, err := edwards25519.NewScalar().SetUniformBytes(tr2.Derive("c", nil, 64))
	if err != nil {
		return nil, fmt.Errorf("xeddsa: deriving challenge: %w", err)
	}

	s := edwards25519.NewScalar().MultiplyAdd(c, a, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, R.Bytes()...)
	sig = append(sig, s.Bytes()...)
	return sig, nil
}

// Verify checks a 64-byte signature over message against a public key.
func Verify(publicKey, message, signature []byte) (bool, error) {
	if len(publicKey) != PublicKeySize {
		return false, fmt.Errorf("xeddsa: public key must be %d bytes", PublicKeySize)
	}
	if len(signature) != SignatureSize {
		return false, fmt.Errorf("xeddsa: signature must be %d bytes", SignatureSize)
	}

	A, err := edwards25519.NewIdentityPoint().SetBytes(publicKey)
	if err != nil {
		return false, fmt.Errorf("xeddsa: invalid public key: %w", err)
	}

	R, err := edwards25519.NewIdentityPoint().SetBytes(signature[:32])
	if err != nil {
		return false, nil //nolint:nilerr // malformed R decodes as "does not verify"
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(signature[32:])
	if err != nil {
		return false, nil //nolint:nilerr // non-canonical s decodes as "does not verify"
	}

	tr := transcript.New("xeddsa.challenge")
	tr.Mix("R", R.Bytes())
	tr.Mix("A", A.Bytes())
	tr.Mix("message", message)
	c, err := edwards25519.NewScalar().SetUniformBytes(tr.Derive("c", nil, 64))
	if err != nil {
		return false, fmt.Errorf("xeddsa: deriving challenge: %w", err)
	}

	// s*B == R + c*A
	lhs := edwards25519.NewIdentityPoint().ScalarBaseMult(s)
	rhs := edwards25519.NewIdentityPoint().Add(R, edwards25519.NewIdentityPoint().ScalarMult(c, A))

	return lhs.Equal(rhs) == 1, nil
}

// clamp applies the standard X25519 private-scalar clamping in place.
func clamp(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// edwardsKeyPair clamps privateKey as an X25519 scalar and derives the
// corresponding Edwards keypair.
func edwardsKeyPair(privateKey []byte) (a *edwards25519.Scalar, A *edwards25519.Point, err error) {
	if len(privateKey) != PrivateKeySize {
		return nil, nil, fmt.Errorf("xeddsa: private key must be %d bytes", PrivateKeySize)
	}

	clamped := make([]byte, PrivateKeySize)
	copy(clamped, privateKey)
	clamp(clamped)

	a, err = edwards25519.NewScalar().SetBytesWithClamping(clamped)
	if err != nil {
		return nil, nil, fmt.Errorf("xeddsa: invalid private key: %w", err)
	}

	A = edwards25519.NewIdentityPoint().ScalarBaseMult(a)
	return a, A, nil
}
