package frost

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/frostline/frost/suites/ed25519"
	"github.com/frostline/frost/suites/pallas"
)

// detReader wraps a seeded math/rand generator as an io.Reader, giving tests
// a deterministic source of "randomness" without touching the public,
// crypto/rand-backed entry points.
func detReader(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}

func TestGenerateKeyShares(t *testing.T) {
	for _, suite := range []Suite{ed25519.New(), pallas.New()} {
		t.Run(suite.Name(), func(t *testing.T) {
			t.Run("threshold too low", func(t *testing.T) {
				if _, _, err := generateKeyShares(suite, 0, 3, detReader(1)); err == nil {
					t.Fatal("expected error")
				} else if aerr, ok := err.(*Error); !ok || aerr.Code != InvalidThreshold {
					t.Fatalf("got %v, want InvalidThreshold", err)
				}
			})

			t.Run("threshold above total", func(t *testing.T) {
				if _, _, err := generateKeyShares(suite, 4, 3, detReader(1)); err == nil {
					t.Fatal("expected error")
				} else if aerr, ok := err.(*Error); !ok || aerr.Code != InvalidThreshold {
					t.Fatalf("got %v, want InvalidThreshold", err)
				}
			})

			t.Run("too many participants", func(t *testing.T) {
				if _, _, err := generateKeyShares(suite, 1, 256, detReader(1)); err == nil {
					t.Fatal("expected error")
				} else if aerr, ok := err.(*Error); !ok || aerr.Code != TooManyParticipants {
					t.Fatalf("got %v, want TooManyParticipants", err)
				}
			})

			t.Run("produces one share per participant", func(t *testing.T) {
				kps, pub, err := generateKeyShares(suite, 2, 3, detReader(1))
				if err != nil {
					t.Fatal(err)
				}
				if len(kps) != 3 {
					t.Fatalf("len(kps) = %d, want 3", len(kps))
				}
				for i, kp := range kps {
					if kp.Identifier != Identifier(i+1) {
						t.Errorf("kps[%d].Identifier = %d, want %d", i, kp.Identifier, i+1)
					}
					if kp.MinThreshold != 2 {
						t.Errorf("kps[%d].MinThreshold = %d, want 2", i, kp.MinThreshold)
					}
					vs, ok := pub.VerifyingShare(kp.Identifier)
					if !ok {
						t.Fatalf("public key package missing share for %d", kp.Identifier)
					}
					if !bytes.Equal(vs.Bytes(), kp.VerifyingShare.Bytes()) {
						t.Errorf("verifying share mismatch for %d", kp.Identifier)
					}
					if !bytes.Equal(kp.VerifyingKey.Bytes(), pub.GroupVerifyingKey().Bytes()) {
						t.Errorf("group key mismatch for %d", kp.Identifier)
					}
				}
			})

			t.Run("deterministic for a fixed seed", func(t *testing.T) {
				kps1, pub1, err := generateKeyShares(suite, 2, 3, detReader(42))
				if err != nil {
					t.Fatal(err)
				}
				kps2, pub2, err := generateKeyShares(suite, 2, 3, detReader(42))
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(pub1.GroupVerifyingKey().Bytes(), pub2.GroupVerifyingKey().Bytes()) {
					t.Error("same seed produced different group keys")
				}
				for i := range kps1 {
					if !bytes.Equal(kps1[i].SigningShare.Bytes(), kps2[i].SigningShare.Bytes()) {
						t.Errorf("share %d differs across identical seeds", i)
					}
				}
			})

			t.Run("key uniqueness across independent calls", func(t *testing.T) {
				_, pub1, err := generateKeyShares(suite, 2, 3, detReader(7))
				if err != nil {
					t.Fatal(err)
				}
				_, pub2, err := generateKeyShares(suite, 2, 3, detReader(8))
				if err != nil {
					t.Fatal(err)
				}
				if bytes.Equal(pub1.GroupVerifyingKey().Bytes(), pub2.GroupVerifyingKey().Bytes()) {
					t.Error("independent calls produced the same group key")
				}
			})

			t.Run("reconstructs the secret via Lagrange interpolation", func(t *testing.T) {
				kps, pub, err := generateKeyShares(suite, 3, 5, detReader(99))
				if err != nil {
					t.Fatal(err)
				}
				for _, subset := range [][]int{{0, 1, 2}, {1, 3, 4}, {0, 2, 4}} {
					ids := make([]Identifier, len(subset))
					for i, idx := range subset {
						ids[i] = kps[idx].Identifier
					}
					var sum Scalar
					for _, idx := range subset {
						lambda, err := lagrangeCoefficient(suite, kps[idx].Identifier, ids)
						if err != nil {
							t.Fatal(err)
						}
						term := lambda.Mul(kps[idx].SigningShare.scalar)
						if sum == nil {
							sum = term
						} else {
							sum = sum.Add(term)
						}
					}
					reconstructed := suite.Base().Mul(sum)
					if !reconstructed.Equal(pub.GroupVerifyingKey().point) {
						t.Errorf("subset %v did not reconstruct the group key", subset)
					}
				}
			})
		})
	}
}

func TestEvalPolynomial(t *testing.T) {
	suite := ed25519.New()
	one, _ := suite.IdentifierScalar(1)
	two, _ := suite.IdentifierScalar(2)
	three, _ := suite.IdentifierScalar(3)

	// f(x) = 1 + 2x, f(3) = 7.
	got := evalPolynomial([]Scalar{one, two}, three)
	seven, _ := suite.IdentifierScalar(7)
	if !got.Equal(seven) {
		t.Errorf("evalPolynomial(1+2x, 3) = %x, want %x", got.Bytes(), seven.Bytes())
	}
}
