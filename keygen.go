package frost

import (
	"crypto/rand"
	"io"

	"github.com/frostline/frost/internal/transcript"
)

// GenerateKeyShares performs trusted-dealer key generation for a
// threshold-of-total FROST scheme: threshold of total participants must
// cooperate to sign, and it returns one KeyPackage per participant plus the
// PublicKeyPackage shared by all of them.
//
// Identifiers are 1-based and assigned in order: the i-th KeyPackage
// (0-indexed) carries Identifier(i+1).
func GenerateKeyShares(suite Suite, threshold, total int) ([]*KeyPackage, *PublicKeyPackage, error) {
	return generateKeyShares(suite, threshold, total, rand.Reader)
}

// generateKeyShares is GenerateKeyShares parameterized on an entropy
// source, so tests can substitute a deterministic reader without exposing
// that switch on the public API (see §5's "test mode" requirement).
func generateKeyShares(suite Suite, threshold, total int, rnd io.Reader) ([]*KeyPackage, *PublicKeyPackage, error) {
	if threshold < 1 || threshold > total {
		return nil, nil, newErr(InvalidThreshold, "threshold must satisfy 1 <= t <= n, got t=%d n=%d", threshold, total)
	}
	if total > 255 {
		return nil, nil, newErr(TooManyParticipants, "total must be <= 255, got %d", total)
	}

	seed := make([]byte, 64)
	if _, err := io.ReadFull(rnd, seed); err != nil {
		return nil, nil, newErr(RNGFailure, "reading keygen seed: %v", err)
	}

	tr := transcript.New("frost.keygen." + suite.Name())
	tr.Mix("seed", seed)

	coeffs := make([]Scalar, threshold)
	for i := range threshold {
		c, err := suite.ScalarFromUniformBytes(tr.Derive("coefficient", nil, 64))
		if err != nil {
			return nil, nil, newErr(RNGFailure, "deriving polynomial coefficient: %v", err)
		}
		coeffs[i] = c
	}

	groupKey := suite.Base().Mul(coeffs[0])

	keyPackages := make([]*KeyPackage, total)
	verifyingShares := make(map[Identifier]VerifyingShare, total)
	for i := range total {
		id := Identifier(i + 1)

		idScalar, err := suite.IdentifierScalar(id)
		if err != nil {
			return nil, nil, err
		}

		share := evalPolynomial(coeffs, idScalar)
		vs := VerifyingShare{point: suite.Base().Mul(share)}

		keyPackages[i] = &KeyPackage{
			suite:          suite,
			Identifier:     id,
			SigningShare:   SigningShare{scalar: share},
			VerifyingShare: vs,
			VerifyingKey:   VerifyingKey{point: groupKey},
			MinThreshold:   threshold,
		}
		verifyingShares[id] = vs
	}

	pub := &PublicKeyPackage{
		suite:             suite,
		verifyingShares:   verifyingShares,
		groupVerifyingKey: VerifyingKey{point: groupKey},
	}

	return keyPackages, pub, nil
}

// evalPolynomial evaluates f(x) = coeffs[0] + coeffs[1]*x + ... +
// coeffs[t-1]*x^(t-1) at x using Horner's method.
func evalPolynomial(coeffs []Scalar, x Scalar) Scalar {
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = result.Mul(x).Add(coeffs[i])
	}
	return result
}
