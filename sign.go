package frost

// SignatureShare is a participant's round-2 output z_i.
type SignatureShare struct {
	Identifier Identifier
	scalar     Scalar
}

// Bytes returns the canonical encoding of z_i.
func (s SignatureShare) Bytes() []byte { return s.scalar.Bytes() }

// Hex returns the lowercase hex encoding of z_i.
func (s SignatureShare) Hex() string { return encodeHex(s.Bytes()) }

type wireSignatureShare struct {
	Identifier int    `json:"identifier"`
	Share      string `json:"share"`
}

// EncodeJSON renders the share as its structured-text wire form.
func (s SignatureShare) EncodeJSON() ([]byte, error) {
	return marshalJSON(wireSignatureShare{Identifier: int(s.Identifier), Share: s.Hex()})
}

// DecodeSignatureShare parses the structured-text wire form produced by
// EncodeJSON.
func DecodeSignatureShare(suite Suite, data []byte) (SignatureShare, error) {
	var w wireSignatureShare
	if err := unmarshalJSON(data, &w); err != nil {
		return SignatureShare{}, err
	}
	id, err := decodeIdentifier(w.Identifier)
	if err != nil {
		return SignatureShare{}, err
	}
	b, err := decodeHex(w.Share, suite.ScalarSize())
	if err != nil {
		return SignatureShare{}, err
	}
	sc, err := suite.ScalarFromCanonicalBytes(b)
	if err != nil {
		return SignatureShare{}, newErr(InvalidEncoding, "signature share: %v", err)
	}
	return SignatureShare{Identifier: id, scalar: sc}, nil
}

// GenerateRound2Signature produces kp's SignatureShare for sp. nonce must be
// the Nonce returned by GenerateRound1Commitment for this same ceremony and
// is consumed (and zeroized) by this call, regardless of outcome.
//
// randomizer must be supplied (non-nil) whenever pub's suite supports
// randomization, and must be nil otherwise.
func GenerateRound2Signature(kp *KeyPackage, nonce *Nonce, sp *SigningPackage, pub *PublicKeyPackage, randomizer *Randomizer) (SignatureShare, error) {
	suite := kp.suite

	hiding, binding, err := nonce.consume()
	defer nonce.Zeroize()
	if err != nil {
		return SignatureShare{}, err
	}

	if suite.SupportsRandomizer() != (randomizer != nil) {
		return SignatureShare{}, newErr(InvalidRandomizer, "randomizer presence must match suite %s's SupportsRandomizer", suite.Name())
	}

	if _, ok := sp.commitment(kp.Identifier); !ok {
		return SignatureShare{}, newErr(MissingCommitment, "own commitment for identifier %d not present in signing package", kp.Identifier)
	}

	ids := sp.identifiers()
	found := false
	for _, id := range ids {
		if id == kp.Identifier {
			found = true
			break
		}
	}
	if !found {
		return SignatureShare{}, newErr(IdentifierNotInPackage, "identifier %d not present in signing package", kp.Identifier)
	}

	effKey := effectiveKey(suite, kp.VerifyingKey, randomizer)

	bindingFactors, err := computeBindingFactors(suite, effKey, sp)
	if err != nil {
		return SignatureShare{}, err
	}

	groupCommitment := computeGroupCommitment(suite, sp, bindingFactors)

	challenge, err := computeChallenge(suite, groupCommitment, effKey, sp.Message)
	if err != nil {
		return SignatureShare{}, err
	}

	lambda, err := lagrangeCoefficient(suite, kp.Identifier, ids)
	if err != nil {
		return SignatureShare{}, err
	}

	rho := bindingFactors[kp.Identifier]

	// z_i = d_i + rho_i*e_i + lambda_i*s_i*c. This formula is identical for
	// both suites: the randomizer only ever enters through the challenge
	// (via the effective key) and, once, during aggregation — see
	// aggregate.go.
	z := hiding.Add(binding.Mul(rho)).Add(lambda.Mul(kp.SigningShare.scalar).Mul(challenge))

	return SignatureShare{Identifier: kp.Identifier, scalar: z}, nil
}
