package frost

// AggregateSignature combines per-participant SignatureShares into the
// final Signature. shares must cover exactly the identifiers present in
// sp's commitment list, no more and no fewer. randomizer must be supplied
// whenever pub's suite supports randomization, and must be nil otherwise.
//
// Every share is verified individually before the shares are summed: a bad
// share fails aggregation with InvalidSignatureShare naming the offending
// identifier, without corrupting the result with a partial sum.
func AggregateSignature(pub *PublicKeyPackage, sp *SigningPackage, shares []SignatureShare, randomizer *Randomizer) (Signature, error) {
	suite := pub.suite

	if suite.SupportsRandomizer() != (randomizer != nil) {
		return Signature{}, newErr(InvalidRandomizer, "randomizer presence must match suite %s's SupportsRandomizer", suite.Name())
	}

	if err := matchIdentifiers(sp, shares); err != nil {
		return Signature{}, err
	}

	effKey := effectiveKey(suite, pub.groupVerifyingKey, randomizer)

	bindingFactors, err := computeBindingFactors(suite, effKey, sp)
	if err != nil {
		return Signature{}, err
	}

	groupCommitment := computeGroupCommitment(suite, sp, bindingFactors)

	challenge, err := computeChallenge(suite, groupCommitment, effKey, sp.Message)
	if err != nil {
		return Signature{}, err
	}

	ids := sp.identifiers()

	byID := make(map[Identifier]SignatureShare, len(shares))
	for _, share := range shares {
		byID[share.Identifier] = share
	}

	// Both the per-share verification and the final summation walk ids,
	// not the caller-supplied shares slice, so that a bad share is always
	// reported by the lowest offending identifier regardless of the order
	// the caller happened to pass shares in.
	for _, id := range ids {
		share := byID[id]
		commitment, _ := sp.commitment(id)
		verifyingShare, ok := pub.VerifyingShare(id)
		if !ok {
			return Signature{}, newShareErr(id, "no verifying share for identifier")
		}

		lambda, err := lagrangeCoefficient(suite, id, ids)
		if err != nil {
			return Signature{}, err
		}

		rho := bindingFactors[id]
		bj := bindingPoint(commitment, rho)

		// z_j*B == B_j + lambda_j*c*Y_j, for both suites: the per-share
		// check never needs the randomizer, since it only ever enters
		// through the challenge and the one-time aggregate correction
		// below.
		lhs := suite.Base().Mul(share.scalar)
		rhs := bj.Add(verifyingShare.point.Mul(lambda.Mul(challenge)))

		if !lhs.Equal(rhs) {
			return Signature{}, newShareErr(id, "signature share failed verification")
		}
	}

	var total Scalar
	for _, id := range ids {
		share := byID[id]
		if total == nil {
			total = share.scalar
			continue
		}
		total = total.Add(share.scalar)
	}

	if randomizer != nil {
		total = total.Add(challenge.Mul(randomizer.scalar))
	}

	sig := Signature{R: groupCommitment, Z: total}

	ok, err := VerifySignature(suite, sig, sp.Message, pub.groupVerifyingKey, randomizer)
	if err != nil {
		return Signature{}, err
	}
	if !ok {
		return Signature{}, newErr(InvalidSignature, "aggregated signature failed final verification")
	}

	return sig, nil
}

// matchIdentifiers checks that shares covers exactly sp's commitment
// identifiers, with no duplicates.
func matchIdentifiers(sp *SigningPackage, shares []SignatureShare) error {
	want := sp.identifiers()
	if len(shares) != len(want) {
		return newErr(IdentifierSetMismatch, "expected %d shares, got %d", len(want), len(shares))
	}

	seen := make(map[Identifier]bool, len(shares))
	for _, s := range shares {
		if seen[s.Identifier] {
			return newErr(IdentifierSetMismatch, "duplicate share for identifier %d", s.Identifier)
		}
		seen[s.Identifier] = true
	}
	for _, id := range want {
		if !seen[id] {
			return newErr(IdentifierSetMismatch, "missing share for identifier %d", id)
		}
	}
	return nil
}
