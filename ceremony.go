package frost

// This file holds the binding-factor, group-commitment, challenge, and
// Lagrange-coefficient computations shared by round-2 signing and
// aggregation. Both call sites must derive byte-identical values from the
// same SigningPackage, so the logic lives in one place.

// computeBindingFactors derives rho_j for every participant in sp,
// binding each to the full, identifier-sorted commitment list, the
// effective group key, and the message.
func computeBindingFactors(suite Suite, effectiveKey VerifyingKey, sp *SigningPackage) (map[Identifier]Scalar, error) {
	encodedList := sp.encodedList()
	keyEnc := effectiveKey.Bytes()

	factors := make(map[Identifier]Scalar, len(sp.Commitments))
	for _, c := range sp.Commitments {
		rho, err := suite.BindingFactor(keyEnc, sp.Message, encodedList, c.Identifier)
		if err != nil {
			return nil, newErr(InvalidEncoding, "binding factor for %d: %v", c.Identifier, err)
		}
		factors[c.Identifier] = rho
	}
	return factors, nil
}

// computeGroupCommitment computes R = Sum_j (D_j + rho_j*E_j).
func computeGroupCommitment(suite Suite, sp *SigningPackage, bindingFactors map[Identifier]Scalar) Point {
	result := suite.Identity()
	for _, c := range sp.Commitments {
		rho := bindingFactors[c.Identifier]
		result = result.Add(c.Hiding).Add(c.Binding.Mul(rho))
	}
	return result
}

// bindingPoint returns B_j = D_j + rho_j*E_j for a single participant.
func bindingPoint(c Commitment, rho Scalar) Point {
	return c.Hiding.Add(c.Binding.Mul(rho))
}

// computeChallenge derives c = H_c(R, Y_eff, m).
func computeChallenge(suite Suite, groupCommitment Point, effectiveKey VerifyingKey, message []byte) (Scalar, error) {
	c, err := suite.Challenge(groupCommitment.Bytes(), effectiveKey.Bytes(), message)
	if err != nil {
		return nil, newErr(InvalidEncoding, "challenge: %v", err)
	}
	return c, nil
}

// lagrangeCoefficient computes lambda_i(S) = Prod_{j in S, j != i} id_j / (id_j - id_i), evaluated in the scalar field.
func lagrangeCoefficient(suite Suite, id Identifier, ids []Identifier) (Scalar, error) {
	iScalar, err := suite.IdentifierScalar(id)
	if err != nil {
		return nil, err
	}

	num, err := suite.IdentifierScalar(1)
	if err != nil {
		return nil, err
	}
	den, err := suite.IdentifierScalar(1)
	if err != nil {
		return nil, err
	}

	for _, j := range ids {
		if j == id {
			continue
		}
		jScalar, err := suite.IdentifierScalar(j)
		if err != nil {
			return nil, err
		}
		num = num.Mul(jScalar)
		den = den.Mul(jScalar.Sub(iScalar))
	}

	return num.Mul(den.Invert()), nil
}
