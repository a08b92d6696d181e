package frost

// Signature is a final Schnorr signature (R, z), encoded on the wire as
// R || z.
type Signature struct {
	R Point
	Z Scalar
}

// Bytes returns the canonical R || z encoding.
func (sig Signature) Bytes() []byte {
	return append(append([]byte{}, sig.R.Bytes()...), sig.Z.Bytes()...)
}

// Hex returns the lowercase hex encoding of the signature.
func (sig Signature) Hex() string { return encodeHex(sig.Bytes()) }

// DecodeSignature parses a canonical R || z byte string.
func DecodeSignature(suite Suite, b []byte) (Signature, error) {
	want := suite.PointSize() + suite.ScalarSize()
	if len(b) != want {
		return Signature{}, newErr(InvalidEncoding, "signature must be %d bytes, got %d", want, len(b))
	}
	r, err := suite.PointFromCanonicalBytes(b[:suite.PointSize()])
	if err != nil {
		return Signature{}, newErr(InvalidEncoding, "signature R: %v", err)
	}
	z, err := suite.ScalarFromCanonicalBytes(b[suite.PointSize():])
	if err != nil {
		return Signature{}, newErr(InvalidEncoding, "signature z: %v", err)
	}
	return Signature{R: r, Z: z}, nil
}

// DecodeSignatureHex parses the lowercase hex encoding of a signature.
func DecodeSignatureHex(suite Suite, hexStr string) (Signature, error) {
	b, err := decodeHex(hexStr, suite.PointSize()+suite.ScalarSize())
	if err != nil {
		return Signature{}, err
	}
	return DecodeSignature(suite, b)
}

// VerifySignature checks a Schnorr signature against the group's public
// key, the message, and, for a rerandomized suite, the Randomizer that
// produced it. It distinguishes a well-formed signature that does not
// verify (returns false, nil) from malformed input (returns an
// InvalidEncoding error); a caller that has already decoded sig and
// groupKey will never see the latter.
func VerifySignature(suite Suite, sig Signature, message []byte, groupKey VerifyingKey, randomizer *Randomizer) (bool, error) {
	if suite.SupportsRandomizer() != (randomizer != nil) {
		return false, newErr(InvalidRandomizer, "randomizer presence must match suite %s's SupportsRandomizer", suite.Name())
	}

	effKey := effectiveKey(suite, groupKey, randomizer)

	c, err := computeChallenge(suite, sig.R, effKey, message)
	if err != nil {
		return false, err
	}

	lhs := suite.Base().Mul(sig.Z)
	rhs := sig.R.Add(effKey.point.Mul(c))

	return lhs.Equal(rhs), nil
}

// GetPublicKey returns the public material a caller may share about a
// KeyPackage without revealing the SigningShare: the VerifyingShare and
// the Identifier it belongs to.
func GetPublicKey(kp *KeyPackage) (VerifyingShare, Identifier) {
	return kp.VerifyingShare, kp.Identifier
}

// GetGroupPublicKey returns the hex encoding of the group's VerifyingKey.
func GetGroupPublicKey(pub *PublicKeyPackage) string {
	return pub.groupVerifyingKey.Hex()
}
