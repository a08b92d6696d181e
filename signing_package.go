package frost

import (
	"crypto/rand"
	"io"
	"slices"
)

// SigningPackage binds a sorted set of participant commitments to a
// message for one ceremony. Every Identifier in the package corresponds to
// a distinct participant who committed for this ceremony.
type SigningPackage struct {
	Message     []byte
	Commitments []Commitment // sorted ascending by Identifier
}

// newSigningPackage sorts and validates the commitment list, rejecting
// duplicate identifiers before any hashing happens.
func newSigningPackage(message []byte, commitments []Commitment) (*SigningPackage, error) {
	sorted := slices.Clone(commitments)
	slices.SortFunc(sorted, func(a, b Commitment) int { return int(a.Identifier) - int(b.Identifier) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Identifier == sorted[i].Identifier {
			return nil, newErr(IdentifierSetMismatch, "duplicate identifier %d in commitment list", sorted[i].Identifier)
		}
	}
	if len(sorted) == 0 {
		return nil, newErr(IdentifierSetMismatch, "commitment list must not be empty")
	}

	return &SigningPackage{Message: message, Commitments: sorted}, nil
}

// identifiers returns the sorted identifiers covered by the package.
func (sp *SigningPackage) identifiers() []Identifier {
	ids := make([]Identifier, len(sp.Commitments))
	for i, c := range sp.Commitments {
		ids[i] = c.Identifier
	}
	return ids
}

// commitment returns the commitment for id, if present.
func (sp *SigningPackage) commitment(id Identifier) (Commitment, bool) {
	for _, c := range sp.Commitments {
		if c.Identifier == id {
			return c, true
		}
	}
	return Commitment{}, false
}

// encodedList renders the commitment list in the canonical, already-sorted
// order every suite hashes over: identifier || hiding || binding for each
// participant, concatenated.
func (sp *SigningPackage) encodedList() []byte {
	var buf []byte
	for _, c := range sp.Commitments {
		buf = append(buf, byte(c.Identifier))
		buf = append(buf, c.Bytes()...)
	}
	return buf
}

// Randomizer is the scalar alpha that parameterizes a single
// rerandomization. It only exists for suites where SupportsRandomizer is
// true.
type Randomizer struct{ scalar Scalar }

// Bytes returns the canonical encoding of alpha.
func (r Randomizer) Bytes() []byte { return r.scalar.Bytes() }

// Hex returns the lowercase hex encoding of alpha.
func (r Randomizer) Hex() string { return encodeHex(r.Bytes()) }

// DecodeRandomizer parses a hex-encoded randomizer.
func DecodeRandomizer(suite Suite, hexStr string) (Randomizer, error) {
	if !suite.SupportsRandomizer() {
		return Randomizer{}, newErr(InvalidRandomizer, "suite %s does not support randomizers", suite.Name())
	}
	b, err := decodeHex(hexStr, suite.ScalarSize())
	if err != nil {
		return Randomizer{}, err
	}
	sc, err := suite.ScalarFromCanonicalBytes(b)
	if err != nil {
		return Randomizer{}, newErr(InvalidRandomizer, "%v", err)
	}
	return Randomizer{scalar: sc}, nil
}

// GenerateRandomizer samples a fresh, uniformly random Randomizer. Only
// valid for suites with SupportsRandomizer true.
func GenerateRandomizer(suite Suite) (Randomizer, error) {
	return generateRandomizer(suite, rand.Reader)
}

func generateRandomizer(suite Suite, rnd io.Reader) (Randomizer, error) {
	if !suite.SupportsRandomizer() {
		return Randomizer{}, newErr(InvalidRandomizer, "suite %s does not support randomizers", suite.Name())
	}
	sc, err := suite.RandomScalar(rnd)
	if err != nil {
		return Randomizer{}, newErr(RNGFailure, "sampling randomizer: %v", err)
	}
	return Randomizer{scalar: sc}, nil
}

// RandomizedParameters carries a Randomizer alongside the original group
// key Y and the derived randomized group key Y' = Y + alpha*B. Only
// produced for suites with SupportsRandomizer true.
type RandomizedParameters struct {
	Randomizer        Randomizer
	GroupVerifyingKey VerifyingKey // Y
	RandomizedKey     VerifyingKey // Y'
}

// effectiveKey returns the verifying key a ceremony should hash and verify
// against: Y for the plain suite, Y' for the rerandomized suite.
func effectiveKey(suite Suite, groupKey VerifyingKey, randomizer *Randomizer) VerifyingKey {
	if randomizer == nil {
		return groupKey
	}
	return VerifyingKey{point: groupKey.point.Add(suite.Base().Mul(randomizer.scalar))}
}

// CreateSigningPackage assembles the SigningPackage for a ceremony over the
// given commitments and message. For suites that support randomization, it
// also derives a RandomizedParameters value bound to the message,
// commitments, and group key, per the package-derived design recommended
// in the protocol's design notes; randomizerOverride may supply an
// out-of-band alpha instead when the caller needs to bind the ceremony to
// external context.
func CreateSigningPackage(pub *PublicKeyPackage, message []byte, commitments []Commitment, randomizerOverride *Randomizer) (*SigningPackage, *RandomizedParameters, error) {
	sp, err := newSigningPackage(message, commitments)
	if err != nil {
		return nil, nil, err
	}

	for _, id := range sp.identifiers() {
		if _, ok := pub.VerifyingShare(id); !ok {
			return nil, nil, newErr(IdentifierNotInPackage, "identifier %d not present in public key package", id)
		}
	}

	if !pub.suite.SupportsRandomizer() {
		return sp, nil, nil
	}

	var randomizer Randomizer
	if randomizerOverride != nil {
		randomizer = *randomizerOverride
	} else {
		transcriptInput := append(append(append([]byte{}, message...), sp.encodedList()...), pub.groupVerifyingKey.Bytes()...)
		sc, err := pub.suite.RandomizerScalar(transcriptInput)
		if err != nil {
			return nil, nil, newErr(InvalidRandomizer, "deriving randomizer: %v", err)
		}
		randomizer = Randomizer{scalar: sc}
	}

	rp := &RandomizedParameters{
		Randomizer:        randomizer,
		GroupVerifyingKey: pub.groupVerifyingKey,
		RandomizedKey:     effectiveKey(pub.suite, pub.groupVerifyingKey, &randomizer),
	}

	return sp, rp, nil
}
