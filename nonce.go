package frost

import (
	"crypto/rand"
	"io"
	"sync/atomic"
)

// Nonce holds the ephemeral secret pair (d, e) for a single signing round.
// A Nonce is a single-shot handle: exactly one call to GenerateRound2Signature
// may consume it. A second attempt returns NonceAlreadyUsed. The zero value
// is not valid; Nonce is only produced by GenerateRound1Commitment.
type Nonce struct {
	hiding   Scalar
	binding  Scalar
	consumed atomic.Bool
}

// consume returns the nonce pair exactly once. Every subsequent call, and
// every call after an error from the caller's own round-2 logic, returns
// NonceAlreadyUsed. consume does not zeroize the pair itself;
// GenerateRound2Signature calls Zeroize after every consume attempt.
func (n *Nonce) consume() (hiding, binding Scalar, err error) {
	if !n.consumed.CompareAndSwap(false, true) {
		return nil, nil, newErr(NonceAlreadyUsed, "nonce pair already consumed")
	}
	hiding, binding = n.hiding, n.binding
	return hiding, binding, nil
}

// Zeroize overwrites the nonce pair's internal representation. Safe to call
// multiple times, including after consume.
func (n *Nonce) Zeroize() {
	if n.hiding != nil {
		n.hiding.Zeroize()
	}
	if n.binding != nil {
		n.binding.Zeroize()
	}
}

// Commitment is the public counterpart (D, E) = (d*B, e*B) of a Nonce,
// broadcast to the coordinator before signing.
type Commitment struct {
	Identifier Identifier
	Hiding     Point
	Binding    Point
}

// Bytes returns the canonical encoding Hiding || Binding.
func (c Commitment) Bytes() []byte {
	return append(append([]byte{}, c.Hiding.Bytes()...), c.Binding.Bytes()...)
}

type wireCommitment struct {
	Identifier int    `json:"identifier"`
	Hiding     string `json:"hiding"`
	Binding    string `json:"binding"`
}

// EncodeJSON renders the commitment as its structured-text wire form.
func (c Commitment) EncodeJSON() ([]byte, error) {
	return marshalJSON(wireCommitment{
		Identifier: int(c.Identifier),
		Hiding:     encodeHex(c.Hiding.Bytes()),
		Binding:    encodeHex(c.Binding.Bytes()),
	})
}

// DecodeCommitment parses the structured-text wire form produced by
// EncodeJSON.
func DecodeCommitment(suite Suite, data []byte) (Commitment, error) {
	var w wireCommitment
	if err := unmarshalJSON(data, &w); err != nil {
		return Commitment{}, err
	}
	id, err := decodeIdentifier(w.Identifier)
	if err != nil {
		return Commitment{}, err
	}
	hidingB, err := decodeHex(w.Hiding, suite.PointSize())
	if err != nil {
		return Commitment{}, err
	}
	bindingB, err := decodeHex(w.Binding, suite.PointSize())
	if err != nil {
		return Commitment{}, err
	}
	hiding, err := suite.PointFromCanonicalBytes(hidingB)
	if err != nil {
		return Commitment{}, newErr(InvalidEncoding, "commitment hiding point: %v", err)
	}
	binding, err := suite.PointFromCanonicalBytes(bindingB)
	if err != nil {
		return Commitment{}, newErr(InvalidEncoding, "commitment binding point: %v", err)
	}
	return Commitment{Identifier: id, Hiding: hiding, Binding: binding}, nil
}

// GenerateRound1Commitment samples a fresh nonce pair for kp and returns
// both the secret Nonce (consumed by exactly one later round-2 call) and
// the public Commitment broadcast to the coordinator.
func GenerateRound1Commitment(kp *KeyPackage) (*Nonce, Commitment, error) {
	return generateRound1Commitment(kp, rand.Reader)
}

func generateRound1Commitment(kp *KeyPackage, rnd io.Reader) (*Nonce, Commitment, error) {
	random := make([]byte, 32)
	if _, err := io.ReadFull(rnd, random); err != nil {
		return nil, Commitment{}, newErr(RNGFailure, "reading nonce randomness: %v", err)
	}

	secretBytes := kp.SigningShare.Bytes()

	hiding, err := kp.suite.NonceGenerate(secretBytes, random)
	if err != nil {
		return nil, Commitment{}, newErr(RNGFailure, "deriving hiding nonce: %v", err)
	}

	// Re-derive with a distinct randomness slice so the hiding and binding
	// nonces are independent even though both descend from the same share.
	random2 := make([]byte, 32)
	if _, err := io.ReadFull(rnd, random2); err != nil {
		return nil, Commitment{}, newErr(RNGFailure, "reading nonce randomness: %v", err)
	}
	binding, err := kp.suite.NonceGenerate(secretBytes, random2)
	if err != nil {
		return nil, Commitment{}, newErr(RNGFailure, "deriving binding nonce: %v", err)
	}

	nonce := &Nonce{hiding: hiding, binding: binding}
	commitment := Commitment{
		Identifier: kp.Identifier,
		Hiding:     kp.suite.Base().Mul(hiding),
		Binding:    kp.suite.Base().Mul(binding),
	}

	return nonce, commitment, nil
}
