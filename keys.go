package frost

import "encoding/json"

// SigningShare is a participant's private share s_i of the group signing
// scalar. It must never be serialized anywhere but inside its owner's
// KeyPackage.
type SigningShare struct{ scalar Scalar }

// Bytes returns the canonical fixed-width encoding of the share.
func (s SigningShare) Bytes() []byte { return s.scalar.Bytes() }

// Hex returns the lowercase hex encoding of the share.
func (s SigningShare) Hex() string { return encodeHex(s.Bytes()) }

func decodeSigningShare(suite Suite, hexStr string) (SigningShare, error) {
	b, err := decodeHex(hexStr, suite.ScalarSize())
	if err != nil {
		return SigningShare{}, err
	}
	sc, err := suite.ScalarFromCanonicalBytes(b)
	if err != nil {
		return SigningShare{}, newErr(InvalidEncoding, "signing share: %v", err)
	}
	return SigningShare{scalar: sc}, nil
}

// VerifyingShare is the public counterpart Y_i = s_i*B of a SigningShare.
type VerifyingShare struct{ point Point }

// Bytes returns the canonical fixed-width encoding of the share.
func (s VerifyingShare) Bytes() []byte { return s.point.Bytes() }

// Hex returns the lowercase hex encoding of the share.
func (s VerifyingShare) Hex() string { return encodeHex(s.Bytes()) }

func decodeVerifyingShare(suite Suite, hexStr string) (VerifyingShare, error) {
	b, err := decodeHex(hexStr, suite.PointSize())
	if err != nil {
		return VerifyingShare{}, err
	}
	p, err := suite.PointFromCanonicalBytes(b)
	if err != nil {
		return VerifyingShare{}, newErr(InvalidEncoding, "verifying share: %v", err)
	}
	return VerifyingShare{point: p}, nil
}

// VerifyingKey is the group's public key Y = s*B, or, under a Randomizer,
// the derived effective key Y' = Y + alpha*B.
type VerifyingKey struct{ point Point }

// Bytes returns the canonical fixed-width encoding of the key.
func (k VerifyingKey) Bytes() []byte { return k.point.Bytes() }

// Hex returns the lowercase hex encoding of the key.
func (k VerifyingKey) Hex() string { return encodeHex(k.Bytes()) }

func decodeVerifyingKey(suite Suite, hexStr string) (VerifyingKey, error) {
	b, err := decodeHex(hexStr, suite.PointSize())
	if err != nil {
		return VerifyingKey{}, err
	}
	p, err := suite.PointFromCanonicalBytes(b)
	if err != nil {
		return VerifyingKey{}, newErr(InvalidEncoding, "verifying key: %v", err)
	}
	return VerifyingKey{point: p}, nil
}

// PublicKeyPackage is the immutable public output of key generation: every
// participant's VerifyingShare plus the group VerifyingKey.
type PublicKeyPackage struct {
	suite             Suite
	verifyingShares   map[Identifier]VerifyingShare
	groupVerifyingKey VerifyingKey
}

// VerifyingShare looks up a participant's public share.
func (p *PublicKeyPackage) VerifyingShare(id Identifier) (VerifyingShare, bool) {
	vs, ok := p.verifyingShares[id]
	return vs, ok
}

// GroupVerifyingKey returns the group's public key.
func (p *PublicKeyPackage) GroupVerifyingKey() VerifyingKey { return p.groupVerifyingKey }

// Identifiers returns the participants covered by this package, in
// ascending order.
func (p *PublicKeyPackage) Identifiers() []Identifier {
	ids := make([]Identifier, 0, len(p.verifyingShares))
	for id := range p.verifyingShares {
		ids = append(ids, id)
	}
	sorted, _ := sortIdentifiers(ids)
	return sorted
}

type wirePublicKeyPackage struct {
	VerifyingShares   map[string]string `json:"verifying_shares"`
	GroupVerifyingKey string            `json:"group_verifying_key"`
}

// EncodeJSON renders the package as the structured-text wire form: a JSON
// object mapping decimal identifiers to hex-encoded verifying shares,
// alongside the hex-encoded group verifying key.
func (p *PublicKeyPackage) EncodeJSON() ([]byte, error) {
	w := wirePublicKeyPackage{
		VerifyingShares:   make(map[string]string, len(p.verifyingShares)),
		GroupVerifyingKey: p.groupVerifyingKey.Hex(),
	}
	for id, vs := range p.verifyingShares {
		w.VerifyingShares[decimalKey(id)] = vs.Hex()
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, newErr(SerializationError, "public key package: %v", err)
	}
	return b, nil
}

// DecodePublicKeyPackage parses the structured-text wire form produced by
// EncodeJSON.
func DecodePublicKeyPackage(suite Suite, data []byte) (*PublicKeyPackage, error) {
	var w wirePublicKeyPackage
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, newErr(SerializationError, "public key package: %v", err)
	}

	groupKey, err := decodeVerifyingKey(suite, w.GroupVerifyingKey)
	if err != nil {
		return nil, err
	}

	shares := make(map[Identifier]VerifyingShare, len(w.VerifyingShares))
	for idStr, hexStr := range w.VerifyingShares {
		id, err := parseDecimalIdentifier(idStr)
		if err != nil {
			return nil, err
		}
		vs, err := decodeVerifyingShare(suite, hexStr)
		if err != nil {
			return nil, err
		}
		shares[id] = vs
	}

	return &PublicKeyPackage{suite: suite, verifyingShares: shares, groupVerifyingKey: groupKey}, nil
}

// KeyPackage is a single participant's secret key material: its Identifier,
// SigningShare, VerifyingShare, the group VerifyingKey, and the ceremony's
// minimum threshold. It must never leave its owner's process.
type KeyPackage struct {
	suite          Suite
	Identifier     Identifier
	SigningShare   SigningShare
	VerifyingShare VerifyingShare
	VerifyingKey   VerifyingKey
	MinThreshold   int
}

type wireKeyPackage struct {
	Identifier     int    `json:"identifier"`
	SigningShare   string `json:"signing_share"`
	VerifyingShare string `json:"verifying_share"`
	VerifyingKey   string `json:"verifying_key"`
	MinThreshold   int    `json:"min_threshold"`
}

// EncodeJSON renders the package as the canonical structured-text wire
// form. Per the design's resolution of the "raw share vs. nested package"
// question, this nested form is the only wire representation this library
// emits for secret key material.
func (kp *KeyPackage) EncodeJSON() ([]byte, error) {
	w := wireKeyPackage{
		Identifier:     int(kp.Identifier),
		SigningShare:   kp.SigningShare.Hex(),
		VerifyingShare: kp.VerifyingShare.Hex(),
		VerifyingKey:   kp.VerifyingKey.Hex(),
		MinThreshold:   kp.MinThreshold,
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, newErr(SerializationError, "key package: %v", err)
	}
	return b, nil
}

// DecodeKeyPackage parses the structured-text wire form produced by
// EncodeJSON.
func DecodeKeyPackage(suite Suite, data []byte) (*KeyPackage, error) {
	var w wireKeyPackage
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, newErr(SerializationError, "key package: %v", err)
	}

	id, err := decodeIdentifier(w.Identifier)
	if err != nil {
		return nil, err
	}
	signingShare, err := decodeSigningShare(suite, w.SigningShare)
	if err != nil {
		return nil, err
	}
	verifyingShare, err := decodeVerifyingShare(suite, w.VerifyingShare)
	if err != nil {
		return nil, err
	}
	verifyingKey, err := decodeVerifyingKey(suite, w.VerifyingKey)
	if err != nil {
		return nil, err
	}
	if w.MinThreshold < 1 {
		return nil, newErr(InvalidThreshold, "min_threshold must be >= 1, got %d", w.MinThreshold)
	}

	return &KeyPackage{
		suite:          suite,
		Identifier:     id,
		SigningShare:   signingShare,
		VerifyingShare: verifyingShare,
		VerifyingKey:   verifyingKey,
		MinThreshold:   w.MinThreshold,
	}, nil
}
