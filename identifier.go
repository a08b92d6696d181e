package frost

import "strconv"

// Identifier is a participant's wire identifier: a small positive integer
// that the suite embeds into the scalar field via canonical little-endian
// encoding. Zero is never a valid Identifier.
type Identifier uint8

// Validate reports whether id is in the valid wire range (1..=255, i.e. any
// uint8 other than zero).
func (id Identifier) Validate() error {
	if id == 0 {
		return newErr(InvalidIdentifier, "identifier must be in range 1..=255, got 0")
	}
	return nil
}

// scalar embeds id into the suite's scalar field.
func (id Identifier) scalar(suite Suite) (Scalar, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return suite.IdentifierScalar(id)
}

// sortIdentifiers returns a sorted copy of ids with duplicates detected.
// Identifiers are sorted ascending, matching the total order §5 of the
// design mandates for hashing and aggregation.
func sortIdentifiers(ids []Identifier) ([]Identifier, error) {
	sorted := make([]Identifier, len(ids))
	copy(sorted, ids)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] == sorted[i] {
			return nil, newErr(IdentifierSetMismatch, "duplicate identifier %d", sorted[i])
		}
	}
	return sorted, nil
}

// decimalKey renders id as a decimal string, for use as a JSON object key.
func decimalKey(id Identifier) string {
	return strconv.Itoa(int(id))
}

// parseDecimalIdentifier parses a decimal JSON object key back into an
// Identifier.
func parseDecimalIdentifier(s string) (Identifier, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, newErr(InvalidIdentifier, "identifier %q is not a decimal integer", s)
	}
	return decodeIdentifier(n)
}
