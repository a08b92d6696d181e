// Package frost implements the FROST (Flexible Round-Optimized Schnorr
// Threshold) signing protocol: a group of participants each holds a share
// of a signing key such that any threshold of them, but no fewer, can
// jointly produce a standard Schnorr signature without any single party
// ever reconstructing the full key.
//
// The package is ciphersuite-generic (see Suite); suites/ed25519 and
// suites/pallas provide the two concrete ciphersuites this service ships,
// the second of which additionally supports per-signature rerandomization
// of the verifying key via Randomizer and RandomizedParameters.
//
// Every exported operation is a pure function of its inputs and, where
// randomness is required, a cryptographically secure source; the package
// keeps no process-wide state and is safe to call concurrently across
// independent ceremonies.
package frost
