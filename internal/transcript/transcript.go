// Package transcript implements a transcript-based key-derivation framework used to
// derive every domain-separated scalar and digest the signing protocol needs: binding
// factors, challenges, nonce seeds, and commitment-list digests all flow through the
// same Mix/Fork/Derive discipline so that two implementations absorbing the same
// inputs in the same order always agree on the output, byte for byte.
//
// Operations append frames to an internal transcript. Finalizing operations (Derive)
// evaluate SHAKE256 over the transcript, derive output, and reset the transcript with
// a chain value, so the Protocol can keep being used for further derivations without
// leaking the absorbed state between them.
package transcript

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// chainValueSize is the chain value size in bytes.
const chainValueSize = 64

// Operation codes, written as the first byte of every frame.
const (
	opInit   byte = 0x10
	opMix    byte = 0x11
	opFork   byte = 0x13
	opDerive byte = 0x14
	opChain  byte = 0x18
)

// Finalization role markers, distinguishing the chain-value squeeze from the
// output squeeze taken off independent clones of the same absorbed prefix.
const (
	roleChain  byte = 0x00
	roleOutput byte = 0x01
)

// Protocol is a transcript-based key-derivation instance.
//
// A zero Protocol is not valid; use New. Protocol is not safe for concurrent use
// by multiple goroutines without external synchronization.
type Protocol struct {
	h         sha3.ShakeHash
	initLabel string
}

// New creates a new protocol instance with the given label for domain separation.
// The label establishes the protocol identity: two protocols using different
// labels produce cryptographically independent transcripts even when fed
// identical Mix inputs afterward.
func New(label string) *Protocol {
	p := &Protocol{
		h:         sha3.NewShake256(),
		initLabel: label,
	}
	p.writeOpLabel(opInit, label)
	return p
}

// String returns a debug-friendly description of the protocol instance.
func (p *Protocol) String() string {
	return fmt.Sprintf("Protocol(%s)", p.initLabel)
}

// Mix absorbs data into the protocol transcript. Use for key material, nonces,
// identifiers, encoded points and scalars, and any other protocol input that
// fits in memory.
func (p *Protocol) Mix(label string, data []byte) {
	p.writeOpLabel(opMix, label)
	p.writeLengthEncode(data)
}

// Fork calls ForkN with the given label and values and returns the two branches.
func (p *Protocol) Fork(label string, left, right []byte) (*Protocol, *Protocol) {
	branches := p.ForkN(label, left, right)
	return branches[0], branches[1]
}

// ForkN clones the protocol state into N independent branches and modifies the
// base. The base receives ordinal 0 with an empty value. Each clone receives
// ordinals 1 through N with the corresponding value. Callers must ensure clone
// values are distinct from each other (e.g. participant identifiers).
func (p *Protocol) ForkN(label string, values ...[]byte) []*Protocol {
	n := len(values)

	p.writeOpLabel(opFork, label)
	p.writeLeftEncode(uint64(n))

	clones := make([]*Protocol, n)
	for i := range n {
		clone := p.Clone()
		clone.writeLeftEncode(uint64(i + 1))
		clone.writeLengthEncode(values[i])
		clones[i] = clone
	}

	p.writeLeftEncode(0)
	p.writeLengthEncode(nil)

	return clones
}

// Derive produces pseudorandom output that is a deterministic function of the
// full transcript. outputLen must be greater than zero.
func (p *Protocol) Derive(label string, dst []byte, outputLen int) []byte {
	if outputLen <= 0 {
		panic("transcript: Derive output_len must be greater than zero")
	}

	out := make([]byte, outputLen)

	p.writeOpLabel(opDerive, label)
	p.writeLeftEncode(uint64(outputLen))

	cv := p.finalize(out)
	p.resetChain(opDerive, cv[:])

	return append(dst, out...)
}

// Clone returns an independent copy of the protocol state. The original and
// the clone evolve independently from this point on.
func (p *Protocol) Clone() *Protocol {
	return &Protocol{h: p.h.Clone(), initLabel: p.initLabel}
}

// finalize squeezes a chain value from a clone of the current transcript, and,
// when dst is non-nil, squeezes len(dst) bytes of output from a second,
// independent clone. Both clones absorb the same prefix, a role marker
// distinguishes their outputs. sha3.ShakeHash locks into squeeze mode on the
// first Read, so the base transcript p.h is never read directly here; only
// clones are.
func (p *Protocol) finalize(dst []byte) [chainValueSize]byte {
	var cv [chainValueSize]byte

	chainH := p.h.Clone()
	chainH.Write([]byte{roleChain})
	_, _ = chainH.Read(cv[:])

	if dst != nil {
		outH := p.h.Clone()
		outH.Write([]byte{roleOutput})
		_, _ = outH.Read(dst)
	}

	return cv
}

// resetChain replaces the transcript with a fresh hash seeded by a CHAIN frame,
// so a Protocol can be reused for further derivations without exposing the
// discarded absorbed state.
func (p *Protocol) resetChain(originOp byte, chainValue []byte) {
	p.h = sha3.NewShake256()
	p.h.Write([]byte{opChain, originOp})
	p.writeLengthEncode(chainValue)
}

// writeOpLabel writes op || length_encode(label) to h.
// All protocol operations start with this preamble.
func (p *Protocol) writeOpLabel(op byte, label string) {
	p.h.Write([]byte{op})
	p.writeLengthEncode([]byte(label))
}

// writeLeftEncode writes left_encode(x) as defined in NIST SP 800-185.
func (p *Protocol) writeLeftEncode(x uint64) {
	var buf [9]byte

	if x == 0 {
		buf[0] = 1
		p.h.Write(buf[:2])
		return
	}

	i := 8
	v := x
	for v > 0 {
		buf[i] = byte(v)
		v >>= 8
		i--
	}
	buf[i] = byte(8 - i)
	p.h.Write(buf[i:9])
}

// writeLengthEncode writes length_encode(x) = left_encode(len(x)) || x.
func (p *Protocol) writeLengthEncode(data []byte) {
	p.writeLeftEncode(uint64(len(data)))
	if len(data) > 0 {
		p.h.Write(data)
	}
}
