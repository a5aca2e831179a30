// Package xof adapts the two sponge-based extendable-output functions
// RandomShake can run on — SHAKE256 and TurboSHAKE256 — behind one shape.
// It deliberately does not reuse golang.org/x/crypto/sha3's opaque
// ShakeHash type: the generator's ratchet operation needs direct
// read/write access to the raw permutation state, which no hash.Hash- or
// ShakeHash-shaped XOF exposes. The underlying Keccak-p permutation lives
// in internal/keccak; this package owns only the sponge bookkeeping
// (absorb/pad/squeeze/ratchet) on top of it.
package xof

import "fmt"

// Kind selects one of the two supported sponge constructions.
type Kind int

const (
	// Shake256 selects SHAKE256: rate 136 bytes, full 24-round Keccak-p.
	Shake256 Kind = iota
	// TurboShake256 selects TurboSHAKE256: rate 168 bytes, 12-round Keccak-p.
	TurboShake256
)

func (k Kind) String() string {
	switch k {
	case Shake256:
		return "SHAKE256"
	case TurboShake256:
		return "TurboSHAKE256"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// XOF is the uniform interface the CSPRNG core binds to. Implementations
// are Keccak-style sponges: absorb accepts input before Finalize closes
// the absorbing phase, after which only Squeeze and Ratchet are valid.
type XOF interface {
	// Reset clears all internal state, returning to a fresh, empty
	// absorbing phase.
	Reset()

	// Absorb appends p to the pending message. Valid only before Finalize.
	Absorb(p []byte)

	// Finalize closes the absorbing phase. Required exactly once before
	// the first Squeeze.
	Finalize()

	// Squeeze writes len(dst) bytes, continuing the output stream from
	// wherever the last Squeeze or Ratchet left it.
	Squeeze(dst []byte)

	// Ratchet overwrites the first k bytes of the permutation state with
	// zero and applies the permutation once, discarding the ability to
	// recover any output already squeezed. 0 < k <= Rate().
	Ratchet(k int)

	// Rate returns the sponge's rate in bytes.
	Rate() int

	// SeedByteLen returns the recommended seed length in bytes for this
	// variant's target security level.
	SeedByteLen() int

	// Destroy zeroizes the permutation state through a barrier the
	// compiler cannot optimize away, and returns the XOF to a fresh,
	// empty absorbing phase.
	Destroy()
}

// New constructs a fresh, unfinalized XOF of the given kind.
func New(kind Kind) (XOF, error) {
	switch kind {
	case Shake256:
		return &sponge{rate: 136, rounds: 24, seedLen: 32}, nil
	case TurboShake256:
		return &sponge{rate: 168, rounds: 12, seedLen: 32}, nil
	default:
		return nil, fmt.Errorf("xof: unsupported kind %v", kind)
	}
}
