package xof

import (
	"github.com/rayozzie/randomshake/internal/keccak"
	"github.com/rayozzie/randomshake/internal/zero"
)

// padByte is the sponge's single-bit-domain padding byte applied to the
// absorbing phase's final block before finalization, following the
// 10*1 multi-rate padding shape common to Keccak-family constructions.
// The two supported variants are distinguished by rate and round count
// alone; both reuse this padding.
const padByte = 0x1f

// sponge implements xof.XOF over a raw 200-byte Keccak state, shared by
// both SHAKE256 (rate 136, rounds 24) and TurboSHAKE256 (rate 168,
// rounds 12).
type sponge struct {
	state     [200]byte
	pos       int
	rate      int
	rounds    int
	seedLen   int
	finalized bool
}

func (s *sponge) Reset() {
	s.state = [200]byte{}
	s.pos = 0
	s.finalized = false
}

func (s *sponge) Absorb(p []byte) {
	for len(p) > 0 {
		n := s.rate - s.pos
		if n > len(p) {
			n = len(p)
		}
		for i := 0; i < n; i++ {
			s.state[s.pos+i] ^= p[i]
		}
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			keccak.Permute(&s.state, s.rounds)
			s.pos = 0
		}
	}
}

func (s *sponge) Finalize() {
	s.state[s.pos] ^= padByte
	s.state[s.rate-1] ^= 0x80
	keccak.Permute(&s.state, s.rounds)
	s.pos = 0
	s.finalized = true
}

func (s *sponge) Squeeze(dst []byte) {
	for len(dst) > 0 {
		if s.pos == s.rate {
			keccak.Permute(&s.state, s.rounds)
			s.pos = 0
		}
		n := s.rate - s.pos
		if n > len(dst) {
			n = len(dst)
		}
		copy(dst[:n], s.state[s.pos:s.pos+n])
		s.pos += n
		dst = dst[n:]
	}
}

func (s *sponge) Ratchet(k int) {
	for i := 0; i < k; i++ {
		s.state[i] = 0
	}
	keccak.Permute(&s.state, s.rounds)
	s.pos = 0
}

func (s *sponge) Rate() int        { return s.rate }
func (s *sponge) SeedByteLen() int { return s.seedLen }

func (s *sponge) Destroy() {
	zero.Bytes(s.state[:])
	s.pos = 0
	s.finalized = false
}
