// Package keccak implements the Keccak-p[1600, n] permutation that
// underlies both sponge constructions in pkg/xof. It exists because the
// CSPRNG's ratchet operation needs direct read/write access to the raw
// permutation state, which no opaque XOF type (including the standard
// library's extended hash types) exposes.
package keccak

import "math/bits"

// rc holds the 24 round constants for the full Keccak-f[1600] = Keccak-p[1600,24]
// permutation. A round-reduced variant (e.g. Keccak-p[1600,12], used for
// TurboSHAKE256) consumes only the last n of these.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho holds the per-lane rotation offsets, indexed [y][x].
var rho = [5][5]uint{
	{0, 1, 62, 28, 27},
	{36, 44, 6, 55, 20},
	{3, 10, 43, 25, 39},
	{41, 45, 15, 21, 8},
	{18, 2, 61, 56, 14},
}

func idx(x, y int) int { return x + 5*y }

// Permute applies the Keccak-p[1600, rounds] permutation in place to
// state, a 200-byte sponge state interpreted as 25 little-endian 64-bit
// lanes. rounds selects the round-reduced variant: 24 for the full
// permutation used by SHAKE256, 12 for the Keccak-p[1600,12] used by
// TurboSHAKE256.
func Permute(state *[200]byte, rounds int) {
	var a [25]uint64
	for i := range a {
		a[i] = le64(state[8*i : 8*i+8])
	}

	start := len(rc) - rounds
	for round := start; round < len(rc); round++ {
		// theta
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[idx(x, 0)] ^ a[idx(x, 1)] ^ a[idx(x, 2)] ^ a[idx(x, 3)] ^ a[idx(x, 4)]
		}
		var d [5]uint64
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[idx(x, y)] ^= d[x]
			}
		}

		// rho + pi combined: lane (x,y) rotates by rho[y][x] and moves to
		// new position (y, (2x+3y) mod 5).
		var b [25]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[idx(y, (2*x+3*y)%5)] = bits.RotateLeft64(a[idx(x, y)], int(rho[y][x]))
			}
		}

		// chi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[idx(x, y)] = b[idx(x, y)] ^ (^b[idx((x+1)%5, y)] & b[idx((x+2)%5, y)])
			}
		}

		// iota
		a[0] ^= rc[round]
	}

	for i := range a {
		putLE64(state[8*i:8*i+8], a[i])
	}
}

func le64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLE64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
