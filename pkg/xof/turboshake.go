package xof

// NewTurboShake256 constructs a fresh TurboSHAKE256 XOF: rate 168 bytes,
// round-reduced 12-round Keccak-p permutation, 32-byte recommended seed
// length for 256-bit security. The reduced round count trades permutation
// strength for roughly 2x the throughput of SHAKE256 at the same rate
// class; RandomShake relies on this only for speed, not for any weaker
// security claim on the stream it produces.
func NewTurboShake256() XOF {
	x, _ := New(TurboShake256)
	return x
}
