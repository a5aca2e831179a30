package xof

// NewShake256 constructs a fresh SHAKE256 XOF: rate 136 bytes, full
// 24-round Keccak-p permutation, 32-byte recommended seed length for
// 256-bit security.
func NewShake256() XOF {
	x, _ := New(Shake256)
	return x
}
