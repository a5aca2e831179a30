// Package zero provides a best-effort zeroization primitive for clearing
// sensitive byte slices (sponge state, output buffers) on CSPRNG
// destruction. Go gives no portable, compiler-enforced guarantee that a
// store to memory about to go out of scope survives dead-store
// elimination; this package routes the clearing store through a
// noinline function and follows it with runtime.KeepAlive so the
// compiler cannot prove the writes have no observable effect and elide
// them.
package zero

import "runtime"

//go:noinline
func clear(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Bytes overwrites every byte of b with zero.
func Bytes(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(&b)
}
