// Package randomshake implements a cryptographically secure
// pseudo-random number generator built on the SHAKE256 and TurboSHAKE256
// sponge-based extendable-output functions. A Generator can be seeded
// deterministically for reproducible streams, or constructed from
// operating-system entropy, and serves output either one width-W
// unsigned integer at a time or as an arbitrary-length byte stream,
// periodically ratcheting its internal sponge state for forward
// secrecy.
package randomshake

import "unsafe"

func init() {
	var probe uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] != 1 {
		panic("randomshake: this build requires a little-endian host")
	}
}

// noCopy helps go vet's copylocks check catch accidental copies of a
// Generator, which would alias a live cryptographic secret across two
// call sites.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
