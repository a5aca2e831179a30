package randomshake

import "github.com/rayozzie/randomshake/pkg/xof"

// newNoRatchetReference builds a raw XOF, finalized on seed exactly like
// a Generator's initialization, but with no ratchet ever applied. It
// exists only to give TestRatchetActivation something to diff against.
func newNoRatchetReference(kind XOFKind, seed []byte) (xof.XOF, error) {
	x, err := xof.New(kind)
	if err != nil {
		return nil, err
	}
	x.Reset()
	x.Absorb(seed)
	x.Finalize()
	return x, nil
}
