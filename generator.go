package randomshake

import (
	"context"
	"fmt"

	"github.com/rayozzie/randomshake/internal/zero"
	"github.com/rayozzie/randomshake/pkg/entropy"
	"github.com/rayozzie/randomshake/pkg/trace"
	"github.com/rayozzie/randomshake/pkg/xof"
)

// XOFKind selects the sponge construction a Generator runs on.
type XOFKind = xof.Kind

const (
	// SHAKE256 selects the full 24-round Keccak-p sponge, rate 136 bytes.
	SHAKE256 = xof.Shake256
	// TurboSHAKE256 selects the 12-round Keccak-p sponge, rate 168 bytes.
	TurboSHAKE256 = xof.TurboShake256
)

// securityBits is the target security level, in bits, for both
// supported XOF variants.
const securityBits = 256

// Generator is a cryptographically secure pseudo-random number
// generator parameterized by the sponge variant it runs on and the
// integer width W its Next method returns. A Generator is not safe for
// concurrent use, is neither copyable nor movable, and must be released
// with Close once it is no longer needed.
type Generator[W Width] struct {
	noCopy noCopy

	x            xof.XOF
	buffer       []byte
	cursor       int
	rate         int
	ratchetBytes int
	tracer       *trace.Tracer
	destroyed    bool
}

// NewFromSeed deterministically constructs a Generator from an exact
// seed_byte_len-byte seed. Two generators built from the same seed and
// XOF kind produce byte-identical streams.
func NewFromSeed[W Width](kind XOFKind, seed []byte) (*Generator[W], error) {
	x, err := xof.New(kind)
	if err != nil {
		return nil, fmt.Errorf("randomshake: %w", err)
	}
	if len(seed) != x.SeedByteLen() {
		return nil, fmt.Errorf("randomshake: invalid seed length %d, want %d", len(seed), x.SeedByteLen())
	}
	return newGenerator[W](x, seed, trace.NewTracer("RANDOMSHAKE", trace.LogLevelNormal))
}

// NewFromEntropy constructs a Generator seeded from the default entropy
// registry (crypto/rand mixed with a crypto/rand-seeded math/rand
// stream, plus the quantum source when ctx enables it through
// entropy.WithQuantumEnabled). It fails with an *entropy.Error wrapping Unavailable if no
// seed material can be obtained.
func NewFromEntropy[W Width](ctx context.Context, kind XOFKind) (*Generator[W], error) {
	return NewFromEntropySource[W](ctx, kind, entropy.NewDefaultSourceWithContext(ctx))
}

// NewFromEntropySource is like NewFromEntropy but draws the seed from a
// caller-supplied entropy.Source, letting callers opt into alternate
// registries (for example one that mixes in the quantum source).
func NewFromEntropySource[W Width](ctx context.Context, kind XOFKind, src entropy.Source) (*Generator[W], error) {
	x, err := xof.New(kind)
	if err != nil {
		return nil, fmt.Errorf("randomshake: %w", err)
	}

	seed, err := entropy.Acquire(ctx, src, x.SeedByteLen())
	if err != nil {
		return nil, fmt.Errorf("randomshake: acquire seed: %w", err)
	}
	defer zero.Bytes(seed)

	return newGenerator[W](x, seed, trace.FromContext(ctx).WithPrefix("RANDOMSHAKE"))
}

// newGenerator runs the common seeded-initialization path: reset,
// absorb the seed, finalize, squeeze the first R bytes directly into
// the buffer with no ratchet.
func newGenerator[W Width](x xof.XOF, seed []byte, tracer *trace.Tracer) (*Generator[W], error) {
	rate := x.Rate()
	width := widthBytes[W]()
	if rate%width != 0 {
		return nil, fmt.Errorf("randomshake: rate %d is not a multiple of result width %d", rate, width)
	}

	ratchetBytes := securityBits / 8
	if ratchetBytes > rate {
		ratchetBytes = rate
	}

	g := &Generator[W]{
		x:            x,
		buffer:       make([]byte, rate),
		rate:         rate,
		ratchetBytes: ratchetBytes,
		tracer:       tracer,
	}

	g.x.Reset()
	g.x.Absorb(seed)
	g.x.Finalize()
	g.x.Squeeze(g.buffer)
	g.cursor = 0

	g.tracer.Debugf("constructed generator: rate=%d ratchet_bytes=%d width=%d", rate, ratchetBytes, width)

	return g, nil
}

// refill ratchets the sponge state and squeezes a fresh buffer's worth
// of output. It is the only point in steady-state one-at-a-time output
// at which ratcheting occurs; it runs after the first R bytes have been
// consumed and every R bytes thereafter.
func (g *Generator[W]) refill() {
	g.x.Ratchet(g.ratchetBytes)
	g.x.Squeeze(g.buffer)
	g.cursor = 0
	g.tracer.Debugf("refilled buffer: %d bytes", g.rate)
}

// Next returns one uniformly random value of width W, refilling the
// internal buffer (with an interleaved ratchet) whenever it is
// exhausted.
func (g *Generator[W]) Next() W {
	if g.cursor == g.rate {
		g.refill()
	}
	width := widthBytes[W]()
	v := readWidth[W](g.buffer[g.cursor : g.cursor+width])
	g.cursor += width
	return v
}

// Read fills p with the next len(p) bytes of the underlying stream.
// It is byte-equivalent to len(p) one-byte calls to Next regardless of
// how the total output is split across calls to Read: buffered bytes
// are consumed first, full-rate chunks are ratcheted and squeezed
// directly into p, and any final partial chunk goes through the normal
// buffer-refill path. Read never errors; it always fills p completely.
func (g *Generator[W]) Read(p []byte) (int, error) {
	total := len(p)

	if g.cursor < g.rate {
		avail := g.rate - g.cursor
		k := avail
		if k > len(p) {
			k = len(p)
		}
		copy(p[:k], g.buffer[g.cursor:g.cursor+k])
		g.cursor += k
		p = p[k:]
	}

	for len(p) >= g.rate {
		g.x.Ratchet(g.ratchetBytes)
		g.x.Squeeze(p[:g.rate])
		g.cursor = g.rate
		p = p[g.rate:]
	}

	if len(p) > 0 {
		g.refill()
		copy(p, g.buffer[:len(p)])
		g.cursor = len(p)
	}

	return total, nil
}

// Close zeroizes the generator's sponge state and buffer and records
// that the generator has been closed. Only Close consults that record:
// Next and Read do not check it. Calling Close more than once is safe;
// the second and later calls are no-ops.
func (g *Generator[W]) Close() error {
	if g.destroyed {
		return nil
	}
	g.x.Destroy()
	zero.Bytes(g.buffer)
	g.cursor = 0
	g.destroyed = true
	g.tracer.Debugf("destroyed generator")
	return nil
}
