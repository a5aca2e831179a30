// Package entropy provides the seed-acquisition layer for RandomShake
// generators: a Source interface for pluggable randomness providers, a
// quality-estimation hook sources may optionally implement, and a
// MultiSource combinator that XORs several sources together so a weak
// or compromised source cannot, by itself, degrade the seed.
package entropy

import (
	"context"
	crand "crypto/rand"
	"fmt"
	mrand "math/rand"
	"sync"

	"github.com/rayozzie/randomshake/pkg/trace"
)

// Source supplies raw entropy bytes on demand.
type Source interface {
	// Read fills p with entropy and reports how many bytes were written.
	// A non-nil error means the source could not supply (all of) the
	// requested bytes.
	Read(ctx context.Context, p []byte) (n int, err error)
}

// QualityReporter is an optional interface a Source may implement to
// give Acquire a rough estimate of how much real entropy the last n
// bytes it produced actually carry. Sources that don't implement it are
// assumed to provide full entropy.
type QualityReporter interface {
	// EstimatedEntropyBits estimates the entropy, in bits, contained in
	// n bytes of this source's output.
	EstimatedEntropyBits(n int) int
}

// CryptoSource is the primary entropy source: the operating system's
// CSPRNG via crypto/rand.
type CryptoSource struct {
	lock sync.Mutex
}

// Read draws n bytes from the platform's strongest random number
// generator.
func (c *CryptoSource) Read(ctx context.Context, p []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("CRYPTO-SOURCE")
	log.Debugf("reading %d bytes from crypto/rand", len(p))

	c.lock.Lock()
	defer c.lock.Unlock()

	n, err := crand.Read(p)
	if err != nil {
		log.Error(fmt.Errorf("crypto/rand read failed: %w", err))
		return n, fmt.Errorf("crypto/rand read failed: %w", err)
	}
	return n, nil
}

// EstimatedEntropyBits reports full entropy: crypto/rand is assumed to
// deliver 8 bits of entropy per byte.
func (c *CryptoSource) EstimatedEntropyBits(n int) int {
	return n * 8
}

// MathSource is a secondary, non-cryptographic source backed by
// math/rand, itself seeded from crypto/rand. It exists purely to mix
// into MultiSource for defense in depth; alone it carries zero
// estimated entropy, since its entire output is a deterministic
// function of its (small) seed.
type MathSource struct {
	src  *mrand.Rand
	lock sync.Mutex
}

// NewMathSource creates a math/rand-based source seeded from
// crypto/rand.
func NewMathSource() *MathSource {
	var seed int64
	b := make([]byte, 8)
	if _, err := crand.Read(b); err == nil {
		for i := 0; i < 8; i++ {
			seed = (seed << 8) | int64(b[i])
		}
	}
	return &MathSource{src: mrand.New(mrand.NewSource(seed))}
}

// Read fills p from the underlying math/rand stream.
func (m *MathSource) Read(ctx context.Context, p []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("MATH-SOURCE")
	log.Debugf("reading %d bytes from math/rand", len(p))

	m.lock.Lock()
	defer m.lock.Unlock()

	for i := range p {
		p[i] = byte(m.src.Intn(256))
	}
	return len(p), nil
}

// EstimatedEntropyBits always reports zero: this source contributes
// unpredictability only in combination with others, never alone.
func (m *MathSource) EstimatedEntropyBits(n int) int {
	return 0
}

// MultiSource XORs the output of several sources together. The combined
// estimated entropy is the maximum of the individual estimates, since
// XOR with an independent stream can only add uncertainty, never remove
// it: the combination is at least as strong as its strongest member.
type MultiSource struct {
	Sources []Source
	lock    sync.Mutex
}

// Read draws a full buffer from each configured source and XORs the
// results together.
func (m *MultiSource) Read(ctx context.Context, p []byte) (int, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	acc := make([]byte, len(p))
	for _, s := range m.Sources {
		tmp := make([]byte, len(p))
		offset := 0
		for offset < len(p) {
			n, err := s.Read(ctx, tmp[offset:])
			if err != nil {
				return 0, fmt.Errorf("entropy source failed: %w", err)
			}
			if n == 0 {
				continue
			}
			offset += n
		}
		for i := range acc {
			acc[i] ^= tmp[i]
		}
	}
	copy(p, acc)
	return len(p), nil
}

// EstimatedEntropyBits reports the best estimate among the combined
// sources.
func (m *MultiSource) EstimatedEntropyBits(n int) int {
	best := 0
	for _, s := range m.Sources {
		if qr, ok := s.(QualityReporter); ok {
			if bits := qr.EstimatedEntropyBits(n); bits > best {
				best = bits
			}
		} else {
			if n*8 > best {
				best = n * 8
			}
		}
	}
	return best
}

// NewDefaultSource returns the standard seed source: crypto/rand mixed
// with a crypto/rand-seeded math/rand stream.
func NewDefaultSource() Source {
	return &MultiSource{
		Sources: []Source{
			&CryptoSource{},
			NewMathSource(),
		},
	}
}

// Acquire draws n bytes of seed material from src. It returns
// *Error{Kind: Unavailable} if src fails outright, and logs (but does
// not fail on) a low-quality warning if src's estimated entropy falls
// short of full strength.
func Acquire(ctx context.Context, src Source, n int) ([]byte, error) {
	log := trace.FromContext(ctx).WithPrefix("ENTROPY")

	buf := make([]byte, n)
	read, err := src.Read(ctx, buf)
	if err != nil || read < n {
		return nil, &Error{Kind: Unavailable, Err: err}
	}

	wanted := n * 8
	if qr, ok := src.(QualityReporter); ok {
		if got := qr.EstimatedEntropyBits(n); got < wanted {
			log.Warnf("seed source estimated at %d/%d entropy bits", got, wanted)
		}
	}

	return buf, nil
}
