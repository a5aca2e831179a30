package entropy

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	rand2 "math/rand/v2"
	"sync"
	"time"

	"github.com/rayozzie/randomshake/pkg/trace"
	"github.com/seehuhn/mt19937"
	"golang.org/x/crypto/chacha20"
)

// ChaCha20Source supplies entropy from a ChaCha20 keystream seeded once
// from crypto/rand. Like MathSource it is not independently
// cryptographically meaningful as a seed source; it is offered as an
// additional mixing component for MultiSource.
type ChaCha20Source struct {
	lock   sync.Mutex
	stream interface {
		XORKeyStream(dst, src []byte)
	}
}

// NewChaCha20Source creates a ChaCha20-backed source with a fresh random
// key and nonce.
func NewChaCha20Source() (*ChaCha20Source, error) {
	key := make([]byte, chacha20.KeySize)
	nonce := make([]byte, chacha20.NonceSize)

	if _, err := crand.Read(key); err != nil {
		return nil, fmt.Errorf("generate chacha20 key: %w", err)
	}
	if _, err := crand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate chacha20 nonce: %w", err)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("create chacha20 stream: %w", err)
	}

	return &ChaCha20Source{stream: stream}, nil
}

// Read fills p with ChaCha20 keystream bytes.
func (c *ChaCha20Source) Read(ctx context.Context, p []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("CHACHA20-SOURCE")
	log.Debugf("reading %d bytes from ChaCha20 stream", len(p))

	c.lock.Lock()
	defer c.lock.Unlock()

	for i := range p {
		p[i] = 0
	}
	c.stream.XORKeyStream(p, p)
	return len(p), nil
}

// EstimatedEntropyBits reports zero: the entire stream is a
// deterministic function of its 256-bit key.
func (c *ChaCha20Source) EstimatedEntropyBits(n int) int {
	return 0
}

// PCG64Source supplies entropy from math/rand/v2's PCG algorithm, seeded
// from crypto/rand and the current time.
type PCG64Source struct {
	lock sync.Mutex
	rng  *rand2.Rand
}

// NewPCG64Source creates a PCG64-backed source.
func NewPCG64Source() (*PCG64Source, error) {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("generate PCG64 seed: %w", err)
	}

	rng := rand2.New(rand2.NewPCG(
		binary.LittleEndian.Uint64(seed[:]),
		uint64(time.Now().UnixNano()),
	))

	return &PCG64Source{rng: rng}, nil
}

// Read fills b with PCG64 output.
func (p *PCG64Source) Read(ctx context.Context, b []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("PCG64-SOURCE")
	log.Debugf("reading %d bytes from PCG64 source", len(b))

	p.lock.Lock()
	defer p.lock.Unlock()

	for i := range b {
		b[i] = byte(p.rng.IntN(256))
	}
	return len(b), nil
}

// EstimatedEntropyBits reports zero for the same reason as MathSource.
func (p *PCG64Source) EstimatedEntropyBits(n int) int {
	return 0
}

// MT19937Source supplies entropy from a Mersenne Twister generator
// seeded from crypto/rand.
type MT19937Source struct {
	lock    sync.Mutex
	wrapper *mrand.Rand
}

// NewMT19937Source creates an MT19937-backed source.
func NewMT19937Source() (*MT19937Source, error) {
	mt := mt19937.New()

	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("generate MT19937 seed: %w", err)
	}
	mt.Seed(int64(binary.LittleEndian.Uint64(seed[:])))

	return &MT19937Source{wrapper: mrand.New(mt)}, nil
}

// Read fills b with MT19937 output.
func (m *MT19937Source) Read(ctx context.Context, b []byte) (int, error) {
	log := trace.FromContext(ctx).WithPrefix("MT19937-SOURCE")
	log.Debugf("reading %d bytes from MT19937 source", len(b))

	m.lock.Lock()
	defer m.lock.Unlock()

	for i := range b {
		b[i] = byte(m.wrapper.Intn(256))
	}
	return len(b), nil
}

// EstimatedEntropyBits reports zero for the same reason as MathSource.
func (m *MT19937Source) EstimatedEntropyBits(n int) int {
	return 0
}
