package randomshake

import (
	"bytes"
	"context"
	"testing"
)

func repeatSeed(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func drain[W Width](t *testing.T, g *Generator[W], n int) []byte {
	t.Helper()
	out := make([]byte, n)
	if _, err := g.Read(out); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	return out
}

// S1: seed determinism.
func TestSeedDeterminism(t *testing.T) {
	seed := repeatSeed(0xDE, 32)

	a, err := NewFromSeed[uint8](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer a.Close()
	b, err := NewFromSeed[uint8](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer b.Close()

	const n = 1 << 16
	outA := drain(t, a, n)
	outB := drain(t, b, n)
	if !bytes.Equal(outA, outB) {
		t.Fatal("two generators from the same seed produced different streams")
	}
}

// S2: seed sensitivity.
func TestSeedSensitivity(t *testing.T) {
	seedA := repeatSeed(0xDE, 32)
	seedB := repeatSeed(0xDE, 32)
	seedB[0] = 0xD6 // bit 3 of byte 0 flipped

	a, err := NewFromSeed[uint8](SHAKE256, seedA)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer a.Close()
	b, err := NewFromSeed[uint8](SHAKE256, seedB)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer b.Close()

	const n = 1 << 16
	outA := drain(t, a, n)
	outB := drain(t, b, n)
	if bytes.Equal(outA, outB) {
		t.Fatal("flipping a seed bit did not change the output stream")
	}
}

// S3: XOF sensitivity.
func TestXOFSensitivity(t *testing.T) {
	seed := repeatSeed(0xDE, 32)

	a, err := NewFromSeed[uint8](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer a.Close()
	b, err := NewFromSeed[uint8](TurboSHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer b.Close()

	const n = 1 << 16
	outA := drain(t, a, n)
	outB := drain(t, b, n)
	if bytes.Equal(outA, outB) {
		t.Fatal("SHAKE256 and TurboSHAKE256 produced identical streams from the same seed")
	}
}

// S4: cross-width equivalence.
func TestCrossWidthEquivalence(t *testing.T) {
	seed := repeatSeed(0xDE, 32)
	const n = 1 << 16 // must be divisible by 8

	byteGen, err := NewFromSeed[uint8](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer byteGen.Close()
	want := drain(t, byteGen, n)

	g16, err := NewFromSeed[uint16](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer g16.Close()
	got16 := make([]byte, 0, n)
	for len(got16) < n {
		v := g16.Next()
		got16 = append(got16, byte(v), byte(v>>8))
	}
	if !bytes.Equal(want, got16) {
		t.Fatal("W=2 reinterpretation did not match the 1-byte stream")
	}

	g32, err := NewFromSeed[uint32](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer g32.Close()
	got32 := make([]byte, 0, n)
	for len(got32) < n {
		v := g32.Next()
		got32 = append(got32, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	if !bytes.Equal(want, got32) {
		t.Fatal("W=4 reinterpretation did not match the 1-byte stream")
	}

	g64, err := NewFromSeed[uint64](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer g64.Close()
	got64 := make([]byte, 0, n)
	for len(got64) < n {
		v := g64.Next()
		for i := 0; i < 8; i++ {
			got64 = append(got64, byte(v>>(8*i)))
		}
	}
	if !bytes.Equal(want, got64) {
		t.Fatal("W=8 reinterpretation did not match the 1-byte stream")
	}
}

// S5: bulk / one-shot equivalence.
func TestBulkOneShotEquivalence(t *testing.T) {
	seed := repeatSeed(0xDE, 32)
	const n = 1 << 16

	a, err := NewFromSeed[uint8](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer a.Close()
	whole := drain(t, a, n)

	b, err := NewFromSeed[uint8](SHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer b.Close()

	split := make([]byte, 0, n)
	for len(split) < n {
		one := make([]byte, 1)
		if _, err := b.Read(one); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		split = append(split, one[0])
		remaining := n - len(split)
		chunk := int(one[0])
		if chunk > remaining {
			chunk = remaining
		}
		if chunk > 0 {
			buf := make([]byte, chunk)
			if _, err := b.Read(buf); err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			split = append(split, buf...)
		}
	}

	if !bytes.Equal(whole, split[:n]) {
		t.Fatal("bulk read and interleaved one-byte/chunked reads diverged")
	}
}

// S6: ratchet activation.
func TestRatchetActivation(t *testing.T) {
	seed := repeatSeed(0xDE, 32)
	const rate = 168 // TurboSHAKE256

	g, err := NewFromSeed[uint8](TurboSHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer g.Close()

	refX, err := newNoRatchetReference(TurboSHAKE256, seed)
	if err != nil {
		t.Fatalf("newNoRatchetReference: %v", err)
	}

	first := drain(t, g, rate)
	firstRef := make([]byte, rate)
	refX.Squeeze(firstRef)
	if !bytes.Equal(first, firstRef) {
		t.Fatal("the first R bytes must equal the unratcheted reference stream")
	}

	const n = rate * 4
	g2, err := NewFromSeed[uint8](TurboSHAKE256, seed)
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	defer g2.Close()
	full := drain(t, g2, n)

	ref2, err := newNoRatchetReference(TurboSHAKE256, seed)
	if err != nil {
		t.Fatalf("newNoRatchetReference: %v", err)
	}
	fullRef := make([]byte, n)
	ref2.Squeeze(fullRef)

	if bytes.Equal(full[rate:], fullRef[rate:]) {
		t.Fatal("ratcheted output must diverge from the unratcheted reference after the first R bytes")
	}
}

func TestDestructionIdempotence(t *testing.T) {
	g, err := NewFromSeed[uint8](SHAKE256, repeatSeed(0xAB, 32))
	if err != nil {
		t.Fatalf("NewFromSeed: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestNewFromEntropyProducesOutput(t *testing.T) {
	g, err := NewFromEntropy[uint32](context.Background(), SHAKE256)
	if err != nil {
		t.Fatalf("NewFromEntropy: %v", err)
	}
	defer g.Close()

	v1 := g.Next()
	v2 := g.Next()
	if v1 == v2 {
		t.Log("two consecutive entropy-seeded values happened to collide; extremely unlikely but not a bug by itself")
	}
}

func TestMinMax(t *testing.T) {
	if Min[uint8]() != 0 || Max[uint8]() != 0xFF {
		t.Errorf("uint8 bounds wrong: min=%d max=%d", Min[uint8](), Max[uint8]())
	}
	if Max[uint64]() != ^uint64(0) {
		t.Errorf("uint64 max wrong: %d", Max[uint64]())
	}
}
