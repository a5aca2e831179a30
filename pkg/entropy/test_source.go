package entropy

import "context"

// TestSource is a deterministic counter-based source for reproducible
// tests. It carries no real entropy and must never be used outside
// tests.
type TestSource struct {
	counter byte
}

// NewTestSource creates a TestSource starting at the given counter
// value.
func NewTestSource(initial byte) *TestSource {
	return &TestSource{counter: initial}
}

// Read fills p with sequential counter values.
func (s *TestSource) Read(ctx context.Context, p []byte) (int, error) {
	for i := range p {
		p[i] = s.counter
		s.counter++
	}
	return len(p), nil
}

// EstimatedEntropyBits reports zero: the output is entirely predictable.
func (s *TestSource) EstimatedEntropyBits(n int) int {
	return 0
}
