package zero

import "testing"

func TestBytesClearsAllBytes(t *testing.T) {
	b := make([]byte, 64)
	for i := range b {
		b[i] = byte(i + 1)
	}
	Bytes(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not cleared: got %#x", i, v)
		}
	}
}

func TestBytesEmptySlice(t *testing.T) {
	Bytes(nil)
	Bytes([]byte{})
}
