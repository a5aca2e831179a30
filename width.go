package randomshake

import "unsafe"

// Width is the set of result types a Generator may be parameterized
// over. The constraint itself is the InvalidConfiguration enforcement
// for unsupported widths: a Generator[int] or Generator[uint] simply
// fails to compile.
type Width interface {
	uint8 | uint16 | uint32 | uint64
}

// widthBytes returns the size in bytes of W.
func widthBytes[W Width]() int {
	var zero W
	return int(unsafe.Sizeof(zero))
}

// readWidth interprets the first widthBytes[W]() bytes of b as a
// host-native little-endian unsigned integer of type W. The init-time
// byte-order check in doc.go guarantees host-native and little-endian
// coincide on any build that reaches this code.
func readWidth[W Width](b []byte) W {
	return *(*W)(unsafe.Pointer(&b[0]))
}

// Min returns the static minimum value representable by W: always 0.
func Min[W Width]() W {
	return W(0)
}

// Max returns the static maximum value representable by W: 2^(8*sizeof(W)) - 1.
func Max[W Width]() W {
	var w W
	return w - 1
}
