package lbytes

import (
	"nifti-savior/nifti/ntype"
)

// Reverse flips the byte order of bs in place.
func Reverse(bs []byte) {
	for i, j := 0, len(bs)-1; i < j; i, j = i+1, j-1 {
		bs[i], bs[j] = bs[j], bs[i]
	}
}

func EncodeElement(t ntype.PrimitiveType, value float64, swap bool) []byte {
	bs := make([]byte, ntype.WidthOf(t))
	ntype.EncodeElement(t, value, bs)
	if swap {
		Reverse(bs)
	}
	return bs
}

func EncodeElements(t ntype.PrimitiveType, values []float64, swap bool) []byte {
	bs := make([]byte, 0, ntype.WidthOf(t)*len(values))
	for _, value := range values {
		bs = append(bs, EncodeElement(t, value, swap)...)
	}
	return bs
}

// EncodeValueUint32 writes little-endian regardless of the header's byte order.
func EncodeValueUint32(value uint32) []byte {
	return EncodeElement(ntype.Uint32, float64(value), false)
}

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}
