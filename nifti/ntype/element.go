package ntype

import (
	"encoding/binary"
	"math"
)

// DecodeElement interprets bs, which must hold at least WidthOf(t) bytes, as one
// little-endian element of t.
func DecodeElement(t PrimitiveType, bs []byte) float64 {
	switch t {
	case Uint8:
		return float64(bs[0])
	case Int8:
		return float64(int8(bs[0]))
	case Uint16:
		return float64(binary.LittleEndian.Uint16(bs))
	case Int16:
		return float64(int16(binary.LittleEndian.Uint16(bs)))
	case Uint32:
		return float64(binary.LittleEndian.Uint32(bs))
	case Int32:
		return float64(int32(binary.LittleEndian.Uint32(bs)))
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(bs)))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(bs))
	}
	return 0
}

// EncodeElement writes value into bs as one little-endian element of t.
// Integer types truncate toward zero and wrap like a Go conversion.
func EncodeElement(t PrimitiveType, value float64, bs []byte) {
	switch t {
	case Uint8:
		bs[0] = uint8(int64(value))
	case Int8:
		bs[0] = uint8(int8(int64(value)))
	case Uint16:
		binary.LittleEndian.PutUint16(bs, uint16(int64(value)))
	case Int16:
		binary.LittleEndian.PutUint16(bs, uint16(int16(int64(value))))
	case Uint32:
		binary.LittleEndian.PutUint32(bs, uint32(int64(value)))
	case Int32:
		binary.LittleEndian.PutUint32(bs, uint32(int32(int64(value))))
	case Float32:
		binary.LittleEndian.PutUint32(bs, math.Float32bits(float32(value)))
	case Float64:
		binary.LittleEndian.PutUint64(bs, math.Float64bits(value))
	}
}
