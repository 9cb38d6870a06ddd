package encoding

import (
	"encoding/binary"
	"math"
)

// ToBytes32 turns a uint32 into []byte len 4
func ToBytes32(in uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, in)
	return buf
}

// FromBytes32 turns []byte into uint32
func FromBytes32(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// ToBytesFloat64 turns a float64 into []byte len 8 (IEEE 754 bits)
func ToBytesFloat64(in float64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(in))
	return buf
}

// FromBytesFloat64 turns []byte into a float64
func FromBytesFloat64(data []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(data))
}

// ToBytesInt32 turns a (possibly negative) int32 into []byte len 4
func ToBytesInt32(in int32) []byte {
	return ToBytes32(uint32(in))
}

// FromBytesInt32 turns []byte into an int32
func FromBytesInt32(data []byte) int32 {
	return int32(FromBytes32(data))
}
