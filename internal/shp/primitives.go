package shp

import (
	"encoding/binary"
	"io"
	"math"
)

// noDataThreshold is the Esri convention marking an absent M or Z value.
// Any ordinate at or below it is treated as not present.
const noDataThreshold = -1e38

// NoData reports whether v is the Esri sentinel for an absent M/Z value.
func NoData(v float64) bool {
	return v <= noDataThreshold
}

func readInt32BE(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

func putInt32BE(b []byte, v int32) {
	binary.BigEndian.PutUint32(b, uint32(v))
}

func readInt32LE(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

func putInt32LE(b []byte, v int32) {
	binary.LittleEndian.PutUint32(b, uint32(v))
}

func readFloat64LE(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func putFloat64LE(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

// readFull reads exactly len(b) bytes, returning the first error a short
// read produces (io.ErrUnexpectedEOF on a truncated tail).
func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	return err
}
