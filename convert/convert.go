// Package convert provides caller-level value conversions for driving the
// register file: packed float values to and from their bit patterns, and
// sign/zero extension of sub-width scalars.
//
// The register banks store raw bits with no signed or floating-point
// interpretation; these helpers apply that interpretation at the boundary.
package convert

import "math"

// Float32Bits returns the IEEE 754 bit pattern of each element, ready to be
// written into 32-bit vector lanes.
func Float32Bits(f []float32) []uint32 {
	u := make([]uint32, len(f))
	for i, v := range f {
		u[i] = math.Float32bits(v)
	}

	return u
}

// Float32sFromBits interprets each element as an IEEE 754 bit pattern.
func Float32sFromBits(u []uint32) []float32 {
	f := make([]float32, len(u))
	for i, v := range u {
		f[i] = math.Float32frombits(v)
	}

	return f
}

// Float64Bits returns the IEEE 754 bit pattern of each element, ready to be
// written into 64-bit vector lanes.
func Float64Bits(f []float64) []uint64 {
	u := make([]uint64, len(f))
	for i, v := range f {
		u[i] = math.Float64bits(v)
	}

	return u
}

// Float64sFromBits interprets each element as an IEEE 754 bit pattern.
func Float64sFromBits(u []uint64) []float64 {
	f := make([]float64, len(u))
	for i, v := range u {
		f[i] = math.Float64frombits(v)
	}

	return f
}

// SignExtend treats the low fromBits bits of v as a signed value and
// extends its sign bit through bit 63. fromBits outside (0, 64) returns v
// unchanged.
func SignExtend(v uint64, fromBits uint) uint64 {
	if fromBits == 0 || fromBits >= 64 {
		return v
	}

	shift := 64 - fromBits

	return uint64(int64(v<<shift) >> shift)
}

// ZeroExtend clears every bit of v at and above fromBits. fromBits of 64 or
// more returns v unchanged.
func ZeroExtend(v uint64, fromBits uint) uint64 {
	if fromBits >= 64 {
		return v
	}

	return v & (1<<fromBits - 1)
}
