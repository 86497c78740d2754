// Package wideint provides fixed-width unsigned integers wider than the
// native machine word: 128, 256, and 512 bits.
//
// Values are stored as little-endian sequences of 64-bit limbs. All byte
// level accessors use little-endian byte order, and bit 0 is the least
// significant bit. Bit and byte writes target an explicit index and never
// spill into neighboring positions; arithmetic wraps modulo 2^W. None of
// the types carry a signed interpretation.
package wideint

import "errors"

// Widths of the provided integer types, in bits.
const (
	U128Bits = 128
	U256Bits = 256
	U512Bits = 512
)

// Byte capacities of the provided integer types.
const (
	U128Bytes = U128Bits / 8
	U256Bytes = U256Bits / 8
	U512Bytes = U512Bits / 8
)

// ErrIndexOutOfRange reports a bit, byte, or limb index outside the
// integer's width.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrSizeMismatch reports a byte sequence that exceeds the target width's
// capacity.
var ErrSizeMismatch = errors.New("size mismatch")
