package wideint

import (
	"fmt"

	"lukechampine.com/uint128"
)

// U128 is a 128-bit unsigned integer.
//
// The zero value is ready to use and holds 0.
type U128 struct {
	v uint128.Uint128
}

// U128FromUint64 returns a U128 holding v, zero-extended.
func U128FromUint64(v uint64) U128 {
	return U128{v: uint128.From64(v)}
}

// U128FromBytes builds a U128 from little-endian bytes. Input shorter than
// 16 bytes is zero-extended; longer input fails with ErrSizeMismatch.
func U128FromBytes(b []byte) (U128, error) {
	if len(b) > U128Bytes {
		return U128{}, fmt.Errorf("wideint: %d bytes into U128: %w",
			len(b), ErrSizeMismatch)
	}

	var buf [U128Bytes]byte
	copy(buf[:], b)

	return U128{v: uint128.FromBytes(buf[:])}, nil
}

// Bit returns bit i. Bit 0 is the least significant.
func (u U128) Bit(i int) (bool, error) {
	if i < 0 || i >= U128Bits {
		return false, fmt.Errorf("wideint: bit %d of U128: %w",
			i, ErrIndexOutOfRange)
	}

	if i < 64 {
		return u.v.Lo>>uint(i)&1 == 1, nil
	}

	return u.v.Hi>>uint(i-64)&1 == 1, nil
}

// SetBit sets bit i to v, leaving every other bit unchanged.
func (u *U128) SetBit(i int, v bool) error {
	if i < 0 || i >= U128Bits {
		return fmt.Errorf("wideint: bit %d of U128: %w",
			i, ErrIndexOutOfRange)
	}

	word := &u.v.Lo
	if i >= 64 {
		word = &u.v.Hi
	}

	mask := uint64(1) << uint(i%64)
	if v {
		*word |= mask
	} else {
		*word &^= mask
	}

	return nil
}

// Byte returns byte i in little-endian order.
func (u U128) Byte(i int) (byte, error) {
	if i < 0 || i >= U128Bytes {
		return 0, fmt.Errorf("wideint: byte %d of U128: %w",
			i, ErrIndexOutOfRange)
	}

	if i < 8 {
		return byte(u.v.Lo >> (uint(i) * 8)), nil
	}

	return byte(u.v.Hi >> (uint(i-8) * 8)), nil
}

// SetByte sets byte i to b, leaving every other byte unchanged.
func (u *U128) SetByte(i int, b byte) error {
	if i < 0 || i >= U128Bytes {
		return fmt.Errorf("wideint: byte %d of U128: %w",
			i, ErrIndexOutOfRange)
	}

	word := &u.v.Lo
	if i >= 8 {
		word = &u.v.Hi
	}

	shift := uint(i%8) * 8
	*word = *word&^(0xFF<<shift) | uint64(b)<<shift

	return nil
}

// Bytes returns the value as exactly 16 little-endian bytes.
func (u U128) Bytes() []byte {
	b := make([]byte, U128Bytes)
	u.v.PutBytes(b)

	return b
}

// Add returns u + v, wrapping modulo 2^128.
func (u U128) Add(v U128) U128 {
	return U128{v: u.v.AddWrap(v.v)}
}

// And returns the bitwise AND of u and v.
func (u U128) And(v U128) U128 {
	return U128{v: u.v.And(v.v)}
}

// Or returns the bitwise OR of u and v.
func (u U128) Or(v U128) U128 {
	return U128{v: u.v.Or(v.v)}
}

// Xor returns the bitwise XOR of u and v.
func (u U128) Xor(v U128) U128 {
	return U128{v: u.v.Xor(v.v)}
}

// Lsh returns u shifted left by n bits, zero-filling from the right.
func (u U128) Lsh(n uint) U128 {
	if n >= U128Bits {
		return U128{}
	}

	return U128{v: u.v.Lsh(n)}
}

// Rsh returns u shifted right by n bits, zero-filling from the left.
func (u U128) Rsh(n uint) U128 {
	if n >= U128Bits {
		return U128{}
	}

	return U128{v: u.v.Rsh(n)}
}

// Uint64 returns the low 64 bits.
func (u U128) Uint64() uint64 {
	return u.v.Lo
}

// IsZero reports whether u is 0.
func (u U128) IsZero() bool {
	return u.v.IsZero()
}

// String returns the value as a fixed-width hexadecimal literal.
func (u U128) String() string {
	return fmt.Sprintf("0x%016x%016x", u.v.Hi, u.v.Lo)
}
