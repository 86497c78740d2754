package wideint

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

// U256 is a 256-bit unsigned integer backed by a uint256.Int, which stores
// four 64-bit limbs in little-endian limb order.
//
// The zero value is ready to use and holds 0.
type U256 struct {
	v uint256.Int
}

// U256FromUint64 returns a U256 holding v, zero-extended.
func U256FromUint64(v uint64) U256 {
	var z uint256.Int
	z.SetUint64(v)

	return U256{v: z}
}

// U256FromBytes builds a U256 from little-endian bytes. Input shorter than
// 32 bytes is zero-extended; longer input fails with ErrSizeMismatch.
func U256FromBytes(b []byte) (U256, error) {
	if len(b) > U256Bytes {
		return U256{}, fmt.Errorf("wideint: %d bytes into U256: %w",
			len(b), ErrSizeMismatch)
	}

	var buf [U256Bytes]byte
	copy(buf[:], b)

	var z uint256.Int
	for i := range z {
		z[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}

	return U256{v: z}, nil
}

// Bit returns bit i. Bit 0 is the least significant.
func (u U256) Bit(i int) (bool, error) {
	if i < 0 || i >= U256Bits {
		return false, fmt.Errorf("wideint: bit %d of U256: %w",
			i, ErrIndexOutOfRange)
	}

	return u.v[i>>6]>>uint(i&63)&1 == 1, nil
}

// SetBit sets bit i to v, leaving every other bit unchanged.
func (u *U256) SetBit(i int, v bool) error {
	if i < 0 || i >= U256Bits {
		return fmt.Errorf("wideint: bit %d of U256: %w",
			i, ErrIndexOutOfRange)
	}

	mask := uint64(1) << uint(i&63)
	if v {
		u.v[i>>6] |= mask
	} else {
		u.v[i>>6] &^= mask
	}

	return nil
}

// Byte returns byte i in little-endian order.
func (u U256) Byte(i int) (byte, error) {
	if i < 0 || i >= U256Bytes {
		return 0, fmt.Errorf("wideint: byte %d of U256: %w",
			i, ErrIndexOutOfRange)
	}

	return byte(u.v[i>>3] >> (uint(i&7) * 8)), nil
}

// SetByte sets byte i to b, leaving every other byte unchanged.
func (u *U256) SetByte(i int, b byte) error {
	if i < 0 || i >= U256Bytes {
		return fmt.Errorf("wideint: byte %d of U256: %w",
			i, ErrIndexOutOfRange)
	}

	shift := uint(i&7) * 8
	u.v[i>>3] = u.v[i>>3]&^(0xFF<<shift) | uint64(b)<<shift

	return nil
}

// Bytes returns the value as exactly 32 little-endian bytes.
func (u U256) Bytes() []byte {
	b := make([]byte, U256Bytes)
	for i := range u.v {
		binary.LittleEndian.PutUint64(b[i*8:], u.v[i])
	}

	return b
}

// Add returns u + v, wrapping modulo 2^256.
func (u U256) Add(v U256) U256 {
	var z uint256.Int
	z.Add(&u.v, &v.v)

	return U256{v: z}
}

// And returns the bitwise AND of u and v.
func (u U256) And(v U256) U256 {
	var z uint256.Int
	z.And(&u.v, &v.v)

	return U256{v: z}
}

// Or returns the bitwise OR of u and v.
func (u U256) Or(v U256) U256 {
	var z uint256.Int
	z.Or(&u.v, &v.v)

	return U256{v: z}
}

// Xor returns the bitwise XOR of u and v.
func (u U256) Xor(v U256) U256 {
	var z uint256.Int
	z.Xor(&u.v, &v.v)

	return U256{v: z}
}

// Lsh returns u shifted left by n bits, zero-filling from the right.
func (u U256) Lsh(n uint) U256 {
	var z uint256.Int
	z.Lsh(&u.v, n)

	return U256{v: z}
}

// Rsh returns u shifted right by n bits, zero-filling from the left.
func (u U256) Rsh(n uint) U256 {
	var z uint256.Int
	z.Rsh(&u.v, n)

	return U256{v: z}
}

// Uint64 returns the low 64 bits.
func (u U256) Uint64() uint64 {
	return u.v.Uint64()
}

// IsZero reports whether u is 0.
func (u U256) IsZero() bool {
	return u.v.IsZero()
}

// String returns the value as a fixed-width hexadecimal literal.
func (u U256) String() string {
	return fmt.Sprintf("0x%016x%016x%016x%016x",
		u.v[3], u.v[2], u.v[1], u.v[0])
}
