package wideint

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

// U512 is a 512-bit unsigned integer stored as two 256-bit halves, eight
// 64-bit limbs in little-endian limb order overall.
//
// The zero value is ready to use and holds 0.
type U512 struct {
	lo uint256.Int
	hi uint256.Int
}

const u512Limbs = U512Bits / 64

// U512FromUint64 returns a U512 holding v, zero-extended.
func U512FromUint64(v uint64) U512 {
	var z U512
	z.lo.SetUint64(v)

	return z
}

// U512FromBytes builds a U512 from little-endian bytes. Input shorter than
// 64 bytes is zero-extended; longer input fails with ErrSizeMismatch.
func U512FromBytes(b []byte) (U512, error) {
	if len(b) > U512Bytes {
		return U512{}, fmt.Errorf("wideint: %d bytes into U512: %w",
			len(b), ErrSizeMismatch)
	}

	var buf [U512Bytes]byte
	copy(buf[:], b)

	var z U512
	for i := 0; i < u512Limbs; i++ {
		z.setLimb(i, binary.LittleEndian.Uint64(buf[i*8:]))
	}

	return z, nil
}

func (u U512) limb(i int) uint64 {
	if i < 4 {
		return u.lo[i]
	}

	return u.hi[i-4]
}

func (u *U512) setLimb(i int, v uint64) {
	if i < 4 {
		u.lo[i] = v
		return
	}

	u.hi[i-4] = v
}

// Limb returns 64-bit limb i in little-endian limb order.
func (u U512) Limb(i int) (uint64, error) {
	if i < 0 || i >= u512Limbs {
		return 0, fmt.Errorf("wideint: limb %d of U512: %w",
			i, ErrIndexOutOfRange)
	}

	return u.limb(i), nil
}

// SetLimb sets 64-bit limb i, leaving every other limb unchanged.
func (u *U512) SetLimb(i int, v uint64) error {
	if i < 0 || i >= u512Limbs {
		return fmt.Errorf("wideint: limb %d of U512: %w",
			i, ErrIndexOutOfRange)
	}

	u.setLimb(i, v)

	return nil
}

// Bit returns bit i. Bit 0 is the least significant.
func (u U512) Bit(i int) (bool, error) {
	if i < 0 || i >= U512Bits {
		return false, fmt.Errorf("wideint: bit %d of U512: %w",
			i, ErrIndexOutOfRange)
	}

	return u.limb(i>>6)>>uint(i&63)&1 == 1, nil
}

// SetBit sets bit i to v, leaving every other bit unchanged.
func (u *U512) SetBit(i int, v bool) error {
	if i < 0 || i >= U512Bits {
		return fmt.Errorf("wideint: bit %d of U512: %w",
			i, ErrIndexOutOfRange)
	}

	word := u.limb(i >> 6)
	mask := uint64(1) << uint(i&63)
	if v {
		word |= mask
	} else {
		word &^= mask
	}
	u.setLimb(i>>6, word)

	return nil
}

// Byte returns byte i in little-endian order.
func (u U512) Byte(i int) (byte, error) {
	if i < 0 || i >= U512Bytes {
		return 0, fmt.Errorf("wideint: byte %d of U512: %w",
			i, ErrIndexOutOfRange)
	}

	return byte(u.limb(i>>3) >> (uint(i&7) * 8)), nil
}

// SetByte sets byte i to b, leaving every other byte unchanged.
func (u *U512) SetByte(i int, b byte) error {
	if i < 0 || i >= U512Bytes {
		return fmt.Errorf("wideint: byte %d of U512: %w",
			i, ErrIndexOutOfRange)
	}

	shift := uint(i&7) * 8
	word := u.limb(i>>3)&^(0xFF<<shift) | uint64(b)<<shift
	u.setLimb(i>>3, word)

	return nil
}

// Bytes returns the value as exactly 64 little-endian bytes.
func (u U512) Bytes() []byte {
	b := make([]byte, U512Bytes)
	for i := 0; i < u512Limbs; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], u.limb(i))
	}

	return b
}

// Add returns u + v, wrapping modulo 2^512. The carry out of the low half
// propagates into the high half.
func (u U512) Add(v U512) U512 {
	var z U512
	z.hi.Add(&u.hi, &v.hi)
	if _, carry := z.lo.AddOverflow(&u.lo, &v.lo); carry {
		z.hi.Add(&z.hi, uint256.NewInt(1))
	}

	return z
}

// And returns the bitwise AND of u and v.
func (u U512) And(v U512) U512 {
	var z U512
	z.lo.And(&u.lo, &v.lo)
	z.hi.And(&u.hi, &v.hi)

	return z
}

// Or returns the bitwise OR of u and v.
func (u U512) Or(v U512) U512 {
	var z U512
	z.lo.Or(&u.lo, &v.lo)
	z.hi.Or(&u.hi, &v.hi)

	return z
}

// Xor returns the bitwise XOR of u and v.
func (u U512) Xor(v U512) U512 {
	var z U512
	z.lo.Xor(&u.lo, &v.lo)
	z.hi.Xor(&u.hi, &v.hi)

	return z
}

// Lsh returns u shifted left by n bits, zero-filling from the right.
func (u U512) Lsh(n uint) U512 {
	var z U512

	switch {
	case n >= U512Bits:
		// all bits shifted out
	case n >= U256Bits:
		z.hi.Lsh(&u.lo, n-U256Bits)
	case n == 0:
		z = u
	default:
		z.lo.Lsh(&u.lo, n)
		z.hi.Lsh(&u.hi, n)
		var cross uint256.Int
		cross.Rsh(&u.lo, U256Bits-n)
		z.hi.Or(&z.hi, &cross)
	}

	return z
}

// Rsh returns u shifted right by n bits, zero-filling from the left.
func (u U512) Rsh(n uint) U512 {
	var z U512

	switch {
	case n >= U512Bits:
		// all bits shifted out
	case n >= U256Bits:
		z.lo.Rsh(&u.hi, n-U256Bits)
	case n == 0:
		z = u
	default:
		z.lo.Rsh(&u.lo, n)
		z.hi.Rsh(&u.hi, n)
		var cross uint256.Int
		cross.Lsh(&u.hi, U256Bits-n)
		z.lo.Or(&z.lo, &cross)
	}

	return z
}

// Uint64 returns the low 64 bits.
func (u U512) Uint64() uint64 {
	return u.lo.Uint64()
}

// IsZero reports whether u is 0.
func (u U512) IsZero() bool {
	return u.lo.IsZero() && u.hi.IsZero()
}

// String returns the value as a fixed-width hexadecimal literal.
func (u U512) String() string {
	return fmt.Sprintf("0x%016x%016x%016x%016x%016x%016x%016x%016x",
		u.hi[3], u.hi[2], u.hi[1], u.hi[0],
		u.lo[3], u.lo[2], u.lo[1], u.lo[0])
}
