package regs

import (
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/cpulib/wideint"
)

// The vector bank stores every register at full 512-bit width. XMM and YMM
// accesses project onto the low bits of the same slot, so a value written
// through one view is visible through the others. Narrow writes preserve
// the bits above the view's width; ZeroUpper is the explicit way to clear
// them.

func (r *RegFile) checkVecSlot(slot int) error {
	if slot < 0 || slot >= len(r.vec) {
		return fmt.Errorf("regs: vector slot %d of %d: %w",
			slot, len(r.vec), ErrInvalidSlot)
	}

	return nil
}

// ReadVecBit returns bit i of the slot as seen through view n. The index
// must be below the view's width.
func (r *RegFile) ReadVecBit(n VecRegName, slot, i int) (bool, error) {
	if err := r.checkVecSlot(slot); err != nil {
		return false, err
	}

	if i < 0 || i >= n.Bits() {
		return false, fmt.Errorf("regs: bit %d of %s: %w",
			i, n, wideint.ErrIndexOutOfRange)
	}

	return r.vec[slot].Bit(i)
}

// WriteVecBit sets bit i of the slot as seen through view n. Every other
// bit of the slot, including those above the view's width, is unchanged.
func (r *RegFile) WriteVecBit(n VecRegName, slot, i int, v bool) error {
	if err := r.checkVecSlot(slot); err != nil {
		return err
	}

	if i < 0 || i >= n.Bits() {
		return fmt.Errorf("regs: bit %d of %s: %w",
			i, n, wideint.ErrIndexOutOfRange)
	}

	return r.vec[slot].SetBit(i, v)
}

// ReadVecByte returns byte i (little-endian) of the slot as seen through
// view n.
func (r *RegFile) ReadVecByte(n VecRegName, slot, i int) (byte, error) {
	if err := r.checkVecSlot(slot); err != nil {
		return 0, err
	}

	if i < 0 || i >= n.Bits()/8 {
		return 0, fmt.Errorf("regs: byte %d of %s: %w",
			i, n, wideint.ErrIndexOutOfRange)
	}

	return r.vec[slot].Byte(i)
}

// WriteVecByte sets byte i of the slot as seen through view n, leaving
// every other byte unchanged.
func (r *RegFile) WriteVecByte(n VecRegName, slot, i int, b byte) error {
	if err := r.checkVecSlot(slot); err != nil {
		return err
	}

	if i < 0 || i >= n.Bits()/8 {
		return fmt.Errorf("regs: byte %d of %s: %w",
			i, n, wideint.ErrIndexOutOfRange)
	}

	return r.vec[slot].SetByte(i, b)
}

// storeVecBytes overwrites the low len(b) bytes of a slot. len(b) must be a
// multiple of 8 and within the slot; callers guarantee both.
func (r *RegFile) storeVecBytes(slot int, b []byte) {
	for i := 0; i < len(b); i += 8 {
		_ = r.vec[slot].SetLimb(i/8, binary.LittleEndian.Uint64(b[i:]))
	}
}

// ReadXMM returns the low 128 bits of the slot.
func (r *RegFile) ReadXMM(slot int) (wideint.U128, error) {
	if err := r.checkVecSlot(slot); err != nil {
		return wideint.U128{}, err
	}

	v, _ := wideint.U128FromBytes(r.vec[slot].Bytes()[:wideint.U128Bytes])

	return v, nil
}

// WriteXMM replaces the low 128 bits of the slot. Bits 128..511 keep their
// previous value.
func (r *RegFile) WriteXMM(slot int, v wideint.U128) error {
	if err := r.checkVecSlot(slot); err != nil {
		return err
	}

	r.storeVecBytes(slot, v.Bytes())

	return nil
}

// ReadYMM returns the low 256 bits of the slot.
func (r *RegFile) ReadYMM(slot int) (wideint.U256, error) {
	if err := r.checkVecSlot(slot); err != nil {
		return wideint.U256{}, err
	}

	v, _ := wideint.U256FromBytes(r.vec[slot].Bytes()[:wideint.U256Bytes])

	return v, nil
}

// WriteYMM replaces the low 256 bits of the slot. Bits 256..511 keep their
// previous value.
func (r *RegFile) WriteYMM(slot int, v wideint.U256) error {
	if err := r.checkVecSlot(slot); err != nil {
		return err
	}

	r.storeVecBytes(slot, v.Bytes())

	return nil
}

// ReadZMM returns the full 512-bit slot.
func (r *RegFile) ReadZMM(slot int) (wideint.U512, error) {
	if err := r.checkVecSlot(slot); err != nil {
		return wideint.U512{}, err
	}

	return r.vec[slot], nil
}

// WriteZMM replaces the full 512-bit slot.
func (r *RegFile) WriteZMM(slot int, v wideint.U512) error {
	if err := r.checkVecSlot(slot); err != nil {
		return err
	}

	r.vec[slot] = v

	return nil
}

// ZeroUpper clears every bit of the slot at and above view n's width. With
// the ZMM view it is a no-op. This is the explicit counterpart to the
// preserve-upper behavior of the narrow write paths.
func (r *RegFile) ZeroUpper(n VecRegName, slot int) error {
	if err := r.checkVecSlot(slot); err != nil {
		return err
	}

	for i := n.Bits() / 64; i < wideint.U512Bits/64; i++ {
		_ = r.vec[slot].SetLimb(i, 0)
	}

	return nil
}

func (r *RegFile) checkLane(n VecRegName, slot, lane, laneBits int) error {
	if err := r.checkVecSlot(slot); err != nil {
		return err
	}

	if lane < 0 || lane >= n.Bits()/laneBits {
		return fmt.Errorf("regs: %d-bit lane %d of %s: %w",
			laneBits, lane, n, wideint.ErrIndexOutOfRange)
	}

	return nil
}

// ReadLane8 returns 8-bit lane i of the slot as seen through view n.
func (r *RegFile) ReadLane8(n VecRegName, slot, lane int) (uint8, error) {
	if err := r.checkLane(n, slot, lane, 8); err != nil {
		return 0, err
	}

	b, _ := r.vec[slot].Byte(lane)

	return b, nil
}

// WriteLane8 sets 8-bit lane i of the slot as seen through view n.
func (r *RegFile) WriteLane8(n VecRegName, slot, lane int, v uint8) error {
	if err := r.checkLane(n, slot, lane, 8); err != nil {
		return err
	}

	return r.vec[slot].SetByte(lane, v)
}

// ReadLane16 returns 16-bit lane i of the slot as seen through view n.
func (r *RegFile) ReadLane16(n VecRegName, slot, lane int) (uint16, error) {
	if err := r.checkLane(n, slot, lane, 16); err != nil {
		return 0, err
	}

	limb, _ := r.vec[slot].Limb(lane / 4)

	return uint16(limb >> (uint(lane%4) * 16)), nil
}

// WriteLane16 sets 16-bit lane i of the slot as seen through view n.
func (r *RegFile) WriteLane16(n VecRegName, slot, lane int, v uint16) error {
	if err := r.checkLane(n, slot, lane, 16); err != nil {
		return err
	}

	limb, _ := r.vec[slot].Limb(lane / 4)
	shift := uint(lane%4) * 16
	limb = limb&^(0xFFFF<<shift) | uint64(v)<<shift

	return r.vec[slot].SetLimb(lane/4, limb)
}

// ReadLane32 returns 32-bit lane i of the slot as seen through view n.
func (r *RegFile) ReadLane32(n VecRegName, slot, lane int) (uint32, error) {
	if err := r.checkLane(n, slot, lane, 32); err != nil {
		return 0, err
	}

	limb, _ := r.vec[slot].Limb(lane / 2)

	return uint32(limb >> (uint(lane%2) * 32)), nil
}

// WriteLane32 sets 32-bit lane i of the slot as seen through view n.
func (r *RegFile) WriteLane32(n VecRegName, slot, lane int, v uint32) error {
	if err := r.checkLane(n, slot, lane, 32); err != nil {
		return err
	}

	limb, _ := r.vec[slot].Limb(lane / 2)
	shift := uint(lane%2) * 32
	limb = limb&^(0xFFFFFFFF<<shift) | uint64(v)<<shift

	return r.vec[slot].SetLimb(lane/2, limb)
}

// ReadLane64 returns 64-bit lane i of the slot as seen through view n.
func (r *RegFile) ReadLane64(n VecRegName, slot, lane int) (uint64, error) {
	if err := r.checkLane(n, slot, lane, 64); err != nil {
		return 0, err
	}

	limb, _ := r.vec[slot].Limb(lane)

	return limb, nil
}

// WriteLane64 sets 64-bit lane i of the slot as seen through view n.
func (r *RegFile) WriteLane64(n VecRegName, slot, lane int, v uint64) error {
	if err := r.checkLane(n, slot, lane, 64); err != nil {
		return err
	}

	return r.vec[slot].SetLimb(lane, v)
}
