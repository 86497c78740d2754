package regs

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/sarchlab/cpulib/wideint"
)

// GPRCount is the number of 64-bit general-purpose register slots.
const GPRCount = 16

// DefaultVecRegCount is the number of vector registers a RegFile holds
// unless WithVecRegCount overrides it. AVX-512 capable cores expose 32;
// use WithVecRegCount(32) to model those.
const DefaultVecRegCount = 16

// ErrInvalidSlot reports a register slot index outside the family's
// register count.
var ErrInvalidSlot = errors.New("invalid register slot")

// RegFile holds the complete register state of one core: the
// general-purpose bank, the flags register, the instruction pointer, and
// the vector bank. All storage exists for the life of the RegFile; no
// accessor allocates.
//
// A RegFile is not safe for concurrent use. Model independent cores with
// independent RegFiles.
type RegFile struct {
	gpr    [GPRCount]uint64
	rflags uint64
	rip    uint64
	vec    []wideint.U512
}

// Option configures a RegFile at construction time.
type Option func(*RegFile)

// WithVecRegCount sets the number of vector registers. Values below 1 are
// ignored.
func WithVecRegCount(n int) Option {
	return func(r *RegFile) {
		if n > 0 {
			r.vec = make([]wideint.U512, n)
		}
	}
}

// NewRegFile creates a zero-initialized register file.
func NewRegFile(opts ...Option) *RegFile {
	r := &RegFile{
		vec: make([]wideint.U512, DefaultVecRegCount),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// VecRegCount returns the number of vector registers.
func (r *RegFile) VecRegCount() int {
	return len(r.vec)
}

// Slots returns the number of addressable registers in family f.
func (r *RegFile) Slots(f Family) int {
	switch f {
	case FamilyGPR:
		return GPRCount
	case FamilyFLAGS, FamilyIP:
		return 1
	case FamilyXMM, FamilyYMM, FamilyZMM:
		return len(r.vec)
	}

	return 0
}

// scalar returns the backing word for the 64-bit scalar families.
func (r *RegFile) scalar(f Family, slot int) (*uint64, error) {
	switch f {
	case FamilyGPR:
		if slot < 0 || slot >= GPRCount {
			return nil, fmt.Errorf("regs: GPR slot %d of %d: %w",
				slot, GPRCount, ErrInvalidSlot)
		}

		return &r.gpr[slot], nil
	case FamilyFLAGS:
		if slot != 0 {
			return nil, fmt.Errorf("regs: FLAGS slot %d of 1: %w",
				slot, ErrInvalidSlot)
		}

		return &r.rflags, nil
	case FamilyIP:
		if slot != 0 {
			return nil, fmt.Errorf("regs: IP slot %d of 1: %w",
				slot, ErrInvalidSlot)
		}

		return &r.rip, nil
	}

	return nil, fmt.Errorf("regs: family %s has no scalar storage", f)
}

// ReadBit returns bit i of the addressed register. For vector families the
// index is interpreted relative to the family's alias width.
func (r *RegFile) ReadBit(f Family, slot, i int) (bool, error) {
	if f.isVec() {
		return r.ReadVecBit(f.vecName(), slot, i)
	}

	w, err := r.scalar(f, slot)
	if err != nil {
		return false, err
	}

	if i < 0 || i >= 64 {
		return false, fmt.Errorf("regs: bit %d of %s: %w",
			i, f, wideint.ErrIndexOutOfRange)
	}

	return *w>>uint(i)&1 == 1, nil
}

// WriteBit sets bit i of the addressed register, leaving all other bits
// unchanged.
func (r *RegFile) WriteBit(f Family, slot, i int, v bool) error {
	if f.isVec() {
		return r.WriteVecBit(f.vecName(), slot, i, v)
	}

	w, err := r.scalar(f, slot)
	if err != nil {
		return err
	}

	if i < 0 || i >= 64 {
		return fmt.Errorf("regs: bit %d of %s: %w",
			i, f, wideint.ErrIndexOutOfRange)
	}

	mask := uint64(1) << uint(i)
	if v {
		*w |= mask
	} else {
		*w &^= mask
	}

	return nil
}

// ReadByte returns byte i (little-endian) of the addressed register.
func (r *RegFile) ReadByte(f Family, slot, i int) (byte, error) {
	if f.isVec() {
		return r.ReadVecByte(f.vecName(), slot, i)
	}

	w, err := r.scalar(f, slot)
	if err != nil {
		return 0, err
	}

	if i < 0 || i >= 8 {
		return 0, fmt.Errorf("regs: byte %d of %s: %w",
			i, f, wideint.ErrIndexOutOfRange)
	}

	return byte(*w >> (uint(i) * 8)), nil
}

// WriteByte sets byte i of the addressed register, leaving all other bytes
// unchanged.
func (r *RegFile) WriteByte(f Family, slot, i int, b byte) error {
	if f.isVec() {
		return r.WriteVecByte(f.vecName(), slot, i, b)
	}

	w, err := r.scalar(f, slot)
	if err != nil {
		return err
	}

	if i < 0 || i >= 8 {
		return fmt.Errorf("regs: byte %d of %s: %w",
			i, f, wideint.ErrIndexOutOfRange)
	}

	shift := uint(i) * 8
	*w = *w&^(0xFF<<shift) | uint64(b)<<shift

	return nil
}

// ReadValue returns the addressed register's full alias-width value as
// little-endian bytes. The slice length is exactly f.Bits()/8.
func (r *RegFile) ReadValue(f Family, slot int) ([]byte, error) {
	if f.isVec() {
		if err := r.checkVecSlot(slot); err != nil {
			return nil, err
		}

		return r.vec[slot].Bytes()[:f.Bits()/8], nil
	}

	w, err := r.scalar(f, slot)
	if err != nil {
		return nil, err
	}

	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, *w)

	return b, nil
}

// WriteValue replaces the addressed register's alias-width value with the
// little-endian bytes in b. Short input is zero-extended to the alias
// width; input longer than the alias width fails with ErrSizeMismatch.
// Bits above the alias width keep their previous value.
func (r *RegFile) WriteValue(f Family, slot int, b []byte) error {
	width := f.Bits() / 8
	if width == 0 {
		return fmt.Errorf("regs: unknown family %d", uint8(f))
	}

	if len(b) > width {
		return fmt.Errorf("regs: %d bytes into %s: %w",
			len(b), f, wideint.ErrSizeMismatch)
	}

	buf := make([]byte, width)
	copy(buf, b)

	if f.isVec() {
		if err := r.checkVecSlot(slot); err != nil {
			return err
		}

		r.storeVecBytes(slot, buf)

		return nil
	}

	w, err := r.scalar(f, slot)
	if err != nil {
		return err
	}

	*w = binary.LittleEndian.Uint64(buf)

	return nil
}

// Reset zeroes every bank. The result is indistinguishable from a freshly
// constructed RegFile with the same vector register count, and repeated
// calls are idempotent.
func (r *RegFile) Reset() {
	r.gpr = [GPRCount]uint64{}
	r.rflags = 0
	r.rip = 0

	for i := range r.vec {
		r.vec[i] = wideint.U512{}
	}
}
