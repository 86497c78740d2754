package wideint_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cpulib/wideint"
)

var _ = Describe("U128", func() {
	It("should zero-extend from a uint64", func() {
		u := wideint.U128FromUint64(0xDEADBEEF)

		Expect(u.Uint64()).To(Equal(uint64(0xDEADBEEF)))
		for i := 64; i < wideint.U128Bits; i++ {
			bit, err := u.Bit(i)
			Expect(err).ToNot(HaveOccurred())
			Expect(bit).To(BeFalse())
		}
	})

	It("should round-trip every bit individually", func() {
		for i := 0; i < wideint.U128Bits; i++ {
			var u wideint.U128

			Expect(u.SetBit(i, true)).To(Succeed())
			bit, err := u.Bit(i)
			Expect(err).ToNot(HaveOccurred())
			Expect(bit).To(BeTrue())

			for j := 0; j < wideint.U128Bits; j++ {
				if j == i {
					continue
				}
				other, _ := u.Bit(j)
				Expect(other).To(BeFalse())
			}

			Expect(u.SetBit(i, false)).To(Succeed())
			Expect(u.IsZero()).To(BeTrue())
		}
	})

	It("should round-trip bytes and expose them via Bytes", func() {
		var u wideint.U128

		Expect(u.SetByte(0, 0xAA)).To(Succeed())
		Expect(u.SetByte(7, 0xBB)).To(Succeed())
		Expect(u.SetByte(8, 0xCC)).To(Succeed())
		Expect(u.SetByte(15, 0xDD)).To(Succeed())

		b, err := u.Byte(8)
		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(Equal(byte(0xCC)))

		bytes := u.Bytes()
		Expect(bytes).To(HaveLen(wideint.U128Bytes))
		Expect(bytes[0]).To(Equal(byte(0xAA)))
		Expect(bytes[7]).To(Equal(byte(0xBB)))
		Expect(bytes[8]).To(Equal(byte(0xCC)))
		Expect(bytes[15]).To(Equal(byte(0xDD)))
	})

	It("should round-trip through FromBytes/Bytes", func() {
		in := make([]byte, wideint.U128Bytes)
		for i := range in {
			in[i] = byte(i*7 + 1)
		}

		u, err := wideint.U128FromBytes(in)
		Expect(err).ToNot(HaveOccurred())
		Expect(u.Bytes()).To(Equal(in))
	})

	It("should zero-extend short byte input", func() {
		u, err := wideint.U128FromBytes([]byte{0x34, 0x12})
		Expect(err).ToNot(HaveOccurred())
		Expect(u.Uint64()).To(Equal(uint64(0x1234)))
	})

	It("should reject oversized byte input", func() {
		_, err := wideint.U128FromBytes(make([]byte, wideint.U128Bytes+1))
		Expect(err).To(MatchError(wideint.ErrSizeMismatch))
	})

	It("should reject out-of-range indices", func() {
		var u wideint.U128

		_, err := u.Bit(wideint.U128Bits)
		Expect(err).To(MatchError(wideint.ErrIndexOutOfRange))
		Expect(u.SetBit(-1, true)).To(MatchError(wideint.ErrIndexOutOfRange))
		_, err = u.Byte(wideint.U128Bytes)
		Expect(err).To(MatchError(wideint.ErrIndexOutOfRange))
		Expect(u.SetByte(wideint.U128Bytes, 0)).
			To(MatchError(wideint.ErrIndexOutOfRange))
	})

	It("should wrap addition modulo 2^128", func() {
		max, err := wideint.U128FromBytes([]byte{
			0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
			0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(max.Add(wideint.U128FromUint64(1)).IsZero()).To(BeTrue())
	})

	It("should carry addition across the 64-bit limb boundary", func() {
		u := wideint.U128FromUint64(0xFFFFFFFFFFFFFFFF)
		sum := u.Add(wideint.U128FromUint64(1))

		Expect(sum.Uint64()).To(Equal(uint64(0)))
		bit, _ := sum.Bit(64)
		Expect(bit).To(BeTrue())
	})

	It("should shift across the limb boundary", func() {
		u := wideint.U128FromUint64(1).Lsh(100)

		bit, _ := u.Bit(100)
		Expect(bit).To(BeTrue())
		Expect(u.Rsh(100)).To(Equal(wideint.U128FromUint64(1)))
		Expect(u.Lsh(wideint.U128Bits).IsZero()).To(BeTrue())
	})

	It("should implement bitwise AND, OR, and XOR", func() {
		a := wideint.U128FromUint64(0b1100)
		b := wideint.U128FromUint64(0b1010)

		Expect(a.And(b).Uint64()).To(Equal(uint64(0b1000)))
		Expect(a.Or(b).Uint64()).To(Equal(uint64(0b1110)))
		Expect(a.Xor(b).Uint64()).To(Equal(uint64(0b0110)))
	})
})
