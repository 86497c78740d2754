package regs_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cpulib/regs"
)

var _ = Describe("GPR Bank", func() {
	var rf *regs.RegFile

	BeforeEach(func() {
		rf = regs.NewRegFile()
	})

	It("should read and write full-width registers", func() {
		rf.WriteGPR(regs.RAX, 0xFFFFFFFFFFFF0000)
		Expect(rf.ReadGPR(regs.RAX)).To(Equal(uint64(0xFFFFFFFFFFFF0000)))

		rf.WriteGPR(regs.R15, 42)
		Expect(rf.ReadGPR(regs.R15)).To(Equal(uint64(42)))
		Expect(rf.ReadGPR(regs.RAX)).To(Equal(uint64(0xFFFFFFFFFFFF0000)))
	})

	It("should merge low-byte writes into the backing register", func() {
		rf.WriteGPR(regs.RAX, 0xFFFFFFFFFFFF0000)
		rf.WriteGPR(regs.AL, 0xFF)

		Expect(rf.ReadGPR(regs.RAX)).To(Equal(uint64(0xFFFFFFFFFFFF00FF)))
		Expect(rf.ReadGPR(regs.AL)).To(Equal(uint64(0xFF)))
	})

	It("should address bits 15:8 through the high-byte names", func() {
		rf.WriteGPR(regs.RBX, 0x1122334455667788)

		Expect(rf.ReadGPR(regs.BH)).To(Equal(uint64(0x77)))
		Expect(rf.ReadGPR(regs.BL)).To(Equal(uint64(0x88)))

		rf.WriteGPR(regs.BH, 0xAB)
		Expect(rf.ReadGPR(regs.RBX)).To(Equal(uint64(0x112233445566AB88)))
	})

	It("should preserve upper bits on 16-bit writes", func() {
		rf.WriteGPR(regs.RCX, 0xAAAAAAAAAAAAAAAA)
		rf.WriteGPR(regs.CX, 0x1234)

		Expect(rf.ReadGPR(regs.RCX)).To(Equal(uint64(0xAAAAAAAAAAAA1234)))
		Expect(rf.ReadGPR(regs.CX)).To(Equal(uint64(0x1234)))
	})

	It("should preserve upper bits on 32-bit writes", func() {
		rf.WriteGPR(regs.RDX, 0xAAAAAAAA55555555)
		rf.WriteGPR(regs.EDX, 0x12345678)

		Expect(rf.ReadGPR(regs.RDX)).To(Equal(uint64(0xAAAAAAAA12345678)))
		Expect(rf.ReadGPR(regs.EDX)).To(Equal(uint64(0x12345678)))
	})

	It("should mask oversized values to the alias width", func() {
		rf.WriteGPR(regs.SIL, 0xFFFF)
		Expect(rf.ReadGPR(regs.RSI)).To(Equal(uint64(0xFF)))
	})

	It("should keep extended registers independent of legacy ones", func() {
		rf.WriteGPR(regs.R8, 0x8888888888888888)
		rf.WriteGPR(regs.R8W, 0x0101)

		Expect(rf.ReadGPR(regs.R8)).To(Equal(uint64(0x8888888888880101)))
		Expect(rf.ReadGPR(regs.R8D)).To(Equal(uint64(0x88880101)))
		Expect(rf.ReadGPR(regs.R8B)).To(Equal(uint64(0x01)))
		Expect(rf.ReadGPR(regs.RAX)).To(Equal(uint64(0)))
	})
})

var _ = Describe("Flags and Instruction Pointer", func() {
	var rf *regs.RegFile

	BeforeEach(func() {
		rf = regs.NewRegFile()
	})

	It("should set and clear individual flags", func() {
		rf.WriteFlag(regs.CF, true)
		rf.WriteFlag(regs.ZF, true)
		rf.WriteFlag(regs.OF, true)

		Expect(rf.ReadFlag(regs.CF)).To(BeTrue())
		Expect(rf.ReadFlag(regs.ZF)).To(BeTrue())
		Expect(rf.ReadFlag(regs.OF)).To(BeTrue())
		Expect(rf.ReadFlag(regs.SF)).To(BeFalse())
		Expect(rf.Flags()).To(Equal(uint64(1<<0 | 1<<6 | 1<<11)))

		rf.WriteFlag(regs.ZF, false)
		Expect(rf.ReadFlag(regs.ZF)).To(BeFalse())
		Expect(rf.ReadFlag(regs.CF)).To(BeTrue())
	})

	It("should keep reserved flag bits as last written", func() {
		rf.SetFlags(0xFFFF0002)
		rf.WriteFlag(regs.CF, true)

		Expect(rf.Flags()).To(Equal(uint64(0xFFFF0003)))
	})

	It("should project the instruction pointer onto its aliases", func() {
		rf.WriteIP(regs.RIP, 0x1122334455667788)

		Expect(rf.ReadIP(regs.RIP)).To(Equal(uint64(0x1122334455667788)))
		Expect(rf.ReadIP(regs.EIP)).To(Equal(uint64(0x55667788)))
		Expect(rf.ReadIP(regs.IP)).To(Equal(uint64(0x7788)))
	})

	It("should preserve upper bits on narrow IP writes", func() {
		rf.WriteIP(regs.RIP, 0x1122334455667788)
		rf.WriteIP(regs.EIP, 0xDEADBEEF)

		Expect(rf.ReadIP(regs.RIP)).To(Equal(uint64(0x11223344DEADBEEF)))

		rf.WriteIP(regs.IP, 0x0042)
		Expect(rf.ReadIP(regs.RIP)).To(Equal(uint64(0x11223344DEAD0042)))
	})
})
