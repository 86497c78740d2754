// Package cpulib models the architectural state of a single processor core
// for instruction-level emulation, with full-width SIMD register semantics:
// 512-bit vector registers addressed through XMM/YMM/ZMM width views,
// general-purpose registers with their sub-width aliases, the flags
// register, and the instruction pointer.
//
// The package is a state container, not an executor. An instruction loop
// owns fetch, decode, and arithmetic, and calls into the CPU context to
// read operands and write results:
//
//	cpu := cpulib.New()
//
//	_ = cpu.Registers.WriteVecBit(regs.XMM, 0, 127, true)
//	bit, _ := cpu.Registers.ReadVecBit(regs.YMM, 0, 127) // same slot: true
package cpulib

import "github.com/sarchlab/cpulib/regs"

// CPU is one core's complete architectural state snapshot. Two CPUs never
// share register storage; each is an independent, fully serializable unit
// of state.
//
// A CPU is not safe for concurrent use. Emulate independent cores with one
// CPU each; a debugger sharing a CPU with a running emulation must bring
// its own mutual exclusion.
type CPU struct {
	// Registers is the core's register file, the sole addressable
	// surface of this package. Memory, decode, and execution units
	// attach at the caller's level.
	Registers *regs.RegFile
}

// New creates a CPU with every register zeroed. Options are forwarded to
// the register file, e.g. regs.WithVecRegCount(32) for an AVX-512 sized
// vector bank.
func New(opts ...regs.Option) *CPU {
	return &CPU{
		Registers: regs.NewRegFile(opts...),
	}
}

// Reset returns every register to its zero-initialized state.
func (c *CPU) Reset() {
	c.Registers.Reset()
}
