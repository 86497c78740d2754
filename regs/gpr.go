package regs

// gprSpec describes how a register name projects onto its 64-bit backing
// slot: which slot, how wide the alias is, and where it starts. Only the
// legacy high-byte names (AH..DH) use a non-zero shift.
type gprSpec struct {
	base  uint8
	bits  uint8
	shift uint8
}

var gprSpecs = [...]gprSpec{
	RAX: {0, 64, 0}, RBX: {1, 64, 0}, RCX: {2, 64, 0}, RDX: {3, 64, 0},
	RSI: {4, 64, 0}, RDI: {5, 64, 0}, RBP: {6, 64, 0}, RSP: {7, 64, 0},
	R8: {8, 64, 0}, R9: {9, 64, 0}, R10: {10, 64, 0}, R11: {11, 64, 0},
	R12: {12, 64, 0}, R13: {13, 64, 0}, R14: {14, 64, 0}, R15: {15, 64, 0},

	EAX: {0, 32, 0}, EBX: {1, 32, 0}, ECX: {2, 32, 0}, EDX: {3, 32, 0},
	ESI: {4, 32, 0}, EDI: {5, 32, 0}, EBP: {6, 32, 0}, ESP: {7, 32, 0},
	R8D: {8, 32, 0}, R9D: {9, 32, 0}, R10D: {10, 32, 0}, R11D: {11, 32, 0},
	R12D: {12, 32, 0}, R13D: {13, 32, 0}, R14D: {14, 32, 0}, R15D: {15, 32, 0},

	AX: {0, 16, 0}, BX: {1, 16, 0}, CX: {2, 16, 0}, DX: {3, 16, 0},
	SI: {4, 16, 0}, DI: {5, 16, 0}, BP: {6, 16, 0}, SP: {7, 16, 0},
	R8W: {8, 16, 0}, R9W: {9, 16, 0}, R10W: {10, 16, 0}, R11W: {11, 16, 0},
	R12W: {12, 16, 0}, R13W: {13, 16, 0}, R14W: {14, 16, 0}, R15W: {15, 16, 0},

	AH: {0, 8, 8}, BH: {1, 8, 8}, CH: {2, 8, 8}, DH: {3, 8, 8},
	AL: {0, 8, 0}, BL: {1, 8, 0}, CL: {2, 8, 0}, DL: {3, 8, 0},
	SIL: {4, 8, 0}, DIL: {5, 8, 0}, BPL: {6, 8, 0}, SPL: {7, 8, 0},
	R8B: {8, 8, 0}, R9B: {9, 8, 0}, R10B: {10, 8, 0}, R11B: {11, 8, 0},
	R12B: {12, 8, 0}, R13B: {13, 8, 0}, R14B: {14, 8, 0}, R15B: {15, 8, 0},
}

func widthMask(bits uint8) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}

	return 1<<bits - 1
}

// ReadGPR reads the register at its named alias width. Sub-width names
// return only the bits the alias covers, shifted down to bit 0. Unknown
// names read as 0.
func (r *RegFile) ReadGPR(n GPRName) uint64 {
	if int(n) >= len(gprSpecs) {
		return 0
	}

	s := gprSpecs[n]

	return r.gpr[s.base] >> s.shift & widthMask(s.bits)
}

// WriteGPR writes the register at its named alias width. Bits of the
// backing slot outside the alias keep their previous value, for the 32-bit
// names too; callers wanting zero-extension write the 64-bit name with a
// zero-extended value. Writes through unknown names are ignored.
func (r *RegFile) WriteGPR(n GPRName, v uint64) {
	if int(n) >= len(gprSpecs) {
		return
	}

	s := gprSpecs[n]
	mask := widthMask(s.bits) << s.shift
	r.gpr[s.base] = r.gpr[s.base]&^mask | v<<s.shift&mask
}
