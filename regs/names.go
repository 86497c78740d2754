// Package regs models the architectural register state of an x86-64 style
// core: general-purpose registers with their 8/16/32-bit aliases, the flags
// register, the instruction pointer, and a bank of 512-bit vector registers
// addressed through XMM/YMM/ZMM width views.
//
// The package holds state only. Instruction decoding and arithmetic live in
// the layer driving the register file; every accessor here is a plain
// in-memory read or read-modify-write.
package regs

import "fmt"

// GPRName identifies a general-purpose register at one of its alias widths.
// Names of the same base register (for example RAX, EAX, AX, AH, AL) address
// overlapping slices of a single 64-bit storage slot.
type GPRName uint8

// General-purpose register names. The 64-bit names double as storage slot
// indices: RAX..R15 are slots 0..15.
const (
	// 64-bit registers.
	RAX GPRName = iota
	RBX
	RCX
	RDX
	RSI
	RDI
	RBP
	RSP
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	// 32-bit aliases.
	EAX
	EBX
	ECX
	EDX
	ESI
	EDI
	EBP
	ESP
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D
	// 16-bit aliases.
	AX
	BX
	CX
	DX
	SI
	DI
	BP
	SP
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W
	// 8-bit aliases. AH..DH address bits 15:8 of their slot.
	AH
	BH
	CH
	DH
	AL
	BL
	CL
	DL
	SIL
	DIL
	BPL
	SPL
	R8B
	R9B
	R10B
	R11B
	R12B
	R13B
	R14B
	R15B
)

var gprNameStrings = [...]string{
	RAX: "RAX", RBX: "RBX", RCX: "RCX", RDX: "RDX",
	RSI: "RSI", RDI: "RDI", RBP: "RBP", RSP: "RSP",
	R8: "R8", R9: "R9", R10: "R10", R11: "R11",
	R12: "R12", R13: "R13", R14: "R14", R15: "R15",
	EAX: "EAX", EBX: "EBX", ECX: "ECX", EDX: "EDX",
	ESI: "ESI", EDI: "EDI", EBP: "EBP", ESP: "ESP",
	R8D: "R8D", R9D: "R9D", R10D: "R10D", R11D: "R11D",
	R12D: "R12D", R13D: "R13D", R14D: "R14D", R15D: "R15D",
	AX: "AX", BX: "BX", CX: "CX", DX: "DX",
	SI: "SI", DI: "DI", BP: "BP", SP: "SP",
	R8W: "R8W", R9W: "R9W", R10W: "R10W", R11W: "R11W",
	R12W: "R12W", R13W: "R13W", R14W: "R14W", R15W: "R15W",
	AH: "AH", BH: "BH", CH: "CH", DH: "DH",
	AL: "AL", BL: "BL", CL: "CL", DL: "DL",
	SIL: "SIL", DIL: "DIL", BPL: "BPL", SPL: "SPL",
	R8B: "R8B", R9B: "R9B", R10B: "R10B", R11B: "R11B",
	R12B: "R12B", R13B: "R13B", R14B: "R14B", R15B: "R15B",
}

func (n GPRName) String() string {
	if int(n) < len(gprNameStrings) {
		return gprNameStrings[n]
	}

	return fmt.Sprintf("GPRName(%d)", uint8(n))
}

// Bits returns the alias width of the name: 8, 16, 32, or 64.
func (n GPRName) Bits() int {
	if int(n) >= len(gprSpecs) {
		return 0
	}

	return int(gprSpecs[n].bits)
}

// FLAGSName identifies a single architectural bit of the flags register.
type FLAGSName uint8

// Flag bits, in ascending bit-position order.
const (
	CF FLAGSName = iota // carry
	PF                  // parity
	AF                  // auxiliary carry
	ZF                  // zero
	SF                  // sign
	TF                  // trap
	IF                  // interrupt enable
	DF                  // direction
	OF                  // overflow
)

// flagBits maps each flag name to its RFLAGS bit position.
var flagBits = [...]int{
	CF: 0, PF: 2, AF: 4, ZF: 6, SF: 7, TF: 8, IF: 9, DF: 10, OF: 11,
}

var flagStrings = [...]string{
	CF: "CF", PF: "PF", AF: "AF", ZF: "ZF", SF: "SF",
	TF: "TF", IF: "IF", DF: "DF", OF: "OF",
}

// Bit returns the flag's bit position within the flags register.
func (n FLAGSName) Bit() int {
	if int(n) >= len(flagBits) {
		return -1
	}

	return flagBits[n]
}

func (n FLAGSName) String() string {
	if int(n) < len(flagStrings) {
		return flagStrings[n]
	}

	return fmt.Sprintf("FLAGSName(%d)", uint8(n))
}

// IPName identifies the instruction pointer at one of its alias widths.
type IPName uint8

// Instruction pointer names.
const (
	RIP IPName = iota // 64-bit
	EIP               // 32-bit
	IP                // 16-bit
)

// Bits returns the alias width of the name.
func (n IPName) Bits() int {
	switch n {
	case RIP:
		return 64
	case EIP:
		return 32
	case IP:
		return 16
	}

	return 0
}

func (n IPName) String() string {
	switch n {
	case RIP:
		return "RIP"
	case EIP:
		return "EIP"
	case IP:
		return "IP"
	}

	return fmt.Sprintf("IPName(%d)", uint8(n))
}

// VecRegName identifies the width view through which a vector register is
// addressed. All three views of a slot share one 512-bit backing store; the
// narrower views cover its low-order bits.
type VecRegName uint8

// Vector register width views.
const (
	XMM VecRegName = iota // 128-bit
	YMM                   // 256-bit
	ZMM                   // 512-bit
)

// Bits returns the view's width in bits.
func (n VecRegName) Bits() int {
	return 128 << n
}

func (n VecRegName) String() string {
	switch n {
	case XMM:
		return "XMM"
	case YMM:
		return "YMM"
	case ZMM:
		return "ZMM"
	}

	return fmt.Sprintf("VecRegName(%d)", uint8(n))
}

// Family discriminates the register banks addressable through the uniform
// (family, slot, index) surface of RegFile. The vector families carry the
// alias width, so bit and byte indices are interpreted relative to that
// width and projected onto the shared 512-bit slot.
type Family uint8

// Register families.
const (
	FamilyGPR Family = iota
	FamilyFLAGS
	FamilyIP
	FamilyXMM
	FamilyYMM
	FamilyZMM
)

// Family returns the uniform-surface family for the vector width view.
func (n VecRegName) Family() Family {
	return FamilyXMM + Family(n)
}

func (f Family) isVec() bool {
	return f >= FamilyXMM && f <= FamilyZMM
}

func (f Family) vecName() VecRegName {
	return VecRegName(f - FamilyXMM)
}

// Bits returns the family's addressable alias width in bits.
func (f Family) Bits() int {
	switch f {
	case FamilyGPR, FamilyFLAGS, FamilyIP:
		return 64
	case FamilyXMM, FamilyYMM, FamilyZMM:
		return f.vecName().Bits()
	}

	return 0
}

func (f Family) String() string {
	switch f {
	case FamilyGPR:
		return "GPR"
	case FamilyFLAGS:
		return "FLAGS"
	case FamilyIP:
		return "IP"
	case FamilyXMM, FamilyYMM, FamilyZMM:
		return f.vecName().String()
	}

	return fmt.Sprintf("Family(%d)", uint8(f))
}
