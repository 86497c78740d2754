package regs

// ReadFlag returns the named condition bit of the flags register.
func (r *RegFile) ReadFlag(n FLAGSName) bool {
	bit := n.Bit()
	if bit < 0 {
		return false
	}

	return r.rflags>>uint(bit)&1 == 1
}

// WriteFlag sets the named condition bit of the flags register. Writes
// through unknown names are ignored.
func (r *RegFile) WriteFlag(n FLAGSName, v bool) {
	bit := n.Bit()
	if bit < 0 {
		return
	}

	mask := uint64(1) << uint(bit)
	if v {
		r.rflags |= mask
	} else {
		r.rflags &^= mask
	}
}

// Flags returns the raw 64-bit flags value. Reserved bits hold whatever was
// last written to them.
func (r *RegFile) Flags() uint64 {
	return r.rflags
}

// SetFlags replaces the raw 64-bit flags value, reserved bits included.
func (r *RegFile) SetFlags(v uint64) {
	r.rflags = v
}

// ReadIP reads the instruction pointer at the named alias width.
func (r *RegFile) ReadIP(n IPName) uint64 {
	bits := n.Bits()
	if bits == 0 {
		return 0
	}

	return r.rip & widthMask(uint8(bits))
}

// WriteIP writes the instruction pointer at the named alias width. Bits
// above the alias keep their previous value. Writes through unknown names
// are ignored.
func (r *RegFile) WriteIP(n IPName, v uint64) {
	bits := n.Bits()
	if bits == 0 {
		return
	}

	mask := widthMask(uint8(bits))
	r.rip = r.rip&^mask | v&mask
}
