package opcode

// le16 appends the little-endian bytes of a 16-bit value.
func le16(v ParamVal) []byte {
	u := uint16(v)
	return []byte{byte(u), byte(u >> 8)}
}

func u8(v ParamVal) byte { return byte(int(v) & 0xff) }

func opVoidRow(mnemonic string, b byte) OpCode {
	return OpCode{Mnemonic: mnemonic, Pt0: None, Pt1: None, Size: 1,
		Emit: func(ParamVal, ParamVal) []byte { return []byte{b} }}
}

// DefaultTable is the concrete Z80 instruction table shipped with the
// assembler core. Its rows use every ParamType except D (a displacement only
// ever appears inside an (ix+d)/(iy+d) operand) and the bare RegIXreg and
// RegIYreg registers.
var DefaultTable = Table{
	opVoidRow("nop", 0x00),
	opVoidRow("halt", 0x76),
	opVoidRow("di", 0xF3),
	opVoidRow("ei", 0xFB),
	opVoidRow("rlca", 0x07),
	opVoidRow("rrca", 0x0F),
	opVoidRow("rla", 0x17),
	opVoidRow("rra", 0x1F),
	opVoidRow("daa", 0x27),
	opVoidRow("cpl", 0x2F),
	opVoidRow("scf", 0x37),
	opVoidRow("ccf", 0x3F),
	opVoidRow("exx", 0xD9),
	opVoidRow("ret", 0xC9),

	// LD r,r' / LD r,(HL) / LD (HL),r. The (HL) forms fix the missing side's
	// index at 6 instead of reading it off a ParamVal, since (hl) classifies
	// as IndHL rather than Reg8.
	{Mnemonic: "ld", Pt0: Reg8, Pt1: Reg8, Size: 1, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0x40 | byte(p0)<<3 | byte(p1)}
	}},
	{Mnemonic: "ld", Pt0: Reg8, Pt1: IndHL, Size: 1, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0x40 | byte(p0)<<3 | 6}
	}},
	{Mnemonic: "ld", Pt0: IndHL, Pt1: Reg8, Size: 1, Emit: func(_, p1 ParamVal) []byte {
		return []byte{0x40 | 6<<3 | byte(p1)}
	}},
	{Mnemonic: "ld", Pt0: Reg8, Pt1: N, Size: 2, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0x06 | byte(p0)<<3, u8(p1)}
	}},
	{Mnemonic: "ld", Pt0: RegA, Pt1: IndBC, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0x0A} }},
	{Mnemonic: "ld", Pt0: IndBC, Pt1: RegA, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0x02} }},
	{Mnemonic: "ld", Pt0: RegA, Pt1: IndDE, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0x1A} }},
	{Mnemonic: "ld", Pt0: IndDE, Pt1: RegA, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0x12} }},
	{Mnemonic: "ld", Pt0: RegA, Pt1: NNd, Size: 3, Emit: func(_, p1 ParamVal) []byte {
		return append([]byte{0x3A}, le16(p1)...)
	}},
	{Mnemonic: "ld", Pt0: NNd, Pt1: RegA, Size: 3, Emit: func(p0, _ ParamVal) []byte {
		return append([]byte{0x32}, le16(p0)...)
	}},
	{Mnemonic: "ld", Pt0: RegSS, Pt1: NN, Size: 3, Emit: func(p0, p1 ParamVal) []byte {
		return append([]byte{0x01 | byte(p0)<<4}, le16(p1)...)
	}},
	{Mnemonic: "ld", Pt0: RegHLreg, Pt1: NNd, Size: 3, Emit: func(_, p1 ParamVal) []byte {
		return append([]byte{0x2A}, le16(p1)...)
	}},
	{Mnemonic: "ld", Pt0: NNd, Pt1: RegHLreg, Size: 3, Emit: func(p0, _ ParamVal) []byte {
		return append([]byte{0x22}, le16(p0)...)
	}},
	{Mnemonic: "ld", Pt0: RegSPreg, Pt1: RegHLreg, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0xF9} }},
	{Mnemonic: "ld", Pt0: Reg8, Pt1: IXd, Size: 3, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0xDD, 0x46 | byte(p0)<<3, u8(p1)}
	}},
	{Mnemonic: "ld", Pt0: IXd, Pt1: Reg8, Size: 3, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0xDD, 0x70 | byte(p1), u8(p0)}
	}},
	{Mnemonic: "ld", Pt0: Reg8, Pt1: IYd, Size: 3, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0xFD, 0x46 | byte(p0)<<3, u8(p1)}
	}},
	{Mnemonic: "ld", Pt0: IYd, Pt1: Reg8, Size: 3, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0xFD, 0x70 | byte(p1), u8(p0)}
	}},

	// PUSH/POP.
	{Mnemonic: "push", Pt0: RegQQ, Pt1: None, Size: 1, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0xC5 | byte(p0)<<4}
	}},
	{Mnemonic: "pop", Pt0: RegQQ, Pt1: None, Size: 1, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0xC1 | byte(p0)<<4}
	}},

	// EX.
	{Mnemonic: "ex", Pt0: RegDEreg, Pt1: RegHLreg, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0xEB} }},
	{Mnemonic: "ex", Pt0: RegAFreg, Pt1: AFp, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0x08} }},
	{Mnemonic: "ex", Pt0: IndSP, Pt1: RegHLreg, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0xE3} }},

	// ALU r / n / (HL), and HL-pair ADD/ADC/SBC.
	aluReg("add", 0x80), aluImm("add", 0xC6), aluHL("add", 0x80),
	aluReg("adc", 0x88), aluImm("adc", 0xCE), aluHL("adc", 0x88),
	aluReg("sub", 0x90), aluImm("sub", 0xD6), aluHL("sub", 0x90),
	aluReg("sbc", 0x98), aluImm("sbc", 0xDE), aluHL("sbc", 0x98),
	aluReg("and", 0xA0), aluImm("and", 0xE6), aluHL("and", 0xA0),
	aluReg("xor", 0xA8), aluImm("xor", 0xEE), aluHL("xor", 0xA8),
	aluReg("or", 0xB0), aluImm("or", 0xF6), aluHL("or", 0xB0),
	aluReg("cp", 0xB8), aluImm("cp", 0xFE), aluHL("cp", 0xB8),

	{Mnemonic: "add", Pt0: RegHLreg, Pt1: RegSS, Size: 1, Emit: func(_, p1 ParamVal) []byte {
		return []byte{0x09 | byte(p1)<<4}
	}},
	{Mnemonic: "adc", Pt0: RegHLreg, Pt1: RegSS, Size: 2, Emit: func(_, p1 ParamVal) []byte {
		return []byte{0xED, 0x4A | byte(p1)<<4}
	}},
	{Mnemonic: "sbc", Pt0: RegHLreg, Pt1: RegSS, Size: 2, Emit: func(_, p1 ParamVal) []byte {
		return []byte{0xED, 0x42 | byte(p1)<<4}
	}},

	// INC/DEC.
	{Mnemonic: "inc", Pt0: Reg8, Pt1: None, Size: 1, Emit: func(p0, _ ParamVal) []byte { return []byte{0x04 | byte(p0)<<3} }},
	{Mnemonic: "inc", Pt0: IndHL, Pt1: None, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0x34} }},
	{Mnemonic: "dec", Pt0: Reg8, Pt1: None, Size: 1, Emit: func(p0, _ ParamVal) []byte { return []byte{0x05 | byte(p0)<<3} }},
	{Mnemonic: "dec", Pt0: IndHL, Pt1: None, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0x35} }},
	{Mnemonic: "inc", Pt0: RegSS, Pt1: None, Size: 1, Emit: func(p0, _ ParamVal) []byte { return []byte{0x03 | byte(p0)<<4} }},
	{Mnemonic: "dec", Pt0: RegSS, Pt1: None, Size: 1, Emit: func(p0, _ ParamVal) []byte { return []byte{0x0B | byte(p0)<<4} }},

	// CB-prefixed rotate/shift group.
	cbReg("rlc", 0x00), cbHL("rlc", 0x00),
	cbReg("rrc", 0x08), cbHL("rrc", 0x08),
	cbReg("rl", 0x10), cbHL("rl", 0x10),
	cbReg("rr", 0x18), cbHL("rr", 0x18),
	cbReg("sla", 0x20), cbHL("sla", 0x20),
	cbReg("sra", 0x28), cbHL("sra", 0x28),
	cbReg("srl", 0x38), cbHL("srl", 0x38),

	{Mnemonic: "bit", Pt0: B, Pt1: Reg8, Size: 2, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0xCB, 0x40 | byte(p0)<<3 | byte(p1)}
	}},
	{Mnemonic: "bit", Pt0: B, Pt1: IndHL, Size: 2, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0xCB, 0x40 | byte(p0)<<3 | 6}
	}},
	{Mnemonic: "set", Pt0: B, Pt1: Reg8, Size: 2, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0xCB, 0xC0 | byte(p0)<<3 | byte(p1)}
	}},
	{Mnemonic: "set", Pt0: B, Pt1: IndHL, Size: 2, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0xCB, 0xC0 | byte(p0)<<3 | 6}
	}},
	{Mnemonic: "res", Pt0: B, Pt1: Reg8, Size: 2, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0xCB, 0x80 | byte(p0)<<3 | byte(p1)}
	}},
	{Mnemonic: "res", Pt0: B, Pt1: IndHL, Size: 2, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0xCB, 0x80 | byte(p0)<<3 | 6}
	}},

	// Jumps, calls, returns.
	{Mnemonic: "jp", Pt0: NN, Pt1: None, Size: 3, Emit: func(p0, _ ParamVal) []byte {
		return append([]byte{0xC3}, le16(p0)...)
	}},
	{Mnemonic: "jp", Pt0: CondCC8, Pt1: NN, Size: 3, Emit: func(p0, p1 ParamVal) []byte {
		return append([]byte{0xC2 | byte(p0)<<3}, le16(p1)...)
	}},
	{Mnemonic: "jp", Pt0: IndHL, Pt1: None, Size: 1, Emit: func(ParamVal, ParamVal) []byte { return []byte{0xE9} }},
	{Mnemonic: "jr", Pt0: E, Pt1: None, Size: 2, Emit: func(p0, _ ParamVal) []byte { return []byte{0x18, u8(p0)} }},
	{Mnemonic: "jr", Pt0: CondCC4, Pt1: E, Size: 2, Emit: func(p0, p1 ParamVal) []byte {
		return []byte{0x20 | byte(p0)<<3, u8(p1)}
	}},
	{Mnemonic: "djnz", Pt0: E, Pt1: None, Size: 2, Emit: func(p0, _ ParamVal) []byte { return []byte{0x10, u8(p0)} }},
	{Mnemonic: "call", Pt0: NN, Pt1: None, Size: 3, Emit: func(p0, _ ParamVal) []byte {
		return append([]byte{0xCD}, le16(p0)...)
	}},
	{Mnemonic: "call", Pt0: CondCC8, Pt1: NN, Size: 3, Emit: func(p0, p1 ParamVal) []byte {
		return append([]byte{0xC4 | byte(p0)<<3}, le16(p1)...)
	}},
	{Mnemonic: "ret", Pt0: CondCC8, Pt1: None, Size: 1, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0xC0 | byte(p0)<<3}
	}},
	{Mnemonic: "rst", Pt0: RSTn, Pt1: None, Size: 1, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0xC7 | byte(p0)}
	}},

	// Port I/O.
	{Mnemonic: "in", Pt0: RegA, Pt1: Nd, Size: 2, Emit: func(_, p1 ParamVal) []byte { return []byte{0xDB, u8(p1)} }},
	{Mnemonic: "out", Pt0: Nd, Pt1: RegA, Size: 2, Emit: func(p0, _ ParamVal) []byte { return []byte{0xD3, u8(p0)} }},

	// Interrupt mode.
	{Mnemonic: "im", Pt0: IMn, Pt1: None, Size: 2, Emit: func(p0, _ ParamVal) []byte {
		switch p0 {
		case 1:
			return []byte{0xED, 0x56}
		case 2:
			return []byte{0xED, 0x5E}
		default:
			return []byte{0xED, 0x46}
		}
	}},
}

func aluReg(mnemonic string, base byte) OpCode {
	return OpCode{Mnemonic: mnemonic, Pt0: RegA, Pt1: Reg8, Size: 1, Emit: func(_, p1 ParamVal) []byte {
		return []byte{base | byte(p1)}
	}}
}

func aluImm(mnemonic string, opc byte) OpCode {
	return OpCode{Mnemonic: mnemonic, Pt0: RegA, Pt1: N, Size: 2, Emit: func(_, p1 ParamVal) []byte {
		return []byte{opc, u8(p1)}
	}}
}

func aluHL(mnemonic string, base byte) OpCode {
	return OpCode{Mnemonic: mnemonic, Pt0: RegA, Pt1: IndHL, Size: 1, Emit: func(ParamVal, ParamVal) []byte {
		return []byte{base | 6}
	}}
}

func cbReg(mnemonic string, base byte) OpCode {
	return OpCode{Mnemonic: mnemonic, Pt0: Reg8, Pt1: None, Size: 2, Emit: func(p0, _ ParamVal) []byte {
		return []byte{0xCB, base | byte(p0)}
	}}
}

func cbHL(mnemonic string, base byte) OpCode {
	return OpCode{Mnemonic: mnemonic, Pt0: IndHL, Pt1: None, Size: 2, Emit: func(ParamVal, ParamVal) []byte {
		return []byte{0xCB, base | 6}
	}}
}
