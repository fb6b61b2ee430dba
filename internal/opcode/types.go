// Package opcode classifies operand token spans into Z80 operand categories
// and encodes them to the integer ParamVal the instruction table expects.
package opcode

// ParamType is the closed enum of Z80 operand categories.
type ParamType int

const (
	None ParamType = iota

	// Reg8 covers the eight-way "r" group shared by LD r,r' / ALU r / INC r
	// etc: b,c,d,e,h,l,(hl),a, in that order (the standard Z80 bit pattern).
	Reg8
	// RegSS is the four-way 16-bit "ss" group used by ADD HL,ss / INC ss /
	// LD ss,nn: bc,de,hl,sp.
	RegSS
	// RegQQ is the four-way "qq" group used by PUSH/POP: bc,de,hl,af.
	RegQQ
	// CondCC8 is the eight-way condition group used by JP/CALL/RET.
	CondCC8
	// CondCC4 is the four-way condition group used by JR/DJNZ-adjacent JR cc.
	CondCC4

	RegA // the accumulator alone, for forms where only A is legal (ADD A,r is
	// expressed via Reg8's second operand, but "LD A,(BC)" etc need A alone).
	RegHLreg // bare "hl", for LD SP,HL / EX DE,HL
	RegDEreg // bare "de", for EX DE,HL
	RegAFreg // bare "af", for EX AF,AF'
	RegSPreg // bare "sp", for LD SP,HL
	RegIXreg // bare "ix"
	RegIYreg // bare "iy"

	AFp // AF'

	// One-token indirections, from ParamValTable_d.
	IndBC // (bc)
	IndDE // (de)
	IndHL // (hl) used as an address operand (not the Reg8 slot)
	IndSP // (sp), used by EX (SP),HL

	IXd // (ix+d)
	IYd // (iy+d)

	Nd  // (n) — port-style 8-bit indirection
	NNd // (nn) — 16-bit immediate-address indirection

	N    // 8-bit immediate
	NN   // 16-bit immediate
	D    // 8-bit signed displacement (bare, before an IXd/IYd indirection)
	B    // bit index 0..7
	E    // 8-bit signed PC-relative offset
	IMn  // interrupt mode index
	RSTn // RST target
)

var typeNames = map[ParamType]string{
	None: "none", Reg8: "r", RegSS: "ss", RegQQ: "qq", CondCC8: "cc8", CondCC4: "cc4",
	RegA: "A", RegHLreg: "HL", RegSPreg: "SP", RegIXreg: "IX", RegIYreg: "IY",
	AFp:   "AF'",
	IndBC: "(BC)", IndDE: "(DE)", IndHL: "(HL)", IndSP: "(SP)",
	IXd: "(IX+d)", IYd: "(IY+d)",
	Nd: "(n)", NNd: "(nn)",
	N: "n", NN: "nn", D: "d", B: "b", E: "e", IMn: "IMn", RSTn: "RSTn",
}

func (p ParamType) String() string {
	if s, ok := typeNames[p]; ok {
		return s
	}
	return "unknown ParamType"
}

// ParamVal is the single integer an operand encodes to once the Resolver has
// picked its ParamType.
type ParamVal int

// OpCode is one row of the instruction table.
type OpCode struct {
	Mnemonic string
	Pt0, Pt1 ParamType
	Size     int
	Emit     func(p0, p1 ParamVal) []byte
}

// Table is a multi-map from mnemonic to its OpCode rows, in the order the
// Resolver must try them (more specific rows first).
type Table []OpCode

// Lookup returns the rows sharing mnemonic, in table order.
func (t Table) Lookup(mnemonic string) []OpCode {
	var rows []OpCode
	for _, row := range t {
		if row.Mnemonic == mnemonic {
			rows = append(rows, row)
		}
	}
	return rows
}

// ParamValTable maps a register/condition-group ParamType to the ordered
// list of identifier names whose positional index is the encoded ParamVal.
var ParamValTable = map[ParamType][]string{
	// (hl) shares r-index 6 in the real encoding but is never a single
	// Identifier token, so it's classified as IndHL instead; OpCode rows that
	// need the (hl) form add it as a separate row with index 6 fixed in.
	Reg8:     {"b", "c", "d", "e", "h", "l", "", "a"},
	RegSS:    {"bc", "de", "hl", "sp"},
	RegQQ:    {"bc", "de", "hl", "af"},
	CondCC8:  {"nz", "z", "nc", "c", "po", "pe", "p", "m"},
	CondCC4:  {"nz", "z", "nc", "c"},
	RegA:     {"a"},
	RegHLreg: {"hl"},
	RegDEreg: {"de"},
	RegAFreg: {"af"},
	RegSPreg: {"sp"},
	RegIXreg: {"ix"},
	RegIYreg: {"iy"},
}

// ParamValTable_d is ParamValTable's counterpart for one-token indirections
// like "(hl)" or "(bc)": each entry matches exactly one name.
var ParamValTable_d = map[ParamType]string{
	IndBC: "bc",
	IndDE: "de",
	IndHL: "hl",
	IndSP: "sp",
}

// NumberParamTypes is the set of ParamTypes classified as numeric: any bare
// integer-bearing leading token could be any of these, pending the Resolver
// picking one to match an OpCode row.
var NumberParamTypes = []ParamType{N, NN, D, B, E, IMn, RSTn}

func validNumberParam(pt ParamType, v int) bool {
	switch pt {
	case N, Nd:
		return v >= -128 && v <= 255
	case NN, NNd:
		return v >= -32768 && v <= 65535
	case D:
		return v >= -128 && v <= 127
	case B:
		return v >= 0 && v <= 7
	case E:
		return v >= -128 && v <= 127
	case IMn:
		return v == 0 || v == 1 || v == 2
	case RSTn:
		switch v {
		case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
			return true
		}
		return false
	}
	return false
}
