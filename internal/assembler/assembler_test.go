package assembler

import (
	"errors"
	"testing"

	"github.com/bshepherdson/z80asm/internal/diag"
	"github.com/bshepherdson/z80asm/internal/eval"
	"github.com/bshepherdson/z80asm/internal/opcode"
	"github.com/bshepherdson/z80asm/internal/token"
)

func ident(name string) token.Token   { return token.Token{Type: token.Identifier, StrValue: name} }
func dir(name string) token.Token     { return token.Token{Type: token.Directive, StrValue: name} }
func intT(v int) token.Token          { return token.Token{Type: token.Integer, IntValue: v} }
func tk(typ token.Type) token.Token   { return token.Token{Type: typ} }
func assembleOK(t *testing.T, lines []token.Line) *Result {
	t.Helper()
	res, err := Assemble(lines, opcode.DefaultTable)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	return res
}

func bytesEq(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// NOP -> [0x00].
func TestNopEmitsSingleByte(t *testing.T) {
	res := assembleOK(t, []token.Line{{ident("nop")}})
	if !bytesEq(res.Bytes, []byte{0x00}) {
		t.Errorf("got %#v, want [0x00]", res.Bytes)
	}
}

// ORG 0x100 then LD A,0x42 -> begins with [0x3E, 0x42].
func TestOrgAndLdImmediate(t *testing.T) {
	lines := []token.Line{
		{dir("org"), intT(0x100)},
		{ident("ld"), ident("a"), tk(token.Comma), intT(0x42)},
	}
	res := assembleOK(t, lines)
	if !bytesEq(res.Bytes, []byte{0x3E, 0x42}) {
		t.Errorf("got %#v, want [0x3E, 0x42]", res.Bytes)
	}
}

// label: JR label at ORG 0 -> [0x18, 0xFE].
func TestJRSelfBranch(t *testing.T) {
	lines := []token.Line{
		{ident("label"), tk(token.Colon), ident("jr"), ident("label")},
	}
	res := assembleOK(t, lines)
	if !bytesEq(res.Bytes, []byte{0x18, 0xFE}) {
		t.Errorf("got %#v, want [0x18, 0xFE]", res.Bytes)
	}
}

// .db 1, 2+3, 0x10 -> [0x01, 0x05, 0x10].
func TestDBEvaluatesEachArgument(t *testing.T) {
	lines := []token.Line{
		{dir("db"), intT(1), tk(token.Comma), intT(2), tk(token.Add), intT(3), tk(token.Comma), intT(0x10)},
	}
	res := assembleOK(t, lines)
	if !bytesEq(res.Bytes, []byte{0x01, 0x05, 0x10}) {
		t.Errorf("got %#v, want [0x01, 0x05, 0x10]", res.Bytes)
	}
}

// .dw 0x1234, 0xBEEF -> [0x34, 0x12, 0xEF, 0xBE].
func TestDWEmitsLittleEndianWords(t *testing.T) {
	lines := []token.Line{
		{dir("dw"), intT(0x1234), tk(token.Comma), intT(0xBEEF)},
	}
	res := assembleOK(t, lines)
	if !bytesEq(res.Bytes, []byte{0x34, 0x12, 0xEF, 0xBE}) {
		t.Errorf("got %#v, want [0x34, 0x12, 0xEF, 0xBE]", res.Bytes)
	}
}

// .ds 4, 0xAA -> [0xAA, 0xAA, 0xAA, 0xAA].
func TestDSFillsReservedSpace(t *testing.T) {
	lines := []token.Line{
		{dir("ds"), intT(4), tk(token.Comma), intT(0xAA)},
	}
	res := assembleOK(t, lines)
	if !bytesEq(res.Bytes, []byte{0xAA, 0xAA, 0xAA, 0xAA}) {
		t.Errorf("got %#v, want 4x0xAA", res.Bytes)
	}
}

// X = 1+2*3 then .db X -> [0x07]; Y = (1+2)*3 then .db Y -> [0x09].
func TestAssignmentHonorsOperatorPrecedence(t *testing.T) {
	lines := []token.Line{
		{ident("x"), tk(token.Assign), intT(1), tk(token.Add), intT(2), tk(token.Mult), intT(3)},
		{dir("db"), ident("x")},
	}
	res := assembleOK(t, lines)
	if !bytesEq(res.Bytes, []byte{0x07}) {
		t.Errorf("got %#v, want [0x07]", res.Bytes)
	}

	lines2 := []token.Line{
		{ident("y"), tk(token.Assign), tk(token.Paren0), intT(1), tk(token.Add), intT(2), tk(token.Paren1), tk(token.Mult), intT(3)},
		{dir("db"), ident("y")},
	}
	res2 := assembleOK(t, lines2)
	if !bytesEq(res2.Bytes, []byte{0x09}) {
		t.Errorf("got %#v, want [0x09]", res2.Bytes)
	}
}

// LD A,(IX+5) / LD A,(IX-1) -> last byte 0x05 / 0xFF.
func TestIndexDisplacementEncodesSignedOffset(t *testing.T) {
	plus := assembleOK(t, []token.Line{
		{ident("ld"), ident("a"), tk(token.Comma), tk(token.Paren0), ident("ix"), tk(token.Plus), intT(5), tk(token.Paren1)},
	})
	if len(plus.Bytes) != 3 || plus.Bytes[2] != 0x05 {
		t.Errorf("LD A,(IX+5) = %#v, want 3 bytes ending in 0x05", plus.Bytes)
	}

	minus := assembleOK(t, []token.Line{
		{ident("ld"), ident("a"), tk(token.Comma), tk(token.Paren0), ident("ix"), tk(token.Minus), intT(1), tk(token.Paren1)},
	})
	if len(minus.Bytes) != 3 || minus.Bytes[2] != 0xFF {
		t.Errorf("LD A,(IX-1) = %#v, want 3 bytes ending in 0xFF", minus.Bytes)
	}
}

// A redeclared label, an undeclared identifier, and an out-of-range operand
// each surface their typed error, wrapped with a line number.
func TestRedeclaredLabelError(t *testing.T) {
	lines := []token.Line{
		{ident("foo"), tk(token.Colon)},
		{ident("foo"), tk(token.Colon)},
	}
	_, err := Assemble(lines, opcode.DefaultTable)
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected *LineError, got %v", err)
	}
	var redecl *eval.RedeclaredSymbolError
	if !errors.As(err, &redecl) {
		t.Fatalf("expected RedeclaredSymbolError, got %v", err)
	}
}

func TestUndeclaredSymbolError(t *testing.T) {
	lines := []token.Line{
		{dir("db"), ident("nope")},
	}
	_, err := Assemble(lines, opcode.DefaultTable)
	var undecl *eval.UndeclaredSymbolError
	if !errors.As(err, &undecl) {
		t.Fatalf("expected UndeclaredSymbolError, got %v", err)
	}
}

func TestOperandRangeError(t *testing.T) {
	lines := []token.Line{
		{ident("ld"), ident("a"), tk(token.Comma), intT(0x1FF)},
	}
	_, err := Assemble(lines, opcode.DefaultTable)
	var rangeErr *opcode.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError, got %v", err)
	}
}

func TestAddressStability(t *testing.T) {
	// The label bound before an instruction equals the byte offset at which
	// that instruction begins.
	lines := []token.Line{
		{ident("nop")},
		{ident("here"), tk(token.Colon), ident("nop")},
	}
	ctx := eval.NewContext()
	queue, err := runPass1(lines, opcode.DefaultTable, ctx, diag.NewSink())
	if err != nil {
		t.Fatal(err)
	}
	v, err := ctx.GetVariable("here")
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Errorf("here = %d, want 1", v)
	}
	if len(queue) != 2 {
		t.Fatalf("expected 2 queue items, got %d", len(queue))
	}
}
