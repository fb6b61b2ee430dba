package lex

import (
	"testing"

	"github.com/bshepherdson/z80asm/internal/eval"
	"github.com/bshepherdson/z80asm/internal/opcode"
	"github.com/bshepherdson/z80asm/internal/token"
)

func TestScanOrgLdJrDb(t *testing.T) {
	lines, err := Scan(".org 0x100\nld a,5\njr loop\n.db 1,2")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	org := lines[0]
	if len(org) != 2 || org[0].Type != token.Directive || org[0].StrValue != "org" {
		t.Errorf("org line = %v", org)
	}
	if org[1].Type != token.Integer || org[1].IntValue != 0x100 {
		t.Errorf("org operand = %v, want 0x100", org[1])
	}

	ld := lines[1]
	wantLd := []token.Type{token.Identifier, token.Identifier, token.Comma, token.Integer}
	if len(ld) != len(wantLd) {
		t.Fatalf("ld line = %v", ld)
	}
	for i, typ := range wantLd {
		if ld[i].Type != typ {
			t.Errorf("ld[%d].Type = %s, want %s", i, ld[i].Type, typ)
		}
	}
	if ld[0].StrValue != "ld" || ld[1].StrValue != "a" {
		t.Errorf("ld line = %v", ld)
	}

	jr := lines[2]
	if len(jr) != 2 || jr[0].StrValue != "jr" || jr[1].StrValue != "loop" {
		t.Errorf("jr line = %v", jr)
	}

	db := lines[3]
	wantDb := []token.Type{token.Directive, token.Integer, token.Comma, token.Integer}
	if len(db) != len(wantDb) {
		t.Fatalf("db line = %v", db)
	}
	for i, typ := range wantDb {
		if db[i].Type != typ {
			t.Errorf("db[%d].Type = %s, want %s", i, db[i].Type, typ)
		}
	}
}

func TestScanBlankAndCommentLinesAreEmpty(t *testing.T) {
	lines, err := Scan("  \n; just a comment\nnop")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines[0]) != 0 {
		t.Errorf("blank line = %v, want empty", lines[0])
	}
	if len(lines[1]) != 0 {
		t.Errorf("comment-only line = %v, want empty", lines[1])
	}
	if len(lines[2]) != 1 || lines[2][0].StrValue != "nop" {
		t.Errorf("nop line = %v", lines[2])
	}
}

func TestSignAtStartOfExpressionIsUnary(t *testing.T) {
	line, err := scanLine("-5", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(line) != 2 || line[0].Type != token.Neg {
		t.Errorf("got %v, want [Neg, Integer]", line)
	}

	line, err = scanLine("+5", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(line) != 2 || line[0].Type != token.Pos {
		t.Errorf("got %v, want [Pos, Integer]", line)
	}
}

func TestSignAfterValueIsBinary(t *testing.T) {
	line, err := scanLine("x-5", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(line) != 3 || line[1].Type != token.Sub {
		t.Errorf("got %v, want [Identifier, Sub, Integer]", line)
	}

	line, err = scanLine("x+5", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(line) != 3 || line[1].Type != token.Add {
		t.Errorf("got %v, want [Identifier, Add, Integer]", line)
	}

	line, err = scanLine("(x)-5", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(line) != 5 || line[3].Type != token.Sub {
		t.Errorf("got %v, want trailing Sub after closing paren", line)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	if _, err := Scan("ld a, @"); err == nil {
		t.Fatal("expected a ScanError for '@'")
	}
}

func TestIndexDisplacementRoundTripsThroughRealLexer(t *testing.T) {
	plus, err := scanLine("(ix+5)", 1)
	if err != nil {
		t.Fatal(err)
	}
	set := opcode.GetParamTypes(plus)
	if !set[opcode.IXd] {
		t.Fatalf("expected IXd in %v", set)
	}
	v, err := opcode.GetParamVal(eval.NewContext(), opcode.IXd, plus)
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Errorf("(ix+5) = %d, want 5", v)
	}

	minus, err := scanLine("(ix-1)", 1)
	if err != nil {
		t.Fatal(err)
	}
	set = opcode.GetParamTypes(minus)
	if !set[opcode.IXd] {
		t.Fatalf("expected IXd in %v", set)
	}
	v, err = opcode.GetParamVal(eval.NewContext(), opcode.IXd, minus)
	if err != nil {
		t.Fatal(err)
	}
	if v != -1 {
		t.Errorf("(ix-1) = %d, want -1", v)
	}
}
