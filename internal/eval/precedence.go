package eval

import "github.com/bshepherdson/z80asm/internal/token"

// Assoc is the associativity direction a precedence Level sweeps in.
type Assoc int

const (
	Left Assoc = iota
	Right
)

// UnaryOp computes a unary operator's result from its single operand.
type UnaryOp func(int) int

// BinaryOp computes a binary operator's result from its two operands.
type BinaryOp func(a, b int) int

// Level is one entry of the operator-precedence table: an associativity
// direction plus the operators eligible at that level. A Level carries either
// unary or binary operators, never both.
type Level struct {
	Assoc  Assoc
	Unary  map[token.Type]UnaryOp
	Binary map[token.Type]BinaryOp
}

func intPow(base, exp int) int {
	if exp < 0 {
		return 0
	}
	result := 1
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

// DefaultPrecedence is the standard Z80-assembler arithmetic grammar: unary
// +/- bind tightest (right-associative), then ^ (right), then * / (left),
// then + - (left). Callers needing a different grammar can build their own
// []Level and call ParseExpressionTable directly; the evaluator itself is
// agnostic to the table's contents.
var DefaultPrecedence = []Level{
	{
		Assoc: Right,
		Unary: map[token.Type]UnaryOp{
			token.Pos: func(a int) int { return a },
			token.Neg: func(a int) int { return -a },
		},
	},
	{
		Assoc: Right,
		Binary: map[token.Type]BinaryOp{
			token.Exp: intPow,
		},
	},
	{
		Assoc: Left,
		Binary: map[token.Type]BinaryOp{
			token.Mult: func(a, b int) int { return a * b },
			token.Div:  func(a, b int) int { return a / b },
		},
	},
	{
		Assoc: Left,
		Binary: map[token.Type]BinaryOp{
			token.Add: func(a, b int) int { return a + b },
			token.Sub: func(a, b int) int { return a - b },
		},
	},
}
