// Package assembler implements the two-pass Driver: Pass 1 resolves labels,
// directives and instructions into a deferred Queue against a shared
// Context; Pass 2 drains that queue into the final byte image.
package assembler

import (
	"github.com/bshepherdson/z80asm/internal/diag"
	"github.com/bshepherdson/z80asm/internal/eval"
	"github.com/bshepherdson/z80asm/internal/opcode"
	"github.com/bshepherdson/z80asm/internal/token"
)

// Result is the outcome of a successful Assemble call.
type Result struct {
	Bytes    []byte
	Warnings []diag.Warning
}

// Assemble runs both passes over lines against table, the Z80 instruction
// table. A non-nil error aborts assembly; it is always either a *LineError
// wrapping the underlying cause, or one of eval/opcode/resolve's own typed
// errors surfaced directly when no line context applies.
func Assemble(lines []token.Line, table opcode.Table) (*Result, error) {
	sink := diag.NewSink()
	ctx := eval.NewContext()

	diag.Banner("Pass 1")
	queue, err := runPass1(lines, table, ctx, sink)
	if err != nil {
		return nil, err
	}
	diag.Dump("Pass 1 context", ctx)
	diag.Dump("Pass 1 queue", queue)

	diag.Banner("Pass 2")
	bytes, err := runPass2(queue, ctx, sink)
	if err != nil {
		return nil, err
	}
	diag.Dump("assembled bytes", bytes)

	return &Result{Bytes: bytes, Warnings: sink.Warnings}, nil
}
