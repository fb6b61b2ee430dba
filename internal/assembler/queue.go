package assembler

import (
	"github.com/bshepherdson/z80asm/internal/eval"
	"github.com/bshepherdson/z80asm/internal/opcode"
	"github.com/bshepherdson/z80asm/internal/token"
)

// QueueItem is one deferred Pass-1 work item: a Statement or a Data block.
type QueueItem interface {
	emit(ctx *eval.Context) ([]byte, error)
}

// Data is a Pass-1 deferred literal block already fully known at Pass-1
// time; Pass 2 appends its bytes verbatim.
type Data struct {
	Bytes []byte
}

func (d *Data) emit(*eval.Context) ([]byte, error) { return d.Bytes, nil }

// Statement is a Pass-1 deferred instruction: the address it was assigned,
// its resolved OpCode, and the token spans of its (up to two) operands.
type Statement struct {
	Line           int
	Address        int
	Op             *opcode.OpCode
	Param0, Param1 token.Line
}

func (s *Statement) emit(ctx *eval.Context) ([]byte, error) {
	// progCounter is set to the address *following* this instruction before
	// operand evaluation, so `e` (and `$` used inside operand expressions)
	// resolve against the next instruction's address, not this one's start —
	// matching how a real Z80 assembler computes relative-jump displacements.
	ctx.ProgCounter = s.Address + s.Op.Size

	p0, err := opcode.GetParamVal(ctx, s.Op.Pt0, s.Param0)
	if err != nil {
		return nil, err
	}
	p1, err := opcode.GetParamVal(ctx, s.Op.Pt1, s.Param1)
	if err != nil {
		return nil, err
	}
	return s.Op.Emit(p0, p1), nil
}

// Queue is the FIFO whose drain order is the canonical output order.
type Queue []QueueItem
