package assembler

import (
	"strings"

	"github.com/bshepherdson/z80asm/internal/diag"
	"github.com/bshepherdson/z80asm/internal/eval"
	"github.com/bshepherdson/z80asm/internal/opcode"
	"github.com/bshepherdson/z80asm/internal/resolve"
	"github.com/bshepherdson/z80asm/internal/token"
)

// runPass1 walks lines in order, binding labels and assignments into ctx and
// building the deferred Queue.
func runPass1(lines []token.Line, table opcode.Table, ctx *eval.Context, sink *diag.Sink) (Queue, error) {
	var queue Queue

	for lineNo, line := range lines {
		var stop bool
		var err error

		sink.WithLine(lineNo+1, func() {
			var items []QueueItem
			items, stop, err = pass1Line(ctx, sink, table, line, lineNo+1)
			queue = append(queue, items...)
		})
		if err != nil {
			return nil, &LineError{Line: lineNo + 1, Err: err}
		}
		if stop {
			break
		}
	}
	return queue, nil
}

func pass1Line(ctx *eval.Context, sink *diag.Sink, table opcode.Table, line token.Line, lineNo int) ([]QueueItem, bool, error) {
	i := 0

	if i < len(line) && line[i].Type == token.Directive {
		items, stop, err := handleDirective(ctx, sink, line[i].StrValue, line[i+1:])
		return items, stop, err
	}

	// Zero or more chained "Identifier Colon" label prefixes.
	for i+1 < len(line) && line[i].Type == token.Identifier && line[i+1].Type == token.Colon {
		if err := ctx.SetVariable(line[i].StrValue, ctx.ProgCounter); err != nil {
			return nil, false, err
		}
		i += 2
	}

	rest := line[i:]
	if len(rest) == 0 {
		return nil, false, nil
	}

	if rest[0].Type == token.Identifier && len(rest) >= 2 && rest[1].Type == token.Assign {
		v, err := eval.ParseExpression(ctx, rest[2:])
		if err != nil {
			return nil, false, err
		}
		if err := ctx.SetVariable(rest[0].StrValue, v); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}

	if rest[0].Type != token.Identifier {
		return nil, false, &UnknownMnemonicError{Mnemonic: ""}
	}

	mnemonic := strings.ToLower(rest[0].StrValue)
	rows := table.Lookup(mnemonic)
	if len(rows) == 0 {
		return nil, false, &UnknownMnemonicError{Mnemonic: rest[0].StrValue}
	}

	args := token.SplitArgs(rest[1:])
	if len(args) > 2 {
		sink.Warn("excess operands for %s, trimmed to 2", mnemonic)
		args = args[:2]
	}
	var arg0, arg1 token.Line
	if len(args) > 0 {
		arg0 = args[0]
	}
	if len(args) > 1 {
		arg1 = args[1]
	}

	s0 := opcode.GetParamTypes(arg0)
	s1 := opcode.GetParamTypes(arg1)
	op, err := resolve.Resolve(table, mnemonic, s0, s1)
	if err != nil {
		return nil, false, err
	}

	stmt := &Statement{
		Line:    lineNo,
		Address: ctx.ProgCounter,
		Op:      op,
		Param0:  arg0,
		Param1:  arg1,
	}
	ctx.ProgCounter += op.Size
	return []QueueItem{stmt}, false, nil
}
