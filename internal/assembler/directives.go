package assembler

import (
	"strings"

	"github.com/bshepherdson/z80asm/internal/diag"
	"github.com/bshepherdson/z80asm/internal/eval"
	"github.com/bshepherdson/z80asm/internal/token"
)

func valid8(v int) bool  { return v >= -128 && v <= 255 }
func valid16(v int) bool { return v >= -32768 && v <= 65535 }

// handleDirective dispatches a line whose first token is a Directive.
// Returns (queue items to append, stop) where stop signals `.end`.
func handleDirective(ctx *eval.Context, sink *diag.Sink, name string, rest token.Line) ([]QueueItem, bool, error) {
	switch strings.ToLower(name) {
	case "end":
		return nil, true, nil

	case "org", "origin":
		v, err := eval.ParseExpression(ctx, rest)
		if err != nil {
			return nil, false, err
		}
		ctx.ProgCounter = v
		return nil, false, nil

	case "db", "byte":
		return directiveDB(ctx, sink, rest)

	case "dw", "word":
		return directiveDW(ctx, sink, rest)

	case "ds", "space":
		return directiveDS(ctx, sink, rest)

	default:
		sink.Warn("unknown directive .%s, line skipped", name)
		return nil, false, nil
	}
}

func directiveDB(ctx *eval.Context, sink *diag.Sink, rest token.Line) ([]QueueItem, bool, error) {
	args := token.SplitArgs(rest)
	bytes := make([]byte, 0, len(args))
	for _, arg := range args {
		v, err := eval.ParseExpression(ctx, arg)
		if err != nil {
			return nil, false, err
		}
		if !valid8(v) {
			return nil, false, &DirectiveRangeError{Directive: "db", Value: v}
		}
		bytes = append(bytes, byte(v&0xFF))
		ctx.ProgCounter++
	}
	return []QueueItem{&Data{Bytes: bytes}}, false, nil
}

func directiveDW(ctx *eval.Context, sink *diag.Sink, rest token.Line) ([]QueueItem, bool, error) {
	args := token.SplitArgs(rest)
	bytes := make([]byte, 0, len(args)*2)
	for _, arg := range args {
		v, err := eval.ParseExpression(ctx, arg)
		if err != nil {
			return nil, false, err
		}
		if !valid16(v) {
			return nil, false, &DirectiveRangeError{Directive: "dw", Value: v}
		}
		bytes = append(bytes, byte(v&0xFF), byte((v>>8)&0xFF))
		ctx.ProgCounter += 2
	}
	return []QueueItem{&Data{Bytes: bytes}}, false, nil
}

func directiveDS(ctx *eval.Context, sink *diag.Sink, rest token.Line) ([]QueueItem, bool, error) {
	args := token.SplitArgs(rest)
	if len(args) == 0 {
		sink.Warn(".ds with no arguments")
		return nil, false, nil
	}
	if len(args) > 2 {
		sink.Warn(".ds takes at most 2 arguments, got %d", len(args))
		args = args[:2]
	}

	count, err := eval.ParseExpression(ctx, args[0])
	if err != nil {
		return nil, false, err
	}
	fill := 0
	if len(args) == 2 {
		fill, err = eval.ParseExpression(ctx, args[1])
		if err != nil {
			return nil, false, err
		}
	}

	bytes := make([]byte, count)
	for i := range bytes {
		bytes[i] = byte(fill & 0xFF)
	}
	ctx.ProgCounter += count
	return []QueueItem{&Data{Bytes: bytes}}, false, nil
}
