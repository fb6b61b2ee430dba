package assembler

import (
	"github.com/bshepherdson/z80asm/internal/diag"
	"github.com/bshepherdson/z80asm/internal/eval"
)

// runPass2 drains queue in order, appending each item's bytes. ctx is the
// Context built by Pass 1, reused so identifiers resolve against the
// labels/assignments already bound.
func runPass2(queue Queue, ctx *eval.Context, sink *diag.Sink) ([]byte, error) {
	var out []byte
	for _, item := range queue {
		lineNo := 0
		if stmt, ok := item.(*Statement); ok {
			lineNo = stmt.Line
		}

		bytes, err := item.emit(ctx)
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
		if stmt, ok := item.(*Statement); ok && len(bytes) != stmt.Op.Size {
			sink.Bug("emit for %s produced %d bytes, want %d", stmt.Op.Mnemonic, len(bytes), stmt.Op.Size)
		}
		out = append(out, bytes...)
	}
	return out, nil
}
