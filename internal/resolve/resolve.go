// Package resolve picks the unique matching OpCode row given a mnemonic and
// the operand-category sets produced by internal/opcode.
package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bshepherdson/z80asm/internal/opcode"
)

// ResolveError reports that no OpCodeTable row matches a mnemonic and operand
// shape.
type ResolveError struct {
	Mnemonic string
	S0, S1   map[opcode.ParamType]bool
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("no match for %q with operand types %s / %s",
		e.Mnemonic, setString(e.S0), setString(e.S1))
}

func setString(s map[opcode.ParamType]bool) string {
	names := make([]string, 0, len(s))
	for pt := range s {
		names = append(names, pt.String())
	}
	sort.Strings(names)
	return "{" + strings.Join(names, ",") + "}"
}

// Resolve picks the first row in table whose mnemonic matches and whose
// Pt0/Pt1 are members of s0/s1, in table order; the table's row order is
// authoritative, with more specific rows preceding more general ones.
func Resolve(table opcode.Table, mnemonic string, s0, s1 map[opcode.ParamType]bool) (*opcode.OpCode, error) {
	for i := range table {
		row := &table[i]
		if row.Mnemonic != mnemonic {
			continue
		}
		if !s0[row.Pt0] {
			continue
		}
		if !s1[row.Pt1] {
			continue
		}
		return row, nil
	}
	return nil, &ResolveError{Mnemonic: mnemonic, S0: s0, S1: s1}
}
