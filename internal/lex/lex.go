// Package lex is a minimal tokenizer for Z80 assembly source text, turning
// it into the token.Line slices the assembler core consumes.
package lex

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/japanoise/numparse"

	"github.com/bshepherdson/z80asm/internal/token"
)

// ScanError reports a character the scanner has no token for.
type ScanError struct {
	Line int
	Ch   rune
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line %d: unexpected character %q", e.Line, e.Ch)
}

// Scan turns source into one token.Line per logical source line. Blank lines
// and comment-only lines produce an empty token.Line, which the assembler's
// Pass 1 simply skips.
func Scan(source string) ([]token.Line, error) {
	rawLines := strings.Split(source, "\n")
	lines := make([]token.Line, len(rawLines))
	for i, raw := range rawLines {
		line, err := scanLine(raw, i+1)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return lines, nil
}

// precededByValue reports whether the last token emitted so far can end an
// operand (a value, identifier, `$`, or closing paren) — the condition under
// which a following '+'/'-' is binary (Add/Sub) rather than unary (Pos/Neg).
func precededByValue(line token.Line) bool {
	if len(line) == 0 {
		return false
	}
	switch line[len(line)-1].Type {
	case token.Integer, token.Identifier, token.Dollar, token.Paren1:
		return true
	default:
		return false
	}
}

func scanLine(raw string, lineNo int) (token.Line, error) {
	runes := []rune(raw)
	var line token.Line
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case unicode.IsSpace(c):
			i++

		case c == ';':
			i = len(runes) // comment runs to end of line

		case c == ':':
			line = append(line, token.Token{Type: token.Colon, Line: lineNo})
			i++
		case c == ',':
			line = append(line, token.Token{Type: token.Comma, Line: lineNo})
			i++
		case c == '=':
			line = append(line, token.Token{Type: token.Assign, Line: lineNo})
			i++
		case c == '(':
			line = append(line, token.Token{Type: token.Paren0, Line: lineNo})
			i++
		case c == ')':
			line = append(line, token.Token{Type: token.Paren1, Line: lineNo})
			i++
		case c == '\'':
			line = append(line, token.Token{Type: token.Tick, Line: lineNo})
			i++
		case c == '+':
			typ := token.Pos
			if precededByValue(line) {
				typ = token.Add
			}
			line = append(line, token.Token{Type: typ, Line: lineNo})
			i++
		case c == '-':
			typ := token.Neg
			if precededByValue(line) {
				typ = token.Sub
			}
			line = append(line, token.Token{Type: typ, Line: lineNo})
			i++
		case c == '*':
			line = append(line, token.Token{Type: token.Mult, Line: lineNo})
			i++
		case c == '/':
			line = append(line, token.Token{Type: token.Div, Line: lineNo})
			i++
		case c == '^':
			line = append(line, token.Token{Type: token.Exp, Line: lineNo})
			i++

		case c == '.':
			j := i + 1
			for j < len(runes) && isIdentRune(runes[j]) {
				j++
			}
			line = append(line, token.Token{Type: token.Directive, StrValue: string(runes[i+1 : j]), Line: lineNo})
			i = j

		case c == '$' && (i+1 >= len(runes) || !isHexRune(runes[i+1])):
			line = append(line, token.Token{Type: token.Dollar, Line: lineNo})
			i++

		case unicode.IsDigit(c) || (c == '$' && isHexRune(runes[i+1])):
			j := i + 1
			for j < len(runes) && (isIdentRune(runes[j])) {
				j++
			}
			text := string(runes[i:j])
			v, err := numparse.UNumParse(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: malformed numeric literal %q: %w", lineNo, text, err)
			}
			line = append(line, token.Token{Type: token.Integer, IntValue: int(v), Line: lineNo})
			i = j

		case isIdentStartRune(c):
			j := i + 1
			for j < len(runes) && isIdentRune(runes[j]) {
				j++
			}
			line = append(line, token.Token{Type: token.Identifier, StrValue: string(runes[i:j]), Line: lineNo})
			i = j

		default:
			return nil, &ScanError{Line: lineNo, Ch: c}
		}
	}
	return line, nil
}

func isIdentStartRune(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

func isHexRune(c rune) bool {
	return unicode.IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
