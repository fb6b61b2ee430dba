package opcode

import (
	"fmt"
	"strings"

	"github.com/mileusna/conditional"

	"github.com/bshepherdson/z80asm/internal/eval"
	"github.com/bshepherdson/z80asm/internal/token"
)

// ClassifyError reports a token span the classifier cannot assign any
// ParamType to.
type ClassifyError struct {
	Shape string
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("unrecognized operand shape: %s", e.Shape)
}

// GetParamTypes returns the set of every ParamType tokens could represent.
func GetParamTypes(tokens token.Line) map[ParamType]bool {
	set := map[ParamType]bool{}

	if len(tokens) == 0 {
		set[None] = true
		return set
	}

	isRegisterName := false
	if len(tokens) == 1 && tokens[0].Type == token.Identifier {
		name := strings.ToLower(tokens[0].StrValue)
		for pt, names := range ParamValTable {
			for _, n := range names {
				if n == name {
					set[pt] = true
					isRegisterName = true
				}
			}
		}
	}

	if len(tokens) == 2 && tokens[0].Type == token.Identifier && tokens[1].Type == token.Tick &&
		strings.ToLower(tokens[0].StrValue) == "af" {
		set[AFp] = true
		isRegisterName = true
	}

	if len(tokens) >= 3 && tokens[0].Type == token.Paren0 && tokens[len(tokens)-1].Type == token.Paren1 {
		inner := tokens[1 : len(tokens)-1]
		if len(inner) == 1 && inner[0].Type == token.Identifier {
			name := strings.ToLower(inner[0].StrValue)
			for pt, n := range ParamValTable_d {
				if n == name {
					set[pt] = true
				}
			}
			switch name {
			case "ix":
				set[IXd] = true
			case "iy":
				set[IYd] = true
			}
		} else if len(inner) >= 2 && inner[0].Type == token.Identifier && isSignToken(inner[1].Type) {
			switch strings.ToLower(inner[0].StrValue) {
			case "ix":
				set[IXd] = true
			case "iy":
				set[IYd] = true
			}
		} else if token.HoldsIntValue(inner[0].Type) {
			set[Nd] = true
			set[NNd] = true
		}
	}

	if tokens[0].Type != token.Paren0 && token.HoldsIntValue(tokens[0].Type) && !isRegisterName {
		for _, pt := range NumberParamTypes {
			set[pt] = true
		}
	}

	if len(set) == 0 {
		set[None] = true
	}
	return set
}

// GetParamVal converts tokens into the encoded integer for the chosen
// ParamType.
func GetParamVal(ctx *eval.Context, pt ParamType, tokens token.Line) (ParamVal, error) {
	switch pt {
	case None:
		return 0, nil

	case IXd, IYd:
		return classifyIndexDisplacement(ctx, tokens)

	case N, NN, D, B, Nd, NNd, IMn, RSTn:
		v, err := eval.ParseExpression(ctx, tokens)
		if err != nil {
			return 0, err
		}
		if !validNumberParam(pt, v) {
			return 0, &RangeError{ParamType: pt, Value: v}
		}
		return ParamVal(v), nil

	case E:
		v, err := eval.ParseExpression(ctx, tokens)
		if err != nil {
			return 0, err
		}
		e := v - ctx.ProgCounter
		if e < -128 || e > 127 {
			return 0, &RangeError{ParamType: E, Value: e}
		}
		return ParamVal(e), nil

	case AFp:
		return 0, nil

	case IndBC, IndDE, IndHL, IndSP:
		return 0, nil

	default:
		if names, ok := ParamValTable[pt]; ok {
			if len(tokens) != 1 || tokens[0].Type != token.Identifier {
				return 0, &ClassifyError{Shape: "expected bare register identifier"}
			}
			name := strings.ToLower(tokens[0].StrValue)
			for i, n := range names {
				if n == name {
					return ParamVal(i), nil
				}
			}
			return 0, &ClassifyError{Shape: fmt.Sprintf("%q is not a member of %s", name, pt)}
		}
		return 0, nil
	}
}

// isSignToken accepts either spelling a lexer might produce for the sign
// immediately following "ix"/"iy" inside a displacement indirection: the
// literal Plus/Minus kinds (as hand-built token spans use), or Add/Sub (as
// internal/lex emits, since the preceding "ix"/"iy" identifier makes the
// sign binary-context per its own disambiguation rule).
func isSignToken(t token.Type) bool {
	return t == token.Plus || t == token.Minus || t == token.Add || t == token.Sub
}

func isMinusSign(t token.Type) bool {
	return t == token.Minus || t == token.Sub
}

func classifyIndexDisplacement(ctx *eval.Context, tokens token.Line) (ParamVal, error) {
	if len(tokens) < 3 || tokens[0].Type != token.Paren0 || tokens[len(tokens)-1].Type != token.Paren1 {
		return 0, &ClassifyError{Shape: "expected (ix±d) or (iy±d)"}
	}
	inner := tokens[1 : len(tokens)-1]
	if len(inner) == 1 {
		return 0, nil // "(ix)" / "(iy)": zero displacement.
	}
	if len(inner) < 2 {
		return 0, &ClassifyError{Shape: "malformed index displacement"}
	}
	if !isSignToken(inner[1].Type) {
		return 0, &ClassifyError{Shape: "expected + or - after ix/iy"}
	}
	sign := conditional.Int(isMinusSign(inner[1].Type), -1, 1)
	v, err := eval.ParseExpression(ctx, inner[2:])
	if err != nil {
		return 0, err
	}
	d := sign * v
	if d < -128 || d > 127 {
		return 0, &RangeError{ParamType: D, Value: d}
	}
	return ParamVal(d), nil
}

// RangeError reports a numeric operand that evaluated outside the range its
// chosen ParamType permits.
type RangeError struct {
	ParamType ParamType
	Value     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d out of range for %s", e.Value, e.ParamType)
}
