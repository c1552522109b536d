package rpn

import (
	"errors"
	"strconv"
)

// Eval evaluates the expression. The error, if any, is a
// *DivisionByZeroError or a *MalformedResultError.
func (e *Expr) Eval() (float64, error) {
	// Well-formed code has one more number than operators.
	stack := make([]float64, 0, len(e.code)/2+1)
	for _, tok := range e.code {
		switch tok.kind {
		case tokenNum:
			stack = append(stack, num(tok.text))
		case tokenOp:
			if len(stack) < 2 {
				return 0, &MalformedResultError{Len: len(stack), Op: tok.text}
			}
			l, r := stack[len(stack)-2], stack[len(stack)-1]
			v, err := tok.op.apply(l, r)
			if err != nil {
				return 0, &DivisionByZeroError{Col: tok.pos, Dividend: l, Err: err}
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = v
		default:
			panic("rpn: invalid token in postfix code: " + tok.String())
		}
	}
	if len(stack) != 1 {
		return 0, &MalformedResultError{Len: len(stack)}
	}
	return stack[0], nil
}

// num parses a number token. The lexer only produces digit strings, so the
// only possible error is a value out of range, which becomes +Inf.
func num(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("rpn: invalid number: " + s + " (" + err.Error() + ")")
	}
	return v
}
