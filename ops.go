package rpn

import "github.com/pkg/errors"

// operator is a binary arithmetic operator.
type operator int8

const (
	opNone operator = iota
	opAdd
	opSub
	opMul
	opDiv
)

// opFor gets the operator for an operator character. The result is opNone if
// c is not in Operators.
func opFor(c byte) operator {
	switch c {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '*':
		return opMul
	case '/':
		return opDiv
	default:
		return opNone
	}
}

func (op operator) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	default:
		return "?"
	}
}

// prec is the precedence tier of the operator. Higher binds tighter. All
// operators are left-associative.
func (op operator) prec() int8 {
	switch op {
	case opAdd, opSub:
		return 1
	case opMul, opDiv:
		return 5
	default:
		panic("rpn: precedence of invalid operator " + op.String())
	}
}

// ErrDivisionByZero is the cause of every DivisionByZeroError.
var ErrDivisionByZero = errors.New("division by zero")

// apply computes l op r. The only possible error is ErrDivisionByZero, with a
// stack trace attached.
func (op operator) apply(l, r float64) (float64, error) {
	switch op {
	case opAdd:
		return l + r, nil
	case opSub:
		return l - r, nil
	case opMul:
		return l * r, nil
	case opDiv:
		if r == 0 {
			return 0, errors.WithStack(ErrDivisionByZero)
		}
		return l / r, nil
	default:
		panic("rpn: apply invalid operator " + op.String())
	}
}
