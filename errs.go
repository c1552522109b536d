package rpn

import "strconv"

// InvalidExpressionError is the error from Parse or Solve when the validator
// rejects an expression.
type InvalidExpressionError struct {
	// Text is the expression that was rejected.
	Text string
	// Err is the validator's reason for rejecting the expression, if it gave
	// one. It is a *SyntaxError or *BracketError for ExpressionValidator.
	Err error
}

func (err *InvalidExpressionError) Error() string {
	s := "invalid expression " + strconv.Quote(err.Text)
	if err.Err != nil {
		s += ": " + err.Err.Error()
	}
	return s
}

func (err *InvalidExpressionError) Unwrap() error {
	return err.Err
}

// SyntaxError is an error indicating a character or pair of adjacent
// characters that cannot appear in an expression. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending character.
	Col int
	// Rule describes the rule that the expression breaks.
	Rule string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Rule)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Open is true for an open bracket with no close bracket and false for a
	// close bracket with no open bracket.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket with no close bracket")
	}
	return errpos(err.Col, "close bracket with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// DivisionByZeroError is the error from evaluating a division whose divisor
// is zero. Literal division by zero is rejected by the default validator, so
// this usually means a subexpression like (5-5) was the divisor. It
// implements InputError and unwraps to ErrDivisionByZero.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// Dividend is the left operand of the division.
	Dividend float64
	// Err is the arithmetic cause.
	Err error
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "cannot divide "+strconv.FormatFloat(err.Dividend, 'g', -1, 64)+" by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

func (err *DivisionByZeroError) Unwrap() error {
	return err.Err
}

// MalformedResultError indicates that the evaluation stack held the wrong
// number of values, either too few for an operator or other than exactly one
// at the end. The default validator never lets this happen, but a permissive
// custom validator can.
type MalformedResultError struct {
	// Len is the number of values on the stack when the problem was found.
	Len int
	// Op is the operator that lacked operands, or the empty string if the
	// problem was found at the end of evaluation.
	Op string
}

func (err *MalformedResultError) Error() string {
	if err.Op != "" {
		return "malformed expression: operator " + err.Op + " has " + strconv.Itoa(err.Len) + " operands"
	}
	return "malformed expression: " + strconv.Itoa(err.Len) + " values left after evaluation"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the 1-based byte column of the error in the source text.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
