package rpn

import "strings"

// Expr is a parsed expression in postfix order. An Expr is immutable and can
// be evaluated concurrently.
type Expr struct {
	// src is the source text of the expression.
	src string
	// code is the postfix program: numbers and operators only.
	code []token
}

// Parse validates an expression with ExpressionValidator and converts it to
// postfix order. If validation fails, the error is an
// *InvalidExpressionError.
func Parse(src string) (*Expr, error) {
	return ParseWith(src, nil)
}

// ParseWith is like Parse, but uses v to validate the expression instead of
// ExpressionValidator. If v is nil, ExpressionValidator is used.
//
// v replaces the default rules entirely. If v accepts an expression with
// unbalanced brackets, the error is a *BracketError. Other malformed
// expressions parse successfully but fail to evaluate.
func ParseWith(src string, v Validator) (*Expr, error) {
	if v == nil {
		v = ExpressionValidator{}
	}
	if c, ok := v.(checker); ok {
		if err := c.Check(src); err != nil {
			return nil, &InvalidExpressionError{Text: src, Err: err}
		}
	} else if !v.Validate(src) {
		return nil, &InvalidExpressionError{Text: src}
	}
	code, err := postfix(tokenize(src))
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, code: code}, nil
}

// Source returns the text the expression was parsed from.
func (e *Expr) Source() string {
	return e.src
}

// String returns the expression in postfix order with tokens separated by
// spaces, e.g. "1 2 3 * +" for 1+2*3.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.code {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}
