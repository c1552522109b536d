package rpn

import "strings"

// Validator decides whether an expression may be solved. Parse and Solve
// trust that anything a Validator accepts is well-formed; a Validator that
// accepts malformed input leads to errors during conversion or evaluation.
type Validator interface {
	Validate(src string) bool
}

// ValidatorFunc adapts a function into a Validator.
type ValidatorFunc func(src string) bool

// Validate calls f(src).
func (f ValidatorFunc) Validate(src string) bool {
	return f(src)
}

// checker is a Validator which can explain why it rejects an expression.
type checker interface {
	Validator
	Check(src string) error
}

// ExpressionValidator is the default Validator. It accepts expressions
// containing only digits, the operators + - * /, parentheses, and spaces,
// such that operators and brackets are placed sensibly, brackets are
// balanced, and no literal zero is a divisor.
type ExpressionValidator struct{}

var _ checker = ExpressionValidator{}

// Validate reports whether src is a well-formed expression. It is the same as
// Check(src) == nil.
func (v ExpressionValidator) Validate(src string) bool {
	return v.Check(src) == nil
}

// Check returns nil if src is a well-formed expression. Otherwise, the result
// is a *SyntaxError or *BracketError describing the first problem found.
func (ExpressionValidator) Check(src string) error {
	if strings.TrimSpace(src) == "" {
		return &SyntaxError{Col: 1, Rule: "empty expression"}
	}
	if err := checkRules(src); err != nil {
		return err
	}
	return checkBrackets(src)
}

// Validate reports whether ExpressionValidator accepts src.
func Validate(src string) bool {
	return ExpressionValidator{}.Validate(src)
}

type rule struct {
	// desc describes what the rule forbids.
	desc string
	// bad reports whether the rule is broken at index i of s. s has had its
	// spaces removed and is non-empty.
	bad func(s string, i int) bool
}

// opOrOpen reports whether c is an operator or an open bracket, which are the
// characters that may precede a term.
func opOrOpen(c byte) bool {
	return isOp(c) || c == OpenBracket
}

// rules are checked in order, and the first rule broken anywhere in the
// expression is the one reported.
var rules = []rule{
	{"illegal character", func(s string, i int) bool {
		c := s[i]
		return !isDigit(c) && !opOrOpen(c) && c != CloseBracket
	}},
	{"close bracket after operator or open bracket", func(s string, i int) bool {
		return i > 0 && s[i] == CloseBracket && opOrOpen(s[i-1])
	}},
	{"open bracket after operand", func(s string, i int) bool {
		return i > 0 && s[i] == OpenBracket && !opOrOpen(s[i-1])
	}},
	{"operator after open bracket", func(s string, i int) bool {
		return i > 0 && isOp(s[i]) && s[i-1] == OpenBracket
	}},
	{"operand after close bracket", func(s string, i int) bool {
		return i > 0 && s[i-1] == CloseBracket && !isOp(s[i]) && s[i] != CloseBracket
	}},
	{"expression ends with operator or open bracket", func(s string, i int) bool {
		return i == len(s)-1 && opOrOpen(s[i])
	}},
	{"expression starts with operator or close bracket", func(s string, i int) bool {
		return i == 0 && (isOp(s[i]) || s[i] == CloseBracket)
	}},
	{"consecutive operators", func(s string, i int) bool {
		return i > 0 && isOp(s[i]) && isOp(s[i-1])
	}},
	{"division by literal zero", func(s string, i int) bool {
		if s[i] != '/' || i+1 >= len(s) || s[i+1] != '0' {
			return false
		}
		// /0 followed by another digit is a number like 015.
		return i+2 == len(s) || isOp(s[i+2]) || s[i+2] == CloseBracket
	}},
}

// checkRules applies each rule to src with its spaces removed. Error
// positions refer to src.
func checkRules(src string) error {
	var b strings.Builder
	b.Grow(len(src))
	cols := make([]int, 0, len(src))
	for i := 0; i < len(src); i++ {
		if src[i] == ' ' {
			continue
		}
		b.WriteByte(src[i])
		cols = append(cols, i+1)
	}
	s := b.String()
	for _, r := range rules {
		for i := 0; i < len(s); i++ {
			if r.bad(s, i) {
				return &SyntaxError{Col: cols[i], Rule: r.desc}
			}
		}
	}
	return nil
}

// checkBrackets verifies that every close bracket in src matches an earlier
// open bracket and that every open bracket is closed.
func checkBrackets(src string) error {
	var open []int
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case OpenBracket:
			open = append(open, i+1)
		case CloseBracket:
			if len(open) == 0 {
				return &BracketError{Col: i + 1, Open: false}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: open[len(open)-1], Open: true}
	}
	return nil
}
