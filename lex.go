package rpn

import (
	"strconv"
	"strings"
)

type token struct {
	text string
	kind tokenKind
	// op is the operator of a tokenOp token and opNone for all others.
	op  operator
	pos int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a non-negative integer literal.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open bracket, (.
	tokenOpen
	// tokenClose is a close bracket, ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/"

// Brackets group subexpressions.
const (
	OpenBracket  = '('
	CloseBracket = ')'
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isOp(c byte) bool {
	return strings.IndexByte(Operators, c) >= 0
}

// tokenize splits src into tokens. Runs of digits are numbers, and each
// operator or bracket is its own token. Anything else, including whitespace,
// is skipped, so src should be validated first.
func tokenize(src string) []token {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		tok := token{pos: i + 1}
		switch {
		case isDigit(c):
			j := i + 1
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			tok.text = src[i:j]
			tok.kind = tokenNum
			i = j
		case isOp(c):
			tok.text = src[i : i+1]
			tok.kind = tokenOp
			tok.op = opFor(c)
			i++
		case c == OpenBracket:
			tok.text = "("
			tok.kind = tokenOpen
			i++
		case c == CloseBracket:
			tok.text = ")"
			tok.kind = tokenClose
			i++
		default:
			i++
			continue
		}
		toks = append(toks, tok)
	}
	return toks
}
