// Package rpn implements a calculator for basic arithmetic expressions.
//
// Expressions are made of non-negative integers, the binary operators
// + - * /, and parentheses, e.g. "(51/3) + 5/2 - 56 + (2-4)". Spaces are
// allowed anywhere. There is no unary minus, so "-1" and "2*(-1)" are
// rejected, although results and intermediate values may be negative.
//
// An expression is first checked by a Validator, then converted to postfix
// (reverse Polish) order with the shunting-yard algorithm, and finally
// evaluated on a stack of float64 values. Parse an expression once to get an
// Expr that can be evaluated any number of times, or use Solve to do both.
// Everything in the package is safe for concurrent use.
//
package rpn
