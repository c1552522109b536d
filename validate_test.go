package rpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   bool
	}{
		{"empty", "", false},
		{"blank", "                ", false},
		{"tab-blank", "\t\n", false},
		{"num", "1", true},
		{"spaces", " 1 + 2 ", true},
		{"simple", "45-2+(9/8)", true},
		{"long", "(51/3)+5/2-56+(2-4)", true},
		{"nested", "((1))", true},
		{"leading-zero-divisor", "(2/015)+5", true},
		{"double-zero-divisor", "2/00", true},
		{"split-number", "1 2", true},
		{"double-plus", "++45-2+(9/8)", false},
		{"bad-brackets", "(5+)6)(", false},
		{"div-zero", "(2/0)+5", false},
		{"div-zero-end", "2/0", false},
		{"div-zero-spaced", "2 / 0", false},
		{"div-zero-op", "1/0+1", false},
		{"letters", "(1/lorem ipsum)", false},
		{"decimal", "12.666", false},
		{"tab", "1\t+2", false},
		{"neg", "-1", false},
		{"neg-paren", "2*(-1)", false},
		{"empty-parens", "()", false},
		{"implicit-mul", "2(3)", false},
		{"adjacent-parens", "(1)(2)", false},
		{"after-close", "(1)2", false},
		{"trailing-op", "1+", false},
		{"trailing-open", "1+(", false},
		{"leading-close", ")1", false},
		{"unclosed", "(1", false},
		{"unopened", "1)", false},
		{"reversed", ")(", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.ok, Validate(c.src), "Validate(%q)", c.src)
		})
	}
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"ok", "45-2+(9/8)", nil},
		{"empty", "", &SyntaxError{Col: 1, Rule: "empty expression"}},
		{"illegal", "(1/lorem ipsum)", &SyntaxError{Col: 4, Rule: "illegal character"}},
		{"close-after-op", "(5+)6)(", &SyntaxError{Col: 4, Rule: "close bracket after operator or open bracket"}},
		{"open-after-operand", "(1)(2)", &SyntaxError{Col: 4, Rule: "open bracket after operand"}},
		{"open-after-operand-spaced", ") 1 (", &SyntaxError{Col: 5, Rule: "open bracket after operand"}},
		{"op-after-open", "(+1)", &SyntaxError{Col: 2, Rule: "operator after open bracket"}},
		{"operand-after-close", "(1)2", &SyntaxError{Col: 4, Rule: "operand after close bracket"}},
		{"ends-with-op", "1 +", &SyntaxError{Col: 3, Rule: "expression ends with operator or open bracket"}},
		{"starts-with-op", "++45-2+(9/8)", &SyntaxError{Col: 1, Rule: "expression starts with operator or close bracket"}},
		{"consecutive", "1+*2", &SyntaxError{Col: 3, Rule: "consecutive operators"}},
		{"div-zero", "(2/0)+5", &SyntaxError{Col: 3, Rule: "division by literal zero"}},
		{"unclosed", "((1)", &BracketError{Col: 1, Open: true}},
		{"unopened", "1)", &BracketError{Col: 2, Open: false}},
	}
	var v ExpressionValidator
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := v.Check(c.src)
			if c.err == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, c.err, err)
			var ie InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, c.err.(InputError).Pos(), ie.Pos())
		})
	}
}

func TestValidatorFunc(t *testing.T) {
	v := ValidatorFunc(func(src string) bool { return len(src) < 3 })
	assert.True(t, v.Validate("ab"))
	assert.False(t, v.Validate("abc"))
}
