package rpn

// Solver solves expressions given as text.
type Solver interface {
	// Solve validates and evaluates an expression with the Solver's default
	// validation.
	Solve(src string) (float64, error)
	// SolveWith validates the expression with v instead of the default, then
	// evaluates it. A rejected expression gives an *InvalidExpressionError.
	SolveWith(src string, v Validator) (float64, error)
}

type rpnSolver struct{}

// RPN is the Solver implemented by this package's Solve and SolveWith.
var RPN Solver = rpnSolver{}

func (rpnSolver) Solve(src string) (float64, error) {
	return Solve(src)
}

func (rpnSolver) SolveWith(src string, v Validator) (float64, error) {
	return SolveWith(src, v)
}

// Solve is a shortcut to parse an expression and return its result.
func Solve(src string) (float64, error) {
	return SolveWith(src, nil)
}

// SolveWith is a shortcut to parse an expression with a custom validator and
// return its result. If v is nil, ExpressionValidator is used.
func SolveWith(src string, v Validator) (float64, error) {
	e, err := ParseWith(src, v)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
