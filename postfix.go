package rpn

// postfix converts tokens in infix order to postfix order using the
// shunting-yard algorithm. Brackets do not appear in the result. The only
// possible errors are *BracketError for unbalanced brackets.
func postfix(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	// pending holds operators and open brackets.
	var pending []token
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOp:
			// Pop anything that binds at least as tightly. Equal precedence
			// pops too, so that a-b+c is (a-b)+c.
			for len(pending) > 0 {
				top := pending[len(pending)-1]
				if top.kind != tokenOp || top.op.prec() < tok.op.prec() {
					break
				}
				out = append(out, top)
				pending = pending[:len(pending)-1]
			}
			pending = append(pending, tok)
		case tokenOpen:
			pending = append(pending, tok)
		case tokenClose:
			for {
				if len(pending) == 0 {
					return nil, &BracketError{Col: tok.pos, Open: false}
				}
				top := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			panic("rpn: unknown token: " + tok.String())
		}
	}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Open: true}
		}
		out = append(out, top)
	}
	return out, nil
}
