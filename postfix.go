package automata

// Operator precedence, highest to lowest: the unary postfix operators, then
// concatenation, then alternation. Parentheses sit below everything so they
// never get popped by an operator comparison.
var precedence = map[tokenKind]int{
	tokenLParen:   0,
	tokenRParen:   0,
	tokenUnion:    1,
	tokenConcat:   2,
	tokenStar:     3,
	tokenPlus:     3,
	tokenOptional: 3,
}

// toPostfix linearizes a normalized token sequence into postfix order using
// the shunting-yard algorithm. An incoming operator pops every stacked
// operator of greater-or-equal precedence, which makes the binary operators
// left-associative and emits stacked postfix unaries in application order.
// Operand arity is not tracked here: a stray operator such as "a|" converts
// cleanly and only fails later, during Thompson construction. Only
// parenthesis mismatches are detected.
func toPostfix(toks []token) ([]token, error) {
	output := make([]token, 0, len(toks))
	stack := make([]token, 0, len(toks))

	for _, t := range toks {
		switch t.kind {
		case tokenSymbol, tokenEpsilon:
			output = append(output, t)
		case tokenLParen:
			stack = append(stack, t)
		case tokenRParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, &UnbalancedParenthesesError{Pos: t.pos}
			}
		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenLParen {
					break
				}
				if precedence[top.kind] >= precedence[t.kind] {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenLParen || top.kind == tokenRParen {
			return nil, &UnbalancedParenthesesError{Pos: top.pos}
		}
		output = append(output, top)
	}

	return output, nil
}
