package automata

// fragment is a sub-automaton under construction: a start state and the
// single accept state Thompson's rules guarantee. Fragments share the
// builder's arena and only exist while one postfix sequence is consumed.
type fragment struct {
	start  int
	accept int
}

// buildNFA consumes a postfix token sequence left to right, combining
// fragments per Thompson's construction. Operator arity is checked here,
// lazily: the converter emits stray operators (e.g. "a|") unchanged, and
// the stack underflow surfaces as InsufficientOperandsError at this stage.
func buildNFA(postfix []token) (*NFA, error) {
	if len(postfix) == 0 {
		return nil, &EmptyExpressionError{}
	}

	b := &builder{}
	stack := make([]fragment, 0, len(postfix))

	pop := func() fragment {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}

	for _, t := range postfix {
		switch t.kind {
		case tokenSymbol:
			start, accept := b.newState(), b.newState()
			b.addArc(start, t.sym, accept)
			stack = append(stack, fragment{start: start, accept: accept})

		case tokenEpsilon:
			start, accept := b.newState(), b.newState()
			b.addEpsilon(start, accept)
			stack = append(stack, fragment{start: start, accept: accept})

		case tokenConcat:
			if len(stack) < 2 {
				return nil, &InsufficientOperandsError{Op: t.String(), Pos: t.pos}
			}
			f2 := pop()
			f1 := pop()
			b.addEpsilon(f1.accept, f2.start)
			stack = append(stack, fragment{start: f1.start, accept: f2.accept})

		case tokenUnion:
			if len(stack) < 2 {
				return nil, &InsufficientOperandsError{Op: t.String(), Pos: t.pos}
			}
			f2 := pop()
			f1 := pop()
			start, accept := b.newState(), b.newState()
			b.addEpsilon(start, f1.start)
			b.addEpsilon(start, f2.start)
			b.addEpsilon(f1.accept, accept)
			b.addEpsilon(f2.accept, accept)
			stack = append(stack, fragment{start: start, accept: accept})

		case tokenStar:
			if len(stack) < 1 {
				return nil, &InsufficientOperandsError{Op: t.String(), Pos: t.pos}
			}
			f := pop()
			start, accept := b.newState(), b.newState()
			b.addEpsilon(start, f.start)
			b.addEpsilon(f.accept, f.start) // loop
			b.addEpsilon(start, accept)     // skip
			b.addEpsilon(f.accept, accept)
			stack = append(stack, fragment{start: start, accept: accept})

		case tokenPlus:
			// As star, minus the skip edge: at least one traversal.
			if len(stack) < 1 {
				return nil, &InsufficientOperandsError{Op: t.String(), Pos: t.pos}
			}
			f := pop()
			start, accept := b.newState(), b.newState()
			b.addEpsilon(start, f.start)
			b.addEpsilon(f.accept, f.start)
			b.addEpsilon(f.accept, accept)
			stack = append(stack, fragment{start: start, accept: accept})

		case tokenOptional:
			// As star, minus the loop-back edge: zero or one pass.
			if len(stack) < 1 {
				return nil, &InsufficientOperandsError{Op: t.String(), Pos: t.pos}
			}
			f := pop()
			start, accept := b.newState(), b.newState()
			b.addEpsilon(start, f.start)
			b.addEpsilon(start, accept)
			b.addEpsilon(f.accept, accept)
			stack = append(stack, fragment{start: start, accept: accept})

		default:
			// Parentheses never reach postfix; a correct converter removes
			// them. Guarded anyway so a malformed sequence cannot build a
			// partial automaton.
			return nil, &InvalidCharacterError{Pos: t.pos}
		}
	}

	// A well-formed sequence reduces to exactly one fragment. More than one
	// means a missing operator (e.g. adjacent operands without concat).
	if len(stack) != 1 {
		return nil, &InsufficientOperandsError{Leftover: len(stack)}
	}

	final := stack[0]
	return b.finish(final.start, final.accept), nil
}
