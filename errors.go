package automata

import "fmt"

// InvalidCharacterError reports a character outside the supported
// literal/operator/epsilon alphabet.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// UnbalancedParenthesesError reports a mismatched '(' or ')' found while
// converting to postfix.
type UnbalancedParenthesesError struct {
	Pos int
}

func (e *UnbalancedParenthesesError) Error() string {
	return fmt.Sprintf("unbalanced parentheses at position %d", e.Pos)
}

// InsufficientOperandsError reports an operator consumed during Thompson
// construction with too few operands on the fragment stack, or operands
// left dangling once the postfix sequence is exhausted.
type InsufficientOperandsError struct {
	Op       string // operator that underflowed; empty for dangling operands
	Pos      int
	Leftover int
}

func (e *InsufficientOperandsError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("insufficient operands: %d fragments remaining at end of expression", e.Leftover)
	}
	return fmt.Sprintf("insufficient operands for %q at position %d", e.Op, e.Pos)
}

// EmptyExpressionError reports an input that produced zero tokens.
type EmptyExpressionError struct{}

func (e *EmptyExpressionError) Error() string {
	return "empty expression"
}
