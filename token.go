package automata

import (
	"strings"
	"unicode"
)

// DefaultEpsilonSymbol is the spelling used for the epsilon token unless
// overridden with WithEpsilonSymbol.
const DefaultEpsilonSymbol = "ε"

type tokenKind int

const (
	tokenSymbol tokenKind = iota
	tokenEpsilon
	tokenUnion
	tokenConcat
	tokenStar
	tokenPlus
	tokenOptional
	tokenLParen
	tokenRParen
)

// token is a single lexical unit of a regular expression. Immutable once
// produced by the tokenizer.
type token struct {
	kind tokenKind
	sym  rune // literal symbol, set only for tokenSymbol
	pos  int  // rune offset in the normalized expression
}

func (t token) String() string {
	switch t.kind {
	case tokenSymbol:
		return string(t.sym)
	case tokenEpsilon:
		return "ε"
	case tokenUnion:
		return "|"
	case tokenConcat:
		return "."
	case tokenStar:
		return "*"
	case tokenPlus:
		return "+"
	case tokenOptional:
		return "?"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	}
	return "?"
}

// Characters reserved for unsupported syntax (character classes, ranges,
// negation). They are rejected rather than treated as literals so that
// expressions written against a richer dialect fail loudly.
const reservedChars = "[]^-"

// normalize trims the expression, strips control characters and maps the
// alternative epsilon spellings ("epsilon", "eps", `\e`) to eps.
func normalize(expr, eps string) string {
	runes := make([]rune, 0, len(expr))
	for _, r := range strings.TrimSpace(expr) {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			continue
		}
		runes = append(runes, r)
	}

	var b strings.Builder
	for i := 0; i < len(runes); {
		if n := matchEpsilonSpelling(runes, i); n > 0 {
			b.WriteString(eps)
			i += n
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// matchEpsilonSpelling reports the length of an alternative epsilon spelling
// starting at i, or 0. The word spellings only match on word boundaries so
// that e.g. "steps" keeps its literals.
func matchEpsilonSpelling(runes []rune, i int) int {
	if runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == 'e' {
		return 2
	}
	for _, word := range []string{"epsilon", "eps"} {
		n := len(word)
		if i+n > len(runes) {
			continue
		}
		if !strings.EqualFold(string(runes[i:i+n]), word) {
			continue
		}
		if i > 0 && unicode.IsLetter(runes[i-1]) {
			continue
		}
		if i+n < len(runes) && unicode.IsLetter(runes[i+n]) {
			continue
		}
		return n
	}
	return 0
}

// tokenize validates the character set of a normalized expression and
// produces its token sequence, with explicit concatenation inserted wherever
// two adjacent tokens imply it. eps is the epsilon spelling to recognize.
func tokenize(normalized, eps string) ([]token, error) {
	runes := []rune(normalized)
	epsRunes := []rune(eps)

	toks := make([]token, 0, len(runes))
	for i := 0; i < len(runes); {
		if len(epsRunes) > 0 && hasPrefix(runes[i:], epsRunes) {
			toks = append(toks, token{kind: tokenEpsilon, pos: i})
			i += len(epsRunes)
			continue
		}

		r := runes[i]
		switch r {
		case '|':
			toks = append(toks, token{kind: tokenUnion, pos: i})
		case '.':
			toks = append(toks, token{kind: tokenConcat, pos: i})
		case '*':
			toks = append(toks, token{kind: tokenStar, pos: i})
		case '+':
			toks = append(toks, token{kind: tokenPlus, pos: i})
		case '?':
			toks = append(toks, token{kind: tokenOptional, pos: i})
		case '(':
			toks = append(toks, token{kind: tokenLParen, pos: i})
		case ')':
			toks = append(toks, token{kind: tokenRParen, pos: i})
		default:
			if strings.ContainsRune(reservedChars, r) || !unicode.IsPrint(r) {
				return nil, &InvalidCharacterError{Char: r, Pos: i}
			}
			toks = append(toks, token{kind: tokenSymbol, sym: r, pos: i})
		}
		i++
	}

	if len(toks) == 0 {
		return nil, &EmptyExpressionError{}
	}
	return insertConcat(toks), nil
}

// insertConcat makes the implicit concatenation operator explicit: between a
// closing construct (literal, epsilon, ')', '*', '+', '?') and an opening
// construct (literal, epsilon, '('). This lets the shunting-yard stage treat
// concatenation as an ordinary binary operator.
func insertConcat(toks []token) []token {
	out := make([]token, 0, 2*len(toks))
	for i, t := range toks {
		out = append(out, t)
		if i == len(toks)-1 {
			break
		}
		if closesConstruct(t.kind) && opensConstruct(toks[i+1].kind) {
			out = append(out, token{kind: tokenConcat, pos: toks[i+1].pos})
		}
	}
	return out
}

func closesConstruct(k tokenKind) bool {
	switch k {
	case tokenSymbol, tokenEpsilon, tokenRParen, tokenStar, tokenPlus, tokenOptional:
		return true
	}
	return false
}

func opensConstruct(k tokenKind) bool {
	switch k {
	case tokenSymbol, tokenEpsilon, tokenLParen:
		return true
	}
	return false
}

// renderTokens prints a token sequence, spelling epsilon as eps. Used for
// the postfix form reported to callers.
func renderTokens(toks []token, eps string) string {
	var b strings.Builder
	for _, t := range toks {
		if t.kind == tokenEpsilon {
			b.WriteString(eps)
			continue
		}
		b.WriteString(t.String())
	}
	return b.String()
}

func hasPrefix(runes, prefix []rune) bool {
	if len(runes) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if runes[i] != r {
			return false
		}
	}
	return true
}
