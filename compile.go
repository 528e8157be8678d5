package automata

// Automaton is the uniform membership contract shared by every
// representation the pipeline produces. NFA and DFA both satisfy it, which
// is what lets callers cross-check language preservation across stages.
type Automaton interface {
	// Accepts reports whether the automaton accepts the given word.
	Accepts(word string) bool

	// NumStates reports the number of states.
	NumStates() int
}

var (
	_ Automaton = &NFA{}
	_ Automaton = &DFA{}
)

// Result carries everything one compilation produced: the postfix form and
// the three automata. The minimization trace is available via
// Result.MinDFA.MinimizationTrace.
type Result struct {
	Postfix string
	NFA     *NFA
	DFA     *DFA
	MinDFA  *DFA
}

type compileOptions struct {
	epsilonSymbol string
}

// Option configures Compile.
type Option func(*compileOptions)

// WithEpsilonSymbol sets the spelling recognized as the epsilon token, e.g.
// "eps" for ASCII-only input. The default is "ε".
func WithEpsilonSymbol(symbol string) Option {
	return func(o *compileOptions) {
		o.epsilonSymbol = symbol
	}
}

// Compile runs the full pipeline on an infix regular expression: normalize
// and tokenize, convert to postfix, build the epsilon-NFA by Thompson's
// construction, determinize by subset construction, and minimize by
// partition refinement.
//
// Supported syntax: literals, an explicit epsilon token, alternation '|',
// explicit or implicit concatenation, grouping, and the postfix operators
// '*', '+' and '?'. Failures are typed (InvalidCharacterError,
// UnbalancedParenthesesError, InsufficientOperandsError,
// EmptyExpressionError) and atomic: no partial Result is returned.
func Compile(expr string, opts ...Option) (*Result, error) {
	options := &compileOptions{
		epsilonSymbol: DefaultEpsilonSymbol,
	}
	for _, opt := range opts {
		opt(options)
	}

	normalized := normalize(expr, options.epsilonSymbol)
	toks, err := tokenize(normalized, options.epsilonSymbol)
	if err != nil {
		return nil, err
	}

	postfix, err := toPostfix(toks)
	if err != nil {
		return nil, err
	}

	nfa, err := buildNFA(postfix)
	if err != nil {
		return nil, err
	}

	dfa := Determinize(nfa)
	minDFA := Minimize(dfa)

	return &Result{
		Postfix: renderTokens(postfix, options.epsilonSymbol),
		NFA:     nfa,
		DFA:     dfa,
		MinDFA:  minDFA,
	}, nil
}
