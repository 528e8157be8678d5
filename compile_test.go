package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePipeline(t *testing.T) {
	tests := []struct {
		regex string
		word  string
		want  bool
	}{
		{regex: "(a|b)*abb", word: "abb", want: true},
		{regex: "(a|b)*abb", word: "aabb", want: true},
		{regex: "(a|b)*abb", word: "abab", want: false},
		{regex: "a*", word: "", want: true},
		{regex: "a*", word: "aaa", want: true},
		{regex: "a*", word: "b", want: false},
		{regex: "a+", word: "", want: false},
		{regex: "a+", word: "a", want: true},
		{regex: "a?b", word: "b", want: true},
		{regex: "a?b", word: "ab", want: true},
		{regex: "a?b", word: "aab", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.regex+"/"+tt.word, func(t *testing.T) {
			result, err := Compile(tt.regex)
			require.NoError(t, err)

			// Every representation answers identically.
			assert.Equal(t, tt.want, result.NFA.Accepts(tt.word), "nfa")
			assert.Equal(t, tt.want, result.DFA.Accepts(tt.word), "dfa")
			assert.Equal(t, tt.want, result.MinDFA.Accepts(tt.word), "min dfa")
		})
	}
}

func TestCompileLanguagePreservation(t *testing.T) {
	exprs := []string{"a", "ab", "a|b", "a*b*", "(a|b)*abb", "(ab)+", "a?(b|c)*"}
	words := []string{"", "a", "b", "c", "ab", "ba", "bc", "abb", "abab", "aabb", "bbbb", "abcabc"}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			result, err := Compile(expr)
			require.NoError(t, err)
			for _, w := range words {
				got := result.NFA.Accepts(w)
				assert.Equal(t, got, result.DFA.Accepts(w), "nfa vs dfa on %q", w)
				assert.Equal(t, got, result.MinDFA.Accepts(w), "nfa vs min dfa on %q", w)
			}
		})
	}
}

func TestCompilePostfix(t *testing.T) {
	result, err := Compile("(a|b)*abb")
	require.NoError(t, err)
	assert.Equal(t, "ab|*a.b.b.", result.Postfix)
}

func TestCompileStateCounts(t *testing.T) {
	result, err := Compile("(a|b)*abb")
	require.NoError(t, err)

	assert.Equal(t, 14, result.NFA.NumStates())
	assert.LessOrEqual(t, result.MinDFA.NumStates(), result.DFA.NumStates())
	assert.Equal(t, 4, result.MinDFA.NumStates())
}

func TestCompileMinimizationTrace(t *testing.T) {
	result, err := Compile("(a|b)*abb")
	require.NoError(t, err)

	trace := result.MinDFA.MinimizationTrace()
	require.NotEmpty(t, trace)
	assert.Contains(t, trace[0], "Initialization")
	assert.Contains(t, trace[len(trace)-1], "Minimization completed")
}

func TestCompileErrors(t *testing.T) {
	t.Run("UnbalancedParentheses", func(t *testing.T) {
		for _, expr := range []string{"a(", "((a", "a)", "(a))"} {
			_, err := Compile(expr)
			var unbalanced *UnbalancedParenthesesError
			assert.ErrorAs(t, err, &unbalanced, "regex %q", expr)
		}
	})

	t.Run("InsufficientOperands", func(t *testing.T) {
		for _, expr := range []string{"a|", "|a", "*", "a|*"} {
			_, err := Compile(expr)
			var insufficient *InsufficientOperandsError
			assert.ErrorAs(t, err, &insufficient, "regex %q", expr)
		}
	})

	t.Run("InvalidCharacter", func(t *testing.T) {
		_, err := Compile("a[b-c]")
		var invalid *InvalidCharacterError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("EmptyExpression", func(t *testing.T) {
		for _, expr := range []string{"", "   "} {
			_, err := Compile(expr)
			var empty *EmptyExpressionError
			assert.ErrorAs(t, err, &empty, "regex %q", expr)
		}
	})

	t.Run("NoPartialResult", func(t *testing.T) {
		result, err := Compile("a|")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestCompileEpsilonSymbolOption(t *testing.T) {
	result, err := Compile("eps|ab", WithEpsilonSymbol("eps"))
	require.NoError(t, err)

	assert.Equal(t, "epsab.|", result.Postfix)
	assert.True(t, result.MinDFA.Accepts(""))
	assert.True(t, result.MinDFA.Accepts("ab"))
	assert.False(t, result.MinDFA.Accepts("a"))
}

func TestCompileDeterministic(t *testing.T) {
	// Two compilations of the same input agree on every answer, whatever
	// internal ids they picked.
	words := []string{"", "a", "b", "ab", "abb", "aabb", "abab"}
	first, err := Compile("(a|b)*abb")
	require.NoError(t, err)
	second, err := Compile("(a|b)*abb")
	require.NoError(t, err)

	for _, w := range words {
		assert.Equal(t, first.MinDFA.Accepts(w), second.MinDFA.Accepts(w), "word %q", w)
	}
	assert.Equal(t, first.MinDFA.NumStates(), second.MinDFA.NumStates())
	assert.Equal(t, first.Postfix, second.Postfix)
}

func TestAutomatonInterface(t *testing.T) {
	result, err := Compile("(a|b)*abb")
	require.NoError(t, err)

	// The uniform membership contract: same answers through the interface.
	for _, a := range []Automaton{result.NFA, result.DFA, result.MinDFA} {
		assert.True(t, a.Accepts("abb"))
		assert.False(t, a.Accepts("abab"))
		assert.Greater(t, a.NumStates(), 0)
	}
}
