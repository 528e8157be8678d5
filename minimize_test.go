package automata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizeStateCounts(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{expr: "a", want: 2},
		{expr: "a*", want: 1},
		{expr: "a+", want: 2},
		{expr: "a?b", want: 3},
		{expr: "a|b", want: 2},
		{expr: "(a|b)*abb", want: 4}, // the classic four-state automaton
		{expr: "ε", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, dfa := buildDFA(t, tt.expr)
			min := Minimize(dfa)
			assert.Equal(t, tt.want, min.NumStates())
			assert.LessOrEqual(t, min.NumStates(), dfa.NumStates())
		})
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	exprs := []string{"a*", "a+", "a?b", "(a|b)*abb", "(ab)*|c+", "ab|ba"}
	words := []string{"", "a", "b", "c", "ab", "ba", "abb", "aabb", "abab", "ababab", "cc", "abba"}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, dfa := buildDFA(t, expr)
			min := Minimize(dfa)
			for _, w := range words {
				assert.Equal(t, dfa.Accepts(w), min.Accepts(w), "word %q", w)
			}
		})
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	for _, expr := range []string{"a*", "a?b", "(a|b)*abb"} {
		t.Run(expr, func(t *testing.T) {
			_, dfa := buildDFA(t, expr)
			once := Minimize(dfa)
			twice := Minimize(once)
			assert.Equal(t, once.NumStates(), twice.NumStates())
			for _, w := range []string{"", "a", "b", "ab", "abb", "aabb"} {
				assert.Equal(t, once.Accepts(w), twice.Accepts(w), "word %q", w)
			}
		})
	}
}

func TestMinimizeTrace(t *testing.T) {
	_, dfa := buildDFA(t, "(a|b)*abb")
	min := Minimize(dfa)

	trace := min.MinimizationTrace()
	require.NotEmpty(t, trace)
	assert.True(t, strings.HasPrefix(trace[0], "Initialization:"))
	assert.True(t, strings.HasPrefix(trace[len(trace)-1], "Minimization completed:"))

	// Splits happened: (a|b)*abb determinizes above its minimal size.
	var splits int
	for _, line := range trace[1 : len(trace)-1] {
		assert.True(t, strings.HasPrefix(line, "Split by"), "unexpected trace line %q", line)
		splits++
	}
	assert.Greater(t, splits, 0)

	// The trace belongs to the minimized automaton only.
	assert.Nil(t, dfa.MinimizationTrace())
}

func TestMinimizeDropsDeadStates(t *testing.T) {
	// Hand-built DFA with an unreachable state and a dead (non-productive)
	// state; both must disappear without changing the language.
	d := newDFA([]rune{'a', 'b'})
	s0 := d.newState()
	s1 := d.newState()
	dead := d.newState()
	unreachable := d.newState()
	d.start = s0
	d.setAccept(s1, true)
	d.addArc(s0, 'a', s1)
	d.addArc(s0, 'b', dead)
	d.addArc(dead, 'a', dead)
	d.addArc(dead, 'b', dead)
	d.addArc(unreachable, 'a', s1)

	min := Minimize(d)
	assert.Equal(t, 2, min.NumStates())
	assert.True(t, min.Accepts("a"))
	assert.False(t, min.Accepts("b"))
	assert.False(t, min.Accepts("ba"))
}

func TestMinimizeEmptyLanguage(t *testing.T) {
	// A DFA with no accepting states collapses to its start state and
	// still rejects everything.
	d := newDFA([]rune{'a'})
	s0 := d.newState()
	s1 := d.newState()
	d.start = s0
	d.addArc(s0, 'a', s1)
	d.addArc(s1, 'a', s0)

	min := Minimize(d)
	assert.Equal(t, 1, min.NumStates())
	assert.False(t, min.Accepts(""))
	assert.False(t, min.Accepts("a"))
	assert.False(t, min.Accepts("aa"))
}

func TestMinimizeZeroStates(t *testing.T) {
	min := Minimize(newDFA(nil))
	assert.Equal(t, 0, min.NumStates())
	require.Len(t, min.MinimizationTrace(), 1)
	assert.Equal(t, "Minimization completed: 0 -> 0 states", min.MinimizationTrace()[0])
}
