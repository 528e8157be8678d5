package automata

import (
	"github.com/bits-and-blooms/bitset"
)

// DFA is a deterministic finite automaton. States index an owned arena; each
// state maps a symbol to at most one destination, and a missing entry means
// reject. Built once by subset construction (or minimization) and read-only
// afterwards.
type DFA struct {
	arcs     []map[rune]int
	start    int
	isAccept *bitset.BitSet
	alphabet []rune

	// Refinement trace, set only on automata produced by Minimize.
	trace []string
}

func newDFA(alphabet []rune) *DFA {
	return &DFA{
		isAccept: bitset.New(2),
		alphabet: alphabet,
	}
}

func (d *DFA) newState() int {
	d.arcs = append(d.arcs, nil)
	return len(d.arcs) - 1
}

func (d *DFA) setAccept(state int, accept bool) {
	d.isAccept.SetTo(uint(state), accept)
}

func (d *DFA) addArc(from int, sym rune, to int) {
	if d.arcs[from] == nil {
		d.arcs[from] = make(map[rune]int)
	}
	d.arcs[from][sym] = to
}

// NumStates reports how many states this DFA has.
func (d *DFA) NumStates() int {
	return len(d.arcs)
}

// Start returns the start state id.
func (d *DFA) Start() int {
	return d.start
}

// IsAccept reports whether state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.isAccept.Test(uint(state))
}

// Alphabet returns the input alphabet in sorted order. The returned slice
// is owned by the DFA; callers must not mutate it.
func (d *DFA) Alphabet() []rune {
	return d.alphabet
}

// Step performs one deterministic transition. Returns -1 if state has no
// outgoing transition on sym.
func (d *DFA) Step(state int, sym rune) int {
	dest, ok := d.arcs[state][sym]
	if !ok {
		return -1
	}
	return dest
}

// Accepts runs the word through the transition table. A missing transition
// rejects immediately.
func (d *DFA) Accepts(word string) bool {
	if len(d.arcs) == 0 {
		return false
	}
	state := d.start
	for _, sym := range word {
		next := d.Step(state, sym)
		if next == -1 {
			return false
		}
		state = next
	}
	return d.IsAccept(state)
}

// MinimizationTrace returns the ordered refinement log recorded when this
// DFA was produced by Minimize, or nil for other automata.
func (d *DFA) MinimizationTrace() []string {
	return d.trace
}
