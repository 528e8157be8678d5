package automata

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// NFA is a non-deterministic finite automaton with epsilon transitions.
// States are integers indexing an owned arena; transitions are id→id maps,
// so star/plus cycles never create ownership cycles. An NFA is built once
// by the Thompson stage and read-only afterwards.
type NFA struct {
	states   []nfaState
	start    int
	isAccept *bitset.BitSet
	alphabet []rune

	// Simulation context, created on first use. Owns the epsilon-closure
	// cache shared between word simulation and subset construction; its
	// lifetime is tied to this NFA.
	sim *simulator
}

// nfaState holds the outgoing transitions of one state: a mapping from
// input symbol to target ids, plus the epsilon targets.
type nfaState struct {
	arcs map[rune][]int
	eps  []int
}

// builder accumulates states and transitions while Thompson fragments are
// combined. All fragments of one construction share the same arena.
type builder struct {
	states []nfaState
}

func (b *builder) newState() int {
	b.states = append(b.states, nfaState{})
	return len(b.states) - 1
}

func (b *builder) addArc(from int, sym rune, to int) {
	s := &b.states[from]
	if s.arcs == nil {
		s.arcs = make(map[rune][]int)
	}
	s.arcs[sym] = append(s.arcs[sym], to)
}

func (b *builder) addEpsilon(from, to int) {
	s := &b.states[from]
	s.eps = append(s.eps, to)
}

// finish seals the arena into an NFA with the given start and accept state,
// deriving the input alphabet from the symbols seen (epsilon excluded).
func (b *builder) finish(start, accept int) *NFA {
	n := &NFA{
		states:   b.states,
		start:    start,
		isAccept: bitset.New(uint(len(b.states))),
	}
	n.isAccept.Set(uint(accept))

	seen := make(map[rune]struct{})
	for _, s := range b.states {
		for sym := range s.arcs {
			seen[sym] = struct{}{}
		}
	}
	n.alphabet = make([]rune, 0, len(seen))
	for sym := range seen {
		n.alphabet = append(n.alphabet, sym)
	}
	slices.Sort(n.alphabet)
	return n
}

// NumStates reports how many states this NFA has.
func (n *NFA) NumStates() int {
	return len(n.states)
}

// Start returns the start state id.
func (n *NFA) Start() int {
	return n.start
}

// IsAccept reports whether state is an accept state.
func (n *NFA) IsAccept(state int) bool {
	return n.isAccept.Test(uint(state))
}

// Alphabet returns the input alphabet in sorted order, epsilon excluded.
// The returned slice is owned by the NFA; callers must not mutate it.
func (n *NFA) Alphabet() []rune {
	return n.alphabet
}

// Accepts simulates the NFA on word using epsilon-closure/move folding.
// The word is accepted iff the final closure intersects the accept set.
func (n *NFA) Accepts(word string) bool {
	sim := n.simulator()

	seed := NewStateSet()
	seed.Add(n.start)
	current := sim.closure(seed)

	for _, sym := range word {
		moved := sim.move(current.GetArray(), sym)
		if moved.Size() == 0 {
			return false
		}
		current = sim.closure(moved)
	}

	return n.anyAccept(current.GetArray())
}

// simulator returns the simulation context for this NFA, creating it on
// first use.
func (n *NFA) simulator() *simulator {
	if n.sim == nil {
		n.sim = newSimulator(n)
	}
	return n.sim
}

func (n *NFA) anyAccept(states []int) bool {
	for _, s := range states {
		if n.isAccept.Test(uint(s)) {
			return true
		}
	}
	return false
}
