package automata

import (
	"github.com/bits-and-blooms/bitset"
)

// simulator is the per-NFA simulation context. It owns the epsilon-closure
// cache, keyed by the canonical (sorted, hashed) form of the queried state
// set, so closures computed while testing words are reused verbatim by
// subset construction and vice versa.
type simulator struct {
	nfa      *NFA
	closures *HashMap[*FrozenIntSet]
}

func newSimulator(n *NFA) *simulator {
	return &simulator{
		nfa:      n,
		closures: NewHashMap[*FrozenIntSet](WithCapacity(16)),
	}
}

// closure returns the smallest superset of set closed under epsilon
// transitions. The result for each distinct input set is cached for the
// lifetime of the NFA.
func (s *simulator) closure(set *StateSet) *FrozenIntSet {
	if cached, ok := s.closures.Get(set); ok {
		return cached
	}

	seeds := set.GetArray()
	visited := bitset.New(uint(len(s.nfa.states)))
	stack := make([]int, 0, len(seeds))
	for _, id := range seeds {
		visited.Set(uint(id))
		stack = append(stack, id)
	}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dest := range s.nfa.states[state].eps {
			if !visited.Test(uint(dest)) {
				visited.Set(uint(dest))
				stack = append(stack, dest)
			}
		}
	}

	closed := make([]int, 0, visited.Count())
	for id, ok := visited.NextSet(0); ok; id, ok = visited.NextSet(id + 1) {
		closed = append(closed, int(id))
	}

	result := freezeInts(closed, -1)
	s.closures.Set(set.Freeze(-1), result)
	return result
}

// move returns the states directly reachable from any member of states by
// consuming sym. No epsilon-following happens here.
func (s *simulator) move(states []int, sym rune) *StateSet {
	result := NewStateSet()
	for _, id := range states {
		for _, dest := range s.nfa.states[id].arcs[sym] {
			result.Add(dest)
		}
	}
	return result
}
