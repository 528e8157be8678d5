package automata

// Determinize converts an NFA into an equivalent DFA by subset
// construction. Each DFA state corresponds to the epsilon-closure of a set
// of NFA states (its kernel); kernels are discovered by a breadth-first
// worklist from the closure of the NFA's start state, so unreachable
// kernels are never materialized. Closure sets are compared by value, and
// the closure cache is shared with word simulation on the same NFA.
func Determinize(n *NFA) *DFA {
	sim := n.simulator()
	d := newDFA(n.alphabet)

	seed := NewStateSet()
	seed.Add(n.start)
	initial := sim.closure(seed)

	// The kernel registry assigns one canonical DFA state id per distinct
	// closure set. Worklist entries carry their assigned id in the frozen
	// set's state tag.
	registry := NewHashMap[int](WithCapacity(4))

	startID := d.newState()
	d.setAccept(startID, n.anyAccept(initial.GetArray()))
	registry.Set(initial, startID)
	d.start = startID

	worklist := []*FrozenIntSet{NewFrozenIntSet(initial.GetArray(), initial.Hash(), startID)}

	for len(worklist) > 0 {
		kernel := worklist[0]
		worklist = worklist[1:]

		for _, sym := range n.alphabet {
			moved := sim.move(kernel.GetArray(), sym)
			if moved.Size() == 0 {
				// No transition: the DFA stays partial here and rejects.
				continue
			}
			next := sim.closure(moved)

			destID, seen := registry.Get(next)
			if !seen {
				destID = d.newState()
				d.setAccept(destID, n.anyAccept(next.GetArray()))
				registry.Set(next, destID)
				worklist = append(worklist, NewFrozenIntSet(next.GetArray(), next.Hash(), destID))
			}
			d.addArc(kernel.state, sym, destID)
		}
	}

	return d
}
