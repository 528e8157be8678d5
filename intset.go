package automata

// IntSet is a set of state ids that can key a HashMap. Implementations are
// StateSet (mutable, used while a set is being assembled) and FrozenIntSet
// (immutable, used as cache keys and determinization kernels).
type IntSet interface {
	Hashable

	// GetArray returns the member ids in ascending order.
	GetArray() []int

	Size() int
}

// hashInts is the set hash shared by StateSet and FrozenIntSet: order
// independent, so a mutable set and its frozen copy always agree.
func hashInts(values []int) uint64 {
	code := uint64(len(values))
	for _, v := range values {
		code += uint64(mix(v))
	}
	return code
}

// intSetsEqual compares two IntSets by value. Both arrays are sorted, so a
// single sweep suffices.
func intSetsEqual(a, b IntSet) bool {
	if a.Size() != b.Size() {
		return false
	}
	av, bv := a.GetArray(), b.GetArray()
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}
