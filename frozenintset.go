package automata

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is an immutable, sorted set of NFA state ids with a
// precomputed hash. During determinization the state field carries the DFA
// state id assigned to this kernel.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

// freezeInts builds a FrozenIntSet from an already sorted id slice,
// computing the hash itself.
func freezeInts(sorted []int, state int) *FrozenIntSet {
	return NewFrozenIntSet(sorted, hashInts(sorted), state)
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return f.Hash() == is.Hash() && intSetsEqual(f, is)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}
