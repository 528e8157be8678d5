package automata

import "slices"

var _ IntSet = &StateSet{}

// StateSet is a mutable set of NFA state ids with an incrementally
// maintained hash, so freezing and cache lookups don't rehash from scratch.
type StateSet struct {
	inner       map[int]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{
		inner: make(map[int]struct{}),
	}
}

func (s *StateSet) Add(state int) {
	if _, ok := s.inner[state]; ok {
		return
	}
	s.inner[state] = struct{}{}
	s.keyChanged()
}

func (s *StateSet) Contains(state int) bool {
	_, ok := s.inner[state]
	return ok
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for k := range s.inner {
		s.hashCode += uint64(mix(k))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return s.Hash() == is.Hash() && intSetsEqual(s, is)
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, len(s.inner))
	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Freeze returns an immutable snapshot of this set tagged with the DFA
// state id it stands for (or -1 when used as a plain cache key).
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}
