package automata

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Minimize returns an equivalent DFA with the fewest possible states,
// obtained by partition refinement, plus an ordered trace of every
// refinement step (retrievable via MinimizationTrace).
//
// The input is first totalized with a sink state so every (state, symbol)
// pair is defined. Starting from the accepting/non-accepting split, any
// block whose members disagree on which block a symbol leads to is split by
// destination block, until a full pass over the alphabet changes nothing.
// One state per final block is emitted, and states with no path from the
// start or to an accept state (the sink included) are dropped again, which
// is not observable through Accepts.
func Minimize(d *DFA) *DFA {
	numStates := d.NumStates()
	if numStates == 0 {
		out := newDFA(d.alphabet)
		out.trace = []string{"Minimization completed: 0 -> 0 states"}
		return out
	}

	next, total := totalize(d)

	// Initial partition: accepting vs non-accepting, empty side dropped.
	var accepting, rejecting []int
	for s := 0; s < total; s++ {
		if s < numStates && d.IsAccept(s) {
			accepting = append(accepting, s)
		} else {
			rejecting = append(rejecting, s)
		}
	}
	blocks := make([][]int, 0, 2)
	if len(accepting) > 0 {
		blocks = append(blocks, accepting)
	}
	if len(rejecting) > 0 {
		blocks = append(blocks, rejecting)
	}

	trace := []string{fmt.Sprintf("Initialization: %v", blocks)}

	blockOf := make([]int, total)
	assignBlocks(blockOf, blocks)

	// Refine to fixed point.
	for changed := true; changed; {
		changed = false
		for si, sym := range d.alphabet {
			refined := make([][]int, 0, len(blocks))
			split := false
			for _, block := range blocks {
				subs := splitBlock(block, si, next, blockOf)
				if len(subs) == 1 {
					refined = append(refined, block)
					continue
				}
				split = true
				trace = append(trace, fmt.Sprintf("Split by %q: %v -> %s", sym, block, joinBlocks(subs)))
				refined = append(refined, subs...)
			}
			if split {
				changed = true
				blocks = refined
				assignBlocks(blockOf, blocks)
			}
		}
	}

	// One minimized state per block; any representative works because all
	// members agree on every destination block by construction.
	minNext := make([][]int, len(blocks))
	minAccept := make([]bool, len(blocks))
	for bi, block := range blocks {
		rep := block[0]
		row := make([]int, len(d.alphabet))
		for si := range d.alphabet {
			row[si] = blockOf[next[rep][si]]
		}
		minNext[bi] = row
		minAccept[bi] = rep < numStates && d.IsAccept(rep)
	}
	startBlock := blockOf[d.start]

	out := buildCleaned(d.alphabet, minNext, minAccept, startBlock)
	trace = append(trace, fmt.Sprintf("Minimization completed: %d -> %d states", numStates, out.NumStates()))
	out.trace = trace
	return out
}

// totalize lays the DFA's transitions out as a dense matrix, appending a
// sink state to absorb every missing entry. Returns the matrix and the
// state count including the sink, if one was needed.
func totalize(d *DFA) ([][]int, int) {
	numStates := d.NumStates()
	needSink := false
	for s := 0; s < numStates && !needSink; s++ {
		for _, sym := range d.alphabet {
			if d.Step(s, sym) == -1 {
				needSink = true
				break
			}
		}
	}

	total := numStates
	sink := -1
	if needSink && len(d.alphabet) > 0 {
		sink = total
		total++
	}

	next := make([][]int, total)
	for s := 0; s < total; s++ {
		row := make([]int, len(d.alphabet))
		for si, sym := range d.alphabet {
			if s == sink {
				row[si] = sink
				continue
			}
			dest := d.Step(s, sym)
			if dest == -1 {
				dest = sink
			}
			row[si] = dest
		}
		next[s] = row
	}
	return next, total
}

// splitBlock groups a block's members by the block their transition on
// symbol index si lands in. Members stay in ascending order; groups appear
// in order of their first member.
func splitBlock(block []int, si int, next [][]int, blockOf []int) [][]int {
	subs := make([][]int, 0, 2)
	groupAt := make(map[int]int)
	for _, s := range block {
		dest := blockOf[next[s][si]]
		gi, ok := groupAt[dest]
		if !ok {
			gi = len(subs)
			groupAt[dest] = gi
			subs = append(subs, nil)
		}
		subs[gi] = append(subs[gi], s)
	}
	return subs
}

func assignBlocks(blockOf []int, blocks [][]int) {
	for bi, block := range blocks {
		for _, s := range block {
			blockOf[s] = bi
		}
	}
}

func joinBlocks(blocks [][]int) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = fmt.Sprint(b)
	}
	return strings.Join(parts, " | ")
}

// buildCleaned assembles the minimized DFA from the block graph, keeping
// only states that lie on some path from the start to an accept state. The
// start block is always kept so the result remains a valid automaton for
// the empty language.
func buildCleaned(alphabet []rune, next [][]int, accept []bool, start int) *DFA {
	numBlocks := len(next)

	reachable := bitset.New(uint(numBlocks))
	reachable.Set(uint(start))
	worklist := []int{start}
	for len(worklist) > 0 {
		b := worklist[0]
		worklist = worklist[1:]
		for _, dest := range next[b] {
			if !reachable.Test(uint(dest)) {
				reachable.Set(uint(dest))
				worklist = append(worklist, dest)
			}
		}
	}

	productive := bitset.New(uint(numBlocks))
	for b := 0; b < numBlocks; b++ {
		if accept[b] {
			productive.Set(uint(b))
		}
	}
	for changed := true; changed; {
		changed = false
		for b := 0; b < numBlocks; b++ {
			if productive.Test(uint(b)) {
				continue
			}
			for _, dest := range next[b] {
				if productive.Test(uint(dest)) {
					productive.Set(uint(b))
					changed = true
					break
				}
			}
		}
	}

	keep := func(b int) bool {
		return b == start || (reachable.Test(uint(b)) && productive.Test(uint(b)))
	}

	remap := make([]int, numBlocks)
	out := newDFA(alphabet)
	for b := 0; b < numBlocks; b++ {
		if keep(b) {
			remap[b] = out.newState()
			out.setAccept(remap[b], accept[b])
		} else {
			remap[b] = -1
		}
	}
	for b := 0; b < numBlocks; b++ {
		if remap[b] == -1 {
			continue
		}
		for si, sym := range alphabet {
			dest := next[b][si]
			if remap[dest] != -1 {
				out.addArc(remap[b], sym, remap[dest])
			}
		}
	}
	out.start = remap[start]
	return out
}
