package election

import (
	"github.com/milselarch/trie-rcv/lib/trie"
	"github.com/milselarch/trie-rcv/lib/voting"
)

// preferenceGraph is a directed graph over a candidate subset; an edge
// a -> b means more ballots rank a above b than the reverse. Built
// fresh per tie-break invocation and discarded after use.
type preferenceGraph struct {
	candidates []voting.Candidate
	beats      map[voting.Candidate]map[voting.Candidate]bool
}

func buildPreferenceGraph(st *trie.Store, candidates []voting.Candidate) *preferenceGraph {
	g := &preferenceGraph{
		candidates: candidates,
		beats:      map[voting.Candidate]map[voting.Candidate]bool{},
	}
	for _, candidate := range candidates {
		g.beats[candidate] = map[voting.Candidate]bool{}
	}

	wins := map[voting.Candidate]map[voting.Candidate]uint64{}
	for _, candidate := range candidates {
		wins[candidate] = map[voting.Candidate]uint64{}
	}

	st.Each(func(b voting.Ballot, count uint64) bool {
		for i, a := range candidates {
			for _, b0 := range candidates[i+1:] {
				if b.RanksAbove(a, b0) {
					wins[a][b0] += count
				} else if b.RanksAbove(b0, a) {
					wins[b0][a] += count
				}
			}
		}

		return true
	})

	for i, a := range candidates {
		for _, b0 := range candidates[i+1:] {
			if wins[a][b0] > wins[b0][a] {
				g.beats[a][b0] = true
			} else if wins[b0][a] > wins[a][b0] {
				g.beats[b0][a] = true
			}
		}
	}

	return g
}

func (g *preferenceGraph) hasEdges() bool {
	for _, defeated := range g.beats {
		if len(defeated) > 0 {
			return true
		}
	}

	return false
}

func (g *preferenceGraph) hasCycle() bool {
	const (
		unvisited = iota
		visiting
		visited
	)

	state := map[voting.Candidate]int{}

	var visit func(voting.Candidate) bool
	visit = func(candidate voting.Candidate) bool {
		state[candidate] = visiting
		for defeated := range g.beats[candidate] {
			switch state[defeated] {
			case visiting:
				return true
			case unvisited:
				if visit(defeated) {
					return true
				}
			}
		}
		state[candidate] = visited

		return false
	}

	for _, candidate := range g.candidates {
		if state[candidate] == unvisited {
			if visit(candidate) {
				return true
			}
		}
	}

	return false
}

// bottom returns the candidates that beat no one while at least one
// other candidate in the subset beats them.
func (g *preferenceGraph) bottom() (bottom []voting.Candidate) {
	beaten := map[voting.Candidate]bool{}
	for _, defeated := range g.beats {
		for candidate := range defeated {
			beaten[candidate] = true
		}
	}

	for _, candidate := range g.candidates {
		if len(g.beats[candidate]) < 1 && beaten[candidate] {
			bottom = append(bottom, candidate)
		}
	}

	return
}
