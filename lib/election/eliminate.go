package election

import (
	"math"
	"sort"

	"github.com/milselarch/trie-rcv/lib/trie"
	"github.com/milselarch/trie-rcv/lib/voting"
)

// EliminateCandidates selects the candidates to remove for a round in
// which no majority exists. Every candidate that is equally eliminable
// under the configured strategy is eliminated at once, keeping the
// round deterministic regardless of iteration order. An empty result
// signals that no further reduction is possible.
func EliminateCandidates(
	strategy voting.Strategy, st *trie.Store,
	tally TallyResult, eliminated map[voting.Candidate]bool,
) []voting.Candidate {
	active := activeCandidates(st, eliminated)
	if len(active) < 1 {
		return nil
	}

	tied := tiedAtMinimum(tally, active)

	switch strategy {
	case voting.DowdallScoring:
		if len(tied) > 1 {
			return dowdallWeakest(st, tied)
		}
	case voting.RankedPairs:
		if len(tied) > 1 {
			return rankedPairsWeakest(st, tied, tied)
		}
	case voting.CondorcetRankedPairs:
		subset := unionCandidates(tied, tiedAtSecondLowest(tally, active))
		if len(subset) > 1 {
			return rankedPairsWeakest(st, subset, tied)
		}
	}

	return tied
}

// activeCandidates is the round's candidate universe: every candidate
// ranked on any ballot that has not yet been eliminated, sorted.
func activeCandidates(st *trie.Store, eliminated map[voting.Candidate]bool) (active []voting.Candidate) {
	for candidate := range st.Candidates() {
		if !eliminated[candidate] {
			active = append(active, candidate)
		}
	}
	sortCandidates(active)

	return
}

// tiedAtMinimum returns the candidates holding the round's lowest vote
// count; a candidate with no first preferences this round counts as
// zero, so zero can be the minimum.
func tiedAtMinimum(tally TallyResult, active []voting.Candidate) (tied []voting.Candidate) {
	var min uint64 = math.MaxUint64
	for _, candidate := range active {
		if count := tally.Counts[candidate]; count < min {
			min = count
		}
	}

	for _, candidate := range active {
		if tally.Counts[candidate] == min {
			tied = append(tied, candidate)
		}
	}

	return
}

// tiedAtSecondLowest returns the candidates holding the round's second
// smallest distinct vote count, or nothing when every active candidate
// shares one count.
func tiedAtSecondLowest(tally TallyResult, active []voting.Candidate) (tied []voting.Candidate) {
	var min uint64 = math.MaxUint64
	for _, candidate := range active {
		if count := tally.Counts[candidate]; count < min {
			min = count
		}
	}

	var second uint64 = math.MaxUint64
	for _, candidate := range active {
		if count := tally.Counts[candidate]; count > min && count < second {
			second = count
		}
	}
	if second == math.MaxUint64 {
		return
	}

	for _, candidate := range active {
		if tally.Counts[candidate] == second {
			tied = append(tied, candidate)
		}
	}

	return
}

// dowdallWeakest filters tied down to the candidates with the lowest
// Dowdall score; score ties eliminate all tied-lowest together.
func dowdallWeakest(st *trie.Store, tied []voting.Candidate) (weakest []voting.Candidate) {
	min := math.MaxFloat64
	for _, candidate := range tied {
		if score := st.DowdallScore(candidate); score < min {
			min = score
		}
	}

	for _, candidate := range tied {
		if st.DowdallScore(candidate) == min {
			weakest = append(weakest, candidate)
		}
	}

	return
}

// rankedPairsWeakest eliminates the bottom of the pairwise pecking
// order over subset. When the preference graph has a cycle, or no
// comparison separates the subset at all, it falls back to fallback,
// the EliminateAll result set for the round.
func rankedPairsWeakest(st *trie.Store, subset, fallback []voting.Candidate) []voting.Candidate {
	g := buildPreferenceGraph(st, subset)
	if !g.hasEdges() || g.hasCycle() {
		return fallback
	}

	bottom := g.bottom()
	if len(bottom) < 1 {
		return fallback
	}
	sortCandidates(bottom)

	return bottom
}

func unionCandidates(a, b []voting.Candidate) []voting.Candidate {
	merged := map[voting.Candidate]bool{}
	for _, candidate := range a {
		merged[candidate] = true
	}
	for _, candidate := range b {
		merged[candidate] = true
	}

	var union []voting.Candidate
	for candidate := range merged {
		union = append(union, candidate)
	}
	sortCandidates(union)

	return union
}

func sortCandidates(candidates []voting.Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i] < candidates[j]
	})
}
