package election

import (
	"github.com/milselarch/trie-rcv/lib/trie"
	"github.com/milselarch/trie-rcv/lib/voting"
)

// TallyResult is the outcome of one round of counting. Exhausted
// ballots keep weighing on ActiveBallotTotal the same way withheld
// ballots do; only abstained ballots leave the denominator.
type TallyResult struct {
	Counts            map[voting.Candidate]uint64
	WithheldCount     uint64
	AbstainedCount    uint64
	ExhaustedCount    uint64
	ActiveBallotTotal uint64
	TotalBallots      uint64
}

// Tally counts, for every ballot, its highest-ranked candidate not in
// eliminated, together with the withheld, abstained and exhausted
// ballot totals for the round.
func Tally(st *trie.Store, eliminated map[voting.Candidate]bool) (result TallyResult) {
	result.Counts = map[voting.Candidate]uint64{}

	st.Each(func(b voting.Ballot, count uint64) bool {
		outcome, candidate := b.HighestActivePreference(eliminated)
		switch outcome {
		case voting.PreferenceCANDIDATE:
			result.Counts[candidate] += count
		case voting.PreferenceWITHHELD:
			result.WithheldCount += count
		case voting.PreferenceABSTAINED:
			result.AbstainedCount += count
		case voting.PreferenceEXHAUSTED:
			result.ExhaustedCount += count
		}

		return true
	})

	result.TotalBallots = st.NumBallots()
	result.ActiveBallotTotal = result.TotalBallots - result.AbstainedCount

	return
}

// HasMajority reports whether candidate holds a strict majority of the
// active ballot pool; `count*2 > total` keeps the comparison integer
// safe.
func (t TallyResult) HasMajority(candidate voting.Candidate) bool {
	return t.Counts[candidate]*2 > t.ActiveBallotTotal
}

// MajorityWinner returns the round's majority holder; at most one
// candidate can hold a strict majority.
func (t TallyResult) MajorityWinner() (winner voting.Candidate, found bool) {
	for candidate := range t.Counts {
		if t.HasMajority(candidate) {
			return candidate, true
		}
	}

	return
}
