package voting

import (
	"encoding/json"

	"github.com/milselarch/trie-rcv/lib/errors"
)

// Ballot is one voter's ranked candidate preferences, optionally
// terminated by a single special vote. A Ballot is validated at
// construction and immutable afterwards.
type Ballot struct {
	rankings   []Candidate
	special    SpecialVote
	hasSpecial bool
}

// NewBallotFromInts validates a raw vote value sequence; candidate ids
// are >= 0, WITHHOLD is -1 and ABSTAIN is -2.
func NewBallotFromInts(raw []int) (b Ballot, err error) {
	if len(raw) < 1 {
		err = errors.BallotEmpty
		return
	}

	seen := map[Candidate]bool{}
	lastIndex := len(raw) - 1

	for i, rawValue := range raw {
		var value Value
		if value, err = NewValueFromInt(rawValue); err != nil {
			return
		}

		if value.IsSpecial() {
			if i != lastIndex {
				err = errors.BallotNonFinalSpecial
				return
			}
			b.special = value.Special()
			b.hasSpecial = true
			continue
		}

		candidate := value.Candidate()
		if seen[candidate] {
			err = errors.BallotDuplicateCandidate
			return
		}
		seen[candidate] = true
		b.rankings = append(b.rankings, candidate)
	}

	return
}

// NewBallotFromValues validates a vote value sequence that has already
// been range-checked into Values.
func NewBallotFromValues(values []Value) (b Ballot, err error) {
	raw := make([]int, 0, len(values))
	for _, value := range values {
		raw = append(raw, int(value))
	}

	return NewBallotFromInts(raw)
}

// NewBallotsFromInts bulk-validates raw vote value sequences; it fails
// as a whole when any one sequence is invalid, reporting the offending
// index in the error data.
func NewBallotsFromInts(raws [][]int) (bs []Ballot, err error) {
	for i, raw := range raws {
		var b Ballot
		if b, err = NewBallotFromInts(raw); err != nil {
			if e, ok := err.(*errors.Error); ok {
				err = e.Clone().SetData("index", i)
			}
			return nil, err
		}
		bs = append(bs, b)
	}

	return
}

func (b Ballot) Len() int {
	length := len(b.rankings)
	if b.hasSpecial {
		length++
	}

	return length
}

// Rankings returns the ranked candidate ids, highest preference first,
// without any trailing special vote.
func (b Ballot) Rankings() []Candidate {
	rankings := make([]Candidate, len(b.rankings))
	copy(rankings, b.rankings)

	return rankings
}

func (b Ballot) HasSpecial() bool {
	return b.hasSpecial
}

func (b Ballot) Special() SpecialVote {
	return b.special
}

// Values returns the full vote value sequence including the trailing
// special vote, if any.
func (b Ballot) Values() []Value {
	values := make([]Value, 0, b.Len())
	for _, candidate := range b.rankings {
		values = append(values, Value(candidate))
	}
	if b.hasSpecial {
		values = append(values, Value(b.special))
	}

	return values
}

func (b Ballot) ToInts() []int {
	raw := make([]int, 0, b.Len())
	for _, value := range b.Values() {
		raw = append(raw, int(value))
	}

	return raw
}

// Ranking returns the 1-based position of candidate in the original
// ranked sequence, or 0 when the ballot never ranks it.
func (b Ballot) Ranking(candidate Candidate) int {
	for i, ranked := range b.rankings {
		if ranked == candidate {
			return i + 1
		}
	}

	return 0
}

// RanksAbove reports whether the ballot prefers a over b0; a ballot
// ranking a but omitting b0 counts as preferring a.
func (b Ballot) RanksAbove(a, b0 Candidate) bool {
	rankA := b.Ranking(a)
	rankB := b.Ranking(b0)

	if rankA < 1 {
		return false
	}
	if rankB < 1 {
		return true
	}

	return rankA < rankB
}

func (b Ballot) String() string {
	encoded, _ := json.Marshal(b.ToInts())
	return string(encoded)
}

// HighestActivePreference scans the ranked sequence and returns the
// first candidate not present in eliminated; failing that, the outcome
// the ballot falls through to.
func (b Ballot) HighestActivePreference(eliminated map[Candidate]bool) (PreferenceOutcome, Candidate) {
	for _, candidate := range b.rankings {
		if !eliminated[candidate] {
			return PreferenceCANDIDATE, candidate
		}
	}

	if b.hasSpecial {
		switch b.special {
		case WITHHOLD:
			return PreferenceWITHHELD, 0
		case ABSTAIN:
			return PreferenceABSTAINED, 0
		}
	}

	return PreferenceEXHAUSTED, 0
}
