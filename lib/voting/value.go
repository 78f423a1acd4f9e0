package voting

import (
	"strconv"

	"github.com/milselarch/trie-rcv/lib/errors"
)

// Candidate is a candidate identifier; candidate ids are always >= 0 so
// that the negative range stays reserved for special votes.
type Candidate int

func (c Candidate) String() string {
	return strconv.Itoa(int(c))
}

type SpecialVote int

const (
	WITHHOLD SpecialVote = -1
	ABSTAIN  SpecialVote = -2
)

func (s SpecialVote) IsValid() bool {
	switch s {
	case WITHHOLD:
	case ABSTAIN:
	default:
		return false
	}

	return true
}

func (s SpecialVote) String() string {
	switch s {
	case WITHHOLD:
		return "WITHHOLD"
	case ABSTAIN:
		return "ABSTAIN"
	default:
		return ""
	}
}

// Value is one slot of a ballot; a candidate id when >= 0, a special
// vote when negative.
type Value int

func NewValueFromInt(raw int) (v Value, err error) {
	if raw < 0 && !SpecialVote(raw).IsValid() {
		err = errors.BallotInvalidVoteValue
		return
	}

	v = Value(raw)

	return
}

func (v Value) IsSpecial() bool {
	return v < 0
}

func (v Value) Candidate() Candidate {
	return Candidate(v)
}

func (v Value) Special() SpecialVote {
	return SpecialVote(v)
}
