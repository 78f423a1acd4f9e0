package voting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milselarch/trie-rcv/lib/errors"
)

func TestNewBallotFromInts(t *testing.T) {
	{ // plain ranked ballot
		b, err := NewBallotFromInts([]int{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, 3, b.Len())
		require.False(t, b.HasSpecial())
		require.Equal(t, []Candidate{1, 2, 3}, b.Rankings())
	}

	{ // trailing withhold
		b, err := NewBallotFromInts([]int{1, 2, -1})
		require.NoError(t, err)
		require.Equal(t, 3, b.Len())
		require.True(t, b.HasSpecial())
		require.Equal(t, WITHHOLD, b.Special())
	}

	{ // special vote only
		b, err := NewBallotFromInts([]int{-2})
		require.NoError(t, err)
		require.Equal(t, 1, b.Len())
		require.Equal(t, ABSTAIN, b.Special())
		require.Empty(t, b.Rankings())
	}

	{ // empty sequence
		_, err := NewBallotFromInts(nil)
		require.Equal(t, errors.BallotEmpty, err)
	}

	{ // duplicate candidate
		_, err := NewBallotFromInts([]int{1, 2, 1})
		require.Equal(t, errors.BallotDuplicateCandidate, err)
	}

	{ // special vote not in final position
		_, err := NewBallotFromInts([]int{1, -1, 2})
		require.Equal(t, errors.BallotNonFinalSpecial, err)
	}

	{ // negative value that is not a special vote
		_, err := NewBallotFromInts([]int{1, -3})
		require.Equal(t, errors.BallotInvalidVoteValue, err)
	}
}

func TestNewBallotsFromIntsAtomic(t *testing.T) {
	raws := [][]int{
		{1, 2, 3},
		{3, 1},
		{2, -1, 1},
	}

	bs, err := NewBallotsFromInts(raws)
	require.Nil(t, bs)
	require.Error(t, err)

	e, ok := err.(*errors.Error)
	require.True(t, ok)
	require.Equal(t, errors.BallotNonFinalSpecial.Code, e.Code)
	require.Equal(t, 2, e.Data["index"])
}

func TestBallotToInts(t *testing.T) {
	raw := []int{4, 0, 7, -1}
	b, err := NewBallotFromInts(raw)
	require.NoError(t, err)
	require.Equal(t, raw, b.ToInts())

	b0, err := NewBallotFromValues(b.Values())
	require.NoError(t, err)
	require.Equal(t, raw, b0.ToInts())
}

func TestHighestActivePreference(t *testing.T) {
	eliminated := func(candidates ...Candidate) map[Candidate]bool {
		m := map[Candidate]bool{}
		for _, c := range candidates {
			m[c] = true
		}
		return m
	}

	{ // highest ranked candidate still active
		b, _ := NewBallotFromInts([]int{1, 2, -1})
		outcome, candidate := b.HighestActivePreference(eliminated())
		require.Equal(t, PreferenceCANDIDATE, outcome)
		require.Equal(t, Candidate(1), candidate)
	}

	{ // first choice eliminated, vote transfers
		b, _ := NewBallotFromInts([]int{1, 2, -1})
		outcome, candidate := b.HighestActivePreference(eliminated(1))
		require.Equal(t, PreferenceCANDIDATE, outcome)
		require.Equal(t, Candidate(2), candidate)
	}

	{ // all ranked candidates eliminated, withhold reached
		b, _ := NewBallotFromInts([]int{1, 2, -1})
		outcome, _ := b.HighestActivePreference(eliminated(1, 2))
		require.Equal(t, PreferenceWITHHELD, outcome)
	}

	{ // all ranked candidates eliminated, abstain reached
		b, _ := NewBallotFromInts([]int{1, -2})
		outcome, _ := b.HighestActivePreference(eliminated(1))
		require.Equal(t, PreferenceABSTAINED, outcome)
	}

	{ // sequence exhausted without a special vote
		b, _ := NewBallotFromInts([]int{1, 2})
		outcome, _ := b.HighestActivePreference(eliminated(1, 2))
		require.Equal(t, PreferenceEXHAUSTED, outcome)
	}
}

func TestBallotRanking(t *testing.T) {
	b, _ := NewBallotFromInts([]int{3, 1, 4})

	require.Equal(t, 1, b.Ranking(3))
	require.Equal(t, 3, b.Ranking(4))
	require.Equal(t, 0, b.Ranking(9))

	require.True(t, b.RanksAbove(3, 1))
	require.False(t, b.RanksAbove(1, 3))
	require.True(t, b.RanksAbove(4, 9))  // ranked beats unranked
	require.False(t, b.RanksAbove(9, 4)) // unranked never wins
}
