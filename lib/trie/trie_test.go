package trie

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milselarch/trie-rcv/lib/voting"
)

func insertRaw(t *testing.T, st *Store, raws ...[]int) {
	for _, raw := range raws {
		b, err := voting.NewBallotFromInts(raw)
		require.NoError(t, err)
		st.Insert(b)
	}
}

func collect(st *Store) map[string]uint64 {
	found := map[string]uint64{}
	st.Each(func(b voting.Ballot, count uint64) bool {
		found[b.String()] = count
		return true
	})

	return found
}

func TestStoreInsert(t *testing.T) {
	st := NewStore()
	insertRaw(t, st,
		[]int{1, 2, 3},
		[]int{1, 2, 3},
		[]int{1, 2},
		[]int{2, -1},
	)

	require.Equal(t, uint64(4), st.NumBallots())

	// duplicates are both stored and both counted, and a ballot that is
	// a prefix of another keeps its own terminal count
	found := collect(st)
	require.Equal(t, map[string]uint64{
		"[1,2,3]": 2,
		"[1,2]":   1,
		"[2,-1]":  1,
	}, found)
}

func TestStoreEachRestartable(t *testing.T) {
	st := NewStore()
	insertRaw(t, st, []int{1, 2}, []int{2, 1}, []int{3})

	require.Equal(t, collect(st), collect(st))

	{ // traversal stops when the callback returns false
		var seen int
		st.Each(func(voting.Ballot, uint64) bool {
			seen++
			return false
		})
		require.Equal(t, 1, seen)
	}
}

func TestStoreCandidates(t *testing.T) {
	st := NewStore()
	insertRaw(t, st, []int{1, 5}, []int{5, 9, -1}, []int{-2})

	candidates := st.Candidates()

	var ids []int
	for candidate := range candidates {
		ids = append(ids, int(candidate))
	}
	sort.Ints(ids)

	// special votes never show up as candidates
	require.Equal(t, []int{1, 5, 9}, ids)
}

func TestStoreDowdallScore(t *testing.T) {
	st := NewStore()
	insertRaw(t, st,
		[]int{1, 2},
		[]int{2, 1},
		[]int{1},
	)

	// candidate 1: 1 + 1/2 + 1 = 2.5, candidate 2: 1/2 + 1 = 1.5
	require.InDelta(t, 2.5, st.DowdallScore(1), 1e-9)
	require.InDelta(t, 1.5, st.DowdallScore(2), 1e-9)
	require.Equal(t, 0.0, st.DowdallScore(42))
}
