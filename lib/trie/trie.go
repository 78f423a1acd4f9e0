package trie

import (
	"github.com/milselarch/trie-rcv/lib/voting"
)

type node struct {
	children map[voting.Value]*node
	numVotes uint64
	numEnds  uint64
}

func newNode() *node {
	return &node{children: map[voting.Value]*node{}}
}

func (n *node) searchOrCreateChild(value voting.Value) *node {
	child, found := n.children[value]
	if !found {
		child = newNode()
		n.children[value] = child
	}

	return child
}

// Store indexes ballots by their ranked vote value sequence; ballots
// sharing a preference prefix share a path. Duplicate ballots are both
// stored and both counted. The Store owns every inserted ballot for the
// lifetime of the election.
type Store struct {
	root       *node
	numBallots uint64

	candidates    map[voting.Candidate]bool
	dowdallScores map[voting.Candidate]float64
}

func NewStore() *Store {
	return &Store{
		root:          newNode(),
		candidates:    map[voting.Candidate]bool{},
		dowdallScores: map[voting.Candidate]float64{},
	}
}

func (st *Store) Insert(b voting.Ballot) {
	current := st.root
	for _, value := range b.Values() {
		child := current.searchOrCreateChild(value)
		child.numVotes++
		current = child
	}
	current.numEnds++
	st.numBallots++

	for i, candidate := range b.Rankings() {
		st.candidates[candidate] = true
		st.dowdallScores[candidate] += 1.0 / float64(i+1)
	}
}

func (st *Store) NumBallots() uint64 {
	return st.numBallots
}

// Candidates returns every candidate ranked on any inserted ballot.
func (st *Store) Candidates() map[voting.Candidate]bool {
	candidates := map[voting.Candidate]bool{}
	for candidate := range st.candidates {
		candidates[candidate] = true
	}

	return candidates
}

// DowdallScore is the sum of reciprocal original ranks of candidate
// over all inserted ballots, accumulated at insertion time.
func (st *Store) DowdallScore(candidate voting.Candidate) float64 {
	return st.dowdallScores[candidate]
}

// Each walks the trie and calls fn once per distinct inserted ballot
// together with its multiplicity; traversal stops when fn returns
// false. The walk is restartable, Each may be called any number of
// times.
func (st *Store) Each(fn func(b voting.Ballot, count uint64) bool) {
	st.each(st.root, nil, fn)
}

func (st *Store) each(n *node, path []voting.Value, fn func(voting.Ballot, uint64) bool) bool {
	if n.numEnds > 0 {
		b, err := voting.NewBallotFromValues(path)
		if err == nil {
			if !fn(b, n.numEnds) {
				return false
			}
		}
	}

	for value, child := range n.children {
		if !st.each(child, append(path, value), fn) {
			return false
		}
	}

	return true
}
