package observer

import (
	"github.com/GianlucaGuarini/go-observable"

	"github.com/milselarch/trie-rcv/lib/voting"
)

var ElectionObserver = observable.New()

const (
	EventRound  = "round"
	EventResult = "result"
)

// RoundEvent is triggered on ElectionObserver once per completed round.
type RoundEvent struct {
	ElectionID        string                      `json:"election-id"`
	Round             uint64                      `json:"round"`
	Counts            map[voting.Candidate]uint64 `json:"counts"`
	WithheldCount     uint64                      `json:"withheld-count"`
	AbstainedCount    uint64                      `json:"abstained-count"`
	ExhaustedCount    uint64                      `json:"exhausted-count"`
	ActiveBallotTotal uint64                      `json:"active-ballot-total"`
	Eliminated        []voting.Candidate          `json:"eliminated"`
}

// ResultEvent is triggered on ElectionObserver when an election reaches
// a terminal state.
type ResultEvent struct {
	ElectionID string           `json:"election-id"`
	Winner     voting.Candidate `json:"winner"`
	HasWinner  bool             `json:"has-winner"`
	Rounds     uint64           `json:"rounds"`
}
