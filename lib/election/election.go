package election

import (
	"github.com/google/uuid"
	logging "github.com/inconshreveable/log15"

	"github.com/milselarch/trie-rcv/lib/common/observer"
	"github.com/milselarch/trie-rcv/lib/trie"
	"github.com/milselarch/trie-rcv/lib/voting"
)

// Election drives the round loop over one closed set of ballots:
// tally, majority check, elimination, repeat. The eliminated set and
// round counter live inside DetermineWinner, so one Election can be
// decided repeatedly and multiple elections never interfere.
type Election struct {
	id       string
	store    *trie.Store
	strategy voting.Strategy
	log      logging.Logger
}

func NewElection(conf Configuration) *Election {
	id := uuid.New().String()

	return &Election{
		id:       id,
		store:    trie.NewStore(),
		strategy: conf.Strategy,
		log:      log.New(logging.Ctx{"election": id}),
	}
}

func (e *Election) ID() string {
	return e.id
}

func (e *Election) Strategy() voting.Strategy {
	return e.strategy
}

func (e *Election) SetStrategy(strategy voting.Strategy) {
	e.strategy = strategy
}

func (e *Election) Store() *trie.Store {
	return e.store
}

func (e *Election) InsertBallot(b voting.Ballot) {
	e.store.Insert(b)
}

func (e *Election) InsertBallots(bs []voting.Ballot) {
	for _, b := range bs {
		e.InsertBallot(b)
	}
}

// RunElection decides a fresh election over ballots with the same
// strategy, leaving the receiver's own ballots untouched.
func (e *Election) RunElection(ballots []voting.Ballot) (voting.Candidate, bool) {
	fresh := NewElection(Configuration{Strategy: e.strategy})
	fresh.InsertBallots(ballots)

	return fresh.DetermineWinner()
}

// DetermineWinner runs rounds until a candidate holds a strict
// majority of the active ballot pool, or until the strategy can
// eliminate nobody, in which case the election is inconclusive.
func (e *Election) DetermineWinner() (winner voting.Candidate, found bool) {
	eliminated := map[voting.Candidate]bool{}

	var round uint64
	for {
		round++
		result := Tally(e.store, eliminated)
		e.log.Debug(
			"tallied round",
			"round", round,
			"counts", result.Counts,
			"withheld", result.WithheldCount,
			"abstained", result.AbstainedCount,
			"exhausted", result.ExhaustedCount,
			"active", result.ActiveBallotTotal,
		)

		if winner, found = result.MajorityWinner(); found {
			e.log.Debug("majority reached", "round", round, "winner", winner)
			e.triggerRound(round, result, nil)
			e.triggerResult(round, winner, true)
			return
		}

		removed := EliminateCandidates(e.strategy, e.store, result, eliminated)
		e.triggerRound(round, result, removed)
		if len(removed) < 1 {
			e.log.Debug("no candidate left to eliminate", "round", round)
			e.triggerResult(round, 0, false)
			return 0, false
		}

		e.log.Debug("eliminated candidates", "round", round, "candidates", removed)
		for _, candidate := range removed {
			eliminated[candidate] = true
		}
	}
}

func (e *Election) triggerRound(round uint64, result TallyResult, removed []voting.Candidate) {
	observer.ElectionObserver.Trigger(observer.EventRound, observer.RoundEvent{
		ElectionID:        e.id,
		Round:             round,
		Counts:            result.Counts,
		WithheldCount:     result.WithheldCount,
		AbstainedCount:    result.AbstainedCount,
		ExhaustedCount:    result.ExhaustedCount,
		ActiveBallotTotal: result.ActiveBallotTotal,
		Eliminated:        removed,
	})
}

func (e *Election) triggerResult(rounds uint64, winner voting.Candidate, hasWinner bool) {
	observer.ElectionObserver.Trigger(observer.EventResult, observer.ResultEvent{
		ElectionID: e.id,
		Winner:     winner,
		HasWinner:  hasWinner,
		Rounds:     rounds,
	})
}
