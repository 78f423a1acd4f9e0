package election

import (
	"github.com/milselarch/trie-rcv/lib/voting"
)

//
// Configuration carries the per-election knobs. The elimination
// strategy is fixed at construction time; DowdallScoring is the
// default.
//
type Configuration struct {
	Strategy voting.Strategy
}

func NewConfiguration() Configuration {
	p := Configuration{}

	p.Strategy = voting.DowdallScoring

	return p
}

func NewTestConfiguration() Configuration {
	return NewConfiguration()
}
