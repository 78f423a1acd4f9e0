package voting

import (
	"strings"

	"github.com/milselarch/trie-rcv/lib/errors"
)

// Strategy selects which candidates to eliminate when a round produces
// no majority.
type Strategy uint

const (
	EliminateAll Strategy = iota
	DowdallScoring
	RankedPairs
	CondorcetRankedPairs
)

func (s Strategy) IsValid() bool {
	switch s {
	case EliminateAll:
	case DowdallScoring:
	case RankedPairs:
	case CondorcetRankedPairs:
	default:
		return false
	}

	return true
}

func (s Strategy) String() string {
	switch s {
	case EliminateAll:
		return "ELIMINATE-ALL"
	case DowdallScoring:
		return "DOWDALL-SCORING"
	case RankedPairs:
		return "RANKED-PAIRS"
	case CondorcetRankedPairs:
		return "CONDORCET-RANKED-PAIRS"
	default:
		return ""
	}
}

func ParseStrategy(s string) (strategy Strategy, err error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ELIMINATE-ALL":
		strategy = EliminateAll
	case "DOWDALL-SCORING":
		strategy = DowdallScoring
	case "RANKED-PAIRS":
		strategy = RankedPairs
	case "CONDORCET-RANKED-PAIRS":
		strategy = CondorcetRankedPairs
	default:
		err = errors.InvalidStrategy.Clone().SetData("strategy", s)
	}

	return
}
