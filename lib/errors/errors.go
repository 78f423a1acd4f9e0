package errors

// pre-defined `Errors`
var (
	BallotEmpty              = NewError(100, "ballot has no vote values")
	BallotDuplicateCandidate = NewError(101, "candidate appears more than once in ballot")
	BallotNonFinalSpecial    = NewError(102, "special vote must be the last vote value")
	BallotInvalidVoteValue   = NewError(103, "vote value is not a candidate or special vote")
	InvalidStrategy          = NewError(110, "unknown elimination strategy")
)
