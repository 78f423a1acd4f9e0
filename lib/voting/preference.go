package voting

// PreferenceOutcome classifies what a ballot contributes in a round:
// a vote for a candidate, an explicit withhold, a self-removal, or
// nothing because every ranked candidate has been eliminated.
type PreferenceOutcome uint

const (
	PreferenceNONE PreferenceOutcome = iota
	PreferenceCANDIDATE
	PreferenceWITHHELD
	PreferenceABSTAINED
	PreferenceEXHAUSTED
)

func (p PreferenceOutcome) String() string {
	switch p {
	case PreferenceCANDIDATE:
		return "CANDIDATE"
	case PreferenceWITHHELD:
		return "WITHHELD"
	case PreferenceABSTAINED:
		return "ABSTAINED"
	case PreferenceEXHAUSTED:
		return "EXHAUSTED"
	default:
		return ""
	}
}
