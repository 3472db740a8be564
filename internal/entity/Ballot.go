package entity

// BallotItem is one question with its options, as presented to a voter.
type BallotItem struct {
	Question Question
	Options  []Option
}

// Ballot is the full voting form of a running election.
type Ballot struct {
	Election Election
	Items    []BallotItem
}

// OptionCount is one option's tally on the results page.
type OptionCount struct {
	Option Option
	Votes  int64
}

// QuestionTally is the per-question breakdown of recorded answers.
type QuestionTally struct {
	Question Question
	Options  []OptionCount
}

// Results is what the results endpoints return. Tallies are only populated
// once the election has ended, except for the owning admin who may watch
// counts while the election is still running.
type Results struct {
	Election Election
	Ended    bool
	Tallies  []QuestionTally
}
