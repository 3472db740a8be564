package entity

import "time"

type Answer struct {
	ID         int64
	VoterID    int64
	ElectionID int64
	QuestionID int64
	OptionID   int64
	CreatedAt  time.Time
}

// Selection is one choice on a submitted ballot.
type Selection struct {
	QuestionID int64
	OptionID   int64
}
