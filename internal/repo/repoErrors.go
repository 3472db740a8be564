package repo

import (
	"errors"
	"fmt"
)

var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrAdminExists      = errors.New("admin already exists")
	ErrElectionNotFound = errors.New("election not found")
	ErrURLTaken         = errors.New("election url already in use")
	ErrQuestionNotFound = errors.New("question not found")
	ErrOptionNotFound   = errors.New("option not found")
	ErrVoterNotFound    = errors.New("voter not found")
	ErrVoterExists      = errors.New("voter id already in use")
	ErrTokenNotFound    = errors.New("token not found")

	// Phase guards. Structural mutations are refused outside of draft,
	// transitions are refused out of order.
	ErrElectionRunning    = errors.New("election is running")
	ErrElectionEnded      = errors.New("election has ended")
	ErrElectionNotRunning = errors.New("election has not launched")

	// Deletion guards.
	ErrLastQuestion  = errors.New("cannot delete the last question")
	ErrLastVoter     = errors.New("cannot delete the last voter")
	ErrVoterHasVoted = errors.New("voter has already voted")

	// Launch preconditions.
	ErrNoQuestions = errors.New("election has no questions")
	ErrNoVoters    = errors.New("election has no voters")

	// Vote casting.
	ErrAlreadyVoted = errors.New("voter has already voted")
)

// FewOptionsError reports the first question that blocks a launch because it
// has fewer than two options.
type FewOptionsError struct {
	QuestionID int64
}

func (e *FewOptionsError) Error() string {
	return fmt.Sprintf("question %d has fewer than two options", e.QuestionID)
}
