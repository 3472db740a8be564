package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openvote/election-backend/internal/entity"
	"github.com/openvote/election-backend/internal/repo"
)

// ErrNotVoted signals that a voter asked for results before casting a ballot.
// Callers route it back to the voting form.
var ErrNotVoted = errors.New("voter has not voted yet")

// Voting serves the voter-facing side of a running election: the ballot,
// vote casting and the results page.
type Voting struct {
	log       *slog.Logger
	elections ElectionStorage
	questions QuestionStorage
	options   OptionStorage
	voters    VoterStorage
	answers   AnswerStorage
}

func NewVoting(
	log *slog.Logger,
	elections ElectionStorage,
	questions QuestionStorage,
	options OptionStorage,
	voters VoterStorage,
	answers AnswerStorage,
) *Voting {
	return &Voting{
		log:       log,
		elections: elections,
		questions: questions,
		options:   options,
		voters:    voters,
		answers:   answers,
	}
}

// votableElection loads the election a voter token is scoped to and checks it
// is still open for voting. Draft elections look like missing ones.
func (s *Voting) votableElection(ctx context.Context, identity entity.Identity) (entity.Election, entity.Voter, error) {
	election, err := s.elections.Election(ctx, identity.ElectionID)
	if err != nil {
		return entity.Election{}, entity.Voter{}, err
	}
	if election.Ended {
		return entity.Election{}, entity.Voter{}, repo.ErrElectionEnded
	}
	if !election.Running {
		return entity.Election{}, entity.Voter{}, repo.ErrElectionNotFound
	}

	voter, err := s.voters.Voter(ctx, identity.ID)
	if err != nil {
		return entity.Election{}, entity.Voter{}, err
	}
	if voter.ElectionID != election.ID {
		return entity.Election{}, entity.Voter{}, repo.ErrVoterNotFound
	}

	return election, voter, nil
}

// Ballot returns the voting form for the voter's election. A voter who has
// already voted is sent to the results page instead.
func (s *Voting) Ballot(ctx context.Context, identity entity.Identity) (entity.Ballot, error) {
	const op = "voting.Ballot"

	election, voter, err := s.votableElection(ctx, identity)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}
	if voter.Voted {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, repo.ErrAlreadyVoted)
	}

	items, err := s.ballotItems(ctx, election.ID)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	return entity.Ballot{Election: election, Items: items}, nil
}

func (s *Voting) ballotItems(ctx context.Context, electionID int64) ([]entity.BallotItem, error) {
	questions, err := s.questions.QuestionsByElection(ctx, electionID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.BallotItem, 0, len(questions))
	for _, q := range questions {
		options, err := s.options.OptionsByQuestion(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.BallotItem{Question: q, Options: options})
	}

	return items, nil
}

// CastVote records the voter's selections. Every question must be answered
// with one of its own options, and all answers land atomically together with
// the voted flag.
func (s *Voting) CastVote(ctx context.Context, identity entity.Identity, picks map[int64]int64) error {
	const op = "voting.CastVote"

	election, voter, err := s.votableElection(ctx, identity)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if voter.Voted {
		return fmt.Errorf("%s: %w", op, repo.ErrAlreadyVoted)
	}

	items, err := s.ballotItems(ctx, election.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	selections := make([]entity.Selection, 0, len(items))
	for _, item := range items {
		optionID, ok := picks[item.Question.ID]
		if !ok {
			return fmt.Errorf("%w: please answer all the questions", ErrValidation)
		}

		found := false
		for _, o := range item.Options {
			if o.ID == optionID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: invalid option for question %d", ErrValidation, item.Question.ID)
		}

		selections = append(selections, entity.Selection{QuestionID: item.Question.ID, OptionID: optionID})
	}

	if err := s.answers.SaveAnswers(ctx, voter.ID, election.ID, selections); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("vote cast",
		slog.Int64("electionID", election.ID),
		slog.Int64("voterID", voter.ID),
	)
	return nil
}

// VoterResults serves the results page to a voter. Before the election ends a
// voter who has voted sees a pending page without tallies; one who has not is
// routed back to the ballot.
func (s *Voting) VoterResults(ctx context.Context, identity entity.Identity) (entity.Results, error) {
	const op = "voting.VoterResults"

	election, err := s.elections.Election(ctx, identity.ElectionID)
	if err != nil {
		return entity.Results{}, fmt.Errorf("%s: %w", op, err)
	}
	if !election.Running && !election.Ended {
		return entity.Results{}, fmt.Errorf("%s: %w", op, repo.ErrElectionNotFound)
	}

	voter, err := s.voters.Voter(ctx, identity.ID)
	if err != nil {
		return entity.Results{}, fmt.Errorf("%s: %w", op, err)
	}
	if voter.ElectionID != election.ID {
		return entity.Results{}, fmt.Errorf("%s: %w", op, repo.ErrVoterNotFound)
	}

	if !election.Ended {
		if !voter.Voted {
			return entity.Results{}, fmt.Errorf("%s: %w", op, ErrNotVoted)
		}
		return entity.Results{Election: election, Ended: false}, nil
	}

	tallies, err := s.tallies(ctx, election.ID)
	if err != nil {
		return entity.Results{}, fmt.Errorf("%s: %w", op, err)
	}

	return entity.Results{Election: election, Ended: true, Tallies: tallies}, nil
}

// AdminResults serves tallies to the owning admin. Unlike voters the admin may
// watch live counts while the election is still running.
func (s *Voting) AdminResults(ctx context.Context, electionID, adminID int64) (entity.Results, error) {
	const op = "voting.AdminResults"

	election, err := s.elections.Election(ctx, electionID)
	if err != nil {
		return entity.Results{}, fmt.Errorf("%s: %w", op, err)
	}
	if election.AdminID != adminID {
		return entity.Results{}, fmt.Errorf("%s: %w", op, repo.ErrElectionNotFound)
	}
	if !election.Running && !election.Ended {
		return entity.Results{}, fmt.Errorf("%s: %w", op, repo.ErrElectionNotRunning)
	}

	tallies, err := s.tallies(ctx, election.ID)
	if err != nil {
		return entity.Results{}, fmt.Errorf("%s: %w", op, err)
	}

	return entity.Results{Election: election, Ended: election.Ended, Tallies: tallies}, nil
}

func (s *Voting) tallies(ctx context.Context, electionID int64) ([]entity.QuestionTally, error) {
	counts, err := s.answers.AnswerCounts(ctx, electionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.QuestionsByElection(ctx, electionID)
	if err != nil {
		return nil, err
	}

	tallies := make([]entity.QuestionTally, 0, len(questions))
	for _, q := range questions {
		options, err := s.options.OptionsByQuestion(ctx, q.ID)
		if err != nil {
			return nil, err
		}

		tally := entity.QuestionTally{Question: q, Options: make([]entity.OptionCount, 0, len(options))}
		for _, o := range options {
			tally.Options = append(tally.Options, entity.OptionCount{
				Option: o,
				Votes:  counts[q.ID][o.ID],
			})
		}
		tallies = append(tallies, tally)
	}

	return tallies, nil
}
