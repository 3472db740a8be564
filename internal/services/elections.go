package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/openvote/election-backend/internal/entity"
	"github.com/openvote/election-backend/internal/repo"
)

// ElectionAdmin is the lifecycle engine: it owns the phase rules deciding
// which mutations are legal, performs the launch/end transitions and fronts
// every structural and roster write. Ownership mismatches are reported as
// "not found" so one admin cannot probe another's elections.
type ElectionAdmin struct {
	log       *slog.Logger
	elections ElectionStorage
	questions QuestionStorage
	options   OptionStorage
	voters    VoterStorage
}

// ElectionOverview is the admin's election page payload.
type ElectionOverview struct {
	Election  entity.Election
	Questions int64
	Voters    int64
}

func NewElectionAdmin(
	log *slog.Logger,
	elections ElectionStorage,
	questions QuestionStorage,
	options OptionStorage,
	voters VoterStorage,
) *ElectionAdmin {
	return &ElectionAdmin{
		log:       log,
		elections: elections,
		questions: questions,
		options:   options,
		voters:    voters,
	}
}

// electionOwnedBy loads an election and verifies ownership. A foreign
// election is reported exactly like a missing one.
func (s *ElectionAdmin) electionOwnedBy(ctx context.Context, electionID, adminID int64) (entity.Election, error) {
	election, err := s.elections.Election(ctx, electionID)
	if err != nil {
		return entity.Election{}, err
	}
	if election.AdminID != adminID {
		return entity.Election{}, repo.ErrElectionNotFound
	}
	return election, nil
}

// assertEditable is the shared guard for structural and roster mutations:
// only draft elections may change.
func assertEditable(election entity.Election) error {
	if election.Ended {
		return repo.ErrElectionEnded
	}
	if election.Running {
		return repo.ErrElectionRunning
	}
	return nil
}

func (s *ElectionAdmin) editableElection(ctx context.Context, electionID, adminID int64) (entity.Election, error) {
	election, err := s.electionOwnedBy(ctx, electionID, adminID)
	if err != nil {
		return entity.Election{}, err
	}
	if err := assertEditable(election); err != nil {
		return entity.Election{}, err
	}
	return election, nil
}

func (s *ElectionAdmin) CreateElection(ctx context.Context, adminID int64, name, urlString string) (int64, error) {
	const op = "elections.CreateElection"

	if len(name) < 5 {
		return 0, fmt.Errorf("%w: election name length should be at least 5", ErrValidation)
	}
	if len(urlString) < 3 {
		return 0, fmt.Errorf("%w: URL string length should be at least 3", ErrValidation)
	}
	if strings.ContainsAny(urlString, " \t\n") {
		return 0, fmt.Errorf("%w: URL string cannot contain spaces", ErrValidation)
	}

	id, err := s.elections.SaveElection(ctx, name, urlString, adminID)
	if err != nil {
		if errors.Is(err, repo.ErrURLTaken) {
			return 0, fmt.Errorf("%s: %w", op, repo.ErrURLTaken)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("election created", slog.Int64("electionID", id), slog.Int64("adminID", adminID))
	return id, nil
}

func (s *ElectionAdmin) Elections(ctx context.Context, adminID int64) ([]entity.Election, error) {
	const op = "elections.Elections"

	elections, err := s.elections.ElectionsByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return elections, nil
}

func (s *ElectionAdmin) Overview(ctx context.Context, electionID, adminID int64) (ElectionOverview, error) {
	const op = "elections.Overview"

	election, err := s.electionOwnedBy(ctx, electionID, adminID)
	if err != nil {
		return ElectionOverview{}, fmt.Errorf("%s: %w", op, err)
	}

	nq, err := s.questions.CountQuestions(ctx, electionID)
	if err != nil {
		return ElectionOverview{}, fmt.Errorf("%s: %w", op, err)
	}

	nv, err := s.voters.CountVoters(ctx, electionID)
	if err != nil {
		return ElectionOverview{}, fmt.Errorf("%s: %w", op, err)
	}

	return ElectionOverview{Election: election, Questions: nq, Voters: nv}, nil
}

func (s *ElectionAdmin) Questions(ctx context.Context, electionID, adminID int64) ([]entity.Question, error) {
	const op = "elections.Questions"

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	questions, err := s.questions.QuestionsByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return questions, nil
}

func (s *ElectionAdmin) AddQuestion(ctx context.Context, electionID, adminID int64, question, description string) (int64, error) {
	const op = "elections.AddQuestion"

	if len(question) < 5 {
		return 0, fmt.Errorf("%w: question length should be at least 5", ErrValidation)
	}

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.questions.SaveQuestion(ctx, electionID, question, description)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// QuestionDetail returns a question with its options for the ballot editor.
func (s *ElectionAdmin) QuestionDetail(ctx context.Context, electionID, adminID, questionID int64) (entity.BallotItem, error) {
	const op = "elections.QuestionDetail"

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return entity.BallotItem{}, fmt.Errorf("%s: %w", op, err)
	}

	question, err := s.question(ctx, electionID, questionID)
	if err != nil {
		return entity.BallotItem{}, fmt.Errorf("%s: %w", op, err)
	}

	options, err := s.options.OptionsByQuestion(ctx, questionID)
	if err != nil {
		return entity.BallotItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return entity.BallotItem{Question: question, Options: options}, nil
}

// question loads a question and pins it to the election being acted on.
func (s *ElectionAdmin) question(ctx context.Context, electionID, questionID int64) (entity.Question, error) {
	question, err := s.questions.Question(ctx, questionID)
	if err != nil {
		return entity.Question{}, err
	}
	if question.ElectionID != electionID {
		return entity.Question{}, repo.ErrQuestionNotFound
	}
	return question, nil
}

func (s *ElectionAdmin) UpdateQuestion(ctx context.Context, electionID, adminID, questionID int64, question, description string) (entity.Question, error) {
	const op = "elections.UpdateQuestion"

	if len(question) < 5 {
		return entity.Question{}, fmt.Errorf("%w: question length should be at least 5", ErrValidation)
	}

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return entity.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.question(ctx, electionID, questionID); err != nil {
		return entity.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.questions.UpdateQuestion(ctx, questionID, question, description); err != nil {
		return entity.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return entity.Question{ID: questionID, Question: question, Description: description, ElectionID: electionID}, nil
}

// DeleteQuestion reports the last-question guard as a soft failure (false,
// nil) rather than an error: the caller renders {success:false}.
func (s *ElectionAdmin) DeleteQuestion(ctx context.Context, electionID, adminID, questionID int64) (bool, error) {
	const op = "elections.DeleteQuestion"

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.question(ctx, electionID, questionID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.questions.DeleteQuestion(ctx, questionID); err != nil {
		if errors.Is(err, repo.ErrLastQuestion) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (s *ElectionAdmin) AddOption(ctx context.Context, electionID, adminID, questionID int64, option string) (int64, error) {
	const op = "elections.AddOption"

	if option == "" {
		return 0, fmt.Errorf("%w: please enter option", ErrValidation)
	}

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.question(ctx, electionID, questionID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.options.SaveOption(ctx, questionID, option)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *ElectionAdmin) UpdateOption(ctx context.Context, electionID, adminID, questionID, optionID int64, option string) (entity.Option, error) {
	const op = "elections.UpdateOption"

	if option == "" {
		return entity.Option{}, fmt.Errorf("%w: please enter option", ErrValidation)
	}

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return entity.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.option(ctx, electionID, questionID, optionID); err != nil {
		return entity.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.options.UpdateOption(ctx, optionID, option); err != nil {
		return entity.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	return entity.Option{ID: optionID, Option: option, QuestionID: questionID}, nil
}

// DeleteOption has no last-option guard: the ballot may drop below two
// options here and only fail at launch.
func (s *ElectionAdmin) DeleteOption(ctx context.Context, electionID, adminID, questionID, optionID int64) (bool, error) {
	const op = "elections.DeleteOption"

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.option(ctx, electionID, questionID, optionID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.options.DeleteOption(ctx, optionID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (s *ElectionAdmin) option(ctx context.Context, electionID, questionID, optionID int64) (entity.Option, error) {
	option, err := s.options.Option(ctx, optionID)
	if err != nil {
		return entity.Option{}, err
	}
	if option.QuestionID != questionID {
		return entity.Option{}, repo.ErrOptionNotFound
	}
	if _, err := s.question(ctx, electionID, questionID); err != nil {
		return entity.Option{}, err
	}
	return option, nil
}

func (s *ElectionAdmin) Voters(ctx context.Context, electionID, adminID int64) ([]entity.Voter, error) {
	const op = "elections.Voters"

	election, err := s.electionOwnedBy(ctx, electionID, adminID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if election.Ended {
		return nil, fmt.Errorf("%s: %w", op, repo.ErrElectionEnded)
	}

	voters, err := s.voters.VotersByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return voters, nil
}

func (s *ElectionAdmin) AddVoter(ctx context.Context, electionID, adminID int64, voterID, password string) (int64, error) {
	const op = "elections.AddVoter"

	if voterID == "" {
		return 0, fmt.Errorf("%w: please enter voter ID", ErrValidation)
	}
	if password == "" {
		return 0, fmt.Errorf("%w: please enter password", ErrValidation)
	}
	if len(password) < 8 {
		return 0, fmt.Errorf("%w: password length should be at least 8", ErrValidation)
	}

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.voters.SaveVoter(ctx, electionID, voterID, passHash)
	if err != nil {
		if errors.Is(err, repo.ErrVoterExists) {
			return 0, fmt.Errorf("%s: %w", op, repo.ErrVoterExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// DeleteVoter reports the last-voter guard as a soft failure; a voter who has
// already voted surfaces as a hard guard error regardless of roster size.
func (s *ElectionAdmin) DeleteVoter(ctx context.Context, electionID, adminID, voterID int64) (bool, error) {
	const op = "elections.DeleteVoter"

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.voterOf(ctx, electionID, voterID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.voters.DeleteVoter(ctx, voterID); err != nil {
		if errors.Is(err, repo.ErrLastVoter) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (s *ElectionAdmin) ResetVoterPassword(ctx context.Context, electionID, adminID, voterID int64, newPassword string) error {
	const op = "elections.ResetVoterPassword"

	if newPassword == "" {
		return fmt.Errorf("%w: please enter a new password", ErrValidation)
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password length should be at least 8", ErrValidation)
	}

	if _, err := s.editableElection(ctx, electionID, adminID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	voter, err := s.voterOf(ctx, electionID, voterID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if voter.Voted {
		return fmt.Errorf("%s: %w", op, repo.ErrVoterHasVoted)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.voters.UpdateVoterPassword(ctx, voterID, passHash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ElectionAdmin) voterOf(ctx context.Context, electionID, voterID int64) (entity.Voter, error) {
	voter, err := s.voters.Voter(ctx, voterID)
	if err != nil {
		return entity.Voter{}, err
	}
	if voter.ElectionID != electionID {
		return entity.Voter{}, repo.ErrVoterNotFound
	}
	return voter, nil
}

// Preview runs the launch preconditions read-only and returns the ballot as
// voters would see it. The authoritative checks rerun inside the launch
// transaction.
func (s *ElectionAdmin) Preview(ctx context.Context, electionID, adminID int64) (entity.Ballot, error) {
	const op = "elections.Preview"

	election, err := s.electionOwnedBy(ctx, electionID, adminID)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}
	if election.Ended {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, repo.ErrElectionEnded)
	}

	questions, err := s.questions.QuestionsByElection(ctx, electionID)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(questions) < 1 {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, repo.ErrNoQuestions)
	}

	items := make([]entity.BallotItem, 0, len(questions))
	for _, q := range questions {
		options, err := s.options.OptionsByQuestion(ctx, q.ID)
		if err != nil {
			return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
		}
		if len(options) < 2 {
			return entity.Ballot{}, fmt.Errorf("%s: %w", op, &repo.FewOptionsError{QuestionID: q.ID})
		}
		items = append(items, entity.BallotItem{Question: q, Options: options})
	}

	nv, err := s.voters.CountVoters(ctx, electionID)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}
	if nv < 1 {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, repo.ErrNoVoters)
	}

	return entity.Ballot{Election: election, Items: items}, nil
}

// Launch performs the draft -> running transition. Preconditions are enforced
// atomically by the storage layer; this method adds the ownership check and
// maps nothing away, so callers can route each failure to the offending page.
func (s *ElectionAdmin) Launch(ctx context.Context, electionID, adminID int64) (entity.Election, error) {
	const op = "elections.Launch"

	if _, err := s.electionOwnedBy(ctx, electionID, adminID); err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	election, err := s.elections.LaunchElection(ctx, electionID)
	if err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("election launched", slog.Int64("electionID", electionID))
	return election, nil
}

// End performs the running -> ended transition. Terminal.
func (s *ElectionAdmin) End(ctx context.Context, electionID, adminID int64) (entity.Election, error) {
	const op = "elections.End"

	if _, err := s.electionOwnedBy(ctx, electionID, adminID); err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	election, err := s.elections.EndElection(ctx, electionID)
	if err != nil {
		return entity.Election{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("election ended", slog.Int64("electionID", electionID))
	return election, nil
}
