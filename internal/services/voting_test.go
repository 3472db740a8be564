package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvote/election-backend/internal/entity"
	"github.com/openvote/election-backend/internal/repo"
	"github.com/openvote/election-backend/internal/services/mocks"
)

type votingMocks struct {
	elections *mocks.MockElectionStorage
	questions *mocks.MockQuestionStorage
	options   *mocks.MockOptionStorage
	voters    *mocks.MockVoterStorage
	answers   *mocks.MockAnswerStorage
}

func newTestVoting(t *testing.T) (*Voting, votingMocks) {
	ctrl := gomock.NewController(t)

	m := votingMocks{
		elections: mocks.NewMockElectionStorage(ctrl),
		questions: mocks.NewMockQuestionStorage(ctrl),
		options:   mocks.NewMockOptionStorage(ctrl),
		voters:    mocks.NewMockVoterStorage(ctrl),
		answers:   mocks.NewMockAnswerStorage(ctrl),
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewVoting(log, m.elections, m.questions, m.options, m.voters, m.answers), m
}

func runningElection(id int64) entity.Election {
	return entity.Election{ID: id, ElectionName: "Board Election", URLString: "board26", Running: true, AdminID: 1}
}

func voterIdentity(voterID, electionID int64) entity.Identity {
	return entity.Identity{ID: voterID, Role: entity.RoleVoter, ElectionID: electionID}
}

func TestBallot_Success(t *testing.T) {
	svc, m := newTestVoting(t)

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(runningElection(10), nil)
	m.voters.EXPECT().Voter(gomock.Any(), int64(30)).Return(entity.Voter{ID: 30, ElectionID: 10}, nil)
	m.questions.EXPECT().QuestionsByElection(gomock.Any(), int64(10)).
		Return([]entity.Question{{ID: 20, Question: "Who should lead?", ElectionID: 10}}, nil)
	m.options.EXPECT().OptionsByQuestion(gomock.Any(), int64(20)).
		Return([]entity.Option{{ID: 40, QuestionID: 20}, {ID: 41, QuestionID: 20}}, nil)

	ballot, err := svc.Ballot(context.Background(), voterIdentity(30, 10))
	require.NoError(t, err)
	require.Len(t, ballot.Items, 1)
	assert.Len(t, ballot.Items[0].Options, 2)
}

func TestBallot_AlreadyVoted(t *testing.T) {
	svc, m := newTestVoting(t)

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(runningElection(10), nil)
	m.voters.EXPECT().Voter(gomock.Any(), int64(30)).Return(entity.Voter{ID: 30, ElectionID: 10, Voted: true}, nil)

	_, err := svc.Ballot(context.Background(), voterIdentity(30, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrAlreadyVoted)
}

func TestBallot_ElectionEnded(t *testing.T) {
	svc, m := newTestVoting(t)

	election := runningElection(10)
	election.Running = false
	election.Ended = true
	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(election, nil)

	_, err := svc.Ballot(context.Background(), voterIdentity(30, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrElectionEnded)
}

func TestBallot_DraftLooksMissing(t *testing.T) {
	svc, m := newTestVoting(t)

	election := runningElection(10)
	election.Running = false
	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(election, nil)

	_, err := svc.Ballot(context.Background(), voterIdentity(30, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrElectionNotFound)
}

func TestCastVote_Success(t *testing.T) {
	svc, m := newTestVoting(t)

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(runningElection(10), nil)
	m.voters.EXPECT().Voter(gomock.Any(), int64(30)).Return(entity.Voter{ID: 30, ElectionID: 10}, nil)
	m.questions.EXPECT().QuestionsByElection(gomock.Any(), int64(10)).
		Return([]entity.Question{{ID: 20, ElectionID: 10}, {ID: 21, ElectionID: 10}}, nil)
	m.options.EXPECT().OptionsByQuestion(gomock.Any(), int64(20)).
		Return([]entity.Option{{ID: 40, QuestionID: 20}, {ID: 41, QuestionID: 20}}, nil)
	m.options.EXPECT().OptionsByQuestion(gomock.Any(), int64(21)).
		Return([]entity.Option{{ID: 42, QuestionID: 21}, {ID: 43, QuestionID: 21}}, nil)
	m.answers.EXPECT().
		SaveAnswers(gomock.Any(), int64(30), int64(10), []entity.Selection{
			{QuestionID: 20, OptionID: 41},
			{QuestionID: 21, OptionID: 42},
		}).
		Return(nil)

	err := svc.CastVote(context.Background(), voterIdentity(30, 10), map[int64]int64{20: 41, 21: 42})
	require.NoError(t, err)
}

func TestCastVote_MissingAnswer(t *testing.T) {
	svc, m := newTestVoting(t)

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(runningElection(10), nil)
	m.voters.EXPECT().Voter(gomock.Any(), int64(30)).Return(entity.Voter{ID: 30, ElectionID: 10}, nil)
	m.questions.EXPECT().QuestionsByElection(gomock.Any(), int64(10)).
		Return([]entity.Question{{ID: 20, ElectionID: 10}, {ID: 21, ElectionID: 10}}, nil)
	m.options.EXPECT().OptionsByQuestion(gomock.Any(), int64(20)).
		Return([]entity.Option{{ID: 40, QuestionID: 20}, {ID: 41, QuestionID: 20}}, nil)
	m.options.EXPECT().OptionsByQuestion(gomock.Any(), int64(21)).
		Return([]entity.Option{{ID: 42, QuestionID: 21}, {ID: 43, QuestionID: 21}}, nil)

	err := svc.CastVote(context.Background(), voterIdentity(30, 10), map[int64]int64{20: 41})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCastVote_ForeignOption(t *testing.T) {
	svc, m := newTestVoting(t)

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(runningElection(10), nil)
	m.voters.EXPECT().Voter(gomock.Any(), int64(30)).Return(entity.Voter{ID: 30, ElectionID: 10}, nil)
	m.questions.EXPECT().QuestionsByElection(gomock.Any(), int64(10)).
		Return([]entity.Question{{ID: 20, ElectionID: 10}}, nil)
	m.options.EXPECT().OptionsByQuestion(gomock.Any(), int64(20)).
		Return([]entity.Option{{ID: 40, QuestionID: 20}, {ID: 41, QuestionID: 20}}, nil)

	err := svc.CastVote(context.Background(), voterIdentity(30, 10), map[int64]int64{20: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVoterResults_PendingWhileRunning(t *testing.T) {
	svc, m := newTestVoting(t)

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(runningElection(10), nil)
	m.voters.EXPECT().Voter(gomock.Any(), int64(30)).Return(entity.Voter{ID: 30, ElectionID: 10, Voted: true}, nil)

	results, err := svc.VoterResults(context.Background(), voterIdentity(30, 10))
	require.NoError(t, err)
	assert.False(t, results.Ended)
	assert.Empty(t, results.Tallies)
}

func TestVoterResults_NotVotedYet(t *testing.T) {
	svc, m := newTestVoting(t)

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(runningElection(10), nil)
	m.voters.EXPECT().Voter(gomock.Any(), int64(30)).Return(entity.Voter{ID: 30, ElectionID: 10}, nil)

	_, err := svc.VoterResults(context.Background(), voterIdentity(30, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotVoted)
}

func TestVoterResults_EndedWithTallies(t *testing.T) {
	svc, m := newTestVoting(t)

	election := runningElection(10)
	election.Running = false
	election.Ended = true

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(election, nil)
	m.voters.EXPECT().Voter(gomock.Any(), int64(30)).Return(entity.Voter{ID: 30, ElectionID: 10, Voted: true}, nil)
	m.answers.EXPECT().AnswerCounts(gomock.Any(), int64(10)).
		Return(map[int64]map[int64]int64{20: {40: 2, 41: 1}}, nil)
	m.questions.EXPECT().QuestionsByElection(gomock.Any(), int64(10)).
		Return([]entity.Question{{ID: 20, Question: "Who should lead?", ElectionID: 10}}, nil)
	m.options.EXPECT().OptionsByQuestion(gomock.Any(), int64(20)).
		Return([]entity.Option{{ID: 40, QuestionID: 20}, {ID: 41, QuestionID: 20}}, nil)

	results, err := svc.VoterResults(context.Background(), voterIdentity(30, 10))
	require.NoError(t, err)
	assert.True(t, results.Ended)
	require.Len(t, results.Tallies, 1)
	require.Len(t, results.Tallies[0].Options, 2)
	assert.Equal(t, int64(2), results.Tallies[0].Options[0].Votes)
	assert.Equal(t, int64(1), results.Tallies[0].Options[1].Votes)
}

func TestAdminResults_NotOwner(t *testing.T) {
	svc, m := newTestVoting(t)

	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(runningElection(10), nil)

	_, err := svc.AdminResults(context.Background(), 10, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrElectionNotFound)
}

func TestAdminResults_DraftRefused(t *testing.T) {
	svc, m := newTestVoting(t)

	election := runningElection(10)
	election.Running = false
	m.elections.EXPECT().Election(gomock.Any(), int64(10)).Return(election, nil)

	_, err := svc.AdminResults(context.Background(), 10, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrElectionNotRunning)
}
