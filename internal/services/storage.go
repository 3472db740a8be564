package services

import (
	"context"
	"time"

	"github.com/openvote/election-backend/internal/entity"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks

type AdminStorage interface {
	SaveAdmin(ctx context.Context, firstName, lastName, email string, passHash []byte) (int64, error)
	Admin(ctx context.Context, id int64) (entity.Admin, error)
	AdminByEmail(ctx context.Context, email string) (entity.Admin, error)
	UpdateAdminPassword(ctx context.Context, id int64, passHash []byte) error
}

type TokenStorage interface {
	SaveToken(ctx context.Context, subjectID int64, role entity.Role, token string, expiresAt time.Time) (int64, error)
	IsRefreshTokenValid(ctx context.Context, subjectID int64, role entity.Role, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, subjectID int64, role entity.Role, token string) error
}

type ElectionStorage interface {
	SaveElection(ctx context.Context, name, urlString string, adminID int64) (int64, error)
	Election(ctx context.Context, id int64) (entity.Election, error)
	ElectionByURL(ctx context.Context, urlString string) (entity.Election, error)
	ElectionsByAdmin(ctx context.Context, adminID int64) ([]entity.Election, error)
	LaunchElection(ctx context.Context, id int64) (entity.Election, error)
	EndElection(ctx context.Context, id int64) (entity.Election, error)
}

type QuestionStorage interface {
	SaveQuestion(ctx context.Context, electionID int64, question, description string) (int64, error)
	Question(ctx context.Context, id int64) (entity.Question, error)
	QuestionsByElection(ctx context.Context, electionID int64) ([]entity.Question, error)
	CountQuestions(ctx context.Context, electionID int64) (int64, error)
	UpdateQuestion(ctx context.Context, id int64, question, description string) error
	DeleteQuestion(ctx context.Context, id int64) error
}

type OptionStorage interface {
	SaveOption(ctx context.Context, questionID int64, option string) (int64, error)
	Option(ctx context.Context, id int64) (entity.Option, error)
	OptionsByQuestion(ctx context.Context, questionID int64) ([]entity.Option, error)
	UpdateOption(ctx context.Context, id int64, option string) error
	DeleteOption(ctx context.Context, id int64) error
}

type VoterStorage interface {
	SaveVoter(ctx context.Context, electionID int64, voterID string, passHash []byte) (int64, error)
	Voter(ctx context.Context, id int64) (entity.Voter, error)
	VoterInElection(ctx context.Context, electionID int64, voterID string) (entity.Voter, error)
	VotersByElection(ctx context.Context, electionID int64) ([]entity.Voter, error)
	CountVoters(ctx context.Context, electionID int64) (int64, error)
	DeleteVoter(ctx context.Context, id int64) error
	UpdateVoterPassword(ctx context.Context, id int64, passHash []byte) error
}

type AnswerStorage interface {
	SaveAnswers(ctx context.Context, voterID, electionID int64, selections []entity.Selection) error
	AnswerCounts(ctx context.Context, electionID int64) (map[int64]map[int64]int64, error)
}
