package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openvote/election-backend/internal/entity"
	jwtlib "github.com/openvote/election-backend/internal/lib/jwt"
	"github.com/openvote/election-backend/internal/repo"
	"github.com/openvote/election-backend/internal/services/mocks"
)

const testSecret = "test-secret"

type accountsMocks struct {
	admins    *mocks.MockAdminStorage
	voters    *mocks.MockVoterStorage
	elections *mocks.MockElectionStorage
	tokens    *mocks.MockTokenStorage
}

func newTestAccounts(t *testing.T) (*Accounts, accountsMocks) {
	ctrl := gomock.NewController(t)

	m := accountsMocks{
		admins:    mocks.NewMockAdminStorage(ctrl),
		voters:    mocks.NewMockVoterStorage(ctrl),
		elections: mocks.NewMockElectionStorage(ctrl),
		tokens:    mocks.NewMockTokenStorage(ctrl),
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAccounts(log, m.admins, m.voters, m.elections, m.tokens, testSecret, time.Minute, time.Hour), m
}

func mustHash(s string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}

func TestRegisterAdmin_Success(t *testing.T) {
	svc, m := newTestAccounts(t)

	email := gofakeit.Email()
	m.admins.EXPECT().
		SaveAdmin(gomock.Any(), "Ada", "Lovelace", email, gomock.Any()).
		Return(int64(1), nil)
	m.tokens.EXPECT().
		SaveToken(gomock.Any(), int64(1), entity.RoleAdmin, gomock.Any(), gomock.Any()).
		Return(int64(100), nil)

	id, pair, err := svc.RegisterAdmin(context.Background(), "Ada", "Lovelace", email, "password123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRegisterAdmin_ShortPassword(t *testing.T) {
	svc, _ := newTestAccounts(t)

	_, _, err := svc.RegisterAdmin(context.Background(), "Ada", "Lovelace", gofakeit.Email(), "short")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterAdmin_MissingFirstName(t *testing.T) {
	svc, _ := newTestAccounts(t)

	_, _, err := svc.RegisterAdmin(context.Background(), "", "Lovelace", gofakeit.Email(), "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterAdmin_EmailTaken(t *testing.T) {
	svc, m := newTestAccounts(t)

	m.admins.EXPECT().
		SaveAdmin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), repo.ErrAdminExists)

	_, _, err := svc.RegisterAdmin(context.Background(), "Ada", "Lovelace", gofakeit.Email(), "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrAdminExists)
}

func TestLoginAdmin_Success(t *testing.T) {
	svc, m := newTestAccounts(t)

	admin := entity.Admin{ID: 1, Email: "ada@example.com", PassHash: mustHash("password123")}
	m.admins.EXPECT().AdminByEmail(gomock.Any(), admin.Email).Return(admin, nil)
	m.tokens.EXPECT().
		SaveToken(gomock.Any(), int64(1), entity.RoleAdmin, gomock.Any(), gomock.Any()).
		Return(int64(100), nil)

	got, pair, err := svc.LoginAdmin(context.Background(), admin.Email, "password123")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestLoginAdmin_WrongPassword(t *testing.T) {
	svc, m := newTestAccounts(t)

	admin := entity.Admin{ID: 1, Email: "ada@example.com", PassHash: mustHash("password123")}
	m.admins.EXPECT().AdminByEmail(gomock.Any(), admin.Email).Return(admin, nil)

	_, _, err := svc.LoginAdmin(context.Background(), admin.Email, "wrongpassword")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAdmin_NotFound(t *testing.T) {
	svc, m := newTestAccounts(t)

	m.admins.EXPECT().AdminByEmail(gomock.Any(), gomock.Any()).
		Return(entity.Admin{}, repo.ErrAdminNotFound)

	_, _, err := svc.LoginAdmin(context.Background(), "nobody@example.com", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginVoter_Success(t *testing.T) {
	svc, m := newTestAccounts(t)

	election := entity.Election{ID: 10, URLString: "board26", Running: true}
	voter := entity.Voter{ID: 30, VoterID: "voter1", PassHash: mustHash("password123"), ElectionID: 10}

	m.elections.EXPECT().ElectionByURL(gomock.Any(), "board26").Return(election, nil)
	m.voters.EXPECT().VoterInElection(gomock.Any(), int64(10), "voter1").Return(voter, nil)
	m.tokens.EXPECT().
		SaveToken(gomock.Any(), int64(30), entity.RoleVoter, gomock.Any(), gomock.Any()).
		Return(int64(100), nil)

	got, _, pair, err := svc.LoginVoter(context.Background(), "board26", "voter1", "password123")
	require.NoError(t, err)
	assert.Equal(t, voter.ID, got.ID)

	identity, err := jwtlib.ParseIdentity(pair.AccessToken, testSecret, "access")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVoter, identity.Role)
	assert.Equal(t, int64(10), identity.ElectionID)
}

func TestLoginVoter_DraftElection(t *testing.T) {
	svc, m := newTestAccounts(t)

	m.elections.EXPECT().ElectionByURL(gomock.Any(), "board26").
		Return(entity.Election{ID: 10, URLString: "board26"}, nil)

	_, _, _, err := svc.LoginVoter(context.Background(), "board26", "voter1", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrElectionNotFound)
}

func TestLoginVoter_EndedElectionStillAuthenticates(t *testing.T) {
	svc, m := newTestAccounts(t)

	election := entity.Election{ID: 10, URLString: "board26", Ended: true}
	voter := entity.Voter{ID: 30, VoterID: "voter1", PassHash: mustHash("password123"), ElectionID: 10}

	m.elections.EXPECT().ElectionByURL(gomock.Any(), "board26").Return(election, nil)
	m.voters.EXPECT().VoterInElection(gomock.Any(), int64(10), "voter1").Return(voter, nil)
	m.tokens.EXPECT().
		SaveToken(gomock.Any(), int64(30), entity.RoleVoter, gomock.Any(), gomock.Any()).
		Return(int64(100), nil)

	got, gotElection, pair, err := svc.LoginVoter(context.Background(), "board26", "voter1", "password123")
	require.NoError(t, err)
	assert.Equal(t, voter.ID, got.ID)
	assert.True(t, gotElection.Ended)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestLoginVoter_WrongCredentials(t *testing.T) {
	svc, m := newTestAccounts(t)

	election := entity.Election{ID: 10, URLString: "board26", Running: true}
	m.elections.EXPECT().ElectionByURL(gomock.Any(), "board26").Return(election, nil)
	m.voters.EXPECT().VoterInElection(gomock.Any(), int64(10), "voter1").
		Return(entity.Voter{}, repo.ErrVoterNotFound)

	_, _, _, err := svc.LoginVoter(context.Background(), "board26", "voter1", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func buildRefreshToken(t *testing.T, identity entity.Identity, ttl time.Duration) string {
	t.Helper()
	pair, err := jwtlib.NewTokenPair(identity, testSecret, time.Minute, ttl)
	require.NoError(t, err)
	return pair.RefreshToken
}

func TestRefreshTokens_Success(t *testing.T) {
	svc, m := newTestAccounts(t)

	identity := entity.Identity{ID: 1, Role: entity.RoleAdmin}
	refresh := buildRefreshToken(t, identity, time.Hour)

	m.tokens.EXPECT().IsRefreshTokenValid(gomock.Any(), int64(1), entity.RoleAdmin, refresh).Return(true, nil)
	m.tokens.EXPECT().DeleteRefreshToken(gomock.Any(), int64(1), entity.RoleAdmin, refresh).Return(nil)
	m.tokens.EXPECT().
		SaveToken(gomock.Any(), int64(1), entity.RoleAdmin, gomock.Any(), gomock.Any()).
		Return(int64(101), nil)

	pair, err := svc.RefreshTokens(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshTokens_Revoked(t *testing.T) {
	svc, m := newTestAccounts(t)

	identity := entity.Identity{ID: 1, Role: entity.RoleAdmin}
	refresh := buildRefreshToken(t, identity, time.Hour)

	m.tokens.EXPECT().IsRefreshTokenValid(gomock.Any(), int64(1), entity.RoleAdmin, refresh).Return(false, nil)

	_, err := svc.RefreshTokens(context.Background(), refresh)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwtlib.ErrInvalidToken)
}

func TestRefreshTokens_AccessTokenRejected(t *testing.T) {
	svc, _ := newTestAccounts(t)

	pair, err := jwtlib.NewTokenPair(entity.Identity{ID: 1, Role: entity.RoleAdmin}, testSecret, time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = svc.RefreshTokens(context.Background(), pair.AccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwtlib.ErrInvalidToken)
}

func TestLogout_Success(t *testing.T) {
	svc, m := newTestAccounts(t)

	identity := entity.Identity{ID: 1, Role: entity.RoleAdmin}
	refresh := buildRefreshToken(t, identity, time.Hour)

	m.tokens.EXPECT().DeleteRefreshToken(gomock.Any(), int64(1), entity.RoleAdmin, refresh).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), refresh))
}

func TestChangeAdminPassword_WrongOldPassword(t *testing.T) {
	svc, m := newTestAccounts(t)

	admin := entity.Admin{ID: 1, PassHash: mustHash("password123")}
	m.admins.EXPECT().Admin(gomock.Any(), int64(1)).Return(admin, nil)

	err := svc.ChangeAdminPassword(context.Background(), 1, "wrongpassword", "newpassword1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangeAdminPassword_Success(t *testing.T) {
	svc, m := newTestAccounts(t)

	admin := entity.Admin{ID: 1, PassHash: mustHash("password123")}
	m.admins.EXPECT().Admin(gomock.Any(), int64(1)).Return(admin, nil)
	m.admins.EXPECT().UpdateAdminPassword(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	require.NoError(t, svc.ChangeAdminPassword(context.Background(), 1, "password123", "newpassword1"))
}
