package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/openvote/election-backend/internal/entity"
	jwtlib "github.com/openvote/election-backend/internal/lib/jwt"
	"github.com/openvote/election-backend/internal/repo"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Accounts owns both credential sets: admin accounts and per-election voter
// credentials. Voter credentials only resolve inside the election they were
// registered for.
type Accounts struct {
	log        *slog.Logger
	admins     AdminStorage
	voters     VoterStorage
	elections  ElectionStorage
	tokens     TokenStorage
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAccounts(
	log *slog.Logger,
	admins AdminStorage,
	voters VoterStorage,
	elections ElectionStorage,
	tokens TokenStorage,
	secret string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) *Accounts {
	return &Accounts{
		log:        log,
		admins:     admins,
		voters:     voters,
		elections:  elections,
		tokens:     tokens,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// RegisterAdmin creates an admin account and logs it in right away.
func (a *Accounts) RegisterAdmin(ctx context.Context, firstName, lastName, email, password string) (int64, *jwtlib.TokenPair, error) {
	const op = "accounts.RegisterAdmin"

	log := a.log.With(slog.String("op", op), slog.String("email", email))

	if firstName == "" {
		return 0, nil, fmt.Errorf("%w: please enter your first name", ErrValidation)
	}
	if email == "" {
		return 0, nil, fmt.Errorf("%w: please enter email ID", ErrValidation)
	}
	if password == "" {
		return 0, nil, fmt.Errorf("%w: please enter your password", ErrValidation)
	}
	if len(password) < 8 {
		return 0, nil, fmt.Errorf("%w: password length should be at least 8", ErrValidation)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", slog.Any("err", err))
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := a.admins.SaveAdmin(ctx, firstName, lastName, email, passHash)
	if err != nil {
		if errors.Is(err, repo.ErrAdminExists) {
			log.Warn("email already in use")
			return 0, nil, fmt.Errorf("%s: %w", op, repo.ErrAdminExists)
		}
		log.Error("failed to save admin", slog.Any("err", err))
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := a.issuePair(ctx, entity.Identity{ID: id, Role: entity.RoleAdmin})
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin registered")
	return id, pair, nil
}

// LoginAdmin verifies admin credentials and issues a token pair. A wrong
// email and a wrong password are indistinguishable to the caller.
func (a *Accounts) LoginAdmin(ctx context.Context, email, password string) (entity.Admin, *jwtlib.TokenPair, error) {
	const op = "accounts.LoginAdmin"

	log := a.log.With(slog.String("op", op))
	log.Info("attempting admin login")

	admin, err := a.admins.AdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrAdminNotFound) {
			log.Warn("admin not found")
			return entity.Admin{}, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return entity.Admin{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials")
		return entity.Admin{}, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := a.issuePair(ctx, entity.Identity{ID: admin.ID, Role: entity.RoleAdmin})
	if err != nil {
		return entity.Admin{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in")
	return admin, pair, nil
}

// LoginVoter authenticates voter credentials scoped to one election's public
// slug. Draft elections stay indistinguishable from missing ones. Credentials
// keep working after the election ends so voters can come back for the
// results; the returned election lets the caller route them there.
func (a *Accounts) LoginVoter(ctx context.Context, urlString, voterID, password string) (entity.Voter, entity.Election, *jwtlib.TokenPair, error) {
	const op = "accounts.LoginVoter"

	log := a.log.With(slog.String("op", op), slog.String("url", urlString))

	election, err := a.elections.ElectionByURL(ctx, urlString)
	if err != nil {
		return entity.Voter{}, entity.Election{}, nil, fmt.Errorf("%s: %w", op, err)
	}
	if !election.Running && !election.Ended {
		return entity.Voter{}, entity.Election{}, nil, fmt.Errorf("%s: %w", op, repo.ErrElectionNotFound)
	}

	voter, err := a.voters.VoterInElection(ctx, election.ID, voterID)
	if err != nil {
		if errors.Is(err, repo.ErrVoterNotFound) {
			log.Warn("voter not found")
			return entity.Voter{}, entity.Election{}, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return entity.Voter{}, entity.Election{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(voter.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials")
		return entity.Voter{}, entity.Election{}, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := a.issuePair(ctx, entity.Identity{ID: voter.ID, Role: entity.RoleVoter, ElectionID: election.ID})
	if err != nil {
		return entity.Voter{}, entity.Election{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("voter logged in")
	return voter, election, pair, nil
}

// RefreshTokens rotates a refresh token: the presented token must still be
// stored and unrevoked, and is replaced by a freshly issued pair.
func (a *Accounts) RefreshTokens(ctx context.Context, refreshToken string) (*jwtlib.TokenPair, error) {
	const op = "accounts.RefreshTokens"

	identity, err := jwtlib.ParseIdentity(refreshToken, a.secret, "refresh")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	valid, err := a.tokens.IsRefreshTokenValid(ctx, identity.ID, identity.Role, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !valid {
		return nil, fmt.Errorf("%s: %w", op, jwtlib.ErrInvalidToken)
	}

	if err := a.tokens.DeleteRefreshToken(ctx, identity.ID, identity.Role, refreshToken); err != nil {
		a.log.Warn("failed to delete refresh token", slog.Any("err", err))
	}

	pair, err := a.issuePair(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// Logout revokes a refresh token.
func (a *Accounts) Logout(ctx context.Context, refreshToken string) error {
	const op = "accounts.Logout"

	identity, err := jwtlib.ParseIdentity(refreshToken, a.secret, "refresh")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := a.tokens.DeleteRefreshToken(ctx, identity.ID, identity.Role, refreshToken); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info("logged out", slog.String("role", string(identity.Role)), slog.Int64("id", identity.ID))
	return nil
}

// ChangeAdminPassword requires the old password to match before replacing it.
func (a *Accounts) ChangeAdminPassword(ctx context.Context, adminID int64, oldPassword, newPassword string) error {
	const op = "accounts.ChangeAdminPassword"

	if oldPassword == "" {
		return fmt.Errorf("%w: please enter your old password", ErrValidation)
	}
	if newPassword == "" {
		return fmt.Errorf("%w: please enter a new password", ErrValidation)
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password length should be at least 8", ErrValidation)
	}

	admin, err := a.admins.Admin(ctx, adminID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.PassHash, []byte(oldPassword)); err != nil {
		return fmt.Errorf("%w: old password does not match", ErrValidation)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := a.admins.UpdateAdminPassword(ctx, adminID, passHash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info("admin password changed", slog.Int64("adminID", adminID))
	return nil
}

func (a *Accounts) issuePair(ctx context.Context, identity entity.Identity) (*jwtlib.TokenPair, error) {
	pair, err := jwtlib.NewTokenPair(identity, a.secret, a.accessTTL, a.refreshTTL)
	if err != nil {
		a.log.Error("failed to generate token pair", slog.Any("err", err))
		return nil, err
	}

	if _, err := a.tokens.SaveToken(ctx, identity.ID, identity.Role, pair.RefreshToken, time.Now().Add(a.refreshTTL)); err != nil {
		a.log.Error("failed to save refresh token", slog.Any("err", err))
		return nil, err
	}

	return pair, nil
}
