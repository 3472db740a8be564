package app

import (
	"context"
	"log/slog"

	httpapp "github.com/openvote/election-backend/internal/app/http"
	"github.com/openvote/election-backend/internal/config"
	"github.com/openvote/election-backend/internal/handlers"
	"github.com/openvote/election-backend/internal/middleware"
	"github.com/openvote/election-backend/internal/repo/postgres"
	"github.com/openvote/election-backend/internal/services"
)

type App struct {
	HTTPServer *httpapp.App
	Elections  *services.ElectionAdmin
	Voting     *services.Voting
	Accounts   *services.Accounts
	storage    *postgres.Storage
}

func NewApp(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		panic(err)
	}

	accounts := services.NewAccounts(
		log, storage, storage, storage, storage,
		cfg.Auth.Secret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL,
	)
	elections := services.NewElectionAdmin(log, storage, storage, storage, storage)
	voting := services.NewVoting(log, storage, storage, storage, storage, storage)

	accountsHandler := handlers.NewAccountsHandler(accounts)
	electionHandler := handlers.NewElectionHandler(elections, voting)
	votingHandler := handlers.NewVotingHandler(voting)

	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.Secret)

	httpApp := httpapp.NewApp(log, cfg.HTTP.Port, accountsHandler, electionHandler, votingHandler, authMiddleware)

	return &App{
		HTTPServer: httpApp,
		Elections:  elections,
		Voting:     voting,
		Accounts:   accounts,
		storage:    storage,
	}
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return err
	}
	return a.storage.Close()
}
