package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/openvote/election-backend/internal/handlers"
	"github.com/openvote/election-backend/internal/middleware"
	"github.com/openvote/election-backend/internal/routes"
)

type App struct {
	engine *gin.Engine
	server *http.Server
	log    *slog.Logger
	port   int
}

func NewApp(
	log *slog.Logger,
	port int,
	accounts *handlers.AccountsHandler,
	elections *handlers.ElectionHandler,
	voting *handlers.VotingHandler,
	auth *middleware.AuthMiddleware,
) *App {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Refresh-Token"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		routes.RegisterAccountRoutes(authGroup, accounts)

		publicGroup := api.Group("")
		routes.RegisterPublicRoutes(publicGroup, accounts)

		adminGroup := api.Group("", auth.Middleware(), auth.RequireAdmin())
		routes.RegisterAdminRoutes(adminGroup, accounts, elections)

		voterGroup := api.Group("", auth.Middleware(), auth.RequireVoter())
		routes.RegisterVoterRoutes(voterGroup, voting)
	}

	// Healthcheck
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	addr := fmt.Sprintf(":%d", port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return &App{
		engine: r,
		server: httpServer,
		log:    log,
		port:   port,
	}
}

func (a *App) Run() error {
	a.log.Info("HTTP server is running", slog.String("addr", a.server.Addr))
	return a.server.ListenAndServe()
}

func (a *App) Stop(ctx context.Context) error {
	a.log.Info("HTTP server is stopping")
	return a.server.Shutdown(ctx)
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}
