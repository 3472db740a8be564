package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/openvote/election-backend/internal/handlers"
)

func RegisterAccountRoutes(rg *gin.RouterGroup, handler *handlers.AccountsHandler) {
	{
		rg.POST("/register", handler.RegisterAdmin)
		rg.POST("/login", handler.LoginAdmin)
		rg.POST("/refresh", handler.Refresh)
		rg.POST("/logout", handler.Logout)
	}
}

func RegisterAdminRoutes(rg *gin.RouterGroup, accounts *handlers.AccountsHandler, elections *handlers.ElectionHandler) {
	{
		rg.POST("/auth/password", accounts.ChangePassword)

		rg.GET("/elections", elections.ListElections)
		rg.POST("/elections", elections.CreateElection)
		rg.GET("/elections/:id", elections.Overview)

		rg.GET("/elections/:id/questions", elections.Questions)
		rg.POST("/elections/:id/questions", elections.AddQuestion)
		rg.GET("/elections/:id/questions/:questionID", elections.QuestionDetail)
		rg.PUT("/elections/:id/questions/:questionID", elections.UpdateQuestion)
		rg.DELETE("/elections/:id/questions/:questionID", elections.DeleteQuestion)

		rg.POST("/elections/:id/questions/:questionID/options", elections.AddOption)
		rg.PUT("/elections/:id/questions/:questionID/options/:optionID", elections.UpdateOption)
		rg.DELETE("/elections/:id/questions/:questionID/options/:optionID", elections.DeleteOption)

		rg.GET("/elections/:id/voters", elections.Voters)
		rg.POST("/elections/:id/voters", elections.AddVoter)
		rg.DELETE("/elections/:id/voters/:voterID", elections.DeleteVoter)
		rg.PUT("/elections/:id/voters/:voterID/password", elections.ResetVoterPassword)

		rg.GET("/elections/:id/preview", elections.Preview)
		rg.POST("/elections/:id/launch", elections.Launch)
		rg.POST("/elections/:id/end", elections.End)
		rg.GET("/elections/:id/results", elections.Results)
	}
}

func RegisterVoterRoutes(rg *gin.RouterGroup, voting *handlers.VotingHandler) {
	{
		rg.GET("/vote", voting.Ballot)
		rg.POST("/vote", voting.CastVote)
		rg.GET("/vote/results", voting.Results)
	}
}

// RegisterPublicRoutes holds the election-scoped voter login reachable
// without a token.
func RegisterPublicRoutes(rg *gin.RouterGroup, accounts *handlers.AccountsHandler) {
	{
		rg.POST("/e/:url/login", accounts.LoginVoter)
	}
}
