package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openvote/election-backend/internal/entity"
	"github.com/openvote/election-backend/internal/middleware"
	"github.com/openvote/election-backend/internal/repo"
	"github.com/openvote/election-backend/internal/services"
)

type VotingHandler struct {
	voting *services.Voting
}

// CastVoteRequest maps question IDs to the chosen option ID. JSON object
// keys arrive as strings.
type CastVoteRequest struct {
	Answers map[string]int64 `json:"answers" binding:"required"`
}

func NewVotingHandler(voting *services.Voting) *VotingHandler {
	return &VotingHandler{voting: voting}
}

func voterIdentity(c *gin.Context) (entity.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok || !identity.IsVoter() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return entity.Identity{}, false
	}
	return identity, true
}

// votingError maps voter-side service errors: a closed election points the
// voter at results, a consumed ballot does the same, everything the voter
// should not see is a 404.
func votingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
	case errors.Is(err, repo.ErrElectionEnded):
		c.JSON(http.StatusFound, gin.H{"error": "election has ended", "redirect": "/vote/results"})
	case errors.Is(err, repo.ErrAlreadyVoted):
		c.JSON(http.StatusFound, gin.H{"error": "you have already voted", "redirect": "/vote/results"})
	case errors.Is(err, services.ErrNotVoted):
		c.JSON(http.StatusFound, gin.H{"error": "please cast your vote first", "redirect": "/vote"})
	case errors.Is(err, repo.ErrElectionNotFound), errors.Is(err, repo.ErrVoterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "election not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// Ballot returns the voting form for the election the token is scoped to.
func (h *VotingHandler) Ballot(c *gin.Context) {
	identity, ok := voterIdentity(c)
	if !ok {
		return
	}

	ballot, err := h.voting.Ballot(c.Request.Context(), identity)
	if err != nil {
		votingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"election": ballot.Election, "ballot": ballot.Items})
}

// CastVote records the submitted selections.
func (h *VotingHandler) CastVote(c *gin.Context) {
	identity, ok := voterIdentity(c)
	if !ok {
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	picks := make(map[int64]int64, len(req.Answers))
	for key, optionID := range req.Answers {
		questionID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
			return
		}
		picks[questionID] = optionID
	}

	if err := h.voting.CastVote(c.Request.Context(), identity, picks); err != nil {
		votingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/vote/results"})
}

// Results serves the voter results page. Until the election ends a voter who
// has voted gets a pending page without tallies.
func (h *VotingHandler) Results(c *gin.Context) {
	identity, ok := voterIdentity(c)
	if !ok {
		return
	}

	results, err := h.voting.VoterResults(c.Request.Context(), identity)
	if err != nil {
		votingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"election": results.Election,
		"ended":    results.Ended,
		"tallies":  results.Tallies,
	})
}
