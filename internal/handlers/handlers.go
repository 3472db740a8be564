package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openvote/election-backend/internal/repo"
	"github.com/openvote/election-backend/internal/services"
)

// validationMessage strips the sentinel prefix so clients see only the
// human-readable part of a validation error.
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return 0, false
	}
	return id, true
}

// electionError maps service errors for admin election endpoints onto the
// response contract: validation failures are 400s, missing resources are
// 404s, phase guards answer with the page the client should go to, and
// launch preconditions point at the offending resource.
func electionError(c *gin.Context, electionID int64, err error) {
	var fewOptions *repo.FewOptionsError

	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
	case errors.Is(err, repo.ErrElectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "election not found"})
	case errors.Is(err, repo.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
	case errors.Is(err, repo.ErrOptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "option not found"})
	case errors.Is(err, repo.ErrVoterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "voter not found"})
	case errors.Is(err, repo.ErrURLTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "URL already taken"})
	case errors.Is(err, repo.ErrVoterExists):
		c.JSON(http.StatusConflict, gin.H{"error": "voter ID already in use"})
	case errors.Is(err, repo.ErrElectionEnded):
		c.JSON(http.StatusFound, gin.H{
			"error":    "election has ended",
			"redirect": fmt.Sprintf("/elections/%d", electionID),
		})
	case errors.Is(err, repo.ErrElectionRunning):
		c.JSON(http.StatusFound, gin.H{
			"error":    "election is running",
			"redirect": fmt.Sprintf("/elections/%d", electionID),
		})
	case errors.Is(err, repo.ErrElectionNotRunning):
		c.JSON(http.StatusFound, gin.H{
			"error":    "election has not launched",
			"redirect": fmt.Sprintf("/elections/%d", electionID),
		})
	case errors.Is(err, repo.ErrNoQuestions):
		c.JSON(http.StatusFound, gin.H{
			"error":    "please add at least one question",
			"redirect": fmt.Sprintf("/elections/%d/questions", electionID),
		})
	case errors.As(err, &fewOptions):
		c.JSON(http.StatusFound, gin.H{
			"error":    "every question needs at least two options",
			"redirect": fmt.Sprintf("/elections/%d/questions/%d", electionID, fewOptions.QuestionID),
		})
	case errors.Is(err, repo.ErrNoVoters):
		c.JSON(http.StatusFound, gin.H{
			"error":    "please add at least one voter",
			"redirect": fmt.Sprintf("/elections/%d/voters", electionID),
		})
	case errors.Is(err, repo.ErrVoterHasVoted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "voter has already voted"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
