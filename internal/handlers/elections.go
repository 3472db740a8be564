package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openvote/election-backend/internal/middleware"
	"github.com/openvote/election-backend/internal/services"
)

type ElectionHandler struct {
	elections *services.ElectionAdmin
	voting    *services.Voting
}

type CreateElectionRequest struct {
	ElectionName string `json:"election_name" binding:"required"`
	URLString    string `json:"url_string" binding:"required"`
}

type QuestionRequest struct {
	Question    string `json:"question" binding:"required"`
	Description string `json:"description"`
}

type OptionRequest struct {
	Option string `json:"option" binding:"required"`
}

type AddVoterRequest struct {
	VoterID  string `json:"voter_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VoterPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

func NewElectionHandler(elections *services.ElectionAdmin, voting *services.Voting) *ElectionHandler {
	return &ElectionHandler{elections: elections, voting: voting}
}

// adminID pulls the authenticated admin out of the request context.
func adminID(c *gin.Context) (int64, bool) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok || !identity.IsAdmin() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return 0, false
	}
	return identity.ID, true
}

func (h *ElectionHandler) CreateElection(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}

	var req CreateElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, err := h.elections.CreateElection(c.Request.Context(), admin, req.ElectionName, req.URLString)
	if err != nil {
		electionError(c, 0, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"election_id": id})
}

func (h *ElectionHandler) ListElections(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}

	elections, err := h.elections.Elections(c.Request.Context(), admin)
	if err != nil {
		electionError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"elections": elections})
}

func (h *ElectionHandler) Overview(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	overview, err := h.elections.Overview(c.Request.Context(), electionID, admin)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"election":  overview.Election,
		"questions": overview.Questions,
		"voters":    overview.Voters,
	})
}

func (h *ElectionHandler) Questions(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	questions, err := h.elections.Questions(c.Request.Context(), electionID, admin)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (h *ElectionHandler) AddQuestion(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, err := h.elections.AddQuestion(c.Request.Context(), electionID, admin, req.Question, req.Description)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"question_id": id})
}

func (h *ElectionHandler) QuestionDetail(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	questionID, ok := paramID(c, "questionID")
	if !ok {
		return
	}

	item, err := h.elections.QuestionDetail(c.Request.Context(), electionID, admin, questionID)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": item.Question, "options": item.Options})
}

func (h *ElectionHandler) UpdateQuestion(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	questionID, ok := paramID(c, "questionID")
	if !ok {
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	question, err := h.elections.UpdateQuestion(c.Request.Context(), electionID, admin, questionID, req.Question, req.Description)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

func (h *ElectionHandler) DeleteQuestion(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	questionID, ok := paramID(c, "questionID")
	if !ok {
		return
	}

	deleted, err := h.elections.DeleteQuestion(c.Request.Context(), electionID, admin, questionID)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": deleted})
}

func (h *ElectionHandler) AddOption(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	questionID, ok := paramID(c, "questionID")
	if !ok {
		return
	}

	var req OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, err := h.elections.AddOption(c.Request.Context(), electionID, admin, questionID, req.Option)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"option_id": id})
}

func (h *ElectionHandler) UpdateOption(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	questionID, ok := paramID(c, "questionID")
	if !ok {
		return
	}
	optionID, ok := paramID(c, "optionID")
	if !ok {
		return
	}

	var req OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	option, err := h.elections.UpdateOption(c.Request.Context(), electionID, admin, questionID, optionID, req.Option)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"option": option})
}

func (h *ElectionHandler) DeleteOption(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	questionID, ok := paramID(c, "questionID")
	if !ok {
		return
	}
	optionID, ok := paramID(c, "optionID")
	if !ok {
		return
	}

	deleted, err := h.elections.DeleteOption(c.Request.Context(), electionID, admin, questionID, optionID)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": deleted})
}

func (h *ElectionHandler) Voters(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	voters, err := h.elections.Voters(c.Request.Context(), electionID, admin)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"voters": voters})
}

func (h *ElectionHandler) AddVoter(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AddVoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, err := h.elections.AddVoter(c.Request.Context(), electionID, admin, req.VoterID, req.Password)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"voter_id": id})
}

func (h *ElectionHandler) DeleteVoter(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	voterID, ok := paramID(c, "voterID")
	if !ok {
		return
	}

	deleted, err := h.elections.DeleteVoter(c.Request.Context(), electionID, admin, voterID)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": deleted})
}

func (h *ElectionHandler) ResetVoterPassword(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}
	voterID, ok := paramID(c, "voterID")
	if !ok {
		return
	}

	var req VoterPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.elections.ResetVoterPassword(c.Request.Context(), electionID, admin, voterID, req.Password); err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Preview returns the ballot as voters would see it, or the launch
// precondition that blocks it.
func (h *ElectionHandler) Preview(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ballot, err := h.elections.Preview(c.Request.Context(), electionID, admin)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"election": ballot.Election, "ballot": ballot.Items})
}

func (h *ElectionHandler) Launch(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	election, err := h.elections.Launch(c.Request.Context(), electionID, admin)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"election": election})
}

func (h *ElectionHandler) End(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	election, err := h.elections.End(c.Request.Context(), electionID, admin)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"election": election})
}

// Results serves tallies to the owning admin.
func (h *ElectionHandler) Results(c *gin.Context) {
	admin, ok := adminID(c)
	if !ok {
		return
	}
	electionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	results, err := h.voting.AdminResults(c.Request.Context(), electionID, admin)
	if err != nil {
		electionError(c, electionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"election": results.Election,
		"ended":    results.Ended,
		"tallies":  results.Tallies,
	})
}
