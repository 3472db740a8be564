package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	jwtlib "github.com/openvote/election-backend/internal/lib/jwt"
	"github.com/openvote/election-backend/internal/middleware"
	"github.com/openvote/election-backend/internal/repo"
	"github.com/openvote/election-backend/internal/services"
)

type AccountsHandler struct {
	accounts *services.Accounts
}

type RegisterAdminRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

type LoginAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginVoterRequest struct {
	VoterID  string `json:"voter_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func NewAccountsHandler(accounts *services.Accounts) *AccountsHandler {
	return &AccountsHandler{accounts: accounts}
}

func (h *AccountsHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, pair, err := h.accounts.RegisterAdmin(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		case errors.Is(err, repo.ErrAdminExists):
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"admin_id":      id,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (h *AccountsHandler) LoginAdmin(c *gin.Context) {
	var req LoginAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	admin, pair, err := h.accounts.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin":         admin,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// LoginVoter authenticates against one election's public slug. A draft or
// missing election both come back as 404. An ended election still accepts the
// credentials and hands back tokens alongside a redirect to the results page.
func (h *AccountsHandler) LoginVoter(c *gin.Context) {
	urlString := c.Param("url")

	var req LoginVoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	voter, election, pair, err := h.accounts.LoginVoter(c.Request.Context(), urlString, req.VoterID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrElectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "election not found"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid voter ID or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if election.Ended {
		c.JSON(http.StatusFound, gin.H{
			"redirect":      "/vote/results",
			"voter":         voter,
			"access_token":  pair.AccessToken,
			"refresh_token": pair.RefreshToken,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"voter":         voter,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (h *AccountsHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	pair, err := h.accounts.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, jwtlib.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (h *AccountsHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.accounts.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, jwtlib.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AccountsHandler) ChangePassword(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.accounts.ChangeAdminPassword(c.Request.Context(), identity.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
