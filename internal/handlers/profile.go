package handlers

import (
	"net/http"

	"github.com/CompileLord/Test-programm-for-Schools/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	authService    *services.AuthService
	attemptService *services.AttemptService
}

func NewProfileHandler(authService *services.AuthService, attemptService *services.AttemptService) *ProfileHandler {
	return &ProfileHandler{authService: authService, attemptService: attemptService}
}

type ProfileResponse struct {
	ID           uint   `json:"id" example:"1"`
	Username     string `json:"username" example:"student1"`
	Email        string `json:"email,omitempty" example:"student1@example.com"`
	AttemptCount int    `json:"attempt_count" example:"7"`
}

// Profile godoc
// @Summary      Current user profile
// @Description  User info plus the number of attempts across both stores
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/me/profile [get]
func (h *ProfileHandler) Profile(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.authService.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	attemptCount := 0
	if history, err := h.attemptService.History(c.Request.Context(), userID); err == nil {
		attemptCount = history.Count
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		AttemptCount: attemptCount,
	})
}
