package handlers

import (
	"net/http"
	"strconv"

	"github.com/CompileLord/Test-programm-for-Schools/internal/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

// SubmitAttemptRequest maps question ids (as JSON object keys) to the
// selected choice id, e.g. {"answers": {"4": 12, "5": 17}}.
type SubmitAttemptRequest struct {
	Answers map[string]uint `json:"answers"`
}

type SubmitAttemptResponse struct {
	AttemptID      uint   `json:"attempt_id" example:"1"`
	Score          int    `json:"score" example:"2"`
	TotalQuestions int    `json:"total_questions" example:"3"`
	Percentage     int    `json:"percentage" example:"67"`
	Source         string `json:"source" example:"local"`
}

// TakeQuiz godoc
// @Summary      Take-quiz page data
// @Description  Questions and choices for a quiz, with correctness hidden
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} services.TakeView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/take [get]
func (h *AttemptHandler) TakeQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	view, err := h.attemptService.GetQuizForTaking(c.Request.Context(), uint(quizID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitAttempt godoc
// @Summary      Submit quiz answers
// @Description  Scores the submission and records an attempt in the store the quiz lives in. Unknown or foreign choice ids count as unanswered.
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body SubmitAttemptRequest true "Selected choice per question"
// @Success      201 {object} SubmitAttemptResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/attempts [post]
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	userID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	answers := make(map[uint]uint, len(req.Answers))
	for key, choiceID := range req.Answers {
		questionID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			// Malformed keys are ignored, same as an answer for a question
			// that does not exist.
			continue
		}
		answers[uint(questionID)] = choiceID
	}

	attempt, source, err := h.attemptService.Submit(c.Request.Context(), uint(quizID), userID, answers)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SubmitAttemptResponse{
		AttemptID:      attempt.ID,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		Percentage:     attempt.Percentage(),
		Source:         string(source),
	})
}

// GetResults godoc
// @Summary      Attempt results
// @Description  Per-question outcome of an owned attempt, with the correct choice shown for comparison
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Attempt ID"
// @Success      200 {object} services.ResultsView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/{id} [get]
func (h *AttemptHandler) GetResults(c *gin.Context) {
	userID := c.GetUint("user_id")
	attemptID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid attempt id"})
		return
	}

	view, err := h.attemptService.Results(c.Request.Context(), uint(attemptID), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// History godoc
// @Summary      Attempt history
// @Description  Attempts from both stores merged newest-first; count is the sum of both stores
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.HistoryView
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/me/history [get]
func (h *AttemptHandler) History(c *gin.Context) {
	userID := c.GetUint("user_id")

	view, err := h.attemptService.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
