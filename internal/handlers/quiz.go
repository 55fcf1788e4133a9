package handlers

import (
	"net/http"
	"strconv"

	"github.com/CompileLord/Test-programm-for-Schools/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService    *services.QuizService
	publishService *services.PublishService
}

func NewQuizHandler(quizService *services.QuizService, publishService *services.PublishService) *QuizHandler {
	return &QuizHandler{quizService: quizService, publishService: publishService}
}

type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255" example:"Geography basics"`
	Description string `json:"description" example:"Capitals and rivers"`
	CategoryID  uint   `json:"category_id" binding:"required" example:"1"`
}

func listParams(c *gin.Context) services.ListParams {
	categoryID, _ := strconv.ParseUint(c.Query("category"), 10, 64)
	return services.ListParams{
		CategoryID: uint(categoryID),
		Query:      c.Query("q"),
		Sort:       c.Query("sort"),
	}
}

// ListQuizzes godoc
// @Summary      Main quiz listing
// @Description  Public quizzes from the online store, or the local store when online is unreachable. Filter by category and free-text query, sort by creation date.
// @Tags         quizzes
// @Produce      json
// @Param        category query int    false "Category id"
// @Param        q        query string false "Search in title or description"
// @Param        sort     query string false "asc or desc (default desc)"
// @Success      200 {object} services.BrowseResult
// @Router       /api/v1/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	result, err := h.quizService.ListQuizzes(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// MyQuizzes godoc
// @Summary      List own quizzes
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        category query int    false "Category id"
// @Param        q        query string false "Search in title or description"
// @Param        sort     query string false "asc or desc (default desc)"
// @Success      200 {array} Quiz
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/me/quizzes [get]
func (h *QuizHandler) MyQuizzes(c *gin.Context) {
	userID := c.GetUint("user_id")

	quizzes, err := h.quizService.MyQuizzes(userID, listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  Quiz detail with questions and choices, resolved from the local store first, then online
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} services.QuizDetail
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	detail, err := h.quizService.GetQuiz(c.Request.Context(), uint(quizID), c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz in the local store, owned by the authenticated user
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(userID, services.QuizInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz godoc
// @Summary      Update a quiz
// @Description  Update title, description and category; only the owner may update
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      200 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.UpdateQuiz(uint(quizID), userID, services.QuizInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Delete an owned quiz with all its questions, choices and attempts
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	if err := h.quizService.DeleteQuiz(uint(quizID), userID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "quiz deleted"})
}

// PublishQuiz godoc
// @Summary      Publish a quiz
// @Description  Copy an owned local quiz into the shared online store and mark it public
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/publish [post]
func (h *QuizHandler) PublishQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, err := h.publishService.Publish(c.Request.Context(), uint(quizID), userID)
	if err != nil {
		if err.Error() == "quiz not found" {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}
