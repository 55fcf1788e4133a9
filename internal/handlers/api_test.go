package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CompileLord/Test-programm-for-Schools/internal/database"
	"github.com/CompileLord/Test-programm-for-Schools/internal/middleware"
	"github.com/CompileLord/Test-programm-for-Schools/internal/services"
	"github.com/CompileLord/Test-programm-for-Schools/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	resolver := store.NewResolver(db, nil, 200*time.Millisecond)

	authService := services.NewAuthService(db, "test-secret")
	quizService := services.NewQuizService(resolver)
	categoryService := services.NewCategoryService(resolver)
	attemptService := services.NewAttemptService(resolver)
	publishService := services.NewPublishService(resolver)

	authHandler := NewAuthHandler(authService)
	quizHandler := NewQuizHandler(quizService, publishService)
	questionHandler := NewQuestionHandler(quizService)
	categoryHandler := NewCategoryHandler(categoryService)
	attemptHandler := NewAttemptHandler(attemptService)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/quizzes", quizHandler.ListQuizzes)
	api.POST("/quizzes", middleware.JWTAuth(authService), quizHandler.CreateQuiz)
	api.GET("/quizzes/:id", middleware.OptionalAuth(authService), quizHandler.GetQuiz)
	api.POST("/quizzes/:id/questions", middleware.JWTAuth(authService), questionHandler.CreateQuestion)
	api.GET("/quizzes/:id/take", middleware.JWTAuth(authService), attemptHandler.TakeQuiz)
	api.POST("/quizzes/:id/attempts", middleware.JWTAuth(authService), attemptHandler.SubmitAttempt)
	api.GET("/attempts/:id", middleware.JWTAuth(authService), attemptHandler.GetResults)
	api.POST("/categories", middleware.JWTAuth(authService), categoryHandler.CreateCategory)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestAuthoringAndTakingFlow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var auth AuthResponse
	decode(t, w, &auth)
	require.NotEmpty(t, auth.Token)

	w = doJSON(t, r, http.MethodPost, "/api/v1/categories", auth.Token, gin.H{"title": "Geography"})
	require.Equal(t, http.StatusCreated, w.Code)
	var category Category
	decode(t, w, &category)

	w = doJSON(t, r, http.MethodPost, "/api/v1/quizzes", auth.Token, gin.H{
		"title": "Capitals", "category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var quiz Quiz
	decode(t, w, &quiz)
	assert.False(t, quiz.Public)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/quizzes/%d/questions", quiz.ID), auth.Token, gin.H{
		"text": "Capital of France?",
		"choices": []gin.H{
			{"text": "Paris", "is_correct": true},
			{"text": "Lyon"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var question Question
	decode(t, w, &question)
	require.Len(t, question.Choices, 2)

	var correctID uint
	for _, c := range question.Choices {
		if c.IsCorrect {
			correctID = c.ID
		}
	}
	require.NotZero(t, correctID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/quizzes/%d/take", quiz.ID), auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var take services.TakeView
	decode(t, w, &take)
	require.Len(t, take.Questions, 1)
	// Correctness is never exposed on the take page.
	assert.NotContains(t, w.Body.String(), "is_correct")

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/quizzes/%d/attempts", quiz.ID), auth.Token, gin.H{
		"answers": map[string]uint{fmt.Sprint(question.ID): correctID},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var submitted SubmitAttemptResponse
	decode(t, w, &submitted)
	assert.Equal(t, 1, submitted.Score)
	assert.Equal(t, 1, submitted.TotalQuestions)
	assert.Equal(t, 100, submitted.Percentage)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/attempts/%d", submitted.AttemptID), auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var results services.ResultsView
	decode(t, w, &results)
	require.Len(t, results.Rows, 1)
	assert.True(t, results.Rows[0].IsCorrect)
}

func TestAuthRequiredForAuthoring(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/quizzes", "", gin.H{"title": "x", "category_id": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/quizzes", "bogus-token", gin.H{"title": "x", "category_id": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetQuizNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/quizzes/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListQuizzesPublicEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/quizzes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result services.BrowseResult
	decode(t, w, &result)
	assert.Equal(t, store.SourceLocal, result.Source)
	assert.Empty(t, result.Quizzes)
}
