package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/CompileLord/Test-programm-for-Schools/internal/database"
	"github.com/CompileLord/Test-programm-for-Schools/internal/models"
	"github.com/CompileLord/Test-programm-for-Schools/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a uniquely named in-memory sqlite database. The shared
// cache keeps the database alive across gorm's pooled connections.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestResolver builds a resolver over fresh stores. online may be nil
// to model a local-only installation.
func newTestResolver(t *testing.T, withOnline bool) (*store.Resolver, *gorm.DB, *gorm.DB) {
	t.Helper()
	local := openTestDB(t)
	var online *gorm.DB
	if withOnline {
		online = openTestDB(t)
	}
	return store.NewResolver(local, online, 200*time.Millisecond), local, online
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCategory(t *testing.T, db *gorm.DB, title string) *models.Category {
	t.Helper()
	category := models.Category{Title: title}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func seedQuiz(t *testing.T, db *gorm.DB, userID, categoryID uint, title string) *models.Quiz {
	t.Helper()
	quiz := models.Quiz{
		UserID:     userID,
		CategoryID: categoryID,
		Title:      title,
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}

// seedQuestion creates a question with the given number of choices, the
// first one correct.
func seedQuestion(t *testing.T, db *gorm.DB, quizID uint, text string, choiceCount int) *models.Question {
	t.Helper()
	question := models.Question{QuizID: quizID, Text: text}
	require.NoError(t, db.Create(&question).Error)
	for i := 0; i < choiceCount; i++ {
		choice := models.Choice{
			QuestionID: question.ID,
			Text:       fmt.Sprintf("%s choice %d", text, i+1),
			IsCorrect:  i == 0,
		}
		require.NoError(t, db.Create(&choice).Error)
	}
	require.NoError(t, db.Preload("Choices").First(&question, question.ID).Error)
	return &question
}

func correctChoice(t *testing.T, q *models.Question) uint {
	t.Helper()
	for _, c := range q.Choices {
		if c.IsCorrect {
			return c.ID
		}
	}
	t.Fatalf("question %d has no correct choice", q.ID)
	return 0
}

func wrongChoice(t *testing.T, q *models.Question) uint {
	t.Helper()
	for _, c := range q.Choices {
		if !c.IsCorrect {
			return c.ID
		}
	}
	t.Fatalf("question %d has no wrong choice", q.ID)
	return 0
}
