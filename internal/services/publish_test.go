package services

import (
	"context"
	"testing"

	"github.com/CompileLord/Test-programm-for-Schools/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishCopiesFullGraph(t *testing.T) {
	resolver, local, online := newTestResolver(t, true)
	svc := NewPublishService(resolver)

	user := seedUser(t, local, "alice")
	category := seedCategory(t, local, "Geography")
	category.ImageURL = "/uploads/geo.png"
	require.NoError(t, local.Save(category).Error)
	quiz := seedQuiz(t, local, user.ID, category.ID, "Capitals")
	seedQuestion(t, local, quiz.ID, "Q1", 3)
	seedQuestion(t, local, quiz.ID, "Q2", 4)

	published, err := svc.Publish(context.Background(), quiz.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, published.Public)

	var localQuiz models.Quiz
	require.NoError(t, local.First(&localQuiz, quiz.ID).Error)
	assert.True(t, localQuiz.Public)

	var onlineUser models.User
	require.NoError(t, online.Where("username = ?", "alice").First(&onlineUser).Error)
	assert.Equal(t, user.Email, onlineUser.Email)

	var onlineCategory models.Category
	require.NoError(t, online.Where("title = ?", "Geography").First(&onlineCategory).Error)
	assert.Equal(t, "/uploads/geo.png", onlineCategory.ImageURL)

	var onlineQuiz models.Quiz
	require.NoError(t, online.Preload("Questions").Preload("Questions.Choices").
		Where("title = ?", "Capitals").First(&onlineQuiz).Error)
	assert.True(t, onlineQuiz.Public)
	assert.Equal(t, onlineUser.ID, onlineQuiz.UserID)
	assert.Equal(t, onlineCategory.ID, onlineQuiz.CategoryID)
	assert.Equal(t, quiz.DateCreated.Unix(), onlineQuiz.DateCreated.Unix())
	require.Len(t, onlineQuiz.Questions, 2)

	for _, q := range onlineQuiz.Questions {
		correct := 0
		for _, c := range q.Choices {
			if c.IsCorrect {
				correct++
			}
		}
		assert.Equal(t, 1, correct, "question %q lost its correct choice", q.Text)
	}
}

func TestPublishIdempotentOnUserAndCategory(t *testing.T) {
	resolver, local, online := newTestResolver(t, true)
	svc := NewPublishService(resolver)

	user := seedUser(t, local, "alice")
	category := seedCategory(t, local, "Geography")
	quiz := seedQuiz(t, local, user.ID, category.ID, "Capitals")
	seedQuestion(t, local, quiz.ID, "Q1", 3)

	_, err := svc.Publish(context.Background(), quiz.ID, user.ID)
	require.NoError(t, err)
	_, err = svc.Publish(context.Background(), quiz.ID, user.ID)
	require.NoError(t, err)

	var userCount, categoryCount, quizCount int64
	online.Model(&models.User{}).Count(&userCount)
	online.Model(&models.Category{}).Count(&categoryCount)
	online.Model(&models.Quiz{}).Count(&quizCount)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 1, categoryCount)
	assert.EqualValues(t, 2, quizCount)
}

func TestPublishFirstWriterWinsOnCategoryImage(t *testing.T) {
	resolver, local, online := newTestResolver(t, true)
	svc := NewPublishService(resolver)

	existing := seedCategory(t, online, "Geography")
	existing.ImageURL = "/uploads/original.png"
	require.NoError(t, online.Save(existing).Error)

	user := seedUser(t, local, "alice")
	category := seedCategory(t, local, "Geography")
	category.ImageURL = "/uploads/mine.png"
	require.NoError(t, local.Save(category).Error)
	quiz := seedQuiz(t, local, user.ID, category.ID, "Capitals")

	_, err := svc.Publish(context.Background(), quiz.ID, user.ID)
	require.NoError(t, err)

	var onlineCategory models.Category
	require.NoError(t, online.Where("title = ?", "Geography").First(&onlineCategory).Error)
	assert.Equal(t, "/uploads/original.png", onlineCategory.ImageURL)
}

func TestPublishFailsWhenOnlineUnavailable(t *testing.T) {
	resolver, local, online := newTestResolver(t, true)
	svc := NewPublishService(resolver)

	user := seedUser(t, local, "alice")
	category := seedCategory(t, local, "Geography")
	quiz := seedQuiz(t, local, user.ID, category.ID, "Capitals")

	sqlDB, err := online.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.Publish(context.Background(), quiz.ID, user.ID)
	require.Error(t, err)

	// The local quiz must not be flagged public after a failed publish.
	var localQuiz models.Quiz
	require.NoError(t, local.First(&localQuiz, quiz.ID).Error)
	assert.False(t, localQuiz.Public)
}

func TestPublishOwnershipScoped(t *testing.T) {
	resolver, local, _ := newTestResolver(t, true)
	svc := NewPublishService(resolver)

	alice := seedUser(t, local, "alice")
	bob := seedUser(t, local, "bob")
	category := seedCategory(t, local, "Geography")
	quiz := seedQuiz(t, local, alice.ID, category.ID, "Capitals")

	_, err := svc.Publish(context.Background(), quiz.ID, bob.ID)
	assert.EqualError(t, err, "quiz not found")
}
