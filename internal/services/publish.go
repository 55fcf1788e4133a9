package services

import (
	"context"
	"errors"
	"log"

	"github.com/CompileLord/Test-programm-for-Schools/internal/models"
	"github.com/CompileLord/Test-programm-for-Schools/internal/store"
)

type PublishService struct {
	resolver *store.Resolver
}

func NewPublishService(resolver *store.Resolver) *PublishService {
	return &PublishService{resolver: resolver}
}

// Publish copies a locally-authored quiz into the online store so other
// users can discover it. The whole copy runs in one transaction against the
// online store; the local quiz is marked public only after the copy
// committed. Publishing the same quiz twice reuses the online user and
// category but creates a second online quiz.
func (s *PublishService) Publish(ctx context.Context, quizID, userID uint) (*models.Quiz, error) {
	local := s.resolver.Local().DB

	var quiz models.Quiz
	if err := local.Where("id = ? AND user_id = ?", quizID, userID).
		Preload("Category").
		Preload("User").
		Preload("Questions").
		Preload("Questions.Choices").
		First(&quiz).Error; err != nil {
		return nil, errors.New("quiz not found")
	}

	online, err := s.resolver.Online(ctx)
	if err != nil {
		log.Printf("publish of quiz %d failed: %v", quizID, err)
		return nil, errors.New("failed to publish quiz: online store unavailable")
	}

	tx := online.DB.Begin()

	var onlineUser models.User
	if err := tx.Where("username = ?", quiz.User.Username).First(&onlineUser).Error; err != nil {
		onlineUser = models.User{
			Username:     quiz.User.Username,
			Email:        quiz.User.Email,
			PasswordHash: quiz.User.PasswordHash,
		}
		if err := tx.Create(&onlineUser).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	// First writer wins on the image: a category that already exists online
	// keeps whatever image it was created with.
	var onlineCategory models.Category
	if err := tx.Where("title = ?", quiz.Category.Title).First(&onlineCategory).Error; err != nil {
		onlineCategory = models.Category{
			Title:    quiz.Category.Title,
			ImageURL: quiz.Category.ImageURL,
		}
		if err := tx.Create(&onlineCategory).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	onlineQuiz := models.Quiz{
		UserID:      onlineUser.ID,
		CategoryID:  onlineCategory.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Public:      true,
		DateCreated: quiz.DateCreated,
	}
	if err := tx.Create(&onlineQuiz).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, q := range quiz.Questions {
		onlineQuestion := models.Question{
			QuizID: onlineQuiz.ID,
			Text:   q.Text,
		}
		if err := tx.Create(&onlineQuestion).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		for _, c := range q.Choices {
			onlineChoice := models.Choice{
				QuestionID: onlineQuestion.ID,
				Text:       c.Text,
				IsCorrect:  c.IsCorrect,
			}
			if err := tx.Create(&onlineChoice).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, errors.New("failed to publish quiz")
	}

	if err := local.Model(&quiz).Update("public", true).Error; err != nil {
		return nil, err
	}
	quiz.Public = true

	log.Printf("published quiz %q to online store as quiz %d", quiz.Title, onlineQuiz.ID)
	return &quiz, nil
}
