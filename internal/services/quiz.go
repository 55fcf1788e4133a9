package services

import (
	"context"
	"errors"
	"strings"

	"github.com/CompileLord/Test-programm-for-Schools/internal/models"
	"github.com/CompileLord/Test-programm-for-Schools/internal/store"

	"gorm.io/gorm"
)

type QuizService struct {
	resolver *store.Resolver
}

func NewQuizService(resolver *store.Resolver) *QuizService {
	return &QuizService{resolver: resolver}
}

// ListParams filter the public and "my quizzes" listings.
type ListParams struct {
	CategoryID uint
	Query      string
	Sort       string // "asc" or "desc", default desc (newest first)
}

type BrowseResult struct {
	Quizzes    []models.Quiz     `json:"quizzes"`
	Categories []models.Category `json:"categories"`
	Source     store.Source      `json:"source"`
}

// ListQuizzes serves the main listing from the online store when it is
// reachable, otherwise from the local one.
func (s *QuizService) ListQuizzes(ctx context.Context, p ListParams) (*BrowseResult, error) {
	h := s.resolver.Listing(ctx)

	var quizzes []models.Quiz
	if err := applyListParams(h.DB.Model(&models.Quiz{}), p).
		Preload("Category").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := h.DB.Find(&categories).Error; err != nil {
		return nil, err
	}

	return &BrowseResult{Quizzes: quizzes, Categories: categories, Source: h.Source}, nil
}

// MyQuizzes lists the current user's own quizzes from the local store.
func (s *QuizService) MyQuizzes(userID uint, p ListParams) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := applyListParams(s.resolver.Local().DB.Model(&models.Quiz{}).Where("user_id = ?", userID), p).
		Preload("Category").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func applyListParams(db *gorm.DB, p ListParams) *gorm.DB {
	if p.CategoryID != 0 {
		db = db.Where("category_id = ?", p.CategoryID)
	}
	if p.Query != "" {
		// Case-insensitive substring match on title or description,
		// portable across sqlite and postgres.
		like := "%" + strings.ToLower(p.Query) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if p.Sort == "asc" {
		return db.Order("date_created ASC")
	}
	return db.Order("date_created DESC")
}

type QuizDetail struct {
	Quiz    *models.Quiz `json:"quiz"`
	Source  store.Source `json:"source"`
	IsOwner bool         `json:"is_owner"`
	CanTake bool         `json:"can_take"`
}

// GetQuiz resolves a quiz from either store and loads its full question
// graph from the store it was found in.
func (s *QuizService) GetQuiz(ctx context.Context, quizID, viewerID uint) (*QuizDetail, error) {
	quiz, h, err := s.resolver.ResolveQuiz(ctx, quizID, "Category", "Questions", "Questions.Choices")
	if err != nil {
		return nil, errors.New("quiz not found")
	}

	// Ownership is matched by username: the viewer is always a local user,
	// while the quiz may live in the online store under a copied account.
	isOwner := false
	if viewerID != 0 {
		var viewer models.User
		if err := s.resolver.Local().DB.First(&viewer, viewerID).Error; err == nil {
			var owner models.User
			if err := h.DB.First(&owner, quiz.UserID).Error; err == nil {
				isOwner = owner.Username == viewer.Username
			}
		}
	}

	return &QuizDetail{
		Quiz:    quiz,
		Source:  h.Source,
		IsOwner: isOwner,
		CanTake: viewerID != 0 && len(quiz.Questions) > 0,
	}, nil
}

type QuizInput struct {
	Title       string
	Description string
	CategoryID  uint
}

// CreateQuiz makes a new local quiz owned by the authenticated user. The
// owner is assigned server-side and public always starts false.
func (s *QuizService) CreateQuiz(userID uint, input QuizInput) (*models.Quiz, error) {
	db := s.resolver.Local().DB

	var category models.Category
	if err := db.First(&category, input.CategoryID).Error; err != nil {
		return nil, errors.New("category not found")
	}

	quiz := models.Quiz{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	db.Preload("Category").First(&quiz, quiz.ID)
	return &quiz, nil
}

// UpdateQuiz edits title/description/category. Owner, public flag and
// creation date are not updatable here.
func (s *QuizService) UpdateQuiz(quizID, userID uint, input QuizInput) (*models.Quiz, error) {
	db := s.resolver.Local().DB

	var quiz models.Quiz
	if err := db.Where("id = ? AND user_id = ?", quizID, userID).First(&quiz).Error; err != nil {
		return nil, errors.New("quiz not found")
	}

	var category models.Category
	if err := db.First(&category, input.CategoryID).Error; err != nil {
		return nil, errors.New("category not found")
	}

	updates := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"category_id": input.CategoryID,
	}
	if err := db.Model(&quiz).Updates(updates).Error; err != nil {
		return nil, err
	}

	db.Preload("Category").First(&quiz, quizID)
	return &quiz, nil
}

// DeleteQuiz removes a quiz with all of its questions, choices, attempts
// and answer rows. sqlite does not enforce the FK cascades by default, so
// the children are deleted explicitly inside one transaction.
func (s *QuizService) DeleteQuiz(quizID, userID uint) error {
	db := s.resolver.Local().DB

	var quiz models.Quiz
	if err := db.Where("id = ? AND user_id = ?", quizID, userID).First(&quiz).Error; err != nil {
		return errors.New("quiz not found")
	}

	tx := db.Begin()
	if err := tx.Where("question_id IN (SELECT id FROM questions WHERE quiz_id = ?)", quizID).
		Delete(&models.Choice{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("attempt_id IN (SELECT id FROM test_attempts WHERE quiz_id = ?)", quizID).
		Delete(&models.AttemptAnswer{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.TestAttempt{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&quiz).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

type ChoiceInput struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionInput struct {
	Text    string
	Choices []ChoiceInput
}

func validateChoices(choices []ChoiceInput) error {
	if len(choices) < 2 || len(choices) > 6 {
		return errors.New("a question must have 2 to 6 choices")
	}
	correctCount := 0
	for _, c := range choices {
		if c.IsCorrect {
			correctCount++
		}
	}
	if correctCount != 1 {
		return errors.New("exactly one choice must be marked as correct")
	}
	return nil
}

// CreateQuestion persists a question together with its whole choice set as
// one unit: if any row fails, nothing is kept.
func (s *QuizService) CreateQuestion(quizID, userID uint, input QuestionInput) (*models.Question, error) {
	db := s.resolver.Local().DB

	var quiz models.Quiz
	if err := db.Where("id = ? AND user_id = ?", quizID, userID).First(&quiz).Error; err != nil {
		return nil, errors.New("quiz not found")
	}

	if err := validateChoices(input.Choices); err != nil {
		return nil, err
	}

	question := models.Question{
		QuizID: quizID,
		Text:   input.Text,
	}

	tx := db.Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, c := range input.Choices {
		choice := models.Choice{
			QuestionID: question.ID,
			Text:       c.Text,
			IsCorrect:  c.IsCorrect,
		}
		if err := tx.Create(&choice).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	db.Preload("Choices").First(&question, question.ID)
	return &question, nil
}

// UpdateQuestion replaces the question text and its entire choice set in a
// single transaction.
func (s *QuizService) UpdateQuestion(questionID, userID uint, input QuestionInput) (*models.Question, error) {
	db := s.resolver.Local().DB

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return nil, errors.New("question not found")
	}

	var quiz models.Quiz
	if err := db.Where("id = ? AND user_id = ?", question.QuizID, userID).First(&quiz).Error; err != nil {
		return nil, errors.New("question not found")
	}

	if err := validateChoices(input.Choices); err != nil {
		return nil, err
	}

	tx := db.Begin()

	question.Text = input.Text
	if err := tx.Save(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Where("question_id = ?", questionID).Delete(&models.Choice{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, c := range input.Choices {
		choice := models.Choice{
			QuestionID: questionID,
			Text:       c.Text,
			IsCorrect:  c.IsCorrect,
		}
		if err := tx.Create(&choice).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	db.Preload("Choices").First(&question, questionID)
	return &question, nil
}

// DeleteQuestion removes the question and its choices and reports the
// owning quiz id so the client can return to the quiz page.
func (s *QuizService) DeleteQuestion(questionID, userID uint) (uint, error) {
	db := s.resolver.Local().DB

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return 0, errors.New("question not found")
	}

	var quiz models.Quiz
	if err := db.Where("id = ? AND user_id = ?", question.QuizID, userID).First(&quiz).Error; err != nil {
		return 0, errors.New("question not found")
	}

	tx := db.Begin()
	if err := tx.Where("question_id = ?", questionID).Delete(&models.Choice{}).Error; err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Delete(&question).Error; err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return quiz.ID, nil
}
