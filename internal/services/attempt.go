package services

import (
	"context"
	"errors"
	"sort"

	"github.com/CompileLord/Test-programm-for-Schools/internal/models"
	"github.com/CompileLord/Test-programm-for-Schools/internal/store"

	"gorm.io/gorm"
)

type AttemptService struct {
	resolver *store.Resolver
}

func NewAttemptService(resolver *store.Resolver) *AttemptService {
	return &AttemptService{resolver: resolver}
}

// TakeView is the take-quiz page payload: the questions with their choices,
// correctness hidden.
type TakeView struct {
	QuizID    uint           `json:"quiz_id"`
	Title     string         `json:"title"`
	Source    store.Source   `json:"source"`
	Questions []TakeQuestion `json:"questions"`
}

type TakeQuestion struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Choices []TakeChoice `json:"choices"`
}

type TakeChoice struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

func (s *AttemptService) GetQuizForTaking(ctx context.Context, quizID uint) (*TakeView, error) {
	quiz, h, err := s.resolver.ResolveQuiz(ctx, quizID, "Questions", "Questions.Choices")
	if err != nil {
		return nil, errors.New("quiz not found")
	}

	view := &TakeView{
		QuizID:    quiz.ID,
		Title:     quiz.Title,
		Source:    h.Source,
		Questions: make([]TakeQuestion, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		tq := TakeQuestion{ID: q.ID, Text: q.Text}
		for _, c := range q.Choices {
			tq.Choices = append(tq.Choices, TakeChoice{ID: c.ID, Text: c.Text})
		}
		view.Questions = append(view.Questions, tq)
	}
	return view, nil
}

// Submit scores one pass through a quiz and persists the attempt together
// with its per-question answer rows, in the same store the quiz lives in.
// Answers maps question id to the selected choice id; a missing entry or a
// choice that does not belong to the question counts as unanswered.
// Every call creates a new, independent attempt.
func (s *AttemptService) Submit(ctx context.Context, quizID, userID uint, answers map[uint]uint) (*models.TestAttempt, store.Source, error) {
	quiz, h, err := s.resolver.ResolveQuiz(ctx, quizID)
	if err != nil {
		return nil, "", errors.New("quiz not found")
	}

	// Questions are reloaded here so the total reflects the quiz at
	// submission time, not at render time.
	var questions []models.Question
	if err := h.DB.Where("quiz_id = ?", quiz.ID).
		Order("id ASC").
		Preload("Choices").
		Find(&questions).Error; err != nil {
		return nil, "", err
	}

	score := 0
	rows := make([]models.AttemptAnswer, 0, len(questions))
	for _, q := range questions {
		row := models.AttemptAnswer{QuestionID: q.ID}
		if choiceID, ok := answers[q.ID]; ok {
			for _, c := range q.Choices {
				if c.ID == choiceID {
					id := c.ID
					row.ChoiceID = &id
					row.IsCorrect = c.IsCorrect
					break
				}
			}
		}
		if row.IsCorrect {
			score++
		}
		rows = append(rows, row)
	}

	attemptUserID, err := s.attemptUser(h, userID)
	if err != nil {
		return nil, "", err
	}

	attempt := models.TestAttempt{
		UserID:         attemptUserID,
		QuizID:         quiz.ID,
		Score:          score,
		TotalQuestions: len(questions),
	}

	tx := h.DB.Begin()
	if err := tx.Create(&attempt).Error; err != nil {
		tx.Rollback()
		return nil, "", err
	}
	for i := range rows {
		rows[i].AttemptID = attempt.ID
		if err := tx.Create(&rows[i]).Error; err != nil {
			tx.Rollback()
			return nil, "", err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, "", err
	}

	return &attempt, h.Source, nil
}

// attemptUser maps the local user onto the store the attempt is written to.
// Online attempts get-or-create the matching online account by username.
func (s *AttemptService) attemptUser(h store.Handle, localUserID uint) (uint, error) {
	if h.Source == store.SourceLocal {
		return localUserID, nil
	}

	var local models.User
	if err := s.resolver.Local().DB.First(&local, localUserID).Error; err != nil {
		return 0, errors.New("user not found")
	}

	var online models.User
	if err := h.DB.Where("username = ?", local.Username).First(&online).Error; err == nil {
		return online.ID, nil
	}

	online = models.User{
		Username:     local.Username,
		Email:        local.Email,
		PasswordHash: local.PasswordHash,
	}
	if err := h.DB.Create(&online).Error; err != nil {
		return 0, err
	}
	return online.ID, nil
}

// ResultRow pairs a current question with what was answered for it. A
// question with no stored answer row (e.g. added after the attempt) shows
// as unanswered rather than erroring.
type ResultRow struct {
	Question  models.Question `json:"question"`
	Selected  *models.Choice  `json:"selected,omitempty"`
	Correct   *models.Choice  `json:"correct,omitempty"`
	IsCorrect bool            `json:"is_correct"`
}

type ResultsView struct {
	Attempt    models.TestAttempt `json:"attempt"`
	QuizTitle  string             `json:"quiz_title"`
	Percentage int                `json:"percentage"`
	Source     store.Source       `json:"source"`
	Rows       []ResultRow        `json:"rows"`
}

// Results reconstructs the per-question outcome of an attempt. The attempt
// is looked up local-first then online, always scoped to the current user;
// a non-owned attempt is indistinguishable from a missing one.
func (s *AttemptService) Results(ctx context.Context, attemptID, userID uint) (*ResultsView, error) {
	attempt, h, err := s.findAttempt(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}

	var quiz models.Quiz
	if err := h.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Preload("Questions.Choices").First(&quiz, attempt.QuizID).Error; err != nil {
		return nil, errors.New("quiz not found")
	}

	var answerRows []models.AttemptAnswer
	h.DB.Where("attempt_id = ?", attempt.ID).Find(&answerRows)
	byQuestion := make(map[uint]models.AttemptAnswer, len(answerRows))
	for _, row := range answerRows {
		byQuestion[row.QuestionID] = row
	}

	view := &ResultsView{
		Attempt:    *attempt,
		QuizTitle:  quiz.Title,
		Percentage: attempt.Percentage(),
		Source:     h.Source,
		Rows:       make([]ResultRow, 0, len(quiz.Questions)),
	}

	for _, q := range quiz.Questions {
		row := ResultRow{Question: q}

		// The correct answer is shown independently of what was selected.
		for i := range q.Choices {
			if q.Choices[i].IsCorrect {
				row.Correct = &q.Choices[i]
				break
			}
		}

		if answer, ok := byQuestion[q.ID]; ok {
			row.IsCorrect = answer.IsCorrect
			if answer.ChoiceID != nil {
				for i := range q.Choices {
					if q.Choices[i].ID == *answer.ChoiceID {
						row.Selected = &q.Choices[i]
						break
					}
				}
			}
		}

		view.Rows = append(view.Rows, row)
	}

	return view, nil
}

func (s *AttemptService) findAttempt(ctx context.Context, attemptID, userID uint) (*models.TestAttempt, store.Handle, error) {
	local := s.resolver.Local()

	var attempt models.TestAttempt
	if err := local.DB.Where("id = ? AND user_id = ?", attemptID, userID).First(&attempt).Error; err == nil {
		return &attempt, local, nil
	}

	var user models.User
	if err := local.DB.First(&user, userID).Error; err != nil {
		return nil, store.Handle{}, errors.New("attempt not found")
	}

	online, err := s.resolver.Online(ctx)
	if err != nil {
		return nil, store.Handle{}, errors.New("attempt not found")
	}

	var onlineUser models.User
	if err := online.DB.Where("username = ?", user.Username).First(&onlineUser).Error; err != nil {
		return nil, store.Handle{}, errors.New("attempt not found")
	}
	if err := online.DB.Where("id = ? AND user_id = ?", attemptID, onlineUser.ID).First(&attempt).Error; err != nil {
		return nil, store.Handle{}, errors.New("attempt not found")
	}
	return &attempt, online, nil
}

type HistoryEntry struct {
	ID             uint         `json:"id"`
	QuizID         uint         `json:"quiz_id"`
	QuizTitle      string       `json:"quiz_title"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	Percentage     int          `json:"percentage"`
	Source         store.Source `json:"source"`
	DateTaken      string       `json:"date_taken"`
}

type HistoryView struct {
	Attempts []HistoryEntry `json:"attempts"`
	Count    int            `json:"count"`
}

// History merges the user's attempts from both stores, newest first. The
// online store contributes only when it is reachable and holds a matching
// username; otherwise the history silently stays local-only.
func (s *AttemptService) History(ctx context.Context, userID uint) (*HistoryView, error) {
	local := s.resolver.Local()

	var user models.User
	if err := local.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	type tagged struct {
		attempt models.TestAttempt
		source  store.Source
	}
	var all []tagged

	var localAttempts []models.TestAttempt
	if err := local.DB.Where("user_id = ?", userID).Preload("Quiz").Find(&localAttempts).Error; err != nil {
		return nil, err
	}
	for _, a := range localAttempts {
		all = append(all, tagged{attempt: a, source: store.SourceLocal})
	}

	if online, err := s.resolver.Online(ctx); err == nil {
		var onlineUser models.User
		if err := online.DB.Where("username = ?", user.Username).First(&onlineUser).Error; err == nil {
			var onlineAttempts []models.TestAttempt
			online.DB.Where("user_id = ?", onlineUser.ID).Preload("Quiz").Find(&onlineAttempts)
			for _, a := range onlineAttempts {
				all = append(all, tagged{attempt: a, source: store.SourceOnline})
			}
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].attempt.DateTaken.After(all[j].attempt.DateTaken)
	})

	view := &HistoryView{Attempts: make([]HistoryEntry, 0, len(all)), Count: len(all)}
	for _, t := range all {
		view.Attempts = append(view.Attempts, HistoryEntry{
			ID:             t.attempt.ID,
			QuizID:         t.attempt.QuizID,
			QuizTitle:      t.attempt.Quiz.Title,
			Score:          t.attempt.Score,
			TotalQuestions: t.attempt.TotalQuestions,
			Percentage:     t.attempt.Percentage(),
			Source:         t.source,
			DateTaken:      t.attempt.DateTaken.Format("2006-01-02 15:04:05"),
		})
	}
	return view, nil
}
