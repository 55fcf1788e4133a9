package models

import (
	"math"
	"time"
)

type TestAttempt struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"not null;index" json:"user_id"`
	QuizID         uint            `gorm:"not null;index" json:"quiz_id"`
	Quiz           Quiz            `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"quiz,omitempty"`
	Score          int             `gorm:"not null;default:0" json:"score"`
	TotalQuestions int             `gorm:"not null;default:0" json:"total_questions"`
	Answers        []AttemptAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	DateTaken      time.Time       `gorm:"autoCreateTime" json:"date_taken"`
}

func (a *TestAttempt) Percentage() int {
	if a.TotalQuestions == 0 {
		return 0
	}
	return int(math.Round(float64(a.Score) / float64(a.TotalQuestions) * 100))
}

// AttemptAnswer records what was selected for one question of an attempt.
// A nil ChoiceID means the question was left unanswered (or the submitted
// choice did not belong to the question).
type AttemptAnswer struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	AttemptID  uint  `gorm:"not null;index" json:"attempt_id"`
	QuestionID uint  `gorm:"not null" json:"question_id"`
	ChoiceID   *uint `json:"choice_id,omitempty"`
	IsCorrect  bool  `gorm:"not null;default:false" json:"is_correct"`
}
