package models

type Question struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	QuizID  uint     `gorm:"not null;index" json:"quiz_id"`
	Text    string   `gorm:"size:255;not null" json:"text"`
	Choices []Choice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
}
