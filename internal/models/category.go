package models

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:100;uniqueIndex;not null" json:"title"`
	ImageURL string `gorm:"size:500" json:"image_url,omitempty"`
	Quizzes  []Quiz `gorm:"foreignKey:CategoryID" json:"quizzes,omitempty"`
}
