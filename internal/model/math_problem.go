package model

type MathProblem struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Expression string `json:"expression" gorm:"size:20;not null"` // two operands, operator in {+, −, ×}
	Answer     int    `json:"answer" gorm:"not null"`
	Difficulty int    `json:"difficulty" gorm:"default:1"`
}
