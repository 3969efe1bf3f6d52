package model

import "gorm.io/datatypes"

// WordList groups memorization words by category. Words is a JSON array of
// strings so the column works on both postgres and sqlite.
type WordList struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Category   string         `json:"category" gorm:"size:50"`
	Words      datatypes.JSON `json:"words" gorm:"not null"`
	Difficulty int            `json:"difficulty" gorm:"default:1"`
}
