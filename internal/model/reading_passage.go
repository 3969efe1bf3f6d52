package model

type ReadingPassage struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Title      string `json:"title" gorm:"size:200"`
	Content    string `json:"content" gorm:"type:text;not null"`
	WordCount  int    `json:"word_count"`
	Source     string `json:"source,omitempty" gorm:"size:200"`
	Difficulty int    `json:"difficulty" gorm:"default:1"`
}
