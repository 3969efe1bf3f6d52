package model

// ExerciseType is the catalog entry a client renders before starting an
// exercise: display description, time limit, and instructions.
type ExerciseType struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	Name            string `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Description     string `json:"description" gorm:"type:text"`
	DurationSeconds int    `json:"duration_seconds" gorm:"default:120"`
	Instructions    string `json:"instructions" gorm:"type:text"`
}
