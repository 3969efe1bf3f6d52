package model

import "time"

// TrainingSession groups the exercise results of one sitting. The total score
// is never stored: it is recomputed from the linked results on every read, so
// there is no counter to keep consistent under concurrent result writes.
type TrainingSession struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	StartedAt   time.Time        `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Results     []ExerciseResult `json:"results,omitempty" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
