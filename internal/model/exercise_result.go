package model

import (
	"time"

	"gorm.io/datatypes"
)

// ExerciseResult rows are append-only: nothing updates them after creation.
type ExerciseResult struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	SessionID      uint           `json:"session_id" gorm:"not null;index"`
	ExerciseType   string         `json:"exercise_type" gorm:"size:50;not null"`
	StartedAt      time.Time      `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	Score          int            `json:"score"`
	TimeSeconds    float64        `json:"time_seconds"`
	CorrectAnswers int            `json:"correct_answers"`
	TotalQuestions int            `json:"total_questions"`
	Details        datatypes.JSON `json:"details,omitempty"` // opaque client blob
}
